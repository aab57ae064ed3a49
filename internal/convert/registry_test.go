package convert

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reflectTypeOf(v any) reflect.Type { return reflect.TypeOf(v) }

func TestNewRegistry_BuiltIns(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, []string{
		NameDoubleToInteger,
		NameEnumToInt,
		NameIdentity,
		NameInverseBoolean,
		NameStringFormat,
	}, r.Names())

	f, ok := r.Get(NameInverseBoolean)
	require.True(t, ok)
	assert.IsType(t, InverseBoolean{}, f())
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("upper", Of(Identity{})))
	assert.True(t, r.Has("upper"))

	err := r.Register("upper", Of(Identity{}))
	assert.ErrorIs(t, err, ErrDuplicateConverter)

	assert.Error(t, r.Register("", Of(Identity{})))
	assert.Error(t, r.Register("nil", nil))
}

func TestRegistry_RegisterEnum(t *testing.T) {
	r := NewRegistry()
	colors := EnumOf(colorRed, colorGreen)

	require.NoError(t, r.RegisterEnum(colors))
	assert.ErrorIs(t, r.RegisterEnum(colors), ErrDuplicateEnum)

	got, ok := r.Enum("color")
	require.True(t, ok)
	assert.Same(t, colors, got)
	assert.Equal(t, []string{"color"}, r.EnumNames())

	_, ok = r.Enum("shape")
	assert.False(t, ok)
}
