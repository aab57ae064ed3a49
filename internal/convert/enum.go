package convert

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

// Enum is any integer type with a String method, as produced by stringer.
type Enum interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	fmt.Stringer
}

// EnumType describes an enum by its member names. It is passed as the
// converter parameter of EnumToInt.
type EnumType struct {
	name    string
	rtype   reflect.Type
	members map[string]reflect.Value
	names   []string
}

// EnumOf builds an EnumType from values, naming each member by its String.
func EnumOf[T Enum](values ...T) *EnumType {
	var zero T

	rtype := reflect.TypeOf(zero)
	e := &EnumType{
		name:    rtype.Name(),
		rtype:   rtype,
		members: make(map[string]reflect.Value, len(values)),
	}

	for _, v := range values {
		e.add(v.String(), reflect.ValueOf(v))
	}

	return e
}

// NamedEnum builds an int-valued EnumType whose members take the values
// 0, 1, ... in order. It describes enums known only by name, such as those
// declared on the command line.
func NamedEnum(name string, members ...string) *EnumType {
	e := &EnumType{
		name:    name,
		rtype:   reflect.TypeFor[int](),
		members: make(map[string]reflect.Value, len(members)),
	}

	for i, m := range members {
		e.add(m, reflect.ValueOf(i))
	}

	return e
}

func (e *EnumType) add(name string, v reflect.Value) {
	if _, ok := e.members[name]; !ok {
		e.names = append(e.names, name)
	}

	e.members[name] = v
}

// Name returns the enum type name.
func (e *EnumType) Name() string { return e.name }

// Type returns the Go type of the members.
func (e *EnumType) Type() reflect.Type { return e.rtype }

// Names returns member names in declaration order.
func (e *EnumType) Names() []string { return slices.Clone(e.names) }

// Parse returns the member named s. A decimal string is accepted when it
// is the value of a member. Anything else is an ErrParse.
func (e *EnumType) Parse(s string) (any, error) {
	if v, ok := e.members[s]; ok {
		return v.Interface(), nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if v, ok := e.value(n); ok {
			return v, nil
		}
	}

	return nil, &ConversionError{
		Converter: NameEnumToInt,
		Value:     s,
		Err:       fmt.Errorf("%w: %q is not a member of %s", ErrParse, s, e.name),
	}
}

func (e *EnumType) value(n int64) (any, bool) {
	want := reflect.ValueOf(n).Convert(e.rtype).Interface()

	for _, name := range e.names {
		if v := e.members[name].Interface(); v == want {
			return v, true
		}
	}

	return nil, false
}
