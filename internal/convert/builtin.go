package convert

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"propbind/utils"
)

// Placeholder is what StringFormat renders for an absent value.
const Placeholder = "---"

// Identity returns values unchanged in both directions.
type Identity struct{}

func (Identity) Convert(value any, _ reflect.Type, _ any, _ language.Tag) (any, error) {
	return value, nil
}

func (Identity) ConvertBack(value any, _ reflect.Type, _ any, _ language.Tag) (any, error) {
	return value, nil
}

// StringFormat renders values with a fmt-style format through a
// culture-aware printer. A string parameter overrides Format.
type StringFormat struct {
	Format string
}

func (c StringFormat) Convert(value any, _ reflect.Type, parameter any, culture language.Tag) (any, error) {
	if IsAbsent(value) {
		return Placeholder, nil
	}

	format := c.Format
	if p, ok := parameter.(string); ok && p != "" {
		format = p
	}

	if format == "" {
		return value, nil
	}

	return message.NewPrinter(culture).Sprintf(format, value), nil
}

// ConvertBack always yields nil; formatting is lossy.
func (StringFormat) ConvertBack(any, reflect.Type, any, language.Tag) (any, error) {
	return nil, nil
}

// InverseBoolean negates booleans in both directions.
type InverseBoolean struct{}

func (InverseBoolean) Convert(value any, _ reflect.Type, _ any, _ language.Tag) (any, error) {
	return negate(value)
}

func (InverseBoolean) ConvertBack(value any, _ reflect.Type, _ any, _ language.Tag) (any, error) {
	return negate(value)
}

func negate(value any) (any, error) {
	if value != nil {
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.Bool {
			return !rv.Bool(), nil
		}
	}

	return nil, conversionErr(NameInverseBoolean, value, ErrType, "expected a boolean")
}

// DoubleToInteger widens to float64 on the forward leg and narrows to int32
// on the reverse leg. Fractions round half to even.
type DoubleToInteger struct{}

func (DoubleToInteger) Convert(value any, _ reflect.Type, _ any, _ language.Tag) (any, error) {
	return ToFloat64(value)
}

func (DoubleToInteger) ConvertBack(value any, _ reflect.Type, _ any, _ language.Tag) (any, error) {
	return ToInt32(value)
}

// ToFloat64 coerces numbers, booleans and numeric strings to float64.
// nil coerces to zero.
func ToFloat64(value any) (float64, error) {
	if value == nil {
		return 0, nil
	}

	rv := reflect.ValueOf(value)

	switch k := KindOf(rv.Type()); {
	case k.IsSigned():
		return float64(rv.Int()), nil
	case k.IsUnsigned():
		return float64(rv.Uint()), nil
	case k.IsFloat():
		return rv.Float(), nil
	case k == KindBool:
		if rv.Bool() {
			return 1, nil
		}

		return 0, nil
	case k == KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return 0, conversionErr(NameDoubleToInteger, value, ErrFormat, "%q is not a number", rv.String())
		}

		return f, nil
	default:
		return 0, conversionErr(NameDoubleToInteger, value, ErrType, "cannot coerce %s to float64", rv.Type())
	}
}

// ToInt32 coerces numbers, booleans and integer strings to int32.
// nil coerces to zero.
func ToInt32(value any) (int32, error) {
	if value == nil {
		return 0, nil
	}

	rv := reflect.ValueOf(value)

	switch k := KindOf(rv.Type()); {
	case k.IsSigned():
		return narrowInt(value, rv.Int())
	case k.IsUnsigned():
		u := rv.Uint()
		if u > math.MaxInt32 {
			return 0, conversionErr(NameDoubleToInteger, value, ErrFormat, "%d overflows int32", u)
		}

		return int32(u), nil
	case k.IsFloat():
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, conversionErr(NameDoubleToInteger, value, ErrFormat, "%v is not finite", f)
		}

		r := math.RoundToEven(f)
		if !utils.IsInRange(math.MinInt32, r, math.MaxInt32) {
			return 0, conversionErr(NameDoubleToInteger, value, ErrFormat, "%v overflows int32", f)
		}

		return int32(r), nil
	case k == KindBool:
		if rv.Bool() {
			return 1, nil
		}

		return 0, nil
	case k == KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(rv.String()), 10, 32)
		if err != nil {
			return 0, conversionErr(NameDoubleToInteger, value, ErrFormat, "%q is not an int32", rv.String())
		}

		return int32(n), nil
	default:
		return 0, conversionErr(NameDoubleToInteger, value, ErrType, "cannot coerce %s to int32", rv.Type())
	}
}

func narrowInt(value any, n int64) (int32, error) {
	if !utils.IsInRange(math.MinInt32, n, math.MaxInt32) {
		return 0, conversionErr(NameDoubleToInteger, value, ErrFormat, "%d overflows int32", n)
	}

	return int32(n), nil
}

// EnumToInt maps enum values to their underlying integer when the parameter
// is an *EnumType, and parses names back into the enum.
type EnumToInt struct{}

func (EnumToInt) Convert(value any, _ reflect.Type, parameter any, _ language.Tag) (any, error) {
	if _, ok := parameter.(*EnumType); !ok {
		return 0, nil
	}

	if value != nil {
		rv := reflect.ValueOf(value)

		switch k := KindOf(rv.Type()); {
		case k.IsSigned():
			return int(rv.Int()), nil
		case k.IsUnsigned():
			return int(rv.Uint()), nil
		}
	}

	return nil, conversionErr(NameEnumToInt, value, ErrType, "expected an integer enum value")
}

func (EnumToInt) ConvertBack(value any, _ reflect.Type, parameter any, _ language.Tag) (any, error) {
	enum, ok := parameter.(*EnumType)
	if !ok || value == nil {
		return nil, nil
	}

	return enum.Parse(strings.TrimSpace(fmtValue(value)))
}

func fmtValue(value any) string {
	if s, ok := value.(string); ok {
		return s
	}

	rv := reflect.ValueOf(value)

	switch k := KindOf(rv.Type()); {
	case k.IsSigned():
		return strconv.FormatInt(rv.Int(), 10)
	case k.IsUnsigned():
		return strconv.FormatUint(rv.Uint(), 10)
	case k == KindString:
		return rv.String()
	default:
		return ""
	}
}
