package convert

import (
	"errors"
	"fmt"
	"reflect"

	"golang.org/x/text/language"
)

// Conversion failure kinds.
var (
	ErrType   = errors.New("type error")
	ErrFormat = errors.New("format error")
	ErrParse  = errors.New("parse error")
)

// Converter transforms values between a source and a target property.
// target is the type of the property being written, or nil when unknown.
type Converter interface {
	Convert(value any, target reflect.Type, parameter any, culture language.Tag) (any, error)
	ConvertBack(value any, target reflect.Type, parameter any, culture language.Tag) (any, error)
}

// Factory constructs a Converter. Bindings call it once per Bind.
type Factory func() Converter

// Of returns a Factory that always yields c.
func Of(c Converter) Factory {
	return func() Converter { return c }
}

// ConversionError reports a failed conversion of a single value.
type ConversionError struct {
	Converter string
	Value     any
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: cannot convert %v (%T): %v", e.Converter, e.Value, e.Value, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func conversionErr(converter string, value any, kind error, format string, args ...any) error {
	return &ConversionError{
		Converter: converter,
		Value:     value,
		Err:       fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}

// IsAbsent reports whether v is nil or a nil pointer, map, slice or interface.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
