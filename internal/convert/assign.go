package convert

import "reflect"

// NameAssign labels conversion errors raised while storing a value.
const NameAssign = "assign"

// Assign stores value into dst. Numbers convert between numeric kinds,
// and named types convert to and from their underlying bool or string.
// nil stores the zero value.
func Assign(dst reflect.Value, value any) error {
	if value == nil {
		dst.SetZero()
		return nil
	}

	src := reflect.ValueOf(value)

	if src.Type().AssignableTo(dst.Type()) {
		dst.Set(src)
		return nil
	}

	if Convertible(src.Type(), dst.Type()) {
		dst.Set(src.Convert(dst.Type()))
		return nil
	}

	return conversionErr(NameAssign, value, ErrType, "cannot assign %s to %s", src.Type(), dst.Type())
}

// To returns value as a T under the rules of Assign.
func To[T any](value any) (T, error) {
	var v T

	if err := Assign(reflect.ValueOf(&v).Elem(), value); err != nil {
		return v, err
	}

	return v, nil
}

// Convertible reports whether Assign converts values of type from to type to.
func Convertible(from, to reflect.Type) bool {
	fk, tk := KindOf(from), KindOf(to)

	switch {
	case fk == 0 || tk == 0:
		return false
	case fk.IsNumber() && tk.IsNumber():
		return true
	default:
		return fk == tk
	}
}
