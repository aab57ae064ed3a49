package binding

import (
	"errors"
	"fmt"
	"reflect"

	"propbind/internal/convert"
	"propbind/internal/observe"
	"propbind/utils"
)

var indexableType = reflect.TypeFor[observe.Indexable]()

// Indexed wraps base so reads and writes go through the element addressed
// by indices. The property must hold an observe.Indexable, a slice or a map.
// When the static type is not conclusive the current value is checked.
func Indexed(base Accessor, object string, indices []any) (Accessor, error) {
	a := &indexedAccessor{base: base, object: object, indices: indices}

	if t := base.Type(); t != nil && t.Kind() != reflect.Interface {
		if !staticallyIndexable(t) {
			return nil, a.fail(fmt.Errorf("%w: %s", ErrNotIndexable, t))
		}

		return a, nil
	}

	v, err := base.Get()
	if err != nil {
		return nil, err
	}

	if !dynamicallyIndexable(v) {
		return nil, a.fail(fmt.Errorf("%w: %T", ErrNotIndexable, v))
	}

	return a, nil
}

func staticallyIndexable(t reflect.Type) bool {
	if t.Implements(indexableType) {
		return true
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Map:
		return true
	default:
		return false
	}
}

func dynamicallyIndexable(v any) bool {
	if v == nil {
		return false
	}

	return staticallyIndexable(reflect.TypeOf(v))
}

type indexedAccessor struct {
	base    Accessor
	object  string
	indices []any
}

func (a *indexedAccessor) Name() string {
	return fmt.Sprintf("%s%v", a.base.Name(), a.indices)
}

func (a *indexedAccessor) Type() reflect.Type {
	t := a.base.Type()
	if t == nil || t.Implements(indexableType) {
		return nil
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Map:
		return t.Elem()
	default:
		return nil
	}
}

func (a *indexedAccessor) CanSet() bool { return true }

func (a *indexedAccessor) Get() (any, error) {
	container, err := a.base.Get()
	if err != nil {
		return nil, err
	}

	v, err := indexGet(container, a.indices)
	if err != nil {
		return nil, a.fail(err)
	}

	return v, nil
}

func (a *indexedAccessor) Set(value any) error {
	container, err := a.base.Get()
	if err != nil {
		return err
	}

	if err := indexSet(container, value, a.indices); err != nil {
		var ce *convert.ConversionError
		if errors.As(err, &ce) {
			return err
		}

		return a.fail(err)
	}

	return nil
}

func (a *indexedAccessor) fail(err error) error {
	return &ResolutionError{Object: a.object, Member: a.Name(), Err: err}
}

func indexGet(container any, indices []any) (any, error) {
	if convert.IsAbsent(container) {
		return nil, ErrNilPath
	}

	if ix, ok := container.(observe.Indexable); ok {
		return ix.Index(indices...)
	}

	rv := reflect.ValueOf(container)

	switch rv.Kind() {
	case reflect.Slice:
		i, err := slicePosition(rv, indices)
		if err != nil {
			return nil, err
		}

		return rv.Index(i).Interface(), nil
	case reflect.Map:
		key, err := mapKey(rv, indices)
		if err != nil {
			return nil, err
		}

		v := rv.MapIndex(key)
		if !v.IsValid() {
			return nil, fmt.Errorf("%w: %v", observe.ErrKeyNotFound, key)
		}

		return v.Interface(), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotIndexable, container)
	}
}

func indexSet(container, value any, indices []any) error {
	if convert.IsAbsent(container) {
		return ErrNilPath
	}

	if ix, ok := container.(observe.Indexable); ok {
		return ix.SetIndex(value, indices...)
	}

	rv := reflect.ValueOf(container)

	switch rv.Kind() {
	case reflect.Slice:
		i, err := slicePosition(rv, indices)
		if err != nil {
			return err
		}

		return convert.Assign(rv.Index(i), value)
	case reflect.Map:
		key, err := mapKey(rv, indices)
		if err != nil {
			return err
		}

		elem := reflect.New(rv.Type().Elem()).Elem()
		if err := convert.Assign(elem, value); err != nil {
			return err
		}

		rv.SetMapIndex(key, elem)

		return nil
	default:
		return fmt.Errorf("%w: %T", ErrNotIndexable, container)
	}
}

func slicePosition(rv reflect.Value, indices []any) (int, error) {
	if len(indices) != 1 {
		return 0, fmt.Errorf("%w: want 1, got %d", observe.ErrIndexArity, len(indices))
	}

	if indices[0] == nil {
		return 0, fmt.Errorf("%w: nil index", observe.ErrIndexType)
	}

	iv := reflect.ValueOf(indices[0])
	if !convert.KindOf(iv.Type()).IsInteger() {
		return 0, fmt.Errorf("%w: %T", observe.ErrIndexType, indices[0])
	}

	i := int(iv.Convert(reflect.TypeFor[int]()).Int())
	if !utils.IsInRange(0, i, rv.Len()-1) {
		return 0, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, rv.Len())
	}

	return i, nil
}

func mapKey(rv reflect.Value, indices []any) (reflect.Value, error) {
	if len(indices) != 1 {
		return reflect.Value{}, fmt.Errorf("%w: want 1, got %d", observe.ErrIndexArity, len(indices))
	}

	kt := rv.Type().Key()
	key := reflect.ValueOf(indices[0])

	switch {
	case indices[0] == nil:
		return reflect.Value{}, fmt.Errorf("%w: nil key", observe.ErrIndexType)
	case key.Type().AssignableTo(kt):
		return key, nil
	case convert.Convertible(key.Type(), kt):
		return key.Convert(kt), nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s for key %s", observe.ErrIndexType, key.Type(), kt)
	}
}
