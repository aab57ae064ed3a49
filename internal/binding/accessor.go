package binding

import (
	"fmt"
	"reflect"

	"propbind/internal/convert"
	"propbind/internal/match"
)

// Accessor reads and writes one property of one object.
type Accessor interface {
	// Name is the property path the accessor was resolved from.
	Name() string
	// Type is the static type of the property, or nil when unknown.
	Type() reflect.Type
	CanSet() bool
	Get() (any, error)
	Set(value any) error
}

// PropertySource is implemented by objects that expose properties
// explicitly instead of through exported struct fields.
type PropertySource interface {
	Property(name string) (Accessor, bool)
}

// PropertyLister lets a PropertySource take part in suggestions.
type PropertyLister interface {
	PropertyNames() []string
}

// Func builds an accessor from closures. A nil set makes it read-only.
func Func(name string, typ reflect.Type, get func() any, set func(any) error) Accessor {
	return &funcAccessor{name: name, typ: typ, get: get, set: set}
}

type funcAccessor struct {
	name string
	typ  reflect.Type
	get  func() any
	set  func(any) error
}

func (a *funcAccessor) Name() string       { return a.name }
func (a *funcAccessor) Type() reflect.Type { return a.typ }
func (a *funcAccessor) CanSet() bool       { return a.set != nil }

func (a *funcAccessor) Get() (any, error) {
	return a.get(), nil
}

func (a *funcAccessor) Set(value any) error {
	if a.set == nil {
		return &ResolutionError{Object: "func accessor", Member: a.name, Err: ErrReadOnly}
	}

	return a.set(value)
}

// Resolve finds the property at path on obj. A PropertySource is asked
// first; otherwise the path is resolved against exported struct fields.
func Resolve(obj any, path string) (Accessor, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, &ResolutionError{Object: typeName(obj), Member: path, Err: err}
	}

	if obj == nil {
		return nil, &ResolutionError{Object: typeName(obj), Member: path, Err: ErrNilPath}
	}

	if src, ok := obj.(PropertySource); ok {
		if acc, ok := src.Property(p.String()); ok {
			return acc, nil
		}
	}

	return resolveField(obj, p)
}

func resolveField(obj any, p Path) (Accessor, error) {
	root := reflect.ValueOf(obj)
	t := root.Type()
	steps := make([][]int, 0, len(p.Segments))

	for _, seg := range p.Segments {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}

		if t.Kind() != reflect.Struct {
			return nil, unknownProperty(obj, p, nil)
		}

		f, ok := t.FieldByName(seg)
		if !ok || !f.IsExported() {
			return nil, unknownProperty(obj, p, exportedFields(t))
		}

		steps = append(steps, f.Index)
		t = f.Type
	}

	return &fieldAccessor{
		name:     p.String(),
		object:   typeName(obj),
		root:     root,
		steps:    steps,
		typ:      t,
		settable: root.Kind() == reflect.Pointer,
	}, nil
}

func unknownProperty(obj any, p Path, candidates []string) error {
	if lister, ok := obj.(PropertyLister); ok {
		candidates = append(candidates, lister.PropertyNames()...)
	}

	last := p.Segments[len(p.Segments)-1]

	return &ResolutionError{
		Object:      typeName(obj),
		Member:      p.String(),
		Err:         ErrUnknownProperty,
		Suggestions: match.Suggest(last, candidates, 3, match.DefaultThreshold),
	}
}

func exportedFields(t reflect.Type) []string {
	var names []string

	for i := range t.NumField() {
		if f := t.Field(i); f.IsExported() {
			names = append(names, f.Name)
		}
	}

	return names
}

// fieldAccessor addresses an exported field through a chain of field
// indices recorded at resolve time.
type fieldAccessor struct {
	name     string
	object   string
	root     reflect.Value
	steps    [][]int
	typ      reflect.Type
	settable bool
}

func (a *fieldAccessor) Name() string       { return a.name }
func (a *fieldAccessor) Type() reflect.Type { return a.typ }
func (a *fieldAccessor) CanSet() bool       { return a.settable }

func (a *fieldAccessor) walk() (reflect.Value, error) {
	v := a.root

	for _, idx := range a.steps {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, &ResolutionError{Object: a.object, Member: a.name, Err: ErrNilPath}
			}

			v = v.Elem()
		}

		f, err := v.FieldByIndexErr(idx)
		if err != nil {
			return reflect.Value{}, &ResolutionError{Object: a.object, Member: a.name, Err: fmt.Errorf("%w: %v", ErrNilPath, err)}
		}

		v = f
	}

	return v, nil
}

func (a *fieldAccessor) Get() (any, error) {
	v, err := a.walk()
	if err != nil {
		return nil, err
	}

	return v.Interface(), nil
}

func (a *fieldAccessor) Set(value any) error {
	v, err := a.walk()
	if err != nil {
		return err
	}

	if !v.CanSet() {
		return &ResolutionError{Object: a.object, Member: a.name, Err: ErrReadOnly}
	}

	return convert.Assign(v, value)
}
