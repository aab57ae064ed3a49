package binder

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"propbind/internal/binding"
)

// Member is one bindable member of a view together with one of its
// descriptors. A view member with several descriptors yields several Members.
type Member struct {
	// Name identifies the member in errors and traces.
	Name string
	// Control yields the control instance the descriptor binds.
	Control binding.Accessor
	// Descriptor declares the binding.
	Descriptor binding.Descriptor
}

// Discoverer returns every binding declared on a view, in declaration order.
type Discoverer interface {
	Discover(view any) ([]Member, error)
}

// DiscoverFunc adapts a function to Discoverer.
type DiscoverFunc func(view any) ([]Member, error)

func (f DiscoverFunc) Discover(view any) ([]Member, error) { return f(view) }

// Declarer is implemented by views that declare their own bindings.
type Declarer interface {
	DeclareBindings(t *Table)
}

// Table collects binding declarations for one view.
type Table struct {
	members []Member
	errs    []error
}

// Bind declares descriptors for a control instance.
func (t *Table) Bind(name string, control any, descs ...binding.Descriptor) *Table {
	acc := binding.Func(name, reflect.TypeOf(control), func() any { return control }, nil)
	for _, d := range descs {
		t.members = append(t.members, Member{Name: name, Control: acc, Descriptor: d})
	}

	return t
}

// Field declares descriptors for the control stored in view's field path.
// The field is read when bindings are applied, not when declared.
func (t *Table) Field(view any, path string, descs ...binding.Descriptor) *Table {
	acc, err := binding.Resolve(view, path)
	if err != nil {
		t.errs = append(t.errs, fmt.Errorf("member %s: %w", path, err))
		return t
	}

	for _, d := range descs {
		t.members = append(t.members, Member{Name: path, Control: acc, Descriptor: d})
	}

	return t
}

// Members returns the declarations collected so far, or the first
// declaration error.
func (t *Table) Members() ([]Member, error) {
	if len(t.errs) > 0 {
		return nil, errors.Join(t.errs...)
	}

	return t.members, nil
}

// Registry maps view types to declaration functions.
type Registry struct {
	mu     sync.RWMutex
	tables map[reflect.Type]func(view any, t *Table)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[reflect.Type]func(any, *Table))}
}

// DefaultRegistry is used by binders created without WithDiscoverer.
var DefaultRegistry = NewRegistry()

// Register associates a declaration function with view type V, replacing
// any previous registration for V.
func Register[V any](r *Registry, declare func(view V, t *Table)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tables[reflect.TypeFor[V]()] = func(view any, t *Table) {
		declare(view.(V), t)
	}
}

// Discover consults Declarer first, then the registered function for the
// view's dynamic type. A view with neither has no bindings.
func (r *Registry) Discover(view any) ([]Member, error) {
	t := &Table{}

	if d, ok := view.(Declarer); ok {
		d.DeclareBindings(t)
		return t.Members()
	}

	if view == nil {
		return nil, nil
	}

	r.mu.RLock()
	declare, ok := r.tables[reflect.TypeOf(view)]
	r.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	declare(view, t)

	return t.Members()
}
