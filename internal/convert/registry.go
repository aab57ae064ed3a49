package convert

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// Built-in converter names.
const (
	NameIdentity        = "identity"
	NameStringFormat    = "string_format"
	NameInverseBoolean  = "inverse_boolean"
	NameDoubleToInteger = "double_to_integer"
	NameEnumToInt       = "enum_to_int"
)

var (
	ErrDuplicateConverter = errors.New("duplicate converter")
	ErrDuplicateEnum      = errors.New("duplicate enum type")
)

// Registry maps converter names to factories and enum type names to
// descriptors, so declarations can refer to both by name.
type Registry struct {
	factories map[string]Factory
	enums     map[string]*EnumType
}

// NewRegistry creates a registry pre-populated with the built-in converters.
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		enums:     make(map[string]*EnumType),
	}

	r.factories[NameIdentity] = Of(Identity{})
	r.factories[NameStringFormat] = func() Converter { return StringFormat{} }
	r.factories[NameInverseBoolean] = Of(InverseBoolean{})
	r.factories[NameDoubleToInteger] = Of(DoubleToInteger{})
	r.factories[NameEnumToInt] = Of(EnumToInt{})

	return r
}

// Register adds a named converter factory.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" || factory == nil {
		return errors.New("converter name and factory are required")
	}

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w %q", ErrDuplicateConverter, name)
	}

	r.factories[name] = factory

	return nil
}

// RegisterEnum adds an enum type under its Name.
func (r *Registry) RegisterEnum(e *EnumType) error {
	if e == nil || e.Name() == "" {
		return errors.New("enum type must be named")
	}

	if _, exists := r.enums[e.Name()]; exists {
		return fmt.Errorf("%w %q", ErrDuplicateEnum, e.Name())
	}

	r.enums[e.Name()] = e

	return nil
}

// Get returns the factory registered under name.
func (r *Registry) Get(name string) (Factory, bool) {
	f, ok := r.factories[name]
	return f, ok
}

// Has returns true if a converter with the given name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Enum returns the enum type registered under name.
func (r *Registry) Enum(name string) (*EnumType, bool) {
	e, ok := r.enums[name]
	return e, ok
}

// Names returns all converter names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// EnumNames returns all enum type names, sorted.
func (r *Registry) EnumNames() []string {
	names := make([]string, 0, len(r.enums))
	for name := range r.enums {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
