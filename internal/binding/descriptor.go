package binding

import (
	"slices"

	"golang.org/x/text/language"

	"propbind/internal/convert"
)

// Descriptor declares one binding. It is copied on Bind, so changing a
// descriptor after binding does not affect live bindings.
type Descriptor struct {
	Direction Direction

	// ModelProperty is the property path on the model. Always required.
	ModelProperty string
	// ModelIndex addresses an element of an indexable model property.
	ModelIndex []any

	// ControlProperty is the property path on the control. Required for
	// every direction except Command.
	ControlProperty string
	// ControlIndex addresses an element of an indexable control property.
	ControlIndex []any

	// ControlEvent triggers reverse transfers and command invocation.
	ControlEvent string

	// Converter creates the converter used on every transfer. Nil means
	// values pass through unchanged.
	Converter convert.Factory
	// ConverterParameter is passed to the converter, and to the command
	// for Command bindings.
	ConverterParameter any
	// Culture is passed to the converter. The zero Tag means the binding
	// option's culture.
	Culture language.Tag
}

// Validate checks that the descriptor carries every field its direction needs.
func (d Descriptor) Validate() error {
	fail := func(field, reason string) error {
		return &ConfigurationError{Direction: d.Direction, Field: field, Reason: reason}
	}

	if !d.Direction.IsValid() {
		return fail("Direction", "direction is required")
	}

	if d.ModelProperty == "" {
		return fail("ModelProperty", "required")
	}

	if _, err := ParsePath(d.ModelProperty); err != nil {
		return fail("ModelProperty", err.Error())
	}

	if d.Direction != Command {
		if d.ControlProperty == "" {
			return fail("ControlProperty", "required for "+d.Direction.String())
		}

		if _, err := ParsePath(d.ControlProperty); err != nil {
			return fail("ControlProperty", err.Error())
		}
	}

	if d.Direction.HasReverse() && d.ControlEvent == "" {
		return fail("ControlEvent", "required for "+d.Direction.String())
	}

	if d.ModelIndex != nil && len(d.ModelIndex) == 0 {
		return fail("ModelIndex", "must not be empty when present")
	}

	if d.ControlIndex != nil && len(d.ControlIndex) == 0 {
		return fail("ControlIndex", "must not be empty when present")
	}

	return nil
}

// Clone returns a copy that shares no index slices with d.
func (d Descriptor) Clone() Descriptor {
	d.ModelIndex = slices.Clone(d.ModelIndex)
	d.ControlIndex = slices.Clone(d.ControlIndex)

	return d
}

// Bind creates a Binding for d and binds it. It is shorthand for
// New(d, opts...).Bind(control, model).
func (d Descriptor) Bind(control, model any, opts ...Option) (Teardown, error) {
	return New(d, opts...).Bind(control, model)
}
