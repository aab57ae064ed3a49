package binding

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"propbind/internal/observe"
)

var (
	ErrUnknownProperty   = errors.New("unknown property")
	ErrUnknownEvent      = observe.ErrUnknownEvent
	ErrNotNotifier       = errors.New("model does not publish property changes")
	ErrNotIndexable      = errors.New("value is not indexable")
	ErrIndexOutOfRange   = observe.ErrIndexOutOfRange
	ErrReadOnly          = errors.New("property is read-only")
	ErrNilPath           = errors.New("nil value on property path")
	ErrNotCommand        = errors.New("property does not hold a command")
	ErrInvalidDescriptor = errors.New("invalid binding descriptor")
	ErrAlreadyBound      = errors.New("binding already used")
)

// ResolutionError reports a property, event or indexer that cannot be
// resolved on an object.
type ResolutionError struct {
	// Object is the Go type of the object being resolved against.
	Object string
	// Member is the property path or event name.
	Member string
	Err    error
	// Suggestions are similarly named members, best first.
	Suggestions []string
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("cannot resolve %q on %s: %v", e.Member, e.Object, e.Err)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean: " + strings.Join(e.Suggestions, ", ") + ")"
	}

	return msg
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports a descriptor that is not valid for its direction.
type ConfigurationError struct {
	Direction Direction
	Field     string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v (%s): %s: %s", ErrInvalidDescriptor, e.Direction, e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidDescriptor
}

func typeName(obj any) string {
	if obj == nil {
		return "<nil>"
	}

	return reflect.TypeOf(obj).String()
}
