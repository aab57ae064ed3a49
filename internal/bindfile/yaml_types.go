package bindfile

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"propbind/internal/common"
)

var errEmptyIndex = errors.New("index list is empty")

// UnmarshalYAML accepts a single scalar or a list of scalars.
// An explicit empty list decodes to a non-nil empty Index, which Validate
// rejects.
func (x *Index) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v any

		err := node.Decode(&v)
		if err != nil {
			return err
		}

		*x = Index{v}

		return nil

	case yaml.SequenceNode:
		values := make(Index, 0, len(node.Content))

		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: index values must be scalars", item.Line)
			}

			var v any

			err := item.Decode(&v)
			if err != nil {
				return err
			}

			values = append(values, v)
		}

		*x = values

		return nil

	default:
		return fmt.Errorf("line %d: expected scalar or list index, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes a single index as a scalar.
func (x Index) MarshalYAML() (any, error) {
	if common.IsSingle(x) {
		return x[0], nil
	}

	return []any(x), nil
}

// Values returns the index values, or nil when the property is not indexed.
func (x Index) Values() []any {
	if x == nil {
		return nil
	}

	return append([]any{}, x...)
}

// String formats the index as it appears in a property reference.
func (x Index) String() string {
	if v, ok := common.First(x); ok && common.IsSingle(x) {
		return fmt.Sprintf("[%v]", v)
	}

	return fmt.Sprintf("%v", []any(x))
}
