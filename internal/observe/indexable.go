package observe

import (
	"errors"
	"fmt"

	"propbind/internal/convert"
)

var (
	ErrIndexArity      = errors.New("wrong number of indices")
	ErrIndexType       = errors.New("index has wrong type")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrKeyNotFound     = errors.New("key not found")
)

// Indexable is the explicit capability of a collection-like value.
// The index tuple is interpreted by the implementation.
type Indexable interface {
	Index(indices ...any) (any, error)
	SetIndex(value any, indices ...any) error
}

// List is an indexable slice addressed by a single int.
type List[T any] struct {
	Items []T
}

// NewList creates a List holding items.
func NewList[T any](items ...T) *List[T] {
	return &List[T]{Items: items}
}

func (l *List[T]) position(indices []any) (int, error) {
	if len(indices) != 1 {
		return 0, fmt.Errorf("%w: want 1, got %d", ErrIndexArity, len(indices))
	}

	i, ok := indices[0].(int)
	if !ok {
		return 0, fmt.Errorf("%w: %T", ErrIndexType, indices[0])
	}

	if i < 0 || i >= len(l.Items) {
		return 0, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(l.Items))
	}

	return i, nil
}

// Index returns the element at indices[0].
func (l *List[T]) Index(indices ...any) (any, error) {
	i, err := l.position(indices)
	if err != nil {
		return nil, err
	}

	return l.Items[i], nil
}

// SetIndex stores value at indices[0]. Numeric values are converted to T.
func (l *List[T]) SetIndex(value any, indices ...any) error {
	i, err := l.position(indices)
	if err != nil {
		return err
	}

	v, err := convert.To[T](value)
	if err != nil {
		return err
	}

	l.Items[i] = v

	return nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.Items) }

// Map is an indexable map addressed by a single key.
type Map[K comparable, V any] struct {
	Entries map[K]V
}

// NewMap creates an empty Map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{Entries: make(map[K]V)}
}

func (m *Map[K, V]) key(indices []any) (K, error) {
	var zero K

	if len(indices) != 1 {
		return zero, fmt.Errorf("%w: want 1, got %d", ErrIndexArity, len(indices))
	}

	k, ok := indices[0].(K)
	if !ok {
		return zero, fmt.Errorf("%w: %T", ErrIndexType, indices[0])
	}

	return k, nil
}

// Index returns the value stored under indices[0].
func (m *Map[K, V]) Index(indices ...any) (any, error) {
	k, err := m.key(indices)
	if err != nil {
		return nil, err
	}

	v, ok := m.Entries[k]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}

	return v, nil
}

// SetIndex stores value under indices[0]. Numeric values are converted to V.
func (m *Map[K, V]) SetIndex(value any, indices ...any) error {
	k, err := m.key(indices)
	if err != nil {
		return err
	}

	v, err := convert.To[V](value)
	if err != nil {
		return err
	}

	if m.Entries == nil {
		m.Entries = make(map[K]V)
	}

	m.Entries[k] = v

	return nil
}
