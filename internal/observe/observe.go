package observe

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnknownEvent is returned when subscribing to an event the source does
// not declare.
var ErrUnknownEvent = errors.New("unknown event")

// Unsubscribe removes exactly the subscription that produced it.
// Calling it more than once is a no-op.
type Unsubscribe func()

// PropertyHandler receives the name of a changed property.
type PropertyHandler func(property string) error

// EventHandler is invoked when a named event fires.
type EventHandler func() error

// Notifier is implemented by models that publish property changes.
type Notifier interface {
	SubscribePropertyChanged(handler PropertyHandler) Unsubscribe
}

// EventSource is implemented by controls that publish named events.
type EventSource interface {
	SubscribeEvent(name string, handler EventHandler) (Unsubscribe, error)
}

// handlerList is an ordered subscriber list keyed by a monotonically
// increasing token so that unsubscribing removes one specific entry.
type handlerList[H any] struct {
	next    uint64
	entries []handlerEntry[H]
}

type handlerEntry[H any] struct {
	token   uint64
	handler H
}

func (l *handlerList[H]) add(h H) uint64 {
	l.next++
	l.entries = append(l.entries, handlerEntry[H]{token: l.next, handler: h})

	return l.next
}

func (l *handlerList[H]) remove(token uint64) {
	l.entries = slices.DeleteFunc(l.entries, func(e handlerEntry[H]) bool {
		return e.token == token
	})
}

func (l *handlerList[H]) snapshot() []H {
	out := make([]H, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.handler
	}

	return out
}

// PropertyChanged is an embeddable Notifier implementation.
// The zero value is ready to use.
type PropertyChanged struct {
	mu       sync.Mutex
	handlers handlerList[PropertyHandler]
}

// SubscribePropertyChanged registers handler and returns its Unsubscribe.
func (p *PropertyChanged) SubscribePropertyChanged(handler PropertyHandler) Unsubscribe {
	p.mu.Lock()
	token := p.handlers.add(handler)
	p.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			p.mu.Lock()
			p.handlers.remove(token)
			p.mu.Unlock()
		})
	}
}

// Notify delivers property to every current subscriber in subscription order.
// Errors returned by handlers are joined and returned to the caller.
func (p *PropertyChanged) Notify(property string) error {
	p.mu.Lock()
	handlers := p.handlers.snapshot()
	p.mu.Unlock()

	var errs []error

	for _, h := range handlers {
		if err := h(property); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Subscribers returns the number of live subscriptions.
func (p *PropertyChanged) Subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.handlers.entries)
}

// Events is an embeddable EventSource with a fixed set of declared names.
type Events struct {
	mu       sync.Mutex
	declared map[string]*handlerList[EventHandler]
}

// NewEvents creates an event source declaring the given event names.
func NewEvents(names ...string) *Events {
	e := &Events{}
	e.Declare(names...)

	return e
}

// Declare adds event names. Already declared names are left untouched.
func (e *Events) Declare(names ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.declared == nil {
		e.declared = make(map[string]*handlerList[EventHandler], len(names))
	}

	for _, name := range names {
		if _, ok := e.declared[name]; !ok {
			e.declared[name] = &handlerList[EventHandler]{}
		}
	}
}

// SubscribeEvent registers handler for the named event.
func (e *Events) SubscribeEvent(name string, handler EventHandler) (Unsubscribe, error) {
	e.mu.Lock()

	list, ok := e.declared[name]
	if !ok {
		e.mu.Unlock()
		return nil, fmt.Errorf("%w %q", ErrUnknownEvent, name)
	}

	token := list.add(handler)
	e.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			e.mu.Lock()
			list.remove(token)
			e.mu.Unlock()
		})
	}, nil
}

// Fire invokes every handler of the named event.
func (e *Events) Fire(name string) error {
	e.mu.Lock()

	list, ok := e.declared[name]
	if !ok {
		e.mu.Unlock()
		return fmt.Errorf("%w %q", ErrUnknownEvent, name)
	}

	handlers := list.snapshot()
	e.mu.Unlock()

	var errs []error

	for _, h := range handlers {
		if err := h(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Names returns the declared event names, sorted.
func (e *Events) Names() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	names := make([]string, 0, len(e.declared))
	for name := range e.declared {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Subscribers returns the number of live subscriptions for name,
// or for all events when name is empty.
func (e *Events) Subscribers(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if name != "" {
		if list, ok := e.declared[name]; ok {
			return len(list.entries)
		}

		return 0
	}

	total := 0
	for _, list := range e.declared {
		total += len(list.entries)
	}

	return total
}
