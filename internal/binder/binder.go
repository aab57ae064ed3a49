package binder

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"propbind/internal/binding"
	"propbind/internal/logger"
	"propbind/internal/observe"
)

var (
	// ErrNotNotifier is traced when Apply skips a model that cannot publish
	// changes. Apply itself returns nil in that case.
	ErrNotNotifier = binding.ErrNotNotifier
	// ErrNoControl is returned for a member declared without a control.
	ErrNoControl = errors.New("member has no control accessor")
)

// Binder owns the bindings between one view and one model.
// It is not safe for concurrent use.
type Binder struct {
	view       any
	model      any
	discoverer Discoverer
	bindOpts   []binding.Option

	applied   bool
	teardowns []binding.Teardown
}

// Option configures a Binder.
type Option func(*Binder)

// WithDiscoverer replaces DefaultRegistry as the source of declarations.
func WithDiscoverer(d Discoverer) Option {
	return func(b *Binder) { b.discoverer = d }
}

// WithStrictOneTime makes OneTime bindings push once without subscribing.
func WithStrictOneTime() Option {
	return func(b *Binder) { b.bindOpts = append(b.bindOpts, binding.WithStrictOneTime()) }
}

// WithCulture sets the culture for descriptors that do not name one.
func WithCulture(tag language.Tag) Option {
	return func(b *Binder) { b.bindOpts = append(b.bindOpts, binding.WithCulture(tag)) }
}

// New creates a Binder for view and model. Nothing is bound until Apply.
func New(view, model any, opts ...Option) *Binder {
	b := &Binder{view: view, model: model, discoverer: DefaultRegistry}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Applied reports whether bindings are currently applied.
func (b *Binder) Applied() bool { return b.applied }

// Len returns the number of live bindings.
func (b *Binder) Len() int { return len(b.teardowns) }

// Apply binds every declared descriptor. It does nothing if bindings are
// already applied, if the model does not publish property changes, or if the
// view declares no bindings. If any binding fails, the bindings created by
// this call are torn down and the error is returned.
func (b *Binder) Apply() error {
	if b.applied {
		return nil
	}

	if _, ok := b.model.(observe.Notifier); !ok {
		logger.Info("apply %T: skipped: %v", b.view, ErrNotNotifier)
		return nil
	}

	members, err := b.discoverer.Discover(b.view)
	if err != nil {
		return fmt.Errorf("discover bindings on %T: %w", b.view, err)
	}

	teardowns := make([]binding.Teardown, 0, len(members))

	for _, m := range members {
		td, err := b.bind(m)
		if err != nil {
			rollback(teardowns)
			logger.Warn("apply %T: rolled back %d bindings: %v", b.view, len(teardowns), err)

			return err
		}

		teardowns = append(teardowns, td)
	}

	if len(teardowns) == 0 {
		return nil
	}

	b.teardowns = teardowns
	b.applied = true
	logger.Info("apply %T: %d bindings", b.view, len(teardowns))

	return nil
}

func (b *Binder) bind(m Member) (binding.Teardown, error) {
	if m.Control == nil {
		return nil, fmt.Errorf("member %s: %w", m.Name, ErrNoControl)
	}

	control, err := m.Control.Get()
	if err != nil {
		return nil, fmt.Errorf("member %s: %w", m.Name, err)
	}

	td, err := binding.New(m.Descriptor, b.bindOpts...).Bind(control, b.model)
	if err != nil {
		return nil, fmt.Errorf("member %s (%s %s): %w", m.Name, m.Descriptor.Direction, m.Descriptor.ModelProperty, err)
	}

	return td, nil
}

// Detach tears down every binding made by Apply. It does nothing if
// bindings are not applied.
func (b *Binder) Detach() {
	if !b.applied {
		return
	}

	rollback(b.teardowns)
	logger.Info("detach %T: %d bindings", b.view, len(b.teardowns))

	b.teardowns = nil
	b.applied = false
}

func rollback(teardowns []binding.Teardown) {
	for _, td := range teardowns {
		td()
	}
}
