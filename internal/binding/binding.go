package binding

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"propbind/internal/command"
	"propbind/internal/convert"
	"propbind/internal/logger"
	"propbind/internal/match"
	"propbind/internal/observe"
)

// Teardown undoes exactly the subscriptions one Bind created.
// Calling it again is a no-op.
type Teardown func()

// State is the lifecycle state of a Binding.
type State int

const (
	Unbound State = iota
	Bound
	Detached
)

func (s State) String() string {
	switch s {
	case Unbound:
		return "unbound"
	case Bound:
		return "bound"
	case Detached:
		return "detached"
	default:
		return "unknown"
	}
}

var commandType = reflect.TypeFor[command.Command]()

// Binding is a live instance of a Descriptor.
type Binding struct {
	id    uuid.UUID
	desc  Descriptor
	opts  options
	state State

	model   Accessor
	control Accessor
	conv    convert.Converter
	culture language.Tag
	subs    []observe.Unsubscribe
}

// New creates an unbound Binding for a copy of d.
func New(d Descriptor, opts ...Option) *Binding {
	return &Binding{
		id:   uuid.New(),
		desc: d.Clone(),
		opts: newOptions(opts),
	}
}

// ID identifies the binding in traces.
func (b *Binding) ID() uuid.UUID { return b.id }

// State returns the lifecycle state.
func (b *Binding) State() State { return b.state }

// Descriptor returns a copy of the binding's descriptor.
func (b *Binding) Descriptor() Descriptor { return b.desc.Clone() }

// Subscriptions returns the number of live subscriptions the binding owns.
func (b *Binding) Subscriptions() int { return len(b.subs) }

// Bind connects control and model according to the descriptor and returns
// the teardown. On error nothing stays subscribed and the binding remains
// Unbound.
func (b *Binding) Bind(control, model any) (Teardown, error) {
	if b.state != Unbound {
		return nil, fmt.Errorf("%w (state %s)", ErrAlreadyBound, b.state)
	}

	if err := b.desc.Validate(); err != nil {
		return nil, err
	}

	if err := b.resolve(control, model); err != nil {
		b.reset()
		return nil, err
	}

	b.conv = convert.Identity{}
	if b.desc.Converter != nil {
		b.conv = b.desc.Converter()
	}

	b.culture = b.desc.Culture
	if b.culture == language.Und {
		b.culture = b.opts.culture
	}

	if err := b.subscribe(control, model); err != nil {
		b.reset()
		return nil, err
	}

	if err := b.initialPush(); err != nil {
		b.reset()
		return nil, err
	}

	b.state = Bound
	logger.Debug("binding %s: bound %s model.%s -> control.%s (%d subscriptions)",
		b.id, b.desc.Direction, b.desc.ModelProperty, b.desc.ControlProperty, len(b.subs))

	return b.Unbind, nil
}

// Unbind removes every subscription. It is the Teardown returned by Bind.
func (b *Binding) Unbind() {
	if b.state != Bound {
		return
	}

	b.release()
	b.state = Detached
	logger.Debug("binding %s: detached", b.id)
}

func (b *Binding) release() {
	for _, unsub := range b.subs {
		unsub()
	}

	b.subs = nil
}

// reset undoes a failed Bind. The binding stays Unbound with nothing
// resolved or subscribed.
func (b *Binding) reset() {
	b.release()
	b.model, b.control, b.conv = nil, nil, nil
}

func (b *Binding) resolve(control, model any) error {
	d := b.desc

	acc, err := Resolve(model, d.ModelProperty)
	if err != nil {
		return err
	}

	if d.ModelIndex != nil {
		if acc, err = Indexed(acc, typeName(model), d.ModelIndex); err != nil {
			return err
		}
	}

	b.model = acc

	if d.Direction == Command {
		if t := acc.Type(); t != nil && t.Kind() != reflect.Interface && !t.Implements(commandType) {
			return &ResolutionError{Object: typeName(model), Member: acc.Name(), Err: fmt.Errorf("%w: %s", ErrNotCommand, t)}
		}

		return nil
	}

	if acc, err = Resolve(control, d.ControlProperty); err != nil {
		return err
	}

	if d.ControlIndex != nil {
		if acc, err = Indexed(acc, typeName(control), d.ControlIndex); err != nil {
			return err
		}
	}

	b.control = acc

	if d.Direction.HasForward() && !b.control.CanSet() {
		return &ResolutionError{Object: typeName(control), Member: b.control.Name(), Err: ErrReadOnly}
	}

	if (d.Direction == OneWayToSource || d.Direction == TwoWay) && !b.model.CanSet() {
		return &ResolutionError{Object: typeName(model), Member: b.model.Name(), Err: ErrReadOnly}
	}

	return nil
}

func (b *Binding) subscribesForward() bool {
	if b.desc.Direction == OneTime && b.opts.strictOneTime {
		return false
	}

	return b.desc.Direction.HasForward()
}

func (b *Binding) subscribe(control, model any) error {
	d := b.desc

	if b.subscribesForward() {
		n, ok := model.(observe.Notifier)
		if !ok {
			return &ResolutionError{Object: typeName(model), Member: d.ModelProperty, Err: ErrNotNotifier}
		}

		root := b.modelRoot()
		b.subs = append(b.subs, n.SubscribePropertyChanged(func(property string) error {
			if b.state == Detached || (property != d.ModelProperty && property != root) {
				return nil
			}

			return b.forward()
		}))
	}

	if !d.Direction.HasReverse() {
		return nil
	}

	src, ok := control.(observe.EventSource)
	if !ok {
		return &ResolutionError{Object: typeName(control), Member: d.ControlEvent, Err: ErrUnknownEvent}
	}

	transfer := b.reverse
	if d.Direction == Command {
		transfer = b.invoke
	}

	unsub, err := src.SubscribeEvent(d.ControlEvent, func() error {
		if b.state == Detached {
			return nil
		}

		return transfer()
	})
	if err != nil {
		var names []string
		if lister, ok := control.(interface{ Names() []string }); ok {
			names = lister.Names()
		}

		return &ResolutionError{
			Object:      typeName(control),
			Member:      d.ControlEvent,
			Err:         err,
			Suggestions: match.Suggest(d.ControlEvent, names, 3, match.DefaultThreshold),
		}
	}

	b.subs = append(b.subs, unsub)

	return nil
}

// modelRoot is the first segment of a nested model path. Replacing the
// root object also changes the nested value.
func (b *Binding) modelRoot() string {
	p, err := ParsePath(b.desc.ModelProperty)
	if err != nil {
		return b.desc.ModelProperty
	}

	return p.Root()
}

func (b *Binding) initialPush() error {
	switch b.desc.Direction {
	case OneTime, OneWay, TwoWay:
		return b.forward()
	case OneWayToSource:
		return b.reverse()
	default:
		return nil
	}
}

// forward transfers model -> control through Convert.
func (b *Binding) forward() error {
	v, err := b.model.Get()
	if err != nil {
		return err
	}

	out, err := b.conv.Convert(v, b.control.Type(), b.desc.ConverterParameter, b.culture)
	if err != nil {
		return fmt.Errorf("model.%s -> control.%s: %w", b.model.Name(), b.control.Name(), err)
	}

	if err := b.control.Set(out); err != nil {
		return fmt.Errorf("model.%s -> control.%s: %w", b.model.Name(), b.control.Name(), err)
	}

	logger.Debug("binding %s: model.%s -> control.%s = %v", b.id, b.model.Name(), b.control.Name(), out)

	return nil
}

// reverse transfers control -> model through ConvertBack.
func (b *Binding) reverse() error {
	v, err := b.control.Get()
	if err != nil {
		return err
	}

	out, err := b.conv.ConvertBack(v, b.model.Type(), b.desc.ConverterParameter, b.culture)
	if err != nil {
		return fmt.Errorf("control.%s -> model.%s: %w", b.control.Name(), b.model.Name(), err)
	}

	if err := b.model.Set(out); err != nil {
		return fmt.Errorf("control.%s -> model.%s: %w", b.control.Name(), b.model.Name(), err)
	}

	logger.Debug("binding %s: control.%s -> model.%s = %v", b.id, b.control.Name(), b.model.Name(), out)

	return nil
}

// invoke runs the model's command if it can execute.
func (b *Binding) invoke() error {
	v, err := b.model.Get()
	if err != nil {
		return err
	}

	if convert.IsAbsent(v) {
		return nil
	}

	cmd, ok := v.(command.Command)
	if !ok {
		return &ResolutionError{Object: fmt.Sprintf("%T", v), Member: b.model.Name(), Err: ErrNotCommand}
	}

	param := b.desc.ConverterParameter
	if cmd.CanExecute(param) {
		logger.Debug("binding %s: %s fired, executing %s", b.id, b.desc.ControlEvent, b.model.Name())
		cmd.Execute(param)
	}

	return nil
}
