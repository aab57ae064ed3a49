// Package command defines the Command capability bound by Command-direction
// bindings, and RelayCommand, a closure-backed implementation.
package command

import (
	"propbind/internal/observe"
)

// Command is behavior exposed by a model. Execute must do nothing when
// CanExecute would return false.
type Command interface {
	CanExecute(parameter any) bool
	Execute(parameter any)
	// OnCanExecuteChanged subscribes to executability changes.
	OnCanExecuteChanged(handler func()) observe.Unsubscribe
}

// RelayCommand wraps an action and an optional predicate.
type RelayCommand struct {
	action    func(parameter any)
	predicate func(parameter any) bool
	changed   observe.PropertyChanged
}

var _ Command = (*RelayCommand)(nil)

// NewRelay creates a RelayCommand. A nil predicate means always executable.
func NewRelay(action func(parameter any), predicate func(parameter any) bool) *RelayCommand {
	return &RelayCommand{action: action, predicate: predicate}
}

// CanExecute evaluates the predicate.
func (c *RelayCommand) CanExecute(parameter any) bool {
	if c.predicate == nil {
		return true
	}

	return c.predicate(parameter)
}

// Execute runs the action if CanExecute holds.
func (c *RelayCommand) Execute(parameter any) {
	if c.action == nil || !c.CanExecute(parameter) {
		return
	}

	c.action(parameter)
}

func (c *RelayCommand) OnCanExecuteChanged(handler func()) observe.Unsubscribe {
	return c.changed.SubscribePropertyChanged(func(string) error {
		handler()
		return nil
	})
}

// RaiseCanExecuteChanged tells subscribers that executability may differ.
func (c *RelayCommand) RaiseCanExecuteChanged() {
	_ = c.changed.Notify("CanExecute")
}
