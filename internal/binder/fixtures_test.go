package binder

import (
	"propbind/internal/binding"
	"propbind/internal/command"
	"propbind/internal/observe"
)

type customer struct {
	observe.PropertyChanged

	Name   string
	Age    int
	Active bool
	Submit command.Command
}

func (c *customer) set(name string, apply func()) error {
	apply()
	return c.Notify(name)
}

type field struct {
	*observe.Events

	Text    string
	Checked bool
}

func newField() *field { return &field{Events: observe.NewEvents("Change")} }

type button struct {
	*observe.Events
}

func newButton() *button { return &button{Events: observe.NewEvents("Click")} }

// customerForm declares its own bindings.
type customerForm struct {
	NameBox   *field
	AgeBox    *field
	ActiveBox *field
	SaveBtn   *button
}

func newCustomerForm() *customerForm {
	return &customerForm{
		NameBox:   newField(),
		AgeBox:    newField(),
		ActiveBox: newField(),
		SaveBtn:   newButton(),
	}
}

func (f *customerForm) DeclareBindings(t *Table) {
	t.Field(f, "NameBox", binding.Descriptor{
		Direction:       binding.TwoWay,
		ModelProperty:   "Name",
		ControlProperty: "Text",
		ControlEvent:    "Change",
	})
	t.Field(f, "ActiveBox", binding.Descriptor{
		Direction:       binding.OneWay,
		ModelProperty:   "Active",
		ControlProperty: "Checked",
	})
	t.Bind("SaveBtn", f.SaveBtn, binding.Descriptor{
		Direction:     binding.Command,
		ModelProperty: "Submit",
		ControlEvent:  "Click",
	})
}

func (f *customerForm) subscribers() int {
	return f.NameBox.Subscribers("") + f.AgeBox.Subscribers("") +
		f.ActiveBox.Subscribers("") + f.SaveBtn.Subscribers("")
}

// plainForm declares nothing and is not registered.
type plainForm struct {
	NameBox *field
}

// registeredForm is declared through a Registry.
type registeredForm struct {
	NameBox *field
}
