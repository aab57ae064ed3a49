package binder_test

import (
	"fmt"

	"propbind/internal/binder"
	"propbind/internal/binding"
	"propbind/internal/observe"
)

type Settings struct {
	observe.PropertyChanged

	Title string
}

type TitleBox struct {
	*observe.Events

	Text string
}

type SettingsView struct {
	Title *TitleBox
}

func (v *SettingsView) DeclareBindings(t *binder.Table) {
	t.Field(v, "Title", binding.Descriptor{
		Direction:       binding.TwoWay,
		ModelProperty:   "Title",
		ControlProperty: "Text",
		ControlEvent:    "Changed",
	})
}

func ExampleBinder() {
	model := &Settings{Title: "untitled"}
	view := &SettingsView{Title: &TitleBox{Events: observe.NewEvents("Changed")}}

	b := binder.New(view, model)
	if err := b.Apply(); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(view.Title.Text)

	view.Title.Text = "report"
	_ = view.Title.Fire("Changed")
	fmt.Println(model.Title)

	b.Detach()
	fmt.Println(b.Applied(), model.Subscribers())

	// Output:
	// untitled
	// report
	// false 0
}
