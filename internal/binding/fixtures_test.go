package binding

import (
	"reflect"

	"golang.org/x/text/language"

	"propbind/internal/command"
	"propbind/internal/observe"
)

type address struct {
	Street string
	City   string
}

type person struct {
	observe.PropertyChanged

	Text    string
	Count   int
	Value   float64
	Enabled bool
	Items   []string
	Scores  *observe.List[int]
	Labels  map[string]string
	Save    command.Command
	Address *address
	hidden  string
}

func (p *person) set(name string, apply func()) error {
	apply()
	return p.Notify(name)
}

type textBox struct {
	*observe.Events

	Text     string
	Value    float64
	Checked  bool
	Cells    []string
	Grid     *observe.List[int]
	Captions map[string]string
}

func newTextBox() *textBox {
	return &textBox{Events: observe.NewEvents("Change", "Click")}
}

// plainModel does not publish property changes.
type plainModel struct {
	Text string
}

// hookConverter passes values through unchanged and runs itself on every
// conversion.
type hookConverter func()

func (h hookConverter) Convert(value any, _ reflect.Type, _ any, _ language.Tag) (any, error) {
	h()
	return value, nil
}

func (h hookConverter) ConvertBack(value any, _ reflect.Type, _ any, _ language.Tag) (any, error) {
	h()
	return value, nil
}
