package bindfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propbind/internal/binder"
	"propbind/internal/binding"
	"propbind/internal/observe"
)

type order struct {
	observe.PropertyChanged

	Name   string
	Price  float64
	Totals []int
	Shade  shade
}

type input struct {
	*observe.Events

	Text  string
	Value int
}

func newInput() *input { return &input{Events: observe.NewEvents("Change")} }

type CustomerForm struct {
	NameBox  *input
	PriceBox *input
	Cells    *input
}

func newCustomerForm() *CustomerForm {
	return &CustomerForm{NameBox: newInput(), PriceBox: newInput(), Cells: newInput()}
}

func TestCompile(t *testing.T) {
	f, err := Parse([]byte(customerYAML))
	require.NoError(t, err)

	set, res, err := Compile(f, nil)
	require.NoError(t, err)
	assert.True(t, res.IsValid())
	require.Len(t, res.Infos, 1)
	assert.Equal(t, "[CustomerForm]: [compiled] 3 bindings", res.Infos[0].String())

	assert.Equal(t, []string{"CustomerForm"}, set.Views())
	assert.Equal(t, 3, set.Len())

	entries := set.Entries("CustomerForm")
	require.Len(t, entries, 3)
	assert.Equal(t, "NameBox", entries[0].Member)
	assert.Equal(t, binding.TwoWay, entries[0].Descriptor.Direction)
	assert.Equal(t, "de-DE", entries[0].Descriptor.Culture.String())
	assert.NotNil(t, entries[1].Descriptor.Converter)
	assert.Equal(t, []any{2}, entries[2].Descriptor.ModelIndex)
}

func TestCompile_Invalid(t *testing.T) {
	set, res, err := Compile(single(Binding{Direction: "Nope", Model: "Name", Control: "Text"}), nil)
	require.Error(t, err)
	assert.Nil(t, set)
	assert.True(t, res.HasErrors())
	assert.Contains(t, err.Error(), "unknown_direction")

	_, _, err = Compile(nil, nil)
	assert.Error(t, err)
}

func TestSet_DrivesBinder(t *testing.T) {
	f, err := Parse([]byte(customerYAML))
	require.NoError(t, err)

	set, _, err := Compile(f, nil)
	require.NoError(t, err)

	model := &order{Name: "Ada", Price: 12.5, Totals: []int{10, 20, 30}}
	view := newCustomerForm()

	b := binder.New(view, model, binder.WithDiscoverer(set))
	require.NoError(t, b.Apply())
	defer b.Detach()

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, "Ada", view.NameBox.Text)
	assert.Equal(t, "12,50", view.PriceBox.Text)
	assert.Equal(t, 30, view.Cells.Value)

	view.NameBox.Text = "Grace"
	require.NoError(t, view.NameBox.Fire("Change"))
	assert.Equal(t, "Grace", model.Name)

	model.Totals[2] = 31
	require.NoError(t, model.Notify("Totals"))
	assert.Equal(t, 31, view.Cells.Value)
}

func TestSet_EnumBinding(t *testing.T) {
	doc := `
views:
  - name: ShadeForm
    members:
      - name: Picker
        bindings:
          - direction: TwoWay
            model: Shade
            control: Value
            event: Change
            converter: enum_to_int
            parameter: shade
`
	f, err := Parse([]byte(doc))
	require.NoError(t, err)

	set, _, err := Compile(f, testRegistry(t))
	require.NoError(t, err)

	type ShadeForm struct{ Picker *input }

	model := &order{Shade: shadeDark}
	view := &ShadeForm{Picker: newInput()}

	b := binder.New(view, model, binder.WithDiscoverer(set))
	require.NoError(t, b.Apply())
	defer b.Detach()

	assert.Equal(t, 1, view.Picker.Value)

	view.Picker.Value = 0
	require.NoError(t, view.Picker.Fire("Change"))
	assert.Equal(t, shadeLight, model.Shade)
}

func TestSet_Discover(t *testing.T) {
	f, err := Parse([]byte(customerYAML))
	require.NoError(t, err)

	set, _, err := Compile(f, nil)
	require.NoError(t, err)

	members, err := set.Discover(newCustomerForm())
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "PriceBox", members[1].Name)

	control, err := members[1].Control.Get()
	require.NoError(t, err)
	assert.IsType(t, &input{}, control)

	// Unknown view types have no bindings.
	members, err = set.Discover(&struct{ NameBox *input }{})
	require.NoError(t, err)
	assert.Empty(t, members)

	// For binds by declared name regardless of type.
	type OtherForm struct{ NameBox, PriceBox *input }

	_, err = set.For("CustomerForm").Discover(&OtherForm{})
	require.Error(t, err)
	assert.ErrorIs(t, err, binding.ErrUnknownProperty)
	assert.Contains(t, err.Error(), "member Cells")
}

func TestViewName(t *testing.T) {
	assert.Equal(t, "CustomerForm", ViewName(&CustomerForm{}))
	assert.Equal(t, "CustomerForm", ViewName(CustomerForm{}))
	assert.Empty(t, ViewName(nil))
}
