package bindfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customerYAML = `
version: "1"
culture: de-DE
views:
  - name: CustomerForm
    members:
      - name: NameBox
        bindings:
          - direction: TwoWay
            model: Name
            control: Text
            event: Change
      - name: PriceBox
        bindings:
          - direction: OneWay
            model: Price
            control: Text
            converter: string_format
            parameter: "%.2f"
      - name: Cells
        bindings:
          - direction: OneWay
            model: Totals
            model_index: 2
            control: Value
`

const customerTOML = `
version = "1"
culture = "de-DE"

[[views]]
name = "CustomerForm"

[[views.members]]
name = "NameBox"

[[views.members.bindings]]
direction = "TwoWay"
model = "Name"
control = "Text"
event = "Change"

[[views.members]]
name = "PriceBox"

[[views.members.bindings]]
direction = "OneWay"
model = "Price"
control = "Text"
converter = "string_format"
parameter = "%.2f"

[[views.members]]
name = "Cells"

[[views.members.bindings]]
direction = "OneWay"
model = "Totals"
model_index = 2
control = "Value"
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(customerYAML))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "de-DE", f.Culture)
	require.Len(t, f.Views, 1)

	v := f.Views[0]
	assert.Equal(t, "CustomerForm", v.Name)
	require.Len(t, v.Members, 3)

	name := v.Members[0].Bindings[0]
	assert.Equal(t, "TwoWay", name.Direction)
	assert.Equal(t, "Name", name.Model)
	assert.Equal(t, "Text", name.Control)
	assert.Equal(t, "Change", name.Event)
	assert.Nil(t, name.ModelIndex)

	price := v.Members[1].Bindings[0]
	assert.Equal(t, "string_format", price.Converter)
	assert.Equal(t, "%.2f", price.Parameter)

	cells := v.Members[2].Bindings[0]
	assert.Equal(t, Index{2}, cells.ModelIndex)
	assert.Nil(t, cells.ControlIndex)
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte("views: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)
	assert.Empty(t, f.Views)
}

func TestParse_IndexForms(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Index
	}{
		{"scalar int", "model_index: 3", Index{3}},
		{"scalar string", "model_index: key", Index{"key"}},
		{"list", "model_index: [1, two]", Index{1, "two"}},
		{"empty list", "model_index: []", Index{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Binding
			require.NoError(t, yamlUnmarshal(tt.yaml, &b))
			assert.Equal(t, tt.want, b.ModelIndex)
		})
	}
}

func TestParse_IndexRejectsMaps(t *testing.T) {
	var b Binding
	assert.Error(t, yamlUnmarshal("model_index: {a: 1}", &b))
	assert.Error(t, yamlUnmarshal("model_index: [[1]]", &b))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("views: [unclosed"))
	assert.Error(t, err)

	_, err = ParseTOML([]byte("views = "))
	assert.Error(t, err)
}

func TestParseTOML_MatchesYAML(t *testing.T) {
	fromYAML, err := Parse([]byte(customerYAML))
	require.NoError(t, err)

	fromTOML, err := ParseTOML([]byte(customerTOML))
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
}

func TestParseTOML_Empty(t *testing.T) {
	f, err := ParseTOML(nil)
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "bindings.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(customerYAML), 0o644))

	tomlPath := filepath.Join(dir, "bindings.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(customerTOML), 0o644))

	a, err := LoadFile(yamlPath, FormatAuto)
	require.NoError(t, err)

	b, err := LoadFile(tomlPath, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// An explicit format overrides the extension.
	_, err = LoadFile(tomlPath, FormatYAML)
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"), FormatAuto)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	f, err := Parse([]byte(customerYAML))
	require.NoError(t, err)

	for _, name := range []string{"out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteFile(f, path))

			back, err := LoadFile(path, FormatAuto)
			require.NoError(t, err)
			assert.Equal(t, f, back)
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" toml ", FormatTOML, false},
		{"json", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}

		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	assert.Equal(t, FormatTOML, DetectFormat("a/b.TOML"))
	assert.Equal(t, FormatYAML, DetectFormat("a/b.yml"))
	assert.Equal(t, FormatYAML, DetectFormat("bindings"))
}

func TestIndex_String(t *testing.T) {
	assert.Equal(t, "[2]", Index{2}.String())
	assert.Equal(t, "[1 a]", Index{1, "a"}.String())
	assert.Nil(t, Index(nil).Values())
	assert.Equal(t, []any{1}, Index{1}.Values())
}
