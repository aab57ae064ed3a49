package bindfile

// File is the root of a binding file.
type File struct {
	// Version is the file format version. Defaults to "1".
	Version string `yaml:"version,omitempty" toml:"version,omitempty"`
	// Culture is the BCP-47 tag used by bindings that do not name one.
	Culture string `yaml:"culture,omitempty" toml:"culture,omitempty"`
	// Views declares bindings per view type.
	Views []View `yaml:"views" toml:"views"`
}

// View declares the bindings of one view type.
type View struct {
	// Name is the view's type name, without package or pointer.
	Name    string   `yaml:"name" toml:"name"`
	Members []Member `yaml:"members" toml:"members"`
}

// Member declares the bindings of one control held by the view.
type Member struct {
	// Name is the field path of the control on the view.
	Name     string    `yaml:"name" toml:"name"`
	Bindings []Binding `yaml:"bindings" toml:"bindings"`
}

// Binding is the file form of binding.Descriptor.
type Binding struct {
	Direction string `yaml:"direction" toml:"direction"`
	Model     string `yaml:"model" toml:"model"`
	Control   string `yaml:"control,omitempty" toml:"control,omitempty"`
	Event     string `yaml:"event,omitempty" toml:"event,omitempty"`

	// Converter names a converter in the registry.
	Converter string `yaml:"converter,omitempty" toml:"converter,omitempty"`
	// Parameter is the converter parameter. For enum_to_int it names a
	// registered enum type. For Command bindings it is the command parameter.
	Parameter any `yaml:"parameter,omitempty" toml:"parameter,omitempty"`
	// Culture overrides the file culture.
	Culture string `yaml:"culture,omitempty" toml:"culture,omitempty"`

	ModelIndex   Index `yaml:"model_index,omitempty" toml:"model_index,omitempty"`
	ControlIndex Index `yaml:"control_index,omitempty" toml:"control_index,omitempty"`
}

// Index is an index list. A nil Index means the property is not indexed.
type Index []any
