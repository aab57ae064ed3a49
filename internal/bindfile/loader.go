package bindfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a binding file encoding.
type Format string

const (
	FormatAuto Format = "auto"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat parses a format name. The empty string means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown binding file format %q (expected yaml, toml or auto)", s)
	}
}

// DetectFormat picks the format from the file extension, defaulting to YAML.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}

	return FormatYAML
}

// LoadFile loads and parses a binding file from the given path.
func LoadFile(path string, format Format) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read binding file %s: %w", path, err)
	}

	if format == "" || format == FormatAuto {
		format = DetectFormat(path)
	}

	var f *File
	if format == FormatTOML {
		f, err = ParseTOML(data)
	} else {
		f, err = Parse(data)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse binding YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// ParseTOML parses TOML data into a File. The document is read through the
// same schema rules as Parse, so indices may be scalars or arrays.
func ParseTOML(data []byte) (*File, error) {
	var tree map[string]any

	err := toml.Unmarshal(data, &tree)
	if err != nil {
		return nil, fmt.Errorf("failed to parse binding TOML: %w", err)
	}

	if tree == nil {
		tree = map[string]any{}
	}

	doc, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to read binding TOML: %w", err)
	}

	return Parse(doc)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Marshal serializes a File in the given format. FormatAuto means YAML.
func Marshal(f *File, format Format) ([]byte, error) {
	if format == FormatTOML {
		return toml.Marshal(f)
	}

	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path, choosing the format from the
// extension.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f, DetectFormat(path))
	if err != nil {
		return fmt.Errorf("failed to marshal bindings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write binding file %s: %w", path, err)
	}

	return nil
}
