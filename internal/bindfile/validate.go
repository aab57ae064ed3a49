package bindfile

import (
	"fmt"

	"golang.org/x/text/language"

	"propbind/internal/binding"
	"propbind/internal/convert"
	"propbind/internal/diagnostic"
	"propbind/internal/match"
)

const maxSuggestions = 3

// Validate checks a binding file against the converters and enum types of
// reg. A nil reg means the built-in converters only. Problems that keep a
// binding from being compiled are errors; declarations that are accepted but
// ignored are warnings.
func Validate(f *File, reg *convert.Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.Report(diagnostic.Location{}, diagnostic.NilFile, "binding file is nil")
		return res
	}

	walk(f, registryOrDefault(reg), res, nil)

	return res
}

func registryOrDefault(reg *convert.Registry) *convert.Registry {
	if reg == nil {
		return convert.NewRegistry()
	}

	return reg
}

// walk visits every binding of f, reporting to res and handing each valid
// descriptor to emit when emit is non-nil.
func walk(f *File, reg *convert.Registry, res *diagnostic.Diagnostics, emit func(view, member string, d binding.Descriptor)) {
	culture, _ := parseCulture(res, f.Culture, diagnostic.Location{})

	seenViews := map[string]struct{}{}

	for i := range f.Views {
		v := &f.Views[i]

		if v.Name == "" {
			res.Reportf(diagnostic.Location{}, diagnostic.MissingViewName, "view %d has no name", i+1)
			continue
		}

		view := diagnostic.InView(v.Name)

		if _, dup := seenViews[v.Name]; dup {
			res.Reportf(view, diagnostic.DuplicateView, "duplicate view %q", v.Name)
			continue
		}

		seenViews[v.Name] = struct{}{}

		if len(v.Members) == 0 {
			res.Report(view, diagnostic.NoMembers, "view declares no members")
		}

		for j := range v.Members {
			m := &v.Members[j]

			if m.Name == "" {
				res.Reportf(view, diagnostic.MissingMemberName, "member %d has no name", j+1)
				continue
			}

			member := view.At(m.Name)

			if _, err := binding.ParsePath(m.Name); err != nil {
				res.Report(member, diagnostic.InvalidMemberPath, err.Error())
				continue
			}

			if len(m.Bindings) == 0 {
				res.Report(member, diagnostic.NoBindings, "member declares no bindings")
			}

			for k := range m.Bindings {
				at := member
				if len(m.Bindings) > 1 {
					at = member.Nth(k + 1)
				}

				d, ok := descriptor(res, at, culture, &m.Bindings[k], reg)
				if ok && emit != nil {
					emit(v.Name, m.Name, d)
				}
			}
		}
	}
}

// descriptor converts b into a binding.Descriptor. It returns false if any
// error was reported.
func descriptor(
	res *diagnostic.Diagnostics,
	at diagnostic.Location,
	fileCulture language.Tag,
	b *Binding,
	reg *convert.Registry,
) (binding.Descriptor, bool) {
	errs := len(res.Errors)

	dir, err := binding.ParseDirection(b.Direction)
	if err != nil {
		names := make([]string, len(binding.Directions))
		for i, d := range binding.Directions {
			names[i] = d.String()
		}

		res.Report(at, diagnostic.UnknownDirection, err.Error(),
			match.Suggest(b.Direction, names, maxSuggestions, match.DefaultThreshold)...)

		return binding.Descriptor{}, false
	}

	d := binding.Descriptor{
		Direction:          dir,
		ModelProperty:      b.Model,
		ModelIndex:         b.ModelIndex.Values(),
		ControlProperty:    b.Control,
		ControlIndex:       b.ControlIndex.Values(),
		ControlEvent:       b.Event,
		ConverterParameter: b.Parameter,
		Culture:            fileCulture,
	}

	if dir == binding.Command {
		d.ControlProperty = ""
		d.ControlIndex = nil

		if b.Control != "" || b.ControlIndex != nil {
			res.Report(at, diagnostic.UnusedControl, "Command bindings ignore the control property")
		}

		if b.Converter != "" {
			res.Report(at, diagnostic.UnusedConverter, "Command bindings ignore the converter")
		}
	} else if !dir.HasReverse() && b.Event != "" {
		res.Reportf(at, diagnostic.UnusedEvent, "%s bindings ignore the control event", dir)
	}

	checkIndex(res, at, "model_index", b.ModelIndex)
	checkIndex(res, at, "control_index", b.ControlIndex)

	if b.Culture != "" {
		if tag, ok := parseCulture(res, b.Culture, at); ok {
			d.Culture = tag
		}
	}

	if b.Converter != "" && dir != binding.Command {
		factory, ok := reg.Get(b.Converter)
		if !ok {
			res.Report(at, diagnostic.UnknownConverter, fmt.Sprintf("unknown converter %q", b.Converter),
				match.Suggest(b.Converter, reg.Names(), maxSuggestions, match.DefaultThreshold)...)
		}

		d.Converter = factory

		if b.Converter == convert.NameEnumToInt {
			d.ConverterParameter = enumParameter(res, at, b.Parameter, reg)
		}
	}

	if err := d.Validate(); err != nil {
		res.Report(at, diagnostic.InvalidBinding, err.Error())
	}

	return d, len(res.Errors) == errs
}

func checkIndex(res *diagnostic.Diagnostics, at diagnostic.Location, field string, x Index) {
	if x != nil && len(x) == 0 {
		res.Reportf(at, diagnostic.EmptyIndex, "%s: %v", field, errEmptyIndex)
		return
	}

	for _, v := range x {
		if v == nil {
			res.Report(at, diagnostic.NullIndex, field+": index values must not be null")
			return
		}
	}
}

func enumParameter(res *diagnostic.Diagnostics, at diagnostic.Location, param any, reg *convert.Registry) *convert.EnumType {
	name, ok := param.(string)
	if !ok || name == "" {
		res.Report(at, diagnostic.MissingEnum, "enum_to_int needs the enum type name as parameter")
		return nil
	}

	e, ok := reg.Enum(name)
	if !ok {
		res.Report(at, diagnostic.UnknownEnum, fmt.Sprintf("unknown enum type %q", name),
			match.Suggest(name, reg.EnumNames(), maxSuggestions, match.DefaultThreshold)...)
	}

	return e
}

func parseCulture(res *diagnostic.Diagnostics, s string, at diagnostic.Location) (language.Tag, bool) {
	if s == "" {
		return language.Und, true
	}

	tag, err := language.Parse(s)
	if err != nil {
		res.Reportf(at, diagnostic.InvalidCulture, "invalid culture %q: %v", s, err)
		return language.Und, false
	}

	return tag, true
}
