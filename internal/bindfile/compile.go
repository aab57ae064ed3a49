package bindfile

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"propbind/internal/binder"
	"propbind/internal/binding"
	"propbind/internal/convert"
	"propbind/internal/diagnostic"
)

// Entry is one compiled binding of a view member.
type Entry struct {
	Member     string
	Descriptor binding.Descriptor
}

// Set holds the compiled bindings of a file, keyed by view type name.
// It implements binder.Discoverer.
type Set struct {
	views map[string][]Entry
}

var _ binder.Discoverer = (*Set)(nil)

// Compile validates f and compiles it. Any error diagnostic fails the
// compilation; warnings are returned alongside the Set.
func Compile(f *File, reg *convert.Registry) (*Set, *diagnostic.Diagnostics, error) {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.Report(diagnostic.Location{}, diagnostic.NilFile, "binding file is nil")
		return nil, res, res.Error()
	}

	s := &Set{views: make(map[string][]Entry)}

	walk(f, registryOrDefault(reg), res, func(view, member string, d binding.Descriptor) {
		s.views[view] = append(s.views[view], Entry{Member: member, Descriptor: d})
	})

	if res.HasErrors() {
		return nil, res, fmt.Errorf("invalid binding file: %w", res.Error())
	}

	for _, v := range f.Views {
		if _, ok := s.views[v.Name]; !ok {
			s.views[v.Name] = nil
		}

		res.Reportf(diagnostic.InView(v.Name), diagnostic.Compiled, "%d bindings", len(s.views[v.Name]))
	}

	return s, res, nil
}

// Views returns the declared view names, sorted.
func (s *Set) Views() []string {
	names := make([]string, 0, len(s.views))
	for name := range s.views {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Entries returns the compiled bindings of a view in declaration order.
func (s *Set) Entries(view string) []Entry {
	return s.views[view]
}

// Len returns the number of compiled bindings across all views.
func (s *Set) Len() int {
	n := 0
	for _, entries := range s.views {
		n += len(entries)
	}

	return n
}

// ViewName returns the name a view is declared under: its type name with
// pointers removed.
func ViewName(view any) string {
	t := reflect.TypeOf(view)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil {
		return ""
	}

	return t.Name()
}

// Discover resolves the members declared for the view's type name. A view
// type the file does not mention has no bindings.
func (s *Set) Discover(view any) ([]binder.Member, error) {
	return s.discover(ViewName(view), view)
}

// For returns a Discoverer that uses the bindings declared under name
// regardless of the view's type.
func (s *Set) For(name string) binder.Discoverer {
	return binder.DiscoverFunc(func(view any) ([]binder.Member, error) {
		return s.discover(name, view)
	})
}

func (s *Set) discover(name string, view any) ([]binder.Member, error) {
	entries := s.views[name]
	if len(entries) == 0 {
		return nil, nil
	}

	accessors := make(map[string]binding.Accessor)
	failed := make(map[string]bool)
	members := make([]binder.Member, 0, len(entries))

	var errs []error

	for _, e := range entries {
		if failed[e.Member] {
			continue
		}

		acc, ok := accessors[e.Member]
		if !ok {
			var err error

			acc, err = binding.Resolve(view, e.Member)
			if err != nil {
				errs = append(errs, fmt.Errorf("view %s member %s: %w", name, e.Member, err))
				failed[e.Member] = true

				continue
			}

			accessors[e.Member] = acc
		}

		members = append(members, binder.Member{
			Name:       e.Member,
			Control:    acc,
			Descriptor: e.Descriptor.Clone(),
		})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return members, nil
}
