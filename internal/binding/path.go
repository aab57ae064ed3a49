package binding

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Path is a parsed dotted property path such as "Address.Street".
type Path struct {
	Segments []string
}

// ParsePath parses a dotted path of identifiers.
func ParsePath(path string) (Path, error) {
	if path == "" {
		return Path{}, errors.New("empty path")
	}

	var segments []string

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return Path{}, fmt.Errorf("invalid path %q: empty segment", path)
		}

		if !isIdent(part) {
			return Path{}, fmt.Errorf("invalid path %q: invalid identifier %q", path, part)
		}

		segments = append(segments, part)
	}

	return Path{Segments: segments}, nil
}

// Root returns the first segment.
func (p Path) Root() string {
	if len(p.Segments) == 0 {
		return ""
	}

	return p.Segments[0]
}

func (p Path) String() string {
	return strings.Join(p.Segments, ".")
}

func isIdent(s string) bool {
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return s != ""
}
