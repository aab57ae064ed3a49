package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"propbind/internal/common"
)

// Severity is the level a diagnostic is reported at.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Location points into a binding file. Binding is the 1-based position of
// the binding within its member, or zero when the member has only one.
type Location struct {
	View    string
	Member  string
	Binding int
}

// InView returns the location of a view.
func InView(view string) Location {
	return Location{View: view}
}

// At returns the location of a member of l's view.
func (l Location) At(member string) Location {
	return Location{View: l.View, Member: member}
}

// Nth returns the location of the k-th binding (1-based) of l's member.
func (l Location) Nth(k int) Location {
	l.Binding = k
	return l
}

// String formats l as "[View] Member#k", leaving out the empty parts.
func (l Location) String() string {
	var parts []string
	if l.View != "" {
		parts = append(parts, "["+l.View+"]")
	}

	if l.Member != "" {
		m := l.Member
		if l.Binding > 0 {
			m = fmt.Sprintf("%s#%d", m, l.Binding)
		}

		parts = append(parts, m)
	}

	return strings.Join(parts, " ")
}

// Diagnostic is one problem found in a binding file.
type Diagnostic struct {
	Location

	Severity Severity
	Code     Code
	Message  string
	// Suggestions are known names close to a misspelled one.
	Suggestions []string
}

// String formats the diagnostic as "[View] Member: [code] message".
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if at := d.Location.String(); at != "" {
		return at + ": " + msg
	}

	return msg
}

// Diagnostics collects the diagnostics of one check, split by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Report records a diagnostic at the severity of its code.
func (d *Diagnostics) Report(at Location, code Code, message string, suggestions ...string) {
	diag := Diagnostic{
		Location:    at,
		Severity:    code.Severity(),
		Code:        code,
		Message:     message,
		Suggestions: suggestions,
	}

	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// Reportf is Report with a formatted message.
func (d *Diagnostics) Reportf(at Location, code Code, format string, args ...any) {
	d.Report(at, code, fmt.Sprintf(format, args...))
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Merge appends the diagnostics of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Codes returns the codes reported at severity s, in report order.
func (d *Diagnostics) Codes(s Severity) []Code {
	var codes []Code
	for _, diag := range d.All() {
		if diag.Severity == s {
			codes = append(codes, diag.Code)
		}
	}

	return codes
}

// View returns the diagnostics located in the named view.
func (d *Diagnostics) View(name string) []Diagnostic {
	var out []Diagnostic
	for _, diag := range d.All() {
		if diag.View == name {
			out = append(out, diag)
		}
	}

	return out
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
