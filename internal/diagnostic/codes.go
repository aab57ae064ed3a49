package diagnostic

// Code identifies the kind of problem a diagnostic reports. Each code has
// a fixed severity.
type Code string

// Codes reported as errors. A binding with an error is not compiled.
const (
	NilFile           Code = "file_is_nil"
	MissingViewName   Code = "missing_view_name"
	DuplicateView     Code = "duplicate_view"
	MissingMemberName Code = "missing_member_name"
	InvalidMemberPath Code = "invalid_member_path"
	UnknownDirection  Code = "unknown_direction"
	UnknownConverter  Code = "unknown_converter"
	MissingEnum       Code = "missing_enum"
	UnknownEnum       Code = "unknown_enum"
	EmptyIndex        Code = "empty_index"
	NullIndex         Code = "null_index"
	InvalidCulture    Code = "invalid_culture"
	InvalidBinding    Code = "invalid_binding"
)

// Codes reported as warnings: the declaration is accepted but partly ignored.
const (
	NoMembers       Code = "no_members"
	NoBindings      Code = "no_bindings"
	UnusedEvent     Code = "unused_event"
	UnusedControl   Code = "unused_control"
	UnusedConverter Code = "unused_converter"
)

// Compiled is reported as info once per compiled view.
const Compiled Code = "compiled"

// Severity returns the severity c is reported with.
func (c Code) Severity() Severity {
	switch c {
	case NoMembers, NoBindings, UnusedEvent, UnusedControl, UnusedConverter:
		return SeverityWarning
	case Compiled:
		return SeverityInfo
	default:
		return SeverityError
	}
}
