package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_ReportRoutesBySeverity(t *testing.T) {
	d := &Diagnostics{}
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	form := InView("customerForm")

	d.Reportf(form, Compiled, "%d bindings", 3)
	d.Report(form.At("NameBox"), UnusedEvent, "OneWay bindings ignore the control event")
	assert.False(t, d.HasErrors())

	d.Report(form.At("NameBox").Nth(2), UnknownConverter, `unknown converter "strng_format"`, "string_format")
	assert.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`[customerForm] NameBox#2: [unknown_converter] unknown converter "strng_format" (did you mean string_format?)`,
		err.Error())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)

	assert.Equal(t, []Code{UnknownConverter}, d.Codes(SeverityError))
	assert.Equal(t, []Code{UnusedEvent}, d.Codes(SeverityWarning))
	assert.Equal(t, []Code{Compiled}, d.Codes(SeverityInfo))
}

func TestDiagnostics_Merge(t *testing.T) {
	a := &Diagnostics{}
	a.Report(Location{}, NilFile, "binding file is nil")

	b := Diagnostics{}
	b.Report(InView("Form"), DuplicateView, `duplicate view "Form"`)
	b.Report(InView("Empty"), NoMembers, "view declares no members")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
	assert.Equal(t, `[file_is_nil] binding file is nil; [Form]: [duplicate_view] duplicate view "Form"`, a.Error().Error())
}

func TestDiagnostics_View(t *testing.T) {
	d := &Diagnostics{}
	d.Report(InView("Form").At("Box"), InvalidBinding, "model property is required")
	d.Report(InView("Other"), NoMembers, "view declares no members")
	d.Report(InView("Form").At("Save"), UnusedControl, "Command bindings ignore the control property")

	got := d.View("Form")
	require.Len(t, got, 2)
	assert.Equal(t, "Box", got[0].Member)
	assert.Equal(t, "Save", got[1].Member)
	assert.Empty(t, d.View("Missing"))
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		at   Location
		want string
	}{
		{Location{}, ""},
		{InView("Form"), "[Form]"},
		{InView("Form").At("Box"), "[Form] Box"},
		{InView("Form").At("Box").Nth(3), "[Form] Box#3"},
		{Location{Member: "Box"}, "Box"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.at.String())
	}
}

func TestCode_Severity(t *testing.T) {
	assert.Equal(t, SeverityError, UnknownDirection.Severity())
	assert.Equal(t, SeverityError, Code("something_new").Severity())
	assert.Equal(t, SeverityWarning, NoBindings.Severity())
	assert.Equal(t, SeverityInfo, Compiled.Severity())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
