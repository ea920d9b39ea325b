package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndError(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("empty_field", "no title", "item 3", "title")
	assert.True(t, d.IsValid())

	d.AddError("duplicate_field", `duplicate field "subject"`, "crosswalk", "subject")
	d.AddError("unknown_handler", "handler 0 is not registered", "crosswalk", "")

	assert.True(t, d.HasErrors())
	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`[crosswalk] subject: [duplicate_field] duplicate field "subject"; [crosswalk]: [unknown_handler] handler 0 is not registered`,
		err.Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo("i", "info", "", "")
	b.AddWarning("w", "warn", "item 1", "")
	b.AddError("e", "err", "item 1", "date")

	a.Merge(b)

	all := a.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[1].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		d        Diagnostic
		expected string
	}{
		{"bare", Diagnostic{Message: "m"}, "m"},
		{"code only", Diagnostic{Code: "c", Message: "m"}, "[c] m"},
		{"scope and field", Diagnostic{Code: "c", Message: "m", Scope: "item 2", Field: "type"}, "[item 2] type: [c] m"},
		{"one suggestion", Diagnostic{Code: "c", Message: "m", Suggestions: []string{"title"}}, `[c] m, did you mean "title"?`},
		{"two suggestions", Diagnostic{Message: "m", Suggestions: []string{"date", "type"}}, `m, did you mean "date" or "type"?`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.d.String())
		})
	}
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}

func TestDiagnostics_AddWithSuggestions(t *testing.T) {
	var d Diagnostics
	d.AddWarning("unknown_element", `"titl" is not a Dublin Core element`, "crosswalk", "titl", "title")
	d.AddInfo("empty_field", "no value", "item 1", "rights")

	require.Len(t, d.Warnings, 1)
	assert.Equal(t, []string{"title"}, d.Warnings[0].Suggestions)
	assert.Nil(t, d.Infos[0].Suggestions)
}
