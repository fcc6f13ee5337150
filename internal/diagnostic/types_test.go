package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddBySeverity(t *testing.T) {
	var d Diagnostics

	d.AddError(CodeUnresolvedReference, "no such type", "order", "shop.order.status")
	d.AddWarning(CodeDuplicateName, "shadowed", "", "")
	d.AddInfo("note", "fyi", "", "")
	d.Add(Diagnostic{Severity: SeverityError, Code: CodeInternal, Message: "boom"})

	assert.Len(t, d.Errors, 2)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)
	assert.Equal(t, 4, d.Len())
	assert.True(t, d.HasErrors())

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityError, all[1].Severity)
	assert.Equal(t, SeverityWarning, all[2].Severity)
	assert.Equal(t, SeverityInfo, all[3].Severity)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("x", "first", "", "")
	b.AddError("y", "second", "", "")
	b.AddWarning("z", "third", "", "")

	a.Merge(&b)
	a.Merge(nil)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
	assert.Equal(t, "second", a.Errors[1].Message)
}

func TestDiagnostics_Err(t *testing.T) {
	var d Diagnostics
	require.NoError(t, d.Err())

	d.AddWarning("w", "only a warning", "", "")
	require.NoError(t, d.Err())

	d.AddError(CodeMissingNamespace, "entity has no namespace", "person", "person")
	d.AddError(CodeMissingType, "property has no type", "person", "person.age")

	err := d.Err()
	require.Error(t, err)
	assert.Equal(t,
		"[person] person: [missing_namespace] entity has no namespace; "+
			"[person] person.age: [missing_type] property has no type",
		err.Error())
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "message only",
			diag:     Diagnostic{Message: "plain"},
			expected: "plain",
		},
		{
			name:     "code and unit",
			diag:     Diagnostic{Code: "c", Message: "m", Unit: "order"},
			expected: "[order]: [c] m",
		},
		{
			name: "suggestions",
			diag: Diagnostic{
				Code: CodeUnresolvedReference, Message: "unknown type", Path: "order.status",
				Suggestions: []string{"order_state", "status"},
			},
			expected: "order.status: [unresolved_reference] unknown type (did you mean order_state, status?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestSeverity_MarshalText(t *testing.T) {
	for s, want := range map[Severity]string{
		SeverityInfo:    "info",
		SeverityWarning: "warning",
		SeverityError:   "error",
		Severity(9):     "unknown",
	} {
		got, err := s.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}
}
