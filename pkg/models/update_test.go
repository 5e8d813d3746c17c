package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestDiffKeepsOnlyRealChanges(t *testing.T) {
	current := Asset{ID: "AVM-001", Name: "Projector", Status: "Active", Grade: "B"}

	tests := []struct {
		name     string
		edits    UpdateFields
		expected map[string]string
	}{
		{
			name:     "untouched form",
			edits:    UpdateFields{},
			expected: map[string]string{},
		},
		{
			name:     "touched but unchanged value",
			edits:    UpdateFields{Status: strPtr("Active")},
			expected: map[string]string{},
		},
		{
			name:     "real change",
			edits:    UpdateFields{Status: strPtr("Loaned"), Grade: strPtr("B")},
			expected: map[string]string{"status": "Loaned"},
		},
		{
			name:     "clearing a field is a change",
			edits:    UpdateFields{Name: strPtr("")},
			expected: map[string]string{"name": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.edits.Diff(current))
		})
	}
}

func TestValuesIgnoresUntouchedFields(t *testing.T) {
	edits := UpdateFields{Location: strPtr("Aula"), Remarks: strPtr("")}

	assert.Equal(t, map[string]string{"location": "Aula", "remarks": ""}, edits.Values())
	assert.False(t, edits.IsEmpty())
	assert.True(t, UpdateFields{}.IsEmpty())
}

func TestAssetFieldLookup(t *testing.T) {
	a := Asset{ID: "AVM-001", Owner: "Kasia"}

	owner, ok := a.Field("owner")
	assert.True(t, ok)
	assert.Equal(t, "Kasia", owner)

	_, ok = a.Field("budget")
	assert.False(t, ok)
}
