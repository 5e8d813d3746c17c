package googlesheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAssets(t *testing.T) {
	values := [][]interface{}{
		{"id", "name", "grade", "Notatki wewnętrzne", "status"},
		{"AVM-001", "Projector", "B+", "ignored", "Active"},
		{"AVM-002", "Mixer", "", "", "Loaned"},
		{"", "row without id is dropped"},
		{"AVM-003"},
	}

	assets := ParseAssets(values)

	assert.Len(t, assets, 3)
	assert.Equal(t, "Projector", assets[0].Name)
	assert.Equal(t, "B+", assets[0].Grade)
	assert.Equal(t, "Active", assets[0].Status)
	assert.Empty(t, assets[0].Remarks, "unknown columns are skipped")
	assert.Equal(t, "AVM-003", assets[2].ID)
	assert.Empty(t, assets[2].Name, "short rows leave fields absent")
}

func TestParseAssetsNeedsHeaderRow(t *testing.T) {
	assert.Empty(t, ParseAssets(nil))
	assert.Empty(t, ParseAssets([][]interface{}{{"id", "name"}}))
}

func TestToStringOnNumericCells(t *testing.T) {
	values := [][]interface{}{
		{"id", "remarks"},
		{"AVM-007", 42},
	}

	assets := ParseAssets(values)

	assert.Equal(t, "42", assets[0].Remarks)
}
