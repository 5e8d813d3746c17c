package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/models"
)

// Header is the fixed column order of every export, matching the register.
var Header = []string{
	"id", "name", "location", "category", "status",
	"owner", "grade", "lastUpdated", "updatedBy", "remarks",
}

// WriteCSV renders the assets as a CSV document. Data fields are always
// double-quote wrapped with internal quotes doubled, so commas, quotes and
// newlines inside a cell survive a round trip through any CSV reader.
func WriteCSV(assets []models.Asset) string {
	var b strings.Builder
	b.WriteString(strings.Join(Header, ","))
	b.WriteString("\r\n")

	for _, a := range assets {
		row := []string{
			a.ID, a.Name, a.Location, a.Category, a.Status,
			a.Owner, a.Grade, a.LastUpdated, a.UpdatedBy, a.Remarks,
		}
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteString("\r\n")
	}

	return b.String()
}

// Filename returns the download name for an export generated at the given
// time, assets_export_<YYYY-MM-DD>.csv.
func Filename(at time.Time) string {
	return fmt.Sprintf("assets_export_%s.csv", at.Format("2006-01-02"))
}
