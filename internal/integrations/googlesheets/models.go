package googlesheets

import (
	"fmt"

	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/models"
)

// MapHeaders maps sheet column indexes to asset field names. The register
// sheet uses the same header names as the JSON contract, so unknown columns
// are simply skipped.
func MapHeaders(headers []interface{}) map[int]string {
	headerMap := make(map[int]string)

	for i, header := range headers {
		headerStr, ok := header.(string)
		if !ok {
			continue
		}

		switch headerStr {
		case "id", "name", "location", "category", "status",
			"owner", "grade", "lastUpdated", "updatedBy", "remarks", "photoUrl":
			headerMap[i] = headerStr
		}
	}

	return headerMap
}

// ParseAssets converts raw sheet rows into assets. The first row must be the
// header row; rows without an id cell are skipped.
func ParseAssets(values [][]interface{}) []models.Asset {
	if len(values) < 2 {
		return []models.Asset{}
	}

	headerMap := MapHeaders(values[0])

	assets := make([]models.Asset, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		row := values[i]

		var asset models.Asset
		for j, cell := range row {
			fieldName, exists := headerMap[j]
			if !exists {
				continue
			}

			value := toString(cell)
			switch fieldName {
			case "id":
				asset.ID = value
			case "name":
				asset.Name = value
			case "location":
				asset.Location = value
			case "category":
				asset.Category = value
			case "status":
				asset.Status = value
			case "owner":
				asset.Owner = value
			case "grade":
				asset.Grade = value
			case "lastUpdated":
				asset.LastUpdated = value
			case "updatedBy":
				asset.UpdatedBy = value
			case "remarks":
				asset.Remarks = value
			case "photoUrl":
				asset.PhotoURL = value
			}
		}

		if asset.ID == "" {
			continue
		}
		assets = append(assets, asset)
	}

	return assets
}

func toString(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
