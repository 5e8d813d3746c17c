package models

// Asset is a single piece of AV equipment as stored in the remote register.
// Every field except ID is optional; the register returns empty strings for
// cells that were never filled in, so "" means absent throughout.
type Asset struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Location    string `json:"location,omitempty"`
	Category    string `json:"category,omitempty"`
	Status      string `json:"status,omitempty"`
	Owner       string `json:"owner,omitempty"`
	Grade       string `json:"grade,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
	UpdatedBy   string `json:"updatedBy,omitempty"`
	Remarks     string `json:"remarks,omitempty"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}

// Field returns the value of a named asset field. The second result reports
// whether the key is a known field name at all.
func (a Asset) Field(key string) (string, bool) {
	switch key {
	case "id":
		return a.ID, true
	case "name":
		return a.Name, true
	case "location":
		return a.Location, true
	case "category":
		return a.Category, true
	case "status":
		return a.Status, true
	case "owner":
		return a.Owner, true
	case "grade":
		return a.Grade, true
	case "lastUpdated":
		return a.LastUpdated, true
	case "updatedBy":
		return a.UpdatedBy, true
	case "remarks":
		return a.Remarks, true
	case "photoUrl":
		return a.PhotoURL, true
	default:
		return "", false
	}
}
