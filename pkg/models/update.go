package models

// UpdateFields is the typed record of per-field edits coming from an update
// form. A nil pointer means the field was not touched at all, which is not
// the same as clearing it to "".
type UpdateFields struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Category *string `json:"category,omitempty"`
	Status   *string `json:"status,omitempty"`
	Owner    *string `json:"owner,omitempty"`
	Grade    *string `json:"grade,omitempty"`
	Remarks  *string `json:"remarks,omitempty"`
}

// Diff compares the edits against the asset as it was originally fetched and
// returns only the fields whose value actually changes. Touched fields that
// carry the current value are dropped, so a no-op form submit produces an
// empty map and no upstream call.
func (u UpdateFields) Diff(current Asset) map[string]string {
	changed := make(map[string]string)

	set := func(key, currentValue string, edit *string) {
		if edit == nil {
			return
		}
		if *edit == currentValue {
			return
		}
		changed[key] = *edit
	}

	set("name", current.Name, u.Name)
	set("location", current.Location, u.Location)
	set("category", current.Category, u.Category)
	set("status", current.Status, u.Status)
	set("owner", current.Owner, u.Owner)
	set("grade", current.Grade, u.Grade)
	set("remarks", current.Remarks, u.Remarks)

	return changed
}

// Values returns every touched field as a plain change map, without diffing
// against a current record. Batch updates use this: the same edits apply to
// many assets, so there is no single "current" to compare with.
func (u UpdateFields) Values() map[string]string {
	changes := make(map[string]string)

	add := func(key string, edit *string) {
		if edit != nil {
			changes[key] = *edit
		}
	}

	add("name", u.Name)
	add("location", u.Location)
	add("category", u.Category)
	add("status", u.Status)
	add("owner", u.Owner)
	add("grade", u.Grade)
	add("remarks", u.Remarks)

	return changes
}

// IsEmpty reports whether no field was touched.
func (u UpdateFields) IsEmpty() bool {
	return u.Name == nil && u.Location == nil && u.Category == nil &&
		u.Status == nil && u.Owner == nil && u.Grade == nil && u.Remarks == nil
}
