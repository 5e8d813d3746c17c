package roles

// Role reprezentuje poziom uprawnień użytkownika portalu
type Role string

const (
	Viewer Role = "viewer"
	Editor Role = "editor"
	Admin  Role = "admin"
)

// HierarchyLevel określa poziom w hierarchii ról
type HierarchyLevel int

const (
	ViewerLevel HierarchyLevel = 1
	EditorLevel HierarchyLevel = 2
	AdminLevel  HierarchyLevel = 3
)

// GetHierarchyLevel zwraca poziom hierarchii dla danej roli
func (r Role) GetHierarchyLevel() HierarchyLevel {
	switch r {
	case Viewer:
		return ViewerLevel
	case Editor:
		return EditorLevel
	case Admin:
		return AdminLevel
	default:
		return ViewerLevel
	}
}

// HasPermission sprawdza, czy rola ma wymagane uprawnienia
func (r Role) HasPermission(requiredRole Role) bool {
	return r.GetHierarchyLevel() >= requiredRole.GetHierarchyLevel()
}

// IsValid sprawdza, czy rola jest prawidłowa
func (r Role) IsValid() bool {
	switch r {
	case Viewer, Editor, Admin:
		return true
	default:
		return false
	}
}

// String zwraca stringową reprezentację roli
func (r Role) String() string {
	return string(r)
}
