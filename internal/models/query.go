package models

// Query selects a reference by name substring and, optionally, by role.
//
// Name is matched case-insensitively as a substring. Role is matched exactly;
// an empty Role disables the filter.
type Query struct {
	Name string
	Role string
}

// HasRole reports whether the query filters by role
func (q Query) HasRole() bool {
	return q.Role != ""
}
