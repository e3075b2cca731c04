package model

import "strings"

// Member is one row of the admin table as delivered by the data source.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Editable member fields.
const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldRole  = "role"
)

// IsEditableField reports whether field can be changed through inline edit. The id is not editable.
func IsEditableField(field string) bool {
	switch field {
	case FieldName, FieldEmail, FieldRole:
		return true
	}
	return false
}

// Matches reports whether the lowercased term is a substring of any lowercased field.
// The term is expected to be lowercased and trimmed already; the empty term matches everything.
func (m Member) Matches(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.ID), term) ||
		strings.Contains(strings.ToLower(m.Name), term) ||
		strings.Contains(strings.ToLower(m.Email), term) ||
		strings.Contains(strings.ToLower(m.Role), term)
}

// With returns a copy of m with field set to value. Unknown fields leave m unchanged.
func (m Member) With(field, value string) Member {
	switch field {
	case FieldName:
		m.Name = value
	case FieldEmail:
		m.Email = value
	case FieldRole:
		m.Role = value
	}
	return m
}

// NormalizeTerm turns raw search input into the form Matches expects.
func NormalizeTerm(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}
