package repository

// Filter narrows List to members matching the search term.
type Filter struct {
	// Term must already be normalized with model.NormalizeTerm; empty matches all.
	Term string
	// Keep is listed even when it does not match Term.
	Keep string
}

// ListOptions contains options for listing members.
type ListOptions struct {
	Filter Filter
}

// UpdateOptions sets one editable field of one member.
type UpdateOptions struct {
	ID    string
	Field string
	Value string
}
