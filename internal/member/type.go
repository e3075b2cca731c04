package member

import (
	"time"

	"member-admin/internal/model"
	"member-admin/pkg/paginator"
)

type SearchInput struct {
	ViewID string
	Query  string
}

type GoToPageInput struct {
	ViewID string
	Page   int
}

// MemberInput targets one row of a view.
type MemberInput struct {
	ViewID   string
	MemberID string
}

type UpdateFieldInput struct {
	ViewID   string
	MemberID string
	Field    string
	Value    string
}

// State is the view state of one table: everything except the records themselves.
type State struct {
	Query    string
	Page     int
	Selected map[string]struct{}
	Editing  string
}

// Row is one rendered table row.
type Row struct {
	Member   model.Member
	Selected bool
	Editing  bool
}

// Projection is everything needed to render a view. It is derived from records and State and never stored.
type Projection struct {
	Query          string
	Rows           []Row
	Paginator      paginator.Paginator
	Controls       []paginator.Control
	WorkingTotal   int
	SelectedCount  int
	SelectionLabel string
	// PageSelected drives the header checkbox: true when the page is non-empty and fully selected.
	PageSelected      bool
	CanDeleteSelected bool
	Editing           string
}

// ViewOutput is a projection plus the view's identity.
type ViewOutput struct {
	ViewID string
	// FetchFailed is set when the mount-time fetch failed and the table was left empty.
	FetchFailed bool
	Projection
}

// Stats summarizes the live views.
type Stats struct {
	OpenViews int
	MaxViews  int
	TTL       time.Duration
}
