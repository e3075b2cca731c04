package usecase

import (
	"testing"

	"member-admin/internal/member"
	"member-admin/internal/model"
	"member-admin/pkg/paginator"

	"github.com/stretchr/testify/assert"
)

func sel(ids ...string) map[string]struct{} {
	m := map[string]struct{}{}
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

func TestProject(t *testing.T) {
	records := genMembers(25, 0)

	p := Project(records, member.State{Page: 3, Selected: sel("021", "001")}, 10)

	assert.Len(t, p.Rows, 5)
	assert.Equal(t, 25, p.WorkingTotal)
	assert.Equal(t, 3, p.Paginator.TotalPages())
	assert.True(t, p.Rows[0].Selected)
	assert.False(t, p.PageSelected)
	assert.Equal(t, "2 of 25 row(s) selected.", p.SelectionLabel)

	labels := make([]string, len(p.Controls))
	for i, c := range p.Controls {
		labels[i] = c.Label
	}
	assert.Equal(t, []string{"First", "Previous", "1", "2", "3", "Next", "Last"}, labels)

	active := []paginator.Control{}
	for _, c := range p.Controls {
		if c.Active {
			active = append(active, c)
		}
	}
	// "3" and Last both target page 3.
	assert.Len(t, active, 2)
	assert.False(t, p.Controls[5].Enabled)
}

func TestProjectFilterMatchesAnyField(t *testing.T) {
	records := []model.Member{
		{ID: "1", Name: "Aaron Miles", Email: "aaron@mailinator.com", Role: "member"},
		{ID: "2", Name: "Aishwarya Naik", Email: "aishwarya@mailinator.com", Role: "admin"},
		{ID: "3", Name: "Arvind Kumar", Email: "arvind@mailinator.com", Role: "admin"},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3"}},
		{"ADMIN", []string{"2", "3"}},
		{" miles ", []string{"1"}},
		{"3", []string{"3"}},
		{"@mailinator", []string{"1", "2", "3"}},
		{"zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			p := Project(records, member.State{Query: tt.query, Page: 1}, 10)
			assert.Equal(t, tt.want, rowIDs(p))
			assert.Equal(t, tt.query, p.Query)
		})
	}
}

func TestProjectKeepsEditRow(t *testing.T) {
	records := []model.Member{
		{ID: "1", Name: "Carol", Email: "as@x.com", Role: "admin"},
		{ID: "2", Name: "Alice Stone", Email: "alice@x.com", Role: "member"},
	}

	p := Project(records, member.State{Query: "alice", Page: 1, Editing: "1"}, 10)
	assert.Equal(t, []string{"1", "2"}, rowIDs(p))
	assert.True(t, p.Rows[0].Editing)

	p = Project(records, member.State{Query: "alice", Page: 1}, 10)
	assert.Equal(t, []string{"2"}, rowIDs(p))
}

func TestProjectPageSelected(t *testing.T) {
	records := genMembers(3, 0)
	p := Project(records, member.State{Page: 1, Selected: sel("001", "002", "003")}, 10)
	assert.True(t, p.PageSelected)

	p = Project(nil, member.State{Page: 1, Selected: sel()}, 10)
	assert.False(t, p.PageSelected)
	assert.False(t, p.CanDeleteSelected)
}

func TestReconcile(t *testing.T) {
	records := genMembers(25, 3)

	st := Reconcile(records, member.State{
		Query:    "admin",
		Page:     3,
		Selected: sel("001", "010", "gone"),
		Editing:  "010",
	}, 10)

	// The edit row stays in the working set while the query hides it.
	assert.Equal(t, 1, st.Page)
	assert.Equal(t, sel("001", "010"), st.Selected)
	assert.Equal(t, "010", st.Editing)

	st = Reconcile(records, member.State{Query: "admin", Page: 1, Selected: sel(), Editing: "gone"}, 10)
	assert.Empty(t, st.Editing)

	st = Reconcile(records, member.State{Page: 2, Selected: sel(), Editing: "015"}, 10)
	assert.Equal(t, 2, st.Page)
	assert.Equal(t, "015", st.Editing)

	st = Reconcile(nil, member.State{Page: 4, Selected: sel("1")}, 10)
	assert.Equal(t, 1, st.Page)
	assert.Empty(t, st.Selected)
}
