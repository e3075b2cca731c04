package usecase

import (
	"fmt"

	"member-admin/internal/member"
	"member-admin/internal/model"
	"member-admin/pkg/paginator"
)

// workingSet filters records by the normalized query, keeping their order.
// The row under edit stays in the set until it is saved, even if an edit made it stop matching.
func workingSet(records []model.Member, query, editing string) []model.Member {
	term := model.NormalizeTerm(query)
	if term == "" {
		return records
	}
	res := make([]model.Member, 0, len(records))
	for _, m := range records {
		if m.Matches(term) || (editing != "" && m.ID == editing) {
			res = append(res, m)
		}
	}
	return res
}

// pageOf slices working to the given page.
func pageOf(working []model.Member, page, pageSize int) ([]model.Member, paginator.Paginator) {
	return paginator.PaginateSlice(working, paginator.PaginateQuery{
		Page:  page,
		Limit: int64(pageSize),
	})
}

// Reconcile restores the view invariants after records or state changed: the selection only holds
// working-set ids, the edit cursor points at a stored record and the page lies in [1, max(1, N)].
func Reconcile(records []model.Member, st member.State, pageSize int) member.State {
	working := workingSet(records, st.Query, st.Editing)

	visible := make(map[string]struct{}, len(working))
	for _, m := range working {
		visible[m.ID] = struct{}{}
	}

	selected := make(map[string]struct{}, len(st.Selected))
	for id := range st.Selected {
		if _, ok := visible[id]; ok {
			selected[id] = struct{}{}
		}
	}
	st.Selected = selected

	if _, ok := visible[st.Editing]; !ok {
		st.Editing = ""
	}

	st.Page = paginator.ClampPage(st.Page, paginator.TotalPages(int64(len(working)), int64(pageSize)))
	return st
}

// Project renders records under st. It has no side effects.
func Project(records []model.Member, st member.State, pageSize int) member.Projection {
	working := workingSet(records, st.Query, st.Editing)
	items, pag := pageOf(working, st.Page, pageSize)

	rows := make([]member.Row, len(items))
	pageSelected := len(items) > 0
	for i, m := range items {
		_, sel := st.Selected[m.ID]
		rows[i] = member.Row{
			Member:   m,
			Selected: sel,
			Editing:  m.ID == st.Editing,
		}
		pageSelected = pageSelected && sel
	}

	return member.Projection{
		Query:             st.Query,
		Rows:              rows,
		Paginator:         pag,
		Controls:          pag.Controls(),
		WorkingTotal:      len(working),
		SelectedCount:     len(st.Selected),
		SelectionLabel:    SelectionLabel(len(st.Selected), len(working)),
		PageSelected:      pageSelected,
		CanDeleteSelected: len(st.Selected) > 0,
		Editing:           st.Editing,
	}
}

// SelectionLabel is the footer text under the table.
func SelectionLabel(selected, total int) string {
	return fmt.Sprintf("%d of %d row(s) selected.", selected, total)
}
