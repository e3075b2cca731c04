package http

import (
	"strings"

	"member-admin/internal/member"
	"member-admin/pkg/paginator"
)

// --- Request DTOs ---

type searchReq struct {
	Query string `json:"query" form:"query"`
}

func (r searchReq) toInput(viewID string) member.SearchInput {
	return member.SearchInput{ViewID: viewID, Query: r.Query}
}

type goToPageReq struct {
	Page int `json:"page" form:"page"`
}

func (r goToPageReq) toInput(viewID string) member.GoToPageInput {
	return member.GoToPageInput{ViewID: viewID, Page: r.Page}
}

type updateFieldReq struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func (r updateFieldReq) toInput(viewID, memberID string) member.UpdateFieldInput {
	return member.UpdateFieldInput{
		ViewID:   viewID,
		MemberID: memberID,
		Field:    strings.ToLower(strings.TrimSpace(r.Field)),
		Value:    r.Value,
	}
}

// --- Response DTOs ---

type memberResp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Selected bool   `json:"selected"`
	Editing  bool   `json:"editing"`
}

type selectionResp struct {
	Count        int    `json:"count"`
	Total        int    `json:"total"`
	Label        string `json:"label"`
	PageSelected bool   `json:"page_selected"`
	CanDelete    bool   `json:"can_delete"`
}

type viewResp struct {
	ViewID      string                      `json:"view_id"`
	FetchFailed bool                        `json:"fetch_failed"`
	Query       string                      `json:"query"`
	Members     []memberResp                `json:"members"`
	Pagination  paginator.PaginatorResponse `json:"pagination"`
	Controls    []paginator.Control         `json:"controls"`
	Selection   selectionResp               `json:"selection"`
	Editing     string                      `json:"editing,omitempty"`
}

func (h *Handler) newViewResp(o member.ViewOutput) viewResp {
	members := make([]memberResp, len(o.Rows))
	for i, r := range o.Rows {
		members[i] = memberResp{
			ID:       r.Member.ID,
			Name:     r.Member.Name,
			Email:    r.Member.Email,
			Role:     r.Member.Role,
			Selected: r.Selected,
			Editing:  r.Editing,
		}
	}

	return viewResp{
		ViewID:      o.ViewID,
		FetchFailed: o.FetchFailed,
		Query:       o.Query,
		Members:     members,
		Pagination:  o.Paginator.ToResponse(),
		Controls:    o.Controls,
		Selection: selectionResp{
			Count:        o.SelectedCount,
			Total:        o.WorkingTotal,
			Label:        o.SelectionLabel,
			PageSelected: o.PageSelected,
			CanDelete:    o.CanDeleteSelected,
		},
		Editing: o.Editing,
	}
}
