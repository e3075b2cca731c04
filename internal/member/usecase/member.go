package usecase

import (
	"context"

	"member-admin/internal/member"
	"member-admin/internal/member/repository"
	"member-admin/internal/model"
	"member-admin/pkg/paginator"
)

// working returns the view's working set. Caller holds v.mu.
func (uc *implUseCase) working(ctx context.Context, v *view) ([]model.Member, error) {
	ms, err := v.repo.List(ctx, repository.ListOptions{
		Filter: repository.Filter{
			Term: model.NormalizeTerm(v.state.Query),
			Keep: v.state.Editing,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.member.usecase.working.List: %v", err)
		return nil, err
	}
	return ms, nil
}

func contains(ms []model.Member, id string) bool {
	for _, m := range ms {
		if m.ID == id {
			return true
		}
	}
	return false
}

func (uc *implUseCase) Search(ctx context.Context, ip member.SearchInput) (member.ViewOutput, error) {
	return uc.do(ctx, ip.ViewID, opSearch, func(v *view) error {
		v.state.Query = ip.Query
		v.state.Page = 1

		// A new query drops the edit row if it does not match.
		if v.state.Editing == "" {
			return nil
		}
		m, err := v.repo.Detail(ctx, v.state.Editing)
		if err != nil && err != repository.ErrNotFound {
			uc.l.Errorf(ctx, "internal.member.usecase.Search.Detail: %v", err)
			return err
		}
		if err != nil || !m.Matches(model.NormalizeTerm(ip.Query)) {
			v.state.Editing = ""
		}
		return nil
	})
}

func (uc *implUseCase) GoToPage(ctx context.Context, ip member.GoToPageInput) (member.ViewOutput, error) {
	return uc.do(ctx, ip.ViewID, opGoToPage, func(v *view) error {
		ws, err := uc.working(ctx, v)
		if err != nil {
			return err
		}
		total := paginator.TotalPages(int64(len(ws)), int64(uc.cfg.PageSize))
		if ip.Page >= 1 && ip.Page <= total {
			v.state.Page = ip.Page
		}
		return nil
	})
}

func (uc *implUseCase) ToggleSelect(ctx context.Context, ip member.MemberInput) (member.ViewOutput, error) {
	return uc.do(ctx, ip.ViewID, opToggleSelect, func(v *view) error {
		ws, err := uc.working(ctx, v)
		if err != nil {
			return err
		}
		if !contains(ws, ip.MemberID) {
			return nil
		}
		if _, ok := v.state.Selected[ip.MemberID]; ok {
			delete(v.state.Selected, ip.MemberID)
		} else {
			v.state.Selected[ip.MemberID] = struct{}{}
		}
		return nil
	})
}

func (uc *implUseCase) TogglePageSelection(ctx context.Context, viewID string) (member.ViewOutput, error) {
	return uc.do(ctx, viewID, opTogglePage, func(v *view) error {
		ws, err := uc.working(ctx, v)
		if err != nil {
			return err
		}
		items, _ := pageOf(ws, v.state.Page, uc.cfg.PageSize)
		if len(items) == 0 {
			return nil
		}

		all := true
		for _, m := range items {
			if _, ok := v.state.Selected[m.ID]; !ok {
				all = false
				break
			}
		}

		for _, m := range items {
			if all {
				delete(v.state.Selected, m.ID)
			} else {
				v.state.Selected[m.ID] = struct{}{}
			}
		}
		return nil
	})
}

func (uc *implUseCase) ClearSelection(ctx context.Context, viewID string) (member.ViewOutput, error) {
	return uc.do(ctx, viewID, opClearSelection, func(v *view) error {
		v.state.Selected = map[string]struct{}{}
		return nil
	})
}

func (uc *implUseCase) StartEdit(ctx context.Context, ip member.MemberInput) (member.ViewOutput, error) {
	return uc.do(ctx, ip.ViewID, opStartEdit, func(v *view) error {
		ws, err := uc.working(ctx, v)
		if err != nil {
			return err
		}
		if contains(ws, ip.MemberID) {
			v.state.Editing = ip.MemberID
		}
		return nil
	})
}

func (uc *implUseCase) UpdateField(ctx context.Context, ip member.UpdateFieldInput) (member.ViewOutput, error) {
	if !model.IsEditableField(ip.Field) {
		return member.ViewOutput{}, member.ErrInvalidField
	}

	return uc.do(ctx, ip.ViewID, opUpdateField, func(v *view) error {
		if v.state.Editing == "" || v.state.Editing != ip.MemberID {
			return nil
		}

		if uc.cfg.ValidateEdits {
			if err := uc.validateField(ip.Field, ip.Value); err != nil {
				return err
			}
		}

		_, err := v.repo.Update(ctx, repository.UpdateOptions{
			ID:    ip.MemberID,
			Field: ip.Field,
			Value: ip.Value,
		})
		if err != nil {
			if err == repository.ErrNotFound {
				return nil
			}
			uc.l.Errorf(ctx, "internal.member.usecase.UpdateField.Update: %v", err)
			return err
		}
		return nil
	})
}

func (uc *implUseCase) SaveEdit(ctx context.Context, viewID string) (member.ViewOutput, error) {
	return uc.do(ctx, viewID, opSaveEdit, func(v *view) error {
		v.state.Editing = ""
		return nil
	})
}

func (uc *implUseCase) Delete(ctx context.Context, ip member.MemberInput) (member.ViewOutput, error) {
	return uc.do(ctx, ip.ViewID, opDelete, func(v *view) error {
		// Removal goes by id against the whole store, not just the filtered rows.
		if _, err := v.repo.Detail(ctx, ip.MemberID); err != nil {
			if err == repository.ErrNotFound {
				return nil
			}
			uc.l.Errorf(ctx, "internal.member.usecase.Delete.Detail: %v", err)
			return err
		}

		if err := uc.remove(ctx, v, []string{ip.MemberID}); err != nil {
			return err
		}
		delete(v.state.Selected, ip.MemberID)
		v.state.Editing = ""
		return nil
	})
}

func (uc *implUseCase) DeleteSelected(ctx context.Context, viewID string) (member.ViewOutput, error) {
	return uc.do(ctx, viewID, opDeleteSelected, func(v *view) error {
		if len(v.state.Selected) == 0 {
			return nil
		}

		ids := make([]string, 0, len(v.state.Selected))
		for id := range v.state.Selected {
			ids = append(ids, id)
		}
		if err := uc.remove(ctx, v, ids); err != nil {
			return err
		}
		v.state.Selected = map[string]struct{}{}
		v.state.Editing = ""
		return nil
	})
}

func (uc *implUseCase) DeletePage(ctx context.Context, viewID string) (member.ViewOutput, error) {
	return uc.do(ctx, viewID, opDeletePage, func(v *view) error {
		ws, err := uc.working(ctx, v)
		if err != nil {
			return err
		}
		items, _ := pageOf(ws, v.state.Page, uc.cfg.PageSize)
		if len(items) == 0 {
			return nil
		}

		ids := make([]string, len(items))
		for i, m := range items {
			ids[i] = m.ID
		}
		if err := uc.remove(ctx, v, ids); err != nil {
			return err
		}
		v.state.Selected = map[string]struct{}{}
		v.state.Editing = ""
		return nil
	})
}

func (uc *implUseCase) remove(ctx context.Context, v *view, ids []string) error {
	n, err := v.repo.Delete(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "internal.member.usecase.remove.Delete: %v", err)
		return err
	}
	uc.metrics.deletedRows.Add(float64(n))
	return nil
}
