package memory

import (
	"context"

	"member-admin/internal/member/repository"
	"member-admin/internal/model"
)

func (r *implRepository) Replace(ctx context.Context, members []model.Member) error {
	order := make([]string, 0, len(members))
	byID := make(map[string]model.Member, len(members))
	dups := 0
	for _, m := range members {
		if _, ok := byID[m.ID]; ok {
			dups++
			continue
		}
		order = append(order, m.ID)
		byID[m.ID] = m
	}
	if dups > 0 {
		r.l.Warnf(ctx, "internal.member.repository.memory.Replace: dropped %d duplicate ids", dups)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = order
	r.byID = byID
	return nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]model.Member, 0, len(r.order))
	for _, id := range r.order {
		m := r.byID[id]
		if m.Matches(opts.Filter.Term) || (opts.Filter.Keep != "" && id == opts.Filter.Keep) {
			res = append(res, m)
		}
	}
	return res, nil
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return model.Member{}, repository.ErrNotFound
	}
	return m, nil
}

func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.Member, error) {
	if !model.IsEditableField(opts.Field) {
		return model.Member{}, repository.ErrInvalidField
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.byID[opts.ID]
	if !ok {
		return model.Member{}, repository.ErrNotFound
	}
	m = m.With(opts.Field, opts.Value)
	r.byID[opts.ID] = m
	return m, nil
}

func (r *implRepository) Delete(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for _, id := range ids {
		if _, ok := r.byID[id]; ok {
			delete(r.byID, id)
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}

	order := r.order[:0]
	for _, id := range r.order {
		if _, ok := r.byID[id]; ok {
			order = append(order, id)
		}
	}
	r.order = order
	return removed, nil
}

func (r *implRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order), nil
}
