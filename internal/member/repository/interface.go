package repository

import (
	"context"

	"member-admin/internal/model"
)

// Repository is the canonical ordered member store of one view.
// Edits and deletes land here; search results are derived from it, never copied.
//
//go:generate mockery --name Repository
type Repository interface {
	Replace(ctx context.Context, members []model.Member) error
	List(ctx context.Context, opts ListOptions) ([]model.Member, error)
	Detail(ctx context.Context, id string) (model.Member, error)
	Update(ctx context.Context, opts UpdateOptions) (model.Member, error)
	Delete(ctx context.Context, ids []string) (int, error)
	Count(ctx context.Context) (int, error)
}
