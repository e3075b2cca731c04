package source

import (
	"context"

	"member-admin/internal/model"
)

// Source produces the member list a view is populated from. Implementations are read-only.
//
//go:generate mockery --name Source
type Source interface {
	Fetch(ctx context.Context) ([]model.Member, error)
	Name() string
}
