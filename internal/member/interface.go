package member

import (
	"context"
)

// UseCase drives admin table views. Every operation takes the view id returned by Mount.
// Operations on ids outside the view's working set are silent no-ops.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Mount(ctx context.Context) (ViewOutput, error)
	Unmount(ctx context.Context, viewID string) error
	Detail(ctx context.Context, viewID string) (ViewOutput, error)

	Search(ctx context.Context, ip SearchInput) (ViewOutput, error)
	GoToPage(ctx context.Context, ip GoToPageInput) (ViewOutput, error)

	ToggleSelect(ctx context.Context, ip MemberInput) (ViewOutput, error)
	TogglePageSelection(ctx context.Context, viewID string) (ViewOutput, error)
	ClearSelection(ctx context.Context, viewID string) (ViewOutput, error)

	StartEdit(ctx context.Context, ip MemberInput) (ViewOutput, error)
	UpdateField(ctx context.Context, ip UpdateFieldInput) (ViewOutput, error)
	SaveEdit(ctx context.Context, viewID string) (ViewOutput, error)

	Delete(ctx context.Context, ip MemberInput) (ViewOutput, error)
	DeleteSelected(ctx context.Context, viewID string) (ViewOutput, error)
	DeletePage(ctx context.Context, viewID string) (ViewOutput, error)

	Stats(ctx context.Context) Stats
}
