package memory

import (
	"sync"

	"member-admin/internal/member/repository"
	"member-admin/internal/model"
	pkgLog "member-admin/pkg/log"
)

type implRepository struct {
	l     pkgLog.Logger
	mu    sync.RWMutex
	order []string
	byID  map[string]model.Member
}

var _ repository.Repository = &implRepository{}

// New returns an empty in-memory store. Source order is preserved; the first occurrence of a duplicate id wins.
func New(l pkgLog.Logger) repository.Repository {
	return &implRepository{
		l:    l,
		byID: map[string]model.Member{},
	}
}
