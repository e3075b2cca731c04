package usecase

import (
	"sync"
	"time"

	"member-admin/internal/alert"
	"member-admin/internal/member"
	"member-admin/internal/member/repository"
	"member-admin/internal/source"
	pkgLog "member-admin/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	defaultPageSize     = 10
	defaultTTL          = 30 * time.Minute
	defaultMaxViews     = 1000
	defaultFetchTimeout = 10 * time.Second
)

// Config tunes the view use case. Zero values fall back to defaults.
type Config struct {
	PageSize      int
	TTL           time.Duration
	MaxViews      int
	FetchTimeout  time.Duration
	ValidateEdits bool
	// Registerer receives the view metrics. Nil leaves them unregistered.
	Registerer prometheus.Registerer
}

// RepositoryFactory creates the canonical store of a new view.
type RepositoryFactory func() repository.Repository

type implUseCase struct {
	l        pkgLog.Logger
	source   source.Source
	alert    alert.UseCase
	newRepo  RepositoryFactory
	cfg      Config
	validate *validator.Validate
	metrics  *metrics
	clock    func() time.Time

	mu    sync.RWMutex
	views map[string]*view
}

var _ member.UseCase = &implUseCase{}

// New returns the view use case. alert may be nil.
func New(l pkgLog.Logger, src source.Source, alertUC alert.UseCase, newRepo RepositoryFactory, cfg Config) member.UseCase {
	return newUseCase(l, src, alertUC, newRepo, cfg)
}

func newUseCase(l pkgLog.Logger, src source.Source, alertUC alert.UseCase, newRepo RepositoryFactory, cfg Config) *implUseCase {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.MaxViews <= 0 {
		cfg.MaxViews = defaultMaxViews
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}

	return &implUseCase{
		l:        l,
		source:   src,
		alert:    alertUC,
		newRepo:  newRepo,
		cfg:      cfg,
		validate: validator.New(),
		metrics:  newMetrics(cfg.Registerer),
		clock:    time.Now,
		views:    map[string]*view{},
	}
}
