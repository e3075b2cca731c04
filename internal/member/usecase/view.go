package usecase

import (
	"context"
	"sync"
	"time"

	"member-admin/internal/alert"
	"member-admin/internal/member"
	"member-admin/internal/member/repository"

	"github.com/google/uuid"
)

// view is one mounted table. mu serializes every operation on it.
type view struct {
	mu          sync.Mutex
	id          string
	repo        repository.Repository
	state       member.State
	fetchFailed bool
	lastSeen    time.Time
}

func (uc *implUseCase) expired(v *view, now time.Time) bool {
	return now.Sub(v.lastSeen) > uc.cfg.TTL
}

// sweep drops expired views. Caller holds uc.mu.
func (uc *implUseCase) sweep(ctx context.Context, now time.Time) {
	for id, v := range uc.views {
		v.mu.Lock()
		dead := uc.expired(v, now)
		v.mu.Unlock()
		if dead {
			delete(uc.views, id)
			uc.l.Debugf(ctx, "internal.member.usecase.sweep: view %s expired", id)
		}
	}
	uc.metrics.openViews.Set(float64(len(uc.views)))
}

func (uc *implUseCase) Mount(ctx context.Context) (member.ViewOutput, error) {
	now := uc.clock()

	uc.mu.Lock()
	uc.sweep(ctx, now)
	full := len(uc.views) >= uc.cfg.MaxViews
	uc.mu.Unlock()
	if full {
		uc.l.Warnf(ctx, "internal.member.usecase.Mount: %d views open", uc.cfg.MaxViews)
		return member.ViewOutput{}, member.ErrTooManyViews
	}

	v := &view{
		id:   uuid.NewString(),
		repo: uc.newRepo(),
		state: member.State{
			Page:     1,
			Selected: map[string]struct{}{},
		},
		lastSeen: now,
	}
	uc.populate(ctx, v)

	uc.mu.Lock()
	if len(uc.views) >= uc.cfg.MaxViews {
		uc.mu.Unlock()
		return member.ViewOutput{}, member.ErrTooManyViews
	}
	uc.views[v.id] = v
	uc.metrics.openViews.Set(float64(len(uc.views)))
	uc.mu.Unlock()

	uc.metrics.operations.WithLabelValues(opMount).Inc()

	v.mu.Lock()
	defer v.mu.Unlock()
	return uc.render(ctx, v)
}

// populate runs the one fetch of a view. A failure leaves the view empty; it is never retried.
func (uc *implUseCase) populate(ctx context.Context, v *view) {
	fetchCtx, cancel := context.WithTimeout(ctx, uc.cfg.FetchTimeout)
	defer cancel()

	start := uc.clock()
	members, err := uc.source.Fetch(fetchCtx)
	elapsed := uc.clock().Sub(start)
	uc.metrics.fetchDuration.WithLabelValues(uc.source.Name()).Observe(elapsed.Seconds())

	if err == nil {
		err = v.repo.Replace(ctx, members)
	}
	if err != nil {
		v.fetchFailed = true
		uc.metrics.fetchFailures.WithLabelValues(uc.source.Name()).Inc()
		uc.l.Errorf(ctx, "internal.member.usecase.Mount.Fetch: source=%s view=%s: %v", uc.source.Name(), v.id, err)
		uc.reportFetchFailure(ctx, alert.FetchFailureInput{
			ViewID:     v.id,
			SourceName: uc.source.Name(),
			Err:        err,
			Duration:   elapsed,
			OccurredAt: start,
		})
		return
	}

	uc.l.Infof(ctx, "internal.member.usecase.Mount: view %s loaded %d members from %s", v.id, len(members), uc.source.Name())
}

func (uc *implUseCase) reportFetchFailure(ctx context.Context, input alert.FetchFailureInput) {
	if uc.alert == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := uc.alert.DispatchFetchFailure(ctx, input); err != nil {
			uc.l.Warnf(ctx, "internal.member.usecase.reportFetchFailure: %v", err)
		}
	}()
}

func (uc *implUseCase) Unmount(ctx context.Context, viewID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.views[viewID]; !ok {
		return member.ErrViewNotFound
	}
	delete(uc.views, viewID)
	uc.metrics.openViews.Set(float64(len(uc.views)))
	uc.metrics.operations.WithLabelValues(opUnmount).Inc()
	return nil
}

// lookup returns a live view, expiring it on the way if its TTL has passed.
func (uc *implUseCase) lookup(viewID string) (*view, error) {
	uc.mu.RLock()
	v, ok := uc.views[viewID]
	uc.mu.RUnlock()
	if !ok {
		return nil, member.ErrViewNotFound
	}

	v.mu.Lock()
	dead := uc.expired(v, uc.clock())
	v.mu.Unlock()
	if dead {
		uc.mu.Lock()
		delete(uc.views, viewID)
		uc.metrics.openViews.Set(float64(len(uc.views)))
		uc.mu.Unlock()
		return nil, member.ErrViewNotFound
	}
	return v, nil
}

// do runs fn on a locked view, then reconciles and renders it.
func (uc *implUseCase) do(ctx context.Context, viewID, op string, fn func(v *view) error) (member.ViewOutput, error) {
	v, err := uc.lookup(viewID)
	if err != nil {
		return member.ViewOutput{}, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.lastSeen = uc.clock()

	if fn != nil {
		if err := fn(v); err != nil {
			return member.ViewOutput{}, err
		}
	}
	uc.metrics.operations.WithLabelValues(op).Inc()

	return uc.render(ctx, v)
}

// render reconciles the view state against the current records and projects it. Caller holds v.mu.
func (uc *implUseCase) render(ctx context.Context, v *view) (member.ViewOutput, error) {
	records, err := v.repo.List(ctx, repository.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "internal.member.usecase.render.List: %v", err)
		return member.ViewOutput{}, err
	}

	v.state = Reconcile(records, v.state, uc.cfg.PageSize)

	return member.ViewOutput{
		ViewID:      v.id,
		FetchFailed: v.fetchFailed,
		Projection:  Project(records, v.state, uc.cfg.PageSize),
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, viewID string) (member.ViewOutput, error) {
	return uc.do(ctx, viewID, opDetail, nil)
}

func (uc *implUseCase) Stats(ctx context.Context) member.Stats {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return member.Stats{
		OpenViews: len(uc.views),
		MaxViews:  uc.cfg.MaxViews,
		TTL:       uc.cfg.TTL,
	}
}
