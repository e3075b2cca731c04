package alert

import "context"

// UseCase dispatches operational alerts to the diagnostic channel.
type UseCase interface {
	DispatchFetchFailure(ctx context.Context, input FetchFailureInput) error
}
