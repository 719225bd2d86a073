package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/findhelp-service/internal/config"
	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/domain/repository"
)

// ResolverUseCase creates per-session location resolvers. Resolution always
// degrades gracefully: whatever happens, the session keeps a usable region
// and at most gains an advisory message.
type ResolverUseCase struct {
	provider      repository.GeolocationProvider
	advisoryDelay time.Duration
	fetchTimeout  time.Duration
	logger        *zap.Logger
}

func NewResolverUseCase(
	provider repository.GeolocationProvider,
	cfg *config.ResolverConfig,
	logger *zap.Logger,
) *ResolverUseCase {
	return &ResolverUseCase{
		provider:      provider,
		advisoryDelay: cfg.AdvisoryDelay,
		fetchTimeout:  cfg.FetchTimeout,
		logger:        logger,
	}
}

// StartResolver begins a resolution attempt and returns its handle.
func (uc *ResolverUseCase) StartResolver(sessionID string) *Resolver {
	ctx, cancel := context.WithCancel(context.Background())

	r := &Resolver{
		provider:      uc.provider,
		advisoryDelay: uc.advisoryDelay,
		fetchTimeout:  uc.fetchTimeout,
		logger:        uc.logger.With(zap.String("session_id", sessionID)),
		state:         domain.ResolverIdle,
		cancel:        cancel,
	}

	go r.run(ctx)
	return r
}

// Resolver drives one location resolution attempt through its states. All
// mutation happens under mu; Snapshot is safe from any goroutine.
type Resolver struct {
	provider      repository.GeolocationProvider
	advisoryDelay time.Duration
	fetchTimeout  time.Duration
	logger        *zap.Logger

	mu       sync.Mutex
	state    domain.ResolverState
	position *domain.Position
	advisory string
	closed   bool

	cancel context.CancelFunc
	timer  *time.Timer
}

// Snapshot returns the current resolver view.
func (r *Resolver) Snapshot() domain.ResolverSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return domain.ResolverSnapshot{
		State:    r.state,
		Position: r.position,
		Advisory: r.advisory,
	}
}

// Close cancels any in-flight resolution. Idempotent.
func (r *Resolver) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	if r.timer != nil {
		r.timer.Stop()
	}
	r.mu.Unlock()

	r.cancel()
}

func (r *Resolver) run(ctx context.Context) {
	r.setState(domain.ResolverPermissionRequested, "")

	granted, err := r.provider.RequestPermission(ctx)
	if err != nil {
		r.logger.Warn("Permission request failed", zap.Error(err))
		r.setState(domain.ResolverFailed, domain.AdvisoryPermissionError)
		return
	}
	if !granted {
		r.logger.Info("Location permission denied")
		r.setState(domain.ResolverPermissionDenied, domain.AdvisoryPermissionDenied)
		return
	}

	r.setState(domain.ResolverResolving, "")

	// If the fetch is still pending after the delay, surface an interim
	// advisory; a later success clears it.
	r.mu.Lock()
	if !r.closed {
		r.timer = time.AfterFunc(r.advisoryDelay, func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			if r.state == domain.ResolverResolving && !r.closed {
				r.advisory = domain.AdvisoryStillResolving
			}
		})
	}
	r.mu.Unlock()

	fetchCtx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	position, err := r.provider.CurrentPosition(fetchCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			r.logger.Warn("Position fetch timed out")
			r.setState(domain.ResolverTimedOut, domain.AdvisoryResolveFailed)
			return
		}
		r.logger.Warn("Position fetch failed", zap.Error(err))
		r.setState(domain.ResolverFailed, domain.AdvisoryResolveFailed)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if r.timer != nil {
		r.timer.Stop()
	}
	r.state = domain.ResolverResolved
	r.position = position
	// Success supersedes the interim advisory.
	r.advisory = ""
	r.logger.Info("Position resolved",
		zap.Float64("latitude", position.Latitude),
		zap.Float64("longitude", position.Longitude))
}

func (r *Resolver) setState(state domain.ResolverState, advisory string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if r.timer != nil && state.Terminal() {
		r.timer.Stop()
	}
	r.state = state
	if advisory != "" {
		r.advisory = advisory
	}
}
