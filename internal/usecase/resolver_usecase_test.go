package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/findhelp-service/internal/config"
	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/usecase"
)

func resolverConfig() *config.ResolverConfig {
	return &config.ResolverConfig{
		AdvisoryDelay: 40 * time.Millisecond,
		FetchTimeout:  200 * time.Millisecond,
	}
}

func waitTerminal(t *testing.T, r *usecase.Resolver) domain.ResolverSnapshot {
	t.Helper()

	var snap domain.ResolverSnapshot
	assert.Eventually(t, func() bool {
		snap = r.Snapshot()
		return snap.State.Terminal()
	}, 2*time.Second, 10*time.Millisecond)
	return snap
}

func TestResolverPermissionDenied(t *testing.T) {
	provider := &MockGeolocationProvider{}
	provider.On("RequestPermission", mock.Anything).Return(false, nil)

	uc := usecase.NewResolverUseCase(provider, resolverConfig(), zap.NewNop())
	r := uc.StartResolver("s1")
	defer r.Close()

	snap := waitTerminal(t, r)
	assert.Equal(t, domain.ResolverPermissionDenied, snap.State)
	assert.Equal(t, domain.AdvisoryPermissionDenied, snap.Advisory)
	assert.Nil(t, snap.Position)
}

func TestResolverPermissionError(t *testing.T) {
	provider := &MockGeolocationProvider{}
	provider.On("RequestPermission", mock.Anything).Return(false, errors.New("boom"))

	uc := usecase.NewResolverUseCase(provider, resolverConfig(), zap.NewNop())
	r := uc.StartResolver("s1")
	defer r.Close()

	snap := waitTerminal(t, r)
	assert.Equal(t, domain.ResolverFailed, snap.State)
	assert.Equal(t, domain.AdvisoryPermissionError, snap.Advisory)
}

func TestResolverSuccess(t *testing.T) {
	provider := &MockGeolocationProvider{}
	provider.On("RequestPermission", mock.Anything).Return(true, nil)
	provider.On("CurrentPosition", mock.Anything).Return(&domain.Position{
		Latitude:  40.7128,
		Longitude: -74.0060,
		Timestamp: time.Now(),
	}, nil)

	uc := usecase.NewResolverUseCase(provider, resolverConfig(), zap.NewNop())
	r := uc.StartResolver("s1")
	defer r.Close()

	snap := waitTerminal(t, r)
	assert.Equal(t, domain.ResolverResolved, snap.State)
	assert.Empty(t, snap.Advisory)
	assert.NotNil(t, snap.Position)
	assert.Equal(t, 40.7128, snap.Position.Latitude)
}

func TestResolverSlowFetchShowsInterimAdvisory(t *testing.T) {
	provider := &MockGeolocationProvider{}
	provider.On("RequestPermission", mock.Anything).Return(true, nil)
	provider.On("CurrentPosition", mock.Anything).Run(func(args mock.Arguments) {
		time.Sleep(100 * time.Millisecond)
	}).Return(&domain.Position{Latitude: 1, Longitude: 2}, nil)

	uc := usecase.NewResolverUseCase(provider, resolverConfig(), zap.NewNop())
	r := uc.StartResolver("s1")
	defer r.Close()

	// The advisory delay (40ms) elapses before the fetch (100ms) completes.
	assert.Eventually(t, func() bool {
		return r.Snapshot().Advisory == domain.AdvisoryStillResolving
	}, time.Second, 5*time.Millisecond)

	// Success clears the interim advisory.
	snap := waitTerminal(t, r)
	assert.Equal(t, domain.ResolverResolved, snap.State)
	assert.Empty(t, snap.Advisory)
}

func TestResolverFetchTimeout(t *testing.T) {
	provider := &MockGeolocationProvider{}
	provider.On("RequestPermission", mock.Anything).Return(true, nil)
	provider.On("CurrentPosition", mock.Anything).Return(nil, context.DeadlineExceeded)

	uc := usecase.NewResolverUseCase(provider, resolverConfig(), zap.NewNop())
	r := uc.StartResolver("s1")
	defer r.Close()

	snap := waitTerminal(t, r)
	assert.Equal(t, domain.ResolverTimedOut, snap.State)
	assert.Equal(t, domain.AdvisoryResolveFailed, snap.Advisory)
}

func TestResolverFetchFailure(t *testing.T) {
	provider := &MockGeolocationProvider{}
	provider.On("RequestPermission", mock.Anything).Return(true, nil)
	provider.On("CurrentPosition", mock.Anything).Return(nil, errors.New("lookup failed"))

	uc := usecase.NewResolverUseCase(provider, resolverConfig(), zap.NewNop())
	r := uc.StartResolver("s1")
	defer r.Close()

	snap := waitTerminal(t, r)
	assert.Equal(t, domain.ResolverFailed, snap.State)
	assert.Equal(t, domain.AdvisoryResolveFailed, snap.Advisory)
}
