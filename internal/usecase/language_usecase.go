package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/domain/repository"
	"github.com/findhelp-service/internal/pkg/errors"
)

// LanguageUseCase owns the persisted app language and notifies subscribers
// on change. Subscribers replace the old poll-the-store approach: a change
// is pushed once, not discovered on an interval.
type LanguageUseCase struct {
	kv       repository.KVRepository
	fallback domain.Language
	logger   *zap.Logger

	mu          sync.Mutex
	current     domain.Language
	loaded      bool
	subscribers map[chan domain.Language]struct{}
}

func NewLanguageUseCase(kv repository.KVRepository, fallback domain.Language, logger *zap.Logger) *LanguageUseCase {
	if !domain.ValidLanguage(fallback) {
		fallback = domain.LanguageEnglish
	}
	return &LanguageUseCase{
		kv:          kv,
		fallback:    fallback,
		logger:      logger,
		subscribers: make(map[chan domain.Language]struct{}),
	}
}

// Get returns the current language, loading it from the store on first call.
// A missing or invalid stored value falls back to the configured default.
func (uc *LanguageUseCase) Get(ctx context.Context) domain.Language {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.loaded {
		return uc.current
	}

	uc.current = uc.fallback
	uc.loaded = true

	raw, err := uc.kv.Get(ctx, domain.KeyLanguage)
	if err != nil {
		uc.logger.Warn("Failed to read app language", zap.Error(err))
		return uc.current
	}
	if len(raw) > 0 {
		stored := domain.Language(raw)
		if domain.ValidLanguage(stored) {
			uc.current = stored
		} else {
			uc.logger.Warn("Stored app language is not supported",
				zap.String("language", string(stored)))
		}
	}
	return uc.current
}

// Set validates, persists and broadcasts the new language. Setting the
// current language again is a no-op for subscribers.
func (uc *LanguageUseCase) Set(ctx context.Context, code domain.Language) error {
	if !domain.ValidLanguage(code) {
		return errors.ErrUnknownLanguage
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// Get may not have run yet; treat the fallback as current.
	if !uc.loaded {
		uc.current = uc.fallback
		uc.loaded = true
	}

	if code == uc.current {
		return nil
	}

	if err := uc.kv.Set(ctx, domain.KeyLanguage, []byte(code)); err != nil {
		uc.logger.Error("Failed to persist app language", zap.Error(err))
		return errors.ErrStorageError
	}

	uc.current = code
	uc.logger.Info("App language changed", zap.String("language", string(code)))

	for ch := range uc.subscribers {
		select {
		case ch <- code:
		default:
			// Slow subscriber; it will catch up on the next change.
		}
	}
	return nil
}

// Subscribe registers a change listener. The returned cancel func must be
// called to release the subscription.
func (uc *LanguageUseCase) Subscribe() (<-chan domain.Language, func()) {
	ch := make(chan domain.Language, 1)

	uc.mu.Lock()
	uc.subscribers[ch] = struct{}{}
	uc.mu.Unlock()

	cancel := func() {
		uc.mu.Lock()
		delete(uc.subscribers, ch)
		uc.mu.Unlock()
	}
	return ch, cancel
}
