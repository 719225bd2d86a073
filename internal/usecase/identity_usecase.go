package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/domain/repository"
)

// IdentityUseCase manages the stable anonymous device id. The id is created
// on first access and reused afterwards. Identity never blocks the caller:
// if the store fails, a fresh id is returned and the process continues with
// it (it just will not survive a restart).
type IdentityUseCase struct {
	kv     repository.KVRepository
	logger *zap.Logger

	mu     sync.Mutex
	cached string
}

func NewIdentityUseCase(kv repository.KVRepository, logger *zap.Logger) *IdentityUseCase {
	return &IdentityUseCase{
		kv:     kv,
		logger: logger,
	}
}

// GetOrCreate returns the device id, generating and persisting one on first
// call. Always returns a usable id.
func (uc *IdentityUseCase) GetOrCreate(ctx context.Context) string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cached != "" {
		return uc.cached
	}

	raw, err := uc.kv.Get(ctx, domain.KeyDeviceID)
	if err != nil {
		uc.logger.Warn("Failed to read device id, generating ephemeral one", zap.Error(err))
	}
	if len(raw) > 0 {
		uc.cached = string(raw)
		return uc.cached
	}

	id := uuid.NewString()
	if err := uc.kv.Set(ctx, domain.KeyDeviceID, []byte(id)); err != nil {
		// Keep the generated id for this process lifetime anyway.
		uc.logger.Warn("Failed to persist device id", zap.Error(err))
	} else {
		uc.logger.Info("Device id created", zap.String("device_id", id))
	}

	uc.cached = id
	return id
}
