package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/pkg/errors"
	"github.com/findhelp-service/internal/repository/kv"
	"github.com/findhelp-service/internal/usecase"
)

func TestLanguageGet(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("missing entry falls back to default", func(t *testing.T) {
		uc := usecase.NewLanguageUseCase(kv.NewMemoryRepository(), domain.LanguageEnglish, logger)
		assert.Equal(t, domain.LanguageEnglish, uc.Get(ctx))
	})

	t.Run("stored valid value wins", func(t *testing.T) {
		store := kv.NewMemoryRepository()
		require.NoError(t, store.Set(ctx, domain.KeyLanguage, []byte("es")))

		uc := usecase.NewLanguageUseCase(store, domain.LanguageEnglish, logger)
		assert.Equal(t, domain.LanguageSpanish, uc.Get(ctx))
	})

	t.Run("stored garbage falls back to default", func(t *testing.T) {
		store := kv.NewMemoryRepository()
		require.NoError(t, store.Set(ctx, domain.KeyLanguage, []byte("xx")))

		uc := usecase.NewLanguageUseCase(store, domain.LanguageEnglish, logger)
		assert.Equal(t, domain.LanguageEnglish, uc.Get(ctx))
	})
}

func TestLanguageSet(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("persists and updates", func(t *testing.T) {
		store := kv.NewMemoryRepository()
		uc := usecase.NewLanguageUseCase(store, domain.LanguageEnglish, logger)

		require.NoError(t, uc.Set(ctx, domain.LanguageChinese))
		assert.Equal(t, domain.LanguageChinese, uc.Get(ctx))

		raw, err := store.Get(ctx, domain.KeyLanguage)
		require.NoError(t, err)
		assert.Equal(t, []byte("zh"), raw)
	})

	t.Run("rejects unsupported code", func(t *testing.T) {
		uc := usecase.NewLanguageUseCase(kv.NewMemoryRepository(), domain.LanguageEnglish, logger)
		assert.Equal(t, errors.ErrUnknownLanguage, uc.Set(ctx, domain.Language("fr")))
	})

	t.Run("notifies subscribers once per change", func(t *testing.T) {
		uc := usecase.NewLanguageUseCase(kv.NewMemoryRepository(), domain.LanguageEnglish, logger)

		ch, cancel := uc.Subscribe()
		defer cancel()

		require.NoError(t, uc.Set(ctx, domain.LanguageSpanish))

		select {
		case lang := <-ch:
			assert.Equal(t, domain.LanguageSpanish, lang)
		case <-time.After(time.Second):
			t.Fatal("no notification received")
		}

		// Setting the same language again is a no-op.
		require.NoError(t, uc.Set(ctx, domain.LanguageSpanish))
		select {
		case lang := <-ch:
			t.Fatalf("unexpected notification: %s", lang)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("canceled subscription stops receiving", func(t *testing.T) {
		uc := usecase.NewLanguageUseCase(kv.NewMemoryRepository(), domain.LanguageEnglish, logger)

		ch, cancel := uc.Subscribe()
		cancel()

		require.NoError(t, uc.Set(ctx, domain.LanguageSpanish))

		select {
		case lang := <-ch:
			t.Fatalf("unexpected notification: %s", lang)
		case <-time.After(50 * time.Millisecond):
		}
	})
}
