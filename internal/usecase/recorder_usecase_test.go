package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/repository/kv"
	"github.com/findhelp-service/internal/usecase"
)

func testPlace() domain.Place {
	return domain.Place{
		ID:          "p1",
		Name:        "Site One",
		Address:     "1 First Ave",
		Coordinates: domain.Coordinates{Latitude: 40.80, Longitude: -73.94},
		Type:        "harm-reduction",
		Services:    []string{"naloxone"},
	}
}

func TestRecorderRecordClick(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("click lands in the ledger", func(t *testing.T) {
		store := kv.NewMemoryRepository()
		uc := usecase.NewRecorderUseCase(store, nil, 8, logger)
		defer uc.Close()

		assert.True(t, uc.RecordClick("dev-1", testPlace()))

		assert.Eventually(t, func() bool {
			records, err := uc.LedgerFor(ctx, "dev-1")
			return err == nil && records["p1"] != nil && records["p1"].ClickCount == 1
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("rapid clicks all count", func(t *testing.T) {
		store := kv.NewMemoryRepository()
		uc := usecase.NewRecorderUseCase(store, nil, 64, logger)

		for i := 0; i < 10; i++ {
			require.True(t, uc.RecordClick("dev-1", testPlace()))
		}
		uc.Close()

		records, err := uc.LedgerFor(ctx, "dev-1")
		require.NoError(t, err)
		require.NotNil(t, records["p1"])
		assert.Equal(t, 10, records["p1"].ClickCount)
		assert.Len(t, records["p1"].Timestamps, 10)
	})

	t.Run("snapshot captured at click time", func(t *testing.T) {
		store := kv.NewMemoryRepository()
		uc := usecase.NewRecorderUseCase(store, nil, 8, logger)

		uc.RecordClick("dev-1", testPlace())
		uc.Close()

		records, err := uc.LedgerFor(ctx, "dev-1")
		require.NoError(t, err)
		require.NotNil(t, records["p1"])
		assert.Equal(t, "Site One", records["p1"].PinInfo.Name)
		assert.Equal(t, "harm-reduction", records["p1"].PinInfo.Type)
	})

	t.Run("corrupt ledger is replaced, not fatal", func(t *testing.T) {
		store := kv.NewMemoryRepository()
		require.NoError(t, store.Set(ctx, domain.KeyPinClicks, []byte("{broken")))

		uc := usecase.NewRecorderUseCase(store, nil, 8, logger)
		uc.RecordClick("dev-1", testPlace())
		uc.Close()

		records, err := uc.LedgerFor(ctx, "dev-1")
		require.NoError(t, err)
		require.NotNil(t, records["p1"])
		assert.Equal(t, 1, records["p1"].ClickCount)
	})

	t.Run("publishes click event to the stream", func(t *testing.T) {
		store := kv.NewMemoryRepository()
		mockStreams := &MockStreamRepository{}
		mockStreams.On("PublishToStream", mock.Anything, domain.StreamInteractionClick, mock.MatchedBy(func(data interface{}) bool {
			event, ok := data.(domain.ClickEvent)
			return ok && event.DeviceID == "dev-1" && event.PlaceID == "p1"
		})).Return(nil)

		uc := usecase.NewRecorderUseCase(store, mockStreams, 8, logger)
		uc.RecordClick("dev-1", testPlace())
		uc.Close()

		mockStreams.AssertExpectations(t)
	})

	t.Run("clicks after close are dropped", func(t *testing.T) {
		uc := usecase.NewRecorderUseCase(kv.NewMemoryRepository(), nil, 8, logger)
		uc.Close()

		assert.False(t, uc.RecordClick("dev-1", testPlace()))
		assert.NotPanics(t, func() {
			uc.RecordClick("dev-1", testPlace())
		})
		assert.NotPanics(t, uc.Close)
	})

	t.Run("ledger read for unknown device is empty", func(t *testing.T) {
		uc := usecase.NewRecorderUseCase(kv.NewMemoryRepository(), nil, 8, logger)
		defer uc.Close()

		records, err := uc.LedgerFor(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
