package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/domain/repository"
)

type clickJob struct {
	deviceID string
	place    domain.Place
}

// RecorderUseCase owns the click ledger. All writes go through a single
// goroutine draining a bounded queue, so two rapid clicks can never lose an
// increment to a read-modify-write race. Recording is fire-and-forget for
// callers: a full queue drops the click with a warning instead of blocking
// the map interaction.
type RecorderUseCase struct {
	kv      repository.KVRepository
	streams repository.StreamRepository
	logger  *zap.Logger

	queue chan clickJob
	done  chan struct{}
	once  sync.Once

	mu     sync.Mutex
	closed bool
}

// NewRecorderUseCase starts the writer goroutine. streams may be nil; then
// clicks are only kept in the local ledger.
func NewRecorderUseCase(
	kv repository.KVRepository,
	streams repository.StreamRepository,
	queueSize int,
	logger *zap.Logger,
) *RecorderUseCase {
	if queueSize <= 0 {
		queueSize = 256
	}

	uc := &RecorderUseCase{
		kv:      kv,
		streams: streams,
		logger:  logger,
		queue:   make(chan clickJob, queueSize),
		done:    make(chan struct{}),
	}

	go uc.run()
	return uc
}

// RecordClick queues a click for the writer. Returns false when the recorder
// is closed or the queue is full and the click was dropped.
func (uc *RecorderUseCase) RecordClick(deviceID string, place domain.Place) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.closed {
		uc.logger.Warn("Click recorder closed, dropping click",
			zap.String("device_id", deviceID),
			zap.String("place_id", place.ID))
		return false
	}

	select {
	case uc.queue <- clickJob{deviceID: deviceID, place: place}:
		return true
	default:
		uc.logger.Warn("Click queue full, dropping click",
			zap.String("device_id", deviceID),
			zap.String("place_id", place.ID))
		return false
	}
}

// LedgerFor returns the per-place records for one device. Reads go straight
// to the store; the writer persists after every applied click.
func (uc *RecorderUseCase) LedgerFor(ctx context.Context, deviceID string) (map[string]*domain.InteractionRecord, error) {
	raw, err := uc.kv.Get(ctx, domain.KeyPinClicks)
	if err != nil {
		return nil, err
	}

	ledger := domain.ParseLedger(raw)
	records := ledger[deviceID]
	if records == nil {
		records = map[string]*domain.InteractionRecord{}
	}
	return records, nil
}

// Close stops accepting clicks and waits for the queue to drain. The closed
// flag is set before the channel closes, so a racing RecordClick drops the
// click instead of hitting a closed channel.
func (uc *RecorderUseCase) Close() {
	uc.once.Do(func() {
		uc.mu.Lock()
		uc.closed = true
		uc.mu.Unlock()

		close(uc.queue)
	})
	<-uc.done
}

func (uc *RecorderUseCase) run() {
	defer close(uc.done)

	for job := range uc.queue {
		uc.apply(job)
	}
	uc.logger.Info("Click recorder stopped")
}

// apply performs one read-modify-write cycle against the stored ledger.
// Called only from run, so cycles never interleave.
func (uc *RecorderUseCase) apply(job clickJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	raw, err := uc.kv.Get(ctx, domain.KeyPinClicks)
	if err != nil {
		// Skip rather than write over a ledger we could not read.
		uc.logger.Error("Failed to read click ledger, click lost",
			zap.String("device_id", job.deviceID),
			zap.String("place_id", job.place.ID),
			zap.Error(err))
		return
	}

	ledger := domain.ParseLedger(raw)
	ts := time.Now().UnixMilli()
	rec := ledger.RecordClick(job.deviceID, domain.PinSnapshotFrom(job.place), ts)

	data, err := json.Marshal(ledger)
	if err != nil {
		uc.logger.Error("Failed to marshal click ledger", zap.Error(err))
		return
	}
	if err := uc.kv.Set(ctx, domain.KeyPinClicks, data); err != nil {
		uc.logger.Error("Failed to persist click ledger", zap.Error(err))
		return
	}

	uc.logger.Debug("Click recorded",
		zap.String("device_id", job.deviceID),
		zap.String("place_id", job.place.ID),
		zap.Int("click_count", rec.ClickCount))

	if uc.streams == nil {
		return
	}

	event := domain.ClickEvent{
		DeviceID:  job.deviceID,
		PlaceID:   job.place.ID,
		PlaceName: job.place.Name,
		Address:   job.place.Address,
		Latitude:  job.place.Coordinates.Latitude,
		Longitude: job.place.Coordinates.Longitude,
		Category:  job.place.Type,
		Services:  job.place.Services,
		ClickedAt: time.UnixMilli(ts),
	}
	if err := uc.streams.PublishToStream(ctx, domain.StreamInteractionClick, event); err != nil {
		// Best effort: the local ledger already holds the click.
		uc.logger.Warn("Failed to publish click event", zap.Error(err))
	}
}
