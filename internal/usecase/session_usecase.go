package usecase

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/domain/repository"
	"github.com/findhelp-service/internal/pkg/errors"
	"github.com/findhelp-service/internal/usecase/dto"
)

// SessionUseCase is the registry of live map sessions. A session mirrors one
// map screen instance: it owns the selection, the category filter, the tile
// mode and the advisory banner, and composes the resolver output into its
// snapshot. Closing a session drops all of it.
type SessionUseCase struct {
	catalog    *CatalogUseCase
	recorder   *RecorderUseCase
	resolver   *ResolverUseCase
	directions repository.DirectionsProvider
	logger     *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*mapSession
}

type mapSession struct {
	mu       sync.Mutex
	state    domain.SessionState
	resolver *Resolver
}

func NewSessionUseCase(
	catalog *CatalogUseCase,
	recorder *RecorderUseCase,
	resolver *ResolverUseCase,
	directions repository.DirectionsProvider,
	logger *zap.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		catalog:    catalog,
		recorder:   recorder,
		resolver:   resolver,
		directions: directions,
		logger:     logger,
		sessions:   make(map[string]*mapSession),
	}
}

// Create opens a session and starts its location resolution. The initial
// region always covers the whole catalog; resolution results only ever add
// to that, never block it.
func (uc *SessionUseCase) Create(req dto.CreateSessionRequest) (*domain.SessionState, error) {
	platform := domain.Platform(req.Platform)
	capability, ok := domain.CapabilityFor(platform)
	if !ok {
		return nil, errors.ErrInvalidRequest
	}

	id := uuid.NewString()

	session := &mapSession{
		state: domain.SessionState{
			ID:              id,
			Platform:        platform,
			DeviceID:        req.DeviceID,
			InitialRegion:   uc.catalog.BoundsRegion(),
			TileMode:        domain.TileModePrimary,
			ShowLocationDot: capability.ShowsUserLocationDot,
		},
		resolver: uc.resolver.StartResolver(id),
	}

	uc.mu.Lock()
	uc.sessions[id] = session
	uc.mu.Unlock()

	uc.logger.Info("Map session created",
		zap.String("session_id", id),
		zap.String("platform", req.Platform))

	return session.snapshot(), nil
}

// Get returns the session snapshot.
func (uc *SessionUseCase) Get(id string) (*domain.SessionState, error) {
	session, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	return session.snapshot(), nil
}

// Close removes the session and cancels its resolver.
func (uc *SessionUseCase) Close(id string) error {
	uc.mu.Lock()
	session, ok := uc.sessions[id]
	if ok {
		delete(uc.sessions, id)
	}
	uc.mu.Unlock()

	if !ok {
		return errors.ErrSessionNotFound
	}

	session.resolver.Close()
	uc.logger.Info("Map session closed", zap.String("session_id", id))
	return nil
}

// CloseAll tears down every live session. Called on shutdown.
func (uc *SessionUseCase) CloseAll() {
	uc.mu.Lock()
	sessions := uc.sessions
	uc.sessions = make(map[string]*mapSession)
	uc.mu.Unlock()

	for _, s := range sessions {
		s.resolver.Close()
	}
}

// SelectPlace selects a renderable place, focuses the viewport on it and
// queues a click for the device, if the session carries one.
func (uc *SessionUseCase) SelectPlace(id, placeID string) (*domain.SessionState, error) {
	session, err := uc.find(id)
	if err != nil {
		return nil, err
	}

	place, err := uc.catalog.GetPlace(placeID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	session.state.Selected = place
	focus := domain.FocusRegion(place.Coordinates)
	session.state.FocusRegion = &focus
	deviceID := session.state.DeviceID
	session.mu.Unlock()

	if deviceID != "" {
		uc.recorder.RecordClick(deviceID, *place)
	}

	return session.snapshot(), nil
}

// ClearSelection drops the selected place and the focus region.
func (uc *SessionUseCase) ClearSelection(id string) (*domain.SessionState, error) {
	session, err := uc.find(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	session.state.Selected = nil
	session.state.FocusRegion = nil
	session.mu.Unlock()

	return session.snapshot(), nil
}

// Selection returns the currently selected place, or nil.
func (uc *SessionUseCase) Selection(id string) (*domain.Place, error) {
	session, err := uc.find(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.state.Selected, nil
}

// SetFilter toggles the category filter: setting the active key again clears
// it, an empty key always clears it.
func (uc *SessionUseCase) SetFilter(id, category string) (*domain.SessionState, error) {
	session, err := uc.find(id)
	if err != nil {
		return nil, err
	}

	if category != "" && !uc.catalog.HasCategory(category) {
		return nil, errors.ErrUnknownCategory
	}

	session.mu.Lock()
	if category == "" || session.state.CategoryFilter == category {
		session.state.CategoryFilter = ""
	} else {
		session.state.CategoryFilter = category
	}
	session.mu.Unlock()

	return session.snapshot(), nil
}

// VisiblePlaces returns the renderable places after the session's category
// filter, preserving catalog order.
func (uc *SessionUseCase) VisiblePlaces(id string) (*dto.PlacesResponse, error) {
	session, err := uc.find(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	filter := session.state.CategoryFilter
	session.mu.Unlock()

	return uc.catalog.GetPlaces(filter)
}

// MapReady marks the map as rendered.
func (uc *SessionUseCase) MapReady(id string) (*domain.SessionState, error) {
	session, err := uc.find(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	session.state.MapReady = true
	session.mu.Unlock()

	return session.snapshot(), nil
}

// TileError reacts to a basemap load failure. On platforms with an unstable
// primary provider the session switches to the fallback tile source; on
// stable platforms the failure only surfaces as an advisory.
func (uc *SessionUseCase) TileError(id string) (*domain.SessionState, error) {
	session, err := uc.find(id)
	if err != nil {
		return nil, err
	}

	capability, _ := domain.CapabilityFor(session.state.Platform)

	session.mu.Lock()
	if capability.UnstableTileProvider {
		if session.state.TileMode != domain.TileModeFallback {
			session.state.TileMode = domain.TileModeFallback
			session.state.FallbackTileURL = domain.FallbackTileURL
			session.state.Advisory = domain.AdvisoryTileFallback
			uc.logger.Warn("Switching session to fallback tiles",
				zap.String("session_id", id),
				zap.String("platform", string(session.state.Platform)))
		}
	} else {
		session.state.Advisory = domain.AdvisoryTileError
	}
	session.mu.Unlock()

	return session.snapshot(), nil
}

// Directions builds the external navigation links for the selected place.
func (uc *SessionUseCase) Directions(id string) (*domain.DirectionsLinks, error) {
	session, err := uc.find(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	selected := session.state.Selected
	session.mu.Unlock()

	if selected == nil {
		return nil, errors.ErrInvalidRequest
	}

	links := uc.directions.BuildLinks(*selected)
	return &links, nil
}

func (uc *SessionUseCase) find(id string) (*mapSession, error) {
	uc.mu.RLock()
	session, ok := uc.sessions[id]
	uc.mu.RUnlock()

	if !ok {
		return nil, errors.ErrSessionNotFound
	}
	return session, nil
}

// snapshot copies the state and folds in the current resolver view. The
// resolver's own advisory wins over a stale session banner while resolution
// is in flight.
func (s *mapSession) snapshot() *domain.SessionState {
	resolver := s.resolver.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	state.Resolver = resolver
	if state.Advisory == "" {
		state.Advisory = resolver.Advisory
	}
	if state.Selected != nil {
		selected := *state.Selected
		state.Selected = &selected
	}
	if state.FocusRegion != nil {
		focus := *state.FocusRegion
		state.FocusRegion = &focus
	}
	return &state
}
