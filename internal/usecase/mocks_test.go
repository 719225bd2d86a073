package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/findhelp-service/internal/domain"
)

// MockKVRepository is a mock of KVRepository
type MockKVRepository struct {
	mock.Mock
}

func (m *MockKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKVRepository) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKVRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockCatalogRepository is a mock of CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Catalog), args.Error(1)
}

func (m *MockCatalogRepository) LoadReference(ctx context.Context) (*domain.Reference, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reference), args.Error(1)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockGeolocationProvider is a mock of GeolocationProvider
type MockGeolocationProvider struct {
	mock.Mock
}

func (m *MockGeolocationProvider) RequestPermission(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockGeolocationProvider) CurrentPosition(ctx context.Context) (*domain.Position, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}

// stubDirections builds predictable links without touching the network.
type stubDirections struct{}

func (stubDirections) BuildLinks(place domain.Place) domain.DirectionsLinks {
	return domain.DirectionsLinks{Label: place.Name}
}

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Categories: []domain.Category{
			{Key: "harm-reduction", Name: "Harm Reduction", Color: "#8B5CF6", Icon: "shield"},
			{Key: "health", Name: "Medical Care", Color: "#FF4B4B", Icon: "heart-pulse"},
		},
		Places: []domain.Place{
			{
				ID:          "p1",
				Name:        "Site One",
				Address:     "1 First Ave",
				Coordinates: domain.Coordinates{Latitude: 40.80, Longitude: -73.94},
				Type:        "harm-reduction",
			},
			{
				ID:          "p2",
				Name:        "Clinic Two",
				Address:     "2 Second Ave",
				Coordinates: domain.Coordinates{Latitude: 40.74, Longitude: -73.98},
				Type:        "health",
			},
			{
				ID:          "p3",
				Name:        "Site Three",
				Address:     "3 Third Ave",
				Coordinates: domain.Coordinates{Latitude: 40.82, Longitude: -73.93},
				Type:        "harm-reduction",
			},
			{
				ID:          "orphan",
				Name:        "Orphan Place",
				Address:     "9 Ninth Ave",
				Coordinates: domain.Coordinates{Latitude: 40.75, Longitude: -73.99},
				Type:        "unmapped",
			},
		},
	}
}
