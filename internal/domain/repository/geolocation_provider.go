package repository

import (
	"context"

	"github.com/findhelp-service/internal/domain"
)

// GeolocationProvider is the outbound port for device position lookups.
type GeolocationProvider interface {
	// RequestPermission asks for foreground location access. A denied result
	// is not an error; it is a normal, terminal answer.
	RequestPermission(ctx context.Context) (bool, error)

	// CurrentPosition fetches the device position. The call honors the
	// context deadline; a deadline hit surfaces as ctx.Err().
	CurrentPosition(ctx context.Context) (*domain.Position, error)
}
