package repository

import (
	"github.com/findhelp-service/internal/domain"
)

// DirectionsProvider builds external navigation handoffs. The handoff is
// fire-and-forget: the controller never observes whether the external app
// opened.
type DirectionsProvider interface {
	BuildLinks(place domain.Place) domain.DirectionsLinks
}
