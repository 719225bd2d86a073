package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/findhelp-service/internal/pkg/utils"
	"github.com/findhelp-service/internal/usecase"
	"github.com/findhelp-service/internal/usecase/dto"
)

// DeviceHandler serves the stable anonymous device identity.
type DeviceHandler struct {
	identityUC *usecase.IdentityUseCase
	logger     *zap.Logger
}

func NewDeviceHandler(identityUC *usecase.IdentityUseCase, logger *zap.Logger) *DeviceHandler {
	return &DeviceHandler{
		identityUC: identityUC,
		logger:     logger,
	}
}

// GetOrCreate godoc
// @Summary Get the device id
// @Description Returns the stable anonymous device id, creating it on first call
// @Tags Device
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/device [post]
func (h *DeviceHandler) GetOrCreate(c *fiber.Ctx) error {
	id := h.identityUC.GetOrCreate(c.Context())

	return utils.SendSuccess(c, dto.DeviceResponse{DeviceID: id}, nil)
}
