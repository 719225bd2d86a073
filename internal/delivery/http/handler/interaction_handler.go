package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/findhelp-service/internal/pkg/errors"
	"github.com/findhelp-service/internal/pkg/utils"
	"github.com/findhelp-service/internal/pkg/validator"
	"github.com/findhelp-service/internal/usecase"
	"github.com/findhelp-service/internal/usecase/dto"
)

// InteractionHandler serves the click ledger and archive stats. statsUC may
// be nil when the process runs without the analytics database.
type InteractionHandler struct {
	catalogUC  *usecase.CatalogUseCase
	recorderUC *usecase.RecorderUseCase
	statsUC    *usecase.StatsUseCase
	logger     *zap.Logger
}

func NewInteractionHandler(
	catalogUC *usecase.CatalogUseCase,
	recorderUC *usecase.RecorderUseCase,
	statsUC *usecase.StatsUseCase,
	logger *zap.Logger,
) *InteractionHandler {
	return &InteractionHandler{
		catalogUC:  catalogUC,
		recorderUC: recorderUC,
		statsUC:    statsUC,
		logger:     logger,
	}
}

// RecordClick godoc
// @Summary Record a pin click
// @Description Queues a click for the ledger; recording never blocks the caller
// @Tags Interactions
// @Accept json
// @Produce json
// @Param request body dto.ClickRequest true "Click"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/interactions/click [post]
func (h *InteractionHandler) RecordClick(c *fiber.Ctx) error {
	var req dto.ClickRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	place, err := h.catalogUC.GetPlace(req.PlaceID)
	if err != nil {
		return utils.SendError(c, err)
	}

	queued := h.recorderUC.RecordClick(req.DeviceID, *place)

	return utils.SendSuccess(c, dto.ClickResponse{Queued: queued}, nil)
}

// GetStats godoc
// @Summary Get click statistics
// @Description Aggregates the archived click events
// @Tags Interactions
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/interactions/stats [get]
func (h *InteractionHandler) GetStats(c *fiber.Ctx) error {
	if h.statsUC == nil {
		return utils.SendError(c, errors.ErrDatabaseError)
	}

	stats, err := h.statsUC.GetClickStats(c.Context())
	if err != nil {
		return utils.SendError(c, errors.ErrDatabaseError)
	}

	return utils.SendSuccess(c, stats, nil)
}

// GetDeviceLedger godoc
// @Summary Get the click ledger for a device
// @Tags Interactions
// @Produce json
// @Param device_id path string true "Device id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/interactions/{device_id} [get]
func (h *InteractionHandler) GetDeviceLedger(c *fiber.Ctx) error {
	deviceID := c.Params("device_id")

	records, err := h.recorderUC.LedgerFor(c.Context(), deviceID)
	if err != nil {
		h.logger.Error("Failed to read device ledger", zap.Error(err))
		return utils.SendError(c, errors.ErrStorageError)
	}

	return utils.SendSuccess(c, dto.DeviceLedgerResponse{
		DeviceID: deviceID,
		Records:  records,
	}, &utils.Meta{
		Total: len(records),
	})
}
