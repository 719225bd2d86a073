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

// SessionHandler serves the live map sessions.
type SessionHandler struct {
	sessionUC *usecase.SessionUseCase
	logger    *zap.Logger
}

func NewSessionHandler(sessionUC *usecase.SessionUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// Create godoc
// @Summary Open a map session
// @Description Opens a session for a screen instance and starts location resolution
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Session parameters"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	state, err := h.sessionUC.Create(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, state, nil)
}

// Get godoc
// @Summary Get a session snapshot
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	state, err := h.sessionUC.Get(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, state, nil)
}

// Close godoc
// @Summary Close a session
// @Description Drops the session state and cancels its location resolution
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) Close(c *fiber.Ctx) error {
	if err := h.sessionUC.Close(c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"closed": true}, nil)
}

// SelectPlace godoc
// @Summary Select a place
// @Description Selects a renderable place, focuses the viewport and records the click
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.SelectPlaceRequest true "Place"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/select [post]
func (h *SessionHandler) SelectPlace(c *fiber.Ctx) error {
	var req dto.SelectPlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	state, err := h.sessionUC.SelectPlace(c.Params("id"), req.PlaceID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, state, nil)
}

// GetSelection godoc
// @Summary Get the selected place
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/selection [get]
func (h *SessionHandler) GetSelection(c *fiber.Ctx) error {
	place, err := h.sessionUC.Selection(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"selected": place}, nil)
}

// ClearSelection godoc
// @Summary Clear the selection
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/clear [post]
func (h *SessionHandler) ClearSelection(c *fiber.Ctx) error {
	state, err := h.sessionUC.ClearSelection(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, state, nil)
}

// SetFilter godoc
// @Summary Toggle the category filter
// @Description Setting the active key again or an empty key clears the filter
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.SetFilterRequest true "Category"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/filter [post]
func (h *SessionHandler) SetFilter(c *fiber.Ctx) error {
	var req dto.SetFilterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	state, err := h.sessionUC.SetFilter(c.Params("id"), req.Category)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, state, nil)
}

// GetVisiblePlaces godoc
// @Summary List places visible in the session
// @Description Returns renderable places after the session's category filter
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/places [get]
func (h *SessionHandler) GetVisiblePlaces(c *fiber.Ctx) error {
	result, err := h.sessionUC.VisiblePlaces(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// MapReady godoc
// @Summary Mark the map as rendered
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/map-ready [post]
func (h *SessionHandler) MapReady(c *fiber.Ctx) error {
	state, err := h.sessionUC.MapReady(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, state, nil)
}

// TileError godoc
// @Summary Report a basemap load failure
// @Description Switches unstable platforms to the fallback tile source
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/tile-error [post]
func (h *SessionHandler) TileError(c *fiber.Ctx) error {
	state, err := h.sessionUC.TileError(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, state, nil)
}

// GetDirections godoc
// @Summary Build directions links
// @Description Returns external navigation links for the selected place
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/directions [get]
func (h *SessionHandler) GetDirections(c *fiber.Ctx) error {
	links, err := h.sessionUC.Directions(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, links, nil)
}
