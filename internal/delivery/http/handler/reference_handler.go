package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/findhelp-service/internal/pkg/utils"
	"github.com/findhelp-service/internal/usecase"
)

// ReferenceHandler serves the static emergency numbers and resource links.
type ReferenceHandler struct {
	referenceUC *usecase.ReferenceUseCase
	logger      *zap.Logger
}

func NewReferenceHandler(referenceUC *usecase.ReferenceUseCase, logger *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		referenceUC: referenceUC,
		logger:      logger,
	}
}

// GetEmergencyNumbers godoc
// @Summary List emergency numbers
// @Description Returns the dialable emergency numbers in display order
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/reference/emergency-numbers [get]
func (h *ReferenceHandler) GetEmergencyNumbers(c *fiber.Ctx) error {
	numbers := h.referenceUC.GetEmergencyNumbers()

	return utils.SendSuccess(c, fiber.Map{
		"emergency_numbers": numbers,
	}, &utils.Meta{
		Total: len(numbers),
	})
}

// GetResources godoc
// @Summary List resource links
// @Description Returns the informational resource links in display order
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/reference/resources [get]
func (h *ReferenceHandler) GetResources(c *fiber.Ctx) error {
	resources := h.referenceUC.GetResources()

	return utils.SendSuccess(c, fiber.Map{
		"resources": resources,
	}, &utils.Meta{
		Total: len(resources),
	})
}
