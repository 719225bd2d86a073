package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/pkg/errors"
	"github.com/findhelp-service/internal/pkg/utils"
	"github.com/findhelp-service/internal/pkg/validator"
	"github.com/findhelp-service/internal/usecase"
	"github.com/findhelp-service/internal/usecase/dto"
)

// LanguageHandler serves the persisted app language.
type LanguageHandler struct {
	languageUC *usecase.LanguageUseCase
	logger     *zap.Logger
}

func NewLanguageHandler(languageUC *usecase.LanguageUseCase, logger *zap.Logger) *LanguageHandler {
	return &LanguageHandler{
		languageUC: languageUC,
		logger:     logger,
	}
}

// Get godoc
// @Summary Get the app language
// @Description Returns the current app language, falling back to the default
// @Tags Language
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/language [get]
func (h *LanguageHandler) Get(c *fiber.Ctx) error {
	lang := h.languageUC.Get(c.Context())

	return utils.SendSuccess(c, dto.LanguageResponse{Language: string(lang)}, nil)
}

// Set godoc
// @Summary Set the app language
// @Description Persists a supported language code and notifies subscribers
// @Tags Language
// @Accept json
// @Produce json
// @Param request body dto.SetLanguageRequest true "Language"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/language [put]
func (h *LanguageHandler) Set(c *fiber.Ctx) error {
	var req dto.SetLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.languageUC.Set(c.Context(), domain.Language(req.Language)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.LanguageResponse{Language: req.Language}, nil)
}
