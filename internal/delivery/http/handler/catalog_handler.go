package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/findhelp-service/internal/pkg/errors"
	"github.com/findhelp-service/internal/pkg/utils"
	"github.com/findhelp-service/internal/usecase"
)

// CatalogHandler serves the static place catalog.
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// GetPlaces godoc
// @Summary List places
// @Description Returns renderable places, optionally filtered by category
// @Tags Catalog
// @Produce json
// @Param category query string false "Category key"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/places [get]
func (h *CatalogHandler) GetPlaces(c *fiber.Ctx) error {
	category := c.Query("category")

	result, err := h.catalogUC.GetPlaces(category)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetNearbyPlaces godoc
// @Summary List places nearest to a point
// @Description Returns renderable places ordered by distance from the given coordinates
// @Tags Catalog
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param limit query int false "Maximum results"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/places/nearby [get]
func (h *CatalogHandler) GetNearbyPlaces(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	limit := c.QueryInt("limit")

	result, err := h.catalogUC.NearestPlaces(lat, lon, limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetPlace godoc
// @Summary Get a place
// @Description Returns one renderable place by id
// @Tags Catalog
// @Produce json
// @Param id path string true "Place id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/places/{id} [get]
func (h *CatalogHandler) GetPlace(c *fiber.Ctx) error {
	place, err := h.catalogUC.GetPlace(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, place, nil)
}

// GetCategories godoc
// @Summary List categories
// @Description Returns the legend categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/categories [get]
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	result := h.catalogUC.GetCategories()

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Categories),
	})
}

// GetRegion godoc
// @Summary Get the catalog region
// @Description Returns the viewport covering every renderable place
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/region [get]
func (h *CatalogHandler) GetRegion(c *fiber.Ctx) error {
	return utils.SendSuccess(c, fiber.Map{
		"region": h.catalogUC.BoundsRegion(),
	}, nil)
}
