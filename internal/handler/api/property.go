package api

import (
	"errors"
	"net/http"

	resdto "github.com/GRAMAPHENIA/resio-sub000/internal/handler/dto/response"
	"github.com/GRAMAPHENIA/resio-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	propertyUseCase usecase.PropertyUseCase
}

func NewPropertyHandler(propertyUseCase usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
	}
}

// @Summary List properties
// @Description List properties, optionally only the bookable ones
// @Tags properties
// @Produce json
// @Param available query bool false "Only available properties"
// @Success 200 {array} resdto.PropertyResponse
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	onlyAvailable := c.Query("available") == "true"

	properties, err := h.propertyUseCase.ListProperties(c.Request.Context(), onlyAvailable)
	if err != nil {
		respondPropertyError(c, err)
		return
	}

	response := make([]*resdto.PropertyResponse, len(properties))
	for i, p := range properties {
		response[i] = resdto.FromProperty(p)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get property
// @Description Get property by ID
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	p, err := h.propertyUseCase.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondPropertyError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProperty(p))
}

// @Summary Get property by slug
// @Description Get property by its URL slug
// @Tags properties
// @Produce json
// @Param slug path string true "Property slug"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 404 {object} map[string]string
// @Router /properties/slug/{slug} [get]
func (h *PropertyHandler) GetPropertyBySlug(c *gin.Context) {
	p, err := h.propertyUseCase.GetPropertyBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondPropertyError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProperty(p))
}

// @Summary Get unavailable dates
// @Description List the date ranges already booked for a property
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {array} resdto.UnavailableRangeResponse
// @Failure 404 {object} map[string]string
// @Router /properties/{id}/unavailable-dates [get]
func (h *PropertyHandler) GetUnavailableDates(c *gin.Context) {
	ranges, err := h.propertyUseCase.UnavailableDates(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondPropertyError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUnavailableRanges(ranges))
}

func respondPropertyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
