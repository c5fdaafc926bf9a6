package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	portssvc "github.com/voyago/trip_planner_app/internal/core/ports/services"
	"github.com/voyago/trip_planner_app/internal/dto"
	"github.com/voyago/trip_planner_app/internal/middleware"
)

// accommodationHandler handles HTTP requests related to accommodation options.
type accommodationHandler struct {
	accommodationService portssvc.AccommodationSvcFacade
}

// newAccommodationHandler creates a new accommodationHandler.
func newAccommodationHandler(as portssvc.AccommodationSvcFacade) *accommodationHandler {
	return &accommodationHandler{accommodationService: as}
}

// registerAccommodationRoutes registers routes related to accommodation options.
func registerAccommodationRoutes(rg *gin.RouterGroup, accommodationService portssvc.AccommodationSvcFacade) {
	h := newAccommodationHandler(accommodationService)

	tripAccommodations := rg.Group("/trips/:tripID/accommodations")
	{
		tripAccommodations.POST("", h.createAccommodation)
		tripAccommodations.GET("", h.listAccommodations)
	}

	accommodations := rg.Group("/accommodations")
	{
		accommodations.GET("/:accommodationID", h.getAccommodation)
		accommodations.PUT("/:accommodationID", h.updateAccommodation)
		accommodations.DELETE("/:accommodationID", h.deleteAccommodation)
	}
}

// createAccommodation godoc
// @Summary Create an accommodation option
// @Tags accommodations
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   accommodation body dto.CreateAccommodationRequest true "Accommodation details"
// @Success 201 {object} dto.AccommodationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /trips/{tripID}/accommodations [post]
func (h *accommodationHandler) createAccommodation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.CreateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccommodation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	accommodation, err := h.accommodationService.CreateAccommodation(c.Request.Context(), tripID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		default:
			logger.Error("Failed to create accommodation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create accommodation"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccommodationResponse(accommodation))
}

// listAccommodations godoc
// @Summary List a trip's accommodation options
// @Tags accommodations
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} dto.AccommodationResponse
// @Security BearerAuth
// @Router /trips/{tripID}/accommodations [get]
func (h *accommodationHandler) listAccommodations(c *gin.Context) {
	tripID := c.Param("tripID")

	accommodations, err := h.accommodationService.ListAccommodations(c.Request.Context(), tripID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list accommodations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accommodations"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccommodationResponse(accommodations))
}

// getAccommodation godoc
// @Summary Get an accommodation option by ID
// @Tags accommodations
// @Produce  json
// @Param   accommodationID path string true "Accommodation ID"
// @Success 200 {object} dto.AccommodationResponse
// @Failure 404 {object} map[string]string "Accommodation not found"
// @Security BearerAuth
// @Router /accommodations/{accommodationID} [get]
func (h *accommodationHandler) getAccommodation(c *gin.Context) {
	accommodationID := c.Param("accommodationID")

	accommodation, err := h.accommodationService.GetAccommodationByID(c.Request.Context(), accommodationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Accommodation not found"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get accommodation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve accommodation"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToAccommodationResponse(accommodation))
}

// updateAccommodation godoc
// @Summary Update an accommodation option
// @Tags accommodations
// @Accept  json
// @Produce  json
// @Param   accommodationID path string true "Accommodation ID"
// @Param   accommodation body dto.UpdateAccommodationRequest true "Fields to update"
// @Success 200 {object} dto.AccommodationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Accommodation not found"
// @Security BearerAuth
// @Router /accommodations/{accommodationID} [put]
func (h *accommodationHandler) updateAccommodation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accommodationID := c.Param("accommodationID")

	var req dto.UpdateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccommodation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	accommodation, err := h.accommodationService.UpdateAccommodation(c.Request.Context(), accommodationID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Accommodation not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update accommodation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update accommodation"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToAccommodationResponse(accommodation))
}

// deleteAccommodation godoc
// @Summary Delete an accommodation option
// @Tags accommodations
// @Param   accommodationID path string true "Accommodation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Accommodation not found"
// @Security BearerAuth
// @Router /accommodations/{accommodationID} [delete]
func (h *accommodationHandler) deleteAccommodation(c *gin.Context) {
	accommodationID := c.Param("accommodationID")

	if err := h.accommodationService.DeleteAccommodation(c.Request.Context(), accommodationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Accommodation not found"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete accommodation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete accommodation"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
