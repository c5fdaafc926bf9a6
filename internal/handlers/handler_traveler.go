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

// travelerHandler handles HTTP requests related to a trip's travelers.
type travelerHandler struct {
	travelerService portssvc.TravelerSvcFacade
}

// newTravelerHandler creates a new travelerHandler.
func newTravelerHandler(ts portssvc.TravelerSvcFacade) *travelerHandler {
	return &travelerHandler{travelerService: ts}
}

// registerTravelerRoutes registers routes related to travelers.
// Collection routes nest under the owning trip, item routes are flat.
func registerTravelerRoutes(rg *gin.RouterGroup, travelerService portssvc.TravelerSvcFacade) {
	h := newTravelerHandler(travelerService)

	tripTravelers := rg.Group("/trips/:tripID/travelers")
	{
		tripTravelers.POST("", h.createTraveler)
		tripTravelers.GET("", h.listTravelers)
	}

	travelers := rg.Group("/travelers")
	{
		travelers.GET("/:travelerID", h.getTraveler)
		travelers.PUT("/:travelerID", h.updateTraveler)
		travelers.DELETE("/:travelerID", h.deleteTraveler)
	}
}

// createTraveler godoc
// @Summary Add a traveler to a trip
// @Description Adds a traveler. At most one active primary traveler is allowed per trip.
// @Tags travelers
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   traveler body dto.CreateTravelerRequest true "Traveler details"
// @Success 201 {object} dto.TravelerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Trip already has a primary traveler"
// @Security BearerAuth
// @Router /trips/{tripID}/travelers [post]
func (h *travelerHandler) createTraveler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.CreateTravelerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTraveler", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	traveler, err := h.travelerService.CreateTraveler(c.Request.Context(), tripID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create traveler", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create traveler"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToTravelerResponse(traveler))
}

// listTravelers godoc
// @Summary List a trip's travelers
// @Tags travelers
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} dto.TravelerResponse
// @Security BearerAuth
// @Router /trips/{tripID}/travelers [get]
func (h *travelerHandler) listTravelers(c *gin.Context) {
	tripID := c.Param("tripID")

	travelers, err := h.travelerService.ListTravelers(c.Request.Context(), tripID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list travelers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list travelers"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListTravelerResponse(travelers))
}

// getTraveler godoc
// @Summary Get a traveler by ID
// @Tags travelers
// @Produce  json
// @Param   travelerID path string true "Traveler ID"
// @Success 200 {object} dto.TravelerResponse
// @Failure 404 {object} map[string]string "Traveler not found"
// @Security BearerAuth
// @Router /travelers/{travelerID} [get]
func (h *travelerHandler) getTraveler(c *gin.Context) {
	travelerID := c.Param("travelerID")

	traveler, err := h.travelerService.GetTravelerByID(c.Request.Context(), travelerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Traveler not found"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get traveler", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve traveler"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToTravelerResponse(traveler))
}

// updateTraveler godoc
// @Summary Update a traveler
// @Tags travelers
// @Accept  json
// @Produce  json
// @Param   travelerID path string true "Traveler ID"
// @Param   traveler body dto.UpdateTravelerRequest true "Fields to update"
// @Success 200 {object} dto.TravelerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Traveler not found"
// @Failure 409 {object} map[string]string "Trip already has a primary traveler"
// @Security BearerAuth
// @Router /travelers/{travelerID} [put]
func (h *travelerHandler) updateTraveler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	travelerID := c.Param("travelerID")

	var req dto.UpdateTravelerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTraveler", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	traveler, err := h.travelerService.UpdateTraveler(c.Request.Context(), travelerID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Traveler not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update traveler", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update traveler"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToTravelerResponse(traveler))
}

// deleteTraveler godoc
// @Summary Remove a traveler from its trip
// @Tags travelers
// @Param   travelerID path string true "Traveler ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Traveler not found"
// @Security BearerAuth
// @Router /travelers/{travelerID} [delete]
func (h *travelerHandler) deleteTraveler(c *gin.Context) {
	travelerID := c.Param("travelerID")

	if err := h.travelerService.DeleteTraveler(c.Request.Context(), travelerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Traveler not found"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete traveler", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete traveler"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
