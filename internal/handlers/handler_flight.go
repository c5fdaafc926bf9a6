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

// flightHandler handles HTTP requests related to flight options.
type flightHandler struct {
	flightService portssvc.FlightSvcFacade
}

// newFlightHandler creates a new flightHandler.
func newFlightHandler(fs portssvc.FlightSvcFacade) *flightHandler {
	return &flightHandler{flightService: fs}
}

// registerFlightRoutes registers routes related to flight options.
func registerFlightRoutes(rg *gin.RouterGroup, flightService portssvc.FlightSvcFacade) {
	h := newFlightHandler(flightService)

	tripFlights := rg.Group("/trips/:tripID/flights")
	{
		tripFlights.POST("", h.createFlight)
		tripFlights.GET("", h.listFlights)
	}

	flights := rg.Group("/flights")
	{
		flights.GET("/:flightID", h.getFlight)
		flights.PUT("/:flightID", h.updateFlight)
		flights.DELETE("/:flightID", h.deleteFlight)
	}
}

// createFlight godoc
// @Summary Create a flight option
// @Description Creates a flight option with its segments. ONE_WAY requires exactly one segment, ROUND_TRIP exactly two.
// @Tags flights
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   flight body dto.CreateFlightRequest true "Flight option details"
// @Success 201 {object} dto.FlightResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /trips/{tripID}/flights [post]
func (h *flightHandler) createFlight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFlight", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	flight, err := h.flightService.CreateFlight(c.Request.Context(), tripID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		default:
			logger.Error("Failed to create flight", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create flight"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToFlightResponse(flight))
}

// listFlights godoc
// @Summary List a trip's flight options
// @Tags flights
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} dto.FlightResponse
// @Security BearerAuth
// @Router /trips/{tripID}/flights [get]
func (h *flightHandler) listFlights(c *gin.Context) {
	tripID := c.Param("tripID")

	flights, err := h.flightService.ListFlights(c.Request.Context(), tripID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list flights", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list flights"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListFlightResponse(flights))
}

// getFlight godoc
// @Summary Get a flight option by ID
// @Tags flights
// @Produce  json
// @Param   flightID path string true "Flight option ID"
// @Success 200 {object} dto.FlightResponse
// @Failure 404 {object} map[string]string "Flight not found"
// @Security BearerAuth
// @Router /flights/{flightID} [get]
func (h *flightHandler) getFlight(c *gin.Context) {
	flightID := c.Param("flightID")

	flight, err := h.flightService.GetFlightByID(c.Request.Context(), flightID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get flight", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve flight"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToFlightResponse(flight))
}

// updateFlight godoc
// @Summary Update a flight option
// @Description Replaces a flight option and its segments
// @Tags flights
// @Accept  json
// @Produce  json
// @Param   flightID path string true "Flight option ID"
// @Param   flight body dto.UpdateFlightRequest true "Flight option details"
// @Success 200 {object} dto.FlightResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Flight not found"
// @Security BearerAuth
// @Router /flights/{flightID} [put]
func (h *flightHandler) updateFlight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	flightID := c.Param("flightID")

	var req dto.UpdateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateFlight", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	flight, err := h.flightService.UpdateFlight(c.Request.Context(), flightID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update flight", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update flight"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToFlightResponse(flight))
}

// deleteFlight godoc
// @Summary Delete a flight option
// @Tags flights
// @Param   flightID path string true "Flight option ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Flight not found"
// @Security BearerAuth
// @Router /flights/{flightID} [delete]
func (h *flightHandler) deleteFlight(c *gin.Context) {
	flightID := c.Param("flightID")

	if err := h.flightService.DeleteFlight(c.Request.Context(), flightID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete flight", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete flight"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
