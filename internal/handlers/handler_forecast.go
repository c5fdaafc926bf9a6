package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	portssvc "github.com/voyago/trip_planner_app/internal/core/ports/services"
	"github.com/voyago/trip_planner_app/internal/dto"
	"github.com/voyago/trip_planner_app/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// forecastHandler handles HTTP requests for the cost forecast workflow.
type forecastHandler struct {
	forecastService portssvc.ForecastSvcFacade
}

// newForecastHandler creates a new forecastHandler.
func newForecastHandler(fs portssvc.ForecastSvcFacade) *forecastHandler {
	return &forecastHandler{forecastService: fs}
}

// RegisterForecastRoutes registers routes related to the cost forecast.
func RegisterForecastRoutes(rg *gin.RouterGroup, forecastService portssvc.ForecastSvcFacade) {
	h := newForecastHandler(forecastService)

	forecast := rg.Group("/trips/:tripID/forecast")
	{
		forecast.POST("", h.collectForecast)
		forecast.GET("", h.getForecast)
		forecast.GET("/export", h.exportForecast)
		forecast.GET("/shares/:travelerID", h.convertShare)
	}
}

// collectForecast godoc
// @Summary Collect a cost forecast for a trip
// @Description Gathers cost lines from flights, accommodations, itinerary and ad-hoc expenses matching the requested planning statuses, converts everything to the primary traveler's currency and splits the total evenly across cost sharers. The result replaces any previous forecast snapshot.
// @Tags forecast
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   options body dto.CollectForecastRequest true "Planning statuses to include"
// @Success 200 {object} dto.ForecastReportResponse
// @Failure 400 {object} map[string]string "Invalid status filter"
// @Failure 409 {object} map[string]string "Trip has no active primary traveler or no cost sharers"
// @Failure 502 {object} map[string]string "No exchange rate available"
// @Security BearerAuth
// @Router /trips/{tripID}/forecast [post]
func (h *forecastHandler) collectForecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.CollectForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CollectForecast", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requesterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := h.forecastService.CollectForecast(c.Request.Context(), tripID, req, requesterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRateUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to collect forecast", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to collect forecast"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToForecastReportResponse(report))
}

// getForecast godoc
// @Summary Get the stored forecast snapshot
// @Tags forecast
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {object} dto.ForecastReportResponse
// @Failure 404 {object} map[string]string "No forecast collected yet"
// @Security BearerAuth
// @Router /trips/{tripID}/forecast [get]
func (h *forecastHandler) getForecast(c *gin.Context) {
	tripID := c.Param("tripID")

	report, err := h.forecastService.GetForecast(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No forecast collected for this trip"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get forecast", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve forecast"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToForecastReportResponse(report))
}

// exportForecast godoc
// @Summary Export the stored forecast as an xlsx workbook
// @Tags forecast
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   tripID path string true "Trip ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "No forecast collected yet"
// @Security BearerAuth
// @Router /trips/{tripID}/forecast/export [get]
func (h *forecastHandler) exportForecast(c *gin.Context) {
	tripID := c.Param("tripID")

	workbook, err := h.forecastService.ExportForecast(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No forecast collected for this trip"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to export forecast", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export forecast"})
		}
		return
	}

	filename := fmt.Sprintf("forecast_%s_%s.xlsx", tripID, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, workbook)
}

// convertShare godoc
// @Summary Convert a traveler's share into their own currency
// @Description Converts the traveler's base-currency share from the stored forecast using current rates
// @Tags forecast
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   travelerID path string true "Traveler ID"
// @Success 200 {object} dto.ShareConversionResponse
// @Failure 404 {object} map[string]string "No forecast, or traveler has no share in it"
// @Failure 502 {object} map[string]string "No exchange rate available"
// @Security BearerAuth
// @Router /trips/{tripID}/forecast/shares/{travelerID} [get]
func (h *forecastHandler) convertShare(c *gin.Context) {
	tripID := c.Param("tripID")
	travelerID := c.Param("travelerID")

	conversion, err := h.forecastService.ConvertShare(c.Request.Context(), tripID, travelerID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRateUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to convert share", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert share"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToShareConversionResponse(conversion))
}
