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

// actualsHandler handles HTTP requests for the actual-expense ledger and
// settlement.
type actualsHandler struct {
	actualsService portssvc.ActualsSvcFacade
}

// newActualsHandler creates a new actualsHandler.
func newActualsHandler(as portssvc.ActualsSvcFacade) *actualsHandler {
	return &actualsHandler{actualsService: as}
}

// registerActualsRoutes registers routes related to actual expenses and
// settlement.
func registerActualsRoutes(rg *gin.RouterGroup, actualsService portssvc.ActualsSvcFacade) {
	h := newActualsHandler(actualsService)

	tripActuals := rg.Group("/trips/:tripID/actuals")
	{
		tripActuals.GET("", h.listActuals)
		tripActuals.GET("/state", h.getActualsState)
		tripActuals.POST("/transfer", h.transferForecast)
		tripActuals.DELETE("", h.resetActuals)
	}
	rg.GET("/trips/:tripID/settlement", h.computeSettlement)

	actuals := rg.Group("/actuals")
	{
		actuals.PUT("/:actualID", h.updateActual)
	}
}

// getActualsState godoc
// @Summary Report whether a trip is in forecast or actuals mode
// @Tags actuals
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {object} dto.ActualsStateResponse
// @Security BearerAuth
// @Router /trips/{tripID}/actuals/state [get]
func (h *actualsHandler) getActualsState(c *gin.Context) {
	tripID := c.Param("tripID")

	state, err := h.actualsService.GetActualsState(c.Request.Context(), tripID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get actuals state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get actuals state"})
		return
	}
	c.JSON(http.StatusOK, dto.ActualsStateResponse{State: string(state)})
}

// transferForecast godoc
// @Summary Seed the actuals ledger from the stored forecast
// @Description Copies every forecast line into the actuals ledger as an editable row. Fails when the trip already has actuals; reset them first.
// @Tags actuals
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 201 {array} dto.ActualResponse
// @Failure 404 {object} map[string]string "No forecast collected yet"
// @Failure 409 {object} map[string]string "Trip already has actuals"
// @Security BearerAuth
// @Router /trips/{tripID}/actuals/transfer [post]
func (h *actualsHandler) transferForecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	requesterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	actuals, err := h.actualsService.TransferForecast(c.Request.Context(), tripID, requesterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to transfer forecast to actuals", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transfer forecast"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToListActualResponse(actuals))
}

// listActuals godoc
// @Summary List a trip's actual-expense rows
// @Tags actuals
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} dto.ActualResponse
// @Security BearerAuth
// @Router /trips/{tripID}/actuals [get]
func (h *actualsHandler) listActuals(c *gin.Context) {
	tripID := c.Param("tripID")

	actuals, err := h.actualsService.ListActuals(c.Request.Context(), tripID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list actuals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list actuals"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListActualResponse(actuals))
}

// updateActual godoc
// @Summary Update an actual-expense row
// @Description Records what was really paid for a line: the actual amount, who paid, and when
// @Tags actuals
// @Accept  json
// @Produce  json
// @Param   actualID path string true "Actual expense ID"
// @Param   actual body dto.UpdateActualRequest true "Fields to update"
// @Success 200 {object} dto.ActualResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Actual expense not found"
// @Security BearerAuth
// @Router /actuals/{actualID} [put]
func (h *actualsHandler) updateActual(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actualID := c.Param("actualID")

	var req dto.UpdateActualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateActual", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	actual, err := h.actualsService.UpdateActual(c.Request.Context(), actualID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Actual expense not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update actual", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update actual"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToActualResponse(actual))
}

// resetActuals godoc
// @Summary Delete a trip's actuals, returning it to forecast mode
// @Tags actuals
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {object} dto.ResetActualsResponse
// @Security BearerAuth
// @Router /trips/{tripID}/actuals [delete]
func (h *actualsHandler) resetActuals(c *gin.Context) {
	tripID := c.Param("tripID")

	deleted, err := h.actualsService.ResetActuals(c.Request.Context(), tripID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to reset actuals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset actuals"})
		return
	}
	c.JSON(http.StatusOK, dto.ResetActualsResponse{Deleted: deleted})
}

// computeSettlement godoc
// @Summary Compute who owes whom
// @Description Derives each traveler's balance from paid actuals against their fair share, then reduces the balances to a minimal set of pairwise transfers. With no actuals recorded the settlement list is empty.
// @Tags actuals
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {object} dto.SettlementSummaryResponse
// @Failure 404 {object} map[string]string "No forecast collected for this trip"
// @Security BearerAuth
// @Router /trips/{tripID}/settlement [get]
func (h *actualsHandler) computeSettlement(c *gin.Context) {
	tripID := c.Param("tripID")

	summary, err := h.actualsService.ComputeSettlement(c.Request.Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to compute settlement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute settlement"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToSettlementSummaryResponse(summary))
}
