package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/voyago/trip_planner_app/internal/apperrors"
	portssvc "github.com/voyago/trip_planner_app/internal/core/ports/services"
	"github.com/voyago/trip_planner_app/internal/dto"
	"github.com/voyago/trip_planner_app/internal/middleware"
)

// exchangeRateHandler handles HTTP requests related to currency rates.
type exchangeRateHandler struct {
	fxService portssvc.FxRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(fx portssvc.FxRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{fxService: fx}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, fxService portssvc.FxRateSvcFacade) {
	h := newExchangeRateHandler(fxService)

	rates := rg.Group("/exchange-rates")
	{
		rates.GET("", h.listRates)
		rates.GET("/:from/:to", h.getRate)
	}
}

// listRates godoc
// @Summary List stored exchange rate snapshots
// @Tags exchange-rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listRates(c *gin.Context) {
	rates, err := h.fxService.ListRates(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange rates"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getRate godoc
// @Summary Resolve the conversion rate between two currencies
// @Description Fetches a live rate when the provider is reachable, falling back to the newest stored snapshot
// @Tags exchange-rates
// @Produce  json
// @Param   from path string true "Source currency code (ISO 4217)"
// @Param   to path string true "Target currency code (ISO 4217)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 502 {object} map[string]string "No rate available"
// @Security BearerAuth
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getRate(c *gin.Context) {
	from := strings.ToUpper(c.Param("from"))
	to := strings.ToUpper(c.Param("to"))

	rate, err := h.fxService.GetRate(c.Request.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRateUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get exchange rate"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": from, "to": to, "rate": rate})
}
