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

// itineraryHandler handles HTTP requests related to itinerary categories
// and their activities.
type itineraryHandler struct {
	itineraryService portssvc.ItinerarySvcFacade
}

// newItineraryHandler creates a new itineraryHandler.
func newItineraryHandler(is portssvc.ItinerarySvcFacade) *itineraryHandler {
	return &itineraryHandler{itineraryService: is}
}

// registerItineraryRoutes registers routes related to the itinerary.
func registerItineraryRoutes(rg *gin.RouterGroup, itineraryService portssvc.ItinerarySvcFacade) {
	h := newItineraryHandler(itineraryService)

	tripItinerary := rg.Group("/trips/:tripID/itinerary")
	{
		tripItinerary.POST("", h.createCategory)
		tripItinerary.GET("", h.listCategories)
		tripItinerary.PUT("/reorder", h.reorderCategories)
	}

	categories := rg.Group("/itinerary/categories")
	{
		categories.GET("/:categoryID", h.getCategory)
		categories.PUT("/:categoryID", h.updateCategory)
		categories.DELETE("/:categoryID", h.deleteCategory)
		categories.POST("/:categoryID/activities", h.createActivity)
		categories.PUT("/:categoryID/activities/reorder", h.reorderActivities)
	}

	activities := rg.Group("/itinerary/activities")
	{
		activities.GET("/:activityID", h.getActivity)
		activities.PUT("/:activityID", h.updateActivity)
		activities.DELETE("/:activityID", h.deleteActivity)
	}
}

// createCategory godoc
// @Summary Create an itinerary category
// @Tags itinerary
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /trips/{tripID}/itinerary [post]
func (h *itineraryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	category, err := h.itineraryService.CreateCategory(c.Request.Context(), tripID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		default:
			logger.Error("Failed to create category", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List a trip's itinerary categories with their activities
// @Tags itinerary
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} dto.CategoryResponse
// @Security BearerAuth
// @Router /trips/{tripID}/itinerary [get]
func (h *itineraryHandler) listCategories(c *gin.Context) {
	tripID := c.Param("tripID")

	categories, err := h.itineraryService.ListCategories(c.Request.Context(), tripID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// reorderCategories godoc
// @Summary Reorder a trip's itinerary categories
// @Description Accepts the full list of category IDs in their new display order
// @Tags itinerary
// @Accept  json
// @Param   tripID path string true "Trip ID"
// @Param   order body dto.ReorderRequest true "Category IDs in new order"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "IDs are not a permutation of the existing categories"
// @Security BearerAuth
// @Router /trips/{tripID}/itinerary/reorder [put]
func (h *itineraryHandler) reorderCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReorderCategories", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.itineraryService.ReorderCategories(c.Request.Context(), tripID, req, updaterUserID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		default:
			logger.Error("Failed to reorder categories", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder categories"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// getCategory godoc
// @Summary Get an itinerary category by ID
// @Tags itinerary
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /itinerary/categories/{categoryID} [get]
func (h *itineraryHandler) getCategory(c *gin.Context) {
	categoryID := c.Param("categoryID")

	category, err := h.itineraryService.GetCategoryByID(c.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get category", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// updateCategory godoc
// @Summary Update an itinerary category
// @Tags itinerary
// @Accept  json
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Param   category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /itinerary/categories/{categoryID} [put]
func (h *itineraryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	category, err := h.itineraryService.UpdateCategory(c.Request.Context(), categoryID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update category", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete an itinerary category and its activities
// @Tags itinerary
// @Param   categoryID path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /itinerary/categories/{categoryID} [delete]
func (h *itineraryHandler) deleteCategory(c *gin.Context) {
	categoryID := c.Param("categoryID")

	if err := h.itineraryService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete category", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// createActivity godoc
// @Summary Add an activity to a category
// @Tags itinerary
// @Accept  json
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Param   activity body dto.CreateActivityRequest true "Activity details"
// @Success 201 {object} dto.ActivityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /itinerary/categories/{categoryID}/activities [post]
func (h *itineraryHandler) createActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateActivity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	activity, err := h.itineraryService.CreateActivity(c.Request.Context(), categoryID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		default:
			logger.Error("Failed to create activity", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToActivityResponse(activity))
}

// reorderActivities godoc
// @Summary Reorder a category's activities
// @Tags itinerary
// @Accept  json
// @Param   categoryID path string true "Category ID"
// @Param   order body dto.ReorderRequest true "Activity IDs in new order"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "IDs are not a permutation of the existing activities"
// @Security BearerAuth
// @Router /itinerary/categories/{categoryID}/activities/reorder [put]
func (h *itineraryHandler) reorderActivities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReorderActivities", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.itineraryService.ReorderActivities(c.Request.Context(), categoryID, req, updaterUserID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		default:
			logger.Error("Failed to reorder activities", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder activities"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// getActivity godoc
// @Summary Get an activity by ID
// @Tags itinerary
// @Produce  json
// @Param   activityID path string true "Activity ID"
// @Success 200 {object} dto.ActivityResponse
// @Failure 404 {object} map[string]string "Activity not found"
// @Security BearerAuth
// @Router /itinerary/activities/{activityID} [get]
func (h *itineraryHandler) getActivity(c *gin.Context) {
	activityID := c.Param("activityID")

	activity, err := h.itineraryService.GetActivityByID(c.Request.Context(), activityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get activity", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activity"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

// updateActivity godoc
// @Summary Update an activity
// @Tags itinerary
// @Accept  json
// @Produce  json
// @Param   activityID path string true "Activity ID"
// @Param   activity body dto.UpdateActivityRequest true "Fields to update"
// @Success 200 {object} dto.ActivityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Activity not found"
// @Security BearerAuth
// @Router /itinerary/activities/{activityID} [put]
func (h *itineraryHandler) updateActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	activityID := c.Param("activityID")

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateActivity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	activity, err := h.itineraryService.UpdateActivity(c.Request.Context(), activityID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update activity", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

// deleteActivity godoc
// @Summary Delete an activity
// @Tags itinerary
// @Param   activityID path string true "Activity ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Activity not found"
// @Security BearerAuth
// @Router /itinerary/activities/{activityID} [delete]
func (h *itineraryHandler) deleteActivity(c *gin.Context) {
	activityID := c.Param("activityID")

	if err := h.itineraryService.DeleteActivity(c.Request.Context(), activityID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete activity", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
