package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/thats-dominik/athlena/middlewares"
	"github.com/thats-dominik/athlena/models"
	"github.com/thats-dominik/athlena/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{Meals: meals}
}

type mealRequest struct {
	MealName     string            `json:"meal_name"`
	MealCategory string            `json:"meal_category"`
	FoodItems    []models.FoodItem `json:"food_items"`
	ImageURL     string            `json:"image_url"`
}

func (h *MealController) LogMeal(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body mealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.Meals.SaveMeal(c.Request.Context(), userID, body.MealName, body.MealCategory, body.FoodItems, body.ImageURL)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal saved successfully", "data": meal})
}

// ListMeals returns all meals newest first; ?limit=N caps the result for
// the dashboard's recent cards.
func (h *MealController) ListMeals(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var meals []models.Meal
	var err error
	if v := c.Query("limit"); v != "" {
		limit, convErr := strconv.Atoi(v)
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		meals, err = h.Meals.ListRecentMeals(c.Request.Context(), userID, limit)
	} else {
		meals, err = h.Meals.ListMeals(c.Request.Context(), userID)
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *MealController) ListMealsByRange(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}

	meals, err := h.Meals.ListMealsByDateRange(c.Request.Context(), userID, from, to)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *MealController) GetDailySummary(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}

	summary, err := h.Meals.DailySummary(c.Request.Context(), userID, from, to)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *MealController) GetMeal(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	mealID, ok := parseMealID(c)
	if !ok {
		return
	}

	meal, err := h.Meals.GetMeal(c.Request.Context(), userID, mealID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MealController) UpdateMeal(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	mealID, ok := parseMealID(c)
	if !ok {
		return
	}

	var body mealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.Meals.UpdateMeal(c.Request.Context(), userID, mealID, body.MealName, body.MealCategory, body.FoodItems)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal updated successfully", "data": meal})
}

func (h *MealController) DeleteMeal(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	mealID, ok := parseMealID(c)
	if !ok {
		return
	}

	if err := h.Meals.DeleteMeal(c.Request.Context(), userID, mealID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- helpers ---

func parseMealID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return 0, false
	}
	return uint(id), true
}

func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	fromStr := c.DefaultQuery("from", now.AddDate(0, 0, -6).Format("2006-01-02"))
	toStr := c.DefaultQuery("to", now.Format("2006-01-02"))

	from, err := time.ParseInLocation("2006-01-02", fromStr, now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	to, err := time.ParseInLocation("2006-01-02", toStr, now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`to` must be on/after `from`"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
