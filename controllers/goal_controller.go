package controllers

import (
	"net/http"

	"github.com/thats-dominik/athlena/middlewares"
	"github.com/thats-dominik/athlena/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
	Info  *services.UserInfoService
}

func NewGoalController(goals *services.GoalService, info *services.UserInfoService) *GoalController {
	return &GoalController{Goals: goals, Info: info}
}

type calculateGoalsRequest struct {
	services.GoalInput
	Save bool `json:"save"`
}

// CalculateGoals runs the AI target calculation and optionally persists
// the four targets to the caller's users_info row.
func (h *GoalController) CalculateGoals(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req calculateGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Goals.CalculateGoals(c.Request.Context(), req.GoalInput)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if req.Save {
		if _, err := h.Info.SaveGoals(c.Request.Context(), userID, *result); err != nil {
			handleServiceError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, result)
}

func (h *GoalController) GetGoals(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	info, err := h.Info.GetByUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"goal_calories": info.GoalCalories,
		"goal_protein":  info.GoalProtein,
		"goal_carbs":    info.GoalCarbs,
		"goal_fat":      info.GoalFat,
	})
}

func (h *GoalController) UpdateGoals(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var goals services.GoalResult
	if err := c.ShouldBindJSON(&goals); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := h.Info.SaveGoals(c.Request.Context(), userID, goals)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
