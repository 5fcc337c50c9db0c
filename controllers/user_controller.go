package controllers

import (
	"errors"
	"net/http"

	"github.com/thats-dominik/athlena/middlewares"
	"github.com/thats-dominik/athlena/services"
	"github.com/thats-dominik/athlena/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Info *services.UserInfoService
}

func NewUserController(info *services.UserInfoService) *UserController {
	return &UserController{Info: info}
}

// GetProfile returns the users_info row. A fresh account without setup
// gets an empty profile instead of a 404, so the client can show the
// first-setup flow.
func (h *UserController) GetProfile(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	info, err := h.Info.GetByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"user_id": userID, "onboarded": false})
			return
		}
		handleServiceError(c, err)
		return
	}

	profile := gin.H{
		"user_id":        info.UserID,
		"full_name":      info.FullName,
		"height_cm":      info.HeightCm,
		"weight_kg":      info.WeightKg,
		"activity_level": info.ActivityLevel,
		"step_goal":      info.StepGoal,
		"goal_type":      info.GoalType,
		"diet_type":      info.DietType,
		"goal_calories":  info.GoalCalories,
		"goal_protein":   info.GoalProtein,
		"goal_carbs":     info.GoalCarbs,
		"goal_fat":       info.GoalFat,
		"onboarded":      true,
	}
	if bmi, category, ok := utils.BMI(info.HeightCm, info.WeightKg); ok {
		profile["bmi"] = bmi
		profile["bmi_category"] = category
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.UserInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := h.Info.Upsert(c.Request.Context(), userID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
