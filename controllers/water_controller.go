package controllers

import (
	"net/http"
	"time"

	"github.com/thats-dominik/athlena/middlewares"
	"github.com/thats-dominik/athlena/services"

	"github.com/gin-gonic/gin"
)

type WaterController struct {
	Water *services.WaterService
}

func NewWaterController(water *services.WaterService) *WaterController {
	return &WaterController{Water: water}
}

func (h *WaterController) GetWaterIntake(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date, ok := parseDayParam(c, c.Query("date"))
	if !ok {
		return
	}

	waterML, err := h.Water.GetWaterIntake(c.Request.Context(), userID, date)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":     date.Format("2006-01-02"),
		"water_ml": waterML,
	})
}

func (h *WaterController) SetWaterIntake(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		Date    string  `json:"date"`
		WaterML float64 `json:"water_ml"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.WaterML < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "water_ml must not be negative"})
		return
	}

	date, ok := parseDayParam(c, body.Date)
	if !ok {
		return
	}

	intake, err := h.Water.SetWaterIntake(c.Request.Context(), userID, date, body.WaterML)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":     intake.Date.Format("2006-01-02"),
		"water_ml": intake.WaterML,
	})
}

// parseDayParam reads an optional YYYY-MM-DD value, defaulting to today.
func parseDayParam(c *gin.Context, value string) (time.Time, bool) {
	if value == "" {
		return time.Now(), true
	}
	date, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}
