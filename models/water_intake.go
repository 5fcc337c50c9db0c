package models

import (
	"time"

	"gorm.io/gorm"
)

// WaterIntake tracks one running total per user per day. Date is truncated
// to local midnight so (user_id, date) stays unique.
type WaterIntake struct {
	gorm.Model
	UserID  uint      `gorm:"not null;uniqueIndex:idx_water_user_date" json:"user_id"`
	Date    time.Time `gorm:"not null;uniqueIndex:idx_water_user_date" json:"date"`
	WaterML float64   `json:"water_ml"`
}

func (WaterIntake) TableName() string {
	return "water_intake"
}
