package models

import (
	"gorm.io/gorm"
)

// UserInfo is the users_info row: one per user, created during first setup
// and upserted from settings. Holds the biometric inputs alongside the
// AI-calculated daily targets so the goal screen needs a single fetch.
type UserInfo struct {
	gorm.Model
	UserID        uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName      string `json:"full_name"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	ActivityLevel string  `gorm:"size:20" json:"activity_level"`
	StepGoal      int     `json:"step_goal"`
	GoalType      string  `gorm:"size:20" json:"goal_type"`
	DietType      string  `gorm:"size:20" json:"diet_type"`
	GoalCalories  float64 `json:"goal_calories"`
	GoalProtein   float64 `json:"goal_protein"`
	GoalCarbs     float64 `json:"goal_carbs"`
	GoalFat       float64 `json:"goal_fat"`
}

func (UserInfo) TableName() string {
	return "users_info"
}
