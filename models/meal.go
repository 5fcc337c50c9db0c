package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Meal categories as stored in meals.meal_category.
const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
	CategorySnack     = "snack"
)

// FoodItem is one entry of a meal. The AI analyzer returns the same shape,
// so items round-trip from analysis to save without remapping.
type FoodItem struct {
	Name     string  `json:"foodName"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// FoodItems keeps the ordered item list in a single JSONB column.
type FoodItems []FoodItem

func (f FoodItems) Value() (driver.Value, error) {
	return json.Marshal(f)
}

func (f *FoodItems) Scan(value interface{}) error {
	if value == nil {
		*f = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return errors.New("unsupported source type for FoodItems")
	}
}

// One logged meal. Total* columns are recomputed from FoodItems on every
// create and update; client-supplied totals are never trusted.
type Meal struct {
	gorm.Model
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	Date          time.Time `gorm:"index;not null" json:"date"`
	MealName      string    `gorm:"not null" json:"meal_name"`
	MealCategory  string    `gorm:"size:20" json:"meal_category"`
	FoodItems     FoodItems `gorm:"type:jsonb" json:"food_items"`
	TotalCalories float64   `json:"total_calories"`
	TotalProtein  float64   `json:"total_protein"`
	TotalCarbs    float64   `json:"total_carbs"`
	TotalFat      float64   `json:"total_fat"`
	ImageURL      string    `json:"image_url,omitempty"`
}
