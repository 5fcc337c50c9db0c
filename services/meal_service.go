package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/thats-dominik/athlena/models"

	"gorm.io/gorm"
)

// MealService owns the CRUD lifecycle of meal records. Aggregate totals
// are always recomputed server-side from the item list.
type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// ComputeTotals sums each macro across the items. Items decoded from JSON
// with missing numeric fields contribute 0.
func ComputeTotals(items []models.FoodItem) (calories, protein, carbs, fat float64) {
	for _, it := range items {
		calories += it.Calories
		protein += it.Protein
		carbs += it.Carbs
		fat += it.Fat
	}
	return calories, protein, carbs, fat
}

func normalizeCategory(category string) string {
	switch strings.ToLower(category) {
	case models.CategoryBreakfast, models.CategoryLunch, models.CategoryDinner:
		return strings.ToLower(category)
	default:
		return models.CategorySnack
	}
}

// SaveMeal writes a new meal with a server-assigned timestamp and totals
// recomputed from the item sequence.
func (s *MealService) SaveMeal(ctx context.Context, userID uint, mealName, category string, items []models.FoodItem, imageURL string) (*models.Meal, error) {
	var missing []string
	if userID == 0 {
		missing = append(missing, "user_id")
	}
	if strings.TrimSpace(mealName) == "" {
		missing = append(missing, "meal_name")
	}
	if len(items) == 0 {
		missing = append(missing, "food_items")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	cal, prot, carbs, fat := ComputeTotals(items)
	meal := &models.Meal{
		UserID:        userID,
		Date:          time.Now(),
		MealName:      mealName,
		MealCategory:  normalizeCategory(category),
		FoodItems:     items,
		TotalCalories: cal,
		TotalProtein:  prot,
		TotalCarbs:    carbs,
		TotalFat:      fat,
		ImageURL:      imageURL,
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// ListMeals returns the user's meals, most recent first.
func (s *MealService) ListMeals(ctx context.Context, userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&meals).Error
	return meals, err
}

// ListRecentMeals is ListMeals with a cap, for the dashboard cards.
func (s *MealService) ListRecentMeals(ctx context.Context, userID uint, limit int) ([]models.Meal, error) {
	if limit <= 0 {
		limit = 3
	}
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

// ListMealsByDateRange returns meals in [start of from, end of to]
// ascending, the order trend views want. Inputs are day-granular.
func (s *MealService) ListMealsByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.Meal, error) {
	start := dayStartLocal(from)
	end := dayStartLocal(to).Add(24 * time.Hour)

	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(ctx context.Context, userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// UpdateMeal replaces name, category and items, recomputing totals from
// the edited sequence. Client-supplied totals are ignored.
func (s *MealService) UpdateMeal(ctx context.Context, userID, mealID uint, mealName, category string, items []models.FoodItem) (*models.Meal, error) {
	var missing []string
	if strings.TrimSpace(mealName) == "" {
		missing = append(missing, "meal_name")
	}
	if len(items) == 0 {
		missing = append(missing, "food_items")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	cal, prot, carbs, fat := ComputeTotals(items)
	meal.MealName = mealName
	meal.MealCategory = normalizeCategory(category)
	meal.FoodItems = items
	meal.TotalCalories = cal
	meal.TotalProtein = prot
	meal.TotalCarbs = carbs
	meal.TotalFat = fat

	if err := s.db.WithContext(ctx).Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal removes the record outright. Deleting an id that does not
// exist (or was already deleted) is a no-op success.
func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uint) error {
	return s.db.WithContext(ctx).
		Unscoped().
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{}).Error
}

// DaySummary aggregates one day's meals for the dashboard.
type DaySummary struct {
	Date          string             `json:"date"`
	TotalCalories float64            `json:"total_calories"`
	TotalProtein  float64            `json:"total_protein"`
	TotalCarbs    float64            `json:"total_carbs"`
	TotalFat      float64            `json:"total_fat"`
	MealCount     int                `json:"meal_count"`
	ByCategory    map[string]float64 `json:"calories_by_category"`
}

// DailySummary groups the range's meals per day, ascending. Days without
// meals are omitted.
func (s *MealService) DailySummary(ctx context.Context, userID uint, from, to time.Time) ([]DaySummary, error) {
	meals, err := s.ListMealsByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*DaySummary)
	for _, m := range meals {
		day := dayStartLocal(m.Date).Format("2006-01-02")
		sum, ok := byDay[day]
		if !ok {
			sum = &DaySummary{Date: day, ByCategory: make(map[string]float64)}
			byDay[day] = sum
		}
		sum.TotalCalories += m.TotalCalories
		sum.TotalProtein += m.TotalProtein
		sum.TotalCarbs += m.TotalCarbs
		sum.TotalFat += m.TotalFat
		sum.MealCount++
		sum.ByCategory[m.MealCategory] += m.TotalCalories
	}

	out := make([]DaySummary, 0, len(byDay))
	for _, sum := range byDay {
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func dayStartLocal(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}
