package services

import (
	"context"
	"errors"

	"github.com/thats-dominik/athlena/models"

	"gorm.io/gorm"
)

// UserInfoInput carries the upsertable users_info fields. Zero-valued
// fields are written as-is: the row is small and the client always sends
// the full form.
type UserInfoInput struct {
	FullName      string  `json:"full_name"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
	StepGoal      int     `json:"step_goal"`
	GoalType      string  `json:"goal_type"`
	DietType      string  `json:"diet_type"`
	GoalCalories  float64 `json:"goal_calories"`
	GoalProtein   float64 `json:"goal_protein"`
	GoalCarbs     float64 `json:"goal_carbs"`
	GoalFat       float64 `json:"goal_fat"`
}

type UserInfoService struct {
	db *gorm.DB
}

func NewUserInfoService(db *gorm.DB) *UserInfoService {
	return &UserInfoService{db: db}
}

func (s *UserInfoService) GetByUser(ctx context.Context, userID uint) (*models.UserInfo, error) {
	var info models.UserInfo
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &info, nil
}

// Upsert creates the users_info row at first setup and overwrites it from
// settings afterwards, keyed by user id.
func (s *UserInfoService) Upsert(ctx context.Context, userID uint, in UserInfoInput) (*models.UserInfo, error) {
	var info models.UserInfo
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		info = models.UserInfo{UserID: userID}
		applyUserInfoInput(&info, in)
		if err := s.db.WithContext(ctx).Create(&info).Error; err != nil {
			return nil, err
		}
		return &info, nil
	}
	if err != nil {
		return nil, err
	}

	applyUserInfoInput(&info, in)
	if err := s.db.WithContext(ctx).Save(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveGoals updates only the four calculated targets, leaving biometrics
// untouched. Creates the row when the user skipped setup.
func (s *UserInfoService) SaveGoals(ctx context.Context, userID uint, goals GoalResult) (*models.UserInfo, error) {
	var info models.UserInfo
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		info = models.UserInfo{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	info.GoalCalories = goals.GoalCalories
	info.GoalProtein = goals.GoalProtein
	info.GoalCarbs = goals.GoalCarbs
	info.GoalFat = goals.GoalFat

	if info.ID == 0 {
		if err := s.db.WithContext(ctx).Create(&info).Error; err != nil {
			return nil, err
		}
	} else if err := s.db.WithContext(ctx).Save(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func applyUserInfoInput(info *models.UserInfo, in UserInfoInput) {
	info.FullName = in.FullName
	info.HeightCm = in.HeightCm
	info.WeightKg = in.WeightKg
	info.ActivityLevel = in.ActivityLevel
	info.StepGoal = in.StepGoal
	info.GoalType = in.GoalType
	info.DietType = in.DietType
	info.GoalCalories = in.GoalCalories
	info.GoalProtein = in.GoalProtein
	info.GoalCarbs = in.GoalCarbs
	info.GoalFat = in.GoalFat
}
