package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thats-dominik/athlena/models"

	"gorm.io/gorm"
)

// WaterService keeps one running water total per user per day.
type WaterService struct {
	db *gorm.DB
}

func NewWaterService(db *gorm.DB) *WaterService {
	return &WaterService{db: db}
}

// GetWaterIntake returns the day's total, 0 when nothing was logged yet.
func (s *WaterService) GetWaterIntake(ctx context.Context, userID uint, date time.Time) (float64, error) {
	day := dayStartLocal(date)

	var intake models.WaterIntake
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		First(&intake).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return intake.WaterML, nil
}

// SetWaterIntake overwrites the day's total: fetch the existing row for
// (user, day), update it or insert a new one. Last write wins.
func (s *WaterService) SetWaterIntake(ctx context.Context, userID uint, date time.Time, waterML float64) (*models.WaterIntake, error) {
	if waterML < 0 {
		return nil, fmt.Errorf("water_ml must not be negative")
	}
	day := dayStartLocal(date)

	var intake models.WaterIntake
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		First(&intake).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		intake = models.WaterIntake{UserID: userID, Date: day, WaterML: waterML}
		if err := s.db.WithContext(ctx).Create(&intake).Error; err != nil {
			return nil, err
		}
		return &intake, nil
	}
	if err != nil {
		return nil, err
	}

	intake.WaterML = waterML
	if err := s.db.WithContext(ctx).Save(&intake).Error; err != nil {
		return nil, err
	}
	return &intake, nil
}
