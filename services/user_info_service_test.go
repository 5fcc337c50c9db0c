package services

import (
	"context"
	"errors"
	"testing"
)

func TestUserInfoUpsertInsertsThenUpdates(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewUserInfoService(db)
	ctx := context.Background()

	if _, err := svc.GetByUser(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before setup, got %v", err)
	}

	first := UserInfoInput{
		FullName:      "Dominik",
		HeightCm:      180,
		WeightKg:      80,
		ActivityLevel: "medium",
		StepGoal:      10000,
		GoalType:      "maintain",
		DietType:      "normal",
	}
	if _, err := svc.Upsert(ctx, 1, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := first
	second.WeightKg = 78
	second.GoalType = "lose"
	if _, err := svc.Upsert(ctx, 1, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	info, err := svc.GetByUser(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if info.WeightKg != 78 || info.GoalType != "lose" {
		t.Fatalf("update not applied: %+v", info)
	}

	var count int64
	if err := db.Table("users_info").Where("user_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("upsert must keep one row per user, got %d", count)
	}
}

func TestSaveGoalsPreservesBiometrics(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewUserInfoService(db)
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, 1, UserInfoInput{FullName: "Dominik", HeightCm: 180, WeightKg: 80, ActivityLevel: "high", GoalType: "bulk", DietType: "normal"}); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if _, err := svc.SaveGoals(ctx, 1, GoalResult{GoalCalories: 2800, GoalProtein: 180, GoalCarbs: 300, GoalFat: 90}); err != nil {
		t.Fatalf("save goals: %v", err)
	}

	info, err := svc.GetByUser(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if info.GoalCalories != 2800 || info.GoalFat != 90 {
		t.Fatalf("goals not saved: %+v", info)
	}
	if info.HeightCm != 180 || info.ActivityLevel != "high" {
		t.Fatalf("biometrics clobbered: %+v", info)
	}
}

func TestSaveGoalsCreatesRowWhenSetupSkipped(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewUserInfoService(db)

	info, err := svc.SaveGoals(context.Background(), 7, GoalResult{GoalCalories: 2000, GoalProtein: 120, GoalCarbs: 220, GoalFat: 60})
	if err != nil {
		t.Fatalf("save goals without setup: %v", err)
	}
	if info.UserID != 7 || info.GoalCalories != 2000 {
		t.Fatalf("unexpected row: %+v", info)
	}
}
