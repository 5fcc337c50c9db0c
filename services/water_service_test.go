package services

import (
	"context"
	"testing"
	"time"
)

func TestWaterIntakeReadModifyWrite(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewWaterService(db)
	ctx := context.Background()
	today := time.Now()

	// Nothing logged yet.
	got, err := svc.GetWaterIntake(ctx, 1, today)
	if err != nil {
		t.Fatalf("get empty: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 before any log, got %v", got)
	}

	// First write inserts.
	if _, err := svc.SetWaterIntake(ctx, 1, today, 500); err != nil {
		t.Fatalf("insert: %v", err)
	}
	// Second write updates the same row instead of inserting another.
	if _, err := svc.SetWaterIntake(ctx, 1, today, 750); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err = svc.GetWaterIntake(ctx, 1, today)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != 750 {
		t.Fatalf("expected 750 after update, got %v", got)
	}

	var count int64
	if err := db.Table("water_intake").Where("user_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row per (user, day), got %d", count)
	}
}

func TestWaterIntakeIsolatedPerDayAndUser(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewWaterService(db)
	ctx := context.Background()

	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)

	if _, err := svc.SetWaterIntake(ctx, 1, yesterday, 1000); err != nil {
		t.Fatalf("set yesterday: %v", err)
	}
	if _, err := svc.SetWaterIntake(ctx, 1, today, 250); err != nil {
		t.Fatalf("set today: %v", err)
	}
	if _, err := svc.SetWaterIntake(ctx, 2, today, 999); err != nil {
		t.Fatalf("set other user: %v", err)
	}

	if got, _ := svc.GetWaterIntake(ctx, 1, yesterday); got != 1000 {
		t.Fatalf("yesterday's total clobbered: %v", got)
	}
	if got, _ := svc.GetWaterIntake(ctx, 1, today); got != 250 {
		t.Fatalf("today's total wrong: %v", got)
	}
	if got, _ := svc.GetWaterIntake(ctx, 2, today); got != 999 {
		t.Fatalf("other user's total wrong: %v", got)
	}
}

func TestWaterIntakeRejectsNegative(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewWaterService(db)

	if _, err := svc.SetWaterIntake(context.Background(), 1, time.Now(), -10); err == nil {
		t.Fatal("negative water_ml must be rejected")
	}
}
