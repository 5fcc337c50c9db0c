package services

import (
	"context"
	"errors"
	"testing"
)

func validGoalInput() GoalInput {
	return GoalInput{
		Weight:        80,
		Height:        180,
		ActivityLevel: "medium",
		GoalType:      "maintain",
		DietType:      "normal",
	}
}

func TestCalculateGoalsHappyPath(t *testing.T) {
	t.Parallel()

	ts := completionServer(t, `{"goal_calories":2300,"goal_protein":150,"goal_carbs":250,"goal_fat":70}`, nil)
	defer ts.Close()

	svc := NewGoalService(&OpenAIService{APIKey: "test", BaseURL: ts.URL, Client: ts.Client()})
	res, err := svc.CalculateGoals(context.Background(), validGoalInput())
	if err != nil {
		t.Fatalf("calculate goals: %v", err)
	}
	if res.GoalCalories != 2300 || res.GoalProtein != 150 || res.GoalCarbs != 250 || res.GoalFat != 70 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCalculateGoalsMissingFieldsSkipAPICall(t *testing.T) {
	t.Parallel()

	calls := 0
	ts := completionServer(t, "{}", &calls)
	defer ts.Close()

	svc := NewGoalService(&OpenAIService{APIKey: "test", BaseURL: ts.URL, Client: ts.Client()})

	in := validGoalInput()
	in.Weight = 0
	in.DietType = ""
	_, err := svc.CalculateGoals(context.Background(), in)

	var mf *MissingFieldsError
	if !errors.As(err, &mf) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	if len(mf.Fields) != 2 {
		t.Fatalf("expected weight and dietType reported, got %v", mf.Fields)
	}
	if calls != 0 {
		t.Fatalf("validation must precede the API call, got %d calls", calls)
	}
}

func TestCalculateGoalsRejectsMissingKey(t *testing.T) {
	t.Parallel()

	// goal_fat absent entirely.
	ts := completionServer(t, `{"goal_calories":2000,"goal_protein":150,"goal_carbs":200}`, nil)
	defer ts.Close()

	svc := NewGoalService(&OpenAIService{APIKey: "test", BaseURL: ts.URL, Client: ts.Client()})
	_, err := svc.CalculateGoals(context.Background(), validGoalInput())
	var aiErr *InvalidAIResponseError
	if !errors.As(err, &aiErr) {
		t.Fatalf("expected InvalidAIResponseError, got %v", err)
	}
}

func TestCalculateGoalsRejectsZeroTarget(t *testing.T) {
	t.Parallel()

	// A zero goal is indistinguishable from a missing one under the
	// falsy check, so even an intentional goal_fat of 0 is rejected.
	ts := completionServer(t, `{"goal_calories":1800,"goal_protein":140,"goal_carbs":160,"goal_fat":0}`, nil)
	defer ts.Close()

	svc := NewGoalService(&OpenAIService{APIKey: "test", BaseURL: ts.URL, Client: ts.Client()})
	_, err := svc.CalculateGoals(context.Background(), validGoalInput())
	var aiErr *InvalidAIResponseError
	if !errors.As(err, &aiErr) {
		t.Fatalf("expected InvalidAIResponseError for zero target, got %v", err)
	}
}

func TestCalculateGoalsRejectsNonJSONReply(t *testing.T) {
	t.Parallel()

	ts := completionServer(t, "Based on your data, you should eat 2300 kcal.", nil)
	defer ts.Close()

	svc := NewGoalService(&OpenAIService{APIKey: "test", BaseURL: ts.URL, Client: ts.Client()})
	_, err := svc.CalculateGoals(context.Background(), validGoalInput())
	var aiErr *InvalidAIResponseError
	if !errors.As(err, &aiErr) {
		t.Fatalf("expected InvalidAIResponseError, got %v", err)
	}
	if aiErr.Raw == "" {
		t.Fatal("raw reply must be carried for diagnostics")
	}
}
