package services

import (
	"context"
	"encoding/json"
	"fmt"
)

const goalPromptTemplate = `
Based on the following user data:
- Weight: %.1f kg
- Height: %.1f cm
- Activity Level: %s
- Goal Type: %s
- Diet Type: %s

Additional User Info: %s

Calculate the estimated daily:
1. Total Calories (goal_calories)
2. Protein Intake in grams (goal_protein)
3. Carbohydrate Intake in grams (goal_carbs)
4. Fat Intake in grams (goal_fat)

Provide the results **only** in JSON format like this:
{"goal_calories": 2300, "goal_protein": 150, "goal_carbs": 250, "goal_fat": 70}
`

type GoalInput struct {
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	ActivityLevel string  `json:"activityLevel"`
	GoalType      string  `json:"goalType"`
	DietType      string  `json:"dietType"`
	ExtraInfo     string  `json:"extraInfo"`
}

type GoalResult struct {
	GoalCalories float64 `json:"goal_calories"`
	GoalProtein  float64 `json:"goal_protein"`
	GoalCarbs    float64 `json:"goal_carbs"`
	GoalFat      float64 `json:"goal_fat"`
}

// GoalService asks the model for daily macro targets from biometric and
// preference fields. Stateless; one round trip per call.
type GoalService struct {
	ai *OpenAIService
}

func NewGoalService(ai *OpenAIService) *GoalService {
	return &GoalService{ai: ai}
}

// CalculateGoals validates the input, runs a single completion and parses
// the four targets. A zero value for any target is treated the same as a
// missing key: the shipped behavior uses a falsy check, so a legitimate
// zero goal (say goal_fat for a strict zero-fat diet) is also rejected.
func (s *GoalService) CalculateGoals(ctx context.Context, in GoalInput) (*GoalResult, error) {
	var missing []string
	if in.Weight <= 0 {
		missing = append(missing, "weight")
	}
	if in.Height <= 0 {
		missing = append(missing, "height")
	}
	if in.ActivityLevel == "" {
		missing = append(missing, "activityLevel")
	}
	if in.GoalType == "" {
		missing = append(missing, "goalType")
	}
	if in.DietType == "" {
		missing = append(missing, "dietType")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	extra := in.ExtraInfo
	if extra == "" {
		extra = "No extra info provided"
	}
	prompt := fmt.Sprintf(goalPromptTemplate,
		in.Weight, in.Height, in.ActivityLevel, in.GoalType, in.DietType, extra)

	raw, err := s.ai.Complete(ctx, ModelVision, []ChatMessage{
		{Role: "system", Content: prompt},
	}, 0.6, 0)
	if err != nil {
		return nil, err
	}

	var res GoalResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, &InvalidAIResponseError{Reason: "not valid JSON", Raw: raw}
	}
	if res.GoalCalories == 0 || res.GoalProtein == 0 || res.GoalCarbs == 0 || res.GoalFat == 0 {
		return nil, &InvalidAIResponseError{Reason: "missing goal fields", Raw: raw}
	}
	return &res, nil
}
