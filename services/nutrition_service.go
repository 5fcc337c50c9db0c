package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/thats-dominik/athlena/models"
)

// System instruction for the image path. The model must answer with a bare
// JSON array of items, raw unitless numbers, and a descriptive food name.
const visionSystemPrompt = `You are a nutrition analysis assistant.
You MUST ONLY return a valid JSON array with NO units like "g" or "kcal".
Numbers should always be raw values (e.g., 35, not "35g").
If you detect a meal, respond with strictly formatted JSON:

[
  {
    "foodName": "Descriptive name of the food",
    "calories": 0,
    "protein": 0,
    "carbs": 0,
    "fat": 0
  }
]

The "foodName" should always be a short, clear, and commonly used description of the meal (e.g., "Spaghetti Bolognese", "Chicken Salad", "Avocado Toast"). Do not use generic terms like "meal" or "food". Always use proper capitalization.

No additional text, no markdown, no explanations.`

const visionUserPrompt = "Analyze this meal image and return ONLY a JSON object with macronutrients (calories, protein, carbs, and fat)."

const textPromptTemplate = `
Analyze the following meal and extract nutritional values.
ALWAYS return a valid JSON array. If the meal consists of a single item, wrap it inside an array.
The JSON format must be:

[
  {
    "foodName": "Generic Meal",
    "calories": 0,
    "protein": 0,
    "carbs": 0,
    "fat": 0
  }
]

Meal description: %s
`

// NutritionService turns free-form meal input into a FoodItem list via the
// completion API. It never persists anything.
type NutritionService struct {
	ai *OpenAIService
}

func NewNutritionService(ai *OpenAIService) *NutritionService {
	return &NutritionService{ai: ai}
}

// StripCodeFences removes the markdown fences some models wrap around
// their JSON despite being told not to. Kept as a named step so the
// heuristic stays independently testable.
func StripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ParseFoodItems coerces raw completion text into a non-empty item list.
// With wrapSingleObject set, a bare JSON object is accepted and wrapped
// into a one-element array before the emptiness check (text path only).
// Numeric fields absent from the JSON stay 0; nothing is clamped or
// unit-converted.
func ParseFoodItems(raw string, wrapSingleObject bool) ([]models.FoodItem, error) {
	text := StripCodeFences(raw)

	var items []models.FoodItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		if !wrapSingleObject {
			return nil, &InvalidAIResponseError{Reason: "expected a JSON array", Raw: raw}
		}
		var single models.FoodItem
		if err := json.Unmarshal([]byte(text), &single); err != nil {
			return nil, &InvalidAIResponseError{Reason: "not valid JSON", Raw: raw}
		}
		items = []models.FoodItem{single}
	}

	if len(items) == 0 {
		return nil, &InvalidAIResponseError{Reason: "empty item list", Raw: raw}
	}
	return items, nil
}

// AnalyzeText extracts food items from a free-text meal description.
func (s *NutritionService) AnalyzeText(ctx context.Context, description string) ([]models.FoodItem, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrMissingInput
	}

	raw, err := s.ai.Complete(ctx, ModelText, []ChatMessage{
		{Role: "system", Content: "You are a nutrition analysis assistant."},
		{Role: "user", Content: fmt.Sprintf(textPromptTemplate, description)},
	}, 0.3, 250)
	if err != nil {
		return nil, err
	}

	return ParseFoodItems(raw, true)
}

// AnalyzeImage extracts food items from a meal photo supplied as a data
// URI. The vision model is asked for an array outright, so a bare object
// is rejected here rather than wrapped.
func (s *NutritionService) AnalyzeImage(ctx context.Context, imageDataURI string) ([]models.FoodItem, error) {
	if strings.TrimSpace(imageDataURI) == "" {
		return nil, ErrMissingInput
	}

	raw, err := s.ai.Complete(ctx, ModelVision, []ChatMessage{
		{Role: "system", Content: visionSystemPrompt},
		{Role: "user", Content: []ContentPart{
			{Type: "text", Text: visionUserPrompt},
			{Type: "image_url", ImageURL: &ImageURL{URL: imageDataURI}},
		}},
	}, 0.3, 300)
	if err != nil {
		return nil, err
	}

	return ParseFoodItems(raw, false)
}
