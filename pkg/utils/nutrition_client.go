package utils

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"healthtrack/internal/models/response_models"
)

// NutritionAnalyzerInterface turns a meal photo or description into a
// nutrition estimate using an external language model.
type NutritionAnalyzerInterface interface {
	AnalyzeImage(ctx context.Context, base64Image string) (*response_models.NutritionAnalysis, error)
	AnalyzeText(ctx context.Context, description string) (*response_models.NutritionAnalysis, error)
	Close() error
}

const nutritionReplyShape = `{
  "foodItems": [
    {"name": "string", "quantity": "string", "calories": 0, "protein": 0, "carbs": 0, "fat": 0, "fiber": 0}
  ],
  "totalCalories": 0,
  "totalProtein": 0,
  "totalCarbs": 0,
  "totalFat": 0,
  "summary": "string",
  "confidence": 0.0
}`

var imageSystemPrompt = `You are a nutrition expert. Identify every food item visible in the image,
estimate its portion size and nutritional content. Macronutrients are grams.
Confidence is between 0 and 1. Respond with JSON only, in exactly this shape:
` + nutritionReplyShape

var textSystemPrompt = `You are a nutrition expert. From the user's description of a meal, list each
food item with an estimated portion size and nutritional content. Macronutrients are grams.
Confidence is between 0 and 1. Respond with JSON only, in exactly this shape:
` + nutritionReplyShape

const imageUserPrompt = "Analyze this meal and estimate its nutrition."

// decodeNutritionAnalysis reads a model reply into the fixed analysis shape.
// Missing or extra keys are tolerated.
func decodeNutritionAnalysis(content string) (*response_models.NutritionAnalysis, error) {
	var analysis response_models.NutritionAnalysis
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &analysis); err != nil {
		return nil, fmt.Errorf("parse model reply: %w", err)
	}
	return &analysis, nil
}

// splitImagePayload accepts raw base64 or a data URL and returns the MIME
// type (jpeg when unknown) and the base64 payload.
func splitImagePayload(image string) (mimeType, payload string) {
	image = strings.TrimSpace(image)
	mimeType = "image/jpeg"
	if strings.HasPrefix(image, "data:") {
		header, data, found := strings.Cut(image, ",")
		if found {
			header = strings.TrimPrefix(header, "data:")
			header = strings.TrimSuffix(header, ";base64")
			if header != "" {
				mimeType = header
			}
			return mimeType, data
		}
	}
	return mimeType, image
}

// DecodeImage validates and decodes an image payload.
func DecodeImage(image string) (mimeType string, data []byte, err error) {
	mimeType, payload := splitImagePayload(image)
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrInvalidImage
	}
	return mimeType, data, nil
}
