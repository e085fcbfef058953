package request_models

import (
	"encoding/json"
	"time"
)

type CreateFoodEntryRequest struct {
	Timestamp       *time.Time      `json:"timestamp"`
	MealType        string          `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	Description     string          `json:"description" binding:"required"`
	ImageURL        string          `json:"imageUrl"`
	VoiceTranscript string          `json:"voiceTranscript"`
	AIAnalysis      json.RawMessage `json:"aiAnalysis"`
	Calories        *int            `json:"calories" binding:"omitempty,min=0"`
	Nutrients       json.RawMessage `json:"nutrients"`
	Mood            *int            `json:"mood" binding:"omitempty,min=1,max=10"`
	EnergyLevel     *int            `json:"energyLevel" binding:"omitempty,min=1,max=10"`
	Digestion       *int            `json:"digestion" binding:"omitempty,min=1,max=10"`
	Notes           string          `json:"notes"`
}

type CreateFoodReactionRequest struct {
	FoodEntryID  uint       `json:"foodEntryId" binding:"required"`
	ReactionType string     `json:"reactionType" binding:"required"`
	Severity     string     `json:"severity" binding:"required,oneof=mild moderate severe"`
	OnsetMinutes *int       `json:"onsetMinutes" binding:"omitempty,min=0"`
	Notes        string     `json:"notes"`
	Timestamp    *time.Time `json:"timestamp"`
}

type AnalyzeFoodImageRequest struct {
	Base64Image string `json:"base64Image"`
}

type AnalyzeFoodTextRequest struct {
	Description string `json:"description"`
}
