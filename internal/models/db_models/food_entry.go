package db_models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FoodEntry struct {
	BaseModel
	UserID          uint           `gorm:"index;not null" json:"userId"`
	User            *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp       time.Time      `gorm:"index;not null" json:"timestamp"`
	MealType        string         `gorm:"type:varchar(16);not null" json:"mealType"`
	Description     string         `gorm:"type:text;not null" json:"description"`
	ImageURL        string         `json:"imageUrl"`
	VoiceTranscript string         `gorm:"type:text" json:"voiceTranscript"`
	AIAnalysis      datatypes.JSON `gorm:"type:jsonb" json:"aiAnalysis"`
	Calories        *int           `json:"calories"`
	Nutrients       datatypes.JSON `gorm:"type:jsonb" json:"nutrients"`
	Mood            *int           `json:"mood"`
	EnergyLevel     *int           `json:"energyLevel"`
	Digestion       *int           `json:"digestion"`
	Notes           string         `gorm:"type:text" json:"notes"`
}

func (f *FoodEntry) BeforeCreate(tx *gorm.DB) error {
	stampNow(&f.Timestamp)
	return nil
}

type ReactionSeverity string

const (
	SeverityMild     ReactionSeverity = "mild"
	SeverityModerate ReactionSeverity = "moderate"
	SeveritySevere   ReactionSeverity = "severe"
)

type FoodReaction struct {
	BaseModel
	UserID       uint             `gorm:"index;not null" json:"userId"`
	User         *User            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	FoodEntryID  uint             `gorm:"index;not null" json:"foodEntryId"`
	FoodEntry    *FoodEntry       `gorm:"foreignKey:FoodEntryID;constraint:OnDelete:CASCADE" json:"-"`
	ReactionType string           `gorm:"not null" json:"reactionType"`
	Severity     ReactionSeverity `gorm:"type:varchar(16);not null" json:"severity"`
	OnsetMinutes *int             `json:"onsetMinutes"`
	Notes        string           `gorm:"type:text" json:"notes"`
	Timestamp    time.Time        `gorm:"not null" json:"timestamp"`
}

func (r *FoodReaction) BeforeCreate(tx *gorm.DB) error {
	stampNow(&r.Timestamp)
	return nil
}
