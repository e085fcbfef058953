package db_models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HRVData is one heart rate variability sample; rows are append-only.
type HRVData struct {
	BaseModel
	UserID      uint           `gorm:"index;not null" json:"userId"`
	User        *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp   time.Time      `gorm:"index;not null" json:"timestamp"`
	RMSSD       *float64       `gorm:"column:rmssd" json:"rmssd"`
	PNN50       *float64       `gorm:"column:pnn50" json:"pnn50"`
	HeartRate   *int           `json:"heartRate"`
	StressLevel *int           `json:"stressLevel"`
	Source      string         `json:"source"`
	RawData     datatypes.JSON `gorm:"type:jsonb" json:"rawData"`
}

func (HRVData) TableName() string {
	return "hrv_data"
}

func (h *HRVData) BeforeCreate(tx *gorm.DB) error {
	stampNow(&h.Timestamp)
	return nil
}
