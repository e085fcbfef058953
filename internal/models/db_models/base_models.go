package db_models

import "time"

type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// stampNow fills a zero event time with the insertion time.
func stampNow(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// AllModels lists every table for schema migration, parents first.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&UserProfile{},
		&DoctorProfile{},
		&FoodEntry{},
		&FoodReaction{},
		&HRVData{},
		&Appointment{},
		&MedicalDocument{},
		&DocumentShare{},
		&AIConversation{},
	}
}
