package db_models

import "github.com/lib/pq"

type UserProfile struct {
	BaseModel
	UserID            uint           `gorm:"uniqueIndex;not null" json:"userId"`
	User              *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Age               *int           `json:"age"`
	Weight            *float64       `json:"weight"`
	Height            *float64       `json:"height"`
	Sex               string         `gorm:"type:varchar(16)" json:"sex"`
	BloodType         string         `gorm:"type:varchar(4)" json:"bloodType"`
	EmergencyContact  string         `json:"emergencyContact"`
	ChronicConditions pq.StringArray `gorm:"type:text[]" json:"chronicConditions"`
	Allergies         pq.StringArray `gorm:"type:text[]" json:"allergies"`
	Medications       pq.StringArray `gorm:"type:text[]" json:"medications"`
	FamilyHistory     string         `gorm:"type:text" json:"familyHistory"`
}

type DoctorProfile struct {
	BaseModel
	UserID            uint     `gorm:"uniqueIndex;not null" json:"userId"`
	User              *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Specialization    string   `gorm:"not null" json:"specialization"`
	LicenseNumber     string   `gorm:"not null" json:"licenseNumber"`
	Bio               string   `gorm:"type:text" json:"bio"`
	YearsOfExperience *int     `json:"yearsOfExperience"`
	ConsultationPrice *float64 `gorm:"type:numeric(10,2)" json:"consultationPrice"`
	IsAvailable       bool     `gorm:"not null" json:"isAvailable"`
}
