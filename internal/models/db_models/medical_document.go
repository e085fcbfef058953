package db_models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type MedicalDocument struct {
	BaseModel
	UserID       uint   `gorm:"index;not null" json:"userId"`
	User         *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	DocumentType string `gorm:"not null" json:"documentType"`
	Title        string `gorm:"not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	FileURL      string `gorm:"not null" json:"fileUrl"`
	FileSize     *int64 `json:"fileSize"`
	MimeType     string `json:"mimeType"`
	// EncryptionKey is stored as given; nothing in this service encrypts or decrypts with it.
	EncryptionKey string         `json:"encryptionKey"`
	DocumentDate  *time.Time     `json:"documentDate"`
	UploadDate    time.Time      `gorm:"not null" json:"uploadDate"`
	DoctorName    string         `json:"doctorName"`
	FacilityName  string         `json:"facilityName"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	IsShared      bool           `gorm:"not null;default:false" json:"isShared"`
}

func (d *MedicalDocument) BeforeCreate(tx *gorm.DB) error {
	stampNow(&d.UploadDate)
	return nil
}

type AccessLevel string

const (
	AccessView     AccessLevel = "view"
	AccessDownload AccessLevel = "download"
	AccessFull     AccessLevel = "full"
)

type DocumentShare struct {
	BaseModel
	DocumentID       uint             `gorm:"index;not null" json:"documentId"`
	Document         *MedicalDocument `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE" json:"-"`
	SharedWithUserID uint             `gorm:"index;not null" json:"sharedWithUserId"`
	SharedWithUser   *User            `gorm:"foreignKey:SharedWithUserID;constraint:OnDelete:CASCADE" json:"-"`
	AccessLevel      AccessLevel      `gorm:"type:varchar(16);not null;default:view" json:"accessLevel"`
	ExpiresAt        *time.Time       `json:"expiresAt"`
}
