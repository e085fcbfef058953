package request_models

import "time"

type CreateMedicalDocumentRequest struct {
	DocumentType  string     `json:"documentType" binding:"required"`
	Title         string     `json:"title" binding:"required,max=255"`
	Description   string     `json:"description"`
	FileURL       string     `json:"fileUrl" binding:"required"`
	FileSize      *int64     `json:"fileSize" binding:"omitempty,min=0"`
	MimeType      string     `json:"mimeType"`
	EncryptionKey string     `json:"encryptionKey"`
	DocumentDate  *time.Time `json:"documentDate"`
	DoctorName    string     `json:"doctorName"`
	FacilityName  string     `json:"facilityName"`
	Tags          []string   `json:"tags"`
}

type ShareDocumentRequest struct {
	SharedWithUserID uint       `json:"sharedWithUserId" binding:"required"`
	AccessLevel      string     `json:"accessLevel" binding:"required,oneof=view download full"`
	ExpiresAt        *time.Time `json:"expiresAt"`
}
