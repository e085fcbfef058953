package db_models

type UserRole string

const (
	RolePatient UserRole = "patient"
	RoleDoctor  UserRole = "doctor"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	BaseModel
	Email           string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	ProfileImageURL string   `json:"profileImageUrl"`
	Role            UserRole `gorm:"type:varchar(16);not null;default:patient" json:"role"`
	PasswordHash    string   `json:"-"`
}
