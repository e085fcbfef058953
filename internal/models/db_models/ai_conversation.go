package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type AIConversation struct {
	BaseModel
	UserID            uint           `gorm:"index;not null" json:"userId"`
	User              *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	SessionID         string         `gorm:"type:varchar(64);index;not null" json:"sessionId"`
	Messages          datatypes.JSON `gorm:"type:jsonb" json:"messages"`
	Symptoms          pq.StringArray `gorm:"type:text[]" json:"symptoms"`
	Recommendations   datatypes.JSON `gorm:"type:jsonb" json:"recommendations"`
	EscalatedToDoctor bool           `gorm:"not null;default:false" json:"escalatedToDoctor"`
}
