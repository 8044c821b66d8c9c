package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WaitlistEntry is one sign-up from the landing page form.
type WaitlistEntry struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Email     string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string         `gorm:"type:varchar(120)"`
	Role      string         `gorm:"type:varchar(20)"` // individual, organization
	Source    string         `gorm:"type:varchar(50)"`
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (WaitlistEntry) TableName() string {
	return "waitlist_entries"
}
