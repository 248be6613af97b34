package models

import (
	"time"

	"github.com/google/uuid"
)

// Lightweight lookup masters. State, city and pincode records may be
// auto-created on a lookup miss during import; Bank records are read-only
// like Company.

type StateMaster struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type CityMaster struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type PincodeMaster struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Code      string    `gorm:"not null;uniqueIndex" json:"code"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type BankMaster struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	BankName  string    `gorm:"not null;uniqueIndex" json:"bank_name"`
	SwiftCode string    `json:"swift_code,omitempty"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
