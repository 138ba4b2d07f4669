package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(250);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(250);not null" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Lists []List `gorm:"foreignKey:OwnerID" json:"-"`
}
