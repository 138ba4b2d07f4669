package models

import (
	"time"
)

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Description string     `gorm:"type:varchar(1000);not null" json:"description"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	DueDate     *time.Time `json:"due_date"`
	ListID      uint64     `gorm:"not null" json:"list_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	List List `gorm:"foreignKey:ListID" json:"list,omitempty"`
}
