package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exercise is a named entry in the exercise library. Sets reference
// exercises, they never own them.
type Exercise struct {
	ID          string  `gorm:"type:text;primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"not null" json:"description"`
	Category    string  `json:"category,omitempty"`
	UserID      *string `gorm:"index" json:"user,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = time.Now().Format(time.RFC3339)
	e.UpdatedAt = e.CreatedAt
	return
}
