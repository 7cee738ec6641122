package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workout is a dated collection of sets owned by a user. A nil UserID
// marks a public template: a read-only cloning source.
type Workout struct {
	ID       string    `gorm:"type:text;primaryKey" json:"id"`
	Date     time.Time `gorm:"not null" json:"date"`
	Template bool      `gorm:"not null;default:false" json:"template"`
	UserID   *string   `gorm:"index" json:"user"`
	Sets     []Set     `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE" json:"sets"`
}

func (w *Workout) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.Date.IsZero() {
		w.Date = time.Now()
	}
	return
}

// Owned reports whether the workout belongs to the given user id.
// Templates (nil owner) belong to nobody.
func (w *Workout) Owned(userID string) bool {
	return w.UserID != nil && *w.UserID == userID
}
