package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Set is one logged unit of an exercise inside a workout. UUID is the
// stable identity used by clients across edits; ID is storage-assigned.
// Position preserves insertion order, which is also display order.
type Set struct {
	ID          string   `gorm:"type:text;primaryKey" json:"id"`
	UUID        string   `gorm:"index;not null" json:"uuid"`
	WorkoutID   string   `gorm:"index;not null" json:"-"`
	ExerciseID  string   `gorm:"not null" json:"-"`
	Exercise    Exercise `gorm:"foreignKey:ExerciseID" json:"exercise"`
	Weight      float64  `json:"weight"`
	Repetitions int      `json:"repetitions"`
	Completed   bool     `json:"completed"`
	Position    int      `gorm:"not null" json:"-"`
}

func (s *Set) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.UUID == "" {
		s.UUID = uuid.New().String()
	}
	return
}
