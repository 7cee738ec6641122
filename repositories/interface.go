package repositories

import (
	"time"
	"workout-server/entities"
)

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByUsername(username string) (*entities.User, error)
	GetAll() ([]entities.User, error)
}

type ExerciseRepository interface {
	Create(exercise *entities.Exercise) error
	GetByID(id string) (*entities.Exercise, error)
	GetAll() ([]entities.Exercise, error)
}

type WorkoutRepository interface {
	Create(workout *entities.Workout) error
	GetByID(id string) (*entities.Workout, error)
	GetAllByUserID(userID string) ([]entities.Workout, error)
	GetTemplates() ([]entities.Workout, error)
	ReplaceSets(workoutID string, sets []entities.Set) error
	Delete(id string) error
	GetEmptyOlderThan(cutoff time.Time) ([]entities.Workout, error)
}
