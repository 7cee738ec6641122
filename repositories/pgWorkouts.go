package repositories

import (
	"time"
	"workout-server/db"
	"workout-server/entities"

	"gorm.io/gorm"
)

type workoutPgRepository struct {
	db db.Database
}

func NewWorkoutPgRepository(database db.Database) WorkoutRepository {
	return &workoutPgRepository{db: database}
}

func withSets(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Sets", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Preload("Sets.Exercise")
}

func (r *workoutPgRepository) Create(workout *entities.Workout) error {
	for i := range workout.Sets {
		workout.Sets[i].Position = i
	}
	// Workout and its sets are written in one transaction so a failure
	// cannot leave a workout without its cloned sets.
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		return tx.Create(workout).Error
	})
}

func (r *workoutPgRepository) GetByID(id string) (*entities.Workout, error) {
	var workout entities.Workout
	err := withSets(r.db.GetDB()).Where("id = ?", id).First(&workout).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutPgRepository) GetAllByUserID(userID string) ([]entities.Workout, error) {
	var workouts []entities.Workout
	err := withSets(r.db.GetDB()).
		Where("user_id = ? AND template = ?", userID, false).
		Order("date DESC").
		Find(&workouts).Error
	return workouts, err
}

func (r *workoutPgRepository) GetTemplates() ([]entities.Workout, error) {
	var templates []entities.Workout
	err := withSets(r.db.GetDB()).
		Where("template = ?", true).
		Order("date DESC").
		Find(&templates).Error
	return templates, err
}

// ReplaceSets overwrites the workout's set list wholesale. Positions are
// rewritten 0..n-1 in submission order; date/template/user are untouched.
func (r *workoutPgRepository) ReplaceSets(workoutID string, sets []entities.Set) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", workoutID).Delete(&entities.Set{}).Error; err != nil {
			return err
		}
		if len(sets) == 0 {
			return nil
		}
		for i := range sets {
			sets[i].ID = ""
			sets[i].WorkoutID = workoutID
			sets[i].Position = i
			sets[i].Exercise = entities.Exercise{}
		}
		return tx.Create(&sets).Error
	})
}

func (r *workoutPgRepository) Delete(id string) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", id).Delete(&entities.Set{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Workout{}).Error
	})
}

// GetEmptyOlderThan returns non-template workouts with no sets created
// before the cutoff. Used by the abandoned-workout sweeper.
func (r *workoutPgRepository) GetEmptyOlderThan(cutoff time.Time) ([]entities.Workout, error) {
	var workouts []entities.Workout
	err := r.db.GetDB().
		Where("template = ? AND date < ?", false, cutoff).
		Where("NOT EXISTS (SELECT 1 FROM sets WHERE sets.workout_id = workouts.id)").
		Find(&workouts).Error
	return workouts, err
}
