package repositories

import (
	"workout-server/db"
	"workout-server/entities"
)

type exercisePgRepository struct {
	db db.Database
}

func NewExercisePgRepository(database db.Database) ExerciseRepository {
	return &exercisePgRepository{db: database}
}

func (r *exercisePgRepository) Create(exercise *entities.Exercise) error {
	return r.db.GetDB().Create(exercise).Error
}

func (r *exercisePgRepository) GetByID(id string) (*entities.Exercise, error) {
	var exercise entities.Exercise
	err := r.db.GetDB().Where("id = ?", id).First(&exercise).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exercisePgRepository) GetAll() ([]entities.Exercise, error) {
	var exercises []entities.Exercise
	err := r.db.GetDB().Order("name ASC").Find(&exercises).Error
	return exercises, err
}
