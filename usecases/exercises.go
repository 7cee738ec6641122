package usecases

import (
	"workout-server/apperrors"
	"workout-server/entities"
	"workout-server/repositories"
)

type ExerciseUseCase struct {
	ExerciseRepo repositories.ExerciseRepository
}

func NewExerciseUseCase(exerciseRepo repositories.ExerciseRepository) *ExerciseUseCase {
	return &ExerciseUseCase{ExerciseRepo: exerciseRepo}
}

// CreateExercise adds a new exercise to the library.
func (uc *ExerciseUseCase) CreateExercise(exercise *entities.Exercise) error {
	if exercise.Name == "" || exercise.Description == "" {
		return apperrors.InvalidParameters("exercise name and description has to be provided")
	}
	return apperrors.FromGorm(uc.ExerciseRepo.Create(exercise), "exercise")
}

func (uc *ExerciseUseCase) GetExercise(id string) (*entities.Exercise, error) {
	if id == "" {
		return nil, apperrors.InvalidParameters("exercise id is required")
	}
	exercise, err := uc.ExerciseRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.FromGorm(err, "exercise")
	}
	return exercise, nil
}

func (uc *ExerciseUseCase) GetAllExercises() ([]entities.Exercise, error) {
	return uc.ExerciseRepo.GetAll()
}
