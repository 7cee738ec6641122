package usecases

import (
	"time"
	"workout-server/apperrors"
	"workout-server/entities"
	"workout-server/repositories"

	"github.com/google/uuid"
)

type WorkoutUseCase struct {
	WorkoutRepo  repositories.WorkoutRepository
	ExerciseRepo repositories.ExerciseRepository
}

func NewWorkoutUseCase(workoutRepo repositories.WorkoutRepository, exerciseRepo repositories.ExerciseRepository) *WorkoutUseCase {
	return &WorkoutUseCase{
		WorkoutRepo:  workoutRepo,
		ExerciseRepo: exerciseRepo,
	}
}

// SetInput is one set in a whole-workout update. Sets are matched by the
// stable uuid, never by storage id or slice position.
type SetInput struct {
	UUID        string
	ExerciseID  string
	Weight      float64
	Repetitions int
	Completed   bool
}

// ownerMatches is the single owner-comparison site: canonical string-id
// equality. A nil owner (template/public workout) matches nobody.
func ownerMatches(workout *entities.Workout, userID string) bool {
	return workout.Owned(userID)
}

// CreateEmpty starts a new workout session for the user.
func (uc *WorkoutUseCase) CreateEmpty(userID string) (*entities.Workout, error) {
	if userID == "" {
		return nil, apperrors.Authorization("user is required")
	}
	workout := &entities.Workout{
		Date:     time.Now(),
		Template: false,
		UserID:   &userID,
		Sets:     []entities.Set{},
	}
	if err := uc.WorkoutRepo.Create(workout); err != nil {
		return nil, apperrors.FromGorm(err, "workout")
	}
	return workout, nil
}

// CreateFromTemplate clones the template's sets into a new workout owned
// by the user. Every cloned set gets a fresh stable uuid and starts
// uncompleted; weight, repetitions and exercise reference carry over.
func (uc *WorkoutUseCase) CreateFromTemplate(userID, templateID string) (*entities.Workout, error) {
	if userID == "" {
		return nil, apperrors.Authorization("user is required")
	}
	template, err := uc.WorkoutRepo.GetByID(templateID)
	if err != nil {
		return nil, apperrors.FromGorm(err, "template")
	}

	sets := make([]entities.Set, 0, len(template.Sets))
	for _, src := range template.Sets {
		sets = append(sets, entities.Set{
			UUID:        uuid.New().String(),
			ExerciseID:  src.ExerciseID,
			Weight:      src.Weight,
			Repetitions: src.Repetitions,
			Completed:   false,
		})
	}

	workout := &entities.Workout{
		Date:     time.Now(),
		Template: false,
		UserID:   &userID,
		Sets:     sets,
	}
	if err := uc.WorkoutRepo.Create(workout); err != nil {
		return nil, apperrors.FromGorm(err, "workout")
	}
	return workout, nil
}

// CreateTemplate stores a set list as a reusable template. Templates
// carry no owner and only exist as cloning sources.
func (uc *WorkoutUseCase) CreateTemplate(userID string, inputs []SetInput) (*entities.Workout, error) {
	if userID == "" {
		return nil, apperrors.Authorization("user is required")
	}
	if len(inputs) == 0 {
		return nil, apperrors.InvalidParameters("a template needs at least one set")
	}
	sets, err := uc.buildSets(inputs)
	if err != nil {
		return nil, err
	}

	template := &entities.Workout{
		Date:     time.Now(),
		Template: true,
		Sets:     sets,
	}
	if err := uc.WorkoutRepo.Create(template); err != nil {
		return nil, apperrors.FromGorm(err, "template")
	}
	return template, nil
}

// GetTemplates returns every template, newest first, with each set's
// exercise reference expanded.
func (uc *WorkoutUseCase) GetTemplates() ([]entities.Workout, error) {
	templates, err := uc.WorkoutRepo.GetTemplates()
	if err != nil {
		return nil, apperrors.FromGorm(err, "templates")
	}
	return templates, nil
}

// GetAll returns the user's non-template workouts, newest first, with
// each set's exercise reference expanded.
func (uc *WorkoutUseCase) GetAll(userID string) ([]entities.Workout, error) {
	workouts, err := uc.WorkoutRepo.GetAllByUserID(userID)
	if err != nil {
		return nil, apperrors.FromGorm(err, "workouts")
	}
	return workouts, nil
}

// GetOne returns a single workout. Workouts with a nil owner are public
// templates and readable by anyone; everything else is owner-only.
func (uc *WorkoutUseCase) GetOne(id, requesterID string) (*entities.Workout, error) {
	workout, err := uc.WorkoutRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.FromGorm(err, "workout")
	}
	if workout.UserID == nil || ownerMatches(workout, requesterID) {
		return workout, nil
	}
	return nil, apperrors.Authorization("workout belongs to another user")
}

// UpdateSets replaces the workout's set list wholesale with the submitted
// list. The client always sends the complete current state; this is an
// overwrite, never a merge. Date, template flag and owner are untouched.
func (uc *WorkoutUseCase) UpdateSets(id, requesterID string, inputs []SetInput) error {
	workout, err := uc.WorkoutRepo.GetByID(id)
	if err != nil {
		return apperrors.FromGorm(err, "workout")
	}
	if !ownerMatches(workout, requesterID) {
		return apperrors.Authorization("workout belongs to another user")
	}

	sets, err := uc.buildSets(inputs)
	if err != nil {
		return err
	}
	return apperrors.FromGorm(uc.WorkoutRepo.ReplaceSets(id, sets), "workout")
}

// buildSets validates submitted sets and turns them into entities. Every
// exercise reference must resolve; sets without a uuid get a fresh one.
func (uc *WorkoutUseCase) buildSets(inputs []SetInput) ([]entities.Set, error) {
	sets := make([]entities.Set, 0, len(inputs))
	for _, in := range inputs {
		if in.ExerciseID == "" {
			return nil, apperrors.InvalidParameters("set is missing an exercise reference")
		}
		if in.Weight < 0 || in.Repetitions < 0 {
			return nil, apperrors.InvalidParameters("weight and repetitions must be non-negative")
		}
		if _, err := uc.ExerciseRepo.GetByID(in.ExerciseID); err != nil {
			return nil, apperrors.FromGorm(err, "exercise")
		}
		setUUID := in.UUID
		if setUUID == "" {
			setUUID = uuid.New().String()
		}
		sets = append(sets, entities.Set{
			UUID:        setUUID,
			ExerciseID:  in.ExerciseID,
			Weight:      in.Weight,
			Repetitions: in.Repetitions,
			Completed:   in.Completed,
		})
	}
	return sets, nil
}

// Delete removes a workout. Only the owner may delete; templates (nil
// owner) are not deletable through this path.
func (uc *WorkoutUseCase) Delete(id, requesterID string) error {
	workout, err := uc.WorkoutRepo.GetByID(id)
	if err != nil {
		return apperrors.FromGorm(err, "workout")
	}
	if !ownerMatches(workout, requesterID) {
		return apperrors.Authorization("workout belongs to another user")
	}
	return apperrors.FromGorm(uc.WorkoutRepo.Delete(id), "workout")
}
