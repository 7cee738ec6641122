package repositories

import (
	"sort"
	"sync"
	"time"
	"workout-server/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory implementations of the repository interfaces. They back the
// test suite and mirror the Postgres implementations' behavior: stable
// ordering, set/exercise expansion on reads, not-found reported as
// gorm.ErrRecordNotFound so apperrors.FromGorm maps it the same way.

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]entities.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]entities.User)}
}

func (r *memoryUserRepository) Create(user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now().Format(time.RFC3339)
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) GetByUsername(username string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepository) GetAll() ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]entities.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

type memoryExerciseRepository struct {
	mu        sync.RWMutex
	exercises map[string]entities.Exercise
}

func NewMemoryExerciseRepository() ExerciseRepository {
	return &memoryExerciseRepository{exercises: make(map[string]entities.Exercise)}
}

func (r *memoryExerciseRepository) Create(exercise *entities.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if exercise.ID == "" {
		exercise.ID = uuid.New().String()
	}
	exercise.CreatedAt = time.Now().Format(time.RFC3339)
	exercise.UpdatedAt = exercise.CreatedAt
	r.exercises[exercise.ID] = *exercise
	return nil
}

func (r *memoryExerciseRepository) GetByID(id string) (*entities.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exercise, ok := r.exercises[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &exercise, nil
}

func (r *memoryExerciseRepository) GetAll() ([]entities.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exercises := make([]entities.Exercise, 0, len(r.exercises))
	for _, exercise := range r.exercises {
		exercises = append(exercises, exercise)
	}
	sort.Slice(exercises, func(i, j int) bool { return exercises[i].Name < exercises[j].Name })
	return exercises, nil
}

type memoryWorkoutRepository struct {
	mu        sync.RWMutex
	workouts  map[string]entities.Workout
	exercises ExerciseRepository
}

// NewMemoryWorkoutRepository expands set exercise references against the
// given exercise repository on reads, like Preload does in Postgres.
func NewMemoryWorkoutRepository(exercises ExerciseRepository) WorkoutRepository {
	return &memoryWorkoutRepository{
		workouts:  make(map[string]entities.Workout),
		exercises: exercises,
	}
}

func (r *memoryWorkoutRepository) normalizeSets(sets []entities.Set, workoutID string) []entities.Set {
	normalized := make([]entities.Set, len(sets))
	copy(normalized, sets)
	for i := range normalized {
		if normalized[i].ID == "" {
			normalized[i].ID = uuid.New().String()
		}
		if normalized[i].UUID == "" {
			normalized[i].UUID = uuid.New().String()
		}
		normalized[i].WorkoutID = workoutID
		normalized[i].Position = i
	}
	return normalized
}

func (r *memoryWorkoutRepository) expand(workout entities.Workout) entities.Workout {
	sets := make([]entities.Set, len(workout.Sets))
	copy(sets, workout.Sets)
	sort.Slice(sets, func(i, j int) bool { return sets[i].Position < sets[j].Position })
	for i := range sets {
		if exercise, err := r.exercises.GetByID(sets[i].ExerciseID); err == nil {
			sets[i].Exercise = *exercise
		}
	}
	workout.Sets = sets
	return workout
}

func (r *memoryWorkoutRepository) Create(workout *entities.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if workout.ID == "" {
		workout.ID = uuid.New().String()
	}
	if workout.Date.IsZero() {
		workout.Date = time.Now()
	}
	workout.Sets = r.normalizeSets(workout.Sets, workout.ID)
	r.workouts[workout.ID] = *workout
	return nil
}

func (r *memoryWorkoutRepository) GetByID(id string) (*entities.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	workout, ok := r.workouts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	expanded := r.expand(workout)
	return &expanded, nil
}

func (r *memoryWorkoutRepository) GetAllByUserID(userID string) ([]entities.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var workouts []entities.Workout
	for _, workout := range r.workouts {
		if workout.Template || workout.UserID == nil || *workout.UserID != userID {
			continue
		}
		workouts = append(workouts, r.expand(workout))
	}
	sort.Slice(workouts, func(i, j int) bool { return workouts[i].Date.After(workouts[j].Date) })
	return workouts, nil
}

func (r *memoryWorkoutRepository) GetTemplates() ([]entities.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var templates []entities.Workout
	for _, workout := range r.workouts {
		if workout.Template {
			templates = append(templates, r.expand(workout))
		}
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].Date.After(templates[j].Date) })
	return templates, nil
}

func (r *memoryWorkoutRepository) ReplaceSets(workoutID string, sets []entities.Set) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	workout, ok := r.workouts[workoutID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	workout.Sets = r.normalizeSets(sets, workoutID)
	r.workouts[workoutID] = workout
	return nil
}

func (r *memoryWorkoutRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workouts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.workouts, id)
	return nil
}

func (r *memoryWorkoutRepository) GetEmptyOlderThan(cutoff time.Time) ([]entities.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var workouts []entities.Workout
	for _, workout := range r.workouts {
		if !workout.Template && len(workout.Sets) == 0 && workout.Date.Before(cutoff) {
			workouts = append(workouts, workout)
		}
	}
	return workouts, nil
}
