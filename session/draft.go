package session

import (
	"sync"
	"time"
	"workout-server/entities"

	"github.com/google/uuid"
)

// Draft is a client's in-memory copy of the workout being edited. All
// set edits happen here; persistence is a whole-workout update pushed
// later by the autosave loop. Sets are addressed by their stable uuid.
type Draft struct {
	mu      sync.RWMutex
	workout entities.Workout
	history []entities.Workout // prior workouts, most recently fetched first
	version uint64
}

func NewDraft(workout entities.Workout, history []entities.Workout) *Draft {
	return &Draft{
		workout: workout,
		history: history,
	}
}

// Workout returns a snapshot of the draft with a copied set list.
func (d *Draft) Workout() entities.Workout {
	d.mu.RLock()
	defer d.mu.RUnlock()

	snapshot := d.workout
	snapshot.Sets = make([]entities.Set, len(d.workout.Sets))
	copy(snapshot.Sets, d.workout.Sets)
	return snapshot
}

// Version increments on every mutation; the autosave loop uses it to
// tell whether a pending save still reflects the latest state.
func (d *Draft) Version() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

// PreviousSet resolves the default weight/repetitions for a new set of
// the given exercise: the last set of that exercise in the current
// workout, else the first match in the most recent prior workout that
// has one, else zero values.
func (d *Draft) PreviousSet(exerciseID string) (weight float64, repetitions int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.previousSetLocked(exerciseID)
}

func (d *Draft) previousSetLocked(exerciseID string) (float64, int) {
	for i := len(d.workout.Sets) - 1; i >= 0; i-- {
		if d.workout.Sets[i].ExerciseID == exerciseID {
			return d.workout.Sets[i].Weight, d.workout.Sets[i].Repetitions
		}
	}
	for _, prev := range d.history {
		for _, set := range prev.Sets {
			if set.ExerciseID == exerciseID {
				return set.Weight, set.Repetitions
			}
		}
	}
	return 0, 0
}

// AddSet appends an uncompleted set for the exercise, defaulting weight
// and repetitions from the previous-set policy. Returns the new set.
func (d *Draft) AddSet(exercise entities.Exercise) entities.Set {
	d.mu.Lock()
	defer d.mu.Unlock()

	weight, repetitions := d.previousSetLocked(exercise.ID)
	set := entities.Set{
		UUID:        uuid.New().String(),
		ExerciseID:  exercise.ID,
		Exercise:    exercise,
		Weight:      weight,
		Repetitions: repetitions,
		Completed:   false,
	}
	d.workout.Sets = append(d.workout.Sets, set)
	d.version++
	return set
}

// UpdateSet replaces the editable fields of the set with the given
// stable uuid. Reports whether a set was found.
func (d *Draft) UpdateSet(setUUID string, weight float64, repetitions int, completed bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.workout.Sets {
		if d.workout.Sets[i].UUID == setUUID {
			d.workout.Sets[i].Weight = weight
			d.workout.Sets[i].Repetitions = repetitions
			d.workout.Sets[i].Completed = completed
			d.version++
			return true
		}
	}
	return false
}

// RemoveSet removes the set with the given stable uuid.
func (d *Draft) RemoveSet(setUUID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.workout.Sets {
		if d.workout.Sets[i].UUID == setUUID {
			d.workout.Sets = append(d.workout.Sets[:i], d.workout.Sets[i+1:]...)
			d.version++
			return true
		}
	}
	return false
}

// ShouldDiscard reports whether the session should delete the workout on
// teardown: still empty and started less than a minute ago. Older empty
// workouts are left to the server-side sweeper.
func (d *Draft) ShouldDiscard(now time.Time) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.workout.Sets) == 0 && now.Sub(d.workout.Date) < time.Minute
}
