package session

import (
	"testing"
	"time"
	"workout-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	benchPress = entities.Exercise{ID: "ex-bench", Name: "Bench Press"}
	deadlift   = entities.Exercise{ID: "ex-dead", Name: "Deadlift"}
)

func TestAddSetDefaultsFromCurrentWorkout(t *testing.T) {
	workout := entities.Workout{
		ID:   "w1",
		Date: time.Now(),
		Sets: []entities.Set{
			{UUID: "s1", ExerciseID: benchPress.ID, Exercise: benchPress, Weight: 60, Repetitions: 8, Completed: true},
		},
	}
	draft := NewDraft(workout, nil)

	added := draft.AddSet(benchPress)

	assert.Equal(t, 60.0, added.Weight, "weight defaults from the last set of the same exercise")
	assert.Equal(t, 8, added.Repetitions)
	assert.False(t, added.Completed, "new sets always start uncompleted")
	assert.NotEmpty(t, added.UUID)
	assert.NotEqual(t, "s1", added.UUID)

	require.Len(t, draft.Workout().Sets, 2)
}

func TestAddSetDefaultsTakeLastMatchingSet(t *testing.T) {
	workout := entities.Workout{
		ID:   "w1",
		Date: time.Now(),
		Sets: []entities.Set{
			{UUID: "s1", ExerciseID: benchPress.ID, Weight: 60, Repetitions: 8},
			{UUID: "s2", ExerciseID: deadlift.ID, Weight: 120, Repetitions: 5},
			{UUID: "s3", ExerciseID: benchPress.ID, Weight: 62.5, Repetitions: 6},
		},
	}
	draft := NewDraft(workout, nil)

	added := draft.AddSet(benchPress)
	assert.Equal(t, 62.5, added.Weight)
	assert.Equal(t, 6, added.Repetitions)
}

func TestAddSetDefaultsFromPriorWorkouts(t *testing.T) {
	history := []entities.Workout{
		{ID: "recent", Sets: []entities.Set{
			{UUID: "h1", ExerciseID: deadlift.ID, Weight: 100, Repetitions: 5},
		}},
		{ID: "older", Sets: []entities.Set{
			{UUID: "h2", ExerciseID: deadlift.ID, Weight: 90, Repetitions: 5},
		}},
	}
	draft := NewDraft(entities.Workout{ID: "w1", Date: time.Now()}, history)

	added := draft.AddSet(deadlift)
	assert.Equal(t, 100.0, added.Weight, "most recently fetched workout wins")
	assert.Equal(t, 5, added.Repetitions)
}

func TestAddSetDefaultsToZero(t *testing.T) {
	draft := NewDraft(entities.Workout{ID: "w1", Date: time.Now()}, nil)

	added := draft.AddSet(benchPress)
	assert.Zero(t, added.Weight)
	assert.Zero(t, added.Repetitions)
}

func TestUpdateSetByStableID(t *testing.T) {
	workout := entities.Workout{
		ID:   "w1",
		Date: time.Now(),
		Sets: []entities.Set{
			{UUID: "s1", ExerciseID: benchPress.ID, Weight: 60, Repetitions: 8},
			{UUID: "s2", ExerciseID: benchPress.ID, Weight: 60, Repetitions: 8},
		},
	}
	draft := NewDraft(workout, nil)

	before := draft.Version()
	require.True(t, draft.UpdateSet("s2", 65, 6, true))
	assert.Greater(t, draft.Version(), before)

	sets := draft.Workout().Sets
	assert.Equal(t, 60.0, sets[0].Weight, "only the addressed set changes")
	assert.Equal(t, 65.0, sets[1].Weight)
	assert.Equal(t, 6, sets[1].Repetitions)
	assert.True(t, sets[1].Completed)

	assert.False(t, draft.UpdateSet("no-such-uuid", 1, 1, false))
}

func TestRemoveSetByStableID(t *testing.T) {
	workout := entities.Workout{
		ID:   "w1",
		Date: time.Now(),
		Sets: []entities.Set{
			{UUID: "s1", ExerciseID: benchPress.ID},
			{UUID: "s2", ExerciseID: deadlift.ID},
			{UUID: "s3", ExerciseID: benchPress.ID},
		},
	}
	draft := NewDraft(workout, nil)

	require.True(t, draft.RemoveSet("s2"))
	sets := draft.Workout().Sets
	require.Len(t, sets, 2)
	assert.Equal(t, "s1", sets[0].UUID)
	assert.Equal(t, "s3", sets[1].UUID, "order of remaining sets is preserved")

	assert.False(t, draft.RemoveSet("s2"))
}

func TestShouldDiscard(t *testing.T) {
	now := time.Now()

	young := NewDraft(entities.Workout{ID: "w1", Date: now.Add(-30 * time.Second)}, nil)
	assert.True(t, young.ShouldDiscard(now), "empty and under a minute old")

	old := NewDraft(entities.Workout{ID: "w2", Date: now.Add(-2 * time.Minute)}, nil)
	assert.False(t, old.ShouldDiscard(now), "old empty workouts are the sweeper's job")

	withSets := NewDraft(entities.Workout{
		ID:   "w3",
		Date: now.Add(-10 * time.Second),
		Sets: []entities.Set{{UUID: "s1", ExerciseID: benchPress.ID}},
	}, nil)
	assert.False(t, withSets.ShouldDiscard(now))
}
