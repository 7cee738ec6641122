package usecases

import (
	"testing"
	"time"
	"workout-server/apperrors"
	"workout-server/entities"
	"workout-server/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkoutFixture(t *testing.T) (*WorkoutUseCase, repositories.WorkoutRepository, *entities.Exercise) {
	t.Helper()

	exerciseRepo := repositories.NewMemoryExerciseRepository()
	workoutRepo := repositories.NewMemoryWorkoutRepository(exerciseRepo)

	exercise := &entities.Exercise{Name: "Squat", Description: "Barbell back squat"}
	require.NoError(t, exerciseRepo.Create(exercise))

	return NewWorkoutUseCase(workoutRepo, exerciseRepo), workoutRepo, exercise
}

func TestCreateEmptyWorkoutRoundTrip(t *testing.T) {
	uc, _, _ := newWorkoutFixture(t)

	created, err := uc.CreateEmpty("alice-id")
	require.NoError(t, err)

	fetched, err := uc.GetOne(created.ID, "alice-id")
	require.NoError(t, err)
	assert.Empty(t, fetched.Sets)
	assert.False(t, fetched.Template)
	require.NotNil(t, fetched.UserID)
	assert.Equal(t, "alice-id", *fetched.UserID)
	assert.False(t, fetched.Date.IsZero())
}

func TestCreateFromTemplateClonesSets(t *testing.T) {
	uc, workoutRepo, exercise := newWorkoutFixture(t)

	template := &entities.Workout{
		Template: true,
		Sets: []entities.Set{
			{UUID: "tmpl-set-1", ExerciseID: exercise.ID, Weight: 80, Repetitions: 5, Completed: true},
			{UUID: "tmpl-set-2", ExerciseID: exercise.ID, Weight: 100, Repetitions: 3, Completed: true},
		},
	}
	require.NoError(t, workoutRepo.Create(template))

	cloned, err := uc.CreateFromTemplate("alice-id", template.ID)
	require.NoError(t, err)

	fetched, err := uc.GetOne(cloned.ID, "alice-id")
	require.NoError(t, err)
	require.Len(t, fetched.Sets, 2)

	templateUUIDs := map[string]bool{"tmpl-set-1": true, "tmpl-set-2": true}
	for i, set := range fetched.Sets {
		assert.False(t, set.Completed, "cloned sets start uncompleted")
		assert.NotEmpty(t, set.UUID)
		assert.False(t, templateUUIDs[set.UUID], "cloned set %d must get a fresh uuid", i)
		assert.Equal(t, exercise.ID, set.ExerciseID)
	}
	assert.Equal(t, 80.0, fetched.Sets[0].Weight)
	assert.Equal(t, 5, fetched.Sets[0].Repetitions)
	assert.Equal(t, 100.0, fetched.Sets[1].Weight)
	assert.Equal(t, 3, fetched.Sets[1].Repetitions)

	assert.False(t, fetched.Template)
	require.NotNil(t, fetched.UserID)
	assert.Equal(t, "alice-id", *fetched.UserID)
}

func TestCreateTemplate(t *testing.T) {
	uc, _, exercise := newWorkoutFixture(t)

	template, err := uc.CreateTemplate("alice-id", []SetInput{
		{ExerciseID: exercise.ID, Weight: 80, Repetitions: 5, Completed: true},
		{ExerciseID: exercise.ID, Weight: 100, Repetitions: 3},
	})
	require.NoError(t, err)

	assert.True(t, template.Template)
	assert.Nil(t, template.UserID, "templates carry no owner")
	require.Len(t, template.Sets, 2)

	// A saved template is immediately usable as a cloning source.
	cloned, err := uc.CreateFromTemplate("bob-id", template.ID)
	require.NoError(t, err)
	require.Len(t, cloned.Sets, 2)
}

func TestCreateTemplateValidation(t *testing.T) {
	uc, _, _ := newWorkoutFixture(t)

	_, err := uc.CreateTemplate("alice-id", nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidParameters)

	_, err = uc.CreateTemplate("alice-id", []SetInput{
		{ExerciseID: "no-such-exercise", Weight: 10, Repetitions: 5},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetTemplates(t *testing.T) {
	uc, _, exercise := newWorkoutFixture(t)

	workout, err := uc.CreateEmpty("alice-id")
	require.NoError(t, err)
	require.NoError(t, uc.UpdateSets(workout.ID, "alice-id", []SetInput{
		{UUID: "s1", ExerciseID: exercise.ID, Weight: 60, Repetitions: 8},
	}))

	template, err := uc.CreateTemplate("alice-id", []SetInput{
		{ExerciseID: exercise.ID, Weight: 80, Repetitions: 5},
	})
	require.NoError(t, err)

	// Only templates are listed, regardless of who asks, with exercise
	// references expanded.
	templates, err := uc.GetTemplates()
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, template.ID, templates[0].ID)
	require.Len(t, templates[0].Sets, 1)
	assert.Equal(t, "Squat", templates[0].Sets[0].Exercise.Name)
}

func TestGetOneAuthorization(t *testing.T) {
	uc, workoutRepo, _ := newWorkoutFixture(t)

	owned, err := uc.CreateEmpty("alice-id")
	require.NoError(t, err)

	_, err = uc.GetOne(owned.ID, "bob-id")
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)

	// A nil-owner workout is a public template, readable by anyone.
	template := &entities.Workout{Template: true}
	require.NoError(t, workoutRepo.Create(template))

	fetched, err := uc.GetOne(template.ID, "bob-id")
	require.NoError(t, err)
	assert.Equal(t, template.ID, fetched.ID)
}

func TestGetAllSortedAndScoped(t *testing.T) {
	uc, workoutRepo, _ := newWorkoutFixture(t)

	aliceID := "alice-id"
	bobID := "bob-id"

	old := &entities.Workout{UserID: &aliceID, Date: time.Now().Add(-48 * time.Hour)}
	recent := &entities.Workout{UserID: &aliceID, Date: time.Now().Add(-time.Hour)}
	other := &entities.Workout{UserID: &bobID, Date: time.Now()}
	template := &entities.Workout{Template: true, Date: time.Now()}
	for _, w := range []*entities.Workout{old, recent, other, template} {
		require.NoError(t, workoutRepo.Create(w))
	}

	workouts, err := uc.GetAll(aliceID)
	require.NoError(t, err)
	require.Len(t, workouts, 2)
	assert.Equal(t, recent.ID, workouts[0].ID, "newest workout first")
	assert.Equal(t, old.ID, workouts[1].ID)
}

func TestUpdateSetsOverwritesWholesale(t *testing.T) {
	uc, _, exercise := newWorkoutFixture(t)

	workout, err := uc.CreateEmpty("alice-id")
	require.NoError(t, err)

	three := []SetInput{
		{UUID: "s1", ExerciseID: exercise.ID, Weight: 60, Repetitions: 8},
		{UUID: "s2", ExerciseID: exercise.ID, Weight: 60, Repetitions: 8},
		{UUID: "s3", ExerciseID: exercise.ID, Weight: 62.5, Repetitions: 6, Completed: true},
	}
	require.NoError(t, uc.UpdateSets(workout.ID, "alice-id", three))

	fetched, err := uc.GetOne(workout.ID, "alice-id")
	require.NoError(t, err)
	require.Len(t, fetched.Sets, 3)

	// A shorter list replaces the stored one entirely, regardless of the
	// previous length. No merge.
	one := []SetInput{{UUID: "s9", ExerciseID: exercise.ID, Weight: 40, Repetitions: 12}}
	require.NoError(t, uc.UpdateSets(workout.ID, "alice-id", one))

	fetched, err = uc.GetOne(workout.ID, "alice-id")
	require.NoError(t, err)
	require.Len(t, fetched.Sets, 1)
	assert.Equal(t, "s9", fetched.Sets[0].UUID)
	assert.Equal(t, 40.0, fetched.Sets[0].Weight)
	assert.Equal(t, 12, fetched.Sets[0].Repetitions)

	// Date, template flag and owner are untouched by set updates.
	assert.Equal(t, workout.Date.Unix(), fetched.Date.Unix())
	assert.False(t, fetched.Template)
	require.NotNil(t, fetched.UserID)
	assert.Equal(t, "alice-id", *fetched.UserID)
}

func TestUpdateSetsValidation(t *testing.T) {
	uc, _, exercise := newWorkoutFixture(t)

	workout, err := uc.CreateEmpty("alice-id")
	require.NoError(t, err)

	err = uc.UpdateSets(workout.ID, "bob-id", nil)
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)

	err = uc.UpdateSets(workout.ID, "alice-id", []SetInput{
		{UUID: "s1", ExerciseID: exercise.ID, Weight: -1, Repetitions: 5},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidParameters)

	err = uc.UpdateSets(workout.ID, "alice-id", []SetInput{
		{UUID: "s1", ExerciseID: "", Weight: 10, Repetitions: 5},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidParameters)

	err = uc.UpdateSets(workout.ID, "alice-id", []SetInput{
		{UUID: "s1", ExerciseID: "no-such-exercise", Weight: 10, Repetitions: 5},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteWorkout(t *testing.T) {
	uc, _, _ := newWorkoutFixture(t)

	first, err := uc.CreateEmpty("alice-id")
	require.NoError(t, err)
	second, err := uc.CreateEmpty("alice-id")
	require.NoError(t, err)

	before, err := uc.GetAll("alice-id")
	require.NoError(t, err)
	require.Len(t, before, 2)

	require.NoError(t, uc.Delete(first.ID, "alice-id"))

	after, err := uc.GetAll("alice-id")
	require.NoError(t, err)
	require.Len(t, after, 1, "owner's list shrinks by exactly one")
	assert.Equal(t, second.ID, after[0].ID, "no dangling reference to the deleted id")

	_, err = uc.GetOne(first.ID, "alice-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteWorkoutAuthorization(t *testing.T) {
	uc, workoutRepo, _ := newWorkoutFixture(t)

	owned, err := uc.CreateEmpty("alice-id")
	require.NoError(t, err)

	err = uc.Delete(owned.ID, "bob-id")
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)

	// Templates (nil owner) are not deletable through this path.
	template := &entities.Workout{Template: true}
	require.NoError(t, workoutRepo.Create(template))

	err = uc.Delete(template.ID, "alice-id")
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)
}
