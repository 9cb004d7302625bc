package engine

import (
	"testing"
	"time"

	model "github.com/BoostPerformance/fitculator-admin-sub002/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLookup() CategoryLookup {
	return NewCategoryLookup([]model.ActivityCategory{
		{ID: "cat-running", Type: model.ActivityCardio, Name: "Course à pied"},
		{ID: "cat-cycling", Type: model.ActivityCardio, Name: "Vélo"},
		{ID: "cat-weights", Type: model.ActivityStrength, Name: "Renforcement"},
	})
}

func TestClassify_Cardio(t *testing.T) {
	distance := 8.4
	record := model.WorkoutRecord{
		ID:         "rec-1",
		UserID:     "user-a",
		CategoryID: "cat-running",
		Timestamp:  time.Now(),
		Points:     42.5,
		DistanceKm: &distance,
	}

	classified, err := Classify(record, testLookup())
	require.NoError(t, err)

	assert.Equal(t, model.ActivityCardio, classified.Kind)
	assert.Equal(t, 42.5, classified.Points)
	assert.Equal(t, 8.4, classified.Distance)
	assert.Zero(t, classified.Sessions)
}

func TestClassify_CardioWithoutDistance(t *testing.T) {
	record := model.WorkoutRecord{CategoryID: "cat-cycling", Points: 20}

	classified, err := Classify(record, testLookup())
	require.NoError(t, err)

	assert.Equal(t, 20.0, classified.Points)
	assert.Zero(t, classified.Distance)
}

func TestClassify_StrengthCountsOneSessionRegardlessOfDuration(t *testing.T) {
	for _, duration := range []int{5, 60, 180} {
		record := model.WorkoutRecord{CategoryID: "cat-weights", DurationMinutes: duration, Points: 99}

		classified, err := Classify(record, testLookup())
		require.NoError(t, err)

		assert.Equal(t, model.ActivityStrength, classified.Kind)
		assert.Equal(t, 1, classified.Sessions)
		assert.Zero(t, classified.Points)
	}
}

func TestClassify_UnknownCategory(t *testing.T) {
	record := model.WorkoutRecord{CategoryID: "cat-ghost"}

	_, err := Classify(record, testLookup())
	require.Error(t, err)

	var unknownErr *UnknownCategoryError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "cat-ghost", unknownErr.CategoryID)
}
