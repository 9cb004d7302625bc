package engine

import (
	"math/rand"
	"testing"
	"time"

	model "github.com/BoostPerformance/fitculator-admin-sub002/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kst = time.FixedZone("KST", 9*3600)

func threeWeeks(t *testing.T) []model.WeekWindow {
	t.Helper()
	weeks, err := GenerateWeeks(model.ChallengePeriod{
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.January, 20),
	})
	require.NoError(t, err)
	return weeks
}

func cardioRecord(id, userID string, ts time.Time, points, distance float64) model.WorkoutRecord {
	return model.WorkoutRecord{
		ID: id, UserID: userID, CategoryID: "cat-running",
		Timestamp: ts, Points: points, DistanceKm: &distance,
	}
}

func strengthRecord(id, userID string, ts time.Time) model.WorkoutRecord {
	return model.WorkoutRecord{
		ID: id, UserID: userID, CategoryID: "cat-weights", Timestamp: ts,
	}
}

func TestAggregate_SumsCardioPointsPerWeek(t *testing.T) {
	weeks := threeWeeks(t)

	// Deux cardios pour U en semaine 2 : 30 + 45 points
	records := []model.WorkoutRecord{
		cardioRecord("r1", "user-u", time.Date(2024, time.January, 9, 7, 0, 0, 0, kst), 30, 5),
		cardioRecord("r2", "user-u", time.Date(2024, time.January, 12, 19, 0, 0, 0, kst), 45, 7.5),
	}

	acc, skipped := Aggregate(records, weeks, testLookup(), kst)
	assert.Empty(t, skipped)

	totals, ok := acc[BucketKey{Week: 2, UserID: "user-u"}]
	require.True(t, ok)
	assert.Equal(t, 75.0, totals.CardioPoints)
	assert.Equal(t, 12.5, totals.CardioDistance)
	assert.Zero(t, totals.StrengthSessions)
}

func TestAggregate_StrengthSessionsNoDailyDedup(t *testing.T) {
	weeks := threeWeeks(t)

	// Deux renfos le même jour : chacun compte
	sameDay := time.Date(2024, time.January, 3, 8, 0, 0, 0, kst)
	records := []model.WorkoutRecord{
		strengthRecord("r1", "user-a", sameDay),
		strengthRecord("r2", "user-a", sameDay.Add(10*time.Hour)),
		strengthRecord("r3", "user-a", time.Date(2024, time.January, 5, 12, 0, 0, 0, kst)),
	}

	acc, _ := Aggregate(records, weeks, testLookup(), kst)

	totals := acc[BucketKey{Week: 1, UserID: "user-a"}]
	require.NotNil(t, totals)
	assert.Equal(t, 3, totals.StrengthSessions)
}

func TestAggregate_TimezoneShiftsCalendarDay(t *testing.T) {
	weeks := threeWeeks(t)

	// 16h UTC le 7 janvier = 1h du matin le 8 janvier en UTC+9 : semaine 2
	records := []model.WorkoutRecord{
		cardioRecord("r1", "user-a", time.Date(2024, time.January, 7, 16, 0, 0, 0, time.UTC), 10, 2),
	}

	acc, _ := Aggregate(records, weeks, testLookup(), kst)

	_, inWeek1 := acc[BucketKey{Week: 1, UserID: "user-a"}]
	assert.False(t, inWeek1)

	totals, inWeek2 := acc[BucketKey{Week: 2, UserID: "user-a"}]
	require.True(t, inWeek2)
	assert.True(t, totals.CardioDays["2024-01-08"])
}

func TestAggregate_RecordsOutsidePeriodSilentlyExcluded(t *testing.T) {
	weeks := threeWeeks(t)

	records := []model.WorkoutRecord{
		cardioRecord("before", "user-a", time.Date(2023, time.December, 28, 10, 0, 0, 0, kst), 10, 1),
		cardioRecord("after", "user-a", time.Date(2024, time.February, 2, 10, 0, 0, 0, kst), 10, 1),
	}

	acc, skipped := Aggregate(records, weeks, testLookup(), kst)
	assert.Empty(t, acc)
	assert.Empty(t, skipped)
}

func TestAggregate_UnknownCategorySkippedNotFatal(t *testing.T) {
	weeks := threeWeeks(t)

	records := []model.WorkoutRecord{
		cardioRecord("good", "user-a", time.Date(2024, time.January, 2, 9, 0, 0, 0, kst), 25, 4),
		{ID: "bad", UserID: "user-a", CategoryID: "cat-ghost", Timestamp: time.Date(2024, time.January, 2, 10, 0, 0, 0, kst)},
	}

	acc, skipped := Aggregate(records, weeks, testLookup(), kst)

	require.Len(t, skipped, 1)
	assert.Equal(t, "bad", skipped[0].ID)

	totals := acc[BucketKey{Week: 1, UserID: "user-a"}]
	require.NotNil(t, totals)
	assert.Equal(t, 25.0, totals.CardioPoints)
}

func TestAggregate_ZeroPairsAbsentFromAccumulator(t *testing.T) {
	weeks := threeWeeks(t)

	records := []model.WorkoutRecord{
		cardioRecord("r1", "user-a", time.Date(2024, time.January, 2, 9, 0, 0, 0, kst), 25, 4),
	}

	acc, _ := Aggregate(records, weeks, testLookup(), kst)

	// Les paires sans enregistrement contributif sont absentes, pas à zéro
	assert.Len(t, acc, 1)
	_, ok := acc[BucketKey{Week: 2, UserID: "user-a"}]
	assert.False(t, ok)
}

func TestAggregate_EmptyInputsAreValid(t *testing.T) {
	weeks := threeWeeks(t)

	acc, skipped := Aggregate(nil, weeks, testLookup(), kst)
	assert.Empty(t, acc)
	assert.Empty(t, skipped)

	acc, _ = Aggregate([]model.WorkoutRecord{cardioRecord("r", "u", time.Now(), 1, 1)}, nil, testLookup(), kst)
	assert.Empty(t, acc)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	weeks := threeWeeks(t)

	var records []model.WorkoutRecord
	for i := 0; i < 40; i++ {
		day := time.Date(2024, time.January, 1+i%20, 6+i%12, 0, 0, 0, kst)
		if i%3 == 0 {
			records = append(records, strengthRecord("s", "user-a", day))
		} else {
			records = append(records, cardioRecord("c", "user-b", day, float64(10+i), float64(i)/2))
		}
	}

	reference, _ := Aggregate(records, weeks, testLookup(), kst)

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 5; trial++ {
		shuffled := make([]model.WorkoutRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		result, _ := Aggregate(shuffled, weeks, testLookup(), kst)
		assert.Equal(t, reference, result)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	weeks := threeWeeks(t)
	records := []model.WorkoutRecord{
		cardioRecord("r1", "user-a", time.Date(2024, time.January, 2, 9, 0, 0, 0, kst), 25, 4),
		strengthRecord("r2", "user-a", time.Date(2024, time.January, 10, 18, 0, 0, 0, kst)),
	}

	first, _ := Aggregate(records, weeks, testLookup(), kst)
	second, _ := Aggregate(records, weeks, testLookup(), kst)
	assert.Equal(t, first, second)
}
