package engine

import (
	"testing"
	"time"

	model "github.com/BoostPerformance/fitculator-admin-sub002/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accFixture() Accumulator {
	return Accumulator{
		{Week: 1, UserID: "user-a"}: {CardioPoints: 30, CardioDistance: 4, CardioDays: map[string]bool{"2024-01-02": true}},
		{Week: 2, UserID: "user-a"}: {CardioPoints: 20, CardioDistance: 10, CardioDays: map[string]bool{"2024-01-09": true}},
		{Week: 1, UserID: "user-b"}: {CardioPoints: 50, CardioDistance: 2, CardioDays: map[string]bool{"2024-01-03": true}},
		{Week: 2, UserID: "user-c"}: {CardioPoints: 80, CardioDistance: 1, CardioDays: map[string]bool{"2024-01-10": true}},
	}
}

func TestSnapshot_SingleWeek(t *testing.T) {
	snapshot := Snapshot(accFixture(), 1)

	require.Len(t, snapshot, 2)
	assert.Equal(t, 30.0, snapshot["user-a"].CardioPoints)
	assert.Equal(t, 50.0, snapshot["user-b"].CardioPoints)

	// user-c n'a rien en semaine 1 : absent
	_, ok := snapshot["user-c"]
	assert.False(t, ok)
}

func TestSnapshot_WholeChallengeMergesWeeks(t *testing.T) {
	snapshot := Snapshot(accFixture(), 0)

	require.Len(t, snapshot, 3)
	assert.Equal(t, 50.0, snapshot["user-a"].CardioPoints)
	assert.Equal(t, 14.0, snapshot["user-a"].CardioDistance)
	assert.True(t, snapshot["user-a"].CardioDays["2024-01-02"])
	assert.True(t, snapshot["user-a"].CardioDays["2024-01-09"])
}

func TestRank_TieBreakByUserID(t *testing.T) {
	// A(50), B(50), C(80) : C premier, puis A avant B par userId croissant
	snapshot := map[string]*WeeklyTotals{
		"user-b": {CardioPoints: 50},
		"user-c": {CardioPoints: 80},
		"user-a": {CardioPoints: 50},
	}
	names := map[string]string{"user-a": "Alice", "user-b": "Boris", "user-c": "Chae-won"}

	entries := Rank(snapshot, MetricPoints, names)
	require.Len(t, entries, 3)

	assert.Equal(t, []model.LeaderboardEntry{
		{UserID: "user-c", UserName: "Chae-won", MetricValue: 80, Rank: 1},
		{UserID: "user-a", UserName: "Alice", MetricValue: 50, Rank: 2},
		{UserID: "user-b", UserName: "Boris", MetricValue: 50, Rank: 3},
	}, entries)
}

func TestRank_DistanceMetric(t *testing.T) {
	entries := Rank(Snapshot(accFixture(), 0), MetricDistance, nil)

	require.Len(t, entries, 3)
	assert.Equal(t, "user-a", entries[0].UserID)
	assert.Equal(t, 14.0, entries[0].MetricValue)
	// Sans table de noms, repli sur le userId
	assert.Equal(t, "user-a", entries[0].UserName)
}

func TestRank_MonotonicValues(t *testing.T) {
	entries := Rank(Snapshot(accFixture(), 0), MetricPoints, nil)

	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].MetricValue, entries[i].MetricValue)
		assert.Equal(t, i+1, entries[i].Rank)
	}
}

func TestRank_EmptySnapshot(t *testing.T) {
	entries := Rank(map[string]*WeeklyTotals{}, MetricPoints, nil)
	assert.Empty(t, entries)
}

func TestRank_IdempotentOnFrozenInput(t *testing.T) {
	weeks, err := GenerateWeeks(model.ChallengePeriod{
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.January, 14),
	})
	require.NoError(t, err)

	records := []model.WorkoutRecord{
		cardioRecord("r1", "user-a", time.Date(2024, time.January, 2, 9, 0, 0, 0, kst), 25, 4),
		cardioRecord("r2", "user-b", time.Date(2024, time.January, 3, 9, 0, 0, 0, kst), 25, 6),
		strengthRecord("r3", "user-a", time.Date(2024, time.January, 4, 9, 0, 0, 0, kst)),
	}

	run := func() []model.LeaderboardEntry {
		acc, _ := Aggregate(records, weeks, testLookup(), kst)
		return Rank(Snapshot(acc, 0), MetricPoints, nil)
	}

	assert.Equal(t, run(), run())
}

func TestParseMetric(t *testing.T) {
	assert.Equal(t, MetricDistance, ParseMetric("distance"))
	assert.Equal(t, MetricPoints, ParseMetric("points"))
	assert.Equal(t, MetricPoints, ParseMetric(""))
	assert.Equal(t, MetricPoints, ParseMetric("calories"))
}

func TestRankOf(t *testing.T) {
	entries := Rank(Snapshot(accFixture(), 0), MetricPoints, nil)

	rank, found := RankOf(entries, "user-c")
	require.True(t, found)
	assert.Equal(t, 1, rank.Rank)
	assert.Equal(t, 3, rank.TotalUsers)
	assert.InDelta(t, 33.3, rank.Percentile, 0.1)

	_, found = RankOf(entries, "user-z")
	assert.False(t, found)
}
