package engine

import (
	"testing"
	"time"

	model "github.com/BoostPerformance/fitculator-admin-sub002/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Semaine du lundi 1er janvier 2024 au dimanche 7
func mondayWeek() model.WeekWindow {
	return model.WeekWindow{
		Index:     1,
		Label:     "01.01-01.07",
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.January, 7),
	}
}

func TestEvaluateWeek_OverCompletionNotClamped(t *testing.T) {
	totals := &WeeklyTotals{StrengthSessions: 4}

	completion := EvaluateWeek(totals, mondayWeek(), 3)
	assert.Equal(t, 133.3, completion.Percentage)
}

func TestEvaluateWeek_Percentages(t *testing.T) {
	tests := []struct {
		name     string
		sessions int
		required int
		want     float64
	}{
		{"exact", 3, 3, 100},
		{"partial", 2, 3, 66.7},
		{"none", 0, 3, 0},
		{"zero required never divides", 5, 0, 0},
		{"negative required treated as zero", 5, -1, 0},
		{"double", 6, 3, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completion := EvaluateWeek(&WeeklyTotals{StrengthSessions: tt.sessions}, mondayWeek(), tt.required)
			assert.Equal(t, tt.want, completion.Percentage)
			assert.GreaterOrEqual(t, completion.Percentage, 0.0)
		})
	}
}

func TestEvaluateWeek_DailyGrid(t *testing.T) {
	totals := &WeeklyTotals{
		StrengthSessions: 1,
		CardioDays: map[string]bool{
			"2024-01-01": true, // lundi
			"2024-01-03": true, // mercredi
			"2024-01-06": true, // samedi : reste un jour de repos malgré le cardio
		},
	}

	completion := EvaluateWeek(totals, mondayWeek(), 3)
	require.Len(t, completion.Days, 7)

	want := []DayStatus{
		DayComplete,   // lun 01
		DayIncomplete, // mar 02
		DayComplete,   // mer 03
		DayIncomplete, // jeu 04
		DayIncomplete, // ven 05
		DayRest,       // sam 06
		DayRest,       // dim 07
	}
	for i, status := range want {
		assert.Equal(t, status, completion.Days[i].Status, "day %s", completion.Days[i].Date)
	}
}

func TestEvaluateWeek_NilTotals(t *testing.T) {
	completion := EvaluateWeek(nil, mondayWeek(), 3)

	assert.Zero(t, completion.Percentage)
	for _, day := range completion.Days {
		assert.Contains(t, []DayStatus{DayIncomplete, DayRest}, day.Status)
	}
}

func TestEvaluateWeek_ShortWindow(t *testing.T) {
	// Fenêtre tronquée : lundi 15 au samedi 20
	window := model.WeekWindow{
		Index:     3,
		Label:     "01.15-01.20",
		StartDate: date(2024, time.January, 15),
		EndDate:   date(2024, time.January, 20),
	}

	completion := EvaluateWeek(nil, window, 2)
	require.Len(t, completion.Days, 6)
	assert.Equal(t, "2024-01-20", completion.Days[5].Date)
	assert.Equal(t, DayRest, completion.Days[5].Status)
}

func TestEvaluateChallenge(t *testing.T) {
	weeks, err := GenerateWeeks(model.ChallengePeriod{
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.January, 14),
	})
	require.NoError(t, err)

	acc := Accumulator{
		{Week: 1, UserID: "user-a"}: {StrengthSessions: 3},
		{Week: 2, UserID: "user-a"}: {StrengthSessions: 1},
	}

	// 4 séances sur un objectif de 3 × 2 semaines
	assert.Equal(t, 66.7, EvaluateChallenge(acc, weeks, "user-a", 3))
	assert.Zero(t, EvaluateChallenge(acc, weeks, "user-b", 3))
	assert.Zero(t, EvaluateChallenge(acc, weeks, "user-a", 0))
}
