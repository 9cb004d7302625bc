package engine

import (
	"testing"
	"time"

	model "github.com/BoostPerformance/fitculator-admin-sub002/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateWeeks_TwentyDayChallenge(t *testing.T) {
	weeks, err := GenerateWeeks(model.ChallengePeriod{
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.January, 20),
	})
	require.NoError(t, err)
	require.Len(t, weeks, 3)

	assert.Equal(t, "01.01-01.07", weeks[0].Label)
	assert.Equal(t, "01.08-01.14", weeks[1].Label)
	assert.Equal(t, "01.15-01.20", weeks[2].Label)

	// Dernière fenêtre tronquée à 6 jours
	assert.Equal(t, 6, weeks[2].Days())
	assert.Equal(t, date(2024, time.January, 20), weeks[2].EndDate)
}

func TestGenerateWeeks_SingleDayChallenge(t *testing.T) {
	day := date(2024, time.March, 15)
	weeks, err := GenerateWeeks(model.ChallengePeriod{StartDate: day, EndDate: day})
	require.NoError(t, err)
	require.Len(t, weeks, 1)

	assert.Equal(t, 1, weeks[0].Index)
	assert.Equal(t, 1, weeks[0].Days())
	assert.Equal(t, "03.15-03.15", weeks[0].Label)
}

func TestGenerateWeeks_InvalidPeriod(t *testing.T) {
	_, err := GenerateWeeks(model.ChallengePeriod{
		StartDate: date(2024, time.February, 10),
		EndDate:   date(2024, time.February, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestGenerateWeeks_AnchoredOnChallengeStart(t *testing.T) {
	// Un mercredi : l'ancrage suit le début du challenge, pas le lundi calendaire
	weeks, err := GenerateWeeks(model.ChallengePeriod{
		StartDate: date(2024, time.January, 3),
		EndDate:   date(2024, time.January, 16),
	})
	require.NoError(t, err)
	require.Len(t, weeks, 2)

	assert.Equal(t, date(2024, time.January, 3), weeks[0].StartDate)
	assert.Equal(t, date(2024, time.January, 9), weeks[0].EndDate)
	assert.Equal(t, date(2024, time.January, 10), weeks[1].StartDate)
}

func TestGenerateWeeks_CoverageWithoutGapsOrOverlaps(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantCount int
	}{
		{"exactly one week", date(2024, time.May, 6), date(2024, time.May, 12), 1},
		{"exactly four weeks", date(2024, time.May, 1), date(2024, time.May, 28), 4},
		{"29 days", date(2024, time.May, 1), date(2024, time.May, 29), 5},
		{"crosses month boundary", date(2024, time.January, 29), date(2024, time.February, 11), 2},
		{"crosses year boundary", date(2023, time.December, 27), date(2024, time.January, 9), 2},
		{"leap february", date(2024, time.February, 26), date(2024, time.March, 3), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weeks, err := GenerateWeeks(model.ChallengePeriod{StartDate: tt.start, EndDate: tt.end})
			require.NoError(t, err)
			assert.Len(t, weeks, tt.wantCount)

			// Couverture exacte : première fenêtre au début, dernière à la fin,
			// chaque fenêtre commence le lendemain de la précédente
			assert.Equal(t, tt.start, weeks[0].StartDate)
			assert.Equal(t, tt.end, weeks[len(weeks)-1].EndDate)
			for i := 1; i < len(weeks); i++ {
				assert.Equal(t, weeks[i-1].EndDate.AddDate(0, 0, 1), weeks[i].StartDate)
				assert.Equal(t, i+1, weeks[i].Index)
			}
			for _, w := range weeks {
				assert.LessOrEqual(t, w.Days(), 7)
				assert.GreaterOrEqual(t, w.Days(), 1)
			}
		})
	}
}

func TestGenerateWeeks_IgnoresTimeOfDay(t *testing.T) {
	weeks, err := GenerateWeeks(model.ChallengePeriod{
		StartDate: time.Date(2024, time.June, 1, 14, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, date(2024, time.June, 1), weeks[0].StartDate)
}
