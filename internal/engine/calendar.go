package engine

import (
	"fmt"
	"time"

	model "github.com/BoostPerformance/fitculator-admin-sub002/internal/models"
)

// GenerateWeeks découpe la période d'un challenge en fenêtres hebdomadaires
// contiguës ancrées sur la date de début (pas sur le lundi calendaire — les
// écrans consommateurs doivent tous partager ce découpage pour éviter les
// décalages d'une page à l'autre). La dernière fenêtre est tronquée à la date
// de fin et peut couvrir moins de 7 jours. Produit toujours au moins une
// fenêtre, même pour un challenge d'un seul jour.
func GenerateWeeks(period model.ChallengePeriod) ([]model.WeekWindow, error) {
	start := truncateToDay(period.StartDate)
	end := truncateToDay(period.EndDate)

	if start.After(end) {
		return nil, ErrInvalidPeriod
	}

	var weeks []model.WeekWindow
	cursor := start
	index := 1

	for !cursor.After(end) {
		windowEnd := cursor.AddDate(0, 0, 6)
		if windowEnd.After(end) {
			windowEnd = end
		}

		weeks = append(weeks, model.WeekWindow{
			Index:     index,
			Label:     weekLabel(cursor, windowEnd),
			StartDate: cursor,
			EndDate:   windowEnd,
		})

		cursor = windowEnd.AddDate(0, 0, 1)
		index++
	}

	return weeks, nil
}

// weekLabel formate l'étiquette d'une fenêtre : MM.DD-MM.DD
func weekLabel(start, end time.Time) string {
	return fmt.Sprintf("%02d.%02d-%02d.%02d",
		int(start.Month()), start.Day(),
		int(end.Month()), end.Day())
}

// truncateToDay ramène une date à minuit UTC, seule la partie calendaire compte
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
