package engine

import (
	"math"
	"time"

	model "github.com/BoostPerformance/fitculator-admin-sub002/internal/models"
)

// DayStatus est l'état tri-valué d'un jour dans la grille de complétion
type DayStatus string

const (
	DayComplete   DayStatus = "complete"
	DayIncomplete DayStatus = "incomplete"
	DayRest       DayStatus = "rest"
)

// DailyStatus associe un jour calendaire à son état
type DailyStatus struct {
	Date   string    `json:"date"` // format 2006-01-02
	Status DayStatus `json:"status"`
}

// WeekCompletion est le résultat de l'évaluation d'une semaine pour un utilisateur
type WeekCompletion struct {
	Percentage float64       `json:"percentage"`
	Days       []DailyStatus `json:"dailyStatuses"`
}

// EvaluateWeek compare les totaux agrégés d'une semaine à l'objectif de séances
// de renfo. Le pourcentage n'est PAS plafonné à 100 : le sur-entraînement doit
// rester visible pour le coach. requiredSessions <= 0 donne 0 par convention,
// jamais de division par zéro. La grille journalière marque samedi et dimanche
// en repos (règle fixe), les autres jours complets si au moins un cardio ce
// jour-là. totals peut être nil (aucun enregistrement la semaine) : 0% et tous
// les jours ouvrés incomplets.
func EvaluateWeek(totals *WeeklyTotals, window model.WeekWindow, requiredSessions int) WeekCompletion {
	completion := WeekCompletion{
		Percentage: completionPercentage(sessionsOf(totals), requiredSessions),
		Days:       make([]DailyStatus, 0, window.Days()),
	}

	for day := window.StartDate; !day.After(window.EndDate); day = day.AddDate(0, 0, 1) {
		completion.Days = append(completion.Days, DailyStatus{
			Date:   day.Format("2006-01-02"),
			Status: dayStatus(totals, day),
		})
	}

	return completion
}

// EvaluateChallenge donne le pourcentage de complétion sur tout le challenge :
// total des séances de renfo rapporté à l'objectif cumulé de toutes les semaines.
func EvaluateChallenge(acc Accumulator, weeks []model.WeekWindow, userID string, requiredSessions int) float64 {
	total := 0
	for _, week := range weeks {
		if totals, ok := acc[BucketKey{Week: week.Index, UserID: userID}]; ok {
			total += totals.StrengthSessions
		}
	}
	return completionPercentage(total, requiredSessions*len(weeks))
}

func sessionsOf(totals *WeeklyTotals) int {
	if totals == nil {
		return 0
	}
	return totals.StrengthSessions
}

// completionPercentage arrondit à une décimale, 0 quand l'objectif est nul
func completionPercentage(sessions, required int) float64 {
	if required <= 0 {
		return 0
	}
	return math.Round(float64(sessions)/float64(required)*100*10) / 10
}

func dayStatus(totals *WeeklyTotals, day time.Time) DayStatus {
	weekday := day.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return DayRest
	}
	if totals != nil && totals.CardioDays[day.Format("2006-01-02")] {
		return DayComplete
	}
	return DayIncomplete
}
