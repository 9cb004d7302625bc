package model

import "time"

// WeekWindow est une fenêtre d'agrégation hebdomadaire ancrée sur le début du
// challenge. Les fenêtres sont contiguës, la dernière peut faire moins de 7 jours.
// Jamais persisté : recalculé à chaque requête depuis la période du challenge.
type WeekWindow struct {
	Index     int       `json:"index"` // 1-based
	Label     string    `json:"label"` // format MM.DD-MM.DD
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Days retourne le nombre de jours couverts par la fenêtre (1 à 7)
func (w WeekWindow) Days() int {
	return int(w.EndDate.Sub(w.StartDate).Hours()/24) + 1
}

// Contains indique si la date (jour calendaire) tombe dans la fenêtre
func (w WeekWindow) Contains(day time.Time) bool {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(w.StartDate.Year(), w.StartDate.Month(), w.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(w.EndDate.Year(), w.EndDate.Month(), w.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(start) && !d.After(end)
}
