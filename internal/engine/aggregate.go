package engine

import (
	"time"

	model "github.com/BoostPerformance/fitculator-admin-sub002/internal/models"
)

// BucketKey identifie un accumulateur : une semaine du challenge × un utilisateur
type BucketKey struct {
	Week   int    `json:"week"`
	UserID string `json:"userId"`
}

// WeeklyTotals cumule les mesures d'une paire (semaine, utilisateur).
// CardioDays retient les jours calendaires (format 2006-01-02) ayant au moins
// un enregistrement cardio, pour la grille de complétion journalière.
type WeeklyTotals struct {
	CardioPoints     float64         `json:"cardioPoints"`
	CardioDistance   float64         `json:"cardioDistance"`
	StrengthSessions int             `json:"strengthSessions"`
	CardioDays       map[string]bool `json:"-"`
}

// Accumulator est le résultat de l'agrégation. Convention : une paire
// (semaine, utilisateur) sans aucun enregistrement contributif est ABSENTE de
// la map, jamais présente avec des valeurs à zéro.
type Accumulator map[BucketKey]*WeeklyTotals

// Aggregate replie les enregistrements classifiés dans un accumulateur neuf,
// par semaine et par utilisateur. Le timestamp de chaque enregistrement est
// converti dans loc avant extraction du jour calendaire (le fuseau du produit,
// configuré côté appelant). Les enregistrements hors période sont ignorés
// silencieusement ; ceux de catégorie inconnue sont ignorés et retournés à
// l'appelant pour journalisation. Pur repli : l'ordre des enregistrements ne
// change pas le résultat, deux appels identiques produisent le même accumulateur.
func Aggregate(records []model.WorkoutRecord, weeks []model.WeekWindow, lookup CategoryLookup, loc *time.Location) (Accumulator, []model.WorkoutRecord) {
	acc := make(Accumulator)
	var skipped []model.WorkoutRecord

	if len(weeks) == 0 {
		return acc, skipped
	}

	for _, record := range records {
		day := recordDay(record.Timestamp, loc)

		weekIndex, ok := weekIndexFor(day, weeks)
		if !ok {
			// Enregistrement hors de la période du challenge
			continue
		}

		classified, err := Classify(record, lookup)
		if err != nil {
			skipped = append(skipped, record)
			continue
		}

		key := BucketKey{Week: weekIndex, UserID: record.UserID}
		totals, exists := acc[key]
		if !exists {
			totals = &WeeklyTotals{CardioDays: make(map[string]bool)}
			acc[key] = totals
		}

		switch classified.Kind {
		case model.ActivityCardio:
			totals.CardioPoints += classified.Points
			totals.CardioDistance += classified.Distance
			totals.CardioDays[day.Format("2006-01-02")] = true
		case model.ActivityStrength:
			totals.StrengthSessions += classified.Sessions
		}
	}

	return acc, skipped
}

// recordDay extrait le jour calendaire d'un timestamp dans le fuseau donné,
// ramené à minuit UTC pour la comparaison avec les fenêtres
func recordDay(ts time.Time, loc *time.Location) time.Time {
	local := ts.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// weekIndexFor retrouve la fenêtre contenant le jour donné. Les fenêtres étant
// contiguës de 7 jours (dernière tronquée), l'index se calcule arithmétiquement
// depuis le début de la première fenêtre.
func weekIndexFor(day time.Time, weeks []model.WeekWindow) (int, bool) {
	first := weeks[0].StartDate
	last := weeks[len(weeks)-1].EndDate

	if day.Before(first) || day.After(last) {
		return 0, false
	}

	daysSinceStart := int(day.Sub(first).Hours() / 24)
	index := daysSinceStart/7 + 1
	if index > len(weeks) {
		return 0, false
	}
	return index, true
}
