package engine

import (
	model "github.com/BoostPerformance/fitculator-admin-sub002/internal/models"
)

// CategoryLookup est la table de référence statique catégorie → type d'activité
type CategoryLookup map[string]model.ActivityCategory

// NewCategoryLookup construit la table de référence depuis les lignes chargées en base
func NewCategoryLookup(categories []model.ActivityCategory) CategoryLookup {
	lookup := make(CategoryLookup, len(categories))
	for _, c := range categories {
		lookup[c.ID] = c
	}
	return lookup
}

// Classified est le résultat de la classification d'un enregistrement brut :
// pour le cardio les mesures numériques (points, distance), pour le renfo un
// incrément de séance.
type Classified struct {
	Kind     model.ActivityKind
	Points   float64
	Distance float64
	Sessions int
}

// Classify mappe un enregistrement brut vers cardio ou renfo.
// CARDIO : points + distance (0 si absente). STRENGTH : toujours exactement
// une séance, quelle que soit la durée — deux séances de renfo le même jour
// comptent chacune (pas de déduplication journalière).
func Classify(record model.WorkoutRecord, lookup CategoryLookup) (Classified, error) {
	category, ok := lookup[record.CategoryID]
	if !ok {
		return Classified{}, &UnknownCategoryError{CategoryID: record.CategoryID}
	}

	switch category.Type {
	case model.ActivityCardio:
		distance := 0.0
		if record.DistanceKm != nil {
			distance = *record.DistanceKm
		}
		return Classified{
			Kind:     model.ActivityCardio,
			Points:   record.Points,
			Distance: distance,
		}, nil

	case model.ActivityStrength:
		return Classified{
			Kind:     model.ActivityStrength,
			Sessions: 1,
		}, nil

	default:
		return Classified{}, &UnknownCategoryError{CategoryID: record.CategoryID}
	}
}
