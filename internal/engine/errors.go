package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidPeriod est retourné quand la date de début d'un challenge est
// postérieure à sa date de fin. Fatal pour le calcul des semaines.
var ErrInvalidPeriod = errors.New("invalid challenge period: start date after end date")

// UnknownCategoryError signale un enregistrement dont la catégorie est absente
// de la table de référence. Politique appelant : logger et ignorer la ligne,
// jamais interrompre l'agrégation complète.
type UnknownCategoryError struct {
	CategoryID string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown activity category: %s", e.CategoryID)
}
