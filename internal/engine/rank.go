package engine

import (
	"sort"

	model "github.com/BoostPerformance/fitculator-admin-sub002/internal/models"
)

// Metric sélectionne la mesure de classement d'une période
type Metric string

const (
	MetricPoints   Metric = "points"
	MetricDistance Metric = "distance"
)

// ParseMetric normalise le paramètre de requête metric, points par défaut
func ParseMetric(raw string) Metric {
	if raw == string(MetricDistance) {
		return MetricDistance
	}
	return MetricPoints
}

// Snapshot aplatit l'accumulateur en totaux par utilisateur pour une période :
// une semaine précise, ou le challenge entier quand weekIndex vaut 0.
// Seuls les utilisateurs ayant au moins un enregistrement contributif dans la
// période figurent dans le snapshot.
func Snapshot(acc Accumulator, weekIndex int) map[string]*WeeklyTotals {
	snapshot := make(map[string]*WeeklyTotals)

	for key, totals := range acc {
		if weekIndex != 0 && key.Week != weekIndex {
			continue
		}

		merged, exists := snapshot[key.UserID]
		if !exists {
			merged = &WeeklyTotals{CardioDays: make(map[string]bool)}
			snapshot[key.UserID] = merged
		}

		merged.CardioPoints += totals.CardioPoints
		merged.CardioDistance += totals.CardioDistance
		merged.StrengthSessions += totals.StrengthSessions
		for day := range totals.CardioDays {
			merged.CardioDays[day] = true
		}
	}

	return snapshot
}

// Rank trie un snapshot par valeur de métrique décroissante et attribue des
// rangs positionnels 1-based. Égalité départagée par userId croissant, de
// façon déterministe — deux utilisateurs à égalité gardent des rangs
// consécutifs distincts (pas de compression des rangs). Les utilisateurs sans
// enregistrement dans la période sont absents du snapshot donc du classement.
func Rank(snapshot map[string]*WeeklyTotals, metric Metric, names map[string]string) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(snapshot))

	for userID, totals := range snapshot {
		value := totals.CardioPoints
		if metric == MetricDistance {
			value = totals.CardioDistance
		}

		name, ok := names[userID]
		if !ok {
			name = userID
		}

		entries = append(entries, model.LeaderboardEntry{
			UserID:      userID,
			UserName:    name,
			MetricValue: value,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].MetricValue != entries[j].MetricValue {
			return entries[i].MetricValue > entries[j].MetricValue
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// RankOf situe un utilisateur dans un classement déjà calculé
func RankOf(entries []model.LeaderboardEntry, userID string) (model.UserRank, bool) {
	for _, entry := range entries {
		if entry.UserID != userID {
			continue
		}

		rank := model.UserRank{
			UserID:      userID,
			Rank:        entry.Rank,
			MetricValue: entry.MetricValue,
			TotalUsers:  len(entries),
		}
		if rank.TotalUsers > 0 {
			rank.Percentile = float64(rank.Rank) / float64(rank.TotalUsers) * 100
		}
		return rank, true
	}
	return model.UserRank{}, false
}
