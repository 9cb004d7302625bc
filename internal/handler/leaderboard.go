package handler

import (
	"errors"
	"net/http"
	"sort"

	"github.com/BoostPerformance/fitculator-admin-sub002/internal/engine"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/utils"
	"github.com/gorilla/mux"
)

// GetChallengeWeeks récupère le découpage hebdomadaire d'un challenge
func GetChallengeWeeks(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["challengeId"]

	challenge, err := fetchChallenge(r.Context(), challengeID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch challenge", err)
		return
	}
	if challenge == nil {
		utils.ErrorSimple(w, http.StatusNotFound, "challenge not found")
		return
	}

	weeks, err := engine.GenerateWeeks(challenge.Period())
	if err != nil {
		if errors.Is(err, engine.ErrInvalidPeriod) {
			utils.Error(w, http.StatusUnprocessableEntity, "challenge has an invalid period", err)
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not compute weeks", err)
		return
	}

	utils.Success(w, weeks)
}

// aggregateRow est une ligne d'accumulateur aplatie pour les graphiques du dashboard
type aggregateRow struct {
	Week             int     `json:"week"`
	UserID           string  `json:"userId"`
	CardioPoints     float64 `json:"cardioPoints"`
	CardioDistance   float64 `json:"cardioDistance"`
	StrengthSessions int     `json:"strengthSessions"`
}

// GetChallengeAggregate récupère l'accumulateur hebdomadaire complet (charting)
func GetChallengeAggregate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["challengeId"]

	result, err := aggregateChallenge(r.Context(), challengeID)
	if err != nil {
		respondAggregationError(w, err)
		return
	}
	if result == nil {
		utils.ErrorSimple(w, http.StatusNotFound, "challenge not found")
		return
	}

	rows := make([]aggregateRow, 0, len(result.acc))
	for key, totals := range result.acc {
		rows = append(rows, aggregateRow{
			Week:             key.Week,
			UserID:           key.UserID,
			CardioPoints:     totals.CardioPoints,
			CardioDistance:   totals.CardioDistance,
			StrengthSessions: totals.StrengthSessions,
		})
	}

	// Ordre stable pour le front : par semaine puis par utilisateur
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Week != rows[j].Week {
			return rows[i].Week < rows[j].Week
		}
		return rows[i].UserID < rows[j].UserID
	})

	utils.Success(w, map[string]interface{}{
		"weeks":     result.weeks,
		"aggregate": rows,
	})
}

// GetChallengeLeaderboard récupère le classement d'un challenge.
// ?metric=points|distance (points par défaut), ?week=N (0 ou absent : challenge entier)
func GetChallengeLeaderboard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["challengeId"]

	metric := engine.ParseMetric(r.URL.Query().Get("metric"))
	weekIndex := utils.QueryInt(r, "week", 0)

	result, err := aggregateChallenge(r.Context(), challengeID)
	if err != nil {
		respondAggregationError(w, err)
		return
	}
	if result == nil {
		utils.ErrorSimple(w, http.StatusNotFound, "challenge not found")
		return
	}

	if weekIndex < 0 || weekIndex > len(result.weeks) {
		utils.ErrorSimple(w, http.StatusBadRequest, "week index out of range")
		return
	}

	names, err := fetchUserNames(r.Context(), challengeID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch user names", err)
		return
	}

	entries := engine.Rank(engine.Snapshot(result.acc, weekIndex), metric, names)

	utils.Success(w, entries)
}

// GetChallengeUserRank situe un utilisateur dans le classement d'un challenge
func GetChallengeUserRank(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["challengeId"]
	userID := vars["userId"]

	metric := engine.ParseMetric(r.URL.Query().Get("metric"))
	weekIndex := utils.QueryInt(r, "week", 0)

	result, err := aggregateChallenge(r.Context(), challengeID)
	if err != nil {
		respondAggregationError(w, err)
		return
	}
	if result == nil {
		utils.ErrorSimple(w, http.StatusNotFound, "challenge not found")
		return
	}

	names, err := fetchUserNames(r.Context(), challengeID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch user names", err)
		return
	}

	entries := engine.Rank(engine.Snapshot(result.acc, weekIndex), metric, names)
	rank, found := engine.RankOf(entries, userID)
	if !found {
		utils.ErrorSimple(w, http.StatusNotFound, "user has no ranked activity in this period")
		return
	}

	utils.Success(w, rank)
}

// respondAggregationError mappe les erreurs du pipeline d'agrégation vers HTTP
func respondAggregationError(w http.ResponseWriter, err error) {
	if errors.Is(err, engine.ErrInvalidPeriod) {
		utils.Error(w, http.StatusUnprocessableEntity, "challenge has an invalid period", err)
		return
	}
	utils.Error(w, http.StatusInternalServerError, "could not aggregate challenge records", err)
}
