package handler

import (
	"net/http"

	"github.com/BoostPerformance/fitculator-admin-sub002/internal/engine"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/utils"
	"github.com/gorilla/mux"
)

// weekCompletionView est la grille de complétion d'une semaine pour un utilisateur
type weekCompletionView struct {
	Week       int                  `json:"week"`
	Label      string               `json:"label"`
	Percentage float64              `json:"percentage"`
	Days       []engine.DailyStatus `json:"dailyStatuses"`
}

// GetUserCompletion récupère la grille de complétion d'un utilisateur.
// ?week=N cible une semaine précise, sinon toutes les semaines du challenge.
func GetUserCompletion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["challengeId"]
	userID := vars["userId"]
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

	required := requiredSessionsFor(result.challenge)

	var views []weekCompletionView
	for _, window := range result.weeks {
		if weekIndex != 0 && window.Index != weekIndex {
			continue
		}

		totals := result.acc[engine.BucketKey{Week: window.Index, UserID: userID}]
		completion := engine.EvaluateWeek(totals, window, required)

		views = append(views, weekCompletionView{
			Week:       window.Index,
			Label:      window.Label,
			Percentage: completion.Percentage,
			Days:       completion.Days,
		})
	}

	utils.Success(w, views)
}

// missionStatusView résume l'avancement mission d'un utilisateur sur le challenge
type missionStatusView struct {
	UserID            string               `json:"userId"`
	RequiredSessions  int                  `json:"requiredSessions"`
	OverallPercentage float64              `json:"overallPercentage"`
	Weeks             []weekCompletionView `json:"weeks"`
}

// GetUserMissionStatus récupère l'avancement mission complet d'un utilisateur :
// pourcentage par semaine, grille journalière et pourcentage global
func GetUserMissionStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["challengeId"]
	userID := vars["userId"]

	result, err := aggregateChallenge(r.Context(), challengeID)
	if err != nil {
		respondAggregationError(w, err)
		return
	}
	if result == nil {
		utils.ErrorSimple(w, http.StatusNotFound, "challenge not found")
		return
	}

	required := requiredSessionsFor(result.challenge)

	status := missionStatusView{
		UserID:            userID,
		RequiredSessions:  required,
		OverallPercentage: engine.EvaluateChallenge(result.acc, result.weeks, userID, required),
	}

	for _, window := range result.weeks {
		totals := result.acc[engine.BucketKey{Week: window.Index, UserID: userID}]
		completion := engine.EvaluateWeek(totals, window, required)

		status.Weeks = append(status.Weeks, weekCompletionView{
			Week:       window.Index,
			Label:      window.Label,
			Percentage: completion.Percentage,
			Days:       completion.Days,
		})
	}

	utils.Success(w, status)
}
