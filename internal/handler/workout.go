package handler

import (
	"net/http"
	"time"

	"github.com/BoostPerformance/fitculator-admin-sub002/internal/database"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/middleware"
	model "github.com/BoostPerformance/fitculator-admin-sub002/internal/models"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/scanner"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type createRecordRequest struct {
	UserID          string    `json:"userId"`
	CategoryID      string    `json:"categoryId"`
	Timestamp       time.Time `json:"timestamp"`
	DurationMinutes int       `json:"durationMinutes"`
	Points          float64   `json:"points"`
	DistanceKm      *float64  `json:"distanceKm,omitempty"`
}

// GetCategories récupère la table de référence des catégories d'activité
func GetCategories(w http.ResponseWriter, r *http.Request) {
	rows, err := database.DB.Query(r.Context(), `
		SELECT id, type, name FROM activity_categories ORDER BY name
	`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query categories", err)
		return
	}
	defer rows.Close()

	var categories []model.ActivityCategory
	for rows.Next() {
		category, err := scanner.ScanActivityCategory(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan category row", err)
			return
		}
		categories = append(categories, *category)
	}

	utils.Success(w, categories)
}

// GetChallengeRecords récupère les séances brutes de la période d'un challenge
func GetChallengeRecords(w http.ResponseWriter, r *http.Request) {
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

	records, err := fetchChallengeRecords(r.Context(), challenge)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query workout records", err)
		return
	}

	utils.Success(w, records)
}

// CreateRecord ingère une séance (correction manuelle par un coach, ou
// rattrapage quand l'intégration de tracking a raté une synchro)
func CreateRecord(w http.ResponseWriter, r *http.Request) {
	coach, err := middleware.RequireCoach(r)
	if err != nil {
		utils.Error(w, http.StatusForbidden, "coach role required", err)
		return
	}

	var req createRecordRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if req.UserID == "" || req.CategoryID == "" || req.Timestamp.IsZero() {
		utils.ErrorSimple(w, http.StatusBadRequest, "userId, categoryId and timestamp are required")
		return
	}

	row := database.DB.QueryRow(r.Context(), `
		INSERT INTO workout_records(
			id, user_id, category_id, recorded_at, duration_minutes,
			points, distance_km, created_by, created_at
		) VALUES($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, user_id, category_id, recorded_at, duration_minutes, points, distance_km
	`, uuid.NewString(), req.UserID, req.CategoryID, req.Timestamp,
		req.DurationMinutes, req.Points, req.DistanceKm, coach.ID)

	record, err := scanner.ScanWorkoutRecord(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save workout record", err)
		return
	}

	utils.Success(w, record)
}

// DeleteRecord supprime (soft delete) une séance erronée
func DeleteRecord(w http.ResponseWriter, r *http.Request) {
	coach, err := middleware.RequireCoach(r)
	if err != nil {
		utils.Error(w, http.StatusForbidden, "coach role required", err)
		return
	}

	vars := mux.Vars(r)

	tag, err := database.DB.Exec(r.Context(), `
		UPDATE workout_records SET deleted_at = NOW(), deleted_by = $1
		WHERE id = $2 AND deleted_at IS NULL
	`, coach.ID, vars["id"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete workout record", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.ErrorSimple(w, http.StatusNotFound, "workout record not found")
		return
	}

	utils.Message(w, "workout record deleted")
}
