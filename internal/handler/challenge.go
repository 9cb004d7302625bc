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
	"github.com/lib/pq"
)

type createChallengeRequest struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	RequiredSessions int       `json:"requiredSessions"`
	Tags             []string  `json:"tags,omitempty"`
}

type updateChallengeRequest struct {
	Title            *string  `json:"title,omitempty"`
	Description      *string  `json:"description,omitempty"`
	RequiredSessions *int     `json:"requiredSessions,omitempty"`
	Status           *string  `json:"status,omitempty"`
	Tags             []string `json:"tags,omitempty"`
}

// GetChallenges récupère tous les challenges actifs
func GetChallenges(w http.ResponseWriter, r *http.Request) {
	rows, err := database.DB.Query(r.Context(), `
		SELECT
			id, title, description, start_date, end_date,
			required_sessions, image_url, participants, status, tags,
			created_by, updated_by, created_at, updated_at
		FROM challenges
		WHERE deleted_at IS NULL
		ORDER BY start_date DESC
	`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query challenges", err)
		return
	}
	defer rows.Close()

	var challenges []model.Challenge
	for rows.Next() {
		challenge, err := scanner.ScanChallenge(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan challenge row", err)
			return
		}
		challenges = append(challenges, *challenge)
	}

	utils.Success(w, challenges)
}

// GetChallengeById récupère un challenge par id
func GetChallengeById(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	challenge, err := fetchChallenge(r.Context(), vars["id"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch challenge", err)
		return
	}
	if challenge == nil {
		utils.ErrorSimple(w, http.StatusNotFound, "challenge not found")
		return
	}

	utils.Success(w, challenge)
}

// CreateChallenge crée un challenge (staff coaching uniquement).
// La période est immuable après création : validée ici une fois pour toutes.
func CreateChallenge(w http.ResponseWriter, r *http.Request) {
	coach, err := middleware.RequireCoach(r)
	if err != nil {
		utils.Error(w, http.StatusForbidden, "coach role required", err)
		return
	}

	var req createChallengeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if req.Title == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.StartDate.After(req.EndDate) {
		utils.ErrorSimple(w, http.StatusBadRequest, "start date must not be after end date")
		return
	}

	row := database.DB.QueryRow(r.Context(), `
		INSERT INTO challenges(
			id, title, description, start_date, end_date,
			required_sessions, status, tags, created_by, created_at, updated_at
		) VALUES($1, $2, $3, $4, $5, $6, 'upcoming', $7, $8, NOW(), NOW())
		RETURNING id, title, description, start_date, end_date,
			required_sessions, image_url, participants, status, tags,
			created_by, updated_by, created_at, updated_at
	`, uuid.NewString(), req.Title, req.Description, req.StartDate, req.EndDate,
		req.RequiredSessions, pq.Array(req.Tags), coach.ID)

	challenge, err := scanner.ScanChallenge(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create challenge", err)
		return
	}

	utils.Success(w, challenge)
}

// UpdateChallenge modifie un challenge. Les dates ne sont volontairement pas
// modifiables : la période conditionne tout le découpage hebdomadaire.
func UpdateChallenge(w http.ResponseWriter, r *http.Request) {
	coach, err := middleware.RequireCoach(r)
	if err != nil {
		utils.Error(w, http.StatusForbidden, "coach role required", err)
		return
	}

	vars := mux.Vars(r)
	challengeID := vars["id"]

	var req updateChallengeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	existing, err := fetchChallenge(r.Context(), challengeID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch challenge", err)
		return
	}
	if existing == nil {
		utils.ErrorSimple(w, http.StatusNotFound, "challenge not found")
		return
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.RequiredSessions != nil {
		existing.RequiredSessions = *req.RequiredSessions
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}
	if req.Tags != nil {
		existing.Tags = req.Tags
	}

	row := database.DB.QueryRow(r.Context(), `
		UPDATE challenges SET
			title = $1, description = $2, required_sessions = $3,
			status = $4, tags = $5, updated_by = $6, updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL
		RETURNING id, title, description, start_date, end_date,
			required_sessions, image_url, participants, status, tags,
			created_by, updated_by, created_at, updated_at
	`, existing.Title, existing.Description, existing.RequiredSessions,
		existing.Status, pq.Array(existing.Tags), coach.ID, challengeID)

	updated, err := scanner.ScanChallenge(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update challenge", err)
		return
	}

	utils.Success(w, updated)
}

// DeleteChallenge supprime (soft delete) un challenge
func DeleteChallenge(w http.ResponseWriter, r *http.Request) {
	coach, err := middleware.RequireCoach(r)
	if err != nil {
		utils.Error(w, http.StatusForbidden, "coach role required", err)
		return
	}

	vars := mux.Vars(r)

	tag, err := database.DB.Exec(r.Context(), `
		UPDATE challenges SET deleted_at = NOW(), deleted_by = $1
		WHERE id = $2 AND deleted_at IS NULL
	`, coach.ID, vars["id"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete challenge", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.ErrorSimple(w, http.StatusNotFound, "challenge not found")
		return
	}

	utils.Message(w, "challenge deleted")
}

// GetChallengeParticipants récupère les inscrits d'un challenge
func GetChallengeParticipants(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["challengeId"]

	rows, err := database.DB.Query(r.Context(), `
		SELECT cp.id, cp.challenge_id, cp.user_id, u.name, cp.joined_at
		FROM challenge_participants cp
		JOIN users u ON u.id = cp.user_id
		WHERE cp.challenge_id = $1 AND u.deleted_at IS NULL
		ORDER BY u.name
	`, challengeID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query participants", err)
		return
	}
	defer rows.Close()

	var participants []model.ChallengeParticipant
	for rows.Next() {
		var p model.ChallengeParticipant
		if err := rows.Scan(&p.ID, &p.ChallengeID, &p.UserID, &p.UserName, &p.JoinedAt); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan participant row", err)
			return
		}
		participants = append(participants, p)
	}

	utils.Success(w, participants)
}
