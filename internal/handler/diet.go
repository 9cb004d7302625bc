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

// UploadDietPhoto reçoit une photo de repas en multipart, l'envoie sur
// Cloudinary et enregistre la ligne pour la revue des coachs
func UploadDietPhoto(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	authUser, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}
	if authUser.ID != userID {
		utils.ErrorSimple(w, http.StatusForbidden, "cannot upload a photo for another user")
		return
	}

	if cloudinary == nil {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "image upload is not configured")
		return
	}

	// 10 Mo max
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing photo file", err)
		return
	}
	defer file.Close()

	challengeID := r.FormValue("challengeId")
	mealType := r.FormValue("mealType")
	if challengeID == "" || mealType == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "challengeId and mealType are required")
		return
	}

	takenAt := time.Now()
	if raw := r.FormValue("takenAt"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			takenAt = parsed
		}
	}

	photoID := uuid.NewString()
	url, err := cloudinary.UploadDietPhoto(r.Context(), file, photoID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload photo", err)
		return
	}

	var note *string
	if raw := r.FormValue("note"); raw != "" {
		note = &raw
	}

	row := database.DB.QueryRow(r.Context(), `
		INSERT INTO diet_photos(id, user_id, challenge_id, photo_url, meal_type, note, taken_at, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, user_id, challenge_id, photo_url, meal_type, note, taken_at, reviewed_at, created_at
	`, photoID, userID, challengeID, url, mealType, note, takenAt)

	photo, err := scanner.ScanDietPhoto(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save diet photo", err)
		return
	}

	utils.Success(w, photo)
}

// GetChallengeDietPhotos récupère les photos de repas d'un challenge pour la
// revue coach. ?userId= filtre sur un participant.
func GetChallengeDietPhotos(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["challengeId"]
	userFilter := r.URL.Query().Get("userId")

	query := `
		SELECT id, user_id, challenge_id, photo_url, meal_type, note, taken_at, reviewed_at, created_at
		FROM diet_photos
		WHERE challenge_id = $1`
	args := []interface{}{challengeID}

	if userFilter != "" {
		query += ` AND user_id = $2`
		args = append(args, userFilter)
	}
	query += ` ORDER BY taken_at DESC`

	rows, err := database.DB.Query(r.Context(), query, args...)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query diet photos", err)
		return
	}
	defer rows.Close()

	var photos []model.DietPhoto
	for rows.Next() {
		photo, err := scanner.ScanDietPhoto(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan diet photo row", err)
			return
		}
		photos = append(photos, *photo)
	}

	utils.Success(w, photos)
}

// CreateDietFeedback enregistre le commentaire d'un coach sur une photo de
// repas et marque la photo comme revue
func CreateDietFeedback(w http.ResponseWriter, r *http.Request) {
	coach, err := middleware.RequireCoach(r)
	if err != nil {
		utils.Error(w, http.StatusForbidden, "coach role required", err)
		return
	}

	vars := mux.Vars(r)
	photoID := vars["id"]

	var req model.CreateDietFeedbackRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if req.Comment == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "comment is required")
		return
	}

	var feedback model.DietFeedback
	err = database.DB.QueryRow(r.Context(), `
		INSERT INTO diet_feedback(id, diet_photo_id, coach_id, comment, created_at)
		VALUES($1, $2, $3, $4, NOW())
		RETURNING id, diet_photo_id, coach_id, comment, created_at
	`, uuid.NewString(), photoID, coach.ID, req.Comment).Scan(
		&feedback.ID, &feedback.DietPhotoID, &feedback.CoachID, &feedback.Comment, &feedback.CreatedAt,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save feedback", err)
		return
	}
	feedback.CoachName = coach.Name

	_, err = database.DB.Exec(r.Context(), `
		UPDATE diet_photos SET reviewed_at = NOW() WHERE id = $1 AND reviewed_at IS NULL
	`, photoID)
	if err != nil {
		utils.LogError("could not mark diet photo %s as reviewed: %v", photoID, err)
	}

	utils.Success(w, feedback)
}

// GetDietFeedback récupère les commentaires coach d'une photo de repas
func GetDietFeedback(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	photoID := vars["id"]

	rows, err := database.DB.Query(r.Context(), `
		SELECT df.id, df.diet_photo_id, df.coach_id, u.name, df.comment, df.created_at
		FROM diet_feedback df
		JOIN users u ON u.id = df.coach_id
		WHERE df.diet_photo_id = $1
		ORDER BY df.created_at
	`, photoID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query feedback", err)
		return
	}
	defer rows.Close()

	var feedbacks []model.DietFeedback
	for rows.Next() {
		var f model.DietFeedback
		if err := rows.Scan(&f.ID, &f.DietPhotoID, &f.CoachID, &f.CoachName, &f.Comment, &f.CreatedAt); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan feedback row", err)
			return
		}
		feedbacks = append(feedbacks, f)
	}

	utils.Success(w, feedbacks)
}
