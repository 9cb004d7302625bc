package handler

import (
	"errors"
	"net/http"

	"github.com/BoostPerformance/fitculator-admin-sub002/internal/database"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/middleware"
	model "github.com/BoostPerformance/fitculator-admin-sub002/internal/models"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/scanner"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/utils"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

// GetUsers récupère la liste des utilisateurs (dashboard coach)
func GetUsers(w http.ResponseWriter, r *http.Request) {
	rows, err := database.DB.Query(r.Context(), `
		SELECT
			id, name, email, avatar, role, goal,
			join_date, created_at, updated_at, created_by, updated_by
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY name
	`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query users", err)
		return
	}
	defer rows.Close()

	var users []model.UserProfile
	for rows.Next() {
		user, err := scanner.ScanUserProfile(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan user row", err)
			return
		}
		users = append(users, *user)
	}

	utils.Success(w, users)
}

// GetUser récupère un utilisateur par id
func GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	row := database.DB.QueryRow(r.Context(), `
		SELECT
			id, name, email, avatar, role, goal,
			join_date, created_at, updated_at, created_by, updated_by
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`, userID)

	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.ErrorSimple(w, http.StatusNotFound, "user not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not fetch user", err)
		return
	}

	utils.Success(w, user)
}

// UploadAvatar envoie l'avatar sur Cloudinary et met à jour le profil
func UploadAvatar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	authUser, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}
	if authUser.ID != userID && !authUser.IsCoach() {
		utils.ErrorSimple(w, http.StatusForbidden, "cannot update another user's avatar")
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

	file, _, err := r.FormFile("avatar")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing avatar file", err)
		return
	}
	defer file.Close()

	url, err := cloudinary.UploadAvatar(r.Context(), file, userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload avatar", err)
		return
	}

	_, err = database.DB.Exec(r.Context(), `
		UPDATE users SET avatar = $1, updated_at = NOW(), updated_by = $2
		WHERE id = $3 AND deleted_at IS NULL
	`, url, authUser.ID, userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save avatar url", err)
		return
	}

	utils.Success(w, map[string]string{"avatar": url})
}
