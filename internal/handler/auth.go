package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/BoostPerformance/fitculator-admin-sub002/internal/database"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/middleware"
	model "github.com/BoostPerformance/fitculator-admin-sub002/internal/models"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Login authentifie un membre du staff ou un participant et ouvre une session
func Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	ctx := r.Context()

	var user model.UserProfile
	var passwordHash string
	err := database.DB.QueryRow(ctx, `
		SELECT id, name, email, role, password_hash, join_date, created_at, updated_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`, req.Email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Role, &passwordHash,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not fetch user", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)) != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := openSession(ctx, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, model.AuthResponse{User: &user, Token: token})
}

// Signup crée un compte participant et ouvre une session
func Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		utils.ErrorSimple(w, http.StatusBadRequest, "name, email and a password of at least 8 characters are required")
		return
	}

	// Seul un admin peut créer un compte coach, l'inscription publique reste membre
	role := "member"

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password", err)
		return
	}

	ctx := r.Context()

	var user model.UserProfile
	err = database.DB.QueryRow(ctx, `
		INSERT INTO users(id, name, email, role, password_hash, join_date, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, NOW(), NOW(), NOW())
		RETURNING id, name, email, role, join_date, created_at, updated_at
	`, uuid.NewString(), req.Name, req.Email, role, string(hash)).Scan(
		&user.ID, &user.Name, &user.Email, &user.Role,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		utils.Error(w, http.StatusConflict, "could not create user (email already used?)", err)
		return
	}

	token, err := openSession(ctx, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, model.AuthResponse{User: &user, Token: token})
}

// Logout révoque la session courante
func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.GetTokenFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "no active session", err)
		return
	}

	_, err = database.DB.Exec(r.Context(), `
		UPDATE sessions SET is_active = false WHERE token = $1
	`, token)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not revoke session", err)
		return
	}

	utils.Message(w, "logged out")
}

// openSession insère une session active de 30 jours et retourne son token
func openSession(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	_, err := database.DB.Exec(ctx, `
		INSERT INTO sessions(token, user_id, is_active, expires_at, created_at)
		VALUES($1, $2, true, $3, NOW())
	`, token, userID, time.Now().AddDate(0, 0, 30))
	if err != nil {
		return "", err
	}
	return token, nil
}
