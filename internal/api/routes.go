package api

import (
	"net/http"

	"github.com/BoostPerformance/fitculator-admin-sub002/internal/handler"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/middleware"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Users
	r.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/users/{id}/avatar", handler.UploadAvatar).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/users/{id}/diet-photos", handler.UploadDietPhoto).Methods(http.MethodPost)

	// Challenges
	r.HandleFunc("/challenges", handler.GetChallenges).Methods(http.MethodGet)
	r.HandleFunc("/challenges/{id}", handler.GetChallengeById).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/challenges", handler.CreateChallenge).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/challenges/{id}", handler.UpdateChallenge).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/challenges/{id}", handler.DeleteChallenge).Methods(http.MethodDelete)
	r.HandleFunc("/challenges/{challengeId}/participants", handler.GetChallengeParticipants).Methods(http.MethodGet)

	// Moteur d'agrégation : semaines, accumulateur, classement, complétion
	r.HandleFunc("/challenges/{challengeId}/weeks", handler.GetChallengeWeeks).Methods(http.MethodGet)
	r.HandleFunc("/challenges/{challengeId}/aggregate", handler.GetChallengeAggregate).Methods(http.MethodGet)
	r.HandleFunc("/challenges/{challengeId}/leaderboard", handler.GetChallengeLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/challenges/{challengeId}/leaderboard/users/{userId}", handler.GetChallengeUserRank).Methods(http.MethodGet)
	r.HandleFunc("/challenges/{challengeId}/users/{userId}/completion", handler.GetUserCompletion).Methods(http.MethodGet)
	r.HandleFunc("/challenges/{challengeId}/users/{userId}/mission-status", handler.GetUserMissionStatus).Methods(http.MethodGet)

	// Séances brutes et catégories
	r.HandleFunc("/categories", handler.GetCategories).Methods(http.MethodGet)
	r.HandleFunc("/challenges/{challengeId}/records", handler.GetChallengeRecords).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/records", handler.CreateRecord).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/records/{id}", handler.DeleteRecord).Methods(http.MethodDelete)

	// Revue diététique
	r.HandleFunc("/challenges/{challengeId}/diet-photos", handler.GetChallengeDietPhotos).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/diet-photos/{id}/feedback", handler.CreateDietFeedback).Methods(http.MethodPost)
	r.HandleFunc("/diet-photos/{id}/feedback", handler.GetDietFeedback).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
