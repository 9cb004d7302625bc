package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/BoostPerformance/fitculator-admin-sub002/internal/config"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/database"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/engine"
	model "github.com/BoostPerformance/fitculator-admin-sub002/internal/models"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/scanner"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/services"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/utils"
	"github.com/jackc/pgx/v5"
)

// Dépendances partagées par tous les handlers, injectées au démarrage
var (
	appConfig  *config.Config
	engineLoc  *time.Location
	cloudinary *services.CloudinaryService
)

// Setup injecte la configuration et les services dans le package handler
func Setup(cfg *config.Config, cld *services.CloudinaryService) {
	appConfig = cfg
	engineLoc = cfg.EngineLocation()
	cloudinary = cld
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}

// fetchChallenge charge un challenge par id, nil si introuvable
func fetchChallenge(ctx context.Context, challengeID string) (*model.Challenge, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT
			id, title, description, start_date, end_date,
			required_sessions, image_url, participants, status, tags,
			created_by, updated_by, created_at, updated_at
		FROM challenges
		WHERE id = $1 AND deleted_at IS NULL
	`, challengeID)

	challenge, err := scanner.ScanChallenge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return challenge, nil
}

// fetchChallengeRecords charge toutes les séances de la période du challenge
// pour ses participants. Jeu borné : le moteur ne pagine jamais.
func fetchChallengeRecords(ctx context.Context, challenge *model.Challenge) ([]model.WorkoutRecord, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT
			wr.id, wr.user_id, wr.category_id, wr.recorded_at,
			wr.duration_minutes, wr.points, wr.distance_km
		FROM workout_records wr
		JOIN challenge_participants cp
			ON cp.user_id = wr.user_id AND cp.challenge_id = $1
		WHERE wr.recorded_at >= $2
			AND wr.recorded_at < $3
			AND wr.deleted_at IS NULL
	`, challenge.ID, challenge.StartDate.AddDate(0, 0, -1), challenge.EndDate.AddDate(0, 0, 2))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.WorkoutRecord
	for rows.Next() {
		record, err := scanner.ScanWorkoutRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// fetchCategoryLookup charge la table de référence catégorie → type
func fetchCategoryLookup(ctx context.Context) (engine.CategoryLookup, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, type, name FROM activity_categories
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.ActivityCategory
	for rows.Next() {
		category, err := scanner.ScanActivityCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return engine.NewCategoryLookup(categories), nil
}

// fetchUserNames charge la table id → nom d'affichage des participants
func fetchUserNames(ctx context.Context, challengeID string) (map[string]string, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT u.id, u.name
		FROM users u
		JOIN challenge_participants cp ON cp.user_id = u.id
		WHERE cp.challenge_id = $1 AND u.deleted_at IS NULL
	`, challengeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

// challengeAggregation regroupe tout ce que les écrans du moteur consomment
type challengeAggregation struct {
	challenge *model.Challenge
	weeks     []model.WeekWindow
	acc       engine.Accumulator
}

// aggregateChallenge exécute le pipeline complet : fetch borné → semaines →
// classification → accumulateur. Les enregistrements de catégorie inconnue
// sont journalisés et ignorés, jamais bloquants.
func aggregateChallenge(ctx context.Context, challengeID string) (*challengeAggregation, error) {
	challenge, err := fetchChallenge(ctx, challengeID)
	if err != nil || challenge == nil {
		return nil, err
	}

	weeks, err := engine.GenerateWeeks(challenge.Period())
	if err != nil {
		return nil, err
	}

	records, err := fetchChallengeRecords(ctx, challenge)
	if err != nil {
		return nil, err
	}

	lookup, err := fetchCategoryLookup(ctx)
	if err != nil {
		return nil, err
	}

	acc, skipped := engine.Aggregate(records, weeks, lookup, engineLoc)
	for _, record := range skipped {
		utils.LogInfo("skipping record %s: unknown category %s", record.ID, record.CategoryID)
	}

	return &challengeAggregation{challenge: challenge, weeks: weeks, acc: acc}, nil
}

// requiredSessionsFor retourne l'objectif hebdomadaire du challenge, ou la
// valeur par défaut de la configuration quand il n'en définit pas
func requiredSessionsFor(challenge *model.Challenge) int {
	if challenge.RequiredSessions > 0 {
		return challenge.RequiredSessions
	}
	return appConfig.DefaultRequiredSessions
}
