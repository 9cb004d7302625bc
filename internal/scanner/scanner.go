package scanner

import (
	"database/sql"

	model "github.com/BoostPerformance/fitculator-admin-sub002/internal/models"
	"github.com/BoostPerformance/fitculator-admin-sub002/internal/utils"
	"github.com/lib/pq"
)

// rowScanner couvre pgx.Row et pgx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanUserProfile scanne une ligne SQL vers un UserProfile
// Utilise les types sql.Null* et les convertit automatiquement
func ScanUserProfile(scanner rowScanner) (*model.UserProfile, error) {
	var user model.UserProfile
	var avatar, goal sql.NullString
	var updatedBy sql.NullString

	err := scanner.Scan(
		&user.ID, &user.Name, &user.Email, &avatar, &user.Role, &goal,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
		&user.CreatedBy, &updatedBy,
	)
	if err != nil {
		return nil, err
	}

	user.Avatar = utils.NullStringToString(avatar)
	user.Goal = utils.NullStringToString(goal)
	user.UpdatedBy = utils.NullStringToPointer(updatedBy)

	return &user, nil
}

// ScanChallenge scanne une ligne SQL vers un Challenge avec pq.Array pour les tags
func ScanChallenge(scanner rowScanner) (*model.Challenge, error) {
	var c model.Challenge

	err := scanner.Scan(
		&c.ID, &c.Title, &c.Description, &c.StartDate, &c.EndDate,
		&c.RequiredSessions, &c.ImageURL, &c.Participants, &c.Status,
		pq.Array(&c.Tags),
		&c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// ScanWorkoutRecord scanne une ligne SQL vers un WorkoutRecord
func ScanWorkoutRecord(scanner rowScanner) (*model.WorkoutRecord, error) {
	var record model.WorkoutRecord
	var distance sql.NullFloat64

	err := scanner.Scan(
		&record.ID, &record.UserID, &record.CategoryID, &record.Timestamp,
		&record.DurationMinutes, &record.Points, &distance,
	)
	if err != nil {
		return nil, err
	}

	record.DistanceKm = utils.NullFloat64ToPointer(distance)

	return &record, nil
}

// ScanActivityCategory scanne une ligne SQL vers un ActivityCategory
func ScanActivityCategory(scanner rowScanner) (*model.ActivityCategory, error) {
	var category model.ActivityCategory
	var kind string

	err := scanner.Scan(&category.ID, &kind, &category.Name)
	if err != nil {
		return nil, err
	}

	category.Type = model.ActivityKind(kind)

	return &category, nil
}

// ScanDietPhoto scanne une ligne SQL vers un DietPhoto
func ScanDietPhoto(scanner rowScanner) (*model.DietPhoto, error) {
	var photo model.DietPhoto
	var note sql.NullString
	var reviewedAt sql.NullTime

	err := scanner.Scan(
		&photo.ID, &photo.UserID, &photo.ChallengeID, &photo.PhotoURL,
		&photo.MealType, &note, &photo.TakenAt, &reviewedAt, &photo.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	photo.Note = utils.NullStringToPointer(note)
	photo.ReviewedAt = utils.NullTimeToPointer(reviewedAt)

	return &photo, nil
}
