package model

import (
	"time"
)

// DietPhoto représente une photo de repas envoyée par un participant
type DietPhoto struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	ChallengeID string     `json:"challengeId"`
	PhotoURL    string     `json:"photoUrl"`
	MealType    string     `json:"mealType"` // breakfast, lunch, dinner, snack
	Note        *string    `json:"note,omitempty"`
	TakenAt     time.Time  `json:"takenAt"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// DietFeedback est un commentaire laissé par un coach sur une photo de repas
type DietFeedback struct {
	ID          string    `json:"id"`
	DietPhotoID string    `json:"dietPhotoId"`
	CoachID     string    `json:"coachId"`
	CoachName   string    `json:"coachName"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateDietFeedbackRequest struct {
	Comment string `json:"comment"`
}
