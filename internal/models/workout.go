package model

import (
	"time"
)

// ActivityKind distingue les deux familles d'activités agrégées par le moteur
type ActivityKind string

const (
	ActivityCardio   ActivityKind = "CARDIO"
	ActivityStrength ActivityKind = "STRENGTH"
)

// ActivityCategory est la table de référence statique catégorie → type.
// Lecture seule pour le moteur d'agrégation.
type ActivityCategory struct {
	ID   string       `json:"id"`
	Type ActivityKind `json:"type"`
	Name string       `json:"name"`
}

// WorkoutRecord est une séance brute ingérée depuis l'intégration de tracking.
// Lecture seule pour le moteur d'agrégation.
type WorkoutRecord struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	CategoryID      string    `json:"categoryId"`
	Timestamp       time.Time `json:"timestamp"`
	DurationMinutes int       `json:"durationMinutes"`
	Points          float64   `json:"points"`
	DistanceKm      *float64  `json:"distanceKm,omitempty"`
}
