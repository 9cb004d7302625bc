package model

import (
	"database/sql"
	"time"
)

type Challenge struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	StartDate        time.Time      `json:"startDate"`
	EndDate          time.Time      `json:"endDate"`
	RequiredSessions int            `json:"requiredSessions"` // Séances de renfo exigées par semaine
	ImageURL         sql.NullString `json:"imageUrl,omitempty"`
	Participants     int            `json:"participants"`
	Status           string         `json:"status"` // upcoming, active, closed
	Tags             []string       `json:"tags,omitempty"`
	CreatedBy        sql.NullString `json:"createdBy,omitempty"`
	UpdatedBy        sql.NullString `json:"updatedBy,omitempty"`
	DeletedBy        sql.NullString `json:"deletedBy,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        sql.NullTime   `json:"deletedAt,omitempty"`
}

// ChallengePeriod représente la plage de dates d'un challenge.
// Immuable une fois le challenge créé.
type ChallengePeriod struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Period retourne la plage de dates du challenge
func (c *Challenge) Period() ChallengePeriod {
	return ChallengePeriod{StartDate: c.StartDate, EndDate: c.EndDate}
}

// ChallengeParticipant représente l'inscription d'un utilisateur à un challenge
type ChallengeParticipant struct {
	ID          string    `json:"id"`
	ChallengeID string    `json:"challengeId"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	JoinedAt    time.Time `json:"joinedAt"`
}
