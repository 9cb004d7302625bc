package model

import (
	"time"
)

// DateFields contient les champs d'audit standard pour toutes les entités
type DateFields struct {
	CreatedBy *string   `json:"createdBy,omitempty"`
	UpdatedBy *string   `json:"updatedBy,omitempty"`
	DeletedAt time.Time `json:"deletedAt,omitempty"`
	DeletedBy *string   `json:"deletedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type UserProfile struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Avatar   string    `json:"avatar,omitempty"`
	Role     string    `json:"role"` // member, coach, admin
	Goal     string    `json:"goal,omitempty"`
	JoinDate time.Time `json:"joinDate,omitempty"`
	DateFields
}

// IsCoach indique si l'utilisateur fait partie du staff coaching
func (u *UserProfile) IsCoach() bool {
	return u.Role == "coach" || u.Role == "admin"
}

// AuthResponse représente la réponse complète lors de l'authentification
type AuthResponse struct {
	User  *UserProfile `json:"user"`
	Token string       `json:"token"`
}

// UserCreator contient les informations de l'utilisateur créateur d'une entité
type UserCreator struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}
