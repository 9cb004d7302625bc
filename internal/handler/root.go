package handler

import (
	"net/http"

	"github.com/BoostPerformance/fitculator-admin-sub002/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Fitculator Admin API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/login", "description": "Connexion"},
				{"method": "POST", "path": "/auth/signup", "description": "Inscription participant"},
				{"method": "POST", "path": "/auth/logout", "description": "Déconnexion"},
			},
			"users": []map[string]string{
				{"method": "GET", "path": "/users", "description": "Liste des utilisateurs"},
				{"method": "GET", "path": "/users/{id}", "description": "Profil utilisateur"},
				{"method": "POST", "path": "/users/{id}/avatar", "description": "Upload avatar"},
				{"method": "POST", "path": "/users/{id}/diet-photos", "description": "Upload photo de repas"},
			},
			"challenges": []map[string]string{
				{"method": "GET", "path": "/challenges", "description": "Liste des challenges"},
				{"method": "GET", "path": "/challenges/{id}", "description": "Détail d'un challenge"},
				{"method": "POST", "path": "/challenges", "description": "Créer un challenge (coach)"},
				{"method": "PUT", "path": "/challenges/{id}", "description": "Modifier un challenge (coach)"},
				{"method": "DELETE", "path": "/challenges/{id}", "description": "Supprimer un challenge (coach)"},
				{"method": "GET", "path": "/challenges/{challengeId}/participants", "description": "Participants"},
			},
			"engine": []map[string]string{
				{"method": "GET", "path": "/challenges/{challengeId}/weeks", "description": "Découpage hebdomadaire"},
				{"method": "GET", "path": "/challenges/{challengeId}/aggregate", "description": "Accumulateur hebdomadaire (graphiques)"},
				{"method": "GET", "path": "/challenges/{challengeId}/leaderboard", "description": "Classement (metric, week)"},
				{"method": "GET", "path": "/challenges/{challengeId}/leaderboard/users/{userId}", "description": "Rang d'un utilisateur"},
				{"method": "GET", "path": "/challenges/{challengeId}/users/{userId}/completion", "description": "Grille de complétion"},
				{"method": "GET", "path": "/challenges/{challengeId}/users/{userId}/mission-status", "description": "Avancement mission"},
			},
			"records": []map[string]string{
				{"method": "GET", "path": "/categories", "description": "Catégories d'activité"},
				{"method": "GET", "path": "/challenges/{challengeId}/records", "description": "Séances de la période"},
				{"method": "POST", "path": "/records", "description": "Ingestion manuelle (coach)"},
				{"method": "DELETE", "path": "/records/{id}", "description": "Supprimer une séance (coach)"},
			},
			"diet": []map[string]string{
				{"method": "GET", "path": "/challenges/{challengeId}/diet-photos", "description": "Photos de repas à revoir"},
				{"method": "POST", "path": "/diet-photos/{id}/feedback", "description": "Commentaire coach"},
				{"method": "GET", "path": "/diet-photos/{id}/feedback", "description": "Commentaires d'une photo"},
			},
		},
	}

	utils.Success(w, routes)
}
