package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config regroupe toute la configuration du serveur, chargée depuis l'environnement
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Fuseau appliqué aux timestamps des séances avant extraction du jour
	// calendaire. La base utilisateurs est mono-région (UTC+9), mais l'offset
	// reste configurable pour ne pas enterrer la constante dans le moteur.
	EngineUTCOffsetHours int

	// Objectif hebdomadaire de séances de renfo appliqué quand le challenge
	// n'en définit pas
	DefaultRequiredSessions int
}

// LoadConfig lit la configuration depuis les variables d'environnement
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "fitculator"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		EngineUTCOffsetHours:    getEnvInt("ENGINE_UTC_OFFSET_HOURS", 9),
		DefaultRequiredSessions: getEnvInt("DEFAULT_REQUIRED_SESSIONS", 3),
	}

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// EngineLocation retourne le fuseau fixe utilisé par le moteur d'agrégation
func (c *Config) EngineLocation() *time.Location {
	name := fmt.Sprintf("UTC%+d", c.EngineUTCOffsetHours)
	return time.FixedZone(name, c.EngineUTCOffsetHours*3600)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
