package utils

import (
	"database/sql"
	"strings"
	"time"
)

// Conversions des types sql.Null* vers les types Go natifs

func NullStringToString(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

func NullStringToPointer(v sql.NullString) *string {
	if v.Valid {
		return &v.String
	}
	return nil
}

func NullInt64ToInt(v sql.NullInt64) int {
	if v.Valid {
		return int(v.Int64)
	}
	return 0
}

func NullFloat64ToFloat64(v sql.NullFloat64) float64 {
	if v.Valid {
		return v.Float64
	}
	return 0
}

func NullFloat64ToPointer(v sql.NullFloat64) *float64 {
	if v.Valid {
		return &v.Float64
	}
	return nil
}

func NullTimeToPointer(v sql.NullTime) *time.Time {
	if v.Valid {
		return &v.Time
	}
	return nil
}

// NullStringToStringArray découpe une liste séparée par des virgules
func NullStringToStringArray(v sql.NullString) []string {
	if !v.Valid || v.String == "" {
		return nil
	}
	parts := strings.Split(v.String, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
