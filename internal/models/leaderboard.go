package model

// LeaderboardEntry est une ligne du classement d'une période (une semaine ou
// le challenge entier). Rank est positionnel 1-based : deux valeurs égales
// reçoivent des rangs consécutifs distincts, départagés par userId croissant.
type LeaderboardEntry struct {
	UserID      string  `json:"userId"`
	UserName    string  `json:"userName"`
	MetricValue float64 `json:"metricValue"`
	Rank        int     `json:"rank"`
}

// UserRank situe un utilisateur dans le classement global d'une période
type UserRank struct {
	UserID      string  `json:"userId"`
	Rank        int     `json:"rank"`
	MetricValue float64 `json:"metricValue"`
	TotalUsers  int     `json:"totalUsers"`
	Percentile  float64 `json:"percentile"` // Top X%
}
