package model

// LeaderboardEntry is a derived projection of an Account used for ranking.
// It is never a source of truth; the cached top-10 is rebuilt from all
// accounts whenever points change.
type LeaderboardEntry struct {
	Username    string `json:"username"`
	Points      int    `json:"points"`
	GamesPlayed int    `json:"games_played"`
}
