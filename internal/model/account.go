package model

// Account is the persisted identity and cumulative score record for a user.
// The password is stored as provided and compared by equality on login; this
// service is deliberately not a hardened credential store.
type Account struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	GamesPlayed int    `json:"games_played"`
	Points      int    `json:"points"`
}
