package model

// Game is the single in-progress or completed guessing round for a user.
// Starting or restarting replaces the entry outright; no history is kept.
type Game struct {
	Username     string `json:"username"`
	SecretNumber int    `json:"secret_number"`
	Attempts     int    `json:"attempts"`
	Completed    bool   `json:"completed"`
}

// Hint indicates where the secret lies relative to a wrong guess
type Hint string

const (
	// HintGreater means the secret is greater than the guess
	HintGreater Hint = "greater"
	// HintLesser means the secret is less than the guess
	HintLesser Hint = "lesser"
)

// GuessResult is the outcome of a single guess against an active game
type GuessResult struct {
	Won           bool
	Hint          Hint // set only when Won is false
	Attempts      int
	PointsAwarded int // set only when Won is true
}
