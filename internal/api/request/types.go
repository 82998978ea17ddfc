package request

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	Usuario  string `json:"usuario"`
	Correo   string `json:"correo"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// GuessRequest is the request body for submitting a guess.
// Numero is a pointer to distinguish a missing field from a zero guess.
type GuessRequest struct {
	Numero *int `json:"numero"`
}
