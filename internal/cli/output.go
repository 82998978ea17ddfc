package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case LoginResult:
		o.printLoginResult(v)
	case StatusResult:
		o.printStatusResult(v)
	case StatsResult:
		o.printStatsResult(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// MessageResult response type (matches API)
type MessageResult struct {
	Message string `json:"message"`
}

// LoginResult response type
type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// StatusResult response type
type StatusResult struct {
	Intentos   int  `json:"intentos"`
	Completado bool `json:"completado"`
}

// StatsResult response type
type StatsResult struct {
	PartidasJugadas int `json:"partidas_jugadas"`
	Puntos          int `json:"puntos"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Usuario         string `json:"usuario"`
	Puntos          int    `json:"puntos"`
	PartidasJugadas int    `json:"partidas_jugadas"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printLoginResult(l LoginResult) {
	fmt.Println(l.Message)
	fmt.Printf("Token: %s\n", l.Token)
}

func (o *Output) printStatusResult(s StatusResult) {
	completedStr := "no"
	if s.Completado {
		completedStr = "sí"
	}
	fmt.Printf("Intentos: %d\n", s.Intentos)
	fmt.Printf("Completado: %s\n", completedStr)
}

func (o *Output) printStatsResult(s StatsResult) {
	fmt.Printf("Partidas jugadas: %d\n", s.PartidasJugadas)
	fmt.Printf("Puntos: %d\n", s.Puntos)
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("No hay jugadores en el ranking")
		return
	}

	for i, e := range entries {
		fmt.Printf("%2d. %s - %d puntos (%d partidas)\n", i+1, e.Usuario, e.Puntos, e.PartidasJugadas)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
