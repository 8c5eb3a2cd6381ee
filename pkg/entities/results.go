package entities

import "time"

// ResultRow is a single label/value pair in a simulation results table.
// The engine produces an ordered slice of these; rendering is left to
// the presentation layer.
type ResultRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// RunResult captures the outcome of one completed simulation run.
type RunResult struct {
	ID               string      `json:"id"`
	Strategy         string      `json:"strategy"`
	Games            int         `json:"games"`
	StartingBankroll float64     `json:"starting_bankroll"`
	FinalBankroll    float64     `json:"final_bankroll"`
	Rows             []ResultRow `json:"rows"`
	CompletedAt      time.Time   `json:"completed_at"`
}
