// Package models holds the request/response and persistence shapes for
// the waffle HTTP service: validate/solve/swap requests, the diagnostics
// the engine produces, run telemetry, and the admin account that guards
// the service's mutating endpoints.
package models

import "time"

// AdminUser is the single operator account allowed to hit the service's
// mutating admin endpoints (dictionary reload, cache clear).
type AdminUser struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidateRequest carries the puzzle strings to check, in the 42-char
// grid.Grid serialised form. ExpectedMinSwaps and DictionaryPath are
// accepted but not read: validation always uses the loaded dictionary
// and the validator's fixed minimum-swap target.
type ValidateRequest struct {
	Puzzles          []string `json:"puzzles" binding:"required"`
	ExpectedMinSwaps *int     `json:"expectedMinSwaps,omitempty"`
	DictionaryPath   string   `json:"dictionaryPath,omitempty"`
}

// DiagnosticDTO is the wire form of one internal/validator.Message.
type DiagnosticDTO struct {
	PuzzleNumber int    `json:"puzzleNumber"`
	Kind         string `json:"kind"`
	Detail       string `json:"detail"`
}

// ValidateResponse is what POST /v1/validate returns: every diagnostic
// raised across the submitted puzzles, grouped in ascending puzzle
// order exactly as internal/validator.Run produces them.
type ValidateResponse struct {
	RunID       string          `json:"runId"`
	PuzzleCount int             `json:"puzzleCount"`
	Diagnostics []DiagnosticDTO `json:"diagnostics"`
	DurationMs  int64           `json:"durationMs"`
}

// SolveRequest carries a partially-fixed grid in the five-line textual
// form (spec §6) to enumerate via pkg/gridsolver. DictionaryPath is
// accepted but not read; the loaded dictionary is always used.
type SolveRequest struct {
	Grid           string `json:"grid" binding:"required"`
	DictionaryPath string `json:"dictionaryPath,omitempty"`
	Limit          int    `json:"limit,omitempty"` // 0 or less = default of 50
}

// SolveResponse returns every enumerated solution grid, each in the
// five-line textual form.
type SolveResponse struct {
	RunID     string   `json:"runId"`
	Solutions []string `json:"solutions"`
	Truncated bool     `json:"truncated"`
}

// SwapRequest carries the two equal-length, equal-multiset letter
// sequences pkg/swapsolver maps one to the other.
type SwapRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// SwapPairDTO is one (i, j) index pair in a swap solution.
type SwapPairDTO struct {
	A int `json:"a"`
	B int `json:"b"`
}

// SwapResponse returns the swap-solver's result.
type SwapResponse struct {
	RunID      string        `json:"runId"`
	Swaps      []SwapPairDTO `json:"swaps"`
	Unsolvable bool          `json:"unsolvable"`
}

// Run is one validate, solve or swaps request's telemetry row: what was checked,
// how much was found, and how long it took. This is run history, not
// player state — no puzzle solution or user progress is recorded here.
type Run struct {
	ID              string    `json:"id"`
	Kind            string    `json:"kind"` // "validate", "solve", "swaps"
	PuzzleCount     int       `json:"puzzleCount"`
	DiagnosticCount int       `json:"diagnosticCount"`
	DurationMs      int64     `json:"durationMs"`
	CreatedAt       time.Time `json:"createdAt"`
}
