// internal/domain/models/difficulty.go
package models

import "strings"

// Difficulty is the canonical, lower-case difficulty level of a project.
type Difficulty string

// Canonical difficulty identifiers.
//
// The projects file is edited by hand, so input is matched case-insensitively
// and anything unrecognized is treated as DifficultyBeginner.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists the levels in display order.
var Difficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
}

// ParseDifficulty normalizes free-form input to a canonical level.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyIntermediate:
		return DifficultyIntermediate
	case DifficultyAdvanced:
		return DifficultyAdvanced
	default:
		return DifficultyBeginner
	}
}

// Normalize returns d mapped onto a canonical level.
func (d Difficulty) Normalize() Difficulty {
	return ParseDifficulty(string(d))
}

// Class is the badge CSS class for the level.
func (d Difficulty) Class() string {
	return "difficulty-" + string(d.Normalize())
}

// Label is the human-facing badge text ("Beginner", "Intermediate", ...).
func (d Difficulty) Label() string {
	s := string(d.Normalize())
	return strings.ToUpper(s[:1]) + s[1:]
}
