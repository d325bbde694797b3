// internal/app/system/gallery/card.go
package gallery

import (
	"html/template"
	"strings"
	"unicode"

	"github.com/dalemusser/dojosite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/dojosite/internal/domain/models"
)

// CardKind distinguishes project cards from the empty-result placeholder.
type CardKind string

const (
	CardProject   CardKind = "project"
	CardNoResults CardKind = "no-results"
)

// Card is the display descriptor for one project, or the placeholder shown
// when nothing matches.
type Card struct {
	Kind CardKind `json:"kind"`

	ID              string            `json:"id,omitempty"`
	Title           string            `json:"title"`
	LanguageLabel   string            `json:"language_label,omitempty"`
	AgeLabel        string            `json:"age_label,omitempty"`
	Description     string            `json:"description"`
	DescriptionHTML template.HTML     `json:"-"`
	Icon            string            `json:"icon,omitempty"`
	Difficulty      models.Difficulty `json:"difficulty,omitempty"`
	DifficultyLabel string            `json:"difficulty_label,omitempty"`
	DifficultyClass string            `json:"difficulty_class,omitempty"`
	Tags            []string          `json:"tags,omitempty"`
	Href            string            `json:"href,omitempty"`
}

// IsPlaceholder reports whether c is the "no results" card.
func (c Card) IsPlaceholder() bool { return c.Kind == CardNoResults }

// NoResultsCard is the single card rendered for an empty visible set.
func NoResultsCard() Card {
	return Card{
		Kind:        CardNoResults,
		Title:       "No projects found",
		Description: "Try adjusting your search or filter criteria.",
	}
}

func projectCard(p models.Project, basePath string) Card {
	tags := make([]string, len(p.Tags))
	copy(tags, p.Tags)

	return Card{
		Kind:            CardProject,
		ID:              p.ID.String(),
		Title:           p.Title,
		LanguageLabel:   "Made with " + p.Language,
		AgeLabel:        "Created by " + p.Age,
		Description:     p.Description,
		DescriptionHTML: htmlsanitize.Description(p.Description),
		Icon:            p.Icon,
		Difficulty:      p.Difficulty.Normalize(),
		DifficultyLabel: p.Difficulty.Label(),
		DifficultyClass: p.Difficulty.Class(),
		Tags:            tags,
		Href:            basePath + NavSlug(p.Title),
	}
}

// NavSlug derives a card's navigation target from its title: lower-cased,
// whitespace runs collapsed to one "-", anything outside [a-z0-9-] removed,
// and a trailing "/" appended.
//
//	NavSlug("Maze Game!")   // "maze-game/"
//	NavSlug("  Robot  Arm") // "-robot-arm/"
func NavSlug(title string) string {
	var b strings.Builder
	b.Grow(len(title) + 1)

	inSpace := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	b.WriteByte('/')
	return b.String()
}
