// internal/app/system/gallery/predicate.go
package gallery

import (
	"strings"

	"github.com/dalemusser/dojosite/internal/domain/models"
)

// predicate tracks which input last changed the visible set.
type predicate int

const (
	predFilter predicate = iota
	predSearch
)

// fold lowercases s. Whitespace and accents stay significant; callers that
// want trimming do it before handing input to the controller.
func fold(s string) string { return strings.ToLower(s) }

// matchesFilter reports whether p matches a folded filter token exactly on
// difficulty, language, or any tag. The difficulty is compared normalized so
// the filter agrees with the badge the card shows.
func matchesFilter(p models.Project, token string) bool {
	if token == FilterAll {
		return true
	}
	if string(p.Difficulty.Normalize()) == token || fold(p.Language) == token {
		return true
	}
	for _, tag := range p.Tags {
		if fold(tag) == token {
			return true
		}
	}
	return false
}

// matchesSearch reports whether a folded term occurs in the title, language,
// description or any tag of p.
func matchesSearch(p models.Project, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(fold(p.Title), term) ||
		strings.Contains(fold(p.Language), term) ||
		strings.Contains(fold(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(fold(tag), term) {
			return true
		}
	}
	return false
}

// selectProjects returns the projects of all that satisfy keep, in order.
// The result never aliases all.
func selectProjects(all []models.Project, keep func(models.Project) bool) []models.Project {
	out := make([]models.Project, 0, len(all))
	for _, p := range all {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
