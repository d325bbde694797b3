package gallery

import (
	"context"
	"errors"
	"sync"

	"github.com/dalemusser/dojosite/internal/domain/models"
)

type fakeLoader struct {
	mu       sync.Mutex
	projects []models.Project
	err      error
	calls    int
}

func (f *fakeLoader) Load(ctx context.Context) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.projects, nil
}

func (f *fakeLoader) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recordingView struct {
	renders [][]Card
	errors  []string
}

func (v *recordingView) ShowCards(cards []Card) { v.renders = append(v.renders, cards) }
func (v *recordingView) ShowError(msg string)   { v.errors = append(v.errors, msg) }

func (v *recordingView) last() []Card {
	if len(v.renders) == 0 {
		return nil
	}
	return v.renders[len(v.renders)-1]
}

type fakeEvents struct {
	filter func(string)
	search func(string)
}

func (e *fakeEvents) OnFilter(fn func(string)) { e.filter = fn }
func (e *fakeEvents) OnSearch(fn func(string)) { e.search = fn }

var errUnreachable = errors.New("dial tcp: connection refused")

// scenarioProjects is the two-project fixture used across the scenarios.
func scenarioProjects() []models.Project {
	return []models.Project{
		{
			ID:          "1",
			Title:       "Maze Game",
			Description: "Guide the cat through a maze",
			Language:    "Scratch",
			Age:         "Sam, 9",
			Icon:        "🎮",
			Difficulty:  models.ParseDifficulty("Beginner"),
			Tags:        []string{"game"},
		},
		{
			ID:          "2",
			Title:       "Weather App",
			Description: "Shows the forecast for Banbridge",
			Language:    "Python",
			Age:         "Alex, 13",
			Icon:        "☀️",
			Difficulty:  models.ParseDifficulty("Intermediate"),
			Tags:        []string{"api"},
		},
	}
}

func titles(ps []models.Project) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}
