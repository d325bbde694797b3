package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dalemusser/dojosite/internal/domain/models"
)

// ProjectsJSON is a small projects file in the format the site loads.
const ProjectsJSON = `[
  {"id": 1, "title": "Maze Game", "description": "Guide the cat through a maze",
   "language": "Scratch", "age": "Sam, 9", "icon": "🎮", "difficulty": "Beginner", "tags": ["game"]},
  {"id": 2, "title": "Weather App", "description": "Shows the forecast for Banbridge",
   "language": "Python", "age": "Alex, 13", "icon": "☀️", "difficulty": "Intermediate", "tags": ["api"]}
]`

// Projects returns the records described by ProjectsJSON, as loaded.
func Projects() []models.Project {
	return []models.Project{
		{
			ID:          "1",
			Title:       "Maze Game",
			Description: "Guide the cat through a maze",
			Language:    "Scratch",
			Age:         "Sam, 9",
			Icon:        "🎮",
			Difficulty:  models.DifficultyBeginner,
			Tags:        []string{"game"},
		},
		{
			ID:          "2",
			Title:       "Weather App",
			Description: "Shows the forecast for Banbridge",
			Language:    "Python",
			Age:         "Alex, 13",
			Icon:        "☀️",
			Difficulty:  models.DifficultyIntermediate,
			Tags:        []string{"api"},
		},
	}
}

// WriteProjectsFile writes body to projects.json in a fresh temp dir and
// returns its path.
func WriteProjectsFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write projects file: %v", err)
	}
	return path
}
