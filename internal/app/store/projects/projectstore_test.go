package projectstore_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	projectstore "github.com/dalemusser/dojosite/internal/app/store/projects"
	"github.com/dalemusser/dojosite/internal/domain/models"
	"go.uber.org/zap"
)

const sampleJSON = `[
  {"id": 1, "title": "Maze Game", "description": "Escape the maze", "language": "Scratch",
   "age": "Sam, 9", "icon": "🎮", "difficulty": "Beginner", "tags": ["game"]},
  {"id": 2, "title": "Weather App", "description": "Shows the forecast", "language": "Python",
   "age": "Alex, 13", "icon": "☀️", "difficulty": "Intermediate", "tags": ["api"]}
]`

func serve(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func loadFrom(t *testing.T, url string, timeout time.Duration) ([]models.Project, error) {
	t.Helper()
	src, err := projectstore.NewSource(url, "", "dojosite-test")
	if err != nil {
		t.Fatalf("NewSource(%q) failed: %v", url, err)
	}
	return projectstore.New(src, timeout, zap.NewNop()).Load(context.Background())
}

func TestLoad_HTTPSuccess(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "dojosite-test" {
			t.Errorf("User-Agent: got %q, want %q", ua, "dojosite-test")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleJSON))
	})

	projects, err := loadFrom(t, srv.URL+"/projects/projects.json", time.Second)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].ID != "1" || projects[0].Title != "Maze Game" {
		t.Errorf("unexpected first project: %+v", projects[0])
	}
	if projects[0].Difficulty != models.DifficultyBeginner {
		t.Errorf("difficulty: got %q, want %q", projects[0].Difficulty, models.DifficultyBeginner)
	}
	if projects[1].Difficulty != models.DifficultyIntermediate {
		t.Errorf("difficulty: got %q, want %q", projects[1].Difficulty, models.DifficultyIntermediate)
	}
}

func TestLoad_NotFound(t *testing.T) {
	var calls atomic.Int32
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	})

	_, err := loadFrom(t, srv.URL, time.Second)

	var le *projectstore.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %T (%v)", err, err)
	}
	if le.Op != projectstore.OpFetch {
		t.Errorf("Op: got %q, want %q", le.Op, projectstore.OpFetch)
	}
	var se *projectstore.StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusNotFound {
		t.Errorf("expected StatusError 404, got %v", err)
	}
	if le.Message() != "Failed to load projects: HTTP error! status: 404" {
		t.Errorf("Message: got %q", le.Message())
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("expected exactly one request, got %d", n)
	}
}

func TestLoad_Timeout(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})

	start := time.Now()
	_, err := loadFrom(t, srv.URL, 50*time.Millisecond)
	if time.Since(start) > 3*time.Second {
		t.Fatalf("load did not honor timeout")
	}

	var le *projectstore.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %T (%v)", err, err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected DeadlineExceeded in chain, got %v", err)
	}
}

func TestLoad_MalformedPayload(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		wantOp string
	}{
		{"broken json", `[{"title": "x"`, projectstore.OpDecode},
		{"object not array", `{"title": "x"}`, projectstore.OpDecode},
		{"null", `null`, projectstore.OpDecode},
		{"missing title", `[{"id": 1, "title": "  "}]`, projectstore.OpValidate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := loadFrom(t, srv.URL, time.Second)
			var le *projectstore.LoadError
			if !errors.As(err, &le) {
				t.Fatalf("expected *LoadError, got %T (%v)", err, err)
			}
			if le.Op != tt.wantOp {
				t.Errorf("Op: got %q, want %q", le.Op, tt.wantOp)
			}
		})
	}
}

func TestLoad_FileJSONC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.json")
	body := `[
  // featured this term
  {"id": "a1", "title": "Robot Arm", "difficulty": "ADVANCED", "tags": ["hardware",],},
]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	projects, err := loadFrom(t, path, time.Second)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if projects[0].ID != "a1" || projects[0].Difficulty != models.DifficultyAdvanced {
		t.Errorf("unexpected project: %+v", projects[0])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := loadFrom(t, filepath.Join(t.TempDir(), "nope.json"), time.Second)
	var le *projectstore.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %T (%v)", err, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestDecode_DefaultsTagsAndDifficulty(t *testing.T) {
	projects, err := projectstore.Decode([]byte(`[{"id": 3, "title": "Quiz", "difficulty": "expert"}]`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if projects[0].Difficulty != models.DifficultyBeginner {
		t.Errorf("difficulty: got %q, want beginner", projects[0].Difficulty)
	}
	if projects[0].Tags == nil {
		t.Error("expected non-nil tags")
	}
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		name     string
		location string
		baseURL  string
		wantURL  string
		wantFile string
		wantErr  bool
	}{
		{"absolute http", "http://example.com/p.json", "", "http://example.com/p.json", "", false},
		{"relative with base", "./projects/projects.json", "https://example.com/site/", "https://example.com/site/projects/projects.json", "", false},
		{"file path", "./projects/projects.json", "", "", "./projects/projects.json", false},
		{"empty", "  ", "", "", "", true},
		{"ftp base", "p.json", "ftp://example.com/", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := projectstore.NewSource(tt.location, tt.baseURL, "")
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSource error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			switch s := src.(type) {
			case *projectstore.HTTPSource:
				if s.URL != tt.wantURL {
					t.Errorf("URL: got %q, want %q", s.URL, tt.wantURL)
				}
			case *projectstore.FileSource:
				if s.Path != tt.wantFile {
					t.Errorf("Path: got %q, want %q", s.Path, tt.wantFile)
				}
			default:
				t.Fatalf("unexpected source type %T", src)
			}
		})
	}
}

func TestLoadError_Message(t *testing.T) {
	err := &projectstore.LoadError{Op: projectstore.OpFetch, Cause: errors.New("boom")}
	if !strings.Contains(err.Error(), "fetch") {
		t.Errorf("Error() should mention op, got %q", err.Error())
	}
	if err.Message() != "Failed to load projects: boom" {
		t.Errorf("Message: got %q", err.Message())
	}
}
