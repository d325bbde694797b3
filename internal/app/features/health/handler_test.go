package health_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dalemusser/dojosite/internal/app/features/health"
	"github.com/dalemusser/dojosite/internal/app/system/gallery"
	"github.com/dalemusser/dojosite/internal/domain/models"
	"github.com/dalemusser/dojosite/internal/testutil"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

type loaderFunc func(ctx context.Context) ([]models.Project, error)

func (f loaderFunc) Load(ctx context.Context) ([]models.Project, error) { return f(ctx) }

type healthBody struct {
	Status   string `json:"status"`
	Gallery  string `json:"gallery"`
	Projects int    `json:"projects"`
	Error    string `json:"error"`
}

func serve(t *testing.T, loader gallery.Loader) (*testutil.ResponseRecorder, healthBody) {
	t.Helper()
	logger := zap.NewNop()
	g := gallery.New(loader, nil, gallery.Options{}, logger)
	_ = g.Start(context.Background())

	rec := testutil.NewRecorder()
	health.Routes(health.NewHandler(g, logger)).ServeHTTP(rec, testutil.NewRequest("GET", "/"))

	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec, body
}

func TestServe_GalleryReady(t *testing.T) {
	rec, body := serve(t, loaderFunc(func(ctx context.Context) ([]models.Project, error) {
		return []models.Project{{ID: "1", Title: "Maze Game"}}, nil
	}))

	rec.AssertStatus(t, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}
	if body.Status != "ok" || body.Gallery != "ready" || body.Projects != 1 {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestServe_GalleryFailed(t *testing.T) {
	rec, body := serve(t, loaderFunc(func(ctx context.Context) ([]models.Project, error) {
		return nil, errors.New("connection refused")
	}))

	rec.AssertStatus(t, http.StatusServiceUnavailable)
	rec.AssertContains(t, "connection refused")
	if body.Status != "error" || body.Gallery != "error" {
		t.Errorf("unexpected body: %+v", body)
	}
	if body.Error == "" {
		t.Error("expected error detail")
	}
}
