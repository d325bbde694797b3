// internal/app/store/projects/projectstore.go
package projectstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/dojosite/internal/domain/models"
	json "github.com/goccy/go-json"
	"github.com/tailscale/hujson"
	"go.uber.org/zap"
)

// Store loads the static project list from a Source.
// A Store performs no caching; callers load once and keep the result.
type Store struct {
	src     Source
	timeout time.Duration
	log     *zap.Logger
}

// New creates a project store. A non-positive timeout disables the bound
// and relies on the caller's context alone.
func New(src Source, timeout time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{src: src, timeout: timeout, log: logger}
}

// Location reports where the store reads from.
func (s *Store) Location() string {
	if s.src == nil {
		return ""
	}
	return s.src.Location()
}

// Load performs one bounded fetch and decodes the result.
// Every failure is returned as a *LoadError.
func (s *Store) Load(ctx context.Context) ([]models.Project, error) {
	if s.src == nil {
		return nil, &LoadError{Op: OpFetch, Cause: errors.New("no projects source configured")}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	data, err := s.src.Fetch(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			// Some transports report the abort as a generic I/O error.
			err = fmt.Errorf("%w: %v", ctxErr, err)
		}
		return nil, &LoadError{Op: OpFetch, Cause: err}
	}

	projects, err := Decode(data)
	if err != nil {
		return nil, AsLoadError(OpDecode, err)
	}

	s.log.Debug("projects loaded",
		zap.String("source", s.src.Location()),
		zap.Int("count", len(projects)),
		zap.Duration("elapsed", time.Since(start)))
	return projects, nil
}

// Decode parses a JSON (or JSONC) array of projects, normalizes
// difficulties and validates each record.
func Decode(data []byte) ([]models.Project, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, &LoadError{Op: OpDecode, Cause: fmt.Errorf("invalid JSONC: %w", err)}
	}

	var projects []models.Project
	if err := json.Unmarshal(standardized, &projects); err != nil {
		return nil, &LoadError{Op: OpDecode, Cause: fmt.Errorf("invalid JSON: %w", err)}
	}
	if projects == nil {
		// A literal null is not a project list.
		return nil, &LoadError{Op: OpDecode, Cause: errors.New("expected a JSON array of projects")}
	}

	for i := range projects {
		p := &projects[i]
		if strings.TrimSpace(p.Title) == "" {
			return nil, &LoadError{Op: OpValidate, Cause: fmt.Errorf("project %d (id %q) has no title", i, p.ID)}
		}
		p.Difficulty = p.Difficulty.Normalize()
		if p.Tags == nil {
			p.Tags = []string{}
		}
	}
	return projects, nil
}
