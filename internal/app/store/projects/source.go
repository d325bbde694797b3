// internal/app/store/projects/source.go
package projectstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/dalemusser/dojosite/internal/app/system/limits"
)

// Source fetches the raw bytes of the static projects file.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	// Location describes where the data comes from, for logs.
	Location() string
}

// HTTPSource fetches the projects file with a single GET.
type HTTPSource struct {
	URL       string
	Client    *http.Client
	UserAgent string
}

func (s *HTTPSource) Location() string { return s.URL }

// Fetch issues the request bound to ctx; cancelling ctx aborts the transfer.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}
	return readLimited(resp.Body)
}

// FileSource reads the projects file from disk.
type FileSource struct {
	Path string
}

func (s *FileSource) Location() string { return s.Path }

func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLimited(f)
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limits.MaxProjectsFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > limits.MaxProjectsFileSize {
		return nil, fmt.Errorf("projects file exceeds %d bytes", limits.MaxProjectsFileSize)
	}
	return data, nil
}

// NewSource picks a Source for location.
//
//   - "http://" and "https://" locations are fetched over HTTP.
//   - Relative locations are resolved against baseURL when it is set.
//   - Everything else is a local file path.
func NewSource(location, baseURL, userAgent string) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("projects source is empty")
	}

	if isHTTP(location) {
		return &HTTPSource{URL: location, UserAgent: userAgent}, nil
	}

	if baseURL != "" {
		base, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid projects base URL: %w", err)
		}
		if !isHTTP(base.String()) {
			return nil, fmt.Errorf("projects base URL must be http or https: %q", baseURL)
		}
		ref, err := url.Parse(location)
		if err != nil {
			return nil, fmt.Errorf("invalid projects source: %w", err)
		}
		return &HTTPSource{URL: base.ResolveReference(ref).String(), UserAgent: userAgent}, nil
	}

	return &FileSource{Path: location}, nil
}

func isHTTP(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
