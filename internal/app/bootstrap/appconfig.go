// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds site-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings (ports, TLS, logging level, timeouts); everything
// about the project gallery lives here.
type AppConfig struct {
	// Site identity
	SiteName string // Display name used in page titles

	// Project data
	ProjectsSource  string        // File path or http(s) URL of the projects file
	ProjectsBaseURL string        // When set, a relative ProjectsSource is fetched from this URL
	ProjectsTimeout time.Duration // Bound on the one-time load (default 10s)

	// Gallery behavior
	ProjectBasePath   string // Prefix of every card's link (e.g. "/CoderDojoBanbridge-Website/projects/")
	ComposePredicates bool   // AND filter and search instead of letting the last one win
}
