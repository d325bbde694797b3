// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/dojosite/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the site.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: projects_source, site_name, etc.
//   - Environment variables: DOJOSITE_PROJECTS_SOURCE, DOJOSITE_SITE_NAME, etc.
//   - Command-line flags: --projects_source, --site_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "site_name", Default: "CoderDojo Banbridge", Desc: "Site display name"},

	// Project data
	{Name: "projects_source", Default: "./projects/projects.json", Desc: "Projects file: a local path or an http(s) URL"},
	{Name: "projects_base_url", Default: "", Desc: "Base URL for a relative projects_source (blank means read from disk)"},
	{Name: "projects_timeout", Default: "10s", Desc: "Timeout for loading the projects file (e.g., 10s, 2500ms)"},

	// Gallery behavior
	{Name: "project_base_path", Default: "/CoderDojoBanbridge-Website/projects/", Desc: "Path prefix for project card links"},
	{Name: "compose_predicates", Default: false, Desc: "Combine filter and search (default: the most recent one wins)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, DOJOSITE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "DOJOSITE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SiteName: appValues.String("site_name"),

		ProjectsSource:  appValues.String("projects_source"),
		ProjectsBaseURL: appValues.String("projects_base_url"),
		ProjectsTimeout: appValues.Duration("projects_timeout", timeouts.DefaultFetch),

		ProjectBasePath:   appValues.String("project_base_path"),
		ComposePredicates: appValues.Bool("compose_predicates"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// A missing or unreachable projects file is not a config error; the gallery
// reports it to visitors instead.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if strings.TrimSpace(appCfg.ProjectsSource) == "" {
		return fmt.Errorf("projects_source must be set")
	}

	if appCfg.ProjectsTimeout <= 0 {
		return fmt.Errorf("projects_timeout must be positive, got %s", appCfg.ProjectsTimeout)
	}
	if appCfg.ProjectsTimeout > time.Minute {
		logger.Warn("projects_timeout is unusually long",
			zap.Duration("projects_timeout", appCfg.ProjectsTimeout))
	}

	p := appCfg.ProjectBasePath
	if !strings.HasPrefix(p, "/") || !strings.HasSuffix(p, "/") {
		return fmt.Errorf("project_base_path must start and end with '/', got %q", p)
	}

	return nil
}
