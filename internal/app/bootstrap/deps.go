// internal/app/bootstrap/deps.go
package bootstrap

import (
	"context"

	projectstore "github.com/dalemusser/dojosite/internal/app/store/projects"
	"github.com/dalemusser/dojosite/internal/app/system/gallery"
	"github.com/dalemusser/dojosite/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// DBDeps holds the back-end dependencies for the app. The site has no
// database; its one backend is the static projects file.
type DBDeps struct {
	Projects *projectstore.Store
	Gallery  *gallery.Controller
}

// ConnectDB builds the project store and the (not yet loaded) gallery
// controller. Nothing is fetched here; Startup performs the single load.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	src, err := projectstore.NewSource(appCfg.ProjectsSource, appCfg.ProjectsBaseURL, "dojosite")
	if err != nil {
		logger.Error("projects source invalid", zap.Error(err))
		return DBDeps{}, err
	}

	// TIMEOUT_* environment overrides take precedence over app config.
	timeouts.Configure(timeouts.Config{Fetch: appCfg.ProjectsTimeout})
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts overridden from environment", zap.Int("count", n))
	}
	store := projectstore.New(src, timeouts.Fetch(), logger)

	g := gallery.New(store, nil, gallery.Options{
		BasePath:          appCfg.ProjectBasePath,
		ComposePredicates: appCfg.ComposePredicates,
	}, logger)

	logger.Info("projects source configured",
		zap.String("source", store.Location()),
		zap.Duration("timeout", timeouts.Fetch()))

	return DBDeps{Projects: store, Gallery: g}, nil
}
