// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/dojosite/internal/app/resources"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization before the HTTP handler
// is built. It registers the shared templates and loads the project list
// exactly once.
//
// A failed load does not abort startup: the gallery stays in its error state
// for the life of the process and every page shows the message.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	if err := deps.Gallery.Start(ctx); err != nil {
		logger.Warn("serving gallery in error state", zap.Error(err))
	}
	return nil
}
