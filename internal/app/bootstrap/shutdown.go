// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown tears down app resources. The gallery holds only in-memory
// state, so there is nothing to close.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Gallery != nil {
		logger.Info("shutting down gallery",
			zap.String("state", deps.Gallery.State().String()),
			zap.Int("projects", len(deps.Gallery.Projects())))
	}
	return nil
}
