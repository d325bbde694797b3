// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	galleryfeature "github.com/dalemusser/dojosite/internal/app/features/gallery"
	healthfeature "github.com/dalemusser/dojosite/internal/app/features/health"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend setup and the Startup hook
// have completed, so the gallery has already attempted its one load.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	r := chi.NewRouter()

	healthHandler := healthfeature.NewHandler(deps.Gallery, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	galleryHandler := galleryfeature.NewHandler(deps.Gallery, appCfg.SiteName, appCfg.ComposePredicates, logger)
	r.Mount("/projects", galleryfeature.Routes(galleryHandler))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
	})

	return r, nil
}
