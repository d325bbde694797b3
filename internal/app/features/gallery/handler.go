// internal/app/features/gallery/handler.go
package gallery

import (
	"github.com/dalemusser/dojosite/internal/app/system/gallery"
	"go.uber.org/zap"
)

// Handler serves the project gallery. Gallery is the startup controller;
// each request works on its own fork of it.
type Handler struct {
	Gallery  *gallery.Controller
	SiteName string
	Compose  bool // mirrors gallery.Options.ComposePredicates for link building
	Log      *zap.Logger
}

// NewHandler constructs a gallery Handler.
func NewHandler(g *gallery.Controller, siteName string, compose bool, logger *zap.Logger) *Handler {
	return &Handler{
		Gallery:  g,
		SiteName: siteName,
		Compose:  compose,
		Log:      logger,
	}
}
