// internal/app/features/gallery/types.go
package gallery

import (
	"github.com/dalemusser/dojosite/internal/app/system/gallery"
	"github.com/dalemusser/dojosite/internal/app/system/viewdata"
)

// filterButton is one filter trigger on the page.
type filterButton struct {
	Token  string
	Label  string
	Href   string
	Active bool
}

// galleryData is the view model for the gallery page and its card fragment.
type galleryData struct {
	viewdata.BaseVM

	Path    string // request path without the query, for the search form
	Filter  string
	Q       string
	Compose bool // filter and search combine instead of replacing each other
	Filters []filterButton

	Cards   []gallery.Card
	Error   string
	Visible int
	Total   int
}

// apiError is the JSON body returned when the gallery could not load.
type apiError struct {
	Error string `json:"error"`
}
