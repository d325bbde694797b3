// internal/app/features/gallery/view.go
package gallery

import (
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/dalemusser/dojosite/internal/app/system/gallery"
	"github.com/dalemusser/dojosite/internal/app/system/limits"
	"github.com/dalemusser/dojosite/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// requestView collects what the controller pushes while one request runs.
type requestView struct {
	cards []gallery.Card
	err   string
}

func (v *requestView) ShowCards(cards []gallery.Card) { v.cards = cards }
func (v *requestView) ShowError(msg string)           { v.err = msg }

// queryEvents replays the request's query string as gallery events:
// the filter first, then the search term.
type queryEvents struct {
	filter, q string
	onFilter  func(string)
	onSearch  func(string)
}

func (e *queryEvents) OnFilter(fn func(string)) { e.onFilter = fn }
func (e *queryEvents) OnSearch(fn func(string)) { e.onSearch = fn }

func (e *queryEvents) replay() {
	if e.filter != "" && e.onFilter != nil {
		e.onFilter(e.filter)
	}
	if e.q != "" && e.onSearch != nil {
		e.onSearch(e.q)
	}
}

// build runs a forked controller against the request and returns the view
// model for the page, the fragment and the API.
func (h *Handler) build(r *http.Request) galleryData {
	filter := strings.TrimSpace(query.Get(r, "filter"))
	if filter == "" {
		filter = gallery.FilterAll
	}
	q := truncate(query.Search(r, "q"), limits.MaxSearchTermLength)

	view := &requestView{}
	c := h.Gallery.Fork(view)
	events := &queryEvents{filter: filter, q: q}
	c.Bind(events)
	events.replay()

	data := galleryData{
		BaseVM:  viewdata.NewBaseVM(r, h.SiteName, "Projects"),
		Path:    r.URL.Path,
		Filter:  c.ActiveFilter(),
		Q:       q,
		Compose: h.Compose,
		Total:   len(c.Projects()),
		Visible: len(c.Visible()),
	}

	if c.State() != gallery.StateReady {
		if le := c.Err(); le != nil {
			data.Error = le.Message()
		} else {
			data.Error = "Projects are not available yet."
		}
		return data
	}

	data.Cards = view.cards
	if data.Cards == nil {
		// No event fired; render the default view.
		data.Cards = c.Render()
	}
	for _, o := range c.FilterOptions() {
		params := url.Values{"filter": {o.Token}}
		if h.Compose && q != "" {
			params.Set("q", q)
		}
		data.Filters = append(data.Filters, filterButton{
			Token:  o.Token,
			Label:  o.Label,
			Href:   r.URL.Path + "?" + params.Encode(),
			Active: o.Token == data.Filter,
		})
	}
	return data
}

// ServeGallery handles GET /projects (with optional ?filter= and ?q=).
// It supports HTMX partial refresh of the grid when HX-Target="projects-grid".
func (h *Handler) ServeGallery(w http.ResponseWriter, r *http.Request) {
	data := h.build(r)

	if isGridSwap(r) {
		templates.RenderSnippet(w, "gallery_update", data)
		return
	}

	templates.Render(w, r, "gallery_page", data)
}

// ServeCards handles GET /projects/cards and returns only the card grid.
// An HTMX swap of the grid also gets the out-of-band filter buttons.
func (h *Handler) ServeCards(w http.ResponseWriter, r *http.Request) {
	data := h.build(r)

	if isGridSwap(r) {
		templates.RenderSnippet(w, "gallery_update", data)
		return
	}

	templates.RenderSnippet(w, "gallery_cards", data)
}

func isGridSwap(r *http.Request) bool {
	return r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "projects-grid"
}

// ServeAPI handles GET /projects/api and returns the visible cards as JSON.
//
// On success: 200 and a JSON array of cards.
// When the gallery failed to load: 503 and {"error":"Failed to load projects: …"}.
func (h *Handler) ServeAPI(w http.ResponseWriter, r *http.Request) {
	data := h.build(r)
	w.Header().Set("Content-Type", "application/json")

	if data.Error != "" {
		w.WriteHeader(http.StatusServiceUnavailable)
		if err := json.NewEncoder(w).Encode(apiError{Error: data.Error}); err != nil {
			h.Log.Warn("encode gallery error failed", zap.Error(err))
		}
		return
	}

	cards := data.Cards
	if cards == nil {
		cards = []gallery.Card{}
	}
	if err := json.NewEncoder(w).Encode(cards); err != nil {
		h.Log.Warn("encode gallery cards failed", zap.Error(err))
	}
}

// truncate caps s at n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
