// internal/app/system/gallery/controller.go
package gallery

import (
	"context"
	"errors"
	"sync"

	projectstore "github.com/dalemusser/dojosite/internal/app/store/projects"
	"github.com/dalemusser/dojosite/internal/domain/models"
	"go.uber.org/zap"
)

// errNotLoaded is returned by Load on a fork whose parent never loaded.
var errNotLoaded = errors.New("project list was never loaded")

// Controller owns the gallery state: the loaded projects, the active filter,
// the search term and the derived visible set.
//
// Methods are safe for concurrent use, but a Controller models one visitor's
// session. Use Fork to give each visitor (or request) its own state over the
// same loaded list.
type Controller struct {
	loadMu sync.Mutex // serializes Load
	mu     sync.RWMutex

	loader Loader
	view   View
	opts   Options
	log    *zap.Logger

	state   State
	loadErr *projectstore.LoadError

	all     []models.Project // set once by Load, never mutated
	filter  string
	term    string
	last    predicate
	visible []models.Project
}

// New creates an uninitialized controller. view may be nil.
func New(loader Loader, view View, opts Options, logger *zap.Logger) *Controller {
	if view == nil {
		view = noopView{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		loader: loader,
		view:   view,
		opts:   opts,
		log:    logger,
		filter: FilterAll,
	}
}

// Start is the entry point for a hosting application: it loads the projects
// and pushes the first render, or the load error, to the view.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.Load(ctx); err != nil {
		return err
	}
	c.refresh()
	return nil
}

// Load fetches the project list once. Failure moves the controller to
// StateError for good; no retry is attempted. Calling Load again returns
// the first outcome without fetching.
func (c *Controller) Load(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	c.mu.RLock()
	state, prev := c.state, c.loadErr
	c.mu.RUnlock()
	switch state {
	case StateReady:
		return nil
	case StateError:
		return prev
	}

	var projects []models.Project
	var err error
	if c.loader == nil {
		err = errNotLoaded
	} else {
		projects, err = c.loader.Load(ctx)
	}

	if err != nil {
		le := projectstore.AsLoadError(projectstore.OpFetch, err)
		c.mu.Lock()
		c.state = StateError
		c.loadErr = le
		c.all = nil
		c.visible = nil
		view := c.view
		c.mu.Unlock()

		c.log.Error("gallery load failed", zap.Error(le.Cause), zap.String("op", le.Op))
		view.ShowError(le.Message())
		return le
	}

	if projects == nil {
		projects = []models.Project{}
	}
	c.mu.Lock()
	c.all = projects
	c.state = StateReady
	c.recompute()
	c.mu.Unlock()

	c.log.Info("gallery ready", zap.Int("projects", len(projects)))
	return nil
}

// SetFilter selects the projects whose difficulty, language or any tag equals
// token (case-insensitively). FilterAll selects everything. Unknown tokens
// select nothing.
func (c *Controller) SetFilter(token string) {
	c.mu.Lock()
	c.filter = fold(token)
	c.last = predFilter
	c.recompute()
	c.mu.Unlock()
	c.refresh()
}

// Search selects the projects whose title, language, description or any tag
// contains term (case-insensitively). An empty term selects everything.
func (c *Controller) Search(term string) {
	c.mu.Lock()
	c.term = fold(term)
	c.last = predSearch
	c.recompute()
	c.mu.Unlock()
	c.refresh()
}

// Bind registers SetFilter and Search as the handlers of src's events.
func (c *Controller) Bind(src EventSource) {
	src.OnFilter(c.SetFilter)
	src.OnSearch(c.Search)
}

// Render projects the visible set into cards. An empty visible set renders
// exactly one NoResultsCard. Render returns nil unless the controller is
// ready. It has no side effects.
func (c *Controller) Render() []Card {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.renderLocked()
}

func (c *Controller) renderLocked() []Card {
	if c.state != StateReady {
		return nil
	}
	if len(c.visible) == 0 {
		return []Card{NoResultsCard()}
	}
	cards := make([]Card, 0, len(c.visible))
	for _, p := range c.visible {
		cards = append(cards, projectCard(p, c.opts.BasePath))
	}
	return cards
}

// Fork returns a controller that shares this controller's loaded list and
// load outcome but starts with the default filter and search and talks to
// its own view.
func (c *Controller) Fork(view View) *Controller {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f := New(nil, view, c.opts, c.log)
	f.state = c.state
	f.loadErr = c.loadErr
	f.all = c.all
	if f.state == StateReady {
		f.recompute()
	}
	return f
}

// recompute rebuilds the visible set from the full list. Callers hold mu.
func (c *Controller) recompute() {
	if c.state != StateReady {
		c.visible = nil
		return
	}
	filter, term := c.filter, c.term
	switch {
	case c.opts.ComposePredicates:
		c.visible = selectProjects(c.all, func(p models.Project) bool {
			return matchesFilter(p, filter) && matchesSearch(p, term)
		})
	case c.last == predSearch:
		c.visible = selectProjects(c.all, func(p models.Project) bool {
			return matchesSearch(p, term)
		})
	default:
		c.visible = selectProjects(c.all, func(p models.Project) bool {
			return matchesFilter(p, filter)
		})
	}
}

// refresh pushes the current render to the view. Nothing is pushed before a
// successful load; the error path notifies the view itself.
func (c *Controller) refresh() {
	c.mu.RLock()
	if c.state != StateReady {
		c.mu.RUnlock()
		return
	}
	cards := c.renderLocked()
	view := c.view
	c.mu.RUnlock()

	view.ShowCards(cards)
}

// State reports the lifecycle state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Err returns the load error, if any.
func (c *Controller) Err() *projectstore.LoadError {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadErr
}

// ActiveFilter returns the folded active filter token.
func (c *Controller) ActiveFilter() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter
}

// SearchTerm returns the folded search term.
func (c *Controller) SearchTerm() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.term
}

// Projects returns a copy of the full loaded list.
func (c *Controller) Projects() []models.Project {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Project(nil), c.all...)
}

// Visible returns a copy of the currently visible projects.
func (c *Controller) Visible() []models.Project {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Project(nil), c.visible...)
}
