// Package gallery implements the project gallery: it loads the static project
// list once, keeps the active filter and search term, and projects the
// visible subset into card descriptors for a View.
//
// Typical wiring:
//
//	c := gallery.New(store, view, gallery.Options{BasePath: "/projects/"}, logger)
//	c.Bind(events)
//	if err := c.Start(ctx); err != nil {
//	    // the view has already been told; log and carry on
//	}
package gallery

import (
	"context"

	"github.com/dalemusser/dojosite/internal/domain/models"
)

// State is the lifecycle state of a Controller.
type State int

const (
	// StateUninitialized is the state before Load has run.
	StateUninitialized State = iota
	// StateReady means the project list loaded; filter and search are live.
	StateReady
	// StateError means the load failed. It is terminal for the controller.
	StateError
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "uninitialized"
	}
}

// FilterAll is the filter token that matches every project.
const FilterAll = "all"

// Loader fetches the project list. *projectstore.Store satisfies it.
type Loader interface {
	Load(ctx context.Context) ([]models.Project, error)
}

// View is the display collaborator. The controller pushes a fresh card list
// after every state change, or a message when loading failed.
type View interface {
	ShowCards(cards []Card)
	ShowError(message string)
}

// EventSource delivers user input to the controller. OnFilter receives the
// token of a selected filter trigger; OnSearch receives the current search
// input value.
type EventSource interface {
	OnFilter(func(token string))
	OnSearch(func(term string))
}

// Options tune a Controller.
type Options struct {
	// BasePath prefixes every card's navigation target. It should end in "/".
	BasePath string

	// ComposePredicates, when set, ANDs the active filter with the search
	// term. By default the most recent of SetFilter/Search decides the
	// visible set on its own.
	ComposePredicates bool
}

// noopView discards output. Used when a controller is created without a view.
type noopView struct{}

func (noopView) ShowCards([]Card) {}
func (noopView) ShowError(string) {}
