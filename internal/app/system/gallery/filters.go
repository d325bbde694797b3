// internal/app/system/gallery/filters.go
package gallery

import "github.com/dalemusser/dojosite/internal/domain/models"

// FilterOption is one filter trigger offered to visitors.
type FilterOption struct {
	Token string
	Label string
}

// FilterOptions lists the filters worth offering for the loaded list: "all",
// the three difficulty levels, then each distinct language in the order it
// first appears.
func (c *Controller) FilterOptions() []FilterOption {
	c.mu.RLock()
	defer c.mu.RUnlock()

	opts := make([]FilterOption, 0, 1+len(models.Difficulties)+4)
	opts = append(opts, FilterOption{Token: FilterAll, Label: "All"})
	for _, d := range models.Difficulties {
		opts = append(opts, FilterOption{Token: string(d), Label: d.Label()})
	}

	seen := make(map[string]bool)
	for _, o := range opts {
		seen[o.Token] = true
	}
	for _, p := range c.all {
		tok := fold(p.Language)
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		opts = append(opts, FilterOption{Token: tok, Label: p.Language})
	}
	return opts
}
