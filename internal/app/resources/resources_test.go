package resources

import (
	"testing"

	"github.com/dalemusser/waffle/pantry/templates"
)

func TestLoadSharedTemplates_RegistersOnce(t *testing.T) {
	LoadSharedTemplates()
	LoadSharedTemplates()

	count := 0
	for _, s := range templates.All() {
		if s.Name == "shared" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected one shared set, got %d", count)
	}
}
