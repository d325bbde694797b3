// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/httpnav"
)

// DefaultSiteName is shown when no site name is configured.
const DefaultSiteName = "CoderDojo Banbridge"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, siteName, "Page Title"),
//	}
type BaseVM struct {
	SiteName    string
	Title       string
	CurrentPath string
}

// NewBaseVM builds the shared page context for r.
func NewBaseVM(r *http.Request, siteName, title string) BaseVM {
	siteName = strings.TrimSpace(siteName)
	if siteName == "" {
		siteName = DefaultSiteName
	}
	return BaseVM{
		SiteName:    siteName,
		Title:       title,
		CurrentPath: httpnav.CurrentPath(r),
	}
}

// PageTitle is the document title: "Title | SiteName", or just the site
// name when the page has no title of its own.
func (b BaseVM) PageTitle() string {
	if b.Title == "" {
		return b.SiteName
	}
	return b.Title + " | " + b.SiteName
}
