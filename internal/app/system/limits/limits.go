// internal/app/system/limits/limits.go
package limits

// Size limits for data read from outside the process.
// These limits help prevent memory exhaustion from oversized payloads.
const (
	// MaxProjectsFileSize is the maximum size of the static projects file,
	// whether it is read from disk or fetched over HTTP.
	MaxProjectsFileSize = 1 << 20 // 1 MB

	// MaxSearchTermLength caps the search term accepted from query strings.
	// Longer input is truncated before it reaches the gallery.
	MaxSearchTermLength = 200
)
