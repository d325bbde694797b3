// Package htmlsanitize cleans free text from the projects file before it is
// placed in a card.
//
// Descriptions are written by mentors and may carry a little inline markup
// (<strong>, <em>, links). Anything beyond that is dropped.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func descriptionPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("b", "strong", "i", "em", "u", "s", "mark", "sub", "sup", "code", "br", "p", "span")
		p.AllowAttrs("href").OnElements("a")
		p.AllowStandardURLs()
		p.RequireNoFollowOnLinks(true)
		p.AddTargetBlankToFullyQualifiedLinks(true)
		policy = p
	})
	return policy
}

// Sanitize returns s with disallowed elements and attributes removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return descriptionPolicy().Sanitize(s)
}

// SanitizeToHTML sanitizes s and marks the result safe for templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no markup that looks like a tag.
// A lone "<" or ">" (for example "5 < 10") counts as plain text.
func IsPlainText(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '<' {
			continue
		}
		if i+1 < len(s) && (isLetter(s[i+1]) || s[i+1] == '/') && strings.IndexByte(s[i:], '>') > 0 {
			return false
		}
	}
	return true
}

// PlainTextToHTML escapes s and turns newlines into <br>.
func PlainTextToHTML(s string) template.HTML {
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// Description converts a project description to display HTML.
func Description(s string) template.HTML {
	if IsPlainText(s) {
		return PlainTextToHTML(s)
	}
	return SanitizeToHTML(s)
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
