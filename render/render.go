// Package render turns comparison results into report documents. Two
// renderers share one contract: a JSON renderer for machine consumption and
// an HTML renderer for people. Renderers never re-run comparison; they only
// reshape the fully-populated results they are given.
package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/apidrift/apidrift/matcher"
	"github.com/apidrift/apidrift/rules"
)

// Renderer renders a comparison result into a report document.
type Renderer interface {
	// Render produces the report bytes for the result.
	Render(result *matcher.CompareResult) ([]byte, error)
	// FileExtension is the conventional extension for this renderer's
	// output, without the leading dot.
	FileExtension() string
}

// ForFormat returns the renderer for a format name ("json" or "html").
func ForFormat(format string) (Renderer, bool) {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONRenderer(), true
	case "html":
		return NewHTMLRenderer(), true
	default:
		return nil, false
	}
}

var titleCaser = cases.Title(language.English)

// displayName renders a rule identifier for people: "RequiredPropertyAdded"
// becomes "Required Property Added".
func displayName(ruleName string) string {
	var b strings.Builder
	for i, r := range ruleName {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return titleCaser.String(strings.ToLower(b.String()))
}

// levelClass maps a severity to the stable class/key name reports use.
func levelClass(level rules.Level) string {
	switch level {
	case rules.LevelBreaking:
		return "breaking"
	case rules.LevelWarning:
		return "warning"
	default:
		return "change"
	}
}

// levelTitle maps a severity to its display form.
func levelTitle(level rules.Level) string {
	return titleCaser.String(levelClass(level))
}
