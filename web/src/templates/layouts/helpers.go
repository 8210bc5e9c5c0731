package layouts

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const appName = "Google Dashboard"

// CalculateTitle builds the document title from a page name.
func CalculateTitle(title string) string {
	if title != "" {
		// A Caser is stateful, so each call gets its own.
		return cases.Title(language.English).String(title) + " - " + appName
	}
	return appName
}
