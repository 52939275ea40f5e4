// Package share builds the share targets offered on a project's detail view.
package share

import (
	"net/url"
	"strings"

	"portfolio-gallery/internal/domain"
)

const twitterIntentURL = "https://twitter.com/intent/tweet"

// Payload mirrors the Web Share API data object.
type Payload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// Links groups every share target for one project.
type Links struct {
	Native  Payload `json:"native"`
	Twitter string  `json:"twitter"`
}

// For returns the share targets of p.
func For(p domain.Project) Links {
	return Links{
		Native: Payload{
			Title: p.Name,
			Text:  p.OneLiner,
			URL:   p.Link,
		},
		Twitter: twitterIntentURL + "?text=" + escapeComponent(p.Name+" - "+p.OneLiner) +
			"&url=" + escapeComponent(p.Link),
	}
}

// escapeComponent percent-encodes s for a query value, spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
