package crawler

import (
	"net/url"
	"strings"
)

const searchBaseURL = "https://www.google.com/maps/search/"

// Handle identifies one discovered listing. ID is the place URL with its
// query string stripped: the path uniquely names the place while the query
// parameters vary per session and would defeat deduplication.
type Handle struct {
	ID  string
	URL string
}

// NewHandle builds a handle from a raw place link as found in the feed.
func NewHandle(raw string) Handle {
	id := raw
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		id = raw[:i]
	}
	return Handle{ID: id, URL: raw}
}

// SearchURL builds the maps search URL for a free-text query.
func SearchURL(query string) string {
	return searchBaseURL + url.QueryEscape(strings.TrimSpace(query))
}
