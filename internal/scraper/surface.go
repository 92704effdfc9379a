// Package scraper provides the rendering surface the extraction engine
// drives: a navigable, scriptable document session.
package scraper

import (
	"context"
	"time"
)

// Surface is the capability set the engine depends on. The production
// implementation is a headless Chrome session; tests substitute an
// in-memory fake. Every blocking call takes a context and the waits carry
// explicit timeouts, so no operation can poll unbounded.
type Surface interface {
	// Navigate loads the given URL, replacing the current document.
	Navigate(ctx context.Context, url string) error

	// WaitVisible blocks until an element matching selector is visible,
	// or the timeout elapses.
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error

	// ScrollBy scrolls the first element matching selector by the given
	// vertical pixel offset.
	ScrollBy(ctx context.Context, selector string, pixels int) error

	// AttrAll returns the named attribute of every element currently
	// matching selector, in document order. Absent elements yield an
	// empty slice, not an error.
	AttrAll(ctx context.Context, selector, attr string) ([]string, error)

	// Text returns the trimmed text content of the first element matching
	// selector, or "" when no element matches.
	Text(ctx context.Context, selector string) (string, error)

	// HTML returns the outer HTML of the first element matching selector.
	HTML(ctx context.Context, selector string) (string, error)

	// Exists reports whether any element currently matches selector.
	Exists(ctx context.Context, selector string) (bool, error)

	// Close releases the underlying session.
	Close() error
}

// Config holds common surface configuration.
type Config struct {
	Headless  bool
	UserAgent string
	// OpTimeout bounds individual non-waiting operations (reads, scrolls).
	OpTimeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Headless: true,
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		OpTimeout: 10 * time.Second,
	}
}
