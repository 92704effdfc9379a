package crawler

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config tunes discovery and fetch pacing. Every knob has a working default;
// validation catches flag combinations that would spin or never terminate.
type Config struct {
	// ScrollPixels is the vertical distance of one feed scroll.
	ScrollPixels int `validate:"gt=0"`

	// ScrollPause is the settle time after each scroll before re-reading
	// the feed.
	ScrollPause time.Duration `validate:"gt=0"`

	// StableScans is how many consecutive scrolls with no new listings
	// discovery tolerates before concluding the feed is exhausted.
	StableScans int `validate:"gt=0"`

	// MaxScrolls caps total scroll iterations per query as a hard stop
	// against feeds that never settle.
	MaxScrolls int `validate:"gt=0"`

	// DiscoveryTimeout bounds the wait for the results feed to render
	// after navigating to a search.
	DiscoveryTimeout time.Duration `validate:"gt=0"`

	// DetailTimeout bounds the wait for a detail pane to render after
	// opening a listing.
	DetailTimeout time.Duration `validate:"gt=0"`

	// StalePoll is the interval at which the detail fetcher re-checks
	// whether the pane still shows the previous listing.
	StalePoll time.Duration `validate:"gt=0"`

	// FetchDelay paces detail fetches within a query. Zero disables it.
	FetchDelay time.Duration `validate:"gte=0"`

	// MaxResults truncates discovery once this many listings are found.
	// Zero means unlimited.
	MaxResults int `validate:"gte=0"`
}

// DefaultConfig returns the tuning used when no flags override it.
func DefaultConfig() Config {
	return Config{
		ScrollPixels:     1500,
		ScrollPause:      1500 * time.Millisecond,
		StableScans:      6,
		MaxScrolls:       500,
		DiscoveryTimeout: 30 * time.Second,
		DetailTimeout:    15 * time.Second,
		StalePoll:        250 * time.Millisecond,
	}
}

// Validate checks the configuration for values that would break pacing.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid crawl configuration: %w", err)
	}
	if c.StableScans > c.MaxScrolls {
		return fmt.Errorf("invalid crawl configuration: stable-scans (%d) exceeds max-scrolls (%d)",
			c.StableScans, c.MaxScrolls)
	}
	return nil
}
