package crawler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/placehound/placehound/internal/logger"
	"github.com/placehound/placehound/internal/scraper"
)

// ErrDiscoveryTimeout signals that the results feed never rendered for a
// query. The orchestrator treats it as a per-query failure, not a run abort.
var ErrDiscoveryTimeout = errors.New("results feed did not render")

// discover runs one query's listing discovery: navigate to the search,
// scroll the feed until it stops growing, and collect a deduplicated,
// ordered set of listing handles.
func discover(ctx context.Context, surface scraper.Surface, cfg Config, query string) ([]Handle, error) {
	target := SearchURL(query)
	if err := surface.Navigate(ctx, target); err != nil {
		return nil, fmt.Errorf("open search for %q: %w", query, err)
	}
	if err := surface.WaitVisible(ctx, feedSelector, cfg.DiscoveryTimeout); err != nil {
		return nil, fmt.Errorf("%w for %q: %v", ErrDiscoveryTimeout, query, err)
	}

	var (
		handles []Handle
		seen    = make(map[string]struct{})
		stable  int
	)

	collect := func() (int, error) {
		hrefs, err := surface.AttrAll(ctx, placeLinkSelector, "href")
		if err != nil {
			return 0, err
		}
		added := 0
		for _, href := range hrefs {
			h := NewHandle(href)
			if _, dup := seen[h.ID]; dup {
				continue
			}
			seen[h.ID] = struct{}{}
			handles = append(handles, h)
			added++
		}
		return added, nil
	}

	for scroll := 0; scroll < cfg.MaxScrolls; scroll++ {
		if err := ctx.Err(); err != nil {
			return handles, err
		}

		added, err := collect()
		if err != nil {
			return handles, fmt.Errorf("read feed for %q: %w", query, err)
		}
		if added == 0 {
			stable++
		} else {
			stable = 0
		}

		if cfg.MaxResults > 0 && len(handles) >= cfg.MaxResults {
			handles = handles[:cfg.MaxResults]
			logger.Debug("discovery hit result cap", "query", query, "cap", cfg.MaxResults)
			break
		}
		if stable >= cfg.StableScans {
			logger.Debug("feed stable, discovery done", "query", query, "scrolls", scroll+1)
			break
		}
		if done, err := surface.Exists(ctx, endOfListSelector); err == nil && done {
			// One last read catches listings rendered by the final scroll.
			if _, err := collect(); err != nil {
				return handles, fmt.Errorf("read feed for %q: %w", query, err)
			}
			logger.Debug("end of list marker reached", "query", query)
			break
		}

		if err := surface.ScrollBy(ctx, feedSelector, cfg.ScrollPixels); err != nil {
			return handles, fmt.Errorf("scroll feed for %q: %w", query, err)
		}
		if err := sleep(ctx, cfg.ScrollPause); err != nil {
			return handles, err
		}
	}

	logger.Info("discovery complete", "query", query, "listings", len(handles))
	return handles, nil
}

// sleep waits for d unless ctx is cancelled first.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
