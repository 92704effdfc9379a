package crawler

import (
	"context"
	"fmt"
	"time"

	"github.com/placehound/placehound/internal/extractor"
	"github.com/placehound/placehound/internal/scraper"
	"github.com/placehound/placehound/pkg/record"
)

// FetchError reports a single listing that could not be fetched. The run
// continues past it; the orchestrator only tallies these.
type FetchError struct {
	Handle Handle
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Handle.ID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// fetchDetail opens one listing and extracts its record. prevName is the
// heading of the previously fetched listing: the detail pane is shared
// between listings, so until the heading changes the pane may still show
// stale content from the last fetch.
func fetchDetail(ctx context.Context, surface scraper.Surface, cfg Config, h Handle, prevName string) (record.Business, error) {
	var b record.Business

	if err := surface.Navigate(ctx, h.URL); err != nil {
		return b, &FetchError{Handle: h, Err: err}
	}
	if err := surface.WaitVisible(ctx, detailNameSelector, cfg.DetailTimeout); err != nil {
		return b, &FetchError{Handle: h, Err: fmt.Errorf("detail pane did not render: %w", err)}
	}
	if err := waitFresh(ctx, surface, cfg, prevName); err != nil {
		return b, &FetchError{Handle: h, Err: err}
	}

	html, err := surface.HTML(ctx, detailPaneSelector)
	if err != nil {
		return b, &FetchError{Handle: h, Err: fmt.Errorf("read detail pane: %w", err)}
	}

	b = extractor.Parse(html)
	b.SourceURL = h.ID
	return b, nil
}

// waitFresh polls the detail heading until it no longer matches the previous
// listing's name, bounded by the detail timeout. Two distinct listings can
// legitimately share a name; the bound keeps that case from hanging and the
// caller proceeds with whatever the pane shows.
func waitFresh(ctx context.Context, surface scraper.Surface, cfg Config, prevName string) error {
	if prevName == "" {
		return nil
	}
	deadline := time.Now().Add(cfg.DetailTimeout)
	for {
		name, err := surface.Text(ctx, detailNameSelector)
		if err != nil {
			return fmt.Errorf("read detail heading: %w", err)
		}
		if name != "" && name != prevName {
			return nil
		}
		if time.Now().After(deadline) {
			return nil
		}
		if err := sleep(ctx, cfg.StalePoll); err != nil {
			return err
		}
	}
}
