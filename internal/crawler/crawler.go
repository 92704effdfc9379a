// Package crawler orchestrates extraction runs: per query it discovers
// listings in the results feed, fetches each listing's detail view, and
// merges the parsed records into a shared deduplicated result set.
package crawler

import (
	"context"

	"github.com/placehound/placehound/internal/logger"
	"github.com/placehound/placehound/internal/scraper"
	"github.com/placehound/placehound/pkg/record"
)

// Crawler runs queries against a single rendering surface. The surface is
// one exclusive session, so queries and listings are processed sequentially.
type Crawler struct {
	surface scraper.Surface
	config  Config
}

// New builds a crawler after validating the configuration.
func New(surface scraper.Surface, cfg Config) (*Crawler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Crawler{surface: surface, config: cfg}, nil
}

// Run executes every query in order and returns the merged result set plus
// a per-query outcome. A query that fails (feed never renders, navigation
// breaks) is recorded in its outcome and the run moves on. Records are
// merged as soon as they are fetched, so on cancellation the returned set
// holds everything completed up to that point alongside ctx's error.
func (c *Crawler) Run(ctx context.Context, queries []string) (*record.ResultSet, []record.Outcome, error) {
	set := record.NewResultSet()
	outcomes := make([]record.Outcome, 0, len(queries))

	for _, query := range queries {
		if err := ctx.Err(); err != nil {
			return set, outcomes, err
		}

		outcome := c.runQuery(ctx, query, set)
		outcomes = append(outcomes, outcome)

		if err := ctx.Err(); err != nil {
			return set, outcomes, err
		}
		if outcome.Err != nil {
			logger.Warn("query failed", "query", query, "error", outcome.Err)
		}
	}
	return set, outcomes, nil
}

func (c *Crawler) runQuery(ctx context.Context, query string, set *record.ResultSet) record.Outcome {
	outcome := record.Outcome{Query: query}

	handles, err := discover(ctx, c.surface, c.config, query)
	outcome.Discovered = len(handles)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	prevName := ""
	for i, h := range handles {
		if ctx.Err() != nil {
			outcome.Err = ctx.Err()
			return outcome
		}
		if i > 0 && c.config.FetchDelay > 0 {
			if err := sleep(ctx, c.config.FetchDelay); err != nil {
				outcome.Err = err
				return outcome
			}
		}

		b, err := fetchDetail(ctx, c.surface, c.config, h, prevName)
		if err != nil {
			if ctx.Err() != nil {
				outcome.Err = ctx.Err()
				return outcome
			}
			outcome.Failed++
			logger.Warn("listing fetch failed", "query", query, "listing", h.ID, "error", err)
			continue
		}

		outcome.Fetched++
		if b.Name != "" {
			prevName = b.Name
		}
		b.QuerySource = query
		if set.Add(b) {
			outcome.Merged++
		} else {
			logger.Debug("duplicate record dropped", "query", query, "name", b.Name)
		}
	}

	logger.Info("query complete",
		"query", query,
		"discovered", outcome.Discovered,
		"fetched", outcome.Fetched,
		"failed", outcome.Failed,
		"merged", outcome.Merged)
	return outcome
}
