package enrich

import (
	"context"

	"github.com/placehound/placehound/internal/logger"
	"github.com/placehound/placehound/pkg/record"
)

// Enricher runs the optional post-extraction steps over a result set. Both
// steps are best-effort: a site that won't fetch or a model call that fails
// leaves the record as extracted.
type Enricher struct {
	hunter     *WebsiteHunter
	summarizer Summarizer
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithWebsiteHunter enables the website contact hunt.
func WithWebsiteHunter(h *WebsiteHunter) Option {
	return func(e *Enricher) { e.hunter = h }
}

// WithSummarizer enables model-written summaries.
func WithSummarizer(s Summarizer) Option {
	return func(e *Enricher) { e.summarizer = s }
}

// New builds an enricher. With no options it is a no-op.
func New(opts ...Option) *Enricher {
	e := &Enricher{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply enriches every record in place and returns the modified slice.
// Records without a website are left alone: both steps need one.
func (e *Enricher) Apply(ctx context.Context, records []record.Business) []record.Business {
	if e.hunter == nil && e.summarizer == nil {
		return records
	}

	for i := range records {
		if err := ctx.Err(); err != nil {
			return records
		}
		e.applyOne(ctx, &records[i])
	}
	return records
}

func (e *Enricher) applyOne(ctx context.Context, b *record.Business) {
	if b.Website == nil || *b.Website == "" {
		return
	}

	var pageText string
	if e.hunter != nil {
		contact, err := e.hunter.Hunt(ctx, *b.Website)
		if err != nil {
			logger.Debug("website hunt failed", "name", b.Name, "site", *b.Website, "error", err)
		}
		if b.Email == nil && contact.Email != "" {
			b.Email = &contact.Email
		}
		for platform, link := range contact.Socials {
			if b.Socials == nil {
				b.Socials = make(map[string]string)
			}
			if _, have := b.Socials[platform]; !have {
				b.Socials[platform] = link
			}
		}
		pageText = contact.PageText
	}

	if e.summarizer != nil && b.AboutSummary == nil {
		in := SummaryInput{
			Name:     b.Name,
			Website:  *b.Website,
			PageText: pageText,
		}
		if b.Category != nil {
			in.Category = *b.Category
		}
		if b.Address != nil {
			in.Address = *b.Address
		}
		summary, err := e.summarizer.Summarize(ctx, in)
		if err != nil {
			logger.Warn("summary failed", "name", b.Name, "provider", e.summarizer.Name(), "error", err)
			return
		}
		if summary != "" {
			b.AboutSummary = &summary
		}
	}
}
