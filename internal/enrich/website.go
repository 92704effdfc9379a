// Package enrich augments extracted records with data the detail view does
// not carry: contact details scraped from the business's own website and an
// optional model-written summary.
package enrich

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/placehound/placehound/internal/extractor"
	"github.com/placehound/placehound/internal/logger"
)

// WebsiteConfig tunes the website contact hunt.
type WebsiteConfig struct {
	UserAgent   string
	Timeout     time.Duration
	MaxBodySize int
	// MaxPages bounds how many pages of one site get visited.
	MaxPages int
}

// DefaultWebsiteConfig returns the hunt defaults.
func DefaultWebsiteConfig() WebsiteConfig {
	return WebsiteConfig{
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		Timeout:     10 * time.Second,
		MaxBodySize: 2 * 1024 * 1024,
		MaxPages:    5,
	}
}

// Contact is what a website hunt turns up.
type Contact struct {
	Email   string
	Socials map[string]string
	// PageText is the cleaned text of the landing page, kept for the
	// optional summarization step.
	PageText string
}

// WebsiteHunter fetches a business website and scans it for an email
// address and social profiles. It stays on the site's host and follows a
// handful of contact-looking links from the landing page.
type WebsiteHunter struct {
	config WebsiteConfig
}

// NewWebsiteHunter creates a hunter with the given configuration.
func NewWebsiteHunter(cfg WebsiteConfig) *WebsiteHunter {
	def := DefaultWebsiteConfig()
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxBodySize == 0 {
		cfg.MaxBodySize = def.MaxBodySize
	}
	if cfg.MaxPages == 0 {
		cfg.MaxPages = def.MaxPages
	}
	return &WebsiteHunter{config: cfg}
}

// contact-looking link fragments, checked against both href and anchor text.
var contactHints = []string{"contact", "about", "impressum", "kontakt"}

// Hunt visits site and returns whatever contact details it finds. A site
// that yields nothing is not an error.
func (h *WebsiteHunter) Hunt(ctx context.Context, site string) (Contact, error) {
	var contact Contact

	target, err := normalizeSite(site)
	if err != nil {
		return contact, err
	}

	c := colly.NewCollector(
		colly.UserAgent(h.config.UserAgent),
		colly.AllowedDomains(target.Hostname()),
		colly.MaxDepth(2),
		colly.MaxBodySize(h.config.MaxBodySize),
	)
	c.SetRequestTimeout(h.config.Timeout)

	pages := 0
	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil || pages >= h.config.MaxPages {
			r.Abort()
			return
		}
		pages++
	})

	c.OnResponse(func(r *colly.Response) {
		body := string(r.Body)
		if contact.Email == "" {
			contact.Email = extractor.FindEmail(body)
		}
		for platform, link := range extractor.FindSocials(body) {
			if contact.Socials == nil {
				contact.Socials = make(map[string]string)
			}
			if _, have := contact.Socials[platform]; !have {
				contact.Socials[platform] = link
			}
		}
	})

	c.OnHTML("html", func(e *colly.HTMLElement) {
		if e.Request.Depth == 1 && contact.PageText == "" {
			e.DOM.Find("script, style, noscript").Remove()
			contact.PageText = strings.Join(strings.Fields(e.DOM.Text()), " ")
		}
	})

	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		if contact.Email != "" {
			return
		}
		href := strings.ToLower(e.Attr("href"))
		text := strings.ToLower(e.Text)
		for _, hint := range contactHints {
			if strings.Contains(href, hint) || strings.Contains(text, hint) {
				if err := e.Request.Visit(e.Attr("href")); err == nil {
					logger.Debug("following contact link", "site", site, "href", e.Attr("href"))
				}
				return
			}
		}
	})

	if err := c.Visit(target.String()); err != nil {
		return contact, err
	}
	c.Wait()

	return contact, ctx.Err()
}

// normalizeSite turns the bare domain the detail view shows into a
// fetchable URL.
func normalizeSite(site string) (*url.URL, error) {
	site = strings.TrimSpace(site)
	if !strings.Contains(site, "://") {
		site = "https://" + site
	}
	return url.Parse(site)
}
