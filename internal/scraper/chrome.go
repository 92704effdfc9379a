package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/placehound/placehound/internal/logger"
)

// Chrome drives one headless browser tab via chromedp. The tab is the one
// exclusive session of a run: selection and navigation replace shared pane
// content, so callers must not interleave flows on a single Chrome.
type Chrome struct {
	config      Config
	allocCtx    context.Context
	cancelAlloc context.CancelFunc
	tabCtx      context.Context
	cancelTab   context.CancelFunc
}

// NewChrome starts a browser session with the given configuration.
func NewChrome(cfg Config) (*Chrome, error) {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultConfig().UserAgent
	}
	if cfg.OpTimeout == 0 {
		cfg.OpTimeout = DefaultConfig().OpTimeout
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(cfg.UserAgent),
		chromedp.WindowSize(1920, 1080),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)

	logger.Debug("browser session created", "headless", cfg.Headless)

	return &Chrome{
		config:      cfg,
		allocCtx:    allocCtx,
		cancelAlloc: cancelAlloc,
		tabCtx:      tabCtx,
		cancelTab:   cancelTab,
	}, nil
}

// run executes chromedp actions against the session tab, bounded by d.
func (c *Chrome) run(ctx context.Context, d time.Duration, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tctx, cancel := context.WithTimeout(c.tabCtx, d)
	defer cancel()
	return chromedp.Run(tctx, actions...)
}

// Navigate loads url and dismisses a consent interstitial when one renders.
func (c *Chrome) Navigate(ctx context.Context, url string) error {
	logger.Debug("navigate", "url", url)
	err := c.run(ctx, c.config.OpTimeout*3,
		chromedp.Navigate(url),
		chromedp.Evaluate(consentScript, nil),
	)
	if err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

// WaitVisible blocks until selector is visible or timeout elapses.
func (c *Chrome) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	return c.run(ctx, timeout, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

// ScrollBy scrolls the first selector match vertically by pixels.
func (c *Chrome) ScrollBy(ctx context.Context, selector string, pixels int) error {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		if (el) { el.scrollBy(0, %d); }
	})()`, selector, pixels)
	return c.run(ctx, c.config.OpTimeout, chromedp.Evaluate(js, nil))
}

// AttrAll returns attr for every current selector match, in document order.
func (c *Chrome) AttrAll(ctx context.Context, selector, attr string) ([]string, error) {
	js := fmt.Sprintf(`Array.from(document.querySelectorAll(%q))
		.map(el => el.getAttribute(%q) || '')
		.filter(v => v !== '')`, selector, attr)
	var values []string
	if err := c.run(ctx, c.config.OpTimeout, chromedp.Evaluate(js, &values)); err != nil {
		return nil, err
	}
	return values, nil
}

// Text returns the trimmed text of the first selector match, "" if none.
func (c *Chrome) Text(ctx context.Context, selector string) (string, error) {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		return el ? el.textContent.trim() : '';
	})()`, selector)
	var text string
	if err := c.run(ctx, c.config.OpTimeout, chromedp.Evaluate(js, &text)); err != nil {
		return "", err
	}
	return text, nil
}

// HTML returns the outer HTML of the first selector match.
func (c *Chrome) HTML(ctx context.Context, selector string) (string, error) {
	var html string
	if err := c.run(ctx, c.config.OpTimeout, chromedp.OuterHTML(selector, &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

// Exists reports whether any element currently matches selector.
func (c *Chrome) Exists(ctx context.Context, selector string) (bool, error) {
	js := fmt.Sprintf(`!!document.querySelector(%q)`, selector)
	var found bool
	if err := c.run(ctx, c.config.OpTimeout, chromedp.Evaluate(js, &found)); err != nil {
		return false, err
	}
	return found, nil
}

// Close tears the browser session down.
func (c *Chrome) Close() error {
	if c.cancelTab != nil {
		c.cancelTab()
	}
	if c.cancelAlloc != nil {
		c.cancelAlloc()
	}
	return nil
}

// consentScript clicks through the consent interstitial some regions show
// before any results render.
const consentScript = `(function () {
  const selectors = [
    'button[aria-label="Accept all"]',
    'button[aria-label="I agree"]',
    'button[aria-label="Alles akzeptieren"]',
    'button.VfPpkd-LgbsSe-OWXEXe-k8QpJ'
  ];
  for (const sel of selectors) {
    const btn = document.querySelector(sel);
    if (btn) {
      btn.click();
      return true;
    }
  }
  return false;
})();`
