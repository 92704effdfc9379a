// Package extractor parses business fields out of a rendered detail view.
//
// Every field is looked up independently and best-effort: listings render
// wildly different content depending on category, so a missing element or
// an unparseable number leaves that one field unset instead of failing the
// record.
package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/placehound/placehound/pkg/record"
)

// Detail view selectors. Centralised so a markup change is a one-file fix.
const (
	nameSelector         = "h1.DUwDvf"
	nameFallbackSelector = "h1"
	ratingSelector       = `div.F7nice span[aria-hidden="true"]`
	reviewsSelector      = `div.F7nice span[aria-label*="review"]`
	addressSelector      = `button[data-item-id="address"] div.fontBodyMedium`
	phoneSelector        = `button[data-item-id^="phone:tel:"] div.fontBodyMedium`
	websiteSelector      = `a[data-item-id="authority"] div.fontBodyMedium`
	hoursSelector        = `button[data-item-id="oh"] div.fontBodyMedium`
	categorySelector     = "button.DkEaL"
	plusCodeSelector     = `button[data-item-id="oloc"] div.fontBodyMedium`
)

// Parse extracts a partial record from the detail view HTML. It never
// fails: unreadable input just yields a record with every field unset.
func Parse(html string) record.Business {
	var b record.Business

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return b
	}

	b.Name = text(doc, nameSelector)
	if b.Name == "" {
		b.Name = text(doc, nameFallbackSelector)
	}

	b.Address = optionalText(doc, addressSelector)
	b.Phone = optionalText(doc, phoneSelector)
	b.Website = optionalText(doc, websiteSelector)
	b.Hours = optionalText(doc, hoursSelector)
	b.Category = optionalText(doc, categorySelector)
	b.PlusCode = optionalText(doc, plusCodeSelector)

	b.Rating = ParseRating(text(doc, ratingSelector))
	b.ReviewCount = ParseReviewCount(text(doc, reviewsSelector))

	if email := FindEmail(html); email != "" {
		b.Email = &email
	}
	if socials := FindSocials(html); len(socials) > 0 {
		b.Socials = socials
	}

	return b
}

func text(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}

func optionalText(doc *goquery.Document, selector string) *string {
	v := text(doc, selector)
	if v == "" {
		return nil
	}
	return &v
}
