// Package record defines the business data model produced by a scrape run.
package record

import (
	"strings"
)

// Business holds everything extracted for a single listing. Optional fields
// are pointers so that "not found on the page" serializes as an explicit
// JSON null instead of a zero value or a missing column.
type Business struct {
	Name         string            `json:"name"`
	Address      *string           `json:"address"`
	Phone        *string           `json:"phone"`
	Website      *string           `json:"website"`
	Rating       *float64          `json:"rating"`
	ReviewCount  *int              `json:"review_count"`
	Category     *string           `json:"category"`
	Hours        *string           `json:"hours"`
	PlusCode     *string           `json:"plus_code"`
	Email        *string           `json:"email"`
	Socials      map[string]string `json:"social_media"`
	AboutSummary *string           `json:"about_summary"`
	SourceURL    string            `json:"url"`
	QuerySource  string            `json:"query_source"`
}

// LowConfidence reports whether the record lacks its identifying field.
// Nameless records are still kept (partial data beats no data) but callers
// may want to surface them differently.
func (b Business) LowConfidence() bool {
	return strings.TrimSpace(b.Name) == ""
}

// DedupKey returns the identity used for cross-query deduplication: the
// normalized name plus normalized address. Records missing either part get
// an empty key and are never considered duplicates of anything.
func (b Business) DedupKey() string {
	name := Normalize(b.Name)
	if name == "" || b.Address == nil {
		return ""
	}
	addr := Normalize(*b.Address)
	if addr == "" {
		return ""
	}
	return name + "|" + addr
}

// Normalize lowercases a value and collapses all interior whitespace so
// that cosmetic differences don't defeat deduplication.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
