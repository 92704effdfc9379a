package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// ParseRating converts a rendered rating like "4.7" or "4,7" to a number.
// Anything unparseable or outside the 0–5 scale yields nil.
func ParseRating(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	// Some locales render a decimal comma.
	value = strings.ReplaceAll(value, ",", ".")

	r, err := strconv.ParseFloat(value, 64)
	if err != nil || r < 0 || r > 5 {
		return nil
	}
	return &r
}

// ParseReviewCount converts a rendered review count like "(1,234)" or
// "1,234 reviews" to an integer, tolerating parenthesis markers, thousands
// separators and trailing unit text. Unparseable input yields nil.
func ParseReviewCount(value string) *int {
	cleaned := nonDigitRegex.ReplaceAllString(value, "")
	if cleaned == "" {
		return nil
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
