package output

import (
	"sort"
	"strconv"
	"strings"

	"github.com/placehound/placehound/pkg/record"
)

// columns is the fixed tabular layout shared by the CSV and XLSX writers.
// Every export carries every column; absent fields render as empty cells.
var columns = []string{
	"Name",
	"Address",
	"Phone",
	"Website",
	"Rating",
	"Review Count",
	"Category",
	"Hours",
	"Plus Code",
	"Email",
	"Social Media",
	"About Summary",
	"URL",
	"Query Source",
}

func row(b record.Business) []string {
	return []string{
		b.Name,
		strCell(b.Address),
		strCell(b.Phone),
		strCell(b.Website),
		ratingCell(b.Rating),
		countCell(b.ReviewCount),
		strCell(b.Category),
		strCell(b.Hours),
		strCell(b.PlusCode),
		strCell(b.Email),
		socialsCell(b.Socials),
		strCell(b.AboutSummary),
		b.SourceURL,
		b.QuerySource,
	}
}

func strCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func ratingCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func countCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func socialsCell(socials map[string]string) string {
	if len(socials) == 0 {
		return ""
	}
	platforms := make([]string, 0, len(socials))
	for p := range socials {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)

	parts := make([]string, 0, len(platforms))
	for _, p := range platforms {
		parts = append(parts, p+": "+socials[p])
	}
	return strings.Join(parts, "; ")
}
