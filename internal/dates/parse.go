// Package dates normalizes resume date strings and derives experience
// metrics from work history.
package dates

import (
	"regexp"
	"strings"
	"time"
)

// currentIndicators are end-date phrasings that mean "still employed".
var currentIndicators = []string{
	"present", "current", "now", "to date", "today",
	"ongoing", "to present", "currently",
}

// dateFormat pairs a shape check with a parse layout and the confidence
// earned when it matches. Formats missing a day or month default them to 1.
type dateFormat struct {
	pattern    *regexp.Regexp
	layouts    []string
	confidence float64
}

var dateFormats = []dateFormat{
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), []string{"2006-01-02"}, 1.0},
	{regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`), []string{"1/2/2006"}, 0.9},
	{regexp.MustCompile(`^[A-Za-z]{3,9}\s+\d{4}$`), []string{"Jan 2006", "January 2006"}, 0.7},
	{regexp.MustCompile(`^\d{4}-\d{2}$`), []string{"2006-01"}, 0.7},
	{regexp.MustCompile(`^\d{1,2}/\d{4}$`), []string{"1/2006"}, 0.7},
	{regexp.MustCompile(`^\d{4}$`), []string{"2006"}, 0.5},
}

var innerSpace = regexp.MustCompile(`\s+`)

// ParseDate parses a resume date string and reports a confidence score for
// the format that matched: full ISO dates score 1.0, slash dates 0.9,
// month-year forms 0.7, bare years 0.5. Blank strings, "NULL", and
// current-position indicators parse to nothing. Dates after today are
// rejected unless allowFuture is set.
func ParseDate(raw string, allowFuture bool, today time.Time) (time.Time, float64, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return time.Time{}, 0, false
	}

	lower := strings.ToLower(cleaned)
	if strings.EqualFold(cleaned, "NULL") {
		return time.Time{}, 0, false
	}
	for _, indicator := range currentIndicators {
		if lower == indicator {
			return time.Time{}, 0, false
		}
	}

	normalized := innerSpace.ReplaceAllString(cleaned, " ")
	for _, df := range dateFormats {
		if !df.pattern.MatchString(normalized) {
			continue
		}
		for _, layout := range df.layouts {
			parsed, err := time.Parse(layout, normalized)
			if err != nil {
				continue
			}
			if !allowFuture && parsed.After(today) {
				return time.Time{}, 0, false
			}
			return parsed, df.confidence, true
		}
	}

	return time.Time{}, 0, false
}

// IsCurrentPosition reports whether an end-date string describes a position
// still held: blank or "NULL", a current-position phrase anywhere in the
// text, or a date in the future.
func IsCurrentPosition(endDate string, today time.Time) bool {
	lower := strings.ToLower(endDate)
	if strings.TrimSpace(lower) == "" || lower == "null" {
		return true
	}

	for _, indicator := range currentIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}

	if parsed, _, ok := ParseDate(endDate, true, today); ok && parsed.After(today) {
		return true
	}
	return false
}
