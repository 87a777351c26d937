// Package sanitize validates extracted fields before persistence: date
// columns get strict ISO form, LinkedIn URLs are standardized, duplicate
// phone numbers collapse, and oversized values are truncated to their
// column limits.
package sanitize

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/types"
)

// Apply runs every sanitizer over the field set in place. Values that fail
// validation revert to unknown so the store leaves them alone.
func Apply(fields types.ParsedFieldSet, log *zap.Logger) {
	for name, f := range fields {
		if !f.Known {
			continue
		}
		if types.IsDateField(name) {
			formatted, ok := FormatDate(f.Value)
			if !ok {
				log.Warn("unparseable date dropped", zap.String("field", name), zap.String("value", f.Value))
				fields[name] = types.UnknownField()
				continue
			}
			if formatted != f.Value {
				log.Info("date reformatted",
					zap.String("field", name),
					zap.String("from", f.Value),
					zap.String("to", formatted))
			}
			fields[name] = types.KnownField(formatted)
		}
	}

	if f := fields.Get("Linkedin"); f.Known {
		if url := SanitizeLinkedin(f.Value); url != "" {
			fields["Linkedin"] = types.KnownField(url)
		} else {
			log.Warn("invalid linkedin url dropped", zap.String("value", f.Value))
			fields["Linkedin"] = types.UnknownField()
		}
	}

	DedupPhones(fields, log)
	EnforceLimits(fields, log)
}

// dateLayouts are the accepted input shapes, most specific first. Layouts
// missing a day or month resolve to the first.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"2006/1/2",
	"2-1-2006",
	"2006-01",
	"Jan 2006",
	"January 2006",
	"1-2006",
	"2006",
}

var (
	ymdPattern  = regexp.MustCompile(`(\d{4})[/-](\d{1,2})[/-](\d{1,2})`)
	ymPattern   = regexp.MustCompile(`(\d{4})[/-](\d{1,2})`)
	yearPattern = regexp.MustCompile(`(\d{4})`)
)

// FormatDate normalizes a date string to YYYY-MM-DD. "Present" and other
// unparseable values report false; loose fragments fall back to regex
// extraction with missing parts defaulting to the first of the period.
func FormatDate(value string) (string, bool) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" || strings.EqualFold(cleaned, "present") {
		return "", false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			return parsed.Format("2006-01-02"), true
		}
	}

	if m := ymdPattern.FindStringSubmatch(cleaned); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[1], pad2(m[2]), pad2(m[3])), true
	}
	if m := ymPattern.FindStringSubmatch(cleaned); m != nil {
		return fmt.Sprintf("%s-%s-01", m[1], pad2(m[2])), true
	}
	if m := yearPattern.FindStringSubmatch(cleaned); m != nil {
		return m[1] + "-01-01", true
	}
	return "", false
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// Identifiers too generic to point at a real profile.
var genericLinkedinNames = map[string]bool{
	"user": true, "profile": true, "linkedin": true,
	"my": true, "page": true, "me": true,
}

var (
	genericLinkedinPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^https?://(?:www\.)?linkedin\.com/?$`),
		regexp.MustCompile(`^https?://(?:www\.)?linkedin\.com/in/?$`),
		regexp.MustCompile(`^https?://(?:www\.)?linkedin\.com/pub/?$`),
		regexp.MustCompile(`^https?://(?:www\.)?linkedin\.com/profile/?$`),
		regexp.MustCompile(`^https?://(?:www\.)?linkedin\.com/company/?$`),
		regexp.MustCompile(`^linkedin$`),
		regexp.MustCompile(`^linkedin\.com$`),
	}
	linkedinUsernamePattern = regexp.MustCompile(`linkedin\.com/in/([\w\-.%]+)`)
	otherLinkedinPatterns   = []*regexp.Regexp{
		regexp.MustCompile(`^https?://(?:www\.)?linkedin\.com/pub/([\w\-.%/]+)$`),
		regexp.MustCompile(`^https?://(?:www\.)?linkedin\.com/profile/([\w\-.%]+)$`),
		regexp.MustCompile(`^https?://(?:www\.)?linkedin\.com/company/([\w\-.%]+)/?$`),
	}
	bareHandlePattern = regexp.MustCompile(`^[\w\-.%]+$`)
)

func isGenericLinkedinName(name string) bool {
	return len(name) < 4 || genericLinkedinNames[strings.ToLower(name)]
}

// SanitizeLinkedin validates a LinkedIn reference and returns the
// standardized profile URL, or "" when the value is generic or malformed.
// Bare handles are accepted and expanded to full profile URLs.
func SanitizeLinkedin(value string) string {
	url := strings.TrimSpace(value)
	if url == "" {
		return ""
	}

	for _, pattern := range genericLinkedinPatterns {
		if pattern.MatchString(url) {
			return ""
		}
	}

	if m := linkedinUsernamePattern.FindStringSubmatch(url); m != nil {
		if isGenericLinkedinName(m[1]) {
			return ""
		}
		return "https://www.linkedin.com/in/" + m[1]
	}

	for _, pattern := range otherLinkedinPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			if isGenericLinkedinName(m[1]) {
				return ""
			}
			return url
		}
	}

	if bareHandlePattern.MatchString(url) && !strings.HasPrefix(url, "http") {
		if isGenericLinkedinName(url) {
			return ""
		}
		return "https://www.linkedin.com/in/" + url
	}

	return ""
}

var nonDigits = regexp.MustCompile(`\D`)

// normalizePhone reduces a phone number to digits for comparison. Values
// with an implausible digit count compare as-is.
func normalizePhone(phone string) string {
	if phone == "" {
		return ""
	}
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) >= 7 && len(digits) <= 15 {
		return digits
	}
	return phone
}

// DedupPhones clears Phone2 when it is the same number as Phone1, even if
// formatted differently.
func DedupPhones(fields types.ParsedFieldSet, log *zap.Logger) {
	p1, p2 := fields.Get("Phone1"), fields.Get("Phone2")
	if !p1.Known || !p2.Known {
		return
	}
	n1, n2 := normalizePhone(p1.Value), normalizePhone(p2.Value)
	if n1 != "" && n1 == n2 {
		log.Info("duplicate phone number cleared",
			zap.String("phone1", p1.Value),
			zap.String("phone2", p2.Value))
		fields["Phone2"] = types.UnknownField()
	}
}

// EnforceLimits truncates known values to their column limits. Limits count
// characters, not bytes, so multibyte values are never cut mid-rune. Fields
// with no limit (text columns) pass through untouched.
func EnforceLimits(fields types.ParsedFieldSet, log *zap.Logger) {
	for name, f := range fields {
		if !f.Known {
			continue
		}
		limit, ok := types.FieldLimits[name]
		if !ok || limit == 0 || utf8.RuneCountInString(f.Value) <= limit {
			continue
		}
		runes := []rune(f.Value)
		log.Warn("field truncated",
			zap.String("field", name),
			zap.Int("from", len(runes)),
			zap.Int("to", limit))
		fields[name] = types.KnownField(string(runes[:limit]))
	}
}
