package parsing

import (
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/types"
)

// ParseResponse extracts candidate fields from a model response. The regex
// pass runs first and its values win; the line-based pass fills whatever the
// regexes missed. Blank and "NULL" values stay unknown.
func ParseResponse(responseText string, log *zap.Logger) types.ParsedFieldSet {
	fields := types.ParsedFieldSet{}

	extractFormattedHardware(responseText, fields)

	for _, fc := range extractionChains {
		if fields.Get(fc.field).Known {
			continue
		}
		for _, pattern := range fc.patterns {
			m := pattern.FindStringSubmatch(responseText)
			if m == nil {
				continue
			}
			if f := types.NormalizeField(m[1]); f.Known {
				fields.Set(fc.field, f)
			}
			break
		}
	}

	mergeLineFields(responseText, fields)

	hardware := 0
	for i := 1; i <= 5; i++ {
		if fields.Get("Hardware" + strconv.Itoa(i)).Known {
			hardware++
		}
	}
	if hardware > 0 && hardware < 5 {
		log.Warn("incomplete hardware extraction", zap.Int("populated", hardware))
	}
	log.Debug("response parsed", zap.Int("fields", fields.KnownCount()))

	return fields
}

// extractFormattedHardware reads the "Hardware N: value" block the prompt
// asks for. These take precedence over the looser per-field patterns.
func extractFormattedHardware(responseText string, fields types.ParsedFieldSet) {
	section := hardwareSectionPattern.FindStringSubmatch(responseText)
	if section == nil {
		return
	}
	for _, item := range hardwareItemPattern.FindAllStringSubmatch(section[1], -1) {
		idx, err := strconv.Atoi(item[1])
		if err != nil || idx < 1 || idx > 5 {
			continue
		}
		if f := types.NormalizeField(item[2]); f.Known {
			fields.Set("Hardware"+item[1], f)
		}
	}
}

// mergeLineFields is the fallback pass: walk the response line by line,
// treat "key: value" pairs as fields, and map historical key phrasings to
// canonical names. Never overwrites a value the regex pass found.
func mergeLineFields(responseText string, fields types.ParsedFieldSet) {
	for _, line := range strings.Split(strings.TrimSpace(responseText), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isSectionHeader(line) {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.Trim(key, "- \t")

		canonical, ok := lineKeySynonyms[key]
		if !ok {
			continue
		}
		if f := types.NormalizeField(value); f.Known {
			fields.SetIfUnknown(canonical, f)
		}
	}
}

// isSectionHeader recognizes ALL-CAPS section markers like "WORK HISTORY:".
func isSectionHeader(line string) bool {
	if !strings.HasSuffix(line, ":") {
		return false
	}
	hasLetter := false
	for _, r := range line {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
