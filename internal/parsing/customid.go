package parsing

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ResolveRecordID recovers the candidate id from a batch item's custom id.
// Both the "user_" and the older "unified_" prefix are accepted; anything
// else falls back to the digits embedded in the id.
func ResolveRecordID(customID string) (int, error) {
	switch {
	case strings.HasPrefix(customID, "user_"):
		return parseIDSuffix(customID, "user_")
	case strings.HasPrefix(customID, "unified_"):
		return parseIDSuffix(customID, "unified_")
	}

	var digits strings.Builder
	for _, r := range customID {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("custom id %q contains no record id", customID)
	}
	id, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, fmt.Errorf("custom id %q contains no usable record id: %w", customID, err)
	}
	return id, nil
}

func parseIDSuffix(customID, prefix string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(customID, prefix))
	if err != nil {
		return 0, fmt.Errorf("malformed custom id %q: %w", customID, err)
	}
	return id, nil
}
