package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-extractor/internal/types"
)

var numberedPrefix = regexp.MustCompile(`^\d+\.\s*`)

// RankedSkills resolves the Top10Skills list into exactly ten entries.
// The raw value may be comma-separated or a numbered list; when the model
// gave nothing, the primary and secondary languages stand in. Missing ranks
// are blank.
func RankedSkills(fields types.ParsedFieldSet) []string {
	var skills []string

	if raw := fields.Get("Top10Skills"); raw.Known {
		for _, part := range strings.Split(raw.Value, ",") {
			part = numberedPrefix.ReplaceAllString(strings.TrimSpace(part), "")
			if part != "" {
				skills = append(skills, part)
			}
		}
	} else {
		if f := fields.Get("PrimarySoftwareLanguage"); f.Known {
			skills = append(skills, f.Value)
		}
		if f := fields.Get("SecondarySoftwareLanguage"); f.Known {
			skills = append(skills, f.Value)
		}
	}

	for len(skills) < types.MaxRankedSkills {
		skills = append(skills, "")
	}
	return skills[:types.MaxRankedSkills]
}

// ApplyRankedSkills writes the ranked list into the Skill1..Skill10 fields.
// Blank ranks stay unknown so persistence leaves them NULL.
func ApplyRankedSkills(fields types.ParsedFieldSet, skills []string) {
	for i, skill := range skills {
		if i >= types.MaxRankedSkills {
			break
		}
		if f := types.NormalizeField(skill); f.Known {
			fields.Set("Skill"+strconv.Itoa(i+1), f)
		}
	}
}
