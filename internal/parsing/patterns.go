// Package parsing turns free-form model responses back into canonical
// candidate fields. Responses have drifted through several prompt revisions,
// so extraction layers an ordered regex pass over a line-based fallback.
package parsing

import (
	"fmt"
	"regexp"

	"github.com/jonathan/resume-extractor/internal/types"
)

// fieldChain is an ordered list of patterns for one field; the first match
// wins. Every pattern captures the value after the label.
type fieldChain struct {
	field    string
	patterns []*regexp.Regexp
}

func chain(field string, exprs ...string) fieldChain {
	compiled := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		compiled[i] = regexp.MustCompile(expr)
	}
	return fieldChain{field: field, patterns: compiled}
}

// Ordinal wordings for the seven work-history slots and the five ranked
// technical slots. The first work-history slot has no prefix.
var (
	stintPrefixes  = []string{"", "Second ", "Third ", "Fourth ", "Fifth ", "Sixth ", "Seventh "}
	rankAdverbs    = []string{"most", "second most", "third most", "fourth most", "fifth most"}
	rankAdjectives = []string{"Primary", "Secondary", "Tertiary", "Fourth", "Fifth"}
	rankOrdinals   = []string{"Most", "Second most", "Third most", "Fourth most", "Fifth most"}
)

// extractionChains holds every pass-1 chain, in extraction order.
var extractionChains = buildChains()

func buildChains() []fieldChain {
	chains := []fieldChain{
		chain("PrimaryTitle",
			`Best job title that fits? their primary experience:\s*(.+)`,
			`Best job title that fit their primary experience:\s*(.+)`,
			`Primary Job Title:\s*(.+)`,
		),
		chain("SecondaryTitle",
			`Best secondary job title that fits their secondary experience:\s*(.+)`,
			`Best job title that fits their secondary experience:\s*(.+)`,
			`Secondary Job Title:\s*(.+)`,
		),
		chain("TertiaryTitle",
			`Best tertiary job title that fits their tertiary experience:\s*(.+)`,
			`Best job title that fits their tertiary experience:\s*(.+)`,
			`Tertiary Job Title:\s*(.+)`,
		),
	}

	for i, prefix := range stintPrefixes {
		company, start, end, location := types.StintFieldNames(i)
		chains = append(chains,
			chain(company,
				fmt.Sprintf(`%sMost Recent Company Worked for:\s*(.+)`, prefix),
				fmt.Sprintf(`%sMost Recent Company:\s*(.+)`, prefix),
			),
			chain(start,
				fmt.Sprintf(`%sMost Recent Start Date \(YYYY-MM-DD\):\s*(.+)`, prefix),
				fmt.Sprintf(`%sMost Recent Start Date:\s*(.+)`, prefix),
			),
			chain(end,
				fmt.Sprintf(`%sMost Recent End Date \(YYYY-MM-DD\):\s*(.+)`, prefix),
				fmt.Sprintf(`%sMost Recent End Date:\s*(.+)`, prefix),
			),
			chain(location,
				fmt.Sprintf(`%sMost Recent Job Location:\s*(.+)`, prefix),
				fmt.Sprintf(`%sMost Recent Location:\s*(.+)`, prefix),
			),
		)
	}

	chains = append(chains,
		chain("PrimaryIndustry",
			`Based on all 7 of their most recent companies above, what is the Primary industry they work in:\s*(.+)`,
			`Primary Industry:\s*(.+)`,
			`What is the Primary industry they work in:\s*(.+)`,
			`Primary industry they work in:\s*(.+)`,
			`Primary industry:\s*(.+)`,
		),
		chain("SecondaryIndustry",
			`Based on all 7 of their most recent companies above, what is the Secondary industry they work in:\s*(.+)`,
			`Secondary Industry:\s*(.+)`,
			`What is the Secondary industry they work in:\s*(.+)`,
			`Secondary industry they work in:\s*(.+)`,
			`Secondary industry:\s*(.+)`,
			`Second most common industry:\s*(.+)`,
			`Second industry:\s*(.+)`,
		),
		chain("Address",
			`Their street address:\s*(.+)`,
			`Street Address:\s*(.+)`,
			`Address:\s*(.+)`,
		),
		chain("City", `Their City:\s*(.+)`, `City:\s*(.+)`),
		chain("State", `Their State:\s*(.+)`, `State:\s*(.+)`),
		chain("ZipCode",
			`Their Zip Code:\s*(.+)`,
			`Zip Code:\s*(.+)`,
			`Their Zip:\s*(.+)`,
			`Zip:\s*(.+)`,
			`Zipcode:\s*(.+)`,
		),
		chain("Phone1",
			`Their Phone Number:\s*(.+)`,
			`Phone Number 1:\s*(.+)`,
			`Their Phone Number 1:\s*(.+)`,
			`Phone1:\s*(.+)`,
		),
		chain("Phone2",
			`Their Second Phone Number:\s*(.+)`,
			`Phone Number 2:\s*(.+)`,
			`Their Phone Number 2:\s*(.+)`,
			`Phone2:\s*(.+)`,
		),
		chain("Email",
			`Their Email:\s*(.+)`,
			`Email 1:\s*(.+)`,
			`Their Email 1:\s*(.+)`,
			`Email:\s*(.+)`,
		),
		chain("Email2",
			`Their Second Email:\s*(.+)`,
			`Email 2:\s*(.+)`,
			`Their Email 2:\s*(.+)`,
			`Email2:\s*(.+)`,
		),
		chain("FirstName",
			`Their First Name:\s*(.+)`,
			`First Name:\s*(.+)`,
			`- First Name:\s*(.+)`,
		),
		chain("MiddleName", `Their Middle Name:\s*(.+)`, `Middle Name:\s*(.+)`),
		chain("LastName", `Their Last Name:\s*(.+)`, `Last Name:\s*(.+)`),
		chain("Linkedin",
			`Their Linkedin URL:\s*(.+)`,
			`LinkedIn URL:\s*(.+)`,
			`LinkedIn:\s*(.+)`,
		),
		chain("Bachelors",
			`Their Bachelor's Degree:\s*(.+)`,
			`Bachelor's Degree:\s*(.+)`,
			`Bachelors:\s*(.+)`,
		),
		chain("Masters",
			`Their Master's Degree:\s*(.+)`,
			`Master's Degree:\s*(.+)`,
			`Masters:\s*(.+)`,
		),
		chain("Certifications",
			`Their Certifications Listed:\s*(.+)`,
			`Certifications:\s*(.+)`,
			`Certifications Listed:\s*(.+)`,
		),
		chain("Top10Skills",
			`Top 10 Technical Skills:\s*(.+)`,
		),
	)

	chains = append(chains, technicalChains()...)
	return chains
}

func technicalChains() []fieldChain {
	chains := []fieldChain{
		chain("PrimarySoftwareLanguage",
			`What technical language do they use most often\?:\s*(.+)`,
			`What programming language do they talk most about the most\?:\s*(.+)`,
			`Primary technical language:\s*(.+)`,
			`Most used programming language:\s*(.+)`,
		),
		chain("SecondarySoftwareLanguage",
			`What technical language do they use second most often\?:\s*(.+)`,
			`What programming language do they talk most about the second most\?:\s*(.+)`,
			`Secondary technical language:\s*(.+)`,
			`Second most used programming language:\s*(.+)`,
		),
		chain("TertiarySoftwareLanguage",
			`What technical language do they use third most often\?:\s*(.+)`,
			`What programming language do they talk most about the third the most\?:\s*(.+)`,
			`Tertiary technical language:\s*(.+)`,
			`Third most used programming language:\s*(.+)`,
		),
	}

	for i := 0; i < 5; i++ {
		chains = append(chains, chain(fmt.Sprintf("SoftwareApp%d", i+1),
			fmt.Sprintf(`(?:- )?What software do they talk about using the %s\?:\s*(.+)`, rankAdverbs[i]),
			fmt.Sprintf(`%s software application:\s*(.+)`, rankAdjectives[i]),
			fmt.Sprintf(`%s used software:\s*(.+)`, rankOrdinals[i]),
		))
	}

	for i := 0; i < 5; i++ {
		chains = append(chains, chain(fmt.Sprintf("Hardware%d", i+1),
			fmt.Sprintf(`What physical hardware do they talk about using the %s\?:\s*(.+)`, rankAdverbs[i]),
			fmt.Sprintf(`%s hardware:\s*(.+)`, rankAdjectives[i]),
			fmt.Sprintf(`%s used hardware:\s*(.+)`, rankOrdinals[i]),
			fmt.Sprintf(`%s physical device:\s*(.+)`, rankAdjectives[i]),
			fmt.Sprintf(`%s common hardware device:\s*(.+)`, rankOrdinals[i]),
			fmt.Sprintf(`Hardware %d:\s*(.+)`, i+1),
		))
	}

	chains = append(chains,
		chain("PrimaryCategory",
			`Based on their skills, put them in a primary technical category:\s*(.+)`,
		),
		chain("SecondaryCategory",
			`Based on their skills, put them in a subsidiary technical category:\s*(.+)`,
			`Based on their skills, put them in a secondary technical category:\s*(.+)`,
			`Secondary technical category:\s*(.+)`,
			`subsidiary technical category:\s*(.+)`,
			`Second technical category:\s*(.+)`,
			`Second most relevant technical category:\s*(.+)`,
		),
		chain("ProjectTypes",
			`Types of projects they have worked on:\s*(.+)`,
		),
		chain("Specialty",
			`Based on their skills, categories, certifications, and industries, determine what they specialize in:\s*(.+)`,
		),
		chain("Summary",
			`Based on all this knowledge, write a summary of this candidate that could be sellable to an employer:\s*(.+)`,
			`Based on all this knowledge, write a summary of this candidate:\s*(.+)`,
		),
		chain("LengthinUS",
			`How long have they lived in the United States\(numerical answer only\):\s*(.+)`,
		),
		chain("YearsofExperience",
			`Total years of professional experience \(numerical answer only\):\s*(.+)`,
		),
		chain("AvgTenure",
			`Average tenure at companies in years \(numerical answer only\):\s*(.+)`,
		),
	)
	return chains
}

// Formatted hardware block: "Hardware 1: ..." lines up to the next prompt
// section.
var (
	hardwareSectionPattern = regexp.MustCompile(`(?s)(Hardware 1:.+?)(?:Based on their skills|$)`)
	hardwareItemPattern    = regexp.MustCompile(`Hardware (\d): (.+)`)
)
