package parsing

import "github.com/jonathan/resume-extractor/internal/types"

// lineKeySynonyms maps the "key: value" labels that have appeared across
// prompt revisions to canonical field names. Used by the line-based pass.
var lineKeySynonyms = buildLineKeySynonyms()

func buildLineKeySynonyms() map[string]string {
	m := map[string]string{
		"First Name":        "FirstName",
		"Middle Name":       "MiddleName",
		"Last Name":         "LastName",
		"Street Address":    "Address",
		"City":              "City",
		"State":             "State",
		"Zip Code":          "ZipCode",
		"Phone Number 1":    "Phone1",
		"Phone Number 2":    "Phone2",
		"Email 1":           "Email",
		"Email 2":           "Email2",
		"LinkedIn URL":      "Linkedin",
		"Bachelor's Degree": "Bachelors",
		"Master's Degree":   "Masters",
		"Certifications":    "Certifications",

		"Primary Job Title":   "PrimaryTitle",
		"Secondary Job Title": "SecondaryTitle",
		"Tertiary Job Title":  "TertiaryTitle",

		"Best job title that fit their primary experience":              "PrimaryTitle",
		"Best job title that fits their primary experience":             "PrimaryTitle",
		"Best job title fitting their primary experience":               "PrimaryTitle",
		"Best secondary job title that fits their secondary experience": "SecondaryTitle",
		"Best tertiary job title that fits their tertiary experience":   "TertiaryTitle",

		"Primary Industry":        "PrimaryIndustry",
		"Secondary Industry":      "SecondaryIndustry",
		"Top 10 Technical Skills": "Top10Skills",

		"What technical language do they use most often?":        "PrimarySoftwareLanguage",
		"What technical language do they use second most often?": "SecondarySoftwareLanguage",
		"What technical language do they use third most often?":  "TertiarySoftwareLanguage",

		"What software do they talk about using the most?":        "SoftwareApp1",
		"What software do they talk about using the second most?": "SoftwareApp2",
		"What software do they talk about using the third most?":  "SoftwareApp3",
		"What software do they talk about using the fourth most?": "SoftwareApp4",
		"What software do they talk about using the fifth most?":  "SoftwareApp5",

		"What physical hardware do they talk about using the most?":        "Hardware1",
		"What physical hardware do they talk about using the second most?": "Hardware2",
		"What physical hardware do they talk about using the third most?":  "Hardware3",
		"What physical hardware do they talk about using the fourth most?": "Hardware4",
		"What physical hardware do they talk about using the fifth most?":  "Hardware5",

		"Based on their skills, put them in a primary technical category":                                      "PrimaryCategory",
		"Based on their skills, put them in a subsidiary technical category":                                   "SecondaryCategory",
		"Types of projects they have worked on":                                                                "ProjectTypes",
		"Based on their skills, categories, certifications, and industries, determine what they specialize in": "Specialty",
		"Based on all this knowledge, write a summary of this candidate that could be sellable to an employer": "Summary",
		"How long have they lived in the United States(numerical answer only)":                                 "LengthinUS",
		"Total years of professional experience (numerical answer only)":                                       "YearsofExperience",
		"Average tenure at companies in years (numerical answer only)":                                         "AvgTenure",
	}

	for i, prefix := range stintPrefixes {
		company, start, end, location := types.StintFieldNames(i)
		m[prefix+"Most Recent Company"] = company
		m[prefix+"Most Recent Start Date"] = start
		m[prefix+"Most Recent End Date"] = end
		m[prefix+"Most Recent Job Location"] = location
	}
	return m
}
