package types

import "strings"

// Ordinal prefixes for the up-to-seven work-history field groups, most
// recent first. Company/date/location field names are built from these.
var StintOrdinals = []string{"", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh"}

// StintFieldNames returns the (company, start, end, location) field names
// for the i-th most recent job, 0-based.
func StintFieldNames(i int) (company, start, end, location string) {
	prefix := StintOrdinals[i] + "MostRecent"
	return prefix + "Company", prefix + "StartDate", prefix + "EndDate", prefix + "Location"
}

// MaxStints is the number of work-history entries tracked per candidate.
const MaxStints = 7

// MaxRankedSkills is the number of ranked skill columns.
const MaxRankedSkills = 10

// FieldLimits maps every writable candidate field to its maximum stored
// length. A limit of 0 means unlimited (text columns). The table doubles
// as the column allowlist for the persistence writer: a field absent here
// is never written.
var FieldLimits = map[string]int{
	// Unlimited text fields
	"Summary":        0,
	"Certifications": 0,
	"ProjectTypes":   0,
	"Specialty":      0,

	"PrimaryTitle":   255,
	"SecondaryTitle": 255,
	"TertiaryTitle":  255,

	"FirstName":  100,
	"MiddleName": 100,
	"LastName":   100,
	"Address":    255,
	"City":       100,
	"State":      50,
	"ZipCode":    9,
	"Phone1":     50,
	"Phone2":     50,
	"Email":      255,
	"Email2":     255,
	"Linkedin":   255,
	"Bachelors":  255,
	"Masters":    255,

	"MostRecentCompany":          255,
	"MostRecentStartDate":        50,
	"MostRecentEndDate":          50,
	"MostRecentLocation":         255,
	"SecondMostRecentCompany":    255,
	"SecondMostRecentStartDate":  50,
	"SecondMostRecentEndDate":    50,
	"SecondMostRecentLocation":   255,
	"ThirdMostRecentCompany":     255,
	"ThirdMostRecentStartDate":   50,
	"ThirdMostRecentEndDate":     50,
	"ThirdMostRecentLocation":    255,
	"FourthMostRecentCompany":    255,
	"FourthMostRecentStartDate":  50,
	"FourthMostRecentEndDate":    50,
	"FourthMostRecentLocation":   255,
	"FifthMostRecentCompany":     255,
	"FifthMostRecentStartDate":   50,
	"FifthMostRecentEndDate":     50,
	"FifthMostRecentLocation":    255,
	"SixthMostRecentCompany":     255,
	"SixthMostRecentStartDate":   50,
	"SixthMostRecentEndDate":     50,
	"SixthMostRecentLocation":    255,
	"SeventhMostRecentCompany":   255,
	"SeventhMostRecentStartDate": 50,
	"SeventhMostRecentEndDate":   50,
	"SeventhMostRecentLocation":  255,

	"PrimaryIndustry":   255,
	"SecondaryIndustry": 255,

	"Skill1":  100,
	"Skill2":  100,
	"Skill3":  100,
	"Skill4":  100,
	"Skill5":  100,
	"Skill6":  100,
	"Skill7":  100,
	"Skill8":  100,
	"Skill9":  100,
	"Skill10": 100,

	"PrimarySoftwareLanguage":   255,
	"SecondarySoftwareLanguage": 255,
	"TertiarySoftwareLanguage":  255,
	"SoftwareApp1":              255,
	"SoftwareApp2":              255,
	"SoftwareApp3":              255,
	"SoftwareApp4":              255,
	"SoftwareApp5":              255,
	"Hardware1":                 255,
	"Hardware2":                 255,
	"Hardware3":                 255,
	"Hardware4":                 255,
	"Hardware5":                 255,

	"PrimaryCategory":   255,
	"SecondaryCategory": 255,

	"LengthinUS":        50,
	"YearsofExperience": 50,
	"AvgTenure":         50,
}

// IsDateField reports whether a field holds a calendar date. All date
// fields share the "Date" suffix naming convention.
func IsDateField(name string) bool {
	return strings.HasSuffix(name, "Date")
}
