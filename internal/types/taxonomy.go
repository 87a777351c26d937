package types

// TaxonomyCategory is a named cluster of related job titles and skill terms.
// Categories are loaded once at startup and read-only afterwards.
type TaxonomyCategory struct {
	Name       string   `json:"name"`
	JobTitles  []string `json:"job_titles"`
	SkillTerms []string `json:"skill_terms"`
}
