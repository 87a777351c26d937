// Package taxonomy loads the skills taxonomy and scores resume text against
// it to pick the categories worth including in a prompt.
package taxonomy

import (
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/types"
)

// Taxonomy holds the loaded category data plus precompiled match patterns.
type Taxonomy struct {
	categories []types.TaxonomyCategory

	// skillOwner maps a lowercased skill term to the category that owns
	// it. A term listed under two categories belongs to the later one.
	skillOwner map[string]string

	patterns map[string]*regexp.Regexp
}

// Load parses the ##-sectioned taxonomy CSV. Each category spans three
// consecutive rows: a "## Name" header, a comma-separated job-titles row,
// and a comma-separated skills row. Rows past the third are ignored until
// the next header.
func Load(path string) (*Taxonomy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open taxonomy file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file: %w", err)
	}

	t := &Taxonomy{
		skillOwner: make(map[string]string),
		patterns:   make(map[string]*regexp.Regexp),
	}

	var current *types.TaxonomyCategory
	headerRow := -1
	for idx, row := range rows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		content := strings.TrimSpace(row[0])

		if strings.HasPrefix(content, "##") {
			t.categories = append(t.categories, types.TaxonomyCategory{
				Name: strings.TrimSpace(content[2:]),
			})
			current = &t.categories[len(t.categories)-1]
			headerRow = idx
			continue
		}
		if current == nil {
			continue
		}

		switch idx {
		case headerRow + 1:
			current.JobTitles = splitTerms(content)
		case headerRow + 2:
			current.SkillTerms = splitTerms(content)
			for _, skill := range current.SkillTerms {
				if skill != "" {
					t.skillOwner[strings.ToLower(skill)] = current.Name
				}
			}
		}
	}

	if len(t.categories) == 0 {
		return nil, fmt.Errorf("taxonomy file %s contains no categories", path)
	}

	t.compilePatterns()
	return t, nil
}

func splitTerms(content string) []string {
	parts := strings.Split(content, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		terms = append(terms, strings.TrimSpace(p))
	}
	return terms
}

// compilePatterns builds one word-boundary pattern per distinct term so a
// scoring pass never recompiles.
func (t *Taxonomy) compilePatterns() {
	add := func(term string) {
		lower := strings.ToLower(term)
		if lower == "" {
			return
		}
		if _, ok := t.patterns[lower]; ok {
			return
		}
		t.patterns[lower] = regexp.MustCompile(`\b` + regexp.QuoteMeta(lower) + `\b`)
	}
	for _, cat := range t.categories {
		for _, job := range cat.JobTitles {
			add(job)
		}
		for _, skill := range cat.SkillTerms {
			add(skill)
		}
	}
}

// Categories returns the loaded categories in file order.
func (t *Taxonomy) Categories() []types.TaxonomyCategory {
	return t.categories
}

func (t *Taxonomy) category(name string) (types.TaxonomyCategory, bool) {
	for _, cat := range t.categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return types.TaxonomyCategory{}, false
}
