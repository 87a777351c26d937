package taxonomy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTaxonomyCSV = `## Software Engineering
"Software Engineer, Senior Software Engineer, Backend Developer"
"Python, Java, Go, Kubernetes, distributed systems"
## Data Science
"Data Scientist, Machine Learning Engineer"
"Python, TensorFlow, statistical modeling"
## Accounting
"Accountant, Financial Analyst"
"QuickBooks, general ledger"
`

func loadTestTaxonomy(t *testing.T) *Taxonomy {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skills.csv")
	require.NoError(t, os.WriteFile(path, []byte(testTaxonomyCSV), 0o644))
	tax, err := Load(path)
	require.NoError(t, err)
	return tax
}

func TestLoadParsesCategories(t *testing.T) {
	tax := loadTestTaxonomy(t)

	cats := tax.Categories()
	require.Len(t, cats, 3)
	assert.Equal(t, "Software Engineering", cats[0].Name)
	assert.Equal(t, []string{"Software Engineer", "Senior Software Engineer", "Backend Developer"}, cats[0].JobTitles)
	assert.Contains(t, cats[0].SkillTerms, "Kubernetes")
	assert.Equal(t, "Data Science", cats[1].Name)
}

func TestLoadDuplicateSkillBelongsToLaterCategory(t *testing.T) {
	tax := loadTestTaxonomy(t)
	// "Python" appears under both engineering and data science.
	assert.Equal(t, "Data Science", tax.skillOwner["python"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestDetectCategoriesHeaderOutweighsBody(t *testing.T) {
	tax := loadTestTaxonomy(t)

	// "Software Engineer" sits in the header (first 10 lines); "Accountant"
	// appears past it, outside any work-experience section.
	lines := []string{"Jane Doe", "Software Engineer"}
	for i := 0; i < 9; i++ {
		lines = append(lines, "profile detail")
	}
	lines = append(lines, "Aspires to move beyond the Accountant track.")
	resume := strings.Join(lines, "\n")

	scored := tax.DetectCategories(resume)
	require.Len(t, scored, 2)

	byName := map[string]float64{}
	for _, cs := range scored {
		byName[cs.Name] = cs.Score
	}
	assert.InDelta(t, float64(headerWeight), byName["Software Engineering"], 0.001)
	assert.InDelta(t, float64(elsewhereWeight), byName["Accounting"], 0.001)
}

func TestDetectCategoriesSkillScoring(t *testing.T) {
	tax := loadTestTaxonomy(t)

	// "distributed systems" is two words: each occurrence scores 1.2.
	resume := "Built distributed systems at scale. More distributed systems work."
	scored := tax.DetectCategories(resume)
	require.Len(t, scored, 1)
	assert.Equal(t, "Software Engineering", scored[0].Name)
	assert.InDelta(t, 2*1.2, scored[0].Score, 0.001)
}

func TestDetectCategoriesWordBoundaries(t *testing.T) {
	tax := loadTestTaxonomy(t)
	// "Going" must not match the skill "Go".
	assert.Empty(t, tax.DetectCategories("Going forward we plan to expand."))
}

func TestDetectCategoriesEmptyResume(t *testing.T) {
	tax := loadTestTaxonomy(t)
	assert.Empty(t, tax.DetectCategories(""))
}

func TestSelectTopThreshold(t *testing.T) {
	scored := []CategoryScore{
		{Name: "A", Score: 100},
		{Name: "B", Score: 85},
		{Name: "C", Score: 40},
	}

	// Threshold is 100 - 20 = 80: B qualifies, C does not.
	assert.Equal(t, []string{"A", "B"}, selectTop(scored, 3))
}

func TestSelectTopRespectsCap(t *testing.T) {
	scored := []CategoryScore{
		{Name: "A", Score: 100},
		{Name: "B", Score: 95},
		{Name: "C", Score: 90},
	}
	assert.Equal(t, []string{"A", "B"}, selectTop(scored, 2))
}

func TestSelectTopAlwaysIncludesLeader(t *testing.T) {
	assert.Equal(t, []string{"A"}, selectTop([]CategoryScore{{Name: "A", Score: 3}}, 3))
	assert.Empty(t, selectTop(nil, 3))
}

func TestContextFormat(t *testing.T) {
	tax := loadTestTaxonomy(t)

	resume := "Jane Doe\nSoftware Engineer\n\nWork Experience\n\nBackend Developer, Acme\nKubernetes, Go, Java\n"
	ctx := tax.Context(resume, 2)

	require.NotEmpty(t, ctx)
	assert.True(t, strings.HasPrefix(ctx, "SKILLS TAXONOMY REFERENCE:\n\n"))
	assert.Contains(t, ctx, "## Software Engineering\n")
	assert.Contains(t, ctx, "Relevant job titles: Software Engineer, Senior Software Engineer, Backend Developer\n")
	assert.Contains(t, ctx, "Skills in this category: Python, Java, Go, Kubernetes, distributed systems\n")
}

func TestContextTruncatesLongLists(t *testing.T) {
	var rows []string
	rows = append(rows, "## Big Category")
	titles := make([]string, 12)
	for i := range titles {
		titles[i] = "Title" + string(rune('A'+i))
	}
	skills := make([]string, 25)
	for i := range skills {
		skills[i] = "Skill" + string(rune('A'+i))
	}
	rows = append(rows, `"`+strings.Join(titles, ", ")+`"`)
	rows = append(rows, `"`+strings.Join(skills, ", ")+`"`)

	path := filepath.Join(t.TempDir(), "big.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0o644))
	tax, err := Load(path)
	require.NoError(t, err)

	ctx := tax.Context("TitleA worked with SkillA", 1)
	assert.Contains(t, ctx, ", and 2 more\n")
	assert.Contains(t, ctx, ", and 5 more\n")
}

func TestContextEmptyWhenNothingScores(t *testing.T) {
	tax := loadTestTaxonomy(t)
	assert.Equal(t, "", tax.Context("nothing relevant here", 3))
}
