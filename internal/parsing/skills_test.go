package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

func TestRankedSkillsCommaSeparated(t *testing.T) {
	fields := types.ParsedFieldSet{}
	fields.Set("Top10Skills", types.KnownField("Kubernetes, Terraform, Go"))

	skills := RankedSkills(fields)
	require.Len(t, skills, 10)
	assert.Equal(t, []string{"Kubernetes", "Terraform", "Go"}, skills[:3])
	assert.Equal(t, "", skills[3])
	assert.Equal(t, "", skills[9])
}

func TestRankedSkillsNumberedList(t *testing.T) {
	fields := types.ParsedFieldSet{}
	fields.Set("Top10Skills", types.KnownField("1. Kubernetes, 2. Terraform, 3. Go"))

	skills := RankedSkills(fields)
	assert.Equal(t, []string{"Kubernetes", "Terraform", "Go"}, skills[:3])
}

func TestRankedSkillsTruncatesToTen(t *testing.T) {
	fields := types.ParsedFieldSet{}
	fields.Set("Top10Skills", types.KnownField("a, b, c, d, e, f, g, h, i, j, k, l"))

	skills := RankedSkills(fields)
	require.Len(t, skills, 10)
	assert.Equal(t, "j", skills[9])
}

func TestRankedSkillsLanguageFallback(t *testing.T) {
	fields := types.ParsedFieldSet{}
	fields.Set("PrimarySoftwareLanguage", types.KnownField("Go"))
	fields.Set("SecondarySoftwareLanguage", types.KnownField("Python"))

	skills := RankedSkills(fields)
	assert.Equal(t, "Go", skills[0])
	assert.Equal(t, "Python", skills[1])
	assert.Equal(t, "", skills[2])
}

func TestRankedSkillsNothingKnown(t *testing.T) {
	skills := RankedSkills(types.ParsedFieldSet{})
	require.Len(t, skills, 10)
	for _, s := range skills {
		assert.Equal(t, "", s)
	}
}

func TestApplyRankedSkills(t *testing.T) {
	fields := types.ParsedFieldSet{}
	ApplyRankedSkills(fields, []string{"Kubernetes", "Terraform", "", "", "", "", "", "", "", ""})

	assert.Equal(t, "Kubernetes", fields.Value("Skill1"))
	assert.Equal(t, "Terraform", fields.Value("Skill2"))
	assert.False(t, fields.Get("Skill3").Known)
	assert.False(t, fields.Get("Skill10").Known)
}
