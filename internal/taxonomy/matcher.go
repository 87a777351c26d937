package taxonomy

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Section weights for job-title matches.
const (
	headerWeight    = 10
	firstJobWeight  = 8
	workExpWeight   = 5
	elsewhereWeight = 2
)

var (
	workExpPattern = regexp.MustCompile(`(?is)(work experience|employment|professional experience).*?(\n\n|\z)`)
	paragraphSplit = regexp.MustCompile(`\n{2,}`)
)

// CategoryScore is one category's relevance to a resume.
type CategoryScore struct {
	Name  string
	Score float64
}

// sections are the lowercased slices of a resume the scorer weighs
// differently.
type sections struct {
	full     string
	header   string
	workExp  string
	firstJob string
}

func splitSections(resumeText string) sections {
	lower := strings.ToLower(resumeText)

	lines := strings.Split(lower, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	header := strings.Join(lines, " ")

	var workExp, firstJob string
	if m := workExpPattern.FindString(resumeText); m != "" {
		workExp = strings.ToLower(m)
		// The heading occupies the first paragraph; the most recent
		// job is the one right after it.
		paragraphs := paragraphSplit.Split(workExp, 3)
		if len(paragraphs) > 1 {
			firstJob = paragraphs[1]
		}
	}

	return sections{full: lower, header: header, workExp: workExp, firstJob: firstJob}
}

// DetectCategories scores every category against the resume and returns the
// non-zero scores, highest first. Job titles weigh by where they appear
// (header 10, most recent job 8, work history 5, elsewhere 2); skills score
// per occurrence with a small length boost plus a work-history bonus.
func (t *Taxonomy) DetectCategories(resumeText string) []CategoryScore {
	sec := splitSections(resumeText)
	scores := make(map[string]float64)

	for _, cat := range t.categories {
		for _, job := range cat.JobTitles {
			pattern, ok := t.patterns[strings.ToLower(job)]
			if !ok {
				continue
			}

			headerHits := len(pattern.FindAllString(sec.header, -1))
			firstJobHits := len(pattern.FindAllString(sec.firstJob, -1))
			workExpHits := len(pattern.FindAllString(sec.workExp, -1))
			fullHits := len(pattern.FindAllString(sec.full, -1))

			elsewhere := fullHits - headerHits - workExpHits
			if elsewhere < 0 {
				elsewhere = 0
			}

			score := float64(headerHits*headerWeight +
				firstJobHits*firstJobWeight +
				workExpHits*workExpWeight +
				elsewhere*elsewhereWeight)
			if score > 0 {
				scores[cat.Name] += score
			}
		}
	}

	for skill, owner := range t.skillOwner {
		pattern := t.patterns[skill]
		fullHits := len(pattern.FindAllString(sec.full, -1))
		if fullHits == 0 {
			continue
		}
		workExpHits := 0
		if sec.workExp != "" {
			workExpHits = len(pattern.FindAllString(sec.workExp, -1))
		}

		base := float64(fullHits) * (1 + 0.1*float64(len(strings.Fields(skill))))
		scores[owner] += base + float64(workExpHits*2)
	}

	out := make([]CategoryScore, 0, len(scores))
	for name, score := range scores {
		out = append(out, CategoryScore{Name: name, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TopCategories returns the names of the categories worth including: the
// top scorer always, plus any within 20% of its score, capped at max.
func (t *Taxonomy) TopCategories(resumeText string, max int) []string {
	return selectTop(t.DetectCategories(resumeText), max)
}

func selectTop(scored []CategoryScore, max int) []string {
	if len(scored) == 0 {
		return []string{}
	}

	top := []string{scored[0].Name}
	threshold := scored[0].Score - 0.2*scored[0].Score
	for _, cs := range scored[1:] {
		if len(top) >= max {
			break
		}
		if cs.Score >= threshold {
			top = append(top, cs.Name)
		}
	}
	return top
}

// Context renders the selected categories as a prompt reference block.
// Titles cap at 10 and skills at 20 per category, with an "and N more"
// suffix. An empty string means nothing scored.
func (t *Taxonomy) Context(resumeText string, max int) string {
	top := t.TopCategories(resumeText, max)
	if len(top) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("SKILLS TAXONOMY REFERENCE:\n\n")

	for _, name := range top {
		cat, ok := t.category(name)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s\n", cat.Name)

		if len(cat.JobTitles) > 0 {
			sample := cat.JobTitles
			if len(sample) > 10 {
				sample = sample[:10]
			}
			b.WriteString("Relevant job titles: " + strings.Join(sample, ", "))
			if len(cat.JobTitles) > 10 {
				fmt.Fprintf(&b, ", and %d more", len(cat.JobTitles)-10)
			}
			b.WriteString("\n")
		}

		if len(cat.SkillTerms) > 0 {
			sample := cat.SkillTerms
			if len(sample) > 20 {
				sample = sample[:20]
			}
			b.WriteString("Skills in this category: " + strings.Join(sample, ", "))
			if len(cat.SkillTerms) > 20 {
				fmt.Fprintf(&b, ", and %d more", len(cat.SkillTerms)-20)
			}
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	return b.String()
}
