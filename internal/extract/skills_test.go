package extract

import (
	"testing"

	"github.com/jonathan/resume-parser/internal/normalize"
	"github.com/jonathan/resume-parser/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skillValues(candidates []Candidate, category vocab.Category) []string {
	var out []string
	for _, c := range candidates {
		if c.Path == SkillPath(category) {
			out = append(out, c.Value)
		}
	}
	return out
}

func TestSkillsExtractor_CategorizedMatches(t *testing.T) {
	doc := normalize.Normalize("PROGRAMMING LANGUAGES: Python, Go, TypeScript\nDatabases: PostgreSQL, Redis\nTools: Docker, Git")
	candidates := SkillsExtractor{}.Extract(doc)

	assert.Equal(t, []string{"Python", "Go", "TypeScript"}, skillValues(candidates, vocab.CategoryLanguages))
	assert.Equal(t, []string{"PostgreSQL", "Redis"}, skillValues(candidates, vocab.CategoryDatabases))
	assert.Contains(t, skillValues(candidates, vocab.CategoryDevTools), "Git")
	assert.Contains(t, skillValues(candidates, vocab.CategoryCloud), "Docker")
}

func TestSkillsExtractor_DedupAcrossVariants(t *testing.T) {
	// "React" and "react.js" must not both appear.
	doc := normalize.Normalize("Frameworks: React, react.js, ReactJS")
	candidates := SkillsExtractor{}.Extract(doc)

	assert.Equal(t, []string{"React"}, skillValues(candidates, vocab.CategoryFrameworks))
}

func TestSkillsExtractor_MultiWordAlias(t *testing.T) {
	doc := normalize.Normalize("Deployed workloads on Amazon Web Services and Google Cloud")
	candidates := SkillsExtractor{}.Extract(doc)

	values := skillValues(candidates, vocab.CategoryCloud)
	assert.Contains(t, values, "AWS")
	assert.Contains(t, values, "GCP")
}

func TestSkillsExtractor_UniformConfidence(t *testing.T) {
	doc := normalize.Normalize("Python, Kubernetes, MongoDB")
	candidates := SkillsExtractor{}.Extract(doc)

	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.InDelta(t, ConfidenceSkill, c.Confidence, 0.001)
	}
}

func TestSkillsExtractor_NoMatchesEmitsNothing(t *testing.T) {
	doc := normalize.Normalize("An essay about gardening and woodworking")
	assert.Empty(t, SkillsExtractor{}.Extract(doc))
}

func TestSkillsExtractor_CustomVocabulary(t *testing.T) {
	v := vocab.New(map[vocab.Category][]vocab.Term{
		vocab.CategoryLanguages: {{Canonical: "COBOL", Aliases: []string{"cob"}}},
	})
	doc := normalize.Normalize("Maintained cob batch jobs")
	candidates := SkillsExtractor{Vocab: v}.Extract(doc)

	require.Len(t, candidates, 1)
	assert.Equal(t, "COBOL", candidates[0].Value)
}

func TestMatchTechnologies_OrderedAndDeduped(t *testing.T) {
	doc := normalize.Normalize("Built with Go and Redis\nMore Go and PostgreSQL")
	techs := matchTechnologies(doc, vocab.Default(), 0, 2)
	assert.Equal(t, []string{"Go", "Redis", "PostgreSQL"}, techs)
}

func TestMatchTechnologies_EmptyRange(t *testing.T) {
	doc := normalize.Normalize("Go")
	assert.Empty(t, matchTechnologies(doc, vocab.Default(), 0, 0))
	assert.NotNil(t, matchTechnologies(doc, vocab.Default(), 0, 0))
}
