package extract

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-parser/internal/normalize"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// SkillsExtractor proposes categorized skills by vocabulary membership.
// Matching is case-insensitive and variants collapse onto canonical names,
// so "React" and "react.js" never both appear.
type SkillsExtractor struct {
	Vocab *vocab.Vocabulary
}

// Name identifies the extractor family.
func (SkillsExtractor) Name() string { return "skills" }

// Extract proposes one candidate per distinct canonical skill, in
// first-seen order. Skills are boolean-present signals: confidence is
// uniform, and categories with no matches emit nothing at all.
func (e SkillsExtractor) Extract(doc normalize.NormalizedDoc) []Candidate {
	v := e.Vocab
	if v == nil {
		v = vocab.Default()
	}

	var out []Candidate
	seen := map[string]bool{}

	multiWord := v.MultiWordAliases()
	aliases := make([]string, 0, len(multiWord))
	for alias := range multiWord {
		aliases = append(aliases, alias)
	}
	// Stable scan order keeps same-line matches deterministic.
	sort.Strings(aliases)

	for i, line := range doc.Lines {
		for _, token := range normalize.Tokenize(line) {
			category, canonical, ok := v.Canonical(token)
			if !ok || seen[canonical] {
				continue
			}
			seen[canonical] = true
			out = append(out, scalar(SkillPath(category), canonical, ConfidenceSkill, i))
		}

		lower := strings.ToLower(line)
		for _, alias := range aliases {
			canonical := multiWord[alias]
			if seen[canonical] || !strings.Contains(lower, alias) {
				continue
			}
			category, _, ok := v.Canonical(alias)
			if !ok {
				continue
			}
			seen[canonical] = true
			out = append(out, scalar(SkillPath(category), canonical, ConfidenceSkill, i))
		}
	}

	return out
}

// matchTechnologies returns the distinct canonical vocabulary terms found in
// a line range, in first-seen order. Used for per-entry technology lists.
func matchTechnologies(doc normalize.NormalizedDoc, v *vocab.Vocabulary, start, end int) []string {
	out := []string{}
	seen := map[string]bool{}

	for i := start; i < end && i < len(doc.Lines); i++ {
		for _, token := range normalize.Tokenize(doc.Lines[i]) {
			if _, canonical, ok := v.Canonical(token); ok && !seen[canonical] {
				seen[canonical] = true
				out = append(out, canonical)
			}
		}
	}
	return out
}
