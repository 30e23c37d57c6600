package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/normalize"
	"github.com/jonathan/resume-parser/internal/types"
)

var (
	yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	gpaRe  = regexp.MustCompile(`(?i)\bgpa[:\s]*([0-4](?:\.\d{1,2})?)\b`)
)

// degreeTokens are the normalized-token forms of degree keywords. Tokens
// arrive with trailing dots stripped, so "B.S." appears as "b.s".
var degreeTokens = map[string]bool{
	"b.s": true, "bs": true, "b.sc": true, "bsc": true,
	"b.a": true, "ba": true, "b.e": true, "b.tech": true,
	"m.s": true, "ms": true, "m.sc": true, "msc": true,
	"m.a": true, "m.tech": true, "mba": true, "m.b.a": true,
	"ph.d": true, "phd": true,
	"bachelor": true, "bachelors": true, "bachelor's": true,
	"master": true, "masters": true, "master's": true,
	"doctorate": true, "doctor": true,
}

var institutionKeywords = []string{"university", "college", "institute", "school", "academy", "polytechnic"}

// degreeCanonical maps degree token variants to a canonical casing.
var degreeCanonical = map[string]string{
	"b.s": "B.S.", "bs": "B.S.", "b.sc": "B.Sc.", "bsc": "B.Sc.",
	"b.a": "B.A.", "ba": "B.A.", "b.e": "B.E.", "b.tech": "B.Tech.",
	"m.s": "M.S.", "ms": "M.S.", "m.sc": "M.Sc.", "msc": "M.Sc.",
	"m.a": "M.A.", "m.tech": "M.Tech.", "mba": "MBA", "m.b.a": "MBA",
	"ph.d": "Ph.D.", "phd": "Ph.D.",
}

// EducationExtractor proposes degree entries: a degree keyword co-located
// with an institution-type keyword, on the same or the following line.
type EducationExtractor struct{}

// Name identifies the extractor family.
func (EducationExtractor) Name() string { return "education" }

// Extract proposes education entry candidates in document order.
func (EducationExtractor) Extract(doc normalize.NormalizedDoc) []Candidate {
	start, end := 0, len(doc.Lines)
	if s, e, ok := findSection(doc, "education"); ok {
		start, end = s, e
	}

	var out []Candidate
	for i := start; i < end && i < len(doc.Lines); i++ {
		line := doc.Lines[i]
		if !hasDegreeToken(line) {
			continue
		}

		entryEnd := i
		institutionLine := line
		if !hasInstitutionKeyword(line) {
			if i+1 >= end || !hasInstitutionKeyword(doc.Lines[i+1]) {
				continue
			}
			institutionLine = doc.Lines[i+1]
			entryEnd = i + 1
		}

		entry := parseEducationLine(line, institutionLine)
		out = append(out, Candidate{
			Path:       PathEducation,
			Confidence: ConfidenceEducation,
			Span:       Span{StartLine: i, EndLine: entryEnd},
			Education:  &entry,
		})
		i = entryEnd
	}
	return out
}

func hasDegreeToken(line string) bool {
	for _, token := range normalize.Tokenize(line) {
		if degreeTokens[token] {
			return true
		}
	}
	return false
}

func hasInstitutionKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range institutionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// parseEducationLine splits a comma-separated education line such as
// "B.S. Computer Science, Stanford University, 2015" into its parts.
func parseEducationLine(degreeLine, institutionLine string) types.EducationEntry {
	entry := types.EducationEntry{}

	degreePart := degreeLine
	if degreeLine == institutionLine {
		parts := strings.Split(degreeLine, ",")
		degreePart = strings.TrimSpace(parts[0])
		for _, part := range parts[1:] {
			part = strings.TrimSpace(part)
			if hasInstitutionKeyword(part) {
				entry.Institution = types.ScoredString{
					Value:      stripYear(part),
					Confidence: ConfidenceEducation,
					Provenance: types.ProvenanceExtracted,
				}
				break
			}
		}
	}

	if entry.Institution.Value == "" {
		entry.Institution = types.ScoredString{
			Value:      stripYear(strings.Split(institutionLine, ",")[0]),
			Confidence: ConfidenceEducation,
			Provenance: types.ProvenanceExtracted,
		}
	}

	entry.Degree = types.ScoredString{
		Value:      canonicalDegree(stripYear(degreePart)),
		Confidence: ConfidenceEducation,
		Provenance: types.ProvenanceExtracted,
	}

	if y := yearRe.FindString(degreeLine + " " + institutionLine); y != "" {
		entry.Year = y
	}
	if m := gpaRe.FindStringSubmatch(degreeLine + " " + institutionLine); m != nil {
		entry.GPA = m[1]
	}

	return entry
}

func stripYear(s string) string {
	s = yearRe.ReplaceAllString(s, "")
	return strings.Trim(strings.TrimSpace(s), ",-")
}

var connectives = map[string]bool{"of": true, "in": true, "and": true, "the": true}

// canonicalDegree normalizes the degree keyword's casing ("b.s. computer
// science" → "B.S. Computer Science") while leaving mixed-case words and
// connectives alone.
func canonicalDegree(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		token := strings.ToLower(strings.TrimRight(word, "."))
		if canonical, ok := degreeCanonical[token]; ok {
			words[i] = canonical
			continue
		}
		if word == strings.ToLower(word) && !connectives[word] {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
