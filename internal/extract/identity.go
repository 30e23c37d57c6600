package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/normalize"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})\b`)
	locationRe = regexp.MustCompile(`^([A-Z][A-Za-z.' -]+),\s*([A-Z]{2})$`)
	urlRe      = regexp.MustCompile(`\bhttps?://[^\s)]+|\b(?:www\.)?(?:linkedin\.com|github\.com)/[^\s)]+`)
	nameWordRe = regexp.MustCompile(`^[A-Z][A-Za-z.'-]*$`)
	digitRe    = regexp.MustCompile(`[0-9]`)
)

// maxNameSearchLines bounds how far down the document the name heuristic
// looks. Beyond the header block, capitalized word runs are mostly titles.
const maxNameSearchLines = 5

// IdentityExtractor proposes name, email, phone, location and profile links.
type IdentityExtractor struct{}

// Name identifies the extractor family.
func (IdentityExtractor) Name() string { return "identity" }

// Extract proposes identity candidates from the document.
func (IdentityExtractor) Extract(doc normalize.NormalizedDoc) []Candidate {
	var out []Candidate

	out = append(out, extractPatternField(doc, PathEmail, emailRe, ConfidenceEmail)...)
	out = append(out, extractPatternField(doc, PathPhone, phoneRe, ConfidencePhone)...)
	out = append(out, extractLocation(doc)...)
	out = append(out, extractLinks(doc)...)
	out = append(out, extractName(doc)...)

	return out
}

// extractPatternField emits a candidate for the first line matching re.
func extractPatternField(doc normalize.NormalizedDoc, path string, re *regexp.Regexp, confidence float64) []Candidate {
	for i, line := range doc.Lines {
		if m := re.FindString(line); m != "" {
			return []Candidate{scalar(path, strings.TrimSpace(m), confidence, i)}
		}
	}
	return nil
}

func extractLocation(doc normalize.NormalizedDoc) []Candidate {
	// Free-text geography is ambiguous, so only the "City, ST" shape in the
	// contact block is trusted.
	limit := len(doc.Lines)
	if limit > 8 {
		limit = 8
	}
	for i := 0; i < limit; i++ {
		if m := locationRe.FindStringSubmatch(doc.Lines[i]); m != nil {
			value := strings.TrimSpace(m[1]) + ", " + m[2]
			return []Candidate{scalar(PathLocation, value, ConfidenceLocation, i)}
		}
	}
	return nil
}

func extractLinks(doc normalize.NormalizedDoc) []Candidate {
	var out []Candidate
	seen := map[string]bool{}

	for i, line := range doc.Lines {
		for _, raw := range urlRe.FindAllString(line, -1) {
			url := strings.TrimRight(raw, ".,;")
			lower := strings.ToLower(url)

			path := PathPortfolioURL
			switch {
			case strings.Contains(lower, "linkedin.com"):
				path = PathLinkedInURL
			case strings.Contains(lower, "github.com"):
				path = PathGitHubURL
			}
			if seen[path] {
				continue
			}
			seen[path] = true
			out = append(out, scalar(path, url, ConfidenceLink, i))
		}
	}
	return out
}

func extractName(doc normalize.NormalizedDoc) []Candidate {
	limit := len(doc.Lines)
	if limit > maxNameSearchLines {
		limit = maxNameSearchLines
	}

	for i := 0; i < limit; i++ {
		line := doc.Lines[i]
		if strings.Contains(line, "@") || digitRe.MatchString(line) {
			continue
		}
		if _, isHeader := headerKey(line); isHeader {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		looksLikeName := true
		for _, word := range words {
			if len(word) < 2 || !nameWordRe.MatchString(word) {
				looksLikeName = false
				break
			}
		}
		if looksLikeName {
			return []Candidate{scalar(PathName, line, nameConfidence(i), i)}
		}
	}
	return nil
}
