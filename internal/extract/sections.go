package extract

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/normalize"
)

// sectionHeaders maps a section key to the header phrases that introduce it.
// Phrases are matched against the lowercase line with any ":"-suffix content
// stripped, so "PROGRAMMING LANGUAGES: Python, Go" reads as a skills header.
var sectionHeaders = map[string][]string{
	"summary":        {"summary", "profile", "professional summary", "career summary", "objective", "about", "about me"},
	"experience":     {"experience", "work experience", "employment", "employment history", "professional experience", "career history"},
	"education":      {"education", "academic background", "qualifications"},
	"skills":         {"skills", "technical skills", "technologies", "programming languages", "languages", "competencies"},
	"certifications": {"certifications", "certificates", "licenses", "licenses & certifications"},
	"projects":       {"projects", "personal projects", "portfolio", "side projects"},
	"awards":         {"awards", "honors", "achievements"},
}

// maxHeaderLen rejects prose lines that merely mention a header word, such
// as "Senior Software Engineer with 8 years experience...".
const maxHeaderLen = 32

// headerKey returns the section key a line introduces, if any.
func headerKey(line string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(line))
	if idx := strings.Index(lower, ":"); idx >= 0 {
		lower = lower[:idx]
	}
	lower = strings.TrimSpace(lower)
	if lower == "" || len(lower) > maxHeaderLen {
		return "", false
	}

	for key, phrases := range sectionHeaders {
		for _, phrase := range phrases {
			if lower == phrase {
				return key, true
			}
		}
	}
	return "", false
}

// findSection returns the [start, end) line range of the first section with
// the given key, excluding its header line. The section runs until the next
// header of any kind or the end of the document.
func findSection(doc normalize.NormalizedDoc, key string) (int, int, bool) {
	for i, line := range doc.Lines {
		k, ok := headerKey(line)
		if !ok || k != key {
			continue
		}

		end := len(doc.Lines)
		for j := i + 1; j < len(doc.Lines); j++ {
			if _, isHeader := headerKey(doc.Lines[j]); isHeader {
				end = j
				break
			}
		}
		return i + 1, end, true
	}
	return 0, 0, false
}
