package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-parser/internal/normalize"
	"github.com/jonathan/resume-parser/internal/types"
)

// seniorityMarkers maps role levels to the keywords that signal them.
// When several levels match, the highest rank wins.
var seniorityMarkers = map[types.RoleLevel][]string{
	types.RoleManager: {"manager", "director", "head"},
	types.RoleStaff:   {"staff", "principal"},
	types.RoleSenior:  {"senior", "sr", "lead"},
	types.RoleJunior:  {"junior", "jr", "intern", "graduate"},
}

var (
	titleRe = regexp.MustCompile(`(?i)\b((?:senior|staff|principal|lead|junior)\s+)?([A-Za-z+#/.]+\s+)?(engineer|developer|architect|scientist|designer|analyst|consultant|manager)\b`)
	yearsRe = regexp.MustCompile(`(?i)\b(\d{1,2})\+?\s*years?\b`)
)

// techContextWords mark a years-of-experience mention as tech-specific
// rather than total. See the label-proximity note in DESIGN.md.
var techContextWords = []string{"tech", "software", "engineering", "development", "industry"}

// RoleExtractor proposes role level, primary role and years of experience.
type RoleExtractor struct{}

// Name identifies the extractor family.
func (RoleExtractor) Name() string { return "role" }

// Extract proposes role candidates from the document.
func (RoleExtractor) Extract(doc normalize.NormalizedDoc) []Candidate {
	out := []Candidate{extractRoleLevel(doc)}
	out = append(out, extractPrimaryRole(doc)...)
	out = append(out, extractYears(doc)...)
	return out
}

// extractRoleLevel always returns a candidate: absence of any marker is a
// best-guess Mid at low confidence, never "unknown".
func extractRoleLevel(doc normalize.NormalizedDoc) Candidate {
	best := types.RoleMid
	bestLine := 0
	found := false

	for i := range doc.Lines {
		for _, token := range normalize.Tokenize(doc.Lines[i]) {
			for level, markers := range seniorityMarkers {
				for _, marker := range markers {
					if token != marker {
						continue
					}
					if !found || level.Rank() > best.Rank() ||
						(level.Rank() == best.Rank() && i < bestLine) {
						best = level
						bestLine = i
					}
					found = true
				}
			}
		}
	}

	if !found {
		return scalar(PathRoleLevel, string(types.RoleMid), ConfidenceRoleDefault, 0)
	}
	return scalar(PathRoleLevel, string(best), ConfidenceRoleKeyword, bestLine)
}

func extractPrimaryRole(doc normalize.NormalizedDoc) []Candidate {
	for i, line := range doc.Lines {
		if _, isHeader := headerKey(line); isHeader {
			continue
		}
		if m := titleRe.FindString(line); m != "" {
			return []Candidate{scalar(PathPrimaryRole, strings.TrimSpace(m), ConfidenceRoleKeyword, i)}
		}
	}
	return nil
}

// extractYears classifies each "N years" mention by label proximity: a
// mention whose line talks about tech goes to years-in-tech, otherwise to
// the total. When labels are absent the first mention is the total and the
// second is in-tech, the documented positional fallback.
func extractYears(doc normalize.NormalizedDoc) []Candidate {
	var out []Candidate
	haveTotal := false
	haveInTech := false

	for i, line := range doc.Lines {
		m := yearsRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		years, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}

		lower := doc.LowerLine(i)
		inTechContext := false
		for _, word := range techContextWords {
			if strings.Contains(lower, word) {
				inTechContext = true
				break
			}
		}

		switch {
		case inTechContext && !haveInTech:
			out = append(out, numberCandidate(PathYearsInTech, years, ConfidenceYearsLabeled, i))
			haveInTech = true
			// A tech-labeled mention is also the best total guess so far.
			if !haveTotal {
				out = append(out, numberCandidate(PathYearsTotal, years, ConfidenceYearsPositional, i))
				haveTotal = true
			}
		case !haveTotal:
			out = append(out, numberCandidate(PathYearsTotal, years, ConfidenceYearsLabeled, i))
			haveTotal = true
		case !haveInTech:
			out = append(out, numberCandidate(PathYearsInTech, years, ConfidenceYearsPositional, i))
			haveInTech = true
		}

		if haveTotal && haveInTech {
			break
		}
	}

	return out
}

func numberCandidate(path string, value, confidence float64, line int) Candidate {
	v := value
	c := scalar(path, strconv.FormatFloat(value, 'f', -1, 64), confidence, line)
	c.Number = &v
	return c
}
