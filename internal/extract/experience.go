package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/normalize"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

var (
	dateRangeRe = regexp.MustCompile(`(?i)\b((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|(?:19|20)\d{2})\s*[-–—]\s*((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|(?:19|20)\d{2}|present|current|now)\b`)
	// titleCompanyRe matches "Senior Engineer - Acme Corp" style lines.
	titleCompanyRe = regexp.MustCompile(`^([A-Z][^-–—]{1,60}?)\s+[-–—]\s+([A-Z].{1,60})$`)
	// titleAtCompanyRe matches "Senior Engineer at Acme Corp" style lines.
	titleAtCompanyRe = regexp.MustCompile(`^([A-Z][A-Za-z+#/. ]{1,60}?)\s+at\s+([A-Z].{1,60})$`)
	bulletRe         = regexp.MustCompile(`^[-•*▪–]\s+`)
)

// DefaultMaxResponsibilities caps bullet lines kept per experience entry;
// the overflow is reported as a count, not dropped silently.
const DefaultMaxResponsibilities = 5

// ExperienceExtractor segments the experience section into job entries.
type ExperienceExtractor struct {
	Vocab *vocab.Vocabulary
	// MaxResponsibilities caps bullets per entry; zero means the default.
	MaxResponsibilities int
}

// Name identifies the extractor family.
func (ExperienceExtractor) Name() string { return "experience" }

// Extract segments on repeating title-company and date-range patterns.
// Each segment yields one entry candidate in document order.
func (e ExperienceExtractor) Extract(doc normalize.NormalizedDoc) []Candidate {
	v := e.Vocab
	if v == nil {
		v = vocab.Default()
	}
	maxResp := e.MaxResponsibilities
	if maxResp <= 0 {
		maxResp = DefaultMaxResponsibilities
	}

	start, end, ok := findSection(doc, "experience")
	if !ok {
		// No explicit section: segment the whole document below the
		// contact block on the same repeating patterns.
		start, end = maxNameSearchLines, len(doc.Lines)
	}

	type segment struct {
		entry     *types.ExperienceEntry
		startLine int
		endLine   int
		respTotal int
	}
	var segments []*segment
	var current *segment

	appendCurrent := func() {
		if current != nil {
			segments = append(segments, current)
			current = nil
		}
	}

	for i := start; i < end && i < len(doc.Lines); i++ {
		line := doc.Lines[i]

		if bulletRe.MatchString(line) {
			if current != nil {
				current.respTotal++
				if len(current.entry.Responsibilities) < maxResp {
					current.entry.Responsibilities = append(current.entry.Responsibilities, bulletRe.ReplaceAllString(line, ""))
				}
				current.endLine = i
			}
			continue
		}

		if m := dateRangeRe.FindStringSubmatch(line); m != nil {
			if current == nil {
				current = &segment{entry: &types.ExperienceEntry{}, startLine: i}
			}
			if current.entry.StartDate == "" {
				current.entry.StartDate = m[1]
				current.entry.EndDate = m[2]
			}
			current.endLine = i
			continue
		}

		title, company, matched := splitTitleCompany(line)
		if matched {
			appendCurrent()
			current = &segment{
				entry: &types.ExperienceEntry{
					JobTitle: types.ScoredString{
						Value:      title,
						Confidence: ConfidenceEntryField,
						Provenance: types.ProvenanceExtracted,
					},
					Company: types.ScoredString{
						Value:      company,
						Confidence: ConfidenceEntryField,
						Provenance: types.ProvenanceExtracted,
					},
				},
				startLine: i,
				endLine:   i,
			}
			continue
		}

		if current != nil {
			current.endLine = i
		}
	}
	appendCurrent()

	out := make([]Candidate, 0, len(segments))
	for _, seg := range segments {
		entry := seg.entry
		// A segment opened by a date range never saw a title-company line;
		// those fields carry the sentinel, not the zero value.
		if entry.JobTitle.Provenance == "" {
			entry.JobTitle = types.ScoredString{Value: types.NotFound, Provenance: types.ProvenanceDefault}
		}
		if entry.Company.Provenance == "" {
			entry.Company = types.ScoredString{Value: types.NotFound, Provenance: types.ProvenanceDefault}
		}
		if entry.Responsibilities == nil {
			entry.Responsibilities = []string{}
		}
		if seg.respTotal > len(entry.Responsibilities) {
			entry.MoreResponsibilities = seg.respTotal - len(entry.Responsibilities)
		}
		entry.Technologies = matchTechnologies(doc, v, seg.startLine, seg.endLine+1)

		out = append(out, Candidate{
			Path:       PathExperience,
			Confidence: ConfidenceEntryField,
			Span:       Span{StartLine: seg.startLine, EndLine: seg.endLine},
			Experience: entry,
		})
	}
	return out
}

// splitTitleCompany recognizes the "Title - Company" and "Title at Company"
// line shapes that open a job segment.
func splitTitleCompany(line string) (title, company string, ok bool) {
	if dateRangeRe.MatchString(line) {
		return "", "", false
	}
	if m := titleCompanyRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
	}
	if m := titleAtCompanyRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
	}
	return "", "", false
}
