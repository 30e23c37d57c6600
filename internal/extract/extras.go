package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/normalize"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

var certDateRe = regexp.MustCompile(`(?i)\b(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?(?:19|20)\d{2}\b`)

// CertificationsExtractor proposes certification entries. It only fires
// under an explicit section marker: these are additive fields where a false
// positive costs more than an omission.
type CertificationsExtractor struct{}

// Name identifies the extractor family.
func (CertificationsExtractor) Name() string { return "certifications" }

// Extract proposes certification candidates in document order.
func (CertificationsExtractor) Extract(doc normalize.NormalizedDoc) []Candidate {
	start, end, ok := findSection(doc, "certifications")
	if !ok {
		return nil
	}

	var out []Candidate
	for i := start; i < end && i < len(doc.Lines); i++ {
		line := bulletRe.ReplaceAllString(doc.Lines[i], "")
		if line == "" {
			continue
		}

		cert := parseCertificationLine(line)
		out = append(out, Candidate{
			Path:          PathCertifications,
			Confidence:    ConfidenceCertification,
			Span:          Span{StartLine: i, EndLine: i},
			Certification: &cert,
		})
	}
	return out
}

// parseCertificationLine splits "Name - Issuer, 2021" style lines.
func parseCertificationLine(line string) types.Certification {
	cert := types.Certification{}

	if date := certDateRe.FindString(line); date != "" {
		cert.Date = date
		line = strings.TrimSpace(strings.Replace(line, date, "", 1))
		line = strings.Trim(line, ",-–— ")
	}

	for _, sep := range []string{" - ", " – ", ", "} {
		if idx := strings.Index(line, sep); idx > 0 {
			cert.Name = strings.TrimSpace(line[:idx])
			cert.Issuer = strings.TrimSpace(line[idx+len(sep):])
			return cert
		}
	}
	cert.Name = strings.TrimSpace(line)
	return cert
}

// ProjectsExtractor proposes project entries, again only under an explicit
// section marker.
type ProjectsExtractor struct {
	Vocab *vocab.Vocabulary
}

// Name identifies the extractor family.
func (ProjectsExtractor) Name() string { return "projects" }

// Extract treats each non-bullet line in the projects section as a project
// name line; its bullets become the description.
func (e ProjectsExtractor) Extract(doc normalize.NormalizedDoc) []Candidate {
	v := e.Vocab
	if v == nil {
		v = vocab.Default()
	}

	start, end, ok := findSection(doc, "projects")
	if !ok {
		return nil
	}

	type segment struct {
		project   *types.Project
		startLine int
		endLine   int
	}
	var segments []*segment
	var current *segment

	for i := start; i < end && i < len(doc.Lines); i++ {
		line := doc.Lines[i]

		if bulletRe.MatchString(line) {
			if current != nil {
				text := bulletRe.ReplaceAllString(line, "")
				if current.project.Description == "" {
					current.project.Description = text
				} else {
					current.project.Description += " " + text
				}
				current.endLine = i
			}
			continue
		}

		name, description := splitProjectName(line)
		current = &segment{
			project:   &types.Project{Name: name, Description: description},
			startLine: i,
			endLine:   i,
		}
		segments = append(segments, current)
	}

	out := make([]Candidate, 0, len(segments))
	for _, seg := range segments {
		for j := seg.startLine; j <= seg.endLine; j++ {
			if url := urlRe.FindString(doc.Lines[j]); url != "" && seg.project.URL == "" {
				seg.project.URL = strings.TrimRight(url, ".,;")
			}
		}
		seg.project.Technologies = matchTechnologies(doc, v, seg.startLine, seg.endLine+1)

		out = append(out, Candidate{
			Path:       PathProjects,
			Confidence: ConfidenceProject,
			Span:       Span{StartLine: seg.startLine, EndLine: seg.endLine},
			Project:    seg.project,
		})
	}
	return out
}

// splitProjectName separates "Name - short description" name lines.
func splitProjectName(line string) (name, description string) {
	for _, sep := range []string{" - ", " – ", ": "} {
		if idx := strings.Index(line, sep); idx > 0 {
			return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(sep):])
		}
	}
	return strings.TrimSpace(line), ""
}
