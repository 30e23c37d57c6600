// Package extract implements the field extractors. Each extractor consumes
// a normalized document and independently proposes zero or more candidates
// for the fields of its family; overlapping proposals are expected and
// resolved by the aggregator.
package extract

import (
	"github.com/jonathan/resume-parser/internal/normalize"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// Field paths emitted by extractors and consumed by the aggregator and the
// correction applier. These are the wire names of the profile fields.
const (
	PathName         = "name"
	PathEmail        = "email"
	PathPhone        = "phone"
	PathLocation     = "location"
	PathLinkedInURL  = "linkedin_url"
	PathGitHubURL    = "github_url"
	PathPortfolioURL = "portfolio_url"

	PathRoleLevel   = "role_level"
	PathPrimaryRole = "primary_role"
	PathYearsTotal  = "years_experience_total"
	PathYearsInTech = "years_experience_in_tech"

	PathSummary = "summary"

	PathExperience     = "experience"
	PathEducation      = "education"
	PathCertifications = "certifications"
	PathProjects       = "projects"
)

// SkillPath returns the field path for a skill category list.
func SkillPath(category vocab.Category) string {
	return "skills." + string(category)
}

// Span locates a candidate in the normalized line sequence. Earlier spans
// win confidence ties downstream, so extractors report the first line their
// evidence appears on.
type Span struct {
	StartLine int
	EndLine   int
}

// Candidate is a single extractor's proposal for one field. Scalar fields
// carry Value (and Number for the numeric years fields); entry-list fields
// carry exactly one of the typed entry pointers.
type Candidate struct {
	Path       string
	Value      string
	Number     *float64
	Confidence float64
	Span       Span

	Experience    *types.ExperienceEntry
	Education     *types.EducationEntry
	Certification *types.Certification
	Project       *types.Project
}

// Extractor is the common contract of every field family.
type Extractor interface {
	// Name identifies the extractor family, for logging.
	Name() string
	// Extract proposes candidates from the document. It must be safe to
	// call concurrently with other extractors on the same document.
	Extract(doc normalize.NormalizedDoc) []Candidate
}

func scalar(path, value string, confidence float64, line int) Candidate {
	return Candidate{
		Path:       path,
		Value:      value,
		Confidence: confidence,
		Span:       Span{StartLine: line, EndLine: line},
	}
}
