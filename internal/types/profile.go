// Package types provides type definitions for structured data used throughout the resume-parser system.
package types

// NotFound is the sentinel value used for string fields that extraction could not populate.
// Profiles always carry every declared field; consumers should never see a missing key.
const NotFound = "Not found"

// Provenance marks where a field's current value came from.
type Provenance string

// Provenance values for profile fields.
const (
	// ProvenanceExtracted means the value was produced by an extractor.
	ProvenanceExtracted Provenance = "extracted"
	// ProvenanceUserCorrected means the value was supplied via a user correction.
	ProvenanceUserCorrected Provenance = "user_corrected"
	// ProvenanceDefault means no extractor produced a candidate and a sentinel was filled in.
	ProvenanceDefault Provenance = "default"
)

// RoleLevel is the enumerated seniority of a candidate.
type RoleLevel string

// Role levels ordered from most junior to most senior.
const (
	RoleJunior  RoleLevel = "Junior"
	RoleMid     RoleLevel = "Mid"
	RoleSenior  RoleLevel = "Senior"
	RoleStaff   RoleLevel = "Staff"
	RoleManager RoleLevel = "Manager"
)

// Rank returns the seniority order of a role level. Higher is more senior.
func (r RoleLevel) Rank() int {
	switch r {
	case RoleJunior:
		return 1
	case RoleMid:
		return 2
	case RoleSenior:
		return 3
	case RoleStaff:
		return 4
	case RoleManager:
		return 5
	default:
		return 0
	}
}

// ScoredString is a string field paired with extraction confidence and provenance.
// Confidence is only meaningful when provenance is "extracted"; user-corrected
// fields report 1.0 by convention and defaults report 0.0.
type ScoredString struct {
	Value      string     `json:"value"`
	Confidence float64    `json:"confidence"`
	Provenance Provenance `json:"provenance"`
}

// ScoredNumber is a nullable numeric field paired with confidence and provenance.
type ScoredNumber struct {
	Value      *float64   `json:"value"`
	Confidence float64    `json:"confidence"`
	Provenance Provenance `json:"provenance"`
}

// SkillSet holds the five categorized skill lists. Each list is ordered by
// first appearance in the document and contains no case-only duplicates.
type SkillSet struct {
	ProgrammingLanguages []string `json:"programming_languages"`
	FrameworksLibraries  []string `json:"frameworks_libraries"`
	CloudPlatforms       []string `json:"cloud_platforms"`
	Databases            []string `json:"databases"`
	DevTools             []string `json:"dev_tools"`
}

// ExperienceEntry represents one job held by the candidate, in document order.
type ExperienceEntry struct {
	JobTitle         ScoredString `json:"job_title"`
	Company          ScoredString `json:"company"`
	StartDate        string       `json:"start_date"`
	EndDate          string       `json:"end_date"`
	Responsibilities []string     `json:"responsibilities"`
	// MoreResponsibilities counts bullet lines beyond the configured cap,
	// so trimming is visible rather than silent.
	MoreResponsibilities int      `json:"more_responsibilities,omitempty"`
	Technologies         []string `json:"technologies"`
}

// EducationEntry represents one degree, in document order.
type EducationEntry struct {
	Degree      ScoredString `json:"degree"`
	Institution ScoredString `json:"institution"`
	Year        string       `json:"year"`
	GPA         string       `json:"gpa,omitempty"`
}

// Certification represents a named certification with optional issuer and date.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Project represents a named project with optional description, technologies and URL.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
}

// CandidateProfile is the root output of an extraction run. It is an
// immutable value object: corrections and refinements operate on a Clone.
type CandidateProfile struct {
	// Identity
	Name         ScoredString `json:"name"`
	Email        ScoredString `json:"email"`
	Phone        ScoredString `json:"phone"`
	Location     ScoredString `json:"location"`
	LinkedInURL  ScoredString `json:"linkedin_url"`
	GitHubURL    ScoredString `json:"github_url"`
	PortfolioURL ScoredString `json:"portfolio_url"`

	// Profile
	RoleLevel             ScoredString `json:"role_level"`
	PrimaryRole           ScoredString `json:"primary_role"`
	YearsExperienceTotal  ScoredNumber `json:"years_experience_total"`
	YearsExperienceInTech ScoredNumber `json:"years_experience_in_tech"`

	Skills  SkillSet     `json:"skills"`
	Summary ScoredString `json:"summary"`

	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Certifications []Certification   `json:"certifications"`
	Projects       []Project         `json:"projects"`
}

// Clone returns a deep copy of the profile. Slices are copied so that
// mutating the clone never aliases the original.
func (p *CandidateProfile) Clone() *CandidateProfile {
	out := *p

	out.YearsExperienceTotal.Value = cloneFloat(p.YearsExperienceTotal.Value)
	out.YearsExperienceInTech.Value = cloneFloat(p.YearsExperienceInTech.Value)

	out.Skills.ProgrammingLanguages = cloneStrings(p.Skills.ProgrammingLanguages)
	out.Skills.FrameworksLibraries = cloneStrings(p.Skills.FrameworksLibraries)
	out.Skills.CloudPlatforms = cloneStrings(p.Skills.CloudPlatforms)
	out.Skills.Databases = cloneStrings(p.Skills.Databases)
	out.Skills.DevTools = cloneStrings(p.Skills.DevTools)

	out.Experience = make([]ExperienceEntry, len(p.Experience))
	for i, exp := range p.Experience {
		cloned := exp
		cloned.Responsibilities = cloneStrings(exp.Responsibilities)
		cloned.Technologies = cloneStrings(exp.Technologies)
		out.Experience[i] = cloned
	}

	out.Education = append([]EducationEntry(nil), p.Education...)
	out.Certifications = append([]Certification(nil), p.Certifications...)

	out.Projects = make([]Project, len(p.Projects))
	for i, proj := range p.Projects {
		cloned := proj
		cloned.Technologies = cloneStrings(proj.Technologies)
		out.Projects[i] = cloned
	}

	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneFloat(in *float64) *float64 {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
