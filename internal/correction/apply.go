// Package correction applies user-supplied field corrections to extracted
// profiles. Corrections are pure: the input profile is never mutated, and a
// failed correction returns the error with no new profile.
package correction

import (
	"strconv"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// Apply returns a copy of the profile with the field at path replaced by
// value. Scored fields are pinned: confidence 1.0, provenance user_corrected.
// A path that does not resolve to an existing field or list slot yields an
// InvalidPathError and leaves the original profile untouched.
func Apply(profile *types.CandidateProfile, path, value string) (*types.CandidateProfile, error) {
	segments, err := parsePath(path)
	if err != nil {
		return nil, err
	}

	out := profile.Clone()
	if err := applySegments(out, path, segments, value); err != nil {
		return nil, err
	}
	return out, nil
}

func applySegments(p *types.CandidateProfile, path string, segments []segment, value string) error {
	head := segments[0]

	if target := scalarField(p, head.name); target != nil {
		if head.hasIndex || len(segments) > 1 {
			return invalidPath(path, "%s is a scalar field", head.name)
		}
		*target = pin(value)
		return nil
	}

	switch head.name {
	case "years_experience_total", "years_experience_in_tech":
		if head.hasIndex || len(segments) > 1 {
			return invalidPath(path, "%s is a scalar field", head.name)
		}
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return invalidPath(path, "%s requires a numeric value", head.name)
		}
		scored := types.ScoredNumber{Value: &num, Confidence: 1.0, Provenance: types.ProvenanceUserCorrected}
		if head.name == "years_experience_total" {
			p.YearsExperienceTotal = scored
		} else {
			p.YearsExperienceInTech = scored
		}
		return nil

	case "skills":
		return applySkills(p, path, segments, value)
	case "experience":
		return applyExperience(p, path, segments, value)
	case "education":
		return applyEducation(p, path, segments, value)
	case "certifications":
		return applyCertification(p, path, segments, value)
	case "projects":
		return applyProject(p, path, segments, value)
	}
	return invalidPath(path, "unknown field %q", head.name)
}

// scalarField maps a top-level scored string field name to its slot.
func scalarField(p *types.CandidateProfile, name string) *types.ScoredString {
	switch name {
	case "name":
		return &p.Name
	case "email":
		return &p.Email
	case "phone":
		return &p.Phone
	case "location":
		return &p.Location
	case "linkedin_url":
		return &p.LinkedInURL
	case "github_url":
		return &p.GitHubURL
	case "portfolio_url":
		return &p.PortfolioURL
	case "role_level":
		return &p.RoleLevel
	case "primary_role":
		return &p.PrimaryRole
	case "summary":
		return &p.Summary
	}
	return nil
}

func applySkills(p *types.CandidateProfile, path string, segments []segment, value string) error {
	if segments[0].hasIndex || len(segments) != 2 {
		return invalidPath(path, "skills corrections address skills.<category>[i]")
	}

	cat := segments[1]
	list := skillSlice(&p.Skills, cat.name)
	if list == nil {
		return invalidPath(path, "unknown skill category %q", cat.name)
	}
	if !cat.hasIndex {
		return invalidPath(path, "skill category %q requires an index", cat.name)
	}
	if cat.index >= len(*list) {
		return invalidPath(path, "index %d out of range for %s", cat.index, cat.name)
	}
	(*list)[cat.index] = value
	return nil
}

func skillSlice(s *types.SkillSet, category string) *[]string {
	switch vocab.Category(category) {
	case vocab.CategoryLanguages:
		return &s.ProgrammingLanguages
	case vocab.CategoryFrameworks:
		return &s.FrameworksLibraries
	case vocab.CategoryCloud:
		return &s.CloudPlatforms
	case vocab.CategoryDatabases:
		return &s.Databases
	case vocab.CategoryDevTools:
		return &s.DevTools
	}
	return nil
}

func applyExperience(p *types.CandidateProfile, path string, segments []segment, value string) error {
	if !segments[0].hasIndex || len(segments) != 2 {
		return invalidPath(path, "experience corrections address experience[i].<field>")
	}
	if segments[0].index >= len(p.Experience) {
		return invalidPath(path, "index %d out of range for experience", segments[0].index)
	}

	entry := &p.Experience[segments[0].index]
	field := segments[1]
	switch field.name {
	case "job_title", "company":
		if field.hasIndex {
			return invalidPath(path, "%s is a scalar field", field.name)
		}
		if field.name == "job_title" {
			entry.JobTitle = pin(value)
		} else {
			entry.Company = pin(value)
		}
		return nil
	case "start_date", "end_date":
		if field.hasIndex {
			return invalidPath(path, "%s is a scalar field", field.name)
		}
		if field.name == "start_date" {
			entry.StartDate = value
		} else {
			entry.EndDate = value
		}
		return nil
	case "responsibilities":
		return setListItem(path, entry.Responsibilities, field, value)
	case "technologies":
		return setListItem(path, entry.Technologies, field, value)
	}
	return invalidPath(path, "unknown experience field %q", field.name)
}

func applyEducation(p *types.CandidateProfile, path string, segments []segment, value string) error {
	if !segments[0].hasIndex || len(segments) != 2 {
		return invalidPath(path, "education corrections address education[i].<field>")
	}
	if segments[0].index >= len(p.Education) {
		return invalidPath(path, "index %d out of range for education", segments[0].index)
	}

	entry := &p.Education[segments[0].index]
	field := segments[1]
	if field.hasIndex {
		return invalidPath(path, "%s is a scalar field", field.name)
	}
	switch field.name {
	case "degree":
		entry.Degree = pin(value)
	case "institution":
		entry.Institution = pin(value)
	case "year":
		entry.Year = value
	case "gpa":
		entry.GPA = value
	default:
		return invalidPath(path, "unknown education field %q", field.name)
	}
	return nil
}

func applyCertification(p *types.CandidateProfile, path string, segments []segment, value string) error {
	if !segments[0].hasIndex || len(segments) != 2 {
		return invalidPath(path, "certification corrections address certifications[i].<field>")
	}
	if segments[0].index >= len(p.Certifications) {
		return invalidPath(path, "index %d out of range for certifications", segments[0].index)
	}

	entry := &p.Certifications[segments[0].index]
	field := segments[1]
	if field.hasIndex {
		return invalidPath(path, "%s is a scalar field", field.name)
	}
	switch field.name {
	case "name":
		entry.Name = value
	case "issuer":
		entry.Issuer = value
	case "date":
		entry.Date = value
	default:
		return invalidPath(path, "unknown certification field %q", field.name)
	}
	return nil
}

func applyProject(p *types.CandidateProfile, path string, segments []segment, value string) error {
	if !segments[0].hasIndex || len(segments) != 2 {
		return invalidPath(path, "project corrections address projects[i].<field>")
	}
	if segments[0].index >= len(p.Projects) {
		return invalidPath(path, "index %d out of range for projects", segments[0].index)
	}

	entry := &p.Projects[segments[0].index]
	field := segments[1]
	switch field.name {
	case "name", "description", "url":
		if field.hasIndex {
			return invalidPath(path, "%s is a scalar field", field.name)
		}
		switch field.name {
		case "name":
			entry.Name = value
		case "description":
			entry.Description = value
		case "url":
			entry.URL = value
		}
		return nil
	case "technologies":
		return setListItem(path, entry.Technologies, field, value)
	}
	return invalidPath(path, "unknown project field %q", field.name)
}

func setListItem(path string, list []string, field segment, value string) error {
	if !field.hasIndex {
		return invalidPath(path, "%s requires an index", field.name)
	}
	if field.index >= len(list) {
		return invalidPath(path, "index %d out of range for %s", field.index, field.name)
	}
	list[field.index] = value
	return nil
}

func pin(value string) types.ScoredString {
	return types.ScoredString{
		Value:      value,
		Confidence: 1.0,
		Provenance: types.ProvenanceUserCorrected,
	}
}
