// Package aggregate resolves competing extractor candidates into a single
// CandidateProfile. Resolution is deterministic: for the same candidate set
// the same profile comes out, regardless of extractor scheduling.
package aggregate

import (
	"sort"

	"github.com/jonathan/resume-parser/internal/extract"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// DefaultMaxSkillsPerCategory caps each skill list in the aggregated profile.
const DefaultMaxSkillsPerCategory = 12

// Options tunes aggregation.
type Options struct {
	// MaxSkillsPerCategory caps each skill list. Zero means the default.
	MaxSkillsPerCategory int
}

// Aggregate builds a complete profile from extractor candidates. Every
// declared field is populated: scalars that no candidate covers get the
// "Not found" sentinel (nil for the numeric fields), list fields get empty
// non-nil slices. Scalar conflicts resolve to the highest confidence, then
// the earliest document position, then the lexicographically smallest value.
func Aggregate(candidates []extract.Candidate, opts Options) *types.CandidateProfile {
	maxSkills := opts.MaxSkillsPerCategory
	if maxSkills <= 0 {
		maxSkills = DefaultMaxSkillsPerCategory
	}

	byPath := make(map[string][]extract.Candidate)
	for _, c := range candidates {
		byPath[c.Path] = append(byPath[c.Path], c)
	}

	profile := &types.CandidateProfile{
		Name:         bestString(byPath[extract.PathName]),
		Email:        bestString(byPath[extract.PathEmail]),
		Phone:        bestString(byPath[extract.PathPhone]),
		Location:     bestString(byPath[extract.PathLocation]),
		LinkedInURL:  bestString(byPath[extract.PathLinkedInURL]),
		GitHubURL:    bestString(byPath[extract.PathGitHubURL]),
		PortfolioURL: bestString(byPath[extract.PathPortfolioURL]),

		RoleLevel:             bestString(byPath[extract.PathRoleLevel]),
		PrimaryRole:           bestString(byPath[extract.PathPrimaryRole]),
		YearsExperienceTotal:  bestNumber(byPath[extract.PathYearsTotal]),
		YearsExperienceInTech: bestNumber(byPath[extract.PathYearsInTech]),

		Summary: bestString(byPath[extract.PathSummary]),

		Skills: types.SkillSet{
			ProgrammingLanguages: skillList(byPath[extract.SkillPath(vocab.CategoryLanguages)], maxSkills),
			FrameworksLibraries:  skillList(byPath[extract.SkillPath(vocab.CategoryFrameworks)], maxSkills),
			CloudPlatforms:       skillList(byPath[extract.SkillPath(vocab.CategoryCloud)], maxSkills),
			Databases:            skillList(byPath[extract.SkillPath(vocab.CategoryDatabases)], maxSkills),
			DevTools:             skillList(byPath[extract.SkillPath(vocab.CategoryDevTools)], maxSkills),
		},
	}

	profile.Experience = experienceEntries(byPath[extract.PathExperience])
	profile.Education = educationEntries(byPath[extract.PathEducation])
	profile.Certifications = certificationEntries(byPath[extract.PathCertifications])
	profile.Projects = projectEntries(byPath[extract.PathProjects])

	return profile
}

// rank orders candidates for scalar resolution.
func rank(candidates []extract.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		if candidates[i].Span.StartLine != candidates[j].Span.StartLine {
			return candidates[i].Span.StartLine < candidates[j].Span.StartLine
		}
		return candidates[i].Value < candidates[j].Value
	})
}

func bestString(candidates []extract.Candidate) types.ScoredString {
	if len(candidates) == 0 {
		return types.ScoredString{
			Value:      types.NotFound,
			Provenance: types.ProvenanceDefault,
		}
	}

	ranked := append([]extract.Candidate(nil), candidates...)
	rank(ranked)
	return types.ScoredString{
		Value:      ranked[0].Value,
		Confidence: ranked[0].Confidence,
		Provenance: types.ProvenanceExtracted,
	}
}

func bestNumber(candidates []extract.Candidate) types.ScoredNumber {
	var withNumber []extract.Candidate
	for _, c := range candidates {
		if c.Number != nil {
			withNumber = append(withNumber, c)
		}
	}
	if len(withNumber) == 0 {
		return types.ScoredNumber{Provenance: types.ProvenanceDefault}
	}

	rank(withNumber)
	v := *withNumber[0].Number
	return types.ScoredNumber{
		Value:      &v,
		Confidence: withNumber[0].Confidence,
		Provenance: types.ProvenanceExtracted,
	}
}

// skillList unions skill candidates in document order, deduplicating on the
// canonical value and capping the result.
func skillList(candidates []extract.Candidate, max int) []string {
	ordered := append([]extract.Candidate(nil), candidates...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Span.StartLine < ordered[j].Span.StartLine
	})

	out := []string{}
	seen := make(map[string]bool, len(ordered))
	for _, c := range ordered {
		if seen[c.Value] {
			continue
		}
		seen[c.Value] = true
		out = append(out, c.Value)
		if len(out) == max {
			break
		}
	}
	return out
}

func bySpan(candidates []extract.Candidate) []extract.Candidate {
	ordered := append([]extract.Candidate(nil), candidates...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Span.StartLine < ordered[j].Span.StartLine
	})
	return ordered
}

func experienceEntries(candidates []extract.Candidate) []types.ExperienceEntry {
	out := []types.ExperienceEntry{}
	for _, c := range bySpan(candidates) {
		if c.Experience != nil {
			out = append(out, *c.Experience)
		}
	}
	return out
}

func educationEntries(candidates []extract.Candidate) []types.EducationEntry {
	out := []types.EducationEntry{}
	for _, c := range bySpan(candidates) {
		if c.Education != nil {
			out = append(out, *c.Education)
		}
	}
	return out
}

func certificationEntries(candidates []extract.Candidate) []types.Certification {
	out := []types.Certification{}
	for _, c := range bySpan(candidates) {
		if c.Certification != nil {
			out = append(out, *c.Certification)
		}
	}
	return out
}

func projectEntries(candidates []extract.Candidate) []types.Project {
	out := []types.Project{}
	for _, c := range bySpan(candidates) {
		if c.Project != nil {
			out = append(out, *c.Project)
		}
	}
	return out
}
