package pipeline

import (
	"context"
	"testing"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `JANE SMITH
jane.smith@example.com
(415) 555-0100
San Francisco, CA
Senior Software Engineer with 8 years experience building distributed systems
EXPERIENCE
Senior Engineer - Acme Corp
2020 - Present
- Built distributed caching layer
PROGRAMMING LANGUAGES: Python, Go, TypeScript
EDUCATION
B.S. Computer Science, Stanford University, 2015`

func TestExtractProfile_FullResume(t *testing.T) {
	profile, err := ExtractProfile(context.Background(), sampleResume, Options{})
	require.NoError(t, err)

	assert.Equal(t, "JANE SMITH", profile.Name.Value)
	assert.GreaterOrEqual(t, profile.Name.Confidence, 0.85)

	assert.Equal(t, "jane.smith@example.com", profile.Email.Value)
	assert.GreaterOrEqual(t, profile.Email.Confidence, 0.9)
	assert.Equal(t, "(415) 555-0100", profile.Phone.Value)
	assert.Equal(t, "San Francisco, CA", profile.Location.Value)

	assert.Equal(t, string(types.RoleSenior), profile.RoleLevel.Value)
	assert.Equal(t, "Senior Software Engineer", profile.PrimaryRole.Value)
	require.NotNil(t, profile.YearsExperienceTotal.Value)
	assert.Equal(t, 8.0, *profile.YearsExperienceTotal.Value)

	assert.Equal(t, []string{"Python", "Go", "TypeScript"}, profile.Skills.ProgrammingLanguages)

	require.Len(t, profile.Experience, 1)
	exp := profile.Experience[0]
	assert.Equal(t, "Senior Engineer", exp.JobTitle.Value)
	assert.Equal(t, "Acme Corp", exp.Company.Value)
	assert.Equal(t, "2020", exp.StartDate)
	assert.Equal(t, "Present", exp.EndDate)
	assert.Equal(t, []string{"Built distributed caching layer"}, exp.Responsibilities)

	require.Len(t, profile.Education, 1)
	edu := profile.Education[0]
	assert.Equal(t, "B.S. Computer Science", edu.Degree.Value)
	assert.Equal(t, "Stanford University", edu.Institution.Value)
	assert.Equal(t, "2015", edu.Year)

	assert.NotEqual(t, types.NotFound, profile.Summary.Value)
}

func TestExtractProfile_EmptyInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"whitespace only", "   \n\t\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := ExtractProfile(context.Background(), tt.text, Options{})
			assert.Nil(t, profile)

			var emptyErr *EmptyInputError
			require.ErrorAs(t, err, &emptyErr)
		})
	}
}

func TestExtractProfile_CompletenessInvariant(t *testing.T) {
	// A minimal document still produces every declared field.
	profile, err := ExtractProfile(context.Background(), "hello", Options{})
	require.NoError(t, err)

	assert.Equal(t, types.NotFound, profile.Name.Value)
	assert.Equal(t, types.ProvenanceDefault, profile.Name.Provenance)
	assert.Equal(t, types.NotFound, profile.Email.Value)
	assert.Nil(t, profile.YearsExperienceTotal.Value)

	// Role level always carries a best guess.
	assert.Equal(t, string(types.RoleMid), profile.RoleLevel.Value)
	assert.Equal(t, types.ProvenanceExtracted, profile.RoleLevel.Provenance)

	require.NotNil(t, profile.Skills.ProgrammingLanguages)
	require.NotNil(t, profile.Skills.DevTools)
	require.NotNil(t, profile.Experience)
	require.NotNil(t, profile.Education)
	require.NotNil(t, profile.Certifications)
	require.NotNil(t, profile.Projects)
}

func TestExtractProfile_ConfidenceBounds(t *testing.T) {
	profile, err := ExtractProfile(context.Background(), sampleResume, Options{})
	require.NoError(t, err)

	scored := []types.ScoredString{
		profile.Name, profile.Email, profile.Phone, profile.Location,
		profile.LinkedInURL, profile.GitHubURL, profile.PortfolioURL,
		profile.RoleLevel, profile.PrimaryRole, profile.Summary,
	}
	for _, s := range scored {
		assert.GreaterOrEqual(t, s.Confidence, 0.0)
		assert.LessOrEqual(t, s.Confidence, 1.0)
	}
	assert.LessOrEqual(t, profile.YearsExperienceTotal.Confidence, 1.0)
	assert.LessOrEqual(t, profile.YearsExperienceInTech.Confidence, 1.0)
}

func TestExtractProfile_Deterministic(t *testing.T) {
	first, err := ExtractProfile(context.Background(), sampleResume, Options{})
	require.NoError(t, err)
	second, err := ExtractProfile(context.Background(), sampleResume, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractProfile_ConcurrentCalls(t *testing.T) {
	baseline, err := ExtractProfile(context.Background(), sampleResume, Options{})
	require.NoError(t, err)

	done := make(chan *types.CandidateProfile, 8)
	for i := 0; i < 8; i++ {
		go func() {
			p, err := ExtractProfile(context.Background(), sampleResume, Options{})
			assert.NoError(t, err)
			done <- p
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, baseline, <-done)
	}
}

func TestExtractProfile_OptionCaps(t *testing.T) {
	profile, err := ExtractProfile(context.Background(), sampleResume, Options{MaxSkillsPerCategory: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "Go"}, profile.Skills.ProgrammingLanguages)
}
