package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleLevel_Rank(t *testing.T) {
	tests := []struct {
		name  string
		level RoleLevel
		rank  int
	}{
		{"junior is lowest", RoleJunior, 1},
		{"mid", RoleMid, 2},
		{"senior", RoleSenior, 3},
		{"staff", RoleStaff, 4},
		{"manager is highest", RoleManager, 5},
		{"unknown ranks below junior", RoleLevel("Wizard"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.rank, tt.level.Rank())
		})
	}
}

func TestCandidateProfile_CloneIsDeep(t *testing.T) {
	years := 8.0
	original := &CandidateProfile{
		Name: ScoredString{Value: "Jane Smith", Confidence: 0.9, Provenance: ProvenanceExtracted},
		YearsExperienceTotal: ScoredNumber{
			Value:      &years,
			Confidence: 0.7,
			Provenance: ProvenanceExtracted,
		},
		Skills: SkillSet{
			ProgrammingLanguages: []string{"Go", "Python"},
		},
		Experience: []ExperienceEntry{
			{
				JobTitle:         ScoredString{Value: "Senior Engineer", Confidence: 0.9, Provenance: ProvenanceExtracted},
				Responsibilities: []string{"Built distributed caching layer"},
				Technologies:     []string{"Go"},
			},
		},
		Projects: []Project{
			{Name: "herald", Technologies: []string{"Go"}},
		},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Mutating the clone must not touch the original.
	clone.Name.Value = "Someone Else"
	*clone.YearsExperienceTotal.Value = 20
	clone.Skills.ProgrammingLanguages[0] = "Rust"
	clone.Experience[0].Responsibilities[0] = "changed"
	clone.Projects[0].Technologies[0] = "Zig"

	assert.Equal(t, "Jane Smith", original.Name.Value)
	assert.Equal(t, 8.0, *original.YearsExperienceTotal.Value)
	assert.Equal(t, "Go", original.Skills.ProgrammingLanguages[0])
	assert.Equal(t, "Built distributed caching layer", original.Experience[0].Responsibilities[0])
	assert.Equal(t, "Go", original.Projects[0].Technologies[0])
}

func TestCandidateProfile_JSONRoundTrip(t *testing.T) {
	years := 5.0
	profile := &CandidateProfile{
		Name:                 ScoredString{Value: NotFound, Confidence: 0, Provenance: ProvenanceDefault},
		RoleLevel:            ScoredString{Value: string(RoleSenior), Confidence: 0.85, Provenance: ProvenanceExtracted},
		YearsExperienceTotal: ScoredNumber{Value: &years, Confidence: 0.7, Provenance: ProvenanceExtracted},
		Experience:           []ExperienceEntry{},
		Education:            []EducationEntry{},
		Certifications:       []Certification{},
		Projects:             []Project{},
	}

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	var decoded CandidateProfile
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, profile.Name, decoded.Name)
	assert.Equal(t, profile.RoleLevel, decoded.RoleLevel)
	require.NotNil(t, decoded.YearsExperienceTotal.Value)
	assert.Equal(t, 5.0, *decoded.YearsExperienceTotal.Value)
}

func TestCandidateProfile_NullYearsSerializeAsNull(t *testing.T) {
	profile := &CandidateProfile{}

	data, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"years_experience_in_tech":{"value":null`)
}
