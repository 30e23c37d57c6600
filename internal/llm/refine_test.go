package llm

import (
	"context"
	"testing"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	response string
	err      error
	prompt   string
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string, _ ModelTier) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func lowConfidenceProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		Name:        types.ScoredString{Value: "JANE SMITH", Confidence: 0.90, Provenance: types.ProvenanceExtracted},
		Email:       types.ScoredString{Value: "jane@example.com", Confidence: 0.95, Provenance: types.ProvenanceExtracted},
		Phone:       types.ScoredString{Value: types.NotFound, Provenance: types.ProvenanceDefault},
		Location:    types.ScoredString{Value: "San Francisco, CA", Confidence: 0.70, Provenance: types.ProvenanceExtracted},
		RoleLevel:   types.ScoredString{Value: "Mid", Confidence: 0.40, Provenance: types.ProvenanceExtracted},
		PrimaryRole: types.ScoredString{Value: types.NotFound, Provenance: types.ProvenanceDefault},
		Summary:     types.ScoredString{Value: "Engineer.", Confidence: 0.55, Provenance: types.ProvenanceExtracted},
	}
}

func TestLowConfidenceFields(t *testing.T) {
	fields := lowConfidenceFields(lowConfidenceProfile(), DefaultRefineThreshold)
	assert.Equal(t, []string{"phone", "location", "role_level", "primary_role", "summary"}, fields)
}

func TestLowConfidenceFields_SkipsUserCorrected(t *testing.T) {
	profile := lowConfidenceProfile()
	profile.Location = types.ScoredString{Value: "Oakland, CA", Confidence: 1.0, Provenance: types.ProvenanceUserCorrected}

	fields := lowConfidenceFields(profile, DefaultRefineThreshold)
	assert.NotContains(t, fields, "location")
}

func TestRefine_OverlaysModelAnswers(t *testing.T) {
	client := &stubClient{response: `{"phone": "(415) 555-0100", "role_level": "Senior"}`}
	refiner := &Refiner{Client: client}

	original := lowConfidenceProfile()
	refined, err := refiner.Refine(context.Background(), "resume text", original)
	require.NoError(t, err)

	assert.Equal(t, "(415) 555-0100", refined.Phone.Value)
	assert.InDelta(t, ConfidenceRefined, refined.Phone.Confidence, 0.001)
	assert.Equal(t, types.ProvenanceExtracted, refined.Phone.Provenance)
	assert.Equal(t, "Senior", refined.RoleLevel.Value)

	// Fields the model omitted keep their heuristic values.
	assert.Equal(t, types.NotFound, refined.PrimaryRole.Value)
	// Original untouched.
	assert.Equal(t, types.NotFound, original.Phone.Value)

	assert.Contains(t, client.prompt, "phone")
	assert.Contains(t, client.prompt, "resume text")
}

func TestRefine_NothingBelowThreshold(t *testing.T) {
	profile := lowConfidenceProfile()
	profile.Phone = types.ScoredString{Value: "(415) 555-0100", Confidence: 0.80, Provenance: types.ProvenanceExtracted}
	profile.Location.Confidence = 0.95
	profile.RoleLevel.Confidence = 0.85
	profile.PrimaryRole = types.ScoredString{Value: "Engineer", Confidence: 0.90, Provenance: types.ProvenanceExtracted}
	profile.Summary.Confidence = 0.90

	client := &stubClient{}
	refined, err := (&Refiner{Client: client}).Refine(context.Background(), "text", profile)
	require.NoError(t, err)
	assert.Same(t, profile, refined)
	assert.Empty(t, client.prompt)
}

func TestRefine_ModelErrorReturnsOriginal(t *testing.T) {
	client := &stubClient{err: assert.AnError}
	original := lowConfidenceProfile()

	refined, err := (&Refiner{Client: client}).Refine(context.Background(), "text", original)
	require.Error(t, err)
	assert.Same(t, original, refined)
}

func TestRefine_MalformedJSONReturnsOriginal(t *testing.T) {
	client := &stubClient{response: "not json"}
	original := lowConfidenceProfile()

	refined, err := (&Refiner{Client: client}).Refine(context.Background(), "text", original)
	require.Error(t, err)
	assert.Same(t, original, refined)
}

func TestApplyRefinements_SkipsInvalidValues(t *testing.T) {
	refined := applyRefinements(lowConfidenceProfile(), map[string]string{
		"role_level":   "Wizard",
		"phone":        "  ",
		"location":     "Not found",
		"primary_role": "Platform Engineer",
		"unknown_key":  "ignored",
	})

	assert.Equal(t, "Mid", refined.RoleLevel.Value)
	assert.Equal(t, types.NotFound, refined.Phone.Value)
	assert.Equal(t, "San Francisco, CA", refined.Location.Value)
	assert.Equal(t, "Platform Engineer", refined.PrimaryRole.Value)
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"padded", "  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.in))
		})
	}
}
