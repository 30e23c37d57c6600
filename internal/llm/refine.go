package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// DefaultRefineThreshold is the confidence below which a scalar field is
// re-asked of the model.
const DefaultRefineThreshold = 0.8

// ConfidenceRefined is assigned to fields the model filled in. Below the
// syntactically unambiguous tier: the model output is plausible text, not a
// verified pattern match.
const ConfidenceRefined = 0.9

// Refiner overlays model answers onto the low-confidence scalar fields of a
// heuristically extracted profile. User-corrected fields are never touched.
type Refiner struct {
	Client Client
	// Threshold overrides DefaultRefineThreshold when positive.
	Threshold float64
}

// Refine returns a copy of the profile with low-confidence scalar fields
// replaced by model answers where the model produced one. The input profile
// is never mutated; on any model or parse error the original profile is
// returned alongside the error so callers can fall back to heuristics.
func (r *Refiner) Refine(ctx context.Context, text string, profile *types.CandidateProfile) (*types.CandidateProfile, error) {
	fields := lowConfidenceFields(profile, r.threshold())
	if len(fields) == 0 {
		return profile, nil
	}

	raw, err := r.Client.GenerateJSON(ctx, refinePrompt(text, fields), TierLite)
	if err != nil {
		return profile, fmt.Errorf("refinement call failed: %w", err)
	}

	answers, err := parseRefinement(raw)
	if err != nil {
		return profile, err
	}
	return applyRefinements(profile, answers), nil
}

func (r *Refiner) threshold() float64 {
	if r.Threshold > 0 {
		return r.Threshold
	}
	return DefaultRefineThreshold
}

// refinable lists the scalar fields the refiner may overlay, in prompt order.
var refinable = []string{
	"name", "email", "phone", "location", "role_level", "primary_role", "summary",
}

// lowConfidenceFields returns the refinable fields whose current value came
// from extraction or defaulting with confidence below the threshold.
func lowConfidenceFields(p *types.CandidateProfile, threshold float64) []string {
	var out []string
	for _, field := range refinable {
		s := scalarByName(p, field)
		if s.Provenance == types.ProvenanceUserCorrected {
			continue
		}
		if s.Confidence < threshold {
			out = append(out, field)
		}
	}
	return out
}

func scalarByName(p *types.CandidateProfile, name string) *types.ScoredString {
	switch name {
	case "name":
		return &p.Name
	case "email":
		return &p.Email
	case "phone":
		return &p.Phone
	case "location":
		return &p.Location
	case "role_level":
		return &p.RoleLevel
	case "primary_role":
		return &p.PrimaryRole
	case "summary":
		return &p.Summary
	}
	return nil
}

func refinePrompt(text string, fields []string) string {
	var b strings.Builder
	b.WriteString("Extract the following fields from the resume text below.\n")
	b.WriteString("Respond with a single JSON object whose keys are exactly the field names.\n")
	b.WriteString("Omit a key entirely if the resume does not contain that field.\n")
	b.WriteString("role_level, if present, must be one of: Junior, Mid, Senior, Staff, Manager.\n\n")
	b.WriteString("Fields: " + strings.Join(fields, ", ") + "\n\n")
	b.WriteString("Resume:\n")
	b.WriteString(text)
	return b.String()
}

// parseRefinement decodes the model's JSON answer into field values.
func parseRefinement(raw string) (map[string]string, error) {
	var answers map[string]string
	if err := json.Unmarshal([]byte(CleanJSONBlock(raw)), &answers); err != nil {
		return nil, fmt.Errorf("failed to parse refinement response: %w", err)
	}
	return answers, nil
}

// applyRefinements overlays parsed answers onto a copy of the profile.
// Unknown keys, empty values and invalid role levels are skipped.
func applyRefinements(profile *types.CandidateProfile, answers map[string]string) *types.CandidateProfile {
	out := profile.Clone()
	for _, field := range refinable {
		value, ok := answers[field]
		value = strings.TrimSpace(value)
		if !ok || value == "" || value == types.NotFound {
			continue
		}
		if field == "role_level" && types.RoleLevel(value).Rank() == 0 {
			continue
		}

		s := scalarByName(out, field)
		if s.Provenance == types.ProvenanceUserCorrected {
			continue
		}
		*s = types.ScoredString{
			Value:      value,
			Confidence: ConfidenceRefined,
			Provenance: types.ProvenanceExtracted,
		}
	}
	return out
}
