package extract

// Confidence tiers. Scoring policy lives here and nowhere else, so the
// aggregator can treat confidence as comparable across extractors.
//
// High: the pattern is syntactically unambiguous. Medium: the pattern is
// common but format-variable. Low: heuristic or positional fallback.
const (
	// High tier
	ConfidenceEmail         = 0.95
	ConfidenceLink          = 0.95
	ConfidenceNameTop       = 0.90
	ConfidenceSummaryHeader = 0.90
	ConfidenceEntryField    = 0.90

	// Medium tier
	ConfidenceRoleKeyword   = 0.85
	ConfidenceSkill         = 0.85
	ConfidenceEducation     = 0.85
	ConfidencePhone         = 0.80
	ConfidenceCertification = 0.80
	ConfidenceProject       = 0.80
	ConfidenceYearsLabeled  = 0.70

	// Low tier
	ConfidenceLocation        = 0.70
	ConfidenceSummaryFallback = 0.55
	ConfidenceYearsPositional = 0.50
	ConfidenceRoleDefault     = 0.40
)

// Name confidence decays the further down the document the candidate line
// sits: resumes conventionally place the candidate's name first.
const (
	nameDecayPerLine = 0.08
	nameFloor        = 0.50
)

func nameConfidence(line int) float64 {
	c := ConfidenceNameTop - nameDecayPerLine*float64(line)
	if c < nameFloor {
		return nameFloor
	}
	return c
}
