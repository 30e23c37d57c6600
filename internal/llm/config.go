// Package llm provides the model-backed refinement layer: a Gemini client
// plus a refiner that re-asks low-confidence profile fields. The heuristic
// pipeline never depends on this package; refinement is strictly additive.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for simple field extraction and classification.
	TierLite ModelTier = "lite"
	// TierStandard is for structured output over longer documents.
	TierStandard ModelTier = "standard"
)

// Config maps model tiers to concrete model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// Model returns the model name for a tier, falling back to the standard
// tier and then to any configured model.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	for _, model := range c.Models {
		return model
	}
	return ""
}
