// Package pipeline wires the full extraction flow: normalize the raw text,
// fan the extractors out in parallel, and aggregate their candidates into a
// CandidateProfile. It holds no state between invocations and is safe to
// call concurrently.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/aggregate"
	"github.com/jonathan/resume-parser/internal/extract"
	"github.com/jonathan/resume-parser/internal/normalize"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// Options tunes an extraction run. The zero value uses the built-in
// vocabulary and the default caps.
type Options struct {
	// Vocabulary overrides the built-in skill taxonomy.
	Vocabulary *vocab.Vocabulary
	// MaxSkillsPerCategory caps each aggregated skill list. Zero means the default.
	MaxSkillsPerCategory int
	// MaxResponsibilities caps bullet lines per experience entry. Zero means the default.
	MaxResponsibilities int
}

// ExtractProfile runs the full pipeline over raw resume text. It returns
// EmptyInputError when no lines survive normalization; every other outcome
// is a complete profile, with sentinels standing in for missing fields.
func ExtractProfile(ctx context.Context, text string, opts Options) (*types.CandidateProfile, error) {
	doc := normalize.Normalize(text)
	if len(doc.Lines) == 0 {
		return nil, &EmptyInputError{}
	}

	extractors := []extract.Extractor{
		extract.IdentityExtractor{},
		extract.RoleExtractor{},
		extract.SkillsExtractor{Vocab: opts.Vocabulary},
		extract.SummaryExtractor{},
		extract.ExperienceExtractor{Vocab: opts.Vocabulary, MaxResponsibilities: opts.MaxResponsibilities},
		extract.EducationExtractor{},
		extract.CertificationsExtractor{},
		extract.ProjectsExtractor{Vocab: opts.Vocabulary},
	}

	// One task per extractor family; results land in per-extractor slots so
	// no locking is needed.
	results := make([][]extract.Candidate, len(extractors))
	g, gctx := errgroup.WithContext(ctx)
	for i, ex := range extractors {
		i, ex := i, ex
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = ex.Extract(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var candidates []extract.Candidate
	for _, r := range results {
		candidates = append(candidates, r...)
	}

	return aggregate.Aggregate(candidates, aggregate.Options{
		MaxSkillsPerCategory: opts.MaxSkillsPerCategory,
	}), nil
}
