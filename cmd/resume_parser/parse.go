package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/vocab"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract a structured candidate profile from resume text",
	Long:  "Parse raw resume text into a CandidateProfile JSON with per-field confidence and provenance. Reads from --in or stdin and writes to --out or stdout.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseConfigFile string
	parseVocabFile  string
	parseMaxSkills  int
	parseMaxResp    int
	parseUseAI      bool
	parseAPIKey     string
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume text file (default: stdin)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().StringVar(&parseConfigFile, "config", "", "Path to JSON config file")
	parseCmd.Flags().StringVar(&parseVocabFile, "vocab", "", "Path to custom skill vocabulary JSON")
	parseCmd.Flags().IntVar(&parseMaxSkills, "max-skills", 0, "Maximum skills per category (default 12)")
	parseCmd.Flags().IntVar(&parseMaxResp, "max-responsibilities", 0, "Maximum responsibilities per experience entry (default 5)")
	parseCmd.Flags().BoolVar(&parseUseAI, "ai", false, "Refine low-confidence fields with the Gemini API")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	opts := pipeline.Options{
		MaxSkillsPerCategory: parseMaxSkills,
		MaxResponsibilities:  parseMaxResp,
	}
	vocabPath := parseVocabFile

	if parseConfigFile != "" {
		cfg, err := config.LoadConfig(parseConfigFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if opts.MaxSkillsPerCategory == 0 {
			opts.MaxSkillsPerCategory = cfg.MaxSkillsPerCategory
		}
		if opts.MaxResponsibilities == 0 {
			opts.MaxResponsibilities = cfg.MaxResponsibilities
		}
		if vocabPath == "" {
			vocabPath = cfg.Vocabulary
		}
	}

	if vocabPath != "" {
		if err := vocab.ValidateFile(vocab.ResolveSchemaPath(), vocabPath); err != nil {
			return fmt.Errorf("vocabulary rejected: %w", err)
		}
		v, err := vocab.Load(vocabPath)
		if err != nil {
			return err
		}
		opts.Vocabulary = v
	}

	text, err := readInput(parseInputFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	profile, err := pipeline.ExtractProfile(ctx, text, opts)
	if err != nil {
		return err
	}

	if parseUseAI {
		apiKey := parseAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("API key is required with --ai (set GEMINI_API_KEY environment variable or use --api-key flag)")
		}

		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return err
		}
		defer client.Close()

		refiner := &llm.Refiner{Client: client}
		refined, err := refiner.Refine(ctx, text, profile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: refinement failed, using heuristic result: %v\n", err)
		} else {
			profile = refined
		}
	}

	return writeJSON(parseOutputFile, profile)
}

// readInput reads the resume text from a file, or stdin when path is empty.
func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// writeJSON writes v as indented JSON to a file, or stdout when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
