package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/correction"
	"github.com/jonathan/resume-parser/internal/types"
)

var correctCmd = &cobra.Command{
	Use:   "correct",
	Short: "Apply a field correction to an extracted profile",
	Long:  "Apply a user correction to a CandidateProfile JSON file. The addressed field is replaced, its confidence pinned to 1.0 and its provenance marked user_corrected.",
	RunE:  runCorrect,
}

var (
	correctProfileFile string
	correctOutputFile  string
	correctPath        string
	correctValue       string
)

func init() {
	correctCmd.Flags().StringVarP(&correctProfileFile, "profile", "p", "", "Path to profile JSON file (required)")
	correctCmd.Flags().StringVarP(&correctOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	correctCmd.Flags().StringVar(&correctPath, "path", "", "Field path, e.g. name or experience[0].job_title (required)")
	correctCmd.Flags().StringVar(&correctValue, "value", "", "Replacement value")
	_ = correctCmd.MarkFlagRequired("profile")
	_ = correctCmd.MarkFlagRequired("path")

	rootCmd.AddCommand(correctCmd)
}

func runCorrect(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(correctProfileFile)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	corrected, err := correction.Apply(&profile, correctPath, correctValue)
	if err != nil {
		return err
	}

	return writeJSON(correctOutputFile, corrected)
}
