package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for parsing resume text and applying corrections.`,
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigFile string
	serveVocabFile  string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveVocabFile, "vocab", "", "Path to custom skill vocabulary JSON")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := server.Config{
		Port:      servePort,
		APIKey:    os.Getenv("GEMINI_API_KEY"),
		VocabPath: serveVocabFile,
	}

	if serveConfigFile != "" {
		fileCfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		cfg = mergeServeConfig(cfg, fileCfg, cmd.Flags().Changed("port"))
	}

	srv, err := server.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// mergeServeConfig overlays config-file values onto the flag-derived server
// config. Flags win for the port when set explicitly; the file fills in
// anything the flags and environment left empty.
func mergeServeConfig(cfg server.Config, fileCfg *config.Config, portFlagSet bool) server.Config {
	if fileCfg.Port != 0 && !portFlagSet {
		cfg.Port = fileCfg.Port
	}
	if cfg.VocabPath == "" {
		cfg.VocabPath = fileCfg.Vocabulary
	}
	if cfg.APIKey == "" {
		cfg.APIKey = fileCfg.APIKey
	}
	cfg.MaxSkillsPerCategory = fileCfg.MaxSkillsPerCategory
	cfg.MaxResponsibilities = fileCfg.MaxResponsibilities
	return cfg
}
