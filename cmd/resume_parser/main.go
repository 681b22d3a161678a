// Package main provides the resume_parser CLI: parse a resume file or serve the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/logging"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Resume Parser",
	Long:  "Resume Parser extracts a structured, normalized record from PDF, DOCX and DOC resumes using an LLM.",

	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (overrides environment)")
}

// loadConfig reads configuration and installs the global logger
func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logging.Init(cfg.Logging()), nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
