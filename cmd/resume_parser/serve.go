package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server exposing POST /parse_resume, GET /healthcheck and GET /.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from PORT or 8000)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	port := cfg.Port
	if servePort > 0 {
		port = servePort
	}

	ctx := cmd.Context()
	llmCfg, creds := cfg.LLM()
	client, err := llm.NewClient(ctx, llmCfg, creds)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	logger.Info().
		Str("provider", string(llmCfg.Provider)).
		Str("advanced_model", client.GetModel(llm.TierAdvanced)).
		Str("lite_model", client.GetModel(llm.TierLite)).
		Msg("LLM client ready")

	srv := server.New(server.Config{Port: port}, newParser(client, cfg, logger, nil), logger)
	return srv.Start(ctx)
}
