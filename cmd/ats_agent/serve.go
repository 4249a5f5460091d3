package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring resumes, matching keywords, and building remediation prompts.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	srv := server.New(server.Config{Port: servePort})
	return srv.Start()
}
