// Package main provides the MCP server entry point for Staffline.
// The server exposes contract and resume analysis, job description generation
// and workflow simulation as Model Context Protocol tools over stdio.
package main

import (
	"context"
	"fmt"
	"os"

	"staffline-agent/src/config"
	"staffline-agent/src/logger"
	"staffline-agent/src/mcp"
	"staffline-agent/src/pipeline"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr; stdout carries the protocol.
	log := logger.New(logger.Options{Environment: cfg.AppEnv, Level: cfg.LogLevel, Output: os.Stderr})

	coord, err := pipeline.NewCoordinator(context.Background(), cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create coordinator: %v\n", err)
		os.Exit(1)
	}

	server, err := mcp.NewServer(coord.Analyzer(), coord, mcp.WithDefaultATS(cfg.ATSSystem))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create MCP server: %v\n", err)
		os.Exit(1)
	}

	// Run server over stdin/stdout (stdio transport)
	if err := server.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
		os.Exit(1)
	}
}
