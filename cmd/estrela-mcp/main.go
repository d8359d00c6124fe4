// Command estrela-mcp serves route search to MCP clients over stdio.
//
// Tools:
//
//	list_states  states that carry a heuristic estimate
//	find_path    A* route between two states
//
// Logs go to stderr; stdout carries the protocol.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/estrela/internal/config"
	"github.com/katalvlaran/estrela/internal/logging"
	"github.com/katalvlaran/estrela/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	datasetURI := flag.String("dataset", "", "dataset URI, overrides the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("estrela-mcp: %v", err)
	}
	if *datasetURI != "" {
		cfg.Dataset = *datasetURI
	}
	logger, err := logging.Open(os.Stderr, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		log.Fatalf("estrela-mcp: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := service.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("estrela-mcp: %v", err)
	}

	s := newServer(svc)
	if err := s.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("server stopped", "error", err)
	}
	if err := svc.WriteMetrics(); err != nil {
		logger.Warn("metrics not written", "error", err)
	}
}
