package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/katalvlaran/estrela/internal/config"
	"github.com/katalvlaran/estrela/internal/logging"
	"github.com/katalvlaran/estrela/internal/service"
)

// common holds the flags every command shares. Empty or zero values leave
// the configuration file (or its defaults) untouched.
type common struct {
	configPath    string
	dataset       string
	source        string
	maxExpansions int
	logLevel      string
	logFormat     string
	metricsFile   string
}

func newFlagSet(name string, e *env) (*flag.FlagSet, *common) {
	fs := flag.NewFlagSet("estrela "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	c := &common{}
	fs.StringVar(&c.configPath, "config", "", "path to a YAML configuration file")
	fs.StringVar(&c.dataset, "dataset", "", "dataset URI: embed:<name>, a file path or s3://bucket/key")
	fs.StringVar(&c.source, "source", "", "collaborator source: dataset or dynamo")
	fs.IntVar(&c.maxExpansions, "max-expansions", 0, "abandon a search after closing this many states")
	fs.StringVar(&c.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&c.logFormat, "log-format", "", "text or json")
	fs.StringVar(&c.metricsFile, "metrics-textfile", "", "write Prometheus metrics here on exit")

	return fs, c
}

// load merges the configuration file with the flags.
func (c *common) load() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	if c.dataset != "" {
		cfg.Dataset = c.dataset
	}
	if c.source != "" {
		cfg.Source = c.source
	}
	if c.maxExpansions > 0 {
		cfg.Search.MaxExpansions = c.maxExpansions
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if c.logFormat != "" {
		cfg.Log.Format = c.logFormat
	}
	if c.metricsFile != "" {
		cfg.Metrics.Textfile = c.metricsFile
	}

	return cfg, cfg.Validate()
}

// setup loads configuration and the logger, reporting failures on stderr.
func (c *common) setup(e *env) (config.Config, *logging.Logger, bool) {
	cfg, err := c.load()
	if err != nil {
		fmt.Fprintln(e.stderr, "estrela:", err)
		return cfg, nil, false
	}
	log, err := logging.Open(e.stderr, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(e.stderr, "estrela:", err)
		return cfg, nil, false
	}

	return cfg, log, true
}

// open is setup followed by service.Open.
func (c *common) open(ctx context.Context, e *env) (*service.Service, *logging.Logger, bool) {
	cfg, log, ok := c.setup(e)
	if !ok {
		return nil, nil, false
	}
	svc, err := service.Open(ctx, cfg, log)
	if err != nil {
		log.Error("open source", "error", err)
		return nil, nil, false
	}

	return svc, log, true
}

// finish flushes metrics; a failure is only logged.
func finish(svc *service.Service, log *logging.Logger) {
	if err := svc.WriteMetrics(); err != nil {
		log.Warn("metrics not written", "error", err)
	}
}
