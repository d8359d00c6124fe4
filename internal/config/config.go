// Package config loads the estrela configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Collaborator sources.
const (
	SourceDataset = "dataset"
	SourceDynamo  = "dynamo"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full configuration of the estrela commands.
type Config struct {
	// Dataset is a dataset URI: embed:<name>, a file path, or s3://bucket/key.
	Dataset string `yaml:"dataset"`
	// Source picks where collaborator lookups go during a search.
	Source  string        `yaml:"source"`
	S3      S3Config      `yaml:"s3"`
	Dynamo  DynamoConfig  `yaml:"dynamo"`
	Search  SearchConfig  `yaml:"search"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
}

type DynamoConfig struct {
	TablePrefix string `yaml:"table_prefix"`
	Region      string `yaml:"region"`
	Endpoint    string `yaml:"endpoint"` // DynamoDB Local, when set
}

type SearchConfig struct {
	MaxExpansions int     `yaml:"max_expansions"` // 0 = unlimited
	ThrottleRPS   float64 `yaml:"throttle_rps"`   // collaborator lookups per second, 0 = unlimited
	ThrottleBurst int     `yaml:"throttle_burst"`
	Workers       int     `yaml:"workers"` // concurrent searches in batch mode
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	// Textfile, when set, receives the registry in node-exporter textfile
	// format when a command exits.
	Textfile string `yaml:"textfile"`
}

// Default returns a configuration that searches the bundled Romania map.
func Default() Config {
	return Config{
		Dataset: "embed:romania",
		Source:  SourceDataset,
		S3: S3Config{
			Endpoint: "localhost:9000",
			Secure:   false,
		},
		Dynamo: DynamoConfig{
			TablePrefix: "estrela-",
			Region:      "us-east-1",
		},
		Search: SearchConfig{
			ThrottleBurst: 1,
			Workers:       4,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path on top of Default. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	if err := Decode(file, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Decode strictly decodes YAML from r into cfg and validates the result.
// Unknown keys are an error.
func Decode(r io.Reader, cfg *Config) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("yaml: %w", err)
	}

	return cfg.Validate()
}

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceDataset, SourceDynamo:
	default:
		return fmt.Errorf("%w: source %q (want %q or %q)", ErrInvalid, c.Source, SourceDataset, SourceDynamo)
	}
	if c.Source == SourceDataset && c.Dataset == "" {
		return fmt.Errorf("%w: dataset is empty", ErrInvalid)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions %d < 0", ErrInvalid, c.Search.MaxExpansions)
	}
	if c.Search.ThrottleRPS < 0 {
		return fmt.Errorf("%w: search.throttle_rps %g < 0", ErrInvalid, c.Search.ThrottleRPS)
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("%w: search.workers %d < 1", ErrInvalid, c.Search.Workers)
	}

	return nil
}
