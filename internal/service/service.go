// Package service wires configuration to a collaborator source and runs
// logged, measured and throttled searches against it. Both commands share it.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/estrela/astar"
	"github.com/katalvlaran/estrela/core"
	"github.com/katalvlaran/estrela/dataset"
	"github.com/katalvlaran/estrela/internal/config"
	"github.com/katalvlaran/estrela/internal/logging"
	"github.com/katalvlaran/estrela/metrics"
	"github.com/katalvlaran/estrela/remote"
	"github.com/katalvlaran/estrela/remote/dynamo"
)

// Service answers path queries for one configured source.
// It is safe for concurrent use; every Search owns its engine state.
type Service struct {
	cfg     config.Config
	log     *logging.Logger
	reg     *prometheus.Registry
	rec     *metrics.Recorder
	limiter *rate.Limiter

	src    remote.Source
	states func(context.Context) ([]string, error)
	graph  func(context.Context) (*core.Graph, error)
}

// Report is the outcome of one Search.
type Report struct {
	astar.Result[string]
	RunID string
	Took  time.Duration
}

// Open resolves cfg.Source. For the dataset source the document is loaded
// and built into a core.Graph here; the dynamo source does no I/O until the
// first lookup.
func Open(ctx context.Context, cfg config.Config, log *logging.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Noop()
	}
	reg := prometheus.NewRegistry()
	s := &Service{
		cfg:     cfg,
		log:     log,
		reg:     reg,
		rec:     metrics.New(reg),
		limiter: remote.NewLimiter(cfg.Search.ThrottleRPS, cfg.Search.ThrottleBurst),
	}

	switch cfg.Source {
	case config.SourceDynamo:
		store, err := DynamoStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		s.src = store
		s.states = store.States
		s.graph = func(ctx context.Context) (*core.Graph, error) {
			doc, err := store.Export(ctx, "dynamo")
			if err != nil {
				return nil, err
			}
			return doc.Graph()
		}
		log.Info("source ready", "source", cfg.Source, "tables", cfg.Dynamo.TablePrefix+"*")

	default:
		doc, err := LoadDocument(ctx, cfg)
		if err != nil {
			return nil, err
		}
		g, err := doc.Graph()
		if err != nil {
			return nil, err
		}
		s.src = g
		s.states = func(context.Context) ([]string, error) {
			if states := g.HeuristicStates(); len(states) > 0 {
				return states, nil
			}
			return g.Vertices(), nil
		}
		s.graph = func(context.Context) (*core.Graph, error) { return g, nil }
		log.Info("source ready", "source", cfg.Source, "dataset", cfg.Dataset,
			"states", g.VertexCount(), "edges", g.EdgeCount())
	}

	return s, nil
}

// Config returns the configuration the service was opened with.
func (s *Service) Config() config.Config { return s.cfg }

// Registry exposes the service's metrics.
func (s *Service) Registry() *prometheus.Registry { return s.reg }

// States lists the states a user can pick from: those with a heuristic
// estimate, or every vertex when the source stores none.
func (s *Service) States(ctx context.Context) ([]string, error) {
	return s.states(ctx)
}

// Graph returns the whole graph, for rendering and audits.
func (s *Service) Graph(ctx context.Context) (*core.Graph, error) {
	return s.graph(ctx)
}

// Search runs one A* query through the throttled, instrumented collaborators.
func (s *Service) Search(ctx context.Context, start, goal string) (Report, error) {
	rep := Report{RunID: uuid.NewString()}
	log := s.log.WithRun(rep.RunID).WithQuery(start, goal)

	c := remote.FromSource(s.src)
	c = remote.Throttle(c, s.limiter)
	c = remote.Instrument(c, s.rec)

	opts := []astar.Option[string]{
		astar.WithOnExpand(func(state string, g float64) error {
			log.LogExpand(ctx, state, g)
			return nil
		}),
	}
	if n := s.cfg.Search.MaxExpansions; n > 0 {
		opts = append(opts, astar.WithMaxExpansions[string](n))
	}

	began := time.Now()
	res, err := c.FindPath(ctx, start, goal, opts...)
	rep.Result = res
	rep.Took = time.Since(began)

	s.rec.ObserveSearch(metrics.Outcome(res.Found, err), res.Expanded, rep.Took)
	hops := 0
	if res.Found {
		hops = len(res.Path) - 1
	}
	log.LogSearch(ctx, logging.SearchStats{
		Found:     res.Found,
		Cost:      res.Cost,
		Hops:      hops,
		Expanded:  res.Expanded,
		Generated: res.Generated,
		Took:      rep.Took,
	}, err)

	return rep, err
}

// WriteMetrics dumps the registry to cfg.Metrics.Textfile, if one is set.
func (s *Service) WriteMetrics() error {
	if s.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(s.cfg.Metrics.Textfile, s.reg); err != nil {
		return fmt.Errorf("service: metrics textfile: %w", err)
	}
	return nil
}

// LoadDocument resolves cfg.Dataset, connecting to S3 when needed.
func LoadDocument(ctx context.Context, cfg config.Config) (*dataset.Document, error) {
	opts, err := objectStoreOptions(cfg, cfg.Dataset)
	if err != nil {
		return nil, err
	}
	return dataset.Load(ctx, cfg.Dataset, opts...)
}

// SaveDocument writes doc to uri, connecting to S3 when needed.
func SaveDocument(ctx context.Context, cfg config.Config, uri string, doc *dataset.Document) error {
	opts, err := objectStoreOptions(cfg, uri)
	if err != nil {
		return err
	}
	return dataset.Save(ctx, uri, doc, opts...)
}

// DynamoStore builds the DynamoDB store described by cfg.Dynamo.
func DynamoStore(ctx context.Context, cfg config.Config) (*dynamo.Store, error) {
	client, err := dynamo.NewClient(ctx, cfg.Dynamo.Region, cfg.Dynamo.Endpoint)
	if err != nil {
		return nil, err
	}
	return dynamo.NewStore(client, cfg.Dynamo.TablePrefix), nil
}

func objectStoreOptions(cfg config.Config, uri string) ([]dataset.LoadOption, error) {
	if !strings.HasPrefix(uri, "s3://") {
		return nil, nil
	}
	store, err := dataset.NewMinioStore(dataset.S3Config{
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		Secure:    cfg.S3.Secure,
	})
	if err != nil {
		return nil, err
	}
	return []dataset.LoadOption{dataset.WithObjectStore(store)}, nil
}
