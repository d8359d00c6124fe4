package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/estrela/internal/config"
	"github.com/katalvlaran/estrela/internal/service"
	"github.com/katalvlaran/estrela/remote/dynamo"
)

// runSeed copies the configured dataset to -out (file or s3:// URI) or, with
// -source dynamo, into the DynamoDB tables, replacing what they held.
func runSeed(ctx context.Context, e *env, args []string) int {
	fs, c := newFlagSet("seed", e)
	out := fs.String("out", "", "destination: file path (.zst/.lz4 compress) or s3://bucket/key")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	cfg, log, ok := c.setup(e)
	if !ok {
		return exitError
	}
	if *out == "" && cfg.Source != config.SourceDynamo {
		fmt.Fprintln(e.stderr, "estrela seed: give -out or -source dynamo")
		return exitError
	}

	// The document always comes from the dataset URI, whatever the source.
	doc, err := service.LoadDocument(ctx, cfg)
	if err != nil {
		log.Error("load dataset", "dataset", cfg.Dataset, "error", err)
		return exitError
	}
	if _, err := doc.Graph(); err != nil {
		log.Error("validate dataset", "dataset", cfg.Dataset, "error", err)
		return exitError
	}

	target := *out
	if target != "" {
		err = service.SaveDocument(ctx, cfg, target, doc)
	} else {
		target = "dynamodb:" + cfg.Dynamo.TablePrefix + "*"
		var store *dynamo.Store
		if store, err = service.DynamoStore(ctx, cfg); err == nil {
			err = store.Seed(ctx, doc)
		}
	}
	log.LogSeed(ctx, target, len(doc.Edges), len(doc.Heuristic), err)
	if err != nil {
		return exitError
	}

	return exitOK
}
