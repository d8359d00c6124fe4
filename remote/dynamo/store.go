// Package dynamo serves the search collaborators from DynamoDB, one blocking
// lookup per call.
//
// Two tables share a configurable name prefix:
//
//	<prefix>edges      source (S, HASH), target (S, RANGE), cost (N)
//	<prefix>heuristic  state (S, HASH), h (N)
//
// Create them with:
//
//	aws dynamodb create-table \
//	  --table-name estrela-edges \
//	  --attribute-definitions AttributeName=source,AttributeType=S AttributeName=target,AttributeType=S \
//	  --key-schema AttributeName=source,KeyType=HASH AttributeName=target,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
//	aws dynamodb create-table \
//	  --table-name estrela-heuristic \
//	  --attribute-definitions AttributeName=state,AttributeType=S \
//	  --key-schema AttributeName=state,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
//
// Successors come back in target sort-key order, so searches over a Store
// are deterministic.
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/katalvlaran/estrela/dataset"
)

// Attribute names.
const (
	attrSource = "source"
	attrTarget = "target"
	attrCost   = "cost"
	attrState  = "state"
	attrH      = "h"
)

// ErrBadItem is returned for an item missing an attribute or holding a
// non-numeric cost or estimate.
var ErrBadItem = errors.New("dynamo: malformed item")

// DDBClient is the subset of *dynamodb.Client the Store uses.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// NewClient builds a DynamoDB client from the default AWS credential chain.
// A non-empty endpoint points it at DynamoDB Local or another emulator.
func NewClient(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("dynamo: load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// Store implements remote.Source against the two tables.
type Store struct {
	client         DDBClient
	edgesTable     string
	heuristicTable string
}

// NewStore binds client to the tables named prefix+"edges" and
// prefix+"heuristic".
func NewStore(client DDBClient, prefix string) *Store {
	return &Store{
		client:         client,
		edgesTable:     prefix + "edges",
		heuristicTable: prefix + "heuristic",
	}
}

// Successors queries every edge whose source is id.
func (s *Store) Successors(ctx context.Context, id string) ([]string, error) {
	var (
		out   []string
		start map[string]types.AttributeValue
	)
	for {
		resp, err := s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.edgesTable),
			KeyConditionExpression: aws.String("#src = :src"),
			ExpressionAttributeNames: map[string]string{
				"#src": attrSource,
				"#dst": attrTarget,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":src": &types.AttributeValueMemberS{Value: id},
			},
			ProjectionExpression: aws.String("#dst"),
			ExclusiveStartKey:    start,
		})
		if err != nil {
			return nil, fmt.Errorf("dynamo: query %s successors: %w", id, err)
		}
		for _, item := range resp.Items {
			to, err := stringAttr(item, attrTarget)
			if err != nil {
				return nil, err
			}
			out = append(out, to)
		}
		if len(resp.LastEvaluatedKey) == 0 {
			return out, nil
		}
		start = resp.LastEvaluatedKey
	}
}

// Cost returns the stored weight of from→to, or +Inf when no item exists.
func (s *Store) Cost(ctx context.Context, from, to string) (float64, error) {
	resp, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.edgesTable),
		Key:       edgeKey(from, to),
	})
	if err != nil {
		return 0, fmt.Errorf("dynamo: get edge %s→%s: %w", from, to, err)
	}
	if resp.Item == nil {
		return math.Inf(1), nil
	}

	return numberAttr(resp.Item, attrCost)
}

// Heuristic returns the stored estimate for id, or 0 when none exists.
func (s *Store) Heuristic(ctx context.Context, id string) (float64, error) {
	resp, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.heuristicTable),
		Key:       stateKey(id),
	})
	if err != nil {
		return 0, fmt.Errorf("dynamo: get heuristic %s: %w", id, err)
	}
	if resp.Item == nil {
		return 0, nil
	}

	return numberAttr(resp.Item, attrH)
}

// States lists every state that carries a heuristic value, sorted.
func (s *Store) States(ctx context.Context) ([]string, error) {
	var states []string
	err := s.scan(ctx, s.heuristicTable, func(item map[string]types.AttributeValue) error {
		id, err := stringAttr(item, attrState)
		if err != nil {
			return err
		}
		states = append(states, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(states)

	return states, nil
}

// Export reads both tables into a directed Document named name. Edges are
// sorted by (from, to) since a scan has no stable order.
func (s *Store) Export(ctx context.Context, name string) (*dataset.Document, error) {
	directed := true
	doc := &dataset.Document{Name: name, Directed: &directed, Heuristic: map[string]float64{}}

	err := s.scan(ctx, s.edgesTable, func(item map[string]types.AttributeValue) error {
		e, err := edgeOf(item)
		if err != nil {
			return err
		}
		doc.Edges = append(doc.Edges, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(doc.Edges, func(i, j int) bool {
		if doc.Edges[i].From != doc.Edges[j].From {
			return doc.Edges[i].From < doc.Edges[j].From
		}
		return doc.Edges[i].To < doc.Edges[j].To
	})

	err = s.scan(ctx, s.heuristicTable, func(item map[string]types.AttributeValue) error {
		id, err := stringAttr(item, attrState)
		if err != nil {
			return err
		}
		h, err := numberAttr(item, attrH)
		if err != nil {
			return err
		}
		doc.Heuristic[id] = h
		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// Seed replaces the contents of both tables with doc. Undirected documents
// are written as two directed items per edge.
func (s *Store) Seed(ctx context.Context, doc *dataset.Document) error {
	if err := s.clear(ctx); err != nil {
		return err
	}

	for _, e := range doc.Edges {
		if err := s.putEdge(ctx, e.From, e.To, e.Cost); err != nil {
			return err
		}
		if !doc.IsDirected() && e.From != e.To {
			if err := s.putEdge(ctx, e.To, e.From, e.Cost); err != nil {
				return err
			}
		}
	}
	for id, h := range doc.Heuristic {
		_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(s.heuristicTable),
			Item: map[string]types.AttributeValue{
				attrState: &types.AttributeValueMemberS{Value: id},
				attrH:     &types.AttributeValueMemberN{Value: formatNumber(h)},
			},
		})
		if err != nil {
			return fmt.Errorf("dynamo: put heuristic %s: %w", id, err)
		}
	}

	return nil
}

func (s *Store) putEdge(ctx context.Context, from, to string, cost float64) error {
	item := edgeKey(from, to)
	item[attrCost] = &types.AttributeValueMemberN{Value: formatNumber(cost)}
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.edgesTable),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamo: put edge %s→%s: %w", from, to, err)
	}

	return nil
}

// clear deletes every item of both tables.
func (s *Store) clear(ctx context.Context) error {
	var edgeKeys, stateKeys []map[string]types.AttributeValue
	err := s.scan(ctx, s.edgesTable, func(item map[string]types.AttributeValue) error {
		edgeKeys = append(edgeKeys, map[string]types.AttributeValue{
			attrSource: item[attrSource],
			attrTarget: item[attrTarget],
		})
		return nil
	})
	if err != nil {
		return err
	}
	err = s.scan(ctx, s.heuristicTable, func(item map[string]types.AttributeValue) error {
		stateKeys = append(stateKeys, map[string]types.AttributeValue{attrState: item[attrState]})
		return nil
	})
	if err != nil {
		return err
	}

	for _, k := range edgeKeys {
		if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{TableName: aws.String(s.edgesTable), Key: k}); err != nil {
			return fmt.Errorf("dynamo: clear %s: %w", s.edgesTable, err)
		}
	}
	for _, k := range stateKeys {
		if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{TableName: aws.String(s.heuristicTable), Key: k}); err != nil {
			return fmt.Errorf("dynamo: clear %s: %w", s.heuristicTable, err)
		}
	}

	return nil
}

// scan pages through table and calls fn per item.
func (s *Store) scan(ctx context.Context, table string, fn func(map[string]types.AttributeValue) error) error {
	var start map[string]types.AttributeValue
	for {
		resp, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: start,
		})
		if err != nil {
			return fmt.Errorf("dynamo: scan %s: %w", table, err)
		}
		for _, item := range resp.Items {
			if err := fn(item); err != nil {
				return err
			}
		}
		if len(resp.LastEvaluatedKey) == 0 {
			return nil
		}
		start = resp.LastEvaluatedKey
	}
}

func edgeKey(from, to string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrSource: &types.AttributeValueMemberS{Value: from},
		attrTarget: &types.AttributeValueMemberS{Value: to},
	}
}

func stateKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{attrState: &types.AttributeValueMemberS{Value: id}}
}

func edgeOf(item map[string]types.AttributeValue) (dataset.EdgeSpec, error) {
	from, err := stringAttr(item, attrSource)
	if err != nil {
		return dataset.EdgeSpec{}, err
	}
	to, err := stringAttr(item, attrTarget)
	if err != nil {
		return dataset.EdgeSpec{}, err
	}
	cost, err := numberAttr(item, attrCost)
	if err != nil {
		return dataset.EdgeSpec{}, err
	}

	return dataset.EdgeSpec{From: from, To: to, Cost: cost}, nil
}

func stringAttr(item map[string]types.AttributeValue, name string) (string, error) {
	v, ok := item[name].(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", ErrBadItem, name)
	}
	return v.Value, nil
}

func numberAttr(item map[string]types.AttributeValue, name string) (float64, error) {
	v, ok := item[name].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a number", ErrBadItem, name)
	}
	f, err := strconv.ParseFloat(v.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrBadItem, name, v.Value, err)
	}
	return f, nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
