package dataset

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/estrela/core"
)

// Document is the serialized form of a route graph: raw weighted edges plus
// one heuristic value per state, toward a fixed goal.
type Document struct {
	Name      string             `yaml:"name"`
	Directed  *bool              `yaml:"directed,omitempty"` // nil means directed
	Edges     []EdgeSpec         `yaml:"edges"`
	Heuristic map[string]float64 `yaml:"heuristic,omitempty"`
}

// EdgeSpec is one edge row.
type EdgeSpec struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

// IsDirected reports the effective directedness (default true).
func (d *Document) IsDirected() bool {
	return d.Directed == nil || *d.Directed
}

// Parse decodes one YAML document strictly: unknown fields are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for i, e := range doc.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge #%d has an empty endpoint", ErrMalformed, i+1)
		}
	}

	return &doc, nil
}

// Encode writes doc as YAML.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("dataset: encode %q: %w", doc.Name, err)
	}

	return enc.Close()
}

// Graph builds a core.Graph holding every edge and heuristic value of doc.
// Edge order is preserved, so successor enumeration follows the document.
func (d *Document) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(d.IsDirected()), core.WithLoops())
	for i, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Cost); err != nil {
			return nil, fmt.Errorf("dataset: %s edge #%d %s→%s: %w", d.Name, i+1, e.From, e.To, err)
		}
	}
	for id, h := range d.Heuristic {
		if err := g.SetHeuristic(id, h); err != nil {
			return nil, fmt.Errorf("dataset: %s heuristic %s: %w", d.Name, id, err)
		}
	}

	return g, nil
}

// FromGraph snapshots g into a Document named name.
func FromGraph(name string, g *core.Graph) *Document {
	directed := g.Directed()
	doc := &Document{Name: name, Directed: &directed, Heuristic: g.Heuristics()}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.From, To: e.To, Cost: e.Weight})
	}

	return doc
}
