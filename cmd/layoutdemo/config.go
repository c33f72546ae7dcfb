package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/layoutcore/pkg/graph"
	"github.com/dshills/layoutcore/pkg/layout"
)

// NodeSpec is one node entry in a scenario file.
type NodeSpec struct {
	ID    int64  `yaml:"id"`
	Label string `yaml:"label"`
	Width int    `yaml:"width"`
}

// EdgeSpec is one edge entry in a scenario file, referencing nodes by id
// rather than index — indices are resolved once while building the graph.
type EdgeSpec struct {
	From     int64  `yaml:"from"`
	To       int64  `yaml:"to"`
	Directed bool   `yaml:"directed"`
	Label    string `yaml:"label"`
}

// Scenario is the on-disk shape of a layoutdemo input file: a graph plus
// the named preset to run it through.
type Scenario struct {
	Preset         string     `yaml:"preset"`
	SkipValidation bool       `yaml:"skip_validation"`
	MaxNodes       int        `yaml:"max_nodes"`
	MaxEdges       int        `yaml:"max_edges"`
	Nodes          []NodeSpec `yaml:"nodes"`
	Edges          []EdgeSpec `yaml:"edges"`
}

// LoadScenario reads and parses a scenario file from path.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if sc.Preset == "" {
		return nil, fmt.Errorf("scenario: preset is required")
	}
	if len(sc.Nodes) == 0 {
		return nil, fmt.Errorf("scenario: at least one node is required")
	}
	return &sc, nil
}

// BuildGraph materializes the scenario's node/edge lists into a
// pkg/graph.Graph, resolving edge endpoints from ids to indices.
func (sc *Scenario) BuildGraph() (*graph.Graph, error) {
	g := graph.NewGraph(sc.MaxNodes, sc.MaxEdges)

	idToIndex := make(map[int64]int, len(sc.Nodes))
	for _, n := range sc.Nodes {
		width := n.Width
		if width <= 0 {
			width = 1
		}
		idx, err := g.AddNode(graph.Node{ID: n.ID, Label: n.Label, Width: width})
		if err != nil {
			return nil, fmt.Errorf("adding node %d: %w", n.ID, err)
		}
		idToIndex[n.ID] = idx
	}

	for i, e := range sc.Edges {
		fromIdx, ok := idToIndex[e.From]
		if !ok {
			return nil, fmt.Errorf("edge %d: unknown from-id %d", i, e.From)
		}
		toIdx, ok := idToIndex[e.To]
		if !ok {
			return nil, fmt.Errorf("edge %d: unknown to-id %d", i, e.To)
		}
		if err := g.AddEdge(graph.Edge{From: fromIdx, To: toIdx, Directed: e.Directed, Label: e.Label}); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}

// ResolveConfig looks up the scenario's named preset and applies any
// scenario-level overrides (skip_validation).
func (sc *Scenario) ResolveConfig() (layout.Config, error) {
	cfg, err := layout.Get(sc.Preset)
	if err != nil {
		return layout.Config{}, fmt.Errorf("resolving preset: %w", err)
	}
	if sc.SkipValidation {
		cfg.SkipValidation = true
	}
	return cfg, nil
}
