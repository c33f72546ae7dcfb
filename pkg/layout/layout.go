package layout

import (
	"github.com/dshills/layoutcore/pkg/forcedirected"
	"github.com/dshills/layoutcore/pkg/graph"
	"github.com/dshills/layoutcore/pkg/ir"
	"github.com/dshills/layoutcore/pkg/sugiyama"
)

// Layout is the single entry point over both engines (§4.1). Unless
// cfg.SkipValidation is set, the graph is checked against
// cfg.Requirements before dispatch; pkg/sugiyama's reducer-contract
// checks still run regardless of SkipValidation, per §7.
func Layout(g graph.Query, cfg Config) (*ir.LayoutIR, error) {
	if !cfg.SkipValidation {
		if failures := sugiyama.Validate(g, cfg.Requirements, nil); !failures.None() {
			return nil, failures.AsError()
		}
	}

	switch cfg.Engine {
	case ForceDirectedEngine:
		return forcedirected.Run(g, cfg.ForceDirected)
	default:
		return sugiyama.Run(g, cfg.Sugiyama)
	}
}
