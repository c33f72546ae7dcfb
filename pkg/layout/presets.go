package layout

import (
	"github.com/dshills/layoutcore/pkg/forcedirected"
	"github.com/dshills/layoutcore/pkg/sugiyama"
)

// Preset names (§4.1).
const (
	PresetSugiyamaStandard = "sugiyama.standard"
	PresetSugiyamaFast     = "sugiyama.fast"
	PresetSugiyamaQuality  = "sugiyama.quality"
	PresetFDGStandard      = "fdg.standard"
	PresetFDGFast          = "fdg.fast"
)

func init() {
	Register(PresetSugiyamaStandard, Config{
		Engine: SugiyamaEngine,
		Sugiyama: sugiyama.Config{
			Layering:       sugiyama.LongestPath,
			CrossingPreset: "balanced",
			Positioning:    sugiyama.Compact,
			Routing:        sugiyama.Direct,
			NodeSpacing:    2,
			LevelSpacing:   1,
		},
		Requirements: sugiyamaRequirements(),
	})

	Register(PresetSugiyamaFast, Config{
		Engine: SugiyamaEngine,
		Sugiyama: sugiyama.Config{
			Layering:       sugiyama.LongestPath,
			CrossingPreset: "fast",
			Positioning:    sugiyama.Compact,
			Routing:        sugiyama.Direct,
			NodeSpacing:    2,
			LevelSpacing:   1,
		},
		Requirements: sugiyamaRequirements(),
	})

	Register(PresetSugiyamaQuality, Config{
		Engine: SugiyamaEngine,
		Sugiyama: sugiyama.Config{
			Layering:       sugiyama.NetworkSimplexFast,
			CrossingPreset: "quality",
			Positioning:    sugiyama.BrandesKopf,
			Routing:        sugiyama.Spline,
			NodeSpacing:    3,
			LevelSpacing:   2,
		},
		Requirements: sugiyamaRequirements(),
	})

	Register(PresetFDGStandard, Config{
		Engine: ForceDirectedEngine,
		ForceDirected: func() forcedirected.Config {
			c := forcedirected.DefaultConfig()
			c.Repulsion = forcedirected.Exact
			return c
		}(),
		Requirements: sugiyama.Requirements{NonEmpty: true},
	})

	Register(PresetFDGFast, Config{
		Engine: ForceDirectedEngine,
		ForceDirected: func() forcedirected.Config {
			c := forcedirected.DefaultConfig()
			c.Repulsion = forcedirected.BarnesHut
			c.MaxIterations = 150
			return c
		}(),
		Requirements: sugiyama.Requirements{NonEmpty: true},
	})
}
