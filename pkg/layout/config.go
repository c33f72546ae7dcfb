package layout

import (
	"github.com/dshills/layoutcore/pkg/forcedirected"
	"github.com/dshills/layoutcore/pkg/sugiyama"
)

// Engine selects which of the two layout algorithms a Config runs (§4.1's
// tagged Algorithm record, flattened into a discriminated struct since Go
// has no sum-type syntax — the same convention pkg/ir uses for EdgePath).
type Engine int

const (
	SugiyamaEngine Engine = iota
	ForceDirectedEngine
)

// Requirements is the precondition set a preset demands of its input
// graph (§4.1); it is engine-agnostic, so it is the same shape
// pkg/sugiyama.Validate already checks against.
type Requirements = sugiyama.Requirements

// Config is the common parameter envelope plus the selected engine's own
// parameters (§4.1). Only the struct matching Engine is read.
type Config struct {
	Engine Engine

	Sugiyama      sugiyama.Config
	ForceDirected forcedirected.Config

	Requirements Requirements

	// SkipValidation suppresses the upfront Requirements check for
	// callers that pre-validated (§7); it never disables the
	// reducer-contract checks, which run unconditionally inside
	// pkg/sugiyama regardless of this flag.
	SkipValidation bool
}

func sugiyamaRequirements() sugiyama.Requirements {
	return sugiyama.Requirements{NonEmpty: true, Acyclic: true, AllDirected: true}
}
