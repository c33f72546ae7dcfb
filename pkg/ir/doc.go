// Package ir defines the renderer-agnostic layout intermediate
// representation shared by both the Sugiyama and force-directed engines.
// The IR is a closed, versioned schema: positions, levels, and edge paths,
// with no knowledge of which algorithm produced it.
package ir
