// Package layout is the single entry point over both layout engines
// (§4.1): Layout(graph, config) dispatches to pkg/sugiyama or
// pkg/forcedirected per the config's selected algorithm, after checking
// the graph against the config's Requirements unless skipped. Named
// presets (sugiyama.standard/fast/quality, fdg.standard/fast) are
// registered at init time and retrievable by name, mirroring the
// teacher's embedder registry.
package layout
