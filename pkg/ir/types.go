package ir

import (
	"fmt"
)

// SchemaVersion is the JSON projection version of the IR (§6). Adding a
// new EdgePath variant is a breaking change and must bump this.
const SchemaVersion = "1.1"

// DummyIDBase is the first id reserved for synthetic dummy nodes. Caller
// graphs are expected to use ids below this range; the layout core never
// validates that, but documents the contract here.
const DummyIDBase = int64(1) << 31

// NodeKind classifies a LayoutNode's origin.
type NodeKind string

const (
	// KindExplicit is a node that corresponds one-to-one to a caller-supplied
	// input node.
	KindExplicit NodeKind = "explicit"
	// KindImplicit is reserved for nodes synthesized from input-graph
	// structure other than dummies (no producer in this implementation).
	KindImplicit NodeKind = "implicit"
	// KindDummy is a virtual node inserted to carry a long edge through
	// intermediate levels.
	KindDummy NodeKind = "dummy"
)

// LayoutNode is one positioned node in the IR.
type LayoutNode struct {
	ID            int64    `json:"id"`
	Label         string   `json:"label,omitempty"`
	X             int      `json:"x"`
	Y             int      `json:"y"`
	Width         int      `json:"width"`
	CenterX       int      `json:"center_x"`
	Level         int      `json:"level"`
	LevelPosition int      `json:"level_position"`
	Kind          NodeKind `json:"kind"`
	// EdgeIndex identifies the long edge this dummy carries. Nil for
	// explicit/implicit nodes.
	EdgeIndex *int `json:"edge_index,omitempty"`
}

// IsDummy reports whether this node was synthesized for edge routing.
func (n LayoutNode) IsDummy() bool {
	return n.Kind == KindDummy
}

// Waypoint is an (x,y) pair serialized as a two-element JSON array,
// matching the wire schema's `[x,y]` waypoint encoding.
type Waypoint struct {
	X int
	Y int
}

// MarshalJSON emits the waypoint as `[x,y]`.
func (w Waypoint) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(nil, "[%d,%d]", w.X, w.Y), nil
}

// UnmarshalJSON parses a `[x,y]` waypoint.
func (w *Waypoint) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := unmarshalPair(data, &pair); err != nil {
		return fmt.Errorf("ir: waypoint: %w", err)
	}
	w.X, w.Y = pair[0], pair[1]
	return nil
}

// PathType discriminates the EdgePath closed variant set (§3). Adding a
// member is a schema-breaking change.
type PathType string

const (
	PathDirect      PathType = "direct"
	PathCorner      PathType = "corner"
	PathSideChannel PathType = "side_channel"
	PathMultiSeg    PathType = "multi_segment"
	PathSpline      PathType = "spline"
)

// EdgePath is the polymorphic edge-path representation (§3). It is a
// closed sum type over five variants; Go has no tagged-union syntax, so
// the variant-specific fields are flattened and gated by Type. Callers
// must switch exhaustively on Type rather than inspect fields directly.
type EdgePath struct {
	Type PathType `json:"type"`

	// corner
	HorizontalY int `json:"horizontal_y,omitempty"`

	// side_channel
	ChannelX int `json:"channel_x,omitempty"`
	StartY   int `json:"start_y,omitempty"`
	EndY     int `json:"end_y,omitempty"`

	// multi_segment
	Waypoints []Waypoint `json:"waypoints,omitempty"`

	// spline
	CP1X int `json:"cp1_x,omitempty"`
	CP1Y int `json:"cp1_y,omitempty"`
	CP2X int `json:"cp2_x,omitempty"`
	CP2Y int `json:"cp2_y,omitempty"`
}

// DirectPath constructs a {type:"direct"} path.
func DirectPath() EdgePath {
	return EdgePath{Type: PathDirect}
}

// CornerPath constructs a {type:"corner"} path bending at horizontalY.
func CornerPath(horizontalY int) EdgePath {
	return EdgePath{Type: PathCorner, HorizontalY: horizontalY}
}

// SideChannelPath constructs a {type:"side_channel"} path.
func SideChannelPath(channelX, startY, endY int) EdgePath {
	return EdgePath{Type: PathSideChannel, ChannelX: channelX, StartY: startY, EndY: endY}
}

// MultiSegmentPath constructs a {type:"multi_segment"} path through waypoints.
func MultiSegmentPath(waypoints []Waypoint) EdgePath {
	return EdgePath{Type: PathMultiSeg, Waypoints: waypoints}
}

// SplinePath constructs a {type:"spline"} path with two control points.
func SplinePath(cp1, cp2 Waypoint) EdgePath {
	return EdgePath{Type: PathSpline, CP1X: cp1.X, CP1Y: cp1.Y, CP2X: cp2.X, CP2Y: cp2.Y}
}

// LayoutEdge is one routed edge in the IR.
type LayoutEdge struct {
	FromID    int64    `json:"from"`
	ToID      int64    `json:"to"`
	FromX     int      `json:"from_x"`
	FromY     int      `json:"from_y"`
	ToX       int      `json:"to_x"`
	ToY       int      `json:"to_y"`
	Path      EdgePath `json:"path"`
	EdgeIndex int      `json:"edge_index"`
	Directed  bool     `json:"directed"`
	Label     string   `json:"label,omitempty"`
	LabelX    *int     `json:"label_x,omitempty"`
	LabelY    *int     `json:"label_y,omitempty"`
}

// LayoutIR is the complete, renderer-agnostic layout result (§3). Nodes
// and edges are emitted in deterministic order: fully determined by
// input order, config, and (for FDG) seed.
type LayoutIR struct {
	Version    string       `json:"version"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	LevelCount int          `json:"level_count"`
	Nodes      []LayoutNode `json:"nodes"`
	Edges      []LayoutEdge `json:"edges"`

	// Levels and idIndex are internal bookkeeping, not part of the wire
	// schema (§6 lists only version/width/height/level_count/nodes/edges
	// at the root).
	Levels  [][]int       `json:"-"`
	idIndex map[int64]int `json:"-"`
}

// New creates an empty LayoutIR at the current schema version, sized for
// the expected node count.
func New(nodeCapacity int) *LayoutIR {
	return &LayoutIR{
		Version: SchemaVersion,
		Nodes:   make([]LayoutNode, 0, nodeCapacity),
		idIndex: make(map[int64]int, nodeCapacity),
	}
}

// AddNode appends a node and indexes it by id. Returns an error if the id
// was already present (a bug in the emitting algorithm, not caller input —
// ids are synthesized or copied from a validated input graph).
func (ir *LayoutIR) AddNode(n LayoutNode) error {
	if _, exists := ir.idIndex[n.ID]; exists {
		return fmt.Errorf("ir: duplicate node id %d", n.ID)
	}
	ir.idIndex[n.ID] = len(ir.Nodes)
	ir.Nodes = append(ir.Nodes, n)
	return nil
}

// NodeIndex returns the IR node index for an id, or ok=false if absent.
func (ir *LayoutIR) NodeIndex(id int64) (int, bool) {
	idx, ok := ir.idIndex[id]
	return idx, ok
}

// NodeByID returns the node with the given id, or ok=false if absent.
func (ir *LayoutIR) NodeByID(id int64) (LayoutNode, bool) {
	idx, ok := ir.idIndex[id]
	if !ok {
		return LayoutNode{}, false
	}
	return ir.Nodes[idx], true
}

// Validate checks the structural invariants every IR must satisfy
// regardless of producing algorithm (§8, invariants 1-2): every edge
// resolves to nodes present in the IR, and no node id repeats.
func (ir *LayoutIR) Validate() error {
	seen := make(map[int64]bool, len(ir.Nodes))
	for _, n := range ir.Nodes {
		if seen[n.ID] {
			return fmt.Errorf("ir: duplicate node id %d", n.ID)
		}
		seen[n.ID] = true
	}
	for _, e := range ir.Edges {
		if !seen[e.FromID] {
			return fmt.Errorf("ir: edge %d references unknown from_id %d", e.EdgeIndex, e.FromID)
		}
		if !seen[e.ToID] {
			return fmt.Errorf("ir: edge %d references unknown to_id %d", e.EdgeIndex, e.ToID)
		}
	}
	return nil
}
