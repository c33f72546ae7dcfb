package layouterr

import "fmt"

// Tag is the machine-code taxonomy suffix shared across error kinds.
type Tag int

// Taxonomy tags per the error code table.
const (
	TagMissing     Tag = 1
	TagMismatch    Tag = 2
	TagInvalid     Tag = 3
	TagDuplicate   Tag = 7
	TagUnsupported Tag = 9
	TagNotFound    Tag = 21
	TagExhausted   Tag = 26
)

// Kind identifies a category of layout failure, independent of its
// dotted code string (which is derived from Kind via Code()).
type Kind int

const (
	// KindEmptyGraph: layout called on a 0-node graph.
	KindEmptyGraph Kind = iota
	// KindCycleDetected: Sugiyama given a cyclic graph with no auto-break.
	KindCycleDetected
	// KindEdgeDirectionMismatch: directed-only algorithm given undirected edges.
	KindEdgeDirectionMismatch
	// KindSelfLoopInvalid: an algorithm that rejects self-loops saw one.
	KindSelfLoopInvalid
	// KindDuplicateEdge: AddEdge with an already-present (source,target) pair,
	// or AddNode with an already-present node id.
	KindDuplicateEdge
	// KindDisconnectedGraph: an algorithm requiring connectivity saw >=2 components.
	KindDisconnectedGraph
	// KindLayoutFailed: generic layout precondition violation.
	KindLayoutFailed
	// KindResourceExhausted: allocator exhausted or a resource cap was hit.
	KindResourceExhausted
	// KindReducerLostNode: post-reducer total node count decreased.
	KindReducerLostNode
	// KindReducerCountMismatch: per-level node count changed.
	KindReducerCountMismatch
	// KindReducerCorruptedLevels: level count changed.
	KindReducerCorruptedLevels
	// KindReducerDuplicateNode: the same node appeared twice after a reducer ran.
	KindReducerDuplicateNode
)

var codeTable = map[Kind]string{
	KindEmptyGraph:             "E.Graph.Node.001",
	KindCycleDetected:          "E.Graph.Dag.003",
	KindEdgeDirectionMismatch:  "E.Graph.Edge.002",
	KindSelfLoopInvalid:        "E.Graph.Edge.003",
	KindDuplicateEdge:          "E.Graph.Edge.007",
	KindDisconnectedGraph:      "E.Graph.Component.003",
	KindLayoutFailed:           "E.Layout.Algo.003",
	KindResourceExhausted:      "E.Layout.Algo.026",
	KindReducerLostNode:        "E.Layout.Reducer.001",
	KindReducerCountMismatch:   "E.Layout.Reducer.002",
	KindReducerCorruptedLevels: "E.Layout.Reducer.003",
	KindReducerDuplicateNode:   "E.Layout.Reducer.007",
}

// Error is the layout core's error value: a Kind, its dotted code, a
// human-readable message, and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Code    string
	Msg     string
	Wrapped error
}

// New constructs an Error for kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind: kind,
		Code: codeTable[kind],
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap constructs an Error for kind, wrapping an underlying cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	e := New(kind, format, args...)
	e.Wrapped = cause
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Wrapped
}
