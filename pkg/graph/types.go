package graph

// Node is an input graph vertex: a stable numeric identifier, a display
// label, and a render width in cells.
type Node struct {
	ID    int64
	Label string
	Width int
}

// Edge is a directed or undirected input graph edge, referencing node
// indices (not ids — indices are resolved once at insertion time so the
// layout core never re-resolves ids in hot loops).
type Edge struct {
	From, To int
	Directed bool
	Label    string
}
