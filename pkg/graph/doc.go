// Package graph provides the minimal concrete graph container the layout
// core is exercised against: an ordered sequence of nodes and directed (or
// undirected) edges between them, with the adjacency queries the layout
// algorithms consume.
//
// The container's internal representation is deliberately simple — it
// exists to give the layout core something concrete to run against, not to
// prescribe how callers must store their own graphs. Any type satisfying
// the Query interface can be laid out; Graph is one implementation of it.
package graph
