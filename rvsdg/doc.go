// Package rvsdg implements the core of an in-memory Regionalized
// Value-State Dependence Graph (RVSDG): an arena-backed graph of operation
// nodes with explicit value and state ports, construction-time structural
// hash-consing of pure nodes, and bidirectional traversal of
// producer-consumer relationships.
//
// The graph is owned exclusively by a *Context[S], parameterized over an
// embedder-supplied operation vocabulary S. All handles (Node, User,
// Origin and their typed wrappers) are cheap, copyable cursors that borrow
// from the owning context; they carry no storage of their own.
//
// This package implements only the primitive-node subgraph with a single
// implicit top-level region (RegionId 0). Nested regions, the DOT
// pretty-printer (see rvsdgdot), and the operation vocabulary itself are
// deliberately out of scope here; see SPEC_FULL.md.
package rvsdg
