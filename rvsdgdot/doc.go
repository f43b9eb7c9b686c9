// Package rvsdgdot renders an rvsdg.Context to the Graphviz DOT language.
// It is an external collaborator in the strictest sense: it consumes only
// rvsdg's public handle API (Node, ValIn/StIn, Origin, Users) and holds no
// special access to the graph's internals.
package rvsdgdot
