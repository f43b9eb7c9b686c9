package rvsdg

import "log/slog"

// Config carries the one real construction-time option spec.md §4.2
// defines (OptInterning) plus the ambient collaborators a Context may be
// handed: a logger for construction diagnostics and an optional metrics
// sink. See SPEC_FULL.md §3 for why this stays a plain struct rather than
// a config-file/env-binding library: there is no file format or
// environment surface for an in-memory library's construction options.
type Config struct {
	// OptInterning enables construction-time hash-consing of pure nodes.
	// DefaultConfig (and so New) sets it to true; a zero Config leaves it
	// false. When false, every construction call allocates a fresh node
	// regardless of structural equality.
	OptInterning bool

	// Logger receives Debug-level records for node construction, intern
	// hits/misses, and manual connections. Defaults to slog.Default() if
	// nil.
	Logger *slog.Logger

	// Metrics, if non-nil, is incremented as nodes are created, interned,
	// and linked. A nil Metrics is a no-op.
	Metrics *Metrics
}

// DefaultConfig returns the Config a Context built with New() uses:
// interning enabled, default logger, no metrics.
func DefaultConfig() Config {
	return Config{OptInterning: true}
}
