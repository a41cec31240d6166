package steiner

import "time"

// Stats are the diagnostics of the most recent Call. They are reset at the
// start of every call.
type Stats struct {
	// Generated counts full components or triples kept by generation
	// (onDemand: triples contracted).
	Generated int64
	// Contracted counts contractions applied to the working tree.
	Contracted int64
	// LookUps counts candidate re-evaluations against the save structure.
	LookUps int64

	// CoreTime covers the distance oracle, generation and contraction.
	CoreTime time.Duration
	// FallbackTime covers the final reconstruction.
	FallbackTime time.Duration
	// Elapsed is the wall-clock time of the whole call.
	Elapsed time.Duration
}

// triple is a candidate center connecting three terminals.
type triple struct {
	s0, s1, s2 int // terminal indices
	center     int
	cost       int64 // summed center distances
	gain       int64 // save gain at generation time
}
