// Package crfpack assembles the CRF package structure for one graph sample:
// the feature layout of the pairwise potentials, a factor graph ready for
// belief propagation, and, optionally, the grouping of per-frame nodes into
// the recurrent units that share state per box.
//
// Data flow:
//
//	Sample + Vocabulary ─▶ feature.ComputeLayout ─▶ BuildFactorGraph ─▶ FactorGraph
//	Sample ─────────────▶ grouping.Resolve ─────────────────────────▶ Groups
//
// Construction is all-or-nothing. Every failure is reported as one of
//
//	ErrConfiguration  – counts or settings that cannot form a layout or graph
//	ErrGraphIntegrity – edge to an unknown node, bad edge type, duplicate edge, label out of range
//	ErrKeyDecode      – a structured node key that is not "<frame>_<box>"
//
// wrapped with the location of the fault; the originating sentinel of the
// lower package stays reachable with errors.Is. No partially built package
// or factor graph is ever returned.
//
// A Package exclusively owns its factor graph. To work on many samples in
// parallel, build one Package per sample (BuildAll does this); a Vocabulary
// may be shared freely.
package crfpack
