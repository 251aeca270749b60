// Package henkin builds the canonical term model of a complete theory and
// checks the truth lemma and completeness against it.
//
// A Theory is a set of sentences usable as kernel premises. A Complete
// value stands in for a consistent, complete, constant-rich extension of a
// theory: a provability oracle together with a Henkin witness chooser.
// Producing such an extension (the Lindenbaum construction) is the
// caller's business; this package consumes it. The term model quotients
// the signature's constants by provable equality, which is a faithful
// carrier exactly because constant-richness makes every closed term
// provably equal to a constant.
package henkin
