// Package semantics gives the syntax its Tarskian reading. A Structure
// interprets function and relation symbols over a domain of elements, a
// Valuation assigns elements to de Bruijn indices, and realization maps
// terms to elements and formulas to truth values. Universal quantification
// ranges over the whole domain, so realization is decidable only for the
// finite structures this package works with.
//
// The package also replays kernel derivations against a structure, checking
// that every rule application preserves truth. This is the executable form
// of the soundness theorem: a derivation that certifies Γ ⊢ A never passes
// through a state where Γ holds and A fails.
package semantics
