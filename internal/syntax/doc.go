// Package syntax implements the term and formula language of classical
// first-order logic over de Bruijn indices, together with the lifting and
// substitution calculus that keeps indices consistent across quantifier
// binding.
//
// Terms and formulas are arity-indexed: a Func or Rel node starts out with
// a pending-argument count equal to the declared arity of its symbol, and
// each App/AppRel layer discharges one argument. A term proper is a node
// with pending count zero. The Apps and AppsRel helpers fold a fixed-length
// argument vector onto a symbol so that callers never build the spine by
// hand, and TermApp/FormulaRel decompose it again so that downstream code
// can case on variable / applied symbol / implication / quantifier instead
// of the raw constructors.
//
// Negation, conjunction, disjunction, biconditional and existential
// quantification are derived forms, defined from Falsum, Imp and All by the
// classical abbreviations.
package syntax
