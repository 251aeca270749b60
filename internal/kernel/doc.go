// Package kernel implements the trusted natural-deduction core. A
// Derivation is an unforgeable certificate that its conclusion is derivable
// from its premise set: the only way to obtain one is through the eight
// primitive rules (Axiom, ImpI, ImpE, FalsumE, AllI, AllE, Refl, Subst).
// Every other inference in this module is a derived combinator built by
// composing those primitives, so the soundness of the whole development
// rests on this package alone.
//
// Construction returns an error when the requested shapes do not match;
// an accepted derivation is immutable and structurally shared. There is no
// notion of "failed proof" beyond the absence of a certificate.
package kernel
