// Package scoped mirrors the syntax package with a static bound on
// variable indices: every node carries the size of the scope its variables
// index into, and constructors reject out-of-range indices or mismatched
// scopes. Scope-0 terms are closed and scope-0 formulas are sentences.
//
// The only interface between the two views is Erase, which forgets the
// bound. Erase commutes with every lift and substitution operation; that
// agreement is the representation's defining correctness obligation and is
// covered by the package tests.
package scoped
