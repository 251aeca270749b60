package semantics

import (
	"fmt"

	"github.com/gnolang/fol/internal/kernel"
)

// Entailed reports whether the sequent certified by d reads true in m under
// v: either some premise fails, or the conclusion holds.
func Entailed[E comparable](m *Structure[E], v Valuation[E], d *kernel.Derivation) (bool, error) {
	ok, err := SatisfiesSet(m, v, d.Premises())
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	return RealizeFormula(m, v, d.Conclusion())
}

// CheckSound replays a derivation against the structure, verifying that the
// certified sequent reads true at every node and under every valuation the
// quantifier rules reach from v. A kernel certificate can only fail this
// check if the structure evaluation itself errors, which is what makes the
// walk a useful test of both sides.
func CheckSound[E comparable](m *Structure[E], v Valuation[E], d *kernel.Derivation) error {
	ok, err := Entailed(m, v, d)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("semantics: sequent %s fails in the structure", d)
	}
	subs := d.Subderivations()
	if d.Rule() == kernel.RuleAllI {
		// The subderivation lives under one extra binder; check it with
		// every possible witness for the fresh variable.
		for _, e := range m.Domain {
			if err := CheckSound(m, v.Extend(e), subs[0]); err != nil {
				return err
			}
		}
		return nil
	}
	for _, sub := range subs {
		if err := CheckSound(m, v, sub); err != nil {
			return err
		}
	}
	return nil
}
