package semantics

import (
	"fmt"

	"github.com/gnolang/fol/internal/syntax"
)

// RealizeTerm evaluates a fully applied term to a domain element.
func RealizeTerm[E comparable](m *Structure[E], v Valuation[E], t syntax.Term) (E, error) {
	var zero E
	if t.Pending() != 0 {
		return zero, fmt.Errorf("semantics: term %s is not fully applied", t)
	}
	if x, ok := t.(syntax.Var); ok {
		return v(int(x)), nil
	}
	sym, args, ok := syntax.TermApp(t)
	if !ok {
		return zero, fmt.Errorf("semantics: cannot decompose term %s", t)
	}
	fn, err := m.funcTable(sym)
	if err != nil {
		return zero, err
	}
	vals, err := realizeArgs(m, v, args)
	if err != nil {
		return zero, err
	}
	return fn(vals), nil
}

func realizeArgs[E comparable](m *Structure[E], v Valuation[E], args []syntax.Term) ([]E, error) {
	vals := make([]E, len(args))
	for i, a := range args {
		x, err := RealizeTerm(m, v, a)
		if err != nil {
			return nil, err
		}
		vals[i] = x
	}
	return vals, nil
}

// RealizeFormula evaluates a fully applied formula to a truth value. The
// universal quantifier ranges over the structure's domain.
func RealizeFormula[E comparable](m *Structure[E], v Valuation[E], f syntax.Formula) (bool, error) {
	switch x := f.(type) {
	case syntax.Falsum:
		return false, nil
	case syntax.Eq:
		l, err := RealizeTerm(m, v, x.L)
		if err != nil {
			return false, err
		}
		r, err := RealizeTerm(m, v, x.R)
		if err != nil {
			return false, err
		}
		return l == r, nil
	case syntax.Rel, syntax.AppRel:
		sym, args, ok := syntax.FormulaRel(f)
		if !ok {
			return false, fmt.Errorf("semantics: formula %s is not fully applied", f)
		}
		rel, err := m.relTable(sym)
		if err != nil {
			return false, err
		}
		vals, err := realizeArgs(m, v, args)
		if err != nil {
			return false, err
		}
		return rel(vals), nil
	case syntax.Imp:
		a, err := RealizeFormula(m, v, x.A)
		if err != nil {
			return false, err
		}
		if !a {
			return true, nil
		}
		return RealizeFormula(m, v, x.B)
	case syntax.All:
		for _, e := range m.Domain {
			ok, err := RealizeFormula(m, v.Extend(e), x.Body)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	}
	return false, fmt.Errorf("semantics: unknown formula %s", f)
}

// SatisfiesSet reports whether every member of the set is true under v.
func SatisfiesSet[E comparable](m *Structure[E], v Valuation[E], fs syntax.FormulaSet) (bool, error) {
	for _, f := range fs.Slice() {
		ok, err := RealizeFormula(m, v, f)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
