package syntax

import (
	"sort"
	"strings"
)

// FormulaSet is a persistent set of fully applied formulas, keyed by the
// injective debug notation. All operations are copy-on-write; a set handed
// to a derivation is never mutated afterwards.
type FormulaSet struct {
	m map[string]Formula
}

// NewFormulaSet builds a set from the given formulas.
func NewFormulaSet(fs ...Formula) FormulaSet {
	s := FormulaSet{m: make(map[string]Formula, len(fs))}
	for _, f := range fs {
		s.m[f.String()] = f
	}
	return s
}

// Len returns the number of formulas in the set.
func (s FormulaSet) Len() int {
	return len(s.m)
}

// Contains reports membership.
func (s FormulaSet) Contains(f Formula) bool {
	_, ok := s.m[f.String()]
	return ok
}

// Insert returns a new set extended with f.
func (s FormulaSet) Insert(f Formula) FormulaSet {
	if s.Contains(f) {
		return s
	}
	out := s.clone(1)
	out.m[f.String()] = f
	return out
}

// Remove returns a new set without f.
func (s FormulaSet) Remove(f Formula) FormulaSet {
	if !s.Contains(f) {
		return s
	}
	out := s.clone(0)
	delete(out.m, f.String())
	return out
}

// Union returns the union of both sets.
func (s FormulaSet) Union(o FormulaSet) FormulaSet {
	if o.Len() == 0 {
		return s
	}
	if s.Len() == 0 {
		return o
	}
	out := s.clone(o.Len())
	for k, f := range o.m {
		out.m[k] = f
	}
	return out
}

// SubsetOf reports whether every member of s is in o.
func (s FormulaSet) SubsetOf(o FormulaSet) bool {
	for k := range s.m {
		if _, ok := o.m[k]; !ok {
			return false
		}
	}
	return true
}

// Equal reports extensional equality.
func (s FormulaSet) Equal(o FormulaSet) bool {
	return s.Len() == o.Len() && s.SubsetOf(o)
}

// Slice returns the members in deterministic (notation) order.
func (s FormulaSet) Slice() []Formula {
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Formula, len(keys))
	for i, k := range keys {
		out[i] = s.m[k]
	}
	return out
}

// Lift maps LiftFormula over every member.
func (s FormulaSet) Lift(n, m int) FormulaSet {
	out := FormulaSet{m: make(map[string]Formula, len(s.m))}
	for _, f := range s.m {
		g := LiftFormula(f, n, m)
		out.m[g.String()] = g
	}
	return out
}

// Subst maps SubstFormula over every member.
func (s FormulaSet) Subst(t Term, n int) FormulaSet {
	out := FormulaSet{m: make(map[string]Formula, len(s.m))}
	for _, f := range s.m {
		g := SubstFormula(f, t, n)
		out.m[g.String()] = g
	}
	return out
}

// Unlift undoes Lift(1, 0) on every member. ok is false if some member
// mentions variable #0 and hence is not in the image of the lift; this is
// exactly the structural side condition of ∀-introduction.
func (s FormulaSet) Unlift() (FormulaSet, bool) {
	out := FormulaSet{m: make(map[string]Formula, len(s.m))}
	for _, f := range s.m {
		g, ok := UnliftFormula(f, 0)
		if !ok {
			return FormulaSet{}, false
		}
		out.m[g.String()] = g
	}
	return out, true
}

func (s FormulaSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, f := range s.Slice() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.String())
	}
	b.WriteString("}")
	return b.String()
}

func (s FormulaSet) clone(extra int) FormulaSet {
	out := FormulaSet{m: make(map[string]Formula, len(s.m)+extra)}
	for k, f := range s.m {
		out.m[k] = f
	}
	return out
}
