package kernel

import (
	"fmt"

	"github.com/gnolang/fol/internal/syntax"
)

// steps threads the error of a chain of rule applications, so that derived
// combinators read like the proof trees they build.
type steps struct {
	err error
}

func (s *steps) do(d *Derivation, err error) *Derivation {
	if s.err == nil {
		s.err = err
	}
	if s.err != nil {
		return nil
	}
	return d
}

func (s *steps) finish(name string, d *Derivation) (*Derivation, error) {
	if s.err != nil {
		return nil, fmt.Errorf("kernel: %s: %w", name, s.err)
	}
	return d, nil
}

// Weaken re-derives d under the superset delta. Each missing premise p is
// introduced by discharging it vacuously and cutting it back in against an
// axiom: ImpE(ImpI(p, d), Axiom({p}, p)).
func Weaken(d *Derivation, delta syntax.FormulaSet) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	if !d.prems.SubsetOf(delta) {
		return nil, fmt.Errorf("kernel: weaken: %s is not a superset of %s", delta, d.prems)
	}
	var st steps
	cur := d
	for _, p := range delta.Slice() {
		if cur == nil || cur.prems.Contains(p) {
			continue
		}
		imp := st.do(ImpI(p, cur))
		ax := st.do(Axiom(syntax.NewFormulaSet(p), p))
		cur = st.do(ImpE(imp, ax))
	}
	return st.finish("weaken", cur)
}

// Deduction moves an implication antecedent back into the premises: from
// Γ ⊢ A ⟹ B it derives Γ∪{A} ⊢ B.
func Deduction(d *Derivation) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	imp, ok := d.concl.(syntax.Imp)
	if !ok {
		return nil, fmt.Errorf("kernel: deduction on non-implication %s", d.concl)
	}
	var st steps
	ax := st.do(Axiom(syntax.NewFormulaSet(imp.A), imp.A))
	res := st.do(ImpE(d, ax))
	return st.finish("deduction", res)
}

// ExFalso derives any a from Γ ⊢ ⊥, keeping the premise set.
func ExFalso(a syntax.Formula, d *Derivation) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	if !d.concl.Equal(syntax.Falsum{}) {
		return nil, fmt.Errorf("kernel: exfalso on non-falsum conclusion %s", d.concl)
	}
	var st steps
	w := st.do(Weaken(d, d.prems.Insert(syntax.Not(a))))
	res := st.do(FalsumE(a, w))
	res = st.do(Weaken(res, d.prems))
	return st.finish("exfalso", res)
}

// NotI discharges a into a negation: from Γ ⊢ ⊥ with a among the premises
// it derives Γ∖{a} ⊢ ¬a.
func NotI(a syntax.Formula, d *Derivation) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	if !d.concl.Equal(syntax.Falsum{}) {
		return nil, fmt.Errorf("kernel: notI on non-falsum conclusion %s", d.concl)
	}
	return ImpI(a, d)
}

// NotE derives ⊥ from a formula and its negation. This is the
// not-and-self principle behind the consistency predicate.
func NotE(dNot, dA *Derivation) (*Derivation, error) {
	var st steps
	res := st.do(ImpE(dNot, dA))
	if st.err == nil && !res.concl.Equal(syntax.Falsum{}) {
		return nil, fmt.Errorf("kernel: notE: %s is not a negation of %s", dNot.concl, dA.concl)
	}
	return st.finish("notE", res)
}

// AndI derives Γ₁∪Γ₂ ⊢ A ∧ B from derivations of both halves.
func AndI(dA, dB *Derivation) (*Derivation, error) {
	if err := checkSub(dA, dB); err != nil {
		return nil, err
	}
	gamma := dA.prems.Union(dB.prems)
	h := syntax.Imp{A: dA.concl, B: syntax.Not(dB.concl)}
	gh := gamma.Insert(h)

	var st steps
	axH := st.do(Axiom(gh, h))
	wA := st.do(Weaken(dA, gh))
	nb := st.do(ImpE(axH, wA))
	wB := st.do(Weaken(dB, gh))
	bot := st.do(ImpE(nb, wB))
	res := st.do(ImpI(h, bot))
	res = st.do(Weaken(res, gamma))
	return st.finish("andI", res)
}

// AndE1 extracts the left conjunct by contradiction.
func AndE1(d *Derivation) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	a, b, ok := splitAnd(d.concl)
	if !ok {
		return nil, fmt.Errorf("kernel: andE1 on non-conjunction %s", d.concl)
	}
	gamma := d.prems
	gn := gamma.Insert(syntax.Not(a))
	inner := gn.Insert(a)

	var st steps
	axNa := st.do(Axiom(inner, syntax.Not(a)))
	axA := st.do(Axiom(inner, a))
	bot := st.do(ImpE(axNa, axA))
	nb := st.do(ExFalso(syntax.Not(b), bot))
	impANb := st.do(ImpI(a, nb))
	wd := st.do(Weaken(d, gn))
	bot2 := st.do(ImpE(wd, impANb))
	res := st.do(FalsumE(a, bot2))
	res = st.do(Weaken(res, gamma))
	return st.finish("andE1", res)
}

// AndE2 extracts the right conjunct by contradiction.
func AndE2(d *Derivation) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	a, b, ok := splitAnd(d.concl)
	if !ok {
		return nil, fmt.Errorf("kernel: andE2 on non-conjunction %s", d.concl)
	}
	gamma := d.prems
	gn := gamma.Insert(syntax.Not(b))
	inner := gn.Insert(a)

	var st steps
	axNb := st.do(Axiom(inner, syntax.Not(b)))
	impANb := st.do(ImpI(a, axNb))
	wd := st.do(Weaken(d, gn))
	bot := st.do(ImpE(wd, impANb))
	res := st.do(FalsumE(b, bot))
	res = st.do(Weaken(res, gamma))
	return st.finish("andE2", res)
}

// OrI1 derives A ∨ b from A.
func OrI1(d *Derivation, b syntax.Formula) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	gamma := d.prems
	na := syntax.Not(d.concl)
	inner := gamma.Insert(na)

	var st steps
	axN := st.do(Axiom(inner, na))
	w := st.do(Weaken(d, inner))
	bot := st.do(ImpE(axN, w))
	eb := st.do(ExFalso(b, bot))
	res := st.do(ImpI(na, eb))
	res = st.do(Weaken(res, gamma))
	return st.finish("orI1", res)
}

// OrI2 derives a ∨ B from B.
func OrI2(a syntax.Formula, d *Derivation) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	gamma := d.prems
	na := syntax.Not(a)

	var st steps
	w := st.do(Weaken(d, gamma.Insert(na)))
	res := st.do(ImpI(na, w))
	res = st.do(Weaken(res, gamma))
	return st.finish("orI2", res)
}

// OrE eliminates a disjunction: from Γ ⊢ A ∨ B and derivations of c under
// each disjunct it derives c.
func OrE(dOr, dA, dB *Derivation) (*Derivation, error) {
	if err := checkSub(dOr, dA, dB); err != nil {
		return nil, err
	}
	a, b, ok := splitOr(dOr.concl)
	if !ok {
		return nil, fmt.Errorf("kernel: orE on non-disjunction %s", dOr.concl)
	}
	c := dA.concl
	if !c.Equal(dB.concl) {
		return nil, fmt.Errorf("kernel: orE branches conclude %s vs %s", dA.concl, dB.concl)
	}
	gamma := dOr.prems.Union(dA.prems.Remove(a)).Union(dB.prems.Remove(b))
	gn := gamma.Insert(syntax.Not(c))
	innerA := gn.Insert(a)

	var st steps
	wA := st.do(Weaken(dA, innerA))
	axNc := st.do(Axiom(innerA, syntax.Not(c)))
	botA := st.do(ImpE(axNc, wA))
	na := st.do(ImpI(a, botA))
	wOr := st.do(Weaken(dOr, gn))
	db := st.do(ImpE(wOr, na))
	wB := st.do(Weaken(dB, gn.Insert(b)))
	impBC := st.do(ImpI(b, wB))
	cD := st.do(ImpE(impBC, db))
	axNc2 := st.do(Axiom(gn, syntax.Not(c)))
	bot := st.do(ImpE(axNc2, cD))
	res := st.do(FalsumE(c, bot))
	res = st.do(Weaken(res, gamma))
	return st.finish("orE", res)
}

// IffI combines Γ₁ ⊢ A ⟹ B and Γ₂ ⊢ B ⟹ A into A ⇔ B.
func IffI(dAB, dBA *Derivation) (*Derivation, error) {
	if err := checkSub(dAB, dBA); err != nil {
		return nil, err
	}
	ab, ok := dAB.concl.(syntax.Imp)
	if !ok {
		return nil, fmt.Errorf("kernel: iffI on non-implication %s", dAB.concl)
	}
	ba, ok := dBA.concl.(syntax.Imp)
	if !ok {
		return nil, fmt.Errorf("kernel: iffI on non-implication %s", dBA.concl)
	}
	if !ab.A.Equal(ba.B) || !ab.B.Equal(ba.A) {
		return nil, fmt.Errorf("kernel: iffI directions %s and %s do not match", dAB.concl, dBA.concl)
	}
	var st steps
	res := st.do(AndI(dAB, dBA))
	return st.finish("iffI", res)
}

// IffE1 extracts the forward implication of a biconditional.
func IffE1(d *Derivation) (*Derivation, error) {
	var st steps
	res := st.do(AndE1(d))
	return st.finish("iffE1", res)
}

// IffE2 extracts the backward implication of a biconditional.
func IffE2(d *Derivation) (*Derivation, error) {
	var st steps
	res := st.do(AndE2(d))
	return st.finish("iffE2", res)
}

// splitAnd recognizes the derived shape A ∧ B = ¬(A ⟹ ¬B).
func splitAnd(f syntax.Formula) (a, b syntax.Formula, ok bool) {
	outer, okO := f.(syntax.Imp)
	if !okO || !outer.B.Equal(syntax.Falsum{}) {
		return nil, nil, false
	}
	inner, okI := outer.A.(syntax.Imp)
	if !okI {
		return nil, nil, false
	}
	nb, okN := inner.B.(syntax.Imp)
	if !okN || !nb.B.Equal(syntax.Falsum{}) {
		return nil, nil, false
	}
	return inner.A, nb.A, true
}

// splitOr recognizes the derived shape A ∨ B = ¬A ⟹ B.
func splitOr(f syntax.Formula) (a, b syntax.Formula, ok bool) {
	outer, okO := f.(syntax.Imp)
	if !okO {
		return nil, nil, false
	}
	na, okN := outer.A.(syntax.Imp)
	if !okN || !na.B.Equal(syntax.Falsum{}) {
		return nil, nil, false
	}
	return na.A, outer.B, true
}

// splitEx recognizes the derived shape ∃A = ¬∀¬A.
func splitEx(f syntax.Formula) (body syntax.Formula, ok bool) {
	outer, okO := f.(syntax.Imp)
	if !okO || !outer.B.Equal(syntax.Falsum{}) {
		return nil, false
	}
	all, okA := outer.A.(syntax.All)
	if !okA {
		return nil, false
	}
	nb, okN := all.Body.(syntax.Imp)
	if !okN || !nb.B.Equal(syntax.Falsum{}) {
		return nil, false
	}
	return nb.A, true
}
