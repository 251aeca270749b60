package kernel

import (
	"fmt"

	"github.com/gnolang/fol/internal/syntax"
)

// Symm reverses an equality: from Γ ⊢ s ≃ t it derives Γ ⊢ t ≃ s. The
// template #0 ≃ lift₁(s) instantiated at s is s ≃ s, which Refl provides.
func Symm(d *Derivation) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	eq, ok := d.concl.(syntax.Eq)
	if !ok {
		return nil, fmt.Errorf("kernel: symm on non-equality %s", d.concl)
	}
	var st steps
	r := st.do(Refl(d.prems, eq.L))
	tmpl := syntax.Eq{L: syntax.Var(0), R: syntax.LiftTerm1(eq.L, 1)}
	res := st.do(Subst(tmpl, d, r))
	return st.finish("symm", res)
}

// Trans chains equalities: from Γ₁ ⊢ s ≃ t and Γ₂ ⊢ t ≃ u it derives
// Γ₁∪Γ₂ ⊢ s ≃ u.
func Trans(d1, d2 *Derivation) (*Derivation, error) {
	if err := checkSub(d1, d2); err != nil {
		return nil, err
	}
	e1, ok := d1.concl.(syntax.Eq)
	if !ok {
		return nil, fmt.Errorf("kernel: trans on non-equality %s", d1.concl)
	}
	e2, ok := d2.concl.(syntax.Eq)
	if !ok {
		return nil, fmt.Errorf("kernel: trans on non-equality %s", d2.concl)
	}
	if !e1.R.Equal(e2.L) {
		return nil, fmt.Errorf("kernel: trans middle terms %s and %s differ", e1.R, e2.L)
	}
	tmpl := syntax.Eq{L: syntax.LiftTerm1(e1.L, 1), R: syntax.Var(0)}
	var st steps
	res := st.do(Subst(tmpl, d2, d1))
	return st.finish("trans", res)
}

// CongFunc derives f(a₁,…,aₖ) ≃ f(b₁,…,bₖ) from equalities aᵢ ≃ bᵢ, one
// argument position at a time. Each step substitutes bᵢ into the template
// lift₁(f(as)) ≃ f(lift₁(b₁..bᵢ₋₁), #0, lift₁(aᵢ₊₁..aₖ)).
func CongFunc(f syntax.FuncSym, eqs []*Derivation) (*Derivation, error) {
	as, bs, gamma, err := splitEqs("congFunc", f.Arity, eqs)
	if err != nil {
		return nil, err
	}
	var st steps
	cur := st.do(Refl(gamma, syntax.Apps(f, as...)))
	for i := range eqs {
		tmpl := syntax.Eq{
			L: syntax.LiftTerm1(syntax.Apps(f, as...), 1),
			R: syntax.Apps(f, holeArgs(as, bs, i)...),
		}
		w := st.do(Weaken(eqs[i], gamma))
		cur = st.do(Subst(tmpl, w, cur))
	}
	return st.finish("congFunc", cur)
}

// CongRel transports a relational fact along argument equalities: from
// Γ ⊢ R(a₁,…,aₖ) and aᵢ ≃ bᵢ it derives R(b₁,…,bₖ).
func CongRel(r syntax.RelSym, eqs []*Derivation, dRel *Derivation) (*Derivation, error) {
	if err := checkSub(dRel); err != nil {
		return nil, err
	}
	sym, args, ok := syntax.FormulaRel(dRel.concl)
	if !ok || sym != r {
		return nil, fmt.Errorf("kernel: congRel on non-%s atom %s", r.Name, dRel.concl)
	}
	as, bs, gammaEq, err := splitEqs("congRel", r.Arity, eqs)
	if err != nil {
		return nil, err
	}
	for i, a := range args {
		if !a.Equal(as[i]) {
			return nil, fmt.Errorf("kernel: congRel argument %d is %s, equality rewrites %s", i, a, as[i])
		}
	}
	gamma := gammaEq.Union(dRel.prems)
	var st steps
	cur := st.do(Weaken(dRel, gamma))
	for i := range eqs {
		tmpl := syntax.AppsRel(r, holeArgs(as, bs, i)...)
		w := st.do(Weaken(eqs[i], gamma))
		cur = st.do(Subst(tmpl, w, cur))
	}
	return st.finish("congRel", cur)
}

// CongRelIff packages both directions of CongRel into a biconditional
// R(as) ⇔ R(bs) derivable from the equalities alone.
func CongRelIff(r syntax.RelSym, eqs []*Derivation) (*Derivation, error) {
	as, bs, gamma, err := splitEqs("congRelIff", r.Arity, eqs)
	if err != nil {
		return nil, err
	}
	fa := syntax.AppsRel(r, as...)
	fb := syntax.AppsRel(r, bs...)

	var st steps

	axA := st.do(Axiom(gamma.Insert(fa), fa))
	fwdBody := st.do(CongRel(r, eqs, axA))
	fwd := st.do(ImpI(fa, fwdBody))

	rev := make([]*Derivation, len(eqs))
	for i, e := range eqs {
		rev[i] = st.do(Symm(e))
	}
	axB := st.do(Axiom(gamma.Insert(fb), fb))
	bwdBody := st.do(CongRel(r, rev, axB))
	bwd := st.do(ImpI(fb, bwdBody))

	res := st.do(IffI(fwd, bwd))
	res = st.do(Weaken(res, gamma))
	return st.finish("congRelIff", res)
}

// splitEqs validates a vector of equality derivations against an arity and
// collects left sides, right sides, and the union of premises.
func splitEqs(name string, arity int, eqs []*Derivation) (as, bs []syntax.Term, gamma syntax.FormulaSet, err error) {
	if len(eqs) != arity {
		return nil, nil, syntax.FormulaSet{}, fmt.Errorf("kernel: %s got %d equalities for arity %d", name, len(eqs), arity)
	}
	as = make([]syntax.Term, len(eqs))
	bs = make([]syntax.Term, len(eqs))
	gamma = syntax.NewFormulaSet()
	for i, d := range eqs {
		if err := checkSub(d); err != nil {
			return nil, nil, syntax.FormulaSet{}, err
		}
		eq, ok := d.concl.(syntax.Eq)
		if !ok {
			return nil, nil, syntax.FormulaSet{}, fmt.Errorf("kernel: %s argument %d is not an equality: %s", name, i, d.concl)
		}
		as[i] = eq.L
		bs[i] = eq.R
		gamma = gamma.Union(d.prems)
	}
	return as, bs, gamma, nil
}

// holeArgs builds the argument vector (lift₁ b₁,…,lift₁ bᵢ₋₁, #0,
// lift₁ aᵢ₊₁,…,lift₁ aₖ) used as a one-hole congruence template.
func holeArgs(as, bs []syntax.Term, i int) []syntax.Term {
	out := make([]syntax.Term, len(as))
	for j := range as {
		switch {
		case j < i:
			out[j] = syntax.LiftTerm1(bs[j], 1)
		case j == i:
			out[j] = syntax.Var(0)
		default:
			out[j] = syntax.LiftTerm1(as[j], 1)
		}
	}
	return out
}
