package kernel

import (
	"fmt"

	"github.com/gnolang/fol/internal/syntax"
)

// ExI introduces an existential from a witness: from Γ ⊢ body[t // 0] it
// derives Γ ⊢ ∃body. The proof assumes ∀¬body, instantiates it at t, and
// refutes the instance with the witness derivation.
func ExI(body syntax.Formula, t syntax.Term, d *Derivation) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	want := syntax.SubstFormula(body, t, 0)
	if !d.concl.Equal(want) {
		return nil, fmt.Errorf("kernel: exI witness concludes %s, want %s", d.concl, want)
	}
	h := syntax.All{Body: syntax.Not(body)}
	gamma := d.prems
	inner := gamma.Insert(h)

	var st steps
	ax := st.do(Axiom(inner, h))
	inst := st.do(AllE(ax, t))
	w := st.do(Weaken(d, inner))
	bot := st.do(ImpE(inst, w))
	res := st.do(ImpI(h, bot))
	res = st.do(Weaken(res, gamma))
	return st.finish("exI", res)
}

// ExE eliminates an existential. dBody derives lift₁(c) under premises
// lift₁(Γ')∪{body}, where the fresh variable #0 stands for the witness;
// from Γ ⊢ ∃body it then derives Γ∪Γ' ⊢ c. The side conditions (c and Γ'
// must not mention the fresh variable) are checked by unlifting.
func ExE(dEx, dBody *Derivation) (*Derivation, error) {
	if err := checkSub(dEx, dBody); err != nil {
		return nil, err
	}
	body, ok := splitEx(dEx.concl)
	if !ok {
		return nil, fmt.Errorf("kernel: exE on non-existential %s", dEx.concl)
	}
	c, ok := syntax.UnliftFormula(dBody.concl, 0)
	if !ok {
		return nil, fmt.Errorf("kernel: exE conclusion %s mentions the witness variable", dBody.concl)
	}
	base, ok := dBody.prems.Remove(body).Unlift()
	if !ok {
		return nil, fmt.Errorf("kernel: exE premises %s mention the witness variable", dBody.prems)
	}
	gamma := dEx.prems.Union(base)
	gn := gamma.Insert(syntax.Not(c))
	lifted := gn.Lift(1, 0).Insert(body)

	var st steps
	w := st.do(Weaken(dBody, lifted))
	axNc := st.do(Axiom(lifted, syntax.LiftFormula1(syntax.Not(c), 1)))
	bot := st.do(ImpE(axNc, w))
	nb := st.do(ImpI(body, bot))
	all := st.do(AllI(nb))
	wEx := st.do(Weaken(dEx, gn))
	bot2 := st.do(ImpE(wEx, all))
	res := st.do(FalsumE(c, bot2))
	res = st.do(Weaken(res, gamma))
	return st.finish("exE", res)
}

// LiftDerivation rebuilds d with every premise and the conclusion shifted
// by LiftFormula(·, n, m). The rebuild recurses on the rule structure, so
// the result is again a certificate, not a trusted transformation.
func LiftDerivation(d *Derivation, n, m int) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("kernel: lift by %d at cut %d", n, m)
	}
	var st steps
	var res *Derivation
	switch d.rule {
	case RuleAxiom:
		res = st.do(Axiom(d.prems.Lift(n, m), syntax.LiftFormula(d.concl, n, m)))
	case RuleImpI:
		sub := st.do(LiftDerivation(d.subs[0], n, m))
		res = st.do(ImpI(syntax.LiftFormula(d.tmpl, n, m), sub))
	case RuleImpE:
		l := st.do(LiftDerivation(d.subs[0], n, m))
		r := st.do(LiftDerivation(d.subs[1], n, m))
		res = st.do(ImpE(l, r))
	case RuleFalsumE:
		sub := st.do(LiftDerivation(d.subs[0], n, m))
		res = st.do(FalsumE(syntax.LiftFormula(d.tmpl, n, m), sub))
	case RuleAllI:
		sub := st.do(LiftDerivation(d.subs[0], n, m+1))
		res = st.do(AllI(sub))
	case RuleAllE:
		sub := st.do(LiftDerivation(d.subs[0], n, m))
		res = st.do(AllE(sub, syntax.LiftTerm(d.term, n, m)))
	case RuleRefl:
		res = st.do(Refl(d.prems.Lift(n, m), syntax.LiftTerm(d.term, n, m)))
	case RuleSubst:
		eq := st.do(LiftDerivation(d.subs[0], n, m))
		f := st.do(LiftDerivation(d.subs[1], n, m))
		res = st.do(Subst(syntax.LiftFormula(d.tmpl, n, m+1), eq, f))
	default:
		return nil, fmt.Errorf("kernel: lift of unknown rule %s", d.rule)
	}
	return st.finish("liftDerivation", res)
}

// SubstDerivation rebuilds d with s substituted for variable n throughout.
// Substitution can identify distinct premises, so discharging rules may end
// up below the target premise set; each such node is padded back up.
func SubstDerivation(d *Derivation, s syntax.Term, n int) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	if err := checkTermShape(s); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("kernel: substitution at negative index %d", n)
	}
	var st steps
	var res *Derivation
	switch d.rule {
	case RuleAxiom:
		res = st.do(Axiom(d.prems.Subst(s, n), syntax.SubstFormula(d.concl, s, n)))
	case RuleImpI:
		sub := st.do(SubstDerivation(d.subs[0], s, n))
		res = st.do(ImpI(syntax.SubstFormula(d.tmpl, s, n), sub))
	case RuleImpE:
		l := st.do(SubstDerivation(d.subs[0], s, n))
		r := st.do(SubstDerivation(d.subs[1], s, n))
		res = st.do(ImpE(l, r))
	case RuleFalsumE:
		sub := st.do(SubstDerivation(d.subs[0], s, n))
		res = st.do(FalsumE(syntax.SubstFormula(d.tmpl, s, n), sub))
	case RuleAllI:
		sub := st.do(SubstDerivation(d.subs[0], s, n+1))
		res = st.do(AllI(sub))
	case RuleAllE:
		sub := st.do(SubstDerivation(d.subs[0], s, n))
		res = st.do(AllE(sub, syntax.SubstTerm(d.term, s, n)))
	case RuleRefl:
		res = st.do(Refl(d.prems.Subst(s, n), syntax.SubstTerm(d.term, s, n)))
	case RuleSubst:
		eq := st.do(SubstDerivation(d.subs[0], s, n))
		f := st.do(SubstDerivation(d.subs[1], s, n))
		res = st.do(Subst(syntax.SubstFormula(d.tmpl, s, n+1), eq, f))
	default:
		return nil, fmt.Errorf("kernel: substitution into unknown rule %s", d.rule)
	}
	// Identified premises can leave the rebuilt node below the image of the
	// original premise set; pad back up to it.
	res = st.do(Weaken(res, d.prems.Subst(s, n)))
	return st.finish("substDerivation", res)
}
