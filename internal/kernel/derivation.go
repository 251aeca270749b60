package kernel

import (
	"fmt"

	"github.com/gnolang/fol/internal/syntax"
)

// Rule identifies the primitive rule at the root of a derivation.
type Rule int

const (
	RuleAxiom Rule = iota
	RuleImpI
	RuleImpE
	RuleFalsumE
	RuleAllI
	RuleAllE
	RuleRefl
	RuleSubst
)

func (r Rule) String() string {
	switch r {
	case RuleAxiom:
		return "axm"
	case RuleImpI:
		return "impI"
	case RuleImpE:
		return "impE"
	case RuleFalsumE:
		return "falsumE"
	case RuleAllI:
		return "allI"
	case RuleAllE:
		return "allE"
	case RuleRefl:
		return "ref"
	case RuleSubst:
		return "subst"
	default:
		return "?"
	}
}

// Derivation is a proof certificate for prems ⊢ concl. All fields are
// unexported; values can only be produced by the rule constructors below.
type Derivation struct {
	rule  Rule
	prems syntax.FormulaSet
	concl syntax.Formula
	subs  []*Derivation

	// Rule-specific data, kept so that derived combinators and the
	// soundness walker can replay the inference.
	term  syntax.Term    // Refl subject, AllE witness, Subst left term
	term2 syntax.Term    // Subst right term
	tmpl  syntax.Formula // ImpI/FalsumE discharged formula, Subst template
}

// Rule returns the primitive rule at the root.
func (d *Derivation) Rule() Rule { return d.rule }

// Premises returns the premise set the conclusion was derived under.
func (d *Derivation) Premises() syntax.FormulaSet { return d.prems }

// Conclusion returns the derived formula.
func (d *Derivation) Conclusion() syntax.Formula { return d.concl }

// Subderivations returns the immediate children of the root rule.
func (d *Derivation) Subderivations() []*Derivation {
	out := make([]*Derivation, len(d.subs))
	copy(out, d.subs)
	return out
}

// DerivesFrom reports whether the certificate is valid under the (possibly
// larger) premise set.
func (d *Derivation) DerivesFrom(prems syntax.FormulaSet) bool {
	return d.prems.SubsetOf(prems)
}

func (d *Derivation) String() string {
	return fmt.Sprintf("%s ⊢ %s [%s]", d.prems, d.concl, d.rule)
}

// checkSub guards against nil subderivations so that chained combinators
// fail with an error instead of a panic when an earlier step failed.
func checkSub(ds ...*Derivation) error {
	for _, d := range ds {
		if d == nil {
			return fmt.Errorf("kernel: nil derivation")
		}
	}
	return nil
}

func checkShape(f syntax.Formula) error {
	if f.Pending() != 0 {
		return fmt.Errorf("kernel: %s is not fully applied", f)
	}
	return nil
}

func checkTermShape(t syntax.Term) error {
	if t.Pending() != 0 {
		return fmt.Errorf("kernel: term %s is not fully applied", t)
	}
	return nil
}

// Axiom derives Γ ⊢ A when A ∈ Γ.
func Axiom(prems syntax.FormulaSet, a syntax.Formula) (*Derivation, error) {
	if err := checkShape(a); err != nil {
		return nil, err
	}
	if !prems.Contains(a) {
		return nil, fmt.Errorf("kernel: axiom %s is not among the premises %s", a, prems)
	}
	return &Derivation{rule: RuleAxiom, prems: prems, concl: a}, nil
}

// ImpI discharges a: from Γ ⊢ B it derives Γ∖{a} ⊢ a ⟹ B.
func ImpI(a syntax.Formula, d *Derivation) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	if err := checkShape(a); err != nil {
		return nil, err
	}
	return &Derivation{
		rule:  RuleImpI,
		prems: d.prems.Remove(a),
		concl: syntax.Imp{A: a, B: d.concl},
		subs:  []*Derivation{d},
		tmpl:  a,
	}, nil
}

// ImpE is modus ponens: from Γ₁ ⊢ A ⟹ B and Γ₂ ⊢ A it derives
// Γ₁∪Γ₂ ⊢ B.
func ImpE(dImp, dArg *Derivation) (*Derivation, error) {
	if err := checkSub(dImp, dArg); err != nil {
		return nil, err
	}
	imp, ok := dImp.concl.(syntax.Imp)
	if !ok {
		return nil, fmt.Errorf("kernel: impE on non-implication %s", dImp.concl)
	}
	if !imp.A.Equal(dArg.concl) {
		return nil, fmt.Errorf("kernel: impE antecedent %s does not match %s", imp.A, dArg.concl)
	}
	return &Derivation{
		rule:  RuleImpE,
		prems: dImp.prems.Union(dArg.prems),
		concl: imp.B,
		subs:  []*Derivation{dImp, dArg},
	}, nil
}

// FalsumE is classical proof by contradiction: from Γ ⊢ ⊥ it derives
// Γ∖{¬a} ⊢ a.
func FalsumE(a syntax.Formula, d *Derivation) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	if err := checkShape(a); err != nil {
		return nil, err
	}
	if !d.concl.Equal(syntax.Falsum{}) {
		return nil, fmt.Errorf("kernel: falsumE on non-falsum conclusion %s", d.concl)
	}
	return &Derivation{
		rule:  RuleFalsumE,
		prems: d.prems.Remove(syntax.Not(a)),
		concl: a,
		subs:  []*Derivation{d},
		tmpl:  a,
	}, nil
}

// AllI generalizes: from lift₁(Γ) ⊢ A it derives Γ ⊢ ∀A. The side
// condition is structural: every premise must be in the image of the
// lift-by-one, which rules out a free occurrence of the fresh variable.
func AllI(d *Derivation) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	prems, ok := d.prems.Unlift()
	if !ok {
		return nil, fmt.Errorf("kernel: allI premises %s mention the bound variable", d.prems)
	}
	return &Derivation{
		rule:  RuleAllI,
		prems: prems,
		concl: syntax.All{Body: d.concl},
		subs:  []*Derivation{d},
	}, nil
}

// AllE instantiates: from Γ ⊢ ∀A it derives Γ ⊢ A[t // 0].
func AllE(d *Derivation, t syntax.Term) (*Derivation, error) {
	if err := checkSub(d); err != nil {
		return nil, err
	}
	if err := checkTermShape(t); err != nil {
		return nil, err
	}
	all, ok := d.concl.(syntax.All)
	if !ok {
		return nil, fmt.Errorf("kernel: allE on non-universal %s", d.concl)
	}
	return &Derivation{
		rule:  RuleAllE,
		prems: d.prems,
		concl: syntax.SubstFormula(all.Body, t, 0),
		subs:  []*Derivation{d},
		term:  t,
	}, nil
}

// Refl derives Γ ⊢ t ≃ t for any term and any premise set.
func Refl(prems syntax.FormulaSet, t syntax.Term) (*Derivation, error) {
	if err := checkTermShape(t); err != nil {
		return nil, err
	}
	return &Derivation{
		rule:  RuleRefl,
		prems: prems,
		concl: syntax.Eq{L: t, R: t},
		term:  t,
	}, nil
}

// Subst is Leibniz substitution of equals: from Γ₁ ⊢ s ≃ t and
// Γ₂ ⊢ F[s // 0] it derives Γ₁∪Γ₂ ⊢ F[t // 0].
func Subst(tmpl syntax.Formula, dEq, dF *Derivation) (*Derivation, error) {
	if err := checkSub(dEq, dF); err != nil {
		return nil, err
	}
	if err := checkShape(tmpl); err != nil {
		return nil, err
	}
	eq, ok := dEq.concl.(syntax.Eq)
	if !ok {
		return nil, fmt.Errorf("kernel: subst needs an equality, got %s", dEq.concl)
	}
	want := syntax.SubstFormula(tmpl, eq.L, 0)
	if !dF.concl.Equal(want) {
		return nil, fmt.Errorf("kernel: subst target %s does not match template instance %s", dF.concl, want)
	}
	return &Derivation{
		rule:  RuleSubst,
		prems: dEq.prems.Union(dF.prems),
		concl: syntax.SubstFormula(tmpl, eq.R, 0),
		subs:  []*Derivation{dEq, dF},
		term:  eq.L,
		term2: eq.R,
		tmpl:  tmpl,
	}, nil
}
