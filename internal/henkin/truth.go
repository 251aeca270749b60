package henkin

import (
	"fmt"

	"github.com/gnolang/fol/internal/scoped"
	"github.com/gnolang/fol/internal/semantics"
	"github.com/gnolang/fol/internal/syntax"
)

// Satisfies evaluates a sentence in the term model. The valuation is
// immaterial for sentences; the first class stands in.
func (m *TermModel) Satisfies(f syntax.Formula) (bool, error) {
	return semantics.RealizeFormula(m.str, semantics.Constant(m.domain[0]), f)
}

// CheckTruth verifies the truth lemma at f and at every sentence the
// recursion reaches below it: provability in the complete theory must
// coincide with satisfaction in the term model. Universals additionally
// check the Henkin witness property: an unproved ∀ must come with a
// constant refuting its body. The recursion terminates because the
// quantifier count drops at every ∀ and substitution preserves it.
func (m *TermModel) CheckTruth(f syntax.Formula) error {
	if _, err := scoped.BindFormula(f, 0); err != nil {
		return fmt.Errorf("henkin: %s is not a sentence: %w", f, err)
	}
	return m.checkTruth(f)
}

func (m *TermModel) checkTruth(f syntax.Formula) error {
	prov := m.c.Proves(f)
	sat, err := m.Satisfies(f)
	if err != nil {
		return err
	}
	if prov != sat {
		return fmt.Errorf("henkin: %s is proved=%t but satisfied=%t", f, prov, sat)
	}

	switch x := f.(type) {
	case syntax.Imp:
		if err := m.checkTruth(x.A); err != nil {
			return err
		}
		return m.checkTruth(x.B)
	case syntax.All:
		for _, class := range m.domain {
			inst := syntax.SubstFormula(x.Body, m.repTerm(class), 0)
			if err := m.checkTruth(inst); err != nil {
				return err
			}
		}
		if !prov {
			return m.checkWitness(x.Body)
		}
	}
	return nil
}

// checkWitness verifies that an unproved universal is refuted by a named
// constant, not merely by the quotient construction.
func (m *TermModel) checkWitness(body syntax.Formula) error {
	w, err := m.c.Witness(body)
	if err != nil {
		return fmt.Errorf("henkin: no witness against ∀(%s): %w", body, err)
	}
	if w.Arity != 0 || !m.c.Sig.HasFunc(w) {
		return fmt.Errorf("henkin: witness %s is not a constant of the signature", w)
	}
	refutation := syntax.Not(syntax.SubstFormula(body, syntax.Apps(w), 0))
	if !m.c.Proves(refutation) {
		return fmt.Errorf("henkin: witness %s does not refute %s", w, body)
	}
	return nil
}

// Completeness checks the completeness direction for one sentence: if the
// term model satisfies f, the theory must prove f.
func (m *TermModel) Completeness(f syntax.Formula) error {
	if _, err := scoped.BindFormula(f, 0); err != nil {
		return fmt.Errorf("henkin: %s is not a sentence: %w", f, err)
	}
	sat, err := m.Satisfies(f)
	if err != nil {
		return err
	}
	if sat && !m.c.Proves(f) {
		return fmt.Errorf("henkin: %s holds in the term model but is not proved", f)
	}
	return nil
}

// Completeness builds the term model of c and checks the completeness
// direction for f.
func Completeness(c Complete, f syntax.Formula) error {
	m, err := NewTermModel(c)
	if err != nil {
		return err
	}
	return m.Completeness(f)
}
