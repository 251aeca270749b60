package henkin

import (
	"fmt"

	"github.com/gnolang/fol/internal/kernel"
	"github.com/gnolang/fol/internal/scoped"
	"github.com/gnolang/fol/internal/syntax"
)

// Theory is a set of sentences. Membership is extensional; adding rejects
// anything with a free variable.
type Theory struct {
	sents syntax.FormulaSet
}

// NewTheory builds a theory from the given sentences.
func NewTheory(sentences ...syntax.Formula) (*Theory, error) {
	t := &Theory{sents: syntax.NewFormulaSet()}
	for _, f := range sentences {
		if err := t.Add(f); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Add inserts a sentence. The scope check goes through the bound
// representation, which rejects open formulas by construction.
func (t *Theory) Add(f syntax.Formula) error {
	if _, err := scoped.BindFormula(f, 0); err != nil {
		return fmt.Errorf("henkin: %s is not a sentence: %w", f, err)
	}
	t.sents = t.sents.Insert(f)
	return nil
}

// Contains reports membership.
func (t *Theory) Contains(f syntax.Formula) bool {
	return t.sents.Contains(f)
}

// Len returns the number of sentences.
func (t *Theory) Len() int {
	return t.sents.Len()
}

// Premises returns the sentences as a kernel premise set.
func (t *Theory) Premises() syntax.FormulaSet {
	return t.sents
}

// RefutedBy reports whether d certifies ⊥ from the theory alone. A theory
// is consistent exactly when no such derivation exists.
func (t *Theory) RefutedBy(d *kernel.Derivation) bool {
	return d != nil &&
		d.Conclusion().Equal(syntax.Falsum{}) &&
		d.DerivesFrom(t.sents)
}
