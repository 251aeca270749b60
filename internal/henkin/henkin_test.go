package henkin

import (
	"errors"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/fol/internal/kernel"
	"github.com/gnolang/fol/internal/semantics"
	"github.com/gnolang/fol/internal/syntax"
)

// fixture holds a two-element reference structure and the complete theory
// oracle read off from it: a ↦ 0, b ↦ 1, c ↦ 1, f ↦ flip, R ↦ "is zero".
type fixture struct {
	sig        *syntax.Signature
	a, b, c, f syntax.FuncSym
	r          syntax.RelSym
	oracle     Complete
}

func newFixture() fixture {
	sig := syntax.NewSignature()
	fx := fixture{
		sig: sig,
		a:   sig.Func("a", 0),
		b:   sig.Func("b", 0),
		c:   sig.Func("c", 0),
		f:   sig.Func("f", 1),
		r:   sig.Rel("R", 1),
	}
	ref := semantics.NewStructure(0, 1).
		Func(fx.a, func([]int) int { return 0 }).
		Func(fx.b, func([]int) int { return 1 }).
		Func(fx.c, func([]int) int { return 1 }).
		Func(fx.f, func(xs []int) int { return 1 - xs[0] }).
		Rel(fx.r, func(xs []int) bool { return xs[0] == 0 })

	proves := func(f syntax.Formula) bool {
		ok, err := semantics.RealizeFormula(ref, semantics.Constant(0), f)
		return err == nil && ok
	}
	fx.oracle = Complete{
		Sig:    sig,
		Proves: proves,
		Witness: func(body syntax.Formula) (syntax.FuncSym, error) {
			for _, cs := range sig.Consts() {
				if proves(syntax.Not(syntax.SubstFormula(body, syntax.Apps(cs), 0))) {
					return cs, nil
				}
			}
			return syntax.FuncSym{}, errors.New("no refuting constant")
		},
	}
	return fx
}

func TestTheoryRejectsOpenFormulas(t *testing.T) {
	fx := newFixture()

	th, err := NewTheory(syntax.AppsRel(fx.r, syntax.Apps(fx.a)))
	require.NoError(t, err)
	assert.Equal(t, 1, th.Len())

	err = th.Add(syntax.AppsRel(fx.r, syntax.Var(0)))
	assert.Error(t, err)

	err = th.Add(syntax.All{Body: syntax.AppsRel(fx.r, syntax.Var(0))})
	assert.NoError(t, err, "the quantifier closes the variable")
}

func TestTheoryRefutedBy(t *testing.T) {
	fx := newFixture()
	ra := syntax.AppsRel(fx.r, syntax.Apps(fx.a))

	th, err := NewTheory(ra, syntax.Not(ra))
	require.NoError(t, err)

	axN, err := kernel.Axiom(th.Premises(), syntax.Not(ra))
	require.NoError(t, err)
	axA, err := kernel.Axiom(th.Premises(), ra)
	require.NoError(t, err)
	bot, err := kernel.NotE(axN, axA)
	require.NoError(t, err)
	assert.True(t, th.RefutedBy(bot))

	// A refutation needing extra premises does not count.
	other, err := NewTheory(ra)
	require.NoError(t, err)
	assert.False(t, other.RefutedBy(bot))
	assert.False(t, other.RefutedBy(axA), "conclusion is not falsum")
}

func TestTermModelQuotient(t *testing.T) {
	fx := newFixture()

	m, err := NewTermModel(fx.oracle)
	require.NoError(t, err)

	if diff := pretty.Diff(2, len(m.Domain())); len(diff) > 0 {
		t.Fatalf("carrier size: %v", diff)
	}

	clB, err := m.ClassOf(syntax.Apps(fx.b))
	require.NoError(t, err)
	clC, err := m.ClassOf(syntax.Apps(fx.c))
	require.NoError(t, err)
	assert.Equal(t, clB, clC, "b ≃ c is provable, classes coincide")

	clA, err := m.ClassOf(syntax.Apps(fx.a))
	require.NoError(t, err)
	assert.NotEqual(t, clA, clB)

	clFA, err := m.ClassOf(syntax.Apps(fx.f, syntax.Apps(fx.a)))
	require.NoError(t, err)
	assert.Equal(t, clB, clFA, "f(a) lands in the class of b")

	_, err = m.ClassOf(syntax.Var(0))
	assert.Error(t, err, "open terms have no class")
}

func TestTruthLemma(t *testing.T) {
	fx := newFixture()
	m, err := NewTermModel(fx.oracle)
	require.NoError(t, err)

	ta := syntax.Apps(fx.a)
	tb := syntax.Apps(fx.b)
	open := syntax.AppsRel(fx.r, syntax.Var(0))

	sentences := []syntax.Formula{
		syntax.AppsRel(fx.r, ta),
		syntax.Not(syntax.AppsRel(fx.r, tb)),
		syntax.Eq{L: syntax.Apps(fx.f, ta), R: tb},
		syntax.All{Body: syntax.Eq{
			L: syntax.Apps(fx.f, syntax.Apps(fx.f, syntax.Var(0))),
			R: syntax.Var(0),
		}},
		syntax.All{Body: open}, // false; exercises the witness check
		syntax.Ex(open),
		syntax.All{Body: syntax.All{Body: syntax.Imp{
			A: syntax.Eq{L: syntax.Var(1), R: syntax.Var(0)},
			B: syntax.Eq{L: syntax.Var(0), R: syntax.Var(1)},
		}}},
	}
	for _, s := range sentences {
		assert.NoError(t, m.CheckTruth(s), "sentence %s", s)
	}

	assert.Error(t, m.CheckTruth(open), "open formulas are rejected")
}

func TestTruthLemmaReportsBrokenWitness(t *testing.T) {
	fx := newFixture()
	broken := fx.oracle
	broken.Witness = func(syntax.Formula) (syntax.FuncSym, error) {
		return syntax.FuncSym{}, errors.New("refused")
	}
	m, err := NewTermModel(broken)
	require.NoError(t, err)

	falseAll := syntax.All{Body: syntax.AppsRel(fx.r, syntax.Var(0))}
	assert.Error(t, m.CheckTruth(falseAll))
}

func TestCompleteness(t *testing.T) {
	fx := newFixture()

	good := []syntax.Formula{
		syntax.AppsRel(fx.r, syntax.Apps(fx.a)),
		syntax.Ex(syntax.AppsRel(fx.r, syntax.Var(0))),
		syntax.Eq{L: syntax.Apps(fx.b), R: syntax.Apps(fx.c)},
	}
	for _, s := range good {
		assert.NoError(t, Completeness(fx.oracle, s), "sentence %s", s)
	}

	// An oracle that is silent on a satisfied sentence is incomplete. The
	// denied sentence is quantified, so the atom tables are unaffected and
	// the term model still satisfies it.
	involutive := syntax.All{Body: syntax.Eq{
		L: syntax.Apps(fx.f, syntax.Apps(fx.f, syntax.Var(0))),
		R: syntax.Var(0),
	}}
	silent := fx.oracle
	base := fx.oracle.Proves
	silent.Proves = func(f syntax.Formula) bool {
		if f.Equal(involutive) {
			return false
		}
		return base(f)
	}
	assert.Error(t, Completeness(silent, involutive))
}

func TestTermModelRequiresConstantsAndConsistency(t *testing.T) {
	fx := newFixture()

	empty := Complete{
		Sig:    syntax.NewSignature(),
		Proves: func(syntax.Formula) bool { return false },
	}
	_, err := NewTermModel(empty)
	assert.Error(t, err)

	inconsistent := fx.oracle
	inconsistent.Proves = func(syntax.Formula) bool { return true }
	_, err = NewTermModel(inconsistent)
	assert.Error(t, err)
}
