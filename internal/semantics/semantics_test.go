package semantics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/fol/internal/kernel"
	"github.com/gnolang/fol/internal/syntax"
)

type testModel struct {
	c, d, f syntax.FuncSym
	r       syntax.RelSym
	m       *Structure[int]
}

// Two elements, c ↦ 0, d ↦ 1, f ↦ flip, R ↦ "is zero".
func newTestModel() testModel {
	sig := syntax.NewSignature()
	tm := testModel{
		c: sig.Func("c", 0),
		d: sig.Func("d", 0),
		f: sig.Func("f", 1),
		r: sig.Rel("R", 1),
	}
	tm.m = NewStructure(0, 1).
		Func(tm.c, func([]int) int { return 0 }).
		Func(tm.d, func([]int) int { return 1 }).
		Func(tm.f, func(xs []int) int { return 1 - xs[0] }).
		Rel(tm.r, func(xs []int) bool { return xs[0] == 0 })
	return tm
}

func TestRealizeTerm(t *testing.T) {
	tm := newTestModel()
	v := Constant[int](0)

	got, err := RealizeTerm(tm.m, v, syntax.Apps(tm.c))
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = RealizeTerm(tm.m, v, syntax.Apps(tm.f, syntax.Apps(tm.f, syntax.Apps(tm.d))))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = RealizeTerm(tm.m, Constant[int](1).Extend(0), syntax.Var(1))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	sig := syntax.NewSignature()
	ghost := sig.Func("ghost", 0)
	_, err = RealizeTerm(tm.m, v, syntax.Apps(ghost))
	assert.Error(t, err, "uninterpreted symbol")
}

func TestRealizeConnectives(t *testing.T) {
	tm := newTestModel()
	v := Constant[int](0)
	tc := syntax.Apps(tm.c)
	td := syntax.Apps(tm.d)
	rc := syntax.AppsRel(tm.r, tc)
	rd := syntax.AppsRel(tm.r, td)

	cases := []struct {
		f    syntax.Formula
		want bool
	}{
		{syntax.Falsum{}, false},
		{syntax.Eq{L: tc, R: tc}, true},
		{syntax.Eq{L: tc, R: td}, false},
		{rc, true},
		{rd, false},
		{syntax.Not(rd), true},
		{syntax.And(rc, rd), false},
		{syntax.Or(rd, rc), true},
		{syntax.Iff(rd, syntax.Falsum{}), true},
		{syntax.Imp{A: rc, B: rd}, false},
	}
	for _, c := range cases {
		got, err := RealizeFormula(tm.m, v, c.f)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "formula %s", c.f)
	}
}

func TestRealizeQuantifiers(t *testing.T) {
	tm := newTestModel()
	v := Constant[int](0)

	refl := syntax.All{Body: syntax.Eq{L: syntax.Var(0), R: syntax.Var(0)}}
	got, err := RealizeFormula(tm.m, v, refl)
	require.NoError(t, err)
	assert.True(t, got)

	allR := syntax.All{Body: syntax.AppsRel(tm.r, syntax.Var(0))}
	got, err = RealizeFormula(tm.m, v, allR)
	require.NoError(t, err)
	assert.False(t, got, "R fails at 1")

	someR := syntax.Ex(syntax.AppsRel(tm.r, syntax.Var(0)))
	got, err = RealizeFormula(tm.m, v, someR)
	require.NoError(t, err)
	assert.True(t, got)

	symm := syntax.All{Body: syntax.All{Body: syntax.Imp{
		A: syntax.Eq{L: syntax.Var(1), R: syntax.Var(0)},
		B: syntax.Eq{L: syntax.Var(0), R: syntax.Var(1)},
	}}}
	got, err = RealizeFormula(tm.m, v, symm)
	require.NoError(t, err)
	assert.True(t, got)
}

// Realization only depends on the indices a formula mentions.
func TestValuationAgreement(t *testing.T) {
	tm := newTestModel()

	open := syntax.Imp{
		A: syntax.AppsRel(tm.r, syntax.Var(0)),
		B: syntax.All{Body: syntax.Eq{L: syntax.Var(0), R: syntax.Var(2)}},
	}
	// open mentions #0 and #1; the valuations agree there and differ above.
	v1 := Valuation[int](func(i int) int {
		if i < 2 {
			return i
		}
		return 0
	})
	v2 := Valuation[int](func(i int) int {
		if i < 2 {
			return i
		}
		return 1
	})
	got1, err := RealizeFormula(tm.m, v1, open)
	require.NoError(t, err)
	got2, err := RealizeFormula(tm.m, v2, open)
	require.NoError(t, err)
	assert.Equal(t, got1, got2)
}

// Realizing f[t // 0] under v agrees with realizing f under v extended by
// the value of t.
func TestSubstitutionLemma(t *testing.T) {
	tm := newTestModel()

	open := syntax.Imp{
		A: syntax.AppsRel(tm.r, syntax.Var(0)),
		B: syntax.Eq{L: syntax.Apps(tm.f, syntax.Var(0)), R: syntax.Var(1)},
	}
	terms := []syntax.Term{
		syntax.Apps(tm.c),
		syntax.Apps(tm.d),
		syntax.Apps(tm.f, syntax.Apps(tm.c)),
		syntax.Var(0),
	}
	for _, base := range []int{0, 1} {
		v := Constant[int](base)
		for _, tt := range terms {
			x, err := RealizeTerm(tm.m, v, tt)
			require.NoError(t, err)

			direct, err := RealizeFormula(tm.m, v, syntax.SubstFormula(open, tt, 0))
			require.NoError(t, err)
			extended, err := RealizeFormula(tm.m, v.Extend(x), open)
			require.NoError(t, err)
			assert.Equal(t, extended, direct, "term %s under base %d", tt, base)
		}
	}
}

// Realizing lift₁(f) under v agrees with realizing f under the shifted
// valuation.
func TestLiftLemma(t *testing.T) {
	tm := newTestModel()
	v := Constant[int](1).Extend(0) // 0 ↦ 0, rest ↦ 1

	open := syntax.And(
		syntax.AppsRel(tm.r, syntax.Var(0)),
		syntax.All{Body: syntax.Eq{L: syntax.Var(0), R: syntax.Var(1)}},
	)
	direct, err := RealizeFormula(tm.m, v, syntax.LiftFormula1(open, 1))
	require.NoError(t, err)
	shifted, err := RealizeFormula(tm.m, v.Shift(1), open)
	require.NoError(t, err)
	assert.Equal(t, shifted, direct)
}

func TestEntailedVacuously(t *testing.T) {
	tm := newTestModel()
	v := Constant[int](0)
	rd := syntax.AppsRel(tm.r, syntax.Apps(tm.d))

	// R(d) is false, so any sequent from {R(d)} is entailed.
	ax, err := kernel.Axiom(syntax.NewFormulaSet(rd), rd)
	require.NoError(t, err)
	ok, err := Entailed(tm.m, v, ax)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckSoundOnDerivations(t *testing.T) {
	tm := newTestModel()
	v := Constant[int](0)

	// ∅ ⊢ ∀∀(#1 ≃ #0 ⟹ #0 ≃ #1), built through AllI twice so the walk
	// exercises the valuation extension.
	h := syntax.Eq{L: syntax.Var(1), R: syntax.Var(0)}
	ax, err := kernel.Axiom(syntax.NewFormulaSet(h), h)
	require.NoError(t, err)
	sym, err := kernel.Symm(ax)
	require.NoError(t, err)
	imp, err := kernel.ImpI(h, sym)
	require.NoError(t, err)
	inner, err := kernel.AllI(imp)
	require.NoError(t, err)
	d, err := kernel.AllI(inner)
	require.NoError(t, err)
	assert.NoError(t, CheckSound(tm.m, v, d))

	// Instantiation and conjunction on top of it.
	once, err := kernel.AllE(d, syntax.Apps(tm.c))
	require.NoError(t, err)
	twice, err := kernel.AllE(once, syntax.Apps(tm.f, syntax.Apps(tm.d)))
	require.NoError(t, err)
	refl, err := kernel.Refl(syntax.NewFormulaSet(), syntax.Apps(tm.c))
	require.NoError(t, err)
	both, err := kernel.AndI(twice, refl)
	require.NoError(t, err)
	assert.NoError(t, CheckSound(tm.m, v, both))
}

// Weakening preserves soundness: the padded derivation is entailed
// everywhere the original was.
func TestWeakenedDerivationStillSound(t *testing.T) {
	tm := newTestModel()
	rc := syntax.AppsRel(tm.r, syntax.Apps(tm.c))

	ax, err := kernel.Axiom(syntax.NewFormulaSet(rc), rc)
	require.NoError(t, err)
	imp, err := kernel.ImpI(rc, ax)
	require.NoError(t, err)
	delta := syntax.NewFormulaSet(rc, syntax.AppsRel(tm.r, syntax.Apps(tm.d)))
	w, err := kernel.Weaken(imp, delta)
	require.NoError(t, err)

	for _, base := range []int{0, 1} {
		assert.NoError(t, CheckSound(tm.m, Constant(base), w))
	}
}

func TestCheckSoundReportsUninterpreted(t *testing.T) {
	tm := newTestModel()
	sig := syntax.NewSignature()
	ghost := sig.Rel("Ghost", 0)

	g := syntax.AppsRel(ghost)
	ax, err := kernel.Axiom(syntax.NewFormulaSet(g), g)
	require.NoError(t, err)
	assert.Error(t, CheckSound(tm.m, Constant[int](0), ax))
}
