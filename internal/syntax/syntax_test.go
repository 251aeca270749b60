package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSig() (*Signature, FuncSym, FuncSym, FuncSym, RelSym) {
	sig := NewSignature()
	c := sig.Func("c", 0)
	f := sig.Func("f", 1)
	g := sig.Func("g", 2)
	r := sig.Rel("R", 1)
	return sig, c, f, g, r
}

func TestAppsFoldsArgumentVector(t *testing.T) {
	_, c, f, g, _ := testSig()

	tm := Apps(g, Apps(f, Var(0)), Apps(c))
	require.Equal(t, 0, tm.Pending())
	assert.Equal(t, "g(f(#0), c)", tm.String())

	sym, args, ok := TermApp(tm)
	require.True(t, ok)
	assert.Equal(t, g, sym)
	require.Len(t, args, 2)
	assert.True(t, args[0].Equal(Apps(f, Var(0))))
	assert.True(t, args[1].Equal(Apps(c)))
}

func TestAppsArityAssertion(t *testing.T) {
	_, c, _, g, _ := testSig()
	assert.Panics(t, func() { Apps(g, Apps(c)) })
	assert.Panics(t, func() { Apps(c, Var(0)) })
}

func TestTermAppRejectsVariablesAndPendingNodes(t *testing.T) {
	_, _, f, g, _ := testSig()

	_, _, ok := TermApp(Var(3))
	assert.False(t, ok)

	// g partially applied still expects one argument.
	partial := App{Fn: Func{Sym: g}, Arg: Apps(f, Var(0))}
	require.Equal(t, 1, partial.Pending())
	_, _, ok = TermApp(partial)
	assert.False(t, ok)
}

func TestDerivedConnectiveShapes(t *testing.T) {
	_, _, _, _, r := testSig()
	a := AppsRel(r, Var(0))
	b := AppsRel(r, Var(1))

	assert.True(t, Not(a).Equal(Imp{A: a, B: Falsum{}}))
	assert.True(t, And(a, b).Equal(Not(Imp{A: a, B: Not(b)})))
	assert.True(t, Or(a, b).Equal(Imp{A: Not(a), B: b}))
	assert.True(t, Ex(a).Equal(Not(All{Body: Not(a)})))
	assert.True(t, Iff(a, b).Equal(And(Imp{A: a, B: b}, Imp{A: b, B: a})))
}

func sampleTerms() []Term {
	_, c, f, g, _ := testSig()
	return []Term{
		Var(0),
		Var(3),
		Apps(c),
		Apps(f, Var(2)),
		Apps(g, Var(0), Apps(f, Var(1))),
		Apps(g, Apps(g, Var(4), Apps(c)), Var(1)),
	}
}

func sampleFormulas() []Formula {
	_, c, f, _, r := testSig()
	return []Formula{
		Falsum{},
		Eq{L: Var(0), R: Apps(f, Var(1))},
		AppsRel(r, Apps(f, Var(2))),
		Imp{A: AppsRel(r, Var(0)), B: Eq{L: Apps(c), R: Var(1)}},
		All{Body: Imp{A: AppsRel(r, Var(0)), B: AppsRel(r, Var(2))}},
		All{Body: All{Body: Eq{L: Var(1), R: Var(0)}}},
	}
}

func TestLiftZeroIsIdentity(t *testing.T) {
	for _, tm := range sampleTerms() {
		for m := 0; m < 4; m++ {
			assert.True(t, LiftTerm(tm, 0, m).Equal(tm), "lift(%s, 0, %d)", tm, m)
		}
	}
	for _, f := range sampleFormulas() {
		for m := 0; m < 4; m++ {
			assert.True(t, LiftFormula(f, 0, m).Equal(f), "lift(%s, 0, %d)", f, m)
		}
	}
}

func TestLiftCommutation(t *testing.T) {
	// lift(lift(t,n,m),n',m') = lift(lift(t,n',m'),n,m+n') when m' <= m.
	for _, tm := range sampleTerms() {
		for _, c := range []struct{ n, m, n2, m2 int }{
			{1, 2, 1, 0}, {2, 3, 1, 1}, {1, 1, 3, 0}, {2, 2, 2, 2},
		} {
			lhs := LiftTerm(LiftTerm(tm, c.n, c.m), c.n2, c.m2)
			rhs := LiftTerm(LiftTerm(tm, c.n2, c.m2), c.n, c.m+c.n2)
			assert.True(t, lhs.Equal(rhs), "term %s with %+v: %s vs %s", tm, c, lhs, rhs)
		}
	}
}

func TestLiftSubstCancellation(t *testing.T) {
	_, c, f, _, _ := testSig()
	subs := []Term{Apps(c), Apps(f, Var(0)), Var(2)}

	// lift(t,1,n)[s // n] = t for arbitrary s.
	for _, tm := range sampleTerms() {
		for _, s := range subs {
			for n := 0; n < 3; n++ {
				got := SubstTerm(LiftTerm(tm, 1, n), s, n)
				assert.True(t, got.Equal(tm), "t=%s s=%s n=%d got %s", tm, s, n, got)
			}
		}
	}

	// Binder round-trip: lift(t,1,n+1)[#0 // n] = t.
	for _, tm := range sampleTerms() {
		for n := 0; n < 3; n++ {
			got := SubstTerm(LiftTerm(tm, 1, n+1), Var(0), n)
			assert.True(t, got.Equal(tm), "t=%s n=%d got %s", tm, n, got)
		}
	}

	for _, fm := range sampleFormulas() {
		for n := 0; n < 3; n++ {
			got := SubstFormula(LiftFormula(fm, 1, n+1), Var(0), n)
			assert.True(t, got.Equal(fm), "f=%s n=%d got %s", fm, n, got)
		}
	}
}

func TestSubstComposition(t *testing.T) {
	// t[s1//n1][s2//n1+n2] = t[s2//n1+n2+1][s1[s2//n2]//n1]
	_, c, f, g, _ := testSig()
	subs := []Term{Apps(c), Apps(f, Var(0)), Apps(g, Var(1), Apps(c)), Var(0)}

	for _, tm := range sampleTerms() {
		for _, s1 := range subs {
			for _, s2 := range subs {
				for n1 := 0; n1 < 2; n1++ {
					for n2 := 0; n2 < 2; n2++ {
						lhs := SubstTerm(SubstTerm(tm, s1, n1), s2, n1+n2)
						rhs := SubstTerm(SubstTerm(tm, s2, n1+n2+1), SubstTerm(s1, s2, n2), n1)
						assert.True(t, lhs.Equal(rhs),
							"t=%s s1=%s s2=%s n1=%d n2=%d: %s vs %s", tm, s1, s2, n1, n2, lhs, rhs)
					}
				}
			}
		}
	}

	for _, fm := range sampleFormulas() {
		for _, s1 := range subs {
			for _, s2 := range subs {
				lhs := SubstFormula(SubstFormula(fm, s1, 0), s2, 1)
				rhs := SubstFormula(SubstFormula(fm, s2, 2), SubstTerm(s1, s2, 1), 0)
				assert.True(t, lhs.Equal(rhs), "f=%s s1=%s s2=%s", fm, s1, s2)
			}
		}
	}
}

func TestCountQuantifiersInvariantUnderSubst(t *testing.T) {
	_, c, f, _, _ := testSig()
	subs := []Term{Apps(c), Apps(f, Var(3)), Var(1)}
	for _, fm := range sampleFormulas() {
		want := CountQuantifiers(fm)
		for _, s := range subs {
			for n := 0; n < 3; n++ {
				assert.Equal(t, want, CountQuantifiers(SubstFormula(fm, s, n)))
			}
		}
	}
}

func TestIsSentence(t *testing.T) {
	_, c, f, _, r := testSig()

	assert.True(t, IsSentence(Eq{L: Apps(c), R: Apps(f, Apps(c))}))
	assert.True(t, IsSentence(All{Body: AppsRel(r, Var(0))}))
	assert.True(t, IsSentence(All{Body: All{Body: Eq{L: Var(1), R: Var(0)}}}))
	assert.False(t, IsSentence(AppsRel(r, Var(0))))
	assert.False(t, IsSentence(All{Body: AppsRel(r, Var(1))}))

	assert.True(t, TermClosed(Apps(f, Apps(c))))
	assert.False(t, TermClosed(Apps(f, Var(0))))
}

func TestUnliftIsInverseOfLift(t *testing.T) {
	for _, fm := range sampleFormulas() {
		lifted := LiftFormula(fm, 1, 0)
		back, ok := UnliftFormula(lifted, 0)
		require.True(t, ok, "unlift(%s)", lifted)
		assert.True(t, back.Equal(fm))
	}

	_, _, _, _, r := testSig()
	_, ok := UnliftFormula(AppsRel(r, Var(0)), 0)
	assert.False(t, ok, "formula mentioning #0 is not a lift image")
}

func TestFormulaSetOperations(t *testing.T) {
	_, c, _, _, r := testSig()
	a := AppsRel(r, Apps(c))
	b := All{Body: AppsRel(r, Var(0))}

	empty := NewFormulaSet()
	s1 := empty.Insert(a)
	s2 := s1.Insert(b)

	assert.Equal(t, 0, empty.Len(), "insert must not mutate the original")
	assert.True(t, s1.Contains(a))
	assert.False(t, s1.Contains(b))
	assert.True(t, s1.SubsetOf(s2))
	assert.False(t, s2.SubsetOf(s1))
	assert.True(t, s2.Remove(b).Equal(s1))
	assert.True(t, s1.Union(NewFormulaSet(b)).Equal(s2))

	lifted := s2.Lift(1, 0)
	back, ok := lifted.Unlift()
	require.True(t, ok)
	assert.True(t, back.Equal(s2))

	_, ok = NewFormulaSet(AppsRel(r, Var(0))).Unlift()
	assert.False(t, ok)
}
