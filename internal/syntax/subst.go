package syntax

// SubstTerm replaces the variable exactly equal to n by s lifted to depth
// n, decrements indices above n (closing the gap left by removing binder
// n), and leaves indices below n untouched.
func SubstTerm(t Term, s Term, n int) Term {
	switch x := t.(type) {
	case Var:
		switch {
		case int(x) == n:
			return LiftTerm(s, n, 0)
		case int(x) > n:
			return Var(int(x) - 1)
		default:
			return x
		}
	case Func:
		return x
	case App:
		return App{Fn: SubstTerm(x.Fn, s, n), Arg: SubstTerm(x.Arg, s, n)}
	}
	panic("unreachable")
}

// SubstFormula substitutes s for variable n, incrementing the substitution
// point when crossing a binder.
func SubstFormula(f Formula, s Term, n int) Formula {
	switch x := f.(type) {
	case Falsum:
		return x
	case Eq:
		return Eq{L: SubstTerm(x.L, s, n), R: SubstTerm(x.R, s, n)}
	case Rel:
		return x
	case AppRel:
		return AppRel{Fn: SubstFormula(x.Fn, s, n), Arg: SubstTerm(x.Arg, s, n)}
	case Imp:
		return Imp{A: SubstFormula(x.A, s, n), B: SubstFormula(x.B, s, n)}
	case All:
		return All{Body: SubstFormula(x.Body, s, n+1)}
	}
	panic("unreachable")
}
