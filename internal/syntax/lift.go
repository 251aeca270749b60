package syntax

// LiftTerm increases every index ≥ m by n. Indices below m name binders
// between the cut point and the term's own root and must not shift.
func LiftTerm(t Term, n, m int) Term {
	switch x := t.(type) {
	case Var:
		if int(x) >= m {
			return Var(int(x) + n)
		}
		return x
	case Func:
		return x
	case App:
		return App{Fn: LiftTerm(x.Fn, n, m), Arg: LiftTerm(x.Arg, n, m)}
	}
	panic("unreachable")
}

// LiftTerm1 is LiftTerm at cut 0, the shift used when a term moves under
// one extra binder.
func LiftTerm1(t Term, n int) Term {
	return LiftTerm(t, n, 0)
}

// LiftFormula increases every index ≥ m by n, incrementing the cut when
// crossing a binder.
func LiftFormula(f Formula, n, m int) Formula {
	switch x := f.(type) {
	case Falsum:
		return x
	case Eq:
		return Eq{L: LiftTerm(x.L, n, m), R: LiftTerm(x.R, n, m)}
	case Rel:
		return x
	case AppRel:
		return AppRel{Fn: LiftFormula(x.Fn, n, m), Arg: LiftTerm(x.Arg, n, m)}
	case Imp:
		return Imp{A: LiftFormula(x.A, n, m), B: LiftFormula(x.B, n, m)}
	case All:
		return All{Body: LiftFormula(x.Body, n, m+1)}
	}
	panic("unreachable")
}

// LiftFormula1 is LiftFormula at cut 0.
func LiftFormula1(f Formula, n int) Formula {
	return LiftFormula(f, n, 0)
}

// UnliftTerm undoes LiftTerm(t, 1, m). ok is false when index m occurs,
// i.e. when t is not in the image of the lift.
func UnliftTerm(t Term, m int) (Term, bool) {
	switch x := t.(type) {
	case Var:
		switch {
		case int(x) < m:
			return x, true
		case int(x) == m:
			return nil, false
		default:
			return Var(int(x) - 1), true
		}
	case Func:
		return x, true
	case App:
		fn, ok := UnliftTerm(x.Fn, m)
		if !ok {
			return nil, false
		}
		arg, ok := UnliftTerm(x.Arg, m)
		if !ok {
			return nil, false
		}
		return App{Fn: fn, Arg: arg}, true
	}
	panic("unreachable")
}

// UnliftFormula undoes LiftFormula(f, 1, m). ok is false when f mentions
// the variable at the cut.
func UnliftFormula(f Formula, m int) (Formula, bool) {
	switch x := f.(type) {
	case Falsum, Rel:
		return x, true
	case Eq:
		l, ok := UnliftTerm(x.L, m)
		if !ok {
			return nil, false
		}
		r, ok := UnliftTerm(x.R, m)
		if !ok {
			return nil, false
		}
		return Eq{L: l, R: r}, true
	case AppRel:
		fn, ok := UnliftFormula(x.Fn, m)
		if !ok {
			return nil, false
		}
		arg, ok := UnliftTerm(x.Arg, m)
		if !ok {
			return nil, false
		}
		return AppRel{Fn: fn, Arg: arg}, true
	case Imp:
		a, ok := UnliftFormula(x.A, m)
		if !ok {
			return nil, false
		}
		b, ok := UnliftFormula(x.B, m)
		if !ok {
			return nil, false
		}
		return Imp{A: a, B: b}, true
	case All:
		body, ok := UnliftFormula(x.Body, m+1)
		if !ok {
			return nil, false
		}
		return All{Body: body}, true
	}
	panic("unreachable")
}
