package scoped

import "fmt"

// LiftTerm increases every index ≥ m by n, widening the scope by n. The
// cut must lie inside the scope.
func LiftTerm(t Term, n, m int) (Term, error) {
	if n < 0 {
		return nil, fmt.Errorf("scoped: negative lift %d", n)
	}
	if m < 0 || m > t.Scope() {
		return nil, fmt.Errorf("scoped: lift cut %d outside scope %d", m, t.Scope())
	}
	return liftTerm(t, n, m)
}

func liftTerm(t Term, n, m int) (Term, error) {
	scope := t.Scope() + n
	switch x := t.(type) {
	case Var:
		if x.index >= m {
			return NewVar(x.index+n, scope)
		}
		return NewVar(x.index, scope)
	case Func:
		return NewFunc(x.sym, scope)
	case App:
		fn, err := liftTerm(x.fn, n, m)
		if err != nil {
			return nil, err
		}
		arg, err := liftTerm(x.arg, n, m)
		if err != nil {
			return nil, err
		}
		return NewApp(fn, arg)
	}
	panic("unreachable")
}

// LiftFormula increases every index ≥ m by n, widening the scope by n.
func LiftFormula(f Formula, n, m int) (Formula, error) {
	if n < 0 {
		return nil, fmt.Errorf("scoped: negative lift %d", n)
	}
	if m < 0 || m > f.Scope() {
		return nil, fmt.Errorf("scoped: lift cut %d outside scope %d", m, f.Scope())
	}
	return liftFormula(f, n, m)
}

func liftFormula(f Formula, n, m int) (Formula, error) {
	scope := f.Scope() + n
	switch x := f.(type) {
	case Falsum:
		return NewFalsum(scope)
	case Eq:
		l, err := liftTerm(x.l, n, m)
		if err != nil {
			return nil, err
		}
		r, err := liftTerm(x.r, n, m)
		if err != nil {
			return nil, err
		}
		return NewEq(l, r)
	case Rel:
		return NewRel(x.sym, scope)
	case AppRel:
		fn, err := liftFormula(x.fn, n, m)
		if err != nil {
			return nil, err
		}
		arg, err := liftTerm(x.arg, n, m)
		if err != nil {
			return nil, err
		}
		return NewAppRel(fn, arg)
	case Imp:
		a, err := liftFormula(x.a, n, m)
		if err != nil {
			return nil, err
		}
		b, err := liftFormula(x.b, n, m)
		if err != nil {
			return nil, err
		}
		return NewImp(a, b)
	case All:
		body, err := liftFormula(x.body, n, m+1)
		if err != nil {
			return nil, err
		}
		return NewAll(body)
	}
	panic("unreachable")
}

// SubstTerm substitutes s for variable n of t. It is defined only when the
// bound splits as t.Scope() = n + s.Scope() + 1; the result has scope
// t.Scope() - 1.
func SubstTerm(t Term, s Term, n int) (Term, error) {
	if err := checkSplit(t.Scope(), s.Scope(), n); err != nil {
		return nil, err
	}
	return substTerm(t, s, n)
}

func substTerm(t Term, s Term, n int) (Term, error) {
	scope := t.Scope() - 1
	switch x := t.(type) {
	case Var:
		switch {
		case x.index == n:
			return LiftTerm(s, n, 0)
		case x.index > n:
			return NewVar(x.index-1, scope)
		default:
			return NewVar(x.index, scope)
		}
	case Func:
		return NewFunc(x.sym, scope)
	case App:
		fn, err := substTerm(x.fn, s, n)
		if err != nil {
			return nil, err
		}
		arg, err := substTerm(x.arg, s, n)
		if err != nil {
			return nil, err
		}
		return NewApp(fn, arg)
	}
	panic("unreachable")
}

// SubstFormula substitutes s for variable n of f, under the same bound
// split as SubstTerm.
func SubstFormula(f Formula, s Term, n int) (Formula, error) {
	if err := checkSplit(f.Scope(), s.Scope(), n); err != nil {
		return nil, err
	}
	return substFormula(f, s, n)
}

func substFormula(f Formula, s Term, n int) (Formula, error) {
	scope := f.Scope() - 1
	switch x := f.(type) {
	case Falsum:
		return NewFalsum(scope)
	case Eq:
		l, err := substTerm(x.l, s, n)
		if err != nil {
			return nil, err
		}
		r, err := substTerm(x.r, s, n)
		if err != nil {
			return nil, err
		}
		return NewEq(l, r)
	case Rel:
		return NewRel(x.sym, scope)
	case AppRel:
		fn, err := substFormula(x.fn, s, n)
		if err != nil {
			return nil, err
		}
		arg, err := substTerm(x.arg, s, n)
		if err != nil {
			return nil, err
		}
		return NewAppRel(fn, arg)
	case Imp:
		a, err := substFormula(x.a, s, n)
		if err != nil {
			return nil, err
		}
		b, err := substFormula(x.b, s, n)
		if err != nil {
			return nil, err
		}
		return NewImp(a, b)
	case All:
		body, err := substFormula(x.body, s, n+1)
		if err != nil {
			return nil, err
		}
		return NewAll(body)
	}
	panic("unreachable")
}

func checkSplit(scope, subScope, n int) error {
	if n < 0 || scope != n+subScope+1 {
		return fmt.Errorf("scoped: substitution at %d needs scope %d+%d+1, have %d", n, n, subScope, scope)
	}
	return nil
}
