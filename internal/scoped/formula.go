package scoped

import (
	"fmt"

	"github.com/gnolang/fol/internal/syntax"
)

// Formula is a formula with a static bound on its free variable indices.
// A Formula of scope 0 is a sentence.
type Formula interface {
	isFormula()
	Scope() int
	Pending() int
	Erase() syntax.Formula
	Equal(other Formula) bool
	String() string
}

var (
	_ Formula = Falsum{}
	_ Formula = Eq{}
	_ Formula = Rel{}
	_ Formula = AppRel{}
	_ Formula = Imp{}
	_ Formula = All{}
)

// Falsum at a given scope.
type Falsum struct {
	scope int
}

// NewFalsum builds ⊥ at the given scope.
func NewFalsum(scope int) (Falsum, error) {
	if scope < 0 {
		return Falsum{}, fmt.Errorf("scoped: negative scope %d", scope)
	}
	return Falsum{scope: scope}, nil
}

func (Falsum) isFormula() {}

func (f Falsum) Scope() int { return f.scope }

func (Falsum) Pending() int { return 0 }

func (Falsum) Erase() syntax.Formula { return syntax.Falsum{} }

func (f Falsum) Equal(other Formula) bool {
	o, ok := other.(Falsum)
	return ok && f == o
}

func (Falsum) String() string { return "⊥" }

// Eq asserts equality of two terms of the same scope.
type Eq struct {
	l, r Term
}

// NewEq checks scopes and shapes.
func NewEq(l, r Term) (Eq, error) {
	if l.Scope() != r.Scope() {
		return Eq{}, fmt.Errorf("scoped: scope mismatch %d vs %d in equality", l.Scope(), r.Scope())
	}
	if l.Pending() != 0 || r.Pending() != 0 {
		return Eq{}, fmt.Errorf("scoped: equality over pending terms")
	}
	return Eq{l: l, r: r}, nil
}

func (Eq) isFormula() {}

func (e Eq) L() Term { return e.l }

func (e Eq) R() Term { return e.r }

func (e Eq) Scope() int { return e.l.Scope() }

func (Eq) Pending() int { return 0 }

func (e Eq) Erase() syntax.Formula {
	return syntax.Eq{L: e.l.Erase(), R: e.r.Erase()}
}

func (e Eq) Equal(other Formula) bool {
	o, ok := other.(Eq)
	return ok && e.l.Equal(o.l) && e.r.Equal(o.r)
}

func (e Eq) String() string { return e.Erase().String() }

// Rel references a relation symbol at a given scope.
type Rel struct {
	sym   syntax.RelSym
	scope int
}

// NewRel builds a relation node.
func NewRel(sym syntax.RelSym, scope int) (Rel, error) {
	if scope < 0 {
		return Rel{}, fmt.Errorf("scoped: negative scope %d", scope)
	}
	return Rel{sym: sym, scope: scope}, nil
}

func (Rel) isFormula() {}

func (r Rel) Sym() syntax.RelSym { return r.sym }

func (r Rel) Scope() int { return r.scope }

func (r Rel) Pending() int { return r.sym.Arity }

func (r Rel) Erase() syntax.Formula { return syntax.Rel{Sym: r.sym} }

func (r Rel) Equal(other Formula) bool {
	o, ok := other.(Rel)
	return ok && r == o
}

func (r Rel) String() string { return r.sym.Name }

// AppRel applies a pending relation node to a term of the same scope.
type AppRel struct {
	fn  Formula
	arg Term
}

// NewAppRel checks scopes and shapes.
func NewAppRel(fn Formula, arg Term) (AppRel, error) {
	if fn.Scope() != arg.Scope() {
		return AppRel{}, fmt.Errorf("scoped: scope mismatch %d vs %d in relation application", fn.Scope(), arg.Scope())
	}
	if fn.Pending() == 0 {
		return AppRel{}, fmt.Errorf("scoped: %s is already fully applied", fn)
	}
	if arg.Pending() != 0 {
		return AppRel{}, fmt.Errorf("scoped: argument %s is not fully applied", arg)
	}
	return AppRel{fn: fn, arg: arg}, nil
}

func (AppRel) isFormula() {}

func (a AppRel) Fn() Formula { return a.fn }

func (a AppRel) Arg() Term { return a.arg }

func (a AppRel) Scope() int { return a.fn.Scope() }

func (a AppRel) Pending() int { return a.fn.Pending() - 1 }

func (a AppRel) Erase() syntax.Formula {
	return syntax.AppRel{Fn: a.fn.Erase(), Arg: a.arg.Erase()}
}

func (a AppRel) Equal(other Formula) bool {
	o, ok := other.(AppRel)
	return ok && a.fn.Equal(o.fn) && a.arg.Equal(o.arg)
}

func (a AppRel) String() string { return a.Erase().String() }

// Imp is implication between formulas of the same scope.
type Imp struct {
	a, b Formula
}

// NewImp checks scopes and shapes.
func NewImp(a, b Formula) (Imp, error) {
	if a.Scope() != b.Scope() {
		return Imp{}, fmt.Errorf("scoped: scope mismatch %d vs %d in implication", a.Scope(), b.Scope())
	}
	if a.Pending() != 0 || b.Pending() != 0 {
		return Imp{}, fmt.Errorf("scoped: implication over pending formulas")
	}
	return Imp{a: a, b: b}, nil
}

func (Imp) isFormula() {}

func (i Imp) A() Formula { return i.a }

func (i Imp) B() Formula { return i.b }

func (i Imp) Scope() int { return i.a.Scope() }

func (Imp) Pending() int { return 0 }

func (i Imp) Erase() syntax.Formula {
	return syntax.Imp{A: i.a.Erase(), B: i.b.Erase()}
}

func (i Imp) Equal(other Formula) bool {
	o, ok := other.(Imp)
	return ok && i.a.Equal(o.a) && i.b.Equal(o.b)
}

func (i Imp) String() string { return i.Erase().String() }

// All binds index 0 of its body, shrinking the scope by one.
type All struct {
	body Formula
}

// NewAll requires the body to have at least one variable slot to bind.
func NewAll(body Formula) (All, error) {
	if body.Scope() == 0 {
		return All{}, fmt.Errorf("scoped: cannot bind a variable of a scope-0 body")
	}
	if body.Pending() != 0 {
		return All{}, fmt.Errorf("scoped: quantifier over a pending formula")
	}
	return All{body: body}, nil
}

func (All) isFormula() {}

func (a All) Body() Formula { return a.body }

func (a All) Scope() int { return a.body.Scope() - 1 }

func (All) Pending() int { return 0 }

func (a All) Erase() syntax.Formula {
	return syntax.All{Body: a.body.Erase()}
}

func (a All) Equal(other Formula) bool {
	o, ok := other.(All)
	return ok && a.body.Equal(o.body)
}

func (a All) String() string { return a.Erase().String() }

// Not is the derived A ⟹ ⊥ at A's scope.
func Not(a Formula) (Formula, error) {
	bot, err := NewFalsum(a.Scope())
	if err != nil {
		return nil, err
	}
	return NewImp(a, bot)
}

// AppsRel folds an argument vector onto a relation symbol at the given
// scope.
func AppsRel(sym syntax.RelSym, scope int, args ...Term) (Formula, error) {
	if len(args) != sym.Arity {
		return nil, fmt.Errorf("scoped: %s expects %d arguments, got %d", sym.Name, sym.Arity, len(args))
	}
	var cur Formula
	r, err := NewRel(sym, scope)
	if err != nil {
		return nil, err
	}
	cur = r
	for _, a := range args {
		app, err := NewAppRel(cur, a)
		if err != nil {
			return nil, err
		}
		cur = app
	}
	return cur, nil
}

// BindFormula checks an unconstrained formula against a scope, producing
// its bounded image. It is the partial inverse of Erase.
func BindFormula(f syntax.Formula, scope int) (Formula, error) {
	switch x := f.(type) {
	case syntax.Falsum:
		return NewFalsum(scope)
	case syntax.Eq:
		l, err := BindTerm(x.L, scope)
		if err != nil {
			return nil, err
		}
		r, err := BindTerm(x.R, scope)
		if err != nil {
			return nil, err
		}
		return NewEq(l, r)
	case syntax.Rel:
		return NewRel(x.Sym, scope)
	case syntax.AppRel:
		fn, err := BindFormula(x.Fn, scope)
		if err != nil {
			return nil, err
		}
		arg, err := BindTerm(x.Arg, scope)
		if err != nil {
			return nil, err
		}
		return NewAppRel(fn, arg)
	case syntax.Imp:
		a, err := BindFormula(x.A, scope)
		if err != nil {
			return nil, err
		}
		b, err := BindFormula(x.B, scope)
		if err != nil {
			return nil, err
		}
		return NewImp(a, b)
	case syntax.All:
		body, err := BindFormula(x.Body, scope+1)
		if err != nil {
			return nil, err
		}
		return NewAll(body)
	}
	panic("unreachable")
}

// WidenFormula re-binds a formula at a larger scope.
func WidenFormula(f Formula, scope int) (Formula, error) {
	if scope < f.Scope() {
		return nil, fmt.Errorf("scoped: cannot narrow scope %d to %d", f.Scope(), scope)
	}
	return BindFormula(f.Erase(), scope)
}
