package scoped

import (
	"fmt"

	"github.com/gnolang/fol/internal/syntax"
)

// Term is a term whose variable indices are bounded by a static scope.
type Term interface {
	isTerm()
	// Scope is the size of the variable scope the term lives in; every
	// index is strictly below it.
	Scope() int
	Pending() int
	Erase() syntax.Term
	Equal(other Term) bool
	String() string
}

var (
	_ Term = Var{}
	_ Term = Func{}
	_ Term = App{}
)

// Var is a de Bruijn index bounded by its scope.
type Var struct {
	index int
	scope int
}

// NewVar builds a bounded variable; the index must lie inside the scope.
func NewVar(index, scope int) (Var, error) {
	if index < 0 || index >= scope {
		return Var{}, fmt.Errorf("scoped: variable #%d outside scope %d", index, scope)
	}
	return Var{index: index, scope: scope}, nil
}

func (Var) isTerm() {}

func (v Var) Index() int { return v.index }

func (v Var) Scope() int { return v.scope }

func (Var) Pending() int { return 0 }

func (v Var) Erase() syntax.Term { return syntax.Var(v.index) }

func (v Var) Equal(other Term) bool {
	o, ok := other.(Var)
	return ok && v == o
}

func (v Var) String() string { return v.Erase().String() }

// Func references a function symbol at a given scope.
type Func struct {
	sym   syntax.FuncSym
	scope int
}

// NewFunc builds a function node; any scope is valid.
func NewFunc(sym syntax.FuncSym, scope int) (Func, error) {
	if scope < 0 {
		return Func{}, fmt.Errorf("scoped: negative scope %d", scope)
	}
	return Func{sym: sym, scope: scope}, nil
}

func (Func) isTerm() {}

func (f Func) Sym() syntax.FuncSym { return f.sym }

func (f Func) Scope() int { return f.scope }

func (f Func) Pending() int { return f.sym.Arity }

func (f Func) Erase() syntax.Term { return syntax.Func{Sym: f.sym} }

func (f Func) Equal(other Term) bool {
	o, ok := other.(Func)
	return ok && f == o
}

func (f Func) String() string { return f.sym.Name }

// App applies a pending term to a fully applied argument at the same scope.
type App struct {
	fn  Term
	arg Term
}

// NewApp checks that both halves share a scope and that the shapes match.
func NewApp(fn, arg Term) (App, error) {
	if fn.Scope() != arg.Scope() {
		return App{}, fmt.Errorf("scoped: scope mismatch %d vs %d in application", fn.Scope(), arg.Scope())
	}
	if fn.Pending() == 0 {
		return App{}, fmt.Errorf("scoped: %s is already fully applied", fn)
	}
	if arg.Pending() != 0 {
		return App{}, fmt.Errorf("scoped: argument %s is not fully applied", arg)
	}
	return App{fn: fn, arg: arg}, nil
}

func (App) isTerm() {}

func (a App) Fn() Term { return a.fn }

func (a App) Arg() Term { return a.arg }

func (a App) Scope() int { return a.fn.Scope() }

func (a App) Pending() int { return a.fn.Pending() - 1 }

func (a App) Erase() syntax.Term {
	return syntax.App{Fn: a.fn.Erase(), Arg: a.arg.Erase()}
}

func (a App) Equal(other Term) bool {
	o, ok := other.(App)
	return ok && a.fn.Equal(o.fn) && a.arg.Equal(o.arg)
}

func (a App) String() string { return a.Erase().String() }

// Apps folds an argument vector onto a function symbol at the given scope.
func Apps(sym syntax.FuncSym, scope int, args ...Term) (Term, error) {
	if len(args) != sym.Arity {
		return nil, fmt.Errorf("scoped: %s expects %d arguments, got %d", sym.Name, sym.Arity, len(args))
	}
	t, err := NewFunc(sym, scope)
	if err != nil {
		return nil, err
	}
	var cur Term = t
	for _, a := range args {
		app, err := NewApp(cur, a)
		if err != nil {
			return nil, err
		}
		cur = app
	}
	return cur, nil
}

// BindTerm checks an unconstrained term against a scope, producing its
// bounded image. It is the partial inverse of Erase.
func BindTerm(t syntax.Term, scope int) (Term, error) {
	switch x := t.(type) {
	case syntax.Var:
		return NewVar(int(x), scope)
	case syntax.Func:
		return NewFunc(x.Sym, scope)
	case syntax.App:
		fn, err := BindTerm(x.Fn, scope)
		if err != nil {
			return nil, err
		}
		arg, err := BindTerm(x.Arg, scope)
		if err != nil {
			return nil, err
		}
		return NewApp(fn, arg)
	}
	panic("unreachable")
}

// WidenTerm re-binds a term at a larger scope.
func WidenTerm(t Term, scope int) (Term, error) {
	if scope < t.Scope() {
		return nil, fmt.Errorf("scoped: cannot narrow scope %d to %d", t.Scope(), scope)
	}
	return BindTerm(t.Erase(), scope)
}
