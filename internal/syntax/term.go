package syntax

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Term represents a (possibly partially applied) term node. Pending reports
// how many further arguments the node still expects; a term proper has
// pending count zero.
type Term interface {
	isTerm()
	Pending() int
	Equal(other Term) bool
	String() string
}

var (
	_ Term = Var(0)
	_ Term = Func{}
	_ Term = App{}
)

// Var is a de Bruijn index: a natural number naming a binder by counting
// outward. Every Var is fully applied.
type Var int

func (Var) isTerm() {}

func (Var) Pending() int { return 0 }

func (v Var) Equal(other Term) bool {
	o, ok := other.(Var)
	return ok && v == o
}

func (v Var) String() string {
	return "#" + strconv.Itoa(int(v))
}

// Func is a nullary node referencing a function symbol; its pending count
// is the declared arity of the symbol.
type Func struct {
	Sym FuncSym
}

func (Func) isTerm() {}

func (f Func) Pending() int { return f.Sym.Arity }

func (f Func) Equal(other Term) bool {
	o, ok := other.(Func)
	return ok && f.Sym == o.Sym
}

func (f Func) String() string {
	return f.Sym.Name
}

// App applies a pending term to a fully applied argument, discharging one
// pending slot.
type App struct {
	Fn  Term
	Arg Term
}

func (App) isTerm() {}

func (a App) Pending() int {
	p := a.Fn.Pending() - 1
	if p < 0 {
		panic("syntax: term applied beyond its arity")
	}
	return p
}

func (a App) Equal(other Term) bool {
	o, ok := other.(App)
	return ok && a.Fn.Equal(o.Fn) && a.Arg.Equal(o.Arg)
}

func (a App) String() string {
	if a.Pending() == 0 {
		if sym, args, ok := TermApp(a); ok {
			return sym.Name + "(" + joinTerms(args) + ")"
		}
	}
	return a.Fn.String() + "(" + a.Arg.String() + ")"
}

func joinTerms(args []Term) string {
	return strings.Join(lo.Map(args, func(t Term, _ int) string { return t.String() }), ", ")
}

// Apps folds a fixed-length argument vector onto a function symbol,
// producing the fully applied term f(args...). Arity is asserted at this
// construction boundary.
func Apps(f FuncSym, args ...Term) Term {
	if len(args) != f.Arity {
		panic(fmt.Sprintf("syntax: %s expects %d arguments, got %d", f.Name, f.Arity, len(args)))
	}
	var t Term = Func{Sym: f}
	for _, a := range args {
		if a.Pending() != 0 {
			panic(fmt.Sprintf("syntax: argument %s of %s is not fully applied", a, f.Name))
		}
		t = App{Fn: t, Arg: a}
	}
	return t
}

// TermApp decomposes a fully applied non-variable term into its head symbol
// and argument vector, skipping the administrative App spine. ok is false
// when t is a variable or still pending.
func TermApp(t Term) (FuncSym, []Term, bool) {
	if t.Pending() != 0 {
		return FuncSym{}, nil, false
	}
	var args []Term
	for {
		switch x := t.(type) {
		case App:
			args = append(args, x.Arg)
			t = x.Fn
		case Func:
			reverseTerms(args)
			return x.Sym, args, true
		default:
			return FuncSym{}, nil, false
		}
	}
}

func reverseTerms(ts []Term) {
	for i, j := 0, len(ts)-1; i < j; i, j = i+1, j-1 {
		ts[i], ts[j] = ts[j], ts[i]
	}
}

// TermClosed reports whether t mentions no variable at all. Terms have no
// binders, so this coincides with having no free variables.
func TermClosed(t Term) bool {
	switch x := t.(type) {
	case Var:
		return false
	case Func:
		return true
	case App:
		return TermClosed(x.Fn) && TermClosed(x.Arg)
	}
	panic("unreachable")
}
