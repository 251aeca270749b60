package syntax

import "fmt"

// Formula represents a (possibly partially applied) formula node. The
// primitive grammar is Falsum | Eq | Rel | AppRel | Imp | All; everything
// else is a derived form.
type Formula interface {
	isFormula()
	Pending() int
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

// Falsum is the absurd proposition.
type Falsum struct{}

func (Falsum) isFormula() {}

func (Falsum) Pending() int { return 0 }

func (Falsum) Equal(other Formula) bool {
	_, ok := other.(Falsum)
	return ok
}

func (Falsum) String() string { return "⊥" }

// Eq asserts equality of two fully applied terms.
type Eq struct {
	L, R Term
}

func (Eq) isFormula() {}

func (Eq) Pending() int { return 0 }

func (e Eq) Equal(other Formula) bool {
	o, ok := other.(Eq)
	return ok && e.L.Equal(o.L) && e.R.Equal(o.R)
}

func (e Eq) String() string {
	return "(" + e.L.String() + " ≃ " + e.R.String() + ")"
}

// Rel is a nullary node referencing a relation symbol; its pending count is
// the declared arity.
type Rel struct {
	Sym RelSym
}

func (Rel) isFormula() {}

func (r Rel) Pending() int { return r.Sym.Arity }

func (r Rel) Equal(other Formula) bool {
	o, ok := other.(Rel)
	return ok && r.Sym == o.Sym
}

func (r Rel) String() string { return r.Sym.Name }

// AppRel applies a pending relation node to a fully applied term.
type AppRel struct {
	Fn  Formula
	Arg Term
}

func (AppRel) isFormula() {}

func (a AppRel) Pending() int {
	p := a.Fn.Pending() - 1
	if p < 0 {
		panic("syntax: relation applied beyond its arity")
	}
	return p
}

func (a AppRel) Equal(other Formula) bool {
	o, ok := other.(AppRel)
	return ok && a.Fn.Equal(o.Fn) && a.Arg.Equal(o.Arg)
}

func (a AppRel) String() string {
	if a.Pending() == 0 {
		if sym, args, ok := FormulaRel(a); ok {
			return sym.Name + "(" + joinTerms(args) + ")"
		}
	}
	return a.Fn.String() + "(" + a.Arg.String() + ")"
}

// Imp is implication between fully applied formulas.
type Imp struct {
	A, B Formula
}

func (Imp) isFormula() {}

func (Imp) Pending() int { return 0 }

func (i Imp) Equal(other Formula) bool {
	o, ok := other.(Imp)
	return ok && i.A.Equal(o.A) && i.B.Equal(o.B)
}

func (i Imp) String() string {
	return "(" + i.A.String() + " → " + i.B.String() + ")"
}

// All binds de Bruijn index 0 of its body universally.
type All struct {
	Body Formula
}

func (All) isFormula() {}

func (All) Pending() int { return 0 }

func (a All) Equal(other Formula) bool {
	o, ok := other.(All)
	return ok && a.Body.Equal(o.Body)
}

func (a All) String() string {
	return "∀(" + a.Body.String() + ")"
}

// Derived connectives. Classical logic makes Falsum/Imp/All complete, so
// these are definitions, not new constructors.

// Not is A ⟹ ⊥.
func Not(a Formula) Formula {
	return Imp{A: a, B: Falsum{}}
}

// And is ¬(A ⟹ ¬B).
func And(a, b Formula) Formula {
	return Not(Imp{A: a, B: Not(b)})
}

// Or is ¬A ⟹ B.
func Or(a, b Formula) Formula {
	return Imp{A: Not(a), B: b}
}

// Iff is (A ⟹ B) ∧ (B ⟹ A).
func Iff(a, b Formula) Formula {
	return And(Imp{A: a, B: b}, Imp{A: b, B: a})
}

// Ex is ¬∀¬A.
func Ex(body Formula) Formula {
	return Not(All{Body: Not(body)})
}

// AppsRel folds a fixed-length argument vector onto a relation symbol,
// producing the fully applied atom R(args...).
func AppsRel(r RelSym, args ...Term) Formula {
	if len(args) != r.Arity {
		panic(fmt.Sprintf("syntax: %s expects %d arguments, got %d", r.Name, r.Arity, len(args)))
	}
	var f Formula = Rel{Sym: r}
	for _, a := range args {
		if a.Pending() != 0 {
			panic(fmt.Sprintf("syntax: argument %s of %s is not fully applied", a, r.Name))
		}
		f = AppRel{Fn: f, Arg: a}
	}
	return f
}

// FormulaRel decomposes a fully applied relational atom into its head
// symbol and argument vector. ok is false for any other formula shape.
func FormulaRel(f Formula) (RelSym, []Term, bool) {
	if f.Pending() != 0 {
		return RelSym{}, nil, false
	}
	var args []Term
	for {
		switch x := f.(type) {
		case AppRel:
			args = append(args, x.Arg)
			f = x.Fn
		case Rel:
			reverseTerms(args)
			return x.Sym, args, true
		default:
			return RelSym{}, nil, false
		}
	}
}

// CountQuantifiers counts All nodes. It is the induction measure of the
// truth lemma and is invariant under substitution.
func CountQuantifiers(f Formula) int {
	switch x := f.(type) {
	case Falsum, Eq, Rel:
		return 0
	case AppRel:
		return CountQuantifiers(x.Fn)
	case Imp:
		return CountQuantifiers(x.A) + CountQuantifiers(x.B)
	case All:
		return 1 + CountQuantifiers(x.Body)
	}
	panic("unreachable")
}

// IsSentence reports whether f has no free variables.
func IsSentence(f Formula) bool {
	return formulaClosedAt(f, 0)
}

func termClosedAt(t Term, depth int) bool {
	switch x := t.(type) {
	case Var:
		return int(x) < depth
	case Func:
		return true
	case App:
		return termClosedAt(x.Fn, depth) && termClosedAt(x.Arg, depth)
	}
	panic("unreachable")
}

func formulaClosedAt(f Formula, depth int) bool {
	switch x := f.(type) {
	case Falsum, Rel:
		return true
	case Eq:
		return termClosedAt(x.L, depth) && termClosedAt(x.R, depth)
	case AppRel:
		return formulaClosedAt(x.Fn, depth) && termClosedAt(x.Arg, depth)
	case Imp:
		return formulaClosedAt(x.A, depth) && formulaClosedAt(x.B, depth)
	case All:
		return formulaClosedAt(x.Body, depth+1)
	}
	panic("unreachable")
}
