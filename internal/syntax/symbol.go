package syntax

import (
	"fmt"
	"sort"
)

// FuncSym identifies a function symbol of a fixed arity. Symbols carry no
// behavior; only name and arity matter. Constants are arity-0 symbols.
type FuncSym struct {
	Name  string
	Arity int
}

func (f FuncSym) String() string {
	return f.Name
}

// RelSym identifies a relation symbol of a fixed arity.
type RelSym struct {
	Name  string
	Arity int
}

func (r RelSym) String() string {
	return r.Name
}

// Const builds an arity-0 function symbol.
func Const(name string) FuncSym {
	return FuncSym{Name: name}
}

// Signature is an immutable pair of arity-indexed symbol families. Symbol
// names are unique across each family; the debug notation and the formula
// set keys rely on that.
type Signature struct {
	funcs map[string]FuncSym
	rels  map[string]RelSym
}

// NewSignature creates an empty signature.
func NewSignature() *Signature {
	return &Signature{
		funcs: make(map[string]FuncSym),
		rels:  make(map[string]RelSym),
	}
}

// Func registers (or retrieves) a function symbol. Redeclaring a name at a
// different arity is a programmer error.
func (s *Signature) Func(name string, arity int) FuncSym {
	if f, ok := s.funcs[name]; ok {
		if f.Arity != arity {
			panic(fmt.Sprintf("syntax: function symbol %s redeclared with arity %d (was %d)", name, arity, f.Arity))
		}
		return f
	}
	f := FuncSym{Name: name, Arity: arity}
	s.funcs[name] = f
	return f
}

// Rel registers (or retrieves) a relation symbol.
func (s *Signature) Rel(name string, arity int) RelSym {
	if r, ok := s.rels[name]; ok {
		if r.Arity != arity {
			panic(fmt.Sprintf("syntax: relation symbol %s redeclared with arity %d (was %d)", name, arity, r.Arity))
		}
		return r
	}
	r := RelSym{Name: name, Arity: arity}
	s.rels[name] = r
	return r
}

// HasFunc reports whether the signature carries the given function symbol.
func (s *Signature) HasFunc(f FuncSym) bool {
	g, ok := s.funcs[f.Name]
	return ok && g == f
}

// HasRel reports whether the signature carries the given relation symbol.
func (s *Signature) HasRel(r RelSym) bool {
	q, ok := s.rels[r.Name]
	return ok && q == r
}

// Funcs returns all function symbols sorted by name.
func (s *Signature) Funcs() []FuncSym {
	out := make([]FuncSym, 0, len(s.funcs))
	for _, f := range s.funcs {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Rels returns all relation symbols sorted by name.
func (s *Signature) Rels() []RelSym {
	out := make([]RelSym, 0, len(s.rels))
	for _, r := range s.rels {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Consts returns the arity-0 function symbols sorted by name.
func (s *Signature) Consts() []FuncSym {
	var out []FuncSym
	for _, f := range s.Funcs() {
		if f.Arity == 0 {
			out = append(out, f)
		}
	}
	return out
}
