package semantics

import (
	"fmt"

	"github.com/gnolang/fol/internal/syntax"
)

// Structure interprets a signature over a finite domain. Funcs and Rels map
// each symbol to its table; the realization functions report an error for
// symbols left uninterpreted.
type Structure[E comparable] struct {
	Domain []E
	Funcs  map[syntax.FuncSym]func([]E) E
	Rels   map[syntax.RelSym]func([]E) bool
}

// NewStructure builds an empty structure over the given domain.
func NewStructure[E comparable](domain ...E) *Structure[E] {
	return &Structure[E]{
		Domain: domain,
		Funcs:  make(map[syntax.FuncSym]func([]E) E),
		Rels:   make(map[syntax.RelSym]func([]E) bool),
	}
}

// Func interprets a function symbol and returns the structure for chaining.
func (m *Structure[E]) Func(sym syntax.FuncSym, fn func([]E) E) *Structure[E] {
	m.Funcs[sym] = fn
	return m
}

// Rel interprets a relation symbol and returns the structure for chaining.
func (m *Structure[E]) Rel(sym syntax.RelSym, fn func([]E) bool) *Structure[E] {
	m.Rels[sym] = fn
	return m
}

func (m *Structure[E]) funcTable(sym syntax.FuncSym) (func([]E) E, error) {
	fn, ok := m.Funcs[sym]
	if !ok {
		return nil, fmt.Errorf("semantics: function symbol %s is uninterpreted", sym.Name)
	}
	return fn, nil
}

func (m *Structure[E]) relTable(sym syntax.RelSym) (func([]E) bool, error) {
	rel, ok := m.Rels[sym]
	if !ok {
		return nil, fmt.Errorf("semantics: relation symbol %s is uninterpreted", sym.Name)
	}
	return rel, nil
}

// Valuation assigns a domain element to every de Bruijn index.
type Valuation[E comparable] func(int) E

// Constant is the valuation sending every index to x.
func Constant[E comparable](x E) Valuation[E] {
	return func(int) E { return x }
}

// Extend shifts the valuation under one binder: index 0 maps to x and
// index k+1 maps to v(k).
func (v Valuation[E]) Extend(x E) Valuation[E] {
	return func(i int) E {
		if i == 0 {
			return x
		}
		return v(i - 1)
	}
}

// Shift drops the first n assignments, the semantic counterpart of
// substituting away or unlifting n variables.
func (v Valuation[E]) Shift(n int) Valuation[E] {
	return func(i int) E { return v(i + n) }
}
