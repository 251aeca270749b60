package henkin

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/gnolang/fol/internal/semantics"
	"github.com/gnolang/fol/internal/syntax"
)

// Complete stands in for a consistent, complete, constant-rich theory.
// Proves must decide every sentence over Sig; Witness, given the body of a
// universally quantified sentence the theory does not prove, must name a
// constant refuting that body.
type Complete struct {
	Sig     *syntax.Signature
	Proves  func(syntax.Formula) bool
	Witness func(body syntax.Formula) (syntax.FuncSym, error)
}

// TermModel is the canonical structure of a complete theory: elements are
// equivalence classes of constants under provable equality, identified by
// the index of their representative constant.
type TermModel struct {
	c      Complete
	consts []syntax.FuncSym
	uf     *unionFind
	domain []int
	str    *semantics.Structure[int]
}

// NewTermModel quotients the constants and tabulates every symbol of the
// signature on the classes. It fails when the theory has no constants,
// proves ⊥, or leaves some closed term without a provably equal constant.
func NewTermModel(c Complete) (*TermModel, error) {
	consts := c.Sig.Consts()
	if len(consts) == 0 {
		return nil, fmt.Errorf("henkin: the signature has no constants to build a carrier from")
	}
	if c.Proves(syntax.Falsum{}) {
		return nil, fmt.Errorf("henkin: the theory is inconsistent")
	}

	m := &TermModel{c: c, consts: consts, uf: newUnionFind(len(consts))}
	for i := range consts {
		for j := i + 1; j < len(consts); j++ {
			eq := syntax.Eq{L: syntax.Apps(consts[i]), R: syntax.Apps(consts[j])}
			if c.Proves(eq) {
				m.uf.union(i, j)
			}
		}
	}

	seen := make(map[int]bool)
	for i := range consts {
		root := m.uf.find(i)
		if !seen[root] {
			seen[root] = true
			m.domain = append(m.domain, root)
		}
	}
	sort.Ints(m.domain)

	if err := m.tabulate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Domain returns the class identifiers of the carrier.
func (m *TermModel) Domain() []int {
	out := make([]int, len(m.domain))
	copy(out, m.domain)
	return out
}

// Structure returns the tabulated semantic structure on the classes.
func (m *TermModel) Structure() *semantics.Structure[int] {
	return m.str
}

// ClassOf maps a closed term to its equivalence class. Constant-richness
// of the theory guarantees a hit; its absence surfaces here as an error.
func (m *TermModel) ClassOf(t syntax.Term) (int, error) {
	if !syntax.TermClosed(t) {
		return 0, fmt.Errorf("henkin: term %s is not closed", t)
	}
	for i, cs := range m.consts {
		if m.c.Proves(syntax.Eq{L: t, R: syntax.Apps(cs)}) {
			return m.uf.find(i), nil
		}
	}
	return 0, fmt.Errorf("henkin: no constant is provably equal to %s", t)
}

// repTerm returns the representative constant of a class as a term.
func (m *TermModel) repTerm(class int) syntax.Term {
	return syntax.Apps(m.consts[class])
}

func (m *TermModel) repTerms(classes []int) []syntax.Term {
	return lo.Map(classes, func(cl int, _ int) syntax.Term { return m.repTerm(cl) })
}

// tabulate interprets every symbol of the signature on the carrier by
// querying the oracle on representative constants.
func (m *TermModel) tabulate() error {
	m.str = semantics.NewStructure(m.domain...)

	for _, f := range m.c.Sig.Funcs() {
		table := make(map[string]int)
		for _, tup := range tuples(m.domain, f.Arity) {
			cl, err := m.ClassOf(syntax.Apps(f, m.repTerms(tup)...))
			if err != nil {
				return fmt.Errorf("henkin: interpreting %s: %w", f.Name, err)
			}
			table[tupleKey(tup)] = cl
		}
		m.str.Func(f, func(xs []int) int { return table[tupleKey(xs)] })
	}

	for _, r := range m.c.Sig.Rels() {
		table := make(map[string]bool)
		for _, tup := range tuples(m.domain, r.Arity) {
			table[tupleKey(tup)] = m.c.Proves(syntax.AppsRel(r, m.repTerms(tup)...))
		}
		m.str.Rel(r, func(xs []int) bool { return table[tupleKey(xs)] })
	}
	return nil
}

// tuples enumerates the k-fold Cartesian product of the domain.
func tuples(domain []int, k int) [][]int {
	if k == 0 {
		return [][]int{nil}
	}
	var out [][]int
	for _, rest := range tuples(domain, k-1) {
		for _, x := range domain {
			tup := make([]int, 0, k)
			tup = append(tup, rest...)
			tup = append(tup, x)
			out = append(out, tup)
		}
	}
	return out
}

func tupleKey(xs []int) string {
	return fmt.Sprint(xs)
}
