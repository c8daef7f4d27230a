package hk

import "fmt"

// Equivalences records that provisional labels denote the same cluster.
// It is a forest of chains: every key maps to a strictly smaller label, and
// a label with no entry is a root. Chains are followed by Root.
//
// Provisional labels are dense multiples of step, so the forest is stored
// as a slice indexed by ordinal (label/step - 1) rather than a hash map.
type Equivalences struct {
	step   Label
	parent []Label // parent[k] is the target of label (k+1)*step, Unlabeled for roots
	links  int     // number of non-root entries
}

func newEquivalences(step Label) *Equivalences {
	return &Equivalences{step: step}
}

// ordinal maps a provisional label to its slot, or -1 if l was never minted.
func (e *Equivalences) ordinal(l Label) int {
	if l <= 0 || l%e.step != 0 {
		return -1
	}
	k := int(l/e.step) - 1
	if k >= len(e.parent) {
		return -1
	}

	return k
}

// mint returns the next provisional label.
func (e *Equivalences) mint() (Label, error) {
	next := int64(len(e.parent)+1) * int64(e.step)
	if next > int64(MaxLabel) {
		return Unlabeled, fmt.Errorf("mint after %d labels (step %d): %w", len(e.parent), e.step, ErrLabelSpaceExhausted)
	}
	e.parent = append(e.parent, Unlabeled)

	return Label(next), nil
}

// Minted returns the number of provisional labels issued.
func (e *Equivalences) Minted() int {
	if e == nil {
		return 0
	}

	return len(e.parent)
}

// Len returns the number of recorded equivalences (keys with a target).
func (e *Equivalences) Len() int {
	if e == nil {
		return 0
	}

	return e.links
}

// Get returns the label l is directly equivalent to, if any.
func (e *Equivalences) Get(l Label) (Label, bool) {
	if e == nil {
		return Unlabeled, false
	}
	k := e.ordinal(l)
	if k < 0 || e.parent[k] == Unlabeled {
		return Unlabeled, false
	}

	return e.parent[k], true
}

// Root follows the chain starting at l until a label with no entry is
// reached. Terminates because every entry strictly decreases the label.
func (e *Equivalences) Root(l Label) Label {
	for {
		next, ok := e.Get(l)
		if !ok {
			return l
		}
		l = next
	}
}

// Pairs returns a snapshot of the equivalence map.
func (e *Equivalences) Pairs() map[Label]Label {
	out := make(map[Label]Label, e.Len())
	if e == nil {
		return out
	}
	for k, p := range e.parent {
		if p != Unlabeled {
			out[Label(k+1)*e.step] = p
		}
	}

	return out
}

// find returns the root of l, halving the path on the way. Each rewritten
// entry still points to a strictly smaller label of the same cluster.
func (e *Equivalences) find(l Label) Label {
	for {
		k := e.ordinal(l)
		p := e.parent[k]
		if p == Unlabeled {
			return l
		}
		if gp := e.parent[e.ordinal(p)]; gp != Unlabeled {
			e.parent[k] = gp
			p = gp
		}
		l = p
	}
}

// union records that a and b belong to the same cluster by linking the
// larger root under the smaller one. Merging roots rather than overwriting
// the entry of the larger label keeps every earlier equivalence intact.
func (e *Equivalences) union(a, b Label) {
	ra, rb := e.find(a), e.find(b)
	if ra == rb {
		return
	}
	if ra < rb {
		ra, rb = rb, ra
	}
	e.parent[e.ordinal(ra)] = rb
	e.links++
}

// flatten returns, for every ordinal, the root label of that provisional
// label. Parents are always smaller, so a single ascending pass suffices.
func (e *Equivalences) flatten() []Label {
	roots := make([]Label, len(e.parent))
	for k, p := range e.parent {
		if p == Unlabeled {
			roots[k] = Label(k+1) * e.step
			continue
		}
		roots[k] = roots[e.ordinal(p)]
	}

	return roots
}
