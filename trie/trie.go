// Package trie implements the word index used for completions: a ternary
// search tree (one node per code point, siblings ordered as a binary search
// tree) stored in a flat arena of nodes addressed by index.
package trie // import "grol.io/dabbrev/trie"

import (
	"iter"

	"fortio.org/safecast"
)

// none is the "no link" index, slot 0 of the arena is never used.
const none uint32 = 0

type node struct {
	char rune
	// Path from the root to this node (following child links) is a stored word.
	terminal bool
	// Siblings: same depth, same parent prefix; lesser.char < char < greater.char.
	lesser, greater uint32
	// Next character of words continuing past this one.
	child uint32
}

type Tree struct {
	nodes []node
	root  uint32
	words int
}

func New() *Tree {
	return &Tree{nodes: make([]node, 1, 64)}
}

func (t *Tree) newNode(char rune) uint32 {
	idx := safecast.MustConvert[uint32](len(t.nodes))
	t.nodes = append(t.nodes, node{char: char})
	return idx
}

// Insert adds word to the tree. Inserting the same word again is a no-op,
// the empty word is ignored.
func (t *Tree) Insert(word string) {
	if word == "" {
		return
	}
	rs := []rune(word)
	if t.root == none {
		t.root = t.newNode(rs[0])
	}
	n := t.root
	i := 0
	for {
		r := rs[i]
		// No pointers into t.nodes across newNode(): append may move the arena.
		switch c := t.nodes[n].char; {
		case r < c:
			next := t.nodes[n].lesser
			if next == none {
				next = t.newNode(r)
				t.nodes[n].lesser = next
			}
			n = next
		case r > c:
			next := t.nodes[n].greater
			if next == none {
				next = t.newNode(r)
				t.nodes[n].greater = next
			}
			n = next
		default:
			i++
			if i == len(rs) {
				if !t.nodes[n].terminal {
					t.nodes[n].terminal = true
					t.words++
				}
				return
			}
			next := t.nodes[n].child
			if next == none {
				next = t.newNode(rs[i])
				t.nodes[n].child = next
			}
			n = next
		}
	}
}

// find returns the node matching the last character of prefix.
func (t *Tree) find(prefix string) (uint32, bool) {
	n := t.root
	last := none
	for _, r := range prefix {
		if last != none {
			n = t.nodes[last].child
		}
		for n != none && t.nodes[n].char != r {
			if r < t.nodes[n].char {
				n = t.nodes[n].lesser
			} else {
				n = t.nodes[n].greater
			}
		}
		if n == none {
			return none, false
		}
		last = n
	}
	return last, true
}

func (t *Tree) Contains(word string) bool {
	if word == "" {
		return false
	}
	n, ok := t.find(word)
	return ok && t.nodes[n].terminal
}

// HasPrefix is true when at least one stored word starts with prefix.
func (t *Tree) HasPrefix(prefix string) bool {
	if prefix == "" {
		return t.root != none
	}
	_, ok := t.find(prefix)
	return ok
}

// Len is the number of distinct words stored.
func (t *Tree) Len() int {
	return t.words
}

// Nodes is the number of allocated nodes, one per code point per distinct
// prefix (plus sibling splits).
func (t *Tree) Nodes() int {
	return len(t.nodes) - 1
}

// All iterates, in lexicographic order, over every stored word starting
// with prefix (prefix included when it is itself a stored word).
func (t *Tree) All(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		sub := t.root
		if prefix != "" {
			n, ok := t.find(prefix)
			if !ok {
				return
			}
			if t.nodes[n].terminal && !yield(prefix) {
				return
			}
			sub = t.nodes[n].child
		}
		t.walk(sub, []rune(prefix), yield)
	}
}

// Gather returns All(prefix) as a slice, empty (not nil) when nothing matches.
func (t *Tree) Gather(prefix string) []string {
	res := []string{}
	for w := range t.All(prefix) {
		res = append(res, w)
	}
	return res
}

// walk visits lesser, self, child then greater which yields words in sorted
// order. The greater chain is followed iteratively.
func (t *Tree) walk(n uint32, path []rune, yield func(string) bool) bool {
	for n != none {
		nd := t.nodes[n]
		if !t.walk(nd.lesser, path, yield) {
			return false
		}
		p := append(path, nd.char) //nolint:gocritic // each sibling overwrites the same slot.
		if nd.terminal && !yield(string(p)) {
			return false
		}
		if !t.walk(nd.child, p, yield) {
			return false
		}
		n = nd.greater
	}
	return true
}

/*
  Inserting "ant", "apple", "bee":

  [a] ---------greater--------> [b]
   |child                        |child
  [n] --greater--> [p]          [e]
   |child           |child       |child
  [t]*             [p]          [e]*
                    |child
                   [l]
                    |child
                   [e]*
*/
