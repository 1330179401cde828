package trie_test

import (
	"math/rand/v2"
	"slices"
	"sort"
	"strings"
	"testing"

	"fortio.org/sets"
	"github.com/tchap/go-patricia/v2/patricia"
	"grol.io/dabbrev/trie"
)

func TestTrie_InsertAndContains(t *testing.T) {
	tree := trie.New()

	tree.Insert("ABC")
	if !tree.Contains("ABC") {
		t.Error("Expected to find 'ABC', but it was not found.")
	}
	if tree.Contains("AB") {
		t.Error("Expected 'AB' to be not found, but it was found.")
	}
	if tree.Contains("ABCD") {
		t.Error("Expected 'ABCD' to be not found, but it was found.")
	}
	if !tree.HasPrefix("AB") {
		t.Error("Expected 'AB' to be a prefix of 'ABC'.")
	}
	tree.Insert("AB2")
	if tree.Contains("AB") {
		t.Error("Expected 'AB' to be not found, but it was found after adding 'AB2'.")
	}
	if !tree.Contains("AB2") || !tree.Contains("ABC") {
		t.Error("Expected to find both 'AB2' and 'ABC'.")
	}
	tree.Insert("ABCD")
	if !tree.Contains("ABC") {
		t.Error("Expected to find 'ABC', but it was not found after adding 'ABCD'.")
	}
	if !tree.Contains("ABCD") {
		t.Error("Expected to find 'ABCD', but it was not found.")
	}
	if tree.Len() != 3 {
		t.Errorf("Expected 3 words, got %d", tree.Len())
	}
	// A, B, 2, C, D
	if tree.Nodes() != 5 {
		t.Errorf("Expected 5 nodes, got %d", tree.Nodes())
	}
}

func TestTrie_Empty(t *testing.T) {
	tree := trie.New()
	tree.Insert("")
	if tree.Len() != 0 || tree.Nodes() != 0 {
		t.Errorf("Empty word should not be stored: %d words %d nodes", tree.Len(), tree.Nodes())
	}
	if tree.Contains("") || tree.HasPrefix("") || tree.HasPrefix("a") {
		t.Error("Empty tree should not contain anything")
	}
	res := tree.Gather("")
	if res == nil || len(res) != 0 {
		t.Errorf("Expected empty non nil result, got %#v", res)
	}
}

func TestTrie_IdempotentInsert(t *testing.T) {
	once := trie.New()
	twice := trie.New()
	for _, w := range []string{"foo", "bar", "food"} {
		once.Insert(w)
		twice.Insert(w)
		twice.Insert(w)
	}
	if !slices.Equal(once.Gather(""), twice.Gather("")) {
		t.Errorf("Double insert changed the result: %v vs %v", once.Gather(""), twice.Gather(""))
	}
	if once.Nodes() != twice.Nodes() || once.Len() != twice.Len() {
		t.Errorf("Double insert changed the tree: %d/%d vs %d/%d",
			once.Nodes(), once.Len(), twice.Nodes(), twice.Len())
	}
}

func TestTrie_Gather(t *testing.T) {
	tree := trie.New()
	for _, w := range []string{"bee", "apple", "ant", "apply", "app", "b", "été", "Zed"} {
		tree.Insert(w)
	}
	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"Zed", "ant", "app", "apple", "apply", "b", "bee", "été"}},
		{"a", []string{"ant", "app", "apple", "apply"}},
		{"app", []string{"app", "apple", "apply"}},
		{"appl", []string{"apple", "apply"}},
		{"apple", []string{"apple"}},
		{"b", []string{"b", "bee"}},
		{"é", []string{"été"}},
		{"c", []string{}},
		{"applesauce", []string{}},
		{"z", []string{}},
	}
	for _, tt := range tests {
		got := tree.Gather(tt.prefix)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Gather(%q) = %q, want %q", tt.prefix, got, tt.want)
		}
	}
}

// Lesser siblings must come before the node's own word: "b" is inserted
// first so "a..." words hang off its lesser link.
func TestTrie_SortOrderLesserFirst(t *testing.T) {
	tree := trie.New()
	for _, w := range []string{"b", "a", "ab", "c", "ba"} {
		tree.Insert(w)
	}
	want := []string{"a", "ab", "b", "ba", "c"}
	if got := tree.Gather(""); !slices.Equal(got, want) {
		t.Errorf("Gather(\"\") = %q, want %q", got, want)
	}
}

func TestTrie_EarlyStop(t *testing.T) {
	tree := trie.New()
	for _, w := range []string{"x1", "x2", "x3", "x4"} {
		tree.Insert(w)
	}
	var got []string
	for w := range tree.All("x") {
		got = append(got, w)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []string{"x1", "x2"}) {
		t.Errorf("Early stop got %q", got)
	}
}

func randomWord(r *rand.Rand) string {
	const alphabet = "abcdeéz-./:"
	runes := []rune(alphabet)
	n := 1 + r.IntN(6)
	var sb strings.Builder
	for range n {
		sb.WriteRune(runes[r.IntN(len(runes))])
	}
	return sb.String()
}

// Checks containment, completeness and ordering against a plain set and
// against an independent (patricia) trie.
func TestTrie_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))
	tree := trie.New()
	words := sets.New[string]()
	oracle := patricia.NewTrie()
	for range 2000 {
		w := randomWord(r)
		tree.Insert(w)
		words.Add(w)
		oracle.Insert(patricia.Prefix(w), true)
	}
	if tree.Len() != words.Len() {
		t.Fatalf("Len() = %d, want %d", tree.Len(), words.Len())
	}
	all := tree.Gather("")
	if !slices.Equal(all, sets.Sort(words)) {
		t.Fatalf("Gather(\"\") doesn't match the sorted set")
	}
	for _, prefix := range []string{"", "a", "é", "ab", "z-", "e.", "c:d", "zzzzzzz"} {
		got := tree.Gather(prefix)
		if !sort.StringsAreSorted(got) {
			t.Errorf("Gather(%q) not sorted: %q", prefix, got)
		}
		var want []string
		err := oracle.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
			want = append(want, string(p))
			return nil
		})
		if err != nil {
			t.Fatalf("patricia visit error: %v", err)
		}
		sort.Strings(want)
		if len(want) == 0 {
			want = []string{}
		}
		if !slices.Equal(got, want) {
			t.Errorf("Gather(%q) = %d words, oracle has %d", prefix, len(got), len(want))
		}
		for _, w := range got {
			if !strings.HasPrefix(w, prefix) {
				t.Errorf("Gather(%q) returned %q", prefix, w)
			}
			if !words.Has(w) {
				t.Errorf("Gather(%q) returned never inserted %q", prefix, w)
			}
		}
	}
}
