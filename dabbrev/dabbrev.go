// Package dabbrev (dynamic abbreviation) completes a word prefix from the
// words previously seen on a terminal screen.
//
// Each query scans the whole source again into a fresh index: nothing is
// cached between calls.
package dabbrev // import "grol.io/dabbrev/dabbrev"

import (
	"io"
	"unicode"
	"unicode/utf8"

	"fortio.org/log"
	"grol.io/dabbrev/lexer"
	"grol.io/dabbrev/trie"
)

type Options struct {
	// Trace logs every state transition and word of the scan (at debug level).
	Trace bool
	// Tracer to use instead of the logging one, implies Trace.
	Tracer lexer.Tracer
}

// Index scans src into a new index. When the scan stops early the error
// (a *lexer.StuckError or a read error) is returned along with the index
// holding every word emitted up to that point.
func Index(opts Options, src io.RuneReader) (*trie.Tree, error) {
	tree := trie.New()
	l := lexer.New(tree)
	switch {
	case opts.Tracer != nil:
		l.SetTracer(opts.Tracer)
	case opts.Trace:
		l.SetTracer(LogTracer{})
	}
	err := l.Run(src)
	if err != nil {
		log.LogVf("dabbrev: scan stopped early, %d words indexed: %v", tree.Len(), err)
	}
	return tree, err
}

// Complete returns, sorted, the words of src starting with prefix.
// An empty prefix returns all the words. The result is always usable, even
// when err isn't nil (see Index).
func Complete(src io.RuneReader, prefix string) ([]string, error) {
	return CompleteWithOptions(Options{}, src, prefix)
}

func CompleteWithOptions(opts Options, src io.RuneReader, prefix string) ([]string, error) {
	tree, err := Index(opts, src)
	res := tree.Gather(prefix)
	log.LogVf("dabbrev: %d words, %d nodes, %d matches for %q", tree.Len(), tree.Nodes(), len(res), prefix)
	return res, err
}

// Hint is the word being typed: the longest run of non space code points
// ending right before rune column col of line (col < 0 or past the end of
// the line meaning the end of line).
func Hint(line string, col int) string {
	runes := []rune(line)
	if col < 0 || col > len(runes) {
		col = len(runes)
	}
	start := col
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	return string(runes[start:col])
}

// CommonPrefix is the longest prefix (in whole code points) shared by all
// the words.
func CommonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	prefix := words[0]
	for _, w := range words[1:] {
		i := 0
		for i < len(prefix) && i < len(w) {
			r1, s1 := utf8.DecodeRuneInString(prefix[i:])
			r2, _ := utf8.DecodeRuneInString(w[i:])
			if r1 != r2 {
				break
			}
			i += s1
		}
		prefix = prefix[:i]
	}
	return prefix
}

// LogTracer logs the scan through fortio.org/log at debug level.
type LogTracer struct{}

func (LogTracer) Transition(from, to lexer.State, r rune, word string) {
	log.Debugf("dabbrev: %s --%q--> %s, word %q", from, r, to, word)
}

func (LogTracer) Word(word string) {
	log.Debugf("dabbrev: word %q", word)
}
