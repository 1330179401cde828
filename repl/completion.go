package repl

import (
	"fmt"
	"io"

	"fortio.org/log"
	"fortio.org/terminal"
	"grol.io/dabbrev/dabbrev"
	"grol.io/dabbrev/screen"
)

// AutoComplete completes words from what was displayed so far in the session.
type AutoComplete struct {
	Screen  *screen.Screen
	Options Options
}

func NewCompletion(options Options) *AutoComplete {
	return &AutoComplete{Screen: &screen.Screen{}, Options: options}
}

// AddText records text as displayed.
func (a *AutoComplete) AddText(text string) {
	a.Screen.AddText(text, a.Options.Width)
}

// Matches rescans the (tail of the) transcript for words starting with hint.
func (a *AutoComplete) Matches(hint string) []string {
	s := a.Screen.Tail(a.Options.MaxLines)
	res, err := dabbrev.CompleteWithOptions(dabbrev.Options{Trace: a.Options.Trace}, s.Reader(), hint)
	if err != nil {
		log.LogVf("Partial scan for %q: %v", hint, err)
	}
	return res
}

func (a *AutoComplete) AutoComplete() terminal.AutoCompleteCallback {
	return func(t *terminal.Terminal, line string, pos int, key rune) (newLine string, newPos int, ok bool) {
		if key != '\t' {
			return // only tab for now
		}
		return a.autoCompleteCallback(t.Out, line, pos)
	}
}

// pos is a byte offset in line.
func (a *AutoComplete) autoCompleteCallback(out io.Writer, line string, pos int) (newLine string, newPos int, ok bool) {
	hint := dabbrev.Hint(line[:pos], -1)
	if hint == "" {
		return
	}
	matches := a.Matches(hint)
	if len(matches) == 0 {
		return
	}
	if len(matches) > 1 {
		fmt.Fprint(out, "One of: ")
		for _, m := range matches {
			fmt.Fprint(out, m, " ")
		}
		fmt.Fprintln(out)
	}
	completion := dabbrev.CommonPrefix(matches)
	start := pos - len(hint)
	return line[:start] + completion + line[pos:], start + len(completion), true
}
