package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"fortio.org/log"
	"fortio.org/terminal"
	"grol.io/dabbrev/dabbrev"
	"grol.io/dabbrev/screen"
)

const PROMPT = "$ "

type Options struct {
	Width    int // soft wrap column of the simulated screen, 0 for no wrap
	MaxLines int // only scan the last MaxLines lines, 0 for all
	Trace    bool
	Prompt   string
}

// CompleteAll reads the whole history from in and prints the completions of
// the word ending at rune column col of line, one per line.
// Completions are printed even when the scan stopped early, the error
// returned then tells why.
func CompleteAll(in io.Reader, out io.Writer, line string, col int, options Options) error {
	b, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	s := screen.Layout(string(b), options.Width).Tail(options.MaxLines)
	hint := dabbrev.Hint(line, col)
	log.LogVf("Completing %q from %d lines", hint, len(s.Lines))
	matches, err := dabbrev.CompleteWithOptions(dabbrev.Options{Trace: options.Trace}, s.Reader(), hint)
	for _, m := range matches {
		fmt.Fprintln(out, m)
	}
	return err
}

// Interactive reads lines from the terminal, prints the completions of the
// last word of each, and offers tab completion. Everything displayed
// (seed, prompts, input, output) becomes completion material.
func Interactive(options Options, seed string) int {
	if options.Prompt == "" {
		options.Prompt = PROMPT
	}
	term, err := terminal.Open(context.Background())
	if err != nil {
		return log.FErrf("Error opening terminal: %v", err)
	}
	defer term.Close()
	term.LoggerSetup()
	autoComplete := NewCompletion(options)
	autoComplete.AddText(seed)
	term.SetPrompt(options.Prompt)
	term.SetAutoCompleteCallback(autoComplete.AutoComplete())
	for {
		l, err := term.ReadLine()
		if errors.Is(err, io.EOF) {
			log.Infof("EOF, exiting")
			return 0
		}
		if err != nil {
			return log.FErrf("Error reading line: %v", err)
		}
		out := EvalOne(autoComplete, l)
		fmt.Fprint(term.Out, out)
		autoComplete.AddText(options.Prompt + l + "\n" + out)
	}
}

// EvalOne returns the completions (one per line) for the last word of l.
func EvalOne(a *AutoComplete, l string) string {
	hint := dabbrev.Hint(l, -1)
	if hint == "" {
		return ""
	}
	var sb strings.Builder
	for _, m := range a.Matches(hint) {
		sb.WriteString(m)
		sb.WriteByte('\n')
	}
	return sb.String()
}
