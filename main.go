// Dabbrev completes words from terminal history (dynamic abbreviation).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/struct2env"
	"grol.io/dabbrev/lexer"
	"grol.io/dabbrev/repl"
)

func main() {
	os.Exit(Main())
}

type Config struct {
	Width    int
	MaxLines int
	Trace    bool
}

var config = Config{}

// Replaced by the profiling hook unless built with the no_pprof tag.
var profile = func() (func(), error) { return func() {}, nil }

func EnvHelp(w io.Writer) {
	res, _ := struct2env.StructToEnvVars(config)
	str := struct2env.ToShellWithPrefix("DABBREV_", res, true)
	fmt.Fprintln(w, "# Dabbrev environment variables:")
	fmt.Fprint(w, str)
}

func Main() int {
	interactive := flag.Bool("i", false, "interactive mode, tab completes from the files and the session")
	col := flag.Int("col", -1, "cursor rune `column` in the line argument, -1 for end of line")
	cli.EnvHelpFuncs = append(cli.EnvHelpFuncs, EnvHelp)
	errs := struct2env.SetFromEnv("DABBREV_", &config)
	if len(errs) > 0 {
		log.Errf("Error setting config from env: %v", errs)
	}
	width := flag.Int("width", config.Width, "soft wrap history lines at `columns`, 0 for no wrapping")
	maxLines := flag.Int("max-lines", config.MaxLines, "only scan the last `n` lines of history, 0 for all")
	trace := flag.Bool("trace", config.Trace, "log every tokenizer transition (at debug level, see -loglevel)")
	cli.ArgsHelp = "line [history files or - for stdin...]\n" +
		"prints the completions of the last word of line (or the word ending at -col)\n" +
		"or: -i [history files...] for interactive mode"
	cli.MaxArgs = -1
	cli.Main()
	stop, err := profile()
	if err != nil {
		return log.FErrf("%v", err)
	}
	defer stop()
	options := repl.Options{
		Width:    *width,
		MaxLines: *maxLines,
		Trace:    *trace,
		Prompt:   repl.PROMPT,
	}
	args := flag.Args()
	if *interactive {
		log.Infof("dabbrev %s - tab to complete, ^D to exit", cli.LongVersion)
		seed, err := readHistory(args, false)
		if err != nil {
			return log.FErrf("%v", err)
		}
		return repl.Interactive(options, seed)
	}
	if len(args) == 0 {
		return log.FErrf("Need the line to complete as first argument (or -i for interactive mode)")
	}
	history, err := readHistory(args[1:], true)
	if err != nil {
		return log.FErrf("%v", err)
	}
	err = repl.CompleteAll(strings.NewReader(history), os.Stdout, args[0], *col, options)
	if errors.Is(err, lexer.ErrStuck) {
		log.Warnf("History scan stopped early, completions are partial: %v", err)
		return 0
	}
	if err != nil {
		return log.FErrf("Error completing %q: %v", args[0], err)
	}
	return 0
}

// readHistory concatenates the files, each ending with a newline so the
// last word of a file doesn't merge with the first of the next one.
// No files (or "-") reads stdin when allowed.
func readHistory(files []string, stdinOk bool) (string, error) {
	if len(files) == 0 && stdinOk {
		files = []string{"-"}
	}
	var sb strings.Builder
	for _, file := range files {
		var b []byte
		var err error
		if file == "-" {
			if !stdinOk {
				return "", errors.New("stdin can't be used as history in interactive mode")
			}
			log.LogVf("Reading history from stdin")
			b, err = io.ReadAll(os.Stdin)
		} else {
			log.LogVf("Reading history from %s", file)
			b, err = os.ReadFile(file)
		}
		if err != nil {
			return "", fmt.Errorf("reading history: %w", err)
		}
		sb.Write(b)
		if len(b) > 0 && b[len(b)-1] != '\n' {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
