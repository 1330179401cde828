// Package lexer splits screen text into words and URIs. It is a table driven
// state machine reading one code point at a time, without lookahead: each
// state has an ordered list of transitions and the first one whose class
// matches the code point is applied.
package lexer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"fortio.org/log"
	"grol.io/dabbrev/token"
)

type State uint8

const (
	Ground        State = iota // no word in progress
	Word                       // plain word
	WordQuoted                 // inside ' or " quotes
	URIMaybe                   // started with a letter, could still be a scheme
	URIEndScheme               // scheme followed by :
	URIPostScheme              // scheme:/
	URIAuth                    // scheme:// authority
	URIPath                    // path part

	numStates = iota
)

//go:generate stringer -type=State
var _ = Ground.String() // force compile error if go generate is missing.

type Action uint8

const (
	None    Action = iota
	Collect        // append the code point to the word
	Begin          // word is reset to just the code point
	Emit           // word is complete, insert it
	Reset          // drop the word
)

type transition struct {
	class  token.Class
	action Action
	next   State
	move   bool
}

func stay(c token.Class, a Action) transition {
	return transition{class: c, action: a}
}

func to(c token.Class, a Action, next State) transition {
	return transition{class: c, action: a, next: next, move: true}
}

var tables = [numStates][]transition{
	Ground: {
		stay(token.SPACE, None),
		to(token.QUOTE, None, WordQuoted),
		to(token.ALPHA, None, URIMaybe),
		to(token.PRINT, None, Word),
	},
	Word: {
		to(token.COLON, Emit, Ground),
		to(token.PIPE, Emit, Ground),
		to(token.SPACE, Emit, Ground),
		stay(token.GRAPH, Collect),
	},
	WordQuoted: {
		to(token.CLOSEQUOTE, None, Word),
		stay(token.PRINT, Collect),
		to(token.CONTROL, None, Ground),
	},
	URIMaybe: {
		to(token.COLON, Emit, URIEndScheme),
		stay(token.SCHEME, Collect),
		to(token.PIPE, Emit, Ground),
		to(token.SPACE, Emit, Ground),
		to(token.GRAPH, None, Word),
	},
	URIEndScheme: {
		to(token.SLASH, None, URIPostScheme),
		to(token.GRAPH, Begin, URIPath),
		to(token.SPACE, None, Ground),
	},
	URIPostScheme: {
		to(token.SLASH, None, URIAuth),
		to(token.GRAPH, Begin, URIPath),
		to(token.SPACE, Emit, Ground),
	},
	URIAuth: {
		to(token.SLASH, Collect, URIPath),
		stay(token.GRAPH, Collect),
		to(token.SPACE, Emit, Ground),
	},
	URIPath: {
		stay(token.GRAPH, Collect),
		to(token.SPACE, Emit, Ground),
	},
}

// Entry action of each state, applied to the code point causing the transition.
var enter = [numStates]Action{
	Ground:        Reset,
	Word:          Collect,
	WordQuoted:    Begin,
	URIMaybe:      Collect,
	URIEndScheme:  Collect,
	URIPostScheme: Collect,
	URIAuth:       Collect,
	URIPath:       None,
}

// Step returns the first transition of state matching r, quote being the
// code point that opened the current quoted word (if any).
// next is state itself when the transition doesn't change state (no table
// has a transition to its own state), ok is false when nothing matches: the
// scanner is stuck.
func Step(state State, r, quote rune) (action Action, next State, ok bool) {
	for _, tr := range tables[state] {
		var match bool
		if tr.class == token.CLOSEQUOTE {
			match = r == quote
		} else {
			match = tr.class.Match(r)
		}
		if !match {
			continue
		}
		next = state
		if tr.move {
			next = tr.next
		}
		return tr.action, next, true
	}
	return None, state, false
}

// Inserter receives the completed words.
type Inserter interface {
	Insert(word string)
}

// Tracer, when set, is told about every state change and emitted word.
type Tracer interface {
	Transition(from, to State, r rune, word string)
	Word(word string)
}

// ErrStuck is matched (errors.Is) by all StuckError.
var ErrStuck = errors.New("no transition")

// StuckError is returned when no transition of the current state matches.
// Words emitted before that point are valid, the pending one is dropped.
type StuckError struct {
	State  State
	Char   rune
	Offset int // in code points from the start of the scan
}

func (e *StuckError) Error() string {
	return fmt.Sprintf("%v from state %s for %q at offset %d", ErrStuck, e.State, e.Char, e.Offset)
}

func (e *StuckError) Is(target error) bool {
	return target == ErrStuck
}

type Lexer struct {
	out    Inserter
	tracer Tracer
	state  State
	word   strings.Builder
	ch     rune // most recently read code point
	quote  rune // opening quote of the current quoted word
	offset int
}

func New(out Inserter) *Lexer {
	return &Lexer{out: out}
}

func (l *Lexer) SetTracer(t Tracer) {
	l.tracer = t
}

func (l *Lexer) State() State {
	return l.state
}

// Pending is the word accumulated so far and not yet emitted.
func (l *Lexer) Pending() string {
	return l.word.String()
}

func (l *Lexer) apply(a Action) {
	switch a {
	case None:
	case Collect:
		l.word.WriteRune(l.ch)
	case Begin:
		l.word.Reset()
		l.word.WriteRune(l.ch)
	case Reset:
		l.word.Reset()
	case Emit:
		w := l.word.String()
		if w == "" {
			return
		}
		if l.tracer != nil {
			l.tracer.Word(w)
		}
		l.out.Insert(w)
	}
}

// Feed advances the state machine by one code point.
func (l *Lexer) Feed(r rune) error {
	l.ch = r
	action, next, ok := Step(l.state, r, l.quote)
	if !ok {
		return &StuckError{State: l.state, Char: r, Offset: l.offset}
	}
	l.offset++
	l.apply(action)
	if next == l.state {
		return nil
	}
	from := l.state
	l.state = next
	if next == WordQuoted {
		l.quote = r
	}
	l.apply(enter[next])
	if l.tracer != nil {
		l.tracer.Transition(from, next, r, l.word.String())
	}
	return nil
}

// Run feeds every code point of in until io.EOF (not an error) or until the
// machine is stuck. The unfinished word at the end of the input isn't
// emitted: only explicit boundaries complete a word.
func (l *Lexer) Run(in io.RuneReader) error {
	for {
		r, _, err := in.ReadRune()
		if errors.Is(err, io.EOF) {
			log.LogVf("lexer: end of input after %d code points, state %s, dropping %q", l.offset, l.state, l.Pending())
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input at offset %d: %w", l.offset, err)
		}
		if err = l.Feed(r); err != nil {
			return err
		}
	}
}
