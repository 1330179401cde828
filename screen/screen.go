// Package screen models terminal content (history plus visible area) as a
// grid of cells and reads it back as a stream of code points, which is what
// the word scanner consumes.
package screen

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Cell is one column of a line.
type Cell struct {
	// UTF-8 content of the cell: one grapheme cluster, empty for a blank cell.
	Data []byte
	// Continuation of a wide glyph started in a previous cell, never read.
	Filler bool
}

type Line struct {
	Cells []Cell
	// Line was soft wrapped: its last cell is directly followed by the first
	// cell of the next line, no newline in between.
	Wrapped bool
}

type Screen struct {
	Lines []Line
}

// NewLine makes a line with one cell per grapheme cluster of text, followed
// by filler cells for double width clusters.
func NewLine(text string, wrapped bool) Line {
	l := Line{Wrapped: wrapped}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		l.Cells = appendCluster(l.Cells, g.Str(), g.Width())
	}
	return l
}

func appendCluster(cells []Cell, cluster string, width int) []Cell {
	cells = append(cells, Cell{Data: []byte(cluster)})
	for range width - 1 {
		cells = append(cells, Cell{Filler: true})
	}
	return cells
}

// Layout is a new screen with text added (see AddText).
func Layout(text string, width int) *Screen {
	s := &Screen{}
	s.AddText(text, width)
	return s
}

// AddText appends text to the screen, one line per newline terminated line
// of text, soft wrapping lines longer than width columns (no wrapping when
// width <= 0). A final empty line (text ending with a newline) isn't added
// and \r before newlines is dropped.
func (s *Screen) AddText(text string, width int) {
	if text == "" {
		return
	}
	text = strings.TrimSuffix(text, "\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		s.addLine(line, width)
	}
}

func (s *Screen) addLine(text string, width int) {
	cur := Line{}
	col := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := max(g.Width(), 1)
		if width > 0 && col > 0 && col+w > width {
			cur.Wrapped = true
			s.Lines = append(s.Lines, cur)
			cur = Line{}
			col = 0
		}
		cur.Cells = appendCluster(cur.Cells, g.Str(), w)
		col += w
	}
	s.Lines = append(s.Lines, cur)
}

// Tail is the screen restricted to its last n lines, n <= 0 meaning all.
func (s *Screen) Tail(n int) *Screen {
	if n <= 0 || n >= len(s.Lines) {
		return s
	}
	return &Screen{Lines: s.Lines[len(s.Lines)-n:]}
}

// Text of line row up to (excluding) cell column col, col < 0 for the whole
// line. This is what's left of the cursor when the cursor is at row, col.
func (s *Screen) Text(row, col int) string {
	if row < 0 || row >= len(s.Lines) {
		return ""
	}
	cells := s.Lines[row].Cells
	if col >= 0 && col < len(cells) {
		cells = cells[:col]
	}
	var sb strings.Builder
	var buf []rune
	for _, c := range cells {
		if c.Filler {
			continue
		}
		buf = decode(c.Data, buf[:0])
		for _, r := range buf {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// String is the whole content as the Reader sees it.
func (s *Screen) String() string {
	var sb strings.Builder
	rd := s.Reader()
	for {
		r, _, err := rd.ReadRune()
		if err != nil {
			return sb.String()
		}
		sb.WriteRune(r)
	}
}

func (s *Screen) Reader() *Reader {
	return &Reader{screen: s}
}

// decode appends the code points of a cell to buf: a space for a blank cell,
// a single replacement character when the cell isn't valid UTF-8.
func decode(data []byte, buf []rune) []rune {
	if len(data) == 0 {
		return append(buf, ' ')
	}
	if !utf8.Valid(data) {
		return append(buf, utf8.RuneError)
	}
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		buf = append(buf, r)
		data = data[size:]
	}
	return buf
}

// Reader reads a Screen left to right, top to bottom. It implements
// io.RuneReader. A newline is produced at the end of each line that isn't
// soft wrapped, filler cells are skipped.
type Reader struct {
	screen  *Screen
	row     int
	col     int
	pending []rune
}

func (rd *Reader) ReadRune() (rune, int, error) {
	for {
		if len(rd.pending) > 0 {
			r := rd.pending[0]
			rd.pending = rd.pending[1:]
			return r, utf8.RuneLen(r), nil
		}
		if rd.row >= len(rd.screen.Lines) {
			return 0, 0, io.EOF
		}
		line := &rd.screen.Lines[rd.row]
		if rd.col >= len(line.Cells) {
			rd.row++
			rd.col = 0
			if !line.Wrapped {
				return '\n', 1, nil
			}
			continue
		}
		c := line.Cells[rd.col]
		rd.col++
		if c.Filler {
			continue
		}
		rd.pending = decode(c.Data, rd.pending[:0])
	}
}
