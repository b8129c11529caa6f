package entity

import (
	"fmt"
	"strings"
)

// tokState is the state of a section token machine.
type tokState int

const (
	// tokName reads a comma-separated list of identifiers.
	tokName tokState = iota
	// tokDirection reads the port mode keyword after ':'.
	tokDirection
	// tokType reads the type mark.
	tokType
	// tokBound reads the raw text of a range clause up to its closing ')'.
	tokBound
	// tokBoundDone follows the closing ')' of a range clause.
	tokBoundDone
	// tokAssign follows the ':' of a ":=" default clause.
	tokAssign
	// tokDefault reads a default expression.
	tokDefault
	// tokClosed follows the ')' closing the section.
	tokClosed
)

var tokStateNames = [...]string{
	"name", "direction", "type", "bound", "bound-done", "assign", "default", "closed",
}

func (s tokState) String() string {
	if s < 0 || int(s) >= len(tokStateNames) {
		return fmt.Sprintf("tokState(%d)", int(s))
	}

	return tokStateNames[s]
}

// group collects one declaration line: identifiers sharing a single
// direction, type, range and default.
type group struct {
	names     []string
	typ       string
	def       string
	vec       Vector
	direction Direction
}

// tokenizer holds the state shared by the port and generic machines.
type tokenizer struct {
	buf   []byte
	group group
	state tokState
	depth int  // parenthesis depth inside a range or default clause
	quote bool // inside a string literal of a default clause
}

func (t *tokenizer) reset() {
	t.buf = t.buf[:0]
	t.group = group{}
	t.state = tokName
	t.depth = 0
	t.quote = false
}

// take returns the buffered text and clears the buffer.
func (t *tokenizer) take() string {
	s := string(t.buf)
	t.buf = t.buf[:0]

	return s
}

func (t *tokenizer) inBound() bool {
	return t.state == tokBound
}

// pushName moves a buffered identifier to the current group.
func (t *tokenizer) pushName() {
	if len(t.buf) > 0 {
		t.group.names = append(t.group.names, t.take())
	}
}

// feedName handles a byte in [tokName] and reports whether the ':' ending
// the identifier list was seen.
func (t *tokenizer) feedName(c byte) bool {
	switch {
	case isSpace(c):
	case c == ',':
		t.pushName()
	case c == ':':
		t.pushName()

		return len(t.group.names) > 0
	case c == ')':
		// "PORT ( );" or a trailing ';' before the closing parenthesis.
		t.buf = t.buf[:0]
		t.group = group{}
		t.state = tokClosed
	case c == ';':
		t.buf = t.buf[:0]
	default:
		t.buf = append(t.buf, c)
	}

	return false
}

// feedBound handles a byte in [tokBound] and reports whether the range
// clause has been closed, in which case t.group.vec holds the result.
func (t *tokenizer) feedBound(c byte) bool {
	switch c {
	case '(':
		t.depth++
	case ')':
		t.depth--
		if t.depth == 0 {
			t.group.vec = ResolveVector(t.take())

			return true
		}
	}

	t.buf = append(t.buf, c)

	return false
}

// feedDefault handles a byte in [tokDefault]. It reports the byte that ended
// the expression (';' or the section's ')'), or 0 while still reading.
func (t *tokenizer) feedDefault(c byte) byte {
	if t.quote {
		if c == '"' {
			t.quote = false
		}

		t.buf = append(t.buf, c)

		return 0
	}

	switch c {
	case '"':
		t.quote = true
	case '(':
		t.depth++
	case ')':
		if t.depth == 0 {
			t.group.def = strings.TrimSpace(t.take())

			return c
		}

		t.depth--
	case ';':
		if t.depth == 0 {
			t.group.def = strings.TrimSpace(t.take())

			return c
		}
	}

	t.buf = append(t.buf, c)

	return 0
}

// spaceType records a word break inside a type mark, so that
// "integer range 0 to 7" keeps its spacing.
func (t *tokenizer) spaceType() {
	if n := len(t.buf); n > 0 && t.buf[n-1] != ' ' {
		t.buf = append(t.buf, ' ')
	}
}

func (t *tokenizer) takeType() string {
	return strings.TrimSpace(t.take())
}

// startBound ends the type mark at an opening parenthesis.
func (t *tokenizer) startBound() {
	t.group.typ = t.takeType()
	t.depth = 1
	t.state = tokBound
}

// startDefault enters [tokDefault] after ":=".
func (t *tokenizer) startDefault() {
	t.buf = t.buf[:0]
	t.depth = 0
	t.quote = false
	t.state = tokDefault
}
