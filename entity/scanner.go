package entity

// Byte classes used by the state machines.

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}

// commentFilter strips "--" line comments from the byte stream.
//
// A single '-' is held back until the next byte shows whether it starts a
// comment. Inside a vector bound a '-' is always arithmetic ("N-1") and is
// never held.
type commentFilter struct {
	dash    bool // a '-' is being held back
	comment bool // inside a line comment
}

// filter classifies c. forward reports whether c reaches the tokenizer;
// flushDash reports that a held '-' turned out not to start a comment and must
// be delivered before c.
func (f *commentFilter) filter(c byte, inBound bool) (forward, flushDash bool) {
	if f.comment {
		if c == '\n' {
			f.comment = false

			return true, false
		}

		return false, false
	}

	if f.dash {
		f.dash = false

		if c == '-' {
			f.comment = true

			return false, false
		}

		return true, true
	}

	if c == '-' && !inBound {
		f.dash = true

		return false, false
	}

	return true, false
}

// keywordMatcher performs an incremental, case-insensitive prefix match of a
// keyword over a byte stream.
type keywordMatcher struct {
	keyword string
	n       int
}

func newKeywordMatcher(keyword string) keywordMatcher {
	return keywordMatcher{keyword: keyword}
}

// feed advances the match with c and reports whether the keyword has just
// been completed. The matcher resets itself after a match.
func (m *keywordMatcher) feed(c byte) bool {
	c = toUpper(c)

	if c != m.keyword[m.n] {
		m.n = 0
		if c != m.keyword[0] {
			return false
		}
	}

	m.n++
	if m.n == len(m.keyword) {
		m.n = 0

		return true
	}

	return false
}

func (m *keywordMatcher) reset() {
	m.n = 0
}
