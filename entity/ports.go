package entity

import "strings"

// portMachine tokenizes the inside of "PORT ( ... )".
//
// Declarations look like "a, b : in std_logic_vector(7 downto 0);". All
// identifiers of a declaration are committed together, either when the range
// clause closes or at the terminating ';' or ')'.
type portMachine struct {
	b *builder
	tokenizer
}

// feed consumes one byte and reports whether the section has ended.
func (m *portMachine) feed(c byte) bool {
	switch m.state {
	case tokName:
		if m.feedName(c) {
			m.state = tokDirection
		}

	case tokDirection:
		m.feedDirection(c)

	case tokType:
		m.feedType(c)

	case tokBound:
		if m.feedBound(c) {
			m.commit()
			m.state = tokBoundDone
		}

	case tokBoundDone:
		switch c {
		case ';':
			m.state = tokName
		case ')':
			m.state = tokClosed
		case ':':
			m.state = tokAssign
		}

	case tokAssign:
		m.feedAssign(c)

	case tokDefault:
		// Port defaults are read to find the end of the declaration but are
		// not part of the model.
		switch m.feedDefault(c) {
		case ';':
			m.commit()
			m.state = tokName
		case ')':
			m.commit()
			m.state = tokClosed
		}

	case tokClosed:
		if c == ';' {
			return true
		}
	}

	return false
}

func (m *portMachine) feedDirection(c byte) {
	switch {
	case isSpace(c):
		if len(m.buf) > 0 {
			m.resolveDirection()
		}

	case c == '(' || c == ')' || c == ';':
		// Mode omitted, or a one-word type directly followed by punctuation.
		if len(m.buf) > 0 {
			m.resolveDirection()
		}

		m.state = tokType
		m.feedType(c)

	default:
		m.buf = append(m.buf, c)
	}
}

// resolveDirection consumes the buffered mode keyword. An unrecognized word
// yields [DirectionNone] and is kept as the beginning of the type mark.
func (m *portMachine) resolveDirection() {
	word := m.take()

	d, ok := lookupDirection(word)
	m.group.direction = d

	if !ok {
		m.buf = append(m.buf, word...)
		m.spaceType()
	}

	m.state = tokType
}

func (m *portMachine) feedType(c byte) {
	switch {
	case isSpace(c):
		m.spaceType()
	case c == '(':
		m.startBound()
	case c == ')':
		m.group.typ = m.takeType()
		m.commit()
		m.state = tokClosed
	case c == ';':
		m.group.typ = m.takeType()
		m.commit()
		m.state = tokName
	case c == ':':
		m.group.typ = m.takeType()
		m.state = tokAssign
	default:
		m.buf = append(m.buf, c)
	}
}

func (m *portMachine) feedAssign(c byte) {
	switch c {
	case '=':
		m.startDefault()
	case ';':
		m.commit()
		m.state = tokName
	case ')':
		m.commit()
		m.state = tokClosed
	}
}

// commit hands the current group to the builder and starts a new one.
func (m *portMachine) commit() {
	m.b.addPorts(&m.group)
	m.group = group{}
	m.buf = m.buf[:0]
}

// lookupDirection maps a mode keyword to a [Direction]. OUT, BUFFER, LINKAGE
// and INOUT all map to [DirectionOut].
func lookupDirection(word string) (Direction, bool) {
	switch strings.ToUpper(word) {
	case "IN":
		return DirectionIn, true
	case "OUT", "BUFFER", "LINKAGE", "INOUT":
		return DirectionOut, true
	}

	return DirectionNone, false
}
