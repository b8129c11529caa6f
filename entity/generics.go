package entity

// genericMachine tokenizes the inside of "GENERIC ( ... )".
//
// The grammar is the port grammar without a mode and with an optional
// ":= <default>" clause: "WIDTH, DEPTH : integer := 8;". The default text is
// kept verbatim and shared by every identifier of the declaration.
type genericMachine struct {
	b *builder
	tokenizer
}

// feed consumes one byte and reports whether the section has ended.
func (m *genericMachine) feed(c byte) bool {
	switch m.state {
	case tokName:
		if m.feedName(c) {
			m.state = tokType
		}

	case tokType:
		m.feedType(c)

	case tokBound:
		if m.feedBound(c) {
			m.state = tokBoundDone
		}

	case tokBoundDone, tokAssign:
		switch c {
		case ':':
			m.state = tokAssign
		case '=':
			if m.state == tokAssign {
				m.startDefault()
			}
		case ';':
			m.commit()
			m.state = tokName
		case ')':
			m.commit()
			m.state = tokClosed
		}

	case tokDefault:
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

	case tokDirection:
		// Generics carry no mode.
		m.state = tokType
		m.feedType(c)
	}

	return false
}

func (m *genericMachine) feedType(c byte) {
	switch {
	case isSpace(c):
		m.spaceType()
	case c == '(':
		m.startBound()
	case c == ':':
		m.group.typ = m.takeType()
		m.state = tokAssign
	case c == ';':
		m.group.typ = m.takeType()
		m.commit()
		m.state = tokName
	case c == ')':
		m.group.typ = m.takeType()
		m.commit()
		m.state = tokClosed
	default:
		m.buf = append(m.buf, c)
	}
}

// commit hands the current group to the builder and starts a new one.
func (m *genericMachine) commit() {
	m.b.addGenerics(&m.group)
	m.group = group{}
	m.buf = m.buf[:0]
}
