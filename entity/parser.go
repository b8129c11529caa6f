package entity

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// ErrReadInput indicates the source file could not be read.
var ErrReadInput = errors.New("read input")

// Defaults for the port classification settings.
const (
	DefaultClockName        = "clk_i"
	DefaultResetName        = "rst_ni"
	DefaultHighActiveSuffix = "_pi"
	DefaultLowActiveSuffix  = "_ni"
)

// Parser extracts an [Entity] from VHDL source text.
//
// A Parser holds only configuration and may be used concurrently. Create
// instances with [NewParser].
type Parser struct {
	logger *slog.Logger
	label  string
	cls    classifier
}

// Option configures a [Parser].
type Option func(*Parser)

// NewParser creates a [Parser] with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		cls: classifier{
			clockName:  DefaultClockName,
			resetName:  DefaultResetName,
			highSuffix: DefaultHighActiveSuffix,
			lowSuffix:  DefaultLowActiveSuffix,
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithClockName sets the exact name identifying the clock port.
func WithClockName(name string) Option {
	return func(p *Parser) {
		p.cls.clockName = name
	}
}

// WithResetName sets the exact name identifying the reset port.
func WithResetName(name string) Option {
	return func(p *Parser) {
		p.cls.resetName = name
	}
}

// WithHighActiveSuffix sets the substring marking an active-high signal.
func WithHighActiveSuffix(suffix string) Option {
	return func(p *Parser) {
		p.cls.highSuffix = suffix
	}
}

// WithLowActiveSuffix sets the substring marking an active-low signal.
func WithLowActiveSuffix(suffix string) Option {
	return func(p *Parser) {
		p.cls.lowSuffix = suffix
	}
}

// WithLabel attaches a label to parsed entities.
func WithLabel(label string) Option {
	return func(p *Parser) {
		p.label = label
	}
}

// WithLogger sets the logger used for diagnostics. Defaults to
// [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// ParseFile reads path and parses it with [Parser.Parse].
func (p *Parser) ParseFile(path string) (*Entity, error) {
	src, err := os.ReadFile(path) //nolint:gosec // Source path from CLI argument is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return p.Parse(src), nil
}

// Parse scans src for the first entity declaration and returns what it
// found. Parsing never fails: malformed or truncated input stops the scan and
// keeps every port and generic committed so far. Use [Entity.IsEmpty] to
// detect input without declarations.
func (p *Parser) Parse(src []byte) *Entity {
	logger := p.logger
	if logger == nil {
		logger = slog.Default()
	}

	e := newEntity()
	e.label = p.label

	s := newScan(&builder{entity: e, cls: p.cls})
	s.run(src)

	e.matchGenerics(logger)

	logger.Debug("parsed entity",
		slog.String("entity", e.name),
		slog.Int("ports", len(e.ports)),
		slog.Int("generics", len(e.generics)),
		slog.String("state", s.state.String()),
	)

	return e
}

// structState is the state of the structural machine.
type structState int

const (
	stateSearchEntity structState = iota
	stateSearchEntityName
	stateSearchSection
	stateSearchParen
	statePortSection
	stateGenericSection
	stateDone
)

var structStateNames = [...]string{
	"search-entity", "search-entity-name", "search-section", "search-paren",
	"port-section", "generic-section", "done",
}

func (s structState) String() string {
	if s < 0 || int(s) >= len(structStateNames) {
		return fmt.Sprintf("structState(%d)", int(s))
	}

	return structStateNames[s]
}

// scan is the context of a single [Parser.Parse] call: the structural
// machine, the section token machines it dispatches to, and the comment
// filter in front of both.
type scan struct {
	b        *builder
	name     []byte
	ports    portMachine
	generics genericMachine
	filter   commentFilter

	entityKW  keywordMatcher
	portKW    keywordMatcher
	genericKW keywordMatcher
	endKW     keywordMatcher

	state       structState
	next        structState // section entered at the next '('
	portDone    bool
	genericDone bool
}

func newScan(b *builder) *scan {
	s := &scan{
		b:         b,
		entityKW:  newKeywordMatcher("ENTITY"),
		portKW:    newKeywordMatcher("PORT"),
		genericKW: newKeywordMatcher("GENERIC"),
		endKW:     newKeywordMatcher("END"),
		state:     stateSearchEntity,
	}
	s.ports.b = b
	s.generics.b = b

	return s
}

func (s *scan) run(src []byte) {
	for _, c := range src {
		if s.state == stateDone {
			return
		}

		forward, flushDash := s.filter.filter(c, s.inBound())

		if flushDash {
			s.step('-')

			if s.state == stateDone {
				return
			}
		}

		if forward {
			s.step(c)
		}
	}
}

// inBound reports whether the active token machine is inside a range clause.
func (s *scan) inBound() bool {
	switch s.state {
	case statePortSection:
		return s.ports.inBound()
	case stateGenericSection:
		return s.generics.inBound()
	}

	return false
}

// step is the transition function of the structural machine.
func (s *scan) step(c byte) {
	switch s.state {
	case stateSearchEntity:
		if s.entityKW.feed(c) {
			s.state = stateSearchEntityName
		}

	case stateSearchEntityName:
		if !isSpace(c) {
			s.name = append(s.name, c)

			return
		}

		if len(s.name) > 0 {
			s.b.setName(string(s.name))
			s.enterSearchSection()
		}

	case stateSearchSection:
		s.searchSection(c)

	case stateSearchParen:
		if c != '(' {
			return
		}

		s.state = s.next
		if s.state == statePortSection {
			s.ports.reset()
		} else {
			s.generics.reset()
		}

	case statePortSection:
		if s.ports.feed(c) {
			s.enterSearchSection()
		}

	case stateGenericSection:
		if s.generics.feed(c) {
			s.enterSearchSection()
		}

	case stateDone:
	}
}

func (s *scan) enterSearchSection() {
	if s.portDone && s.genericDone {
		s.state = stateDone

		return
	}

	s.portKW.reset()
	s.genericKW.reset()
	s.endKW.reset()
	s.state = stateSearchSection
}

// searchSection tracks PORT, GENERIC and END independently. PORT and
// GENERIC are each honored once.
func (s *scan) searchSection(c byte) {
	if !s.portDone && s.portKW.feed(c) {
		s.portDone = true
		s.next = statePortSection
		s.state = stateSearchParen

		return
	}

	if !s.genericDone && s.genericKW.feed(c) {
		s.genericDone = true
		s.next = stateGenericSection
		s.state = stateSearchParen

		return
	}

	if s.endKW.feed(c) {
		s.state = stateDone
	}
}
