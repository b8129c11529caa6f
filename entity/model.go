package entity

import (
	"fmt"
	"slices"
)

// Direction is the mode of a port.
type Direction int

// Port directions. OUT, INOUT, BUFFER and LINKAGE all map to [DirectionOut].
const (
	DirectionNone Direction = iota
	DirectionIn
	DirectionOut
)

var directionLabels = [...]string{"NONE", "IN", "OUT"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionLabels) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return directionLabels[d]
}

// MarshalText implements [encoding.TextMarshaler].
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// VectorKind tells whether a signal is a scalar or a bus, and whether the bus
// width is known.
type VectorKind int

const (
	// VectorNone marks a scalar signal.
	VectorNone VectorKind = iota
	// VectorFixed marks a bus whose bounds are both literal integers.
	VectorFixed
	// VectorSymbolic marks a bus with at least one non-literal bound.
	VectorSymbolic
)

func (k VectorKind) String() string {
	switch k {
	case VectorNone:
		return "none"
	case VectorFixed:
		return "fixed"
	case VectorSymbolic:
		return "symbolic"
	}

	return fmt.Sprintf("VectorKind(%d)", int(k))
}

// MarshalText implements [encoding.TextMarshaler].
func (k VectorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Vector describes the range clause of a bus signal. The zero value is a
// scalar.
type Vector struct {
	// Start and End hold the raw bound text, e.g. "WIDTH-1" and "0".
	Start string `json:"start,omitempty" yaml:"start,omitempty"`
	End   string `json:"end,omitempty"   yaml:"end,omitempty"`
	// Display is the decimal length of a fixed vector, or the matched generic
	// name (falling back to the raw non-numeric bound) of a symbolic one.
	Display string     `json:"display,omitempty" yaml:"display,omitempty"`
	Kind    VectorKind `json:"kind"              yaml:"kind"`
	// Length is |End-Start|+1 for fixed vectors, saturated at the largest
	// int, and 0 otherwise. Display always holds the exact value.
	Length int `json:"length,omitempty" yaml:"length,omitempty"`
}

// IsBus reports whether v describes a multi-bit signal.
func (v Vector) IsBus() bool {
	return v.Kind != VectorNone
}

// rawDisplay returns the bound used as a symbolic vector's display string when
// no generic matches: whichever bound is not a number, start first.
func (v Vector) rawDisplay() string {
	if v.Kind == VectorFixed {
		return v.Display
	}

	if v.Start != "" {
		if isDigit(v.Start[0]) {
			return v.End
		}

		return v.Start
	}

	return v.End
}

// Port is a single entity port.
type Port struct {
	Name        string    `json:"name"          yaml:"name"`
	Type        string    `json:"type"          yaml:"type"`
	Vector      Vector    `json:"vector"        yaml:"vector"`
	Direction   Direction `json:"direction"     yaml:"direction"`
	IsClock     bool      `json:"isClock"       yaml:"isClock"`
	IsReset     bool      `json:"isReset"       yaml:"isReset"`
	IsLowActive bool      `json:"isLowActive"   yaml:"isLowActive"`
}

// VectorString returns the bus width annotation of p, or an empty string for
// scalar ports.
func (p Port) VectorString() string {
	if !p.Vector.IsBus() {
		return ""
	}

	return p.Vector.Display
}

// Generic is a single entity generic parameter.
type Generic struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	// Default holds the unevaluated default expression, or "".
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
	Vector  Vector `json:"vector"            yaml:"vector"`
}

// String formats g as "name[len] = default" or "name[start:end] = default".
func (g Generic) String() string {
	s := g.Name

	switch g.Vector.Kind {
	case VectorFixed:
		s += "[" + g.Vector.Display + "]"
	case VectorSymbolic:
		s += "[" + g.Vector.Start + ":" + g.Vector.End + "]"
	case VectorNone:
	}

	if g.Default != "" {
		s += " = " + g.Default
	}

	return s
}

// Entity is a parsed entity declaration.
//
// An Entity is only built by [Parser.Parse] and is read-only afterwards:
// accessors return copies.
type Entity struct {
	name       string
	label      string
	ports      []Port
	generics   []Generic
	clockIndex int
	resetIndex int
}

func newEntity() *Entity {
	return &Entity{clockIndex: -1, resetIndex: -1}
}

// Name returns the entity name, or "" if no ENTITY keyword was found.
func (e *Entity) Name() string {
	return e.name
}

// Label returns the optional label attached by the caller's configuration.
func (e *Entity) Label() string {
	return e.label
}

// Ports returns the ports in declaration order.
func (e *Entity) Ports() []Port {
	return slices.Clone(e.ports)
}

// Generics returns the generics in declaration order.
func (e *Entity) Generics() []Generic {
	return slices.Clone(e.generics)
}

// ClockIndex returns the index of the clock port in [Entity.Ports], or -1.
func (e *Entity) ClockIndex() int {
	return e.clockIndex
}

// ResetIndex returns the index of the reset port in [Entity.Ports], or -1.
func (e *Entity) ResetIndex() int {
	return e.resetIndex
}

// ClockPort returns the clock port, if any.
func (e *Entity) ClockPort() (Port, bool) {
	if e.clockIndex < 0 {
		return Port{}, false
	}

	return e.ports[e.clockIndex], true
}

// ResetPort returns the reset port, if any.
func (e *Entity) ResetPort() (Port, bool) {
	if e.resetIndex < 0 {
		return Port{}, false
	}

	return e.ports[e.resetIndex], true
}

// Inputs returns the number of ports with [DirectionIn].
func (e *Entity) Inputs() int {
	return e.count(DirectionIn)
}

// Outputs returns the number of ports with [DirectionOut].
func (e *Entity) Outputs() int {
	return e.count(DirectionOut)
}

func (e *Entity) count(d Direction) int {
	n := 0

	for _, p := range e.ports {
		if p.Direction == d {
			n++
		}
	}

	return n
}

// IsEmpty reports whether the declaration yielded neither ports nor
// generics. Parsing never fails, so this is how callers detect unusable input.
func (e *Entity) IsEmpty() bool {
	return len(e.ports) == 0 && len(e.generics) == 0
}

// Summary is a compact description of an [Entity], suitable for logging.
type Summary struct {
	Name     string
	Inputs   int
	Outputs  int
	Generics int
	Clock    bool
	Reset    bool
}

// Summary returns counts describing e.
func (e *Entity) Summary() Summary {
	return Summary{
		Name:     e.name,
		Inputs:   e.Inputs(),
		Outputs:  e.Outputs(),
		Generics: len(e.generics),
		Clock:    e.clockIndex >= 0,
		Reset:    e.resetIndex >= 0,
	}
}

// Model is the serializable form of an [Entity].
type Model struct {
	Name       string    `json:"name"                yaml:"name"`
	Label      string    `json:"label,omitempty"     yaml:"label,omitempty"`
	Ports      []Port    `json:"ports"               yaml:"ports"`
	Generics   []Generic `json:"generics"            yaml:"generics"`
	ClockIndex int       `json:"clockIndex"          yaml:"clockIndex"`
	ResetIndex int       `json:"resetIndex"          yaml:"resetIndex"`
}

// Model returns a serializable snapshot of e.
func (e *Entity) Model() Model {
	ports := e.Ports()
	if ports == nil {
		ports = []Port{}
	}

	generics := e.Generics()
	if generics == nil {
		generics = []Generic{}
	}

	return Model{
		Name:       e.name,
		Label:      e.label,
		Ports:      ports,
		Generics:   generics,
		ClockIndex: e.clockIndex,
		ResetIndex: e.resetIndex,
	}
}
