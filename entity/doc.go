// Package entity extracts the interface of a VHDL entity declaration: its
// name, ports, generics, bus widths, clock and reset ports, and signal
// polarity.
//
// Only the declaration is understood. The input may contain anything else
// (library clauses, architectures, comments), but only the first ENTITY
// keyword is honored and scanning stops at its END.
//
//	p := entity.NewParser(entity.WithClockName("clk"))
//	e := p.Parse(src)
//	for _, port := range e.Ports() {
//	    fmt.Println(port.Name, port.Direction, port.VectorString())
//	}
//
// # Scanning
//
// [Parser.Parse] is a single left-to-right pass over the bytes of the
// source, built from two composed state machines:
//
//   - The structural machine looks for ENTITY, the entity name, and the
//     PORT, GENERIC and END keywords. Keywords are matched incrementally
//     and case-insensitively. PORT and GENERIC may appear in either order,
//     each at most once.
//   - Inside a section, a token machine splits the declarations into
//     identifier lists, modes, type marks, range clauses and (for
//     generics) default values. "a, b : in bit;" yields two ports.
//
// "--" line comments are removed before either machine sees the input.
// Inside a range clause a '-' is always a minus sign, so "N-1 downto 0"
// survives intact.
//
// # Vectors
//
// A range clause with two literal bounds gives a [VectorFixed] vector of
// known length. Any other bound gives a [VectorSymbolic] vector. After the
// scan, symbolic bounds are matched against the declared generic names, and
// the best match becomes [Vector.Display]: "WIDTH-1 downto 0" displays as
// "WIDTH" if a generic WIDTH exists. Names are compared case-sensitively,
// and a match must not run into a longer identifier. Expressions are never
// evaluated. Literal bounds of any size stay fixed; [Vector.Length] saturates
// while [Vector.Display] keeps the exact count.
//
// # Classification
//
// A port whose name equals the configured clock (or reset) name becomes the
// clock (or reset) port; only the first such port is marked. A name
// containing the configured LOW-active suffix is LOW-active, even when it
// also contains the HIGH-active suffix. The suffix test is a substring test,
// not anchored at the end of the name.
//
// The modes OUT, INOUT, BUFFER and LINKAGE are all reported as
// [DirectionOut].
//
// # Errors
//
// Parsing does not fail. Truncated or malformed input yields whatever was
// committed before the problem; [Entity.IsEmpty] reports input without any
// declaration. The only diagnostic is a warning, logged through the
// configured [slog.Logger], for symbolic bounds that match no generic.
package entity
