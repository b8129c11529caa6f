package entity

import (
	"math"
	"math/big"
	"strings"
)

// ResolveVector turns the text between the parentheses of a range clause,
// e.g. "7 downto 0" or "WIDTH-1 downto 0", into a [Vector].
//
// Both bounds made of decimal digits give a [VectorFixed] vector. Anything
// else gives a [VectorSymbolic] vector whose Display falls back to the raw
// non-numeric bound until [Parser.Parse] matches it against a generic.
// Bound expressions are kept as text and never evaluated.
func ResolveVector(raw string) Vector {
	start, end := splitRange(raw)

	if isNumber(start) && isNumber(end) {
		return fixedVector(start, end)
	}

	v := Vector{
		Kind:  VectorSymbolic,
		Start: start,
		End:   end,
	}
	v.Display = v.rawDisplay()

	return v
}

// fixedVector builds a [VectorFixed] vector from two decimal bounds. Bounds of
// any size are accepted; the length is computed exactly for Display.
func fixedVector(start, end string) Vector {
	var s, e big.Int

	s.SetString(start, 10)
	e.SetString(end, 10)

	n := new(big.Int).Sub(&e, &s)
	n.Abs(n).Add(n, big.NewInt(1))

	length := math.MaxInt
	if n.IsInt64() && n.Int64() <= math.MaxInt {
		length = int(n.Int64())
	}

	return Vector{
		Kind:    VectorFixed,
		Start:   start,
		End:     end,
		Length:  length,
		Display: n.String(),
	}
}

// splitRange splits "<bound> <separator> <bound>". The separator keyword is
// discarded without validation when there are exactly three fields.
func splitRange(raw string) (string, string) {
	fields := strings.Fields(raw)

	switch len(fields) {
	case 0:
		return "", ""
	case 3:
		return fields[0], fields[2]
	}

	for i, f := range fields {
		if isRangeSeparator(f) {
			return strings.Join(fields[:i], " "), strings.Join(fields[i+1:], " ")
		}
	}

	return strings.Join(fields, " "), ""
}

func isRangeSeparator(s string) bool {
	return strings.EqualFold(s, "downto") || strings.EqualFold(s, "to")
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		if !isDigit(s[i]) {
			return false
		}
	}

	return true
}
