// Package symbol draws block symbols of VHDL entities as PNG images.
//
// Inputs (and ports without a direction) are placed on the left side of the
// body and outputs on the right, in declaration order. Bus ports are drawn
// with a thick wire and a slash labeled with the bus width, low-active ports
// get an inversion bubble and the clock port gets a triangle marker. When
// enabled, the generics are listed in a panel above the body.
package symbol
