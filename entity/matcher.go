package entity

import (
	"log/slog"
	"strings"
)

// matchGenerics binds the symbolic bounds of every bus port to the generic
// they are expressed in, e.g. "WIDTH-1 downto 0" displays as "WIDTH".
//
// The longest matching generic wins; among equally long names the first
// declared one wins. Ports whose bounds match no generic keep the raw bound
// text and are reported at warn level. The result depends only on the bounds
// and the generic names, so running it again changes nothing.
func (e *Entity) matchGenerics(logger *slog.Logger) {
	for i := range e.ports {
		v := &e.ports[i].Vector
		if v.Kind != VectorSymbolic {
			continue
		}

		v.Display = v.rawDisplay()

		best := 0

		for _, g := range e.generics {
			if len(g.Name) <= best {
				continue
			}

			if containsIdent(v.Start, g.Name) || containsIdent(v.End, g.Name) {
				best = len(g.Name)
				v.Display = g.Name
			}
		}

		if best == 0 {
			logger.Warn("no matching generic for vector bound, using raw input",
				slog.String("port", e.ports[i].Name),
				slog.String("start", v.Start),
				slog.String("end", v.End),
			)
		}
	}
}

// containsIdent reports whether name occurs in expr and is not followed by
// another identifier byte. Only the end of the match is checked: "WIDTH" is
// found in "NWIDTH-1" but not in "WIDTH_2-1". Case matters.
func containsIdent(expr, name string) bool {
	if name == "" {
		return false
	}

	for off := 0; off <= len(expr)-len(name); {
		i := strings.Index(expr[off:], name)
		if i < 0 {
			return false
		}

		end := off + i + len(name)
		if end == len(expr) || !isIdentByte(expr[end]) {
			return true
		}

		off += i + 1
	}

	return false
}
