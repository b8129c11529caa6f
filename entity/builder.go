package entity

import "strings"

// classifier decides the special roles of a port from its name.
type classifier struct {
	clockName  string
	resetName  string
	highSuffix string
	lowSuffix  string
}

// lowActive reports the polarity of name. The HIGH suffix is checked first
// and the LOW suffix second, so a name containing both is LOW-active. Both
// checks are substring tests anywhere in the name.
func (c classifier) lowActive(name string) bool {
	low := false

	if c.highSuffix != "" && strings.Contains(name, c.highSuffix) {
		low = false
	}

	if c.lowSuffix != "" && strings.Contains(name, c.lowSuffix) {
		low = true
	}

	return low
}

// builder appends committed declarations to the entity under construction.
type builder struct {
	entity *Entity
	cls    classifier
}

func (b *builder) setName(name string) {
	b.entity.name = name
}

func (b *builder) addPorts(g *group) {
	for _, name := range g.names {
		p := Port{
			Name:        name,
			Type:        g.typ,
			Direction:   g.direction,
			Vector:      g.vec,
			IsLowActive: b.cls.lowActive(name),
		}

		idx := len(b.entity.ports)

		if b.entity.clockIndex < 0 && name == b.cls.clockName {
			p.IsClock = true
			b.entity.clockIndex = idx
		}

		if b.entity.resetIndex < 0 && name == b.cls.resetName {
			p.IsReset = true
			b.entity.resetIndex = idx
		}

		b.entity.ports = append(b.entity.ports, p)
	}
}

func (b *builder) addGenerics(g *group) {
	for _, name := range g.names {
		b.entity.generics = append(b.entity.generics, Generic{
			Name:    name,
			Type:    g.typ,
			Default: g.def,
			Vector:  g.vec,
		})
	}
}
