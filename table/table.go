package table

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"go.jacobcolvin.com/vec/entity"
)

// ErrUnknownFormat indicates an unrecognized table format name.
var ErrUnknownFormat = errors.New("unknown table format")

// Format is a table markup dialect.
type Format string

const (
	// FormatMarkdown emits GitHub-flavored Markdown pipe tables.
	FormatMarkdown Format = "markdown"
	// FormatDokuWiki emits DokuWiki tables with "^" heading cells.
	FormatDokuWiki Format = "dokuwiki"
)

// ParseFormat parses a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatMarkdown, FormatDokuWiki:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// GetAllFormatStrings returns the names of all formats.
func GetAllFormatStrings() []string {
	return []string{string(FormatMarkdown), string(FormatDokuWiki)}
}

// Extension returns the file extension used for f, without the dot.
func (f Format) Extension() string {
	if f == FormatDokuWiki {
		return "txt"
	}

	return "md"
}

// Renderer writes port and generic tables of an [entity.Entity].
//
// Create instances with [NewRenderer].
type Renderer struct {
	opts   Options
	format Format
}

// NewRenderer creates a [Renderer] for the given format.
func NewRenderer(format Format, opts Options) (*Renderer, error) {
	f, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}

	return &Renderer{format: f, opts: opts}, nil
}

// column is one table column: its heading and one cell per row.
type column struct {
	heading  string
	cells    []string
	centered bool
}

// Render writes the port table, followed by the generic table when
// generics are exported and the entity has any.
func (r *Renderer) Render(w io.Writer, e *entity.Entity) error {
	_, err := io.WriteString(w, r.String(e))
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

// String returns what [Renderer.Render] writes.
func (r *Renderer) String(e *entity.Entity) string {
	var sb strings.Builder

	r.write(&sb, r.portColumns(e.Ports()))

	generics := e.Generics()
	if r.opts.ExportGenerics && len(generics) > 0 {
		sb.WriteByte('\n')
		r.write(&sb, r.genericColumns(generics))
	}

	return sb.String()
}

func (r *Renderer) portColumns(ports []entity.Port) []column {
	o := r.opts
	showType := o.ExportType && !o.CombineNameAndType

	name := column{heading: o.Headings.Name, centered: o.Centered.Name}
	typ := column{heading: o.Headings.Type, centered: o.Centered.Type}
	dir := column{heading: o.Headings.Direction, centered: o.Centered.Direction}
	pol := column{heading: o.Headings.Polarity, centered: o.Centered.Polarity}
	desc := column{heading: o.Headings.Description, centered: o.Centered.Description}

	for _, p := range ports {
		width := ""
		if o.ShowArrayLength && p.Vector.IsBus() {
			width = r.bracket(p.Vector)
		}

		if o.CombineNameAndType {
			name.cells = append(name.cells, p.Name+width)
		} else {
			name.cells = append(name.cells, p.Name)
		}

		typ.cells = append(typ.cells, p.Type+width)
		dir.cells = append(dir.cells, r.direction(p.Direction))
		pol.cells = append(pol.cells, r.polarity(p.IsLowActive))
		desc.cells = append(desc.cells, "")
	}

	cols := []column{name}
	if showType {
		cols = append(cols, typ)
	}

	if o.ExportDirection {
		cols = append(cols, dir)
	}

	if o.ExportPolarity {
		cols = append(cols, pol)
	}

	if o.ExportDescription {
		cols = append(cols, desc)
	}

	return cols
}

func (r *Renderer) genericColumns(generics []entity.Generic) []column {
	o := r.opts

	name := column{heading: o.Headings.GenericName, centered: o.Centered.GenericName}
	typ := column{heading: o.Headings.GenericType, centered: o.Centered.GenericType}
	def := column{heading: o.Headings.GenericDefault, centered: o.Centered.GenericDefault}

	for _, g := range generics {
		t := g.Type
		if o.ShowArrayLength && g.Vector.IsBus() {
			t += r.bracket(g.Vector)
		}

		name.cells = append(name.cells, g.Name)
		typ.cells = append(typ.cells, t)
		def.cells = append(def.cells, g.Default)
	}

	return []column{name, typ, def}
}

// bracket formats a bus width as "[8]" or "[7:0]".
func (r *Renderer) bracket(v entity.Vector) string {
	if r.opts.ArrayNotation {
		return "[" + v.Display + "]"
	}

	return "[" + v.Start + ":" + v.End + "]"
}

func (r *Renderer) direction(d entity.Direction) string {
	c := r.opts.Captions

	switch d {
	case entity.DirectionIn:
		return c.In
	case entity.DirectionOut:
		return c.Out
	case entity.DirectionNone:
	}

	return ""
}

func (r *Renderer) polarity(low bool) string {
	if low {
		return r.opts.Captions.LowActive
	}

	return r.opts.Captions.HighActive
}

func (r *Renderer) heading(s string) string {
	if r.opts.BoldHeadings && s != "" {
		return "**" + s + "**"
	}

	return s
}

func (r *Renderer) write(sb *strings.Builder, cols []column) {
	widths := make([]int, len(cols))

	for i, c := range cols {
		widths[i] = max(3, ansi.StringWidth(r.heading(c.heading)))
		for _, cell := range c.cells {
			widths[i] = max(widths[i], ansi.StringWidth(cell))
		}
	}

	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0].cells)
	}

	switch r.format {
	case FormatDokuWiki:
		r.writeDokuWiki(sb, cols, widths, rows)
	case FormatMarkdown:
		r.writeMarkdown(sb, cols, widths, rows)
	}
}

func (r *Renderer) writeMarkdown(sb *strings.Builder, cols []column, widths []int, rows int) {
	sb.WriteByte('|')

	for i, c := range cols {
		sb.WriteString(" " + padRight(r.heading(c.heading), widths[i]) + " |")
	}

	sb.WriteString("\n|")

	for i, c := range cols {
		if c.centered {
			sb.WriteString(":" + strings.Repeat("-", widths[i]) + ":|")
		} else {
			sb.WriteString(strings.Repeat("-", widths[i]+2) + "|")
		}
	}

	sb.WriteByte('\n')

	for row := range rows {
		sb.WriteByte('|')

		for i, c := range cols {
			sb.WriteString(" " + padRight(c.cells[row], widths[i]) + " |")
		}

		sb.WriteByte('\n')
	}
}

// writeDokuWiki aligns cells with DokuWiki's whitespace convention: at
// least two spaces on both sides of the text center it.
func (r *Renderer) writeDokuWiki(sb *strings.Builder, cols []column, widths []int, rows int) {
	wide := make([]bool, len(cols))
	for i, c := range cols {
		wide[i] = c.centered || r.opts.Centered.Headings
	}

	cell := func(text string, i int, centered bool) string {
		switch {
		case centered:
			return "  " + padCenter(text, widths[i]) + "  "
		case wide[i]:
			return " " + padRight(text, widths[i]+2) + " "
		}

		return " " + padRight(text, widths[i]) + " "
	}

	sb.WriteByte('^')

	for i, c := range cols {
		sb.WriteString(cell(r.heading(c.heading), i, c.centered || r.opts.Centered.Headings) + "^")
	}

	sb.WriteByte('\n')

	for row := range rows {
		sb.WriteByte('|')

		for i, c := range cols {
			sb.WriteString(cell(c.cells[row], i, c.centered) + "|")
		}

		sb.WriteByte('\n')
	}
}

func padRight(s string, width int) string {
	n := width - ansi.StringWidth(s)
	if n <= 0 {
		return s
	}

	return s + strings.Repeat(" ", n)
}

func padCenter(s string, width int) string {
	n := width - ansi.StringWidth(s)
	if n <= 0 {
		return s
	}

	left := n / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-left)
}
