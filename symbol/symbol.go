package symbol

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"slices"

	"charm.land/lipgloss/v2"

	"go.jacobcolvin.com/vec/entity"
)

// ErrEncode indicates the symbol image could not be written.
var ErrEncode = errors.New("encode symbol")

// Fixed geometry, in unscaled pixels.
const (
	pad       = 8
	bubbleR   = 4
	clockW    = 8
	slashOff  = 10
	lineGap   = 3
	pinStroke = 1.5
	busStroke = 3
	bodyEdge  = 2
)

// Renderer draws block symbols of an [entity.Entity].
//
// Create instances with [NewRenderer].
type Renderer struct {
	opts    Options
	palette palette
}

type palette struct {
	background      color.Color
	body            color.Color
	outline         color.Color
	pin             color.Color
	text            color.Color
	generics        color.Color
	genericsOutline color.Color
	highlight       color.Color
}

// NewRenderer creates a [Renderer]. Sizes below [MinScale], [MinPinLength]
// and [MinRowHeight] are raised to those values. Invalid colors render as
// black.
func NewRenderer(opts Options) *Renderer {
	opts.Scale = max(opts.Scale, MinScale)
	opts.PinLength = max(opts.PinLength, MinPinLength)
	opts.RowHeight = max(opts.RowHeight, MinRowHeight)
	opts.Margin = max(opts.Margin, 0)

	c := opts.Colors

	return &Renderer{
		opts: opts,
		palette: palette{
			background:      lipgloss.Color(c.Background),
			body:            lipgloss.Color(c.Body),
			outline:         lipgloss.Color(c.Outline),
			pin:             lipgloss.Color(c.Pin),
			text:            lipgloss.Color(c.Text),
			generics:        lipgloss.Color(c.Generics),
			genericsOutline: lipgloss.Color(c.GenericsOutline),
			highlight:       lipgloss.Color(c.Highlight),
		},
	}
}

// Render writes the symbol of e as a PNG image.
func (r *Renderer) Render(w io.Writer, e *entity.Entity) error {
	err := png.Encode(w, r.Image(e))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return nil
}

// Image returns the symbol of e.
func (r *Renderer) Image(e *entity.Entity) *image.RGBA {
	return r.draw(e, -1)
}

// Highlight returns the symbol of e with the row of the port at index port
// (in [entity.Entity.Ports] order) highlighted. An out-of-range index
// highlights nothing.
func (r *Renderer) Highlight(e *entity.Entity, port int) *image.RGBA {
	return r.draw(e, port)
}

// pin is a port placed on one side of the body.
type pin struct {
	port  entity.Port
	index int
	row   int
}

type layout struct {
	width, height int

	// Body rectangle.
	x0, y0, x1, y1 int

	pinLen int
	header int

	label         string
	labelBaseline int

	generics []string
	panel    image.Rectangle

	left, right []pin
}

func (r *Renderer) layout(e *entity.Entity) layout {
	o := r.opts
	l := layout{header: o.RowHeight}

	for i, p := range e.Ports() {
		if p.Direction == entity.DirectionOut {
			l.right = append(l.right, pin{port: p, index: i, row: len(l.right)})
		} else {
			l.left = append(l.left, pin{port: p, index: i, row: len(l.left)})
		}
	}

	leftW, rightW, busW := sideWidth(l.left), sideWidth(l.right), 0

	for _, p := range slices.Concat(l.left, l.right) {
		busW = max(busW, textWidth(p.port.VectorString()))
	}

	l.pinLen = max(o.PinLength, 2*bubbleR+slashOff+lineGap+busW+pad)

	bodyW := max(pad+leftW+2*pad+rightW+pad, textWidth(e.Name())+2*pad, 6*pad)
	rows := max(len(l.left), len(l.right), 1)
	bodyH := l.header + rows*o.RowHeight + pad/2

	contentW := 2*l.pinLen + bodyW

	if o.ShowGenerics {
		for _, g := range e.Generics() {
			s := g.String()
			l.generics = append(l.generics, s)
			contentW = max(contentW, textWidth(s)+2*pad)
		}
	}

	if o.ShowLabel && e.Label() != "" {
		l.label = e.Label()
		contentW = max(contentW, textWidth(l.label))
	}

	y := o.Margin

	if l.label != "" {
		l.labelBaseline = y + textAscent
		y += textHeight + pad/2
	}

	if len(l.generics) > 0 {
		panelW := 0
		for _, s := range l.generics {
			panelW = max(panelW, textWidth(s)+2*pad)
		}

		panelH := len(l.generics)*(textHeight+lineGap) + pad
		px := o.Margin + (contentW-panelW)/2
		l.panel = image.Rect(px, y, px+panelW, y+panelH)
		y += panelH + pad/2
	}

	l.x0 = o.Margin + (contentW-bodyW)/2
	l.x1 = l.x0 + bodyW
	l.y0 = y
	l.y1 = y + bodyH

	l.width = contentW + 2*o.Margin
	l.height = l.y1 + o.Margin

	return l
}

// sideWidth returns the widest port name on one side, including room for
// the clock marker.
func sideWidth(pins []pin) int {
	w := 0

	for _, p := range pins {
		n := textWidth(p.port.Name)
		if p.port.IsClock {
			n += clockW + lineGap
		}

		w = max(w, n)
	}

	return w
}

// rowCenter returns the y coordinate of the pin line on the given row.
func (r *Renderer) rowCenter(l layout, row int) float32 {
	return float32(l.y0+l.header+row*r.opts.RowHeight+r.opts.RowHeight/2) + 0.5
}

func (r *Renderer) draw(e *entity.Entity, highlight int) *image.RGBA {
	l := r.layout(e)
	pal := r.palette
	c := newCanvas(l.width, l.height)

	c.clear(pal.background)

	if l.label != "" {
		c.text(pal.text, l.x0, l.labelBaseline, l.label)
	}

	if len(l.generics) > 0 {
		p := l.panel
		c.rect(pal.generics, float32(p.Min.X), float32(p.Min.Y), float32(p.Max.X), float32(p.Max.Y))
		c.strokeRect(pal.genericsOutline, float32(p.Min.X), float32(p.Min.Y), float32(p.Max.X), float32(p.Max.Y), 1)

		for i, s := range l.generics {
			c.text(pal.text, p.Min.X+pad, p.Min.Y+pad/2+textAscent+i*(textHeight+lineGap), s)
		}
	}

	x0, y0, x1, y1 := float32(l.x0), float32(l.y0), float32(l.x1), float32(l.y1)

	c.rect(pal.body, x0, y0, x1, y1)
	r.drawHighlight(c, l, highlight)
	c.strokeRect(pal.outline, x0, y0, x1, y1, bodyEdge)
	c.rect(pal.outline, x0, y0+float32(l.header), x1, y0+float32(l.header)+1)

	name := e.Name()
	c.text(pal.text, l.x0+(l.x1-l.x0-textWidth(name))/2, l.y0+(l.header+textHeight)/2-2, name)

	for _, p := range l.left {
		r.drawLeftPin(c, l, p)
	}

	for _, p := range l.right {
		r.drawRightPin(c, l, p)
	}

	return scaled(c.img, r.opts.Scale)
}

func (r *Renderer) drawHighlight(c *canvas, l layout, port int) {
	mid := float32(l.x0+l.x1) / 2

	for _, side := range [][]pin{l.left, l.right} {
		for _, p := range side {
			if p.index != port {
				continue
			}

			top := float32(l.y0 + l.header + p.row*r.opts.RowHeight)
			bottom := top + float32(r.opts.RowHeight)

			if p.port.Direction == entity.DirectionOut {
				c.rect(r.palette.highlight, mid, top, float32(l.x1), bottom)
			} else {
				c.rect(r.palette.highlight, float32(l.x0), top, mid, bottom)
			}
		}
	}
}

func (r *Renderer) drawLeftPin(c *canvas, l layout, p pin) {
	pal := r.palette
	y := r.rowCenter(l, p.row)
	start := float32(l.x0 - l.pinLen)
	end := float32(l.x0)

	if p.port.IsLowActive {
		end -= 2 * bubbleR
	}

	r.drawWire(c, start, end, y, p.port)

	if p.port.IsLowActive {
		r.drawBubble(c, end+bubbleR, y)
	}

	if p.port.Vector.IsBus() {
		sx := start + slashOff
		c.line(pal.pin, sx-4, y+5, sx+4, y-5, pinStroke)
		c.text(pal.text, int(sx)+lineGap+2, int(y)-4, p.port.VectorString())
	}

	tx := l.x0 + pad

	if p.port.IsClock {
		bx := float32(l.x0 + bodyEdge)
		c.line(pal.outline, bx, y-5, bx+clockW, y, pinStroke)
		c.line(pal.outline, bx+clockW, y, bx, y+5, pinStroke)
		tx += clockW + lineGap
	}

	c.text(pal.text, tx, int(y)+4, p.port.Name)
}

func (r *Renderer) drawRightPin(c *canvas, l layout, p pin) {
	pal := r.palette
	y := r.rowCenter(l, p.row)
	start := float32(l.x1)
	end := float32(l.x1 + l.pinLen)

	if p.port.IsLowActive {
		r.drawBubble(c, start+bubbleR, y)
		start += 2 * bubbleR
	}

	r.drawWire(c, start, end, y, p.port)

	if p.port.Vector.IsBus() {
		sx := end - slashOff
		label := p.port.VectorString()

		c.line(pal.pin, sx-4, y+5, sx+4, y-5, pinStroke)
		c.text(pal.text, int(sx)-lineGap-2-textWidth(label), int(y)-4, label)
	}

	tx := l.x1 - pad - textWidth(p.port.Name)

	if p.port.IsClock {
		bx := float32(l.x1 - bodyEdge)
		c.line(pal.outline, bx, y-5, bx-clockW, y, pinStroke)
		c.line(pal.outline, bx-clockW, y, bx, y+5, pinStroke)
		tx -= clockW + lineGap
	}

	c.text(pal.text, tx, int(y)+4, p.port.Name)
}

func (r *Renderer) drawWire(c *canvas, x0, x1, y float32, p entity.Port) {
	w := float32(pinStroke)
	if p.Vector.IsBus() {
		w = busStroke
	}

	c.line(r.palette.pin, x0, y, x1, y, w)
}

// drawBubble draws the inversion circle of a low-active port.
func (r *Renderer) drawBubble(c *canvas, cx, cy float32) {
	c.circle(r.palette.outline, cx, cy, bubbleR)
	c.circle(r.palette.background, cx, cy, bubbleR-pinStroke)
}
