package scene

import (
	"math"

	"github.com/san-kum/starfield/internal/geom"
)

const (
	maxCardWidth = 480.0
	wrapPadding  = 80.0
	navLinks     = 3
	navWidth     = 88.0
	navHeight    = 28.0
	navMargin    = 24.0
	buttonWidth  = 140.0
	buttonHeight = 40.0
)

// Page is the landing layout used by hosts without a real page: a full
// viewport canvas, a navigation bar of links, a tilt card inside its wrap
// with a button, and the two cursor elements.
type Page struct {
	Doc     *MemDocument
	Canvas  *MemElement
	Wrap    *MemElement
	Card    *MemElement
	Button  *MemElement
	Links   []*MemElement
	Dot     *MemElement
	Outline *MemElement
}

func NewPage(width, height float64) *Page {
	doc := NewMemDocument(width, height)
	p := &Page{Doc: doc}

	p.Canvas = doc.Add("canvas", CanvasID, geom.Rect{})
	for i := 0; i < navLinks; i++ {
		p.Links = append(p.Links, doc.Add("a", "", geom.Rect{}))
	}
	p.Wrap = doc.Add("section", "", geom.Rect{}, "wrap")
	p.Card = doc.Add("div", CardID, geom.Rect{}, "glass-card")
	p.Button = doc.Add("button", "", geom.Rect{})
	p.Dot = doc.Add("div", CursorDotID, geom.Rect{W: 8, H: 8})
	p.Outline = doc.Add("div", CursorOutlineID, geom.Rect{W: 40, H: 40})

	p.Layout(width, height)
	return p
}

// Layout positions every element for a viewport of width x height. The card
// keeps a 3:2 aspect and shrinks with narrow windows.
func (p *Page) Layout(width, height float64) {
	p.Doc.SetViewport(width, height)
	p.Canvas.SetBounds(geom.Rect{W: width, H: height})

	for i, l := range p.Links {
		x := width - navMargin - float64(navLinks-i)*(navWidth+8)
		l.SetBounds(geom.Rect{X: x, Y: navMargin, W: navWidth, H: navHeight})
	}

	cw := math.Min(maxCardWidth, math.Max(width*0.6, 0))
	ch := cw * 2 / 3
	cx, cy := width/2, height/2

	p.Card.SetBounds(geom.Rect{X: cx - cw/2, Y: cy - ch/2, W: cw, H: ch})
	p.Wrap.SetBounds(geom.Rect{
		X: cx - cw/2 - wrapPadding,
		Y: cy - ch/2 - wrapPadding,
		W: cw + 2*wrapPadding,
		H: ch + 2*wrapPadding,
	})
	p.Button.SetBounds(geom.Rect{
		X: cx - buttonWidth/2,
		Y: cy + ch/2 - buttonHeight - 24,
		W: buttonWidth,
		H: buttonHeight,
	})
}
