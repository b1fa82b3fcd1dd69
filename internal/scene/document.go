package scene

import (
	"strings"

	"github.com/san-kum/starfield/internal/geom"
)

// Element is the slice of a page element the effects need.
type Element interface {
	ID() string
	Bounds() geom.Rect
	SetStyle(property, value string)
	SetAttribute(name, value string)
}

// Document looks up elements. Selectors are comma-separated lists of tag,
// #id, or .class terms.
type Document interface {
	ElementByID(id string) (Element, bool)
	Query(selector string) []Element
	Viewport() (width, height float64)
}

// MemDocument is an in-memory Document. Hosts without a real page lay their
// elements out here; tests use its mutation counter.
type MemDocument struct {
	elements      []*MemElement
	width, height float64
	mutations     int
}

func NewMemDocument(width, height float64) *MemDocument {
	return &MemDocument{width: width, height: height}
}

// Add appends an element. classes may be empty.
func (d *MemDocument) Add(tag, id string, bounds geom.Rect, classes ...string) *MemElement {
	el := &MemElement{
		doc:     d,
		tag:     tag,
		id:      id,
		classes: classes,
		bounds:  bounds,
		styles:  make(map[string]string),
		attrs:   make(map[string]string),
	}
	d.elements = append(d.elements, el)
	return el
}

func (d *MemDocument) SetViewport(width, height float64) {
	d.width, d.height = width, height
}

func (d *MemDocument) Viewport() (float64, float64) { return d.width, d.height }

// Mutations counts style and attribute writes on all elements.
func (d *MemDocument) Mutations() int { return d.mutations }

func (d *MemDocument) ElementByID(id string) (Element, bool) {
	for _, el := range d.elements {
		if el.id == id {
			return el, true
		}
	}
	return nil, false
}

func (d *MemDocument) Query(selector string) []Element {
	terms := strings.Split(selector, ",")
	var out []Element
	for _, el := range d.elements {
		for _, term := range terms {
			if el.matches(strings.TrimSpace(term)) {
				out = append(out, el)
				break
			}
		}
	}
	return out
}

type MemElement struct {
	doc     *MemDocument
	tag, id string
	classes []string
	bounds  geom.Rect
	styles  map[string]string
	attrs   map[string]string
}

func (e *MemElement) ID() string { return e.id }
func (e *MemElement) Bounds() geom.Rect { return e.bounds }
func (e *MemElement) SetBounds(r geom.Rect) { e.bounds = r }
func (e *MemElement) Style(prop string) string { return e.styles[prop] }
func (e *MemElement) Attribute(name string) string { return e.attrs[name] }

func (e *MemElement) SetStyle(property, value string) {
	e.styles[property] = value
	e.doc.mutations++
}

func (e *MemElement) SetAttribute(name, value string) {
	e.attrs[name] = value
	e.doc.mutations++
}

func (e *MemElement) matches(term string) bool {
	switch {
	case term == "":
		return false
	case strings.HasPrefix(term, "#"):
		return e.id == term[1:]
	case strings.HasPrefix(term, "."):
		for _, c := range e.classes {
			if c == term[1:] {
				return true
			}
		}
		return false
	default:
		return e.tag == term
	}
}
