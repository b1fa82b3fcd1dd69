// Package scene binds the pointer effects to the elements of a page.
//
// Each effect mounts only when all of its elements exist. A missing element
// disables that effect and nothing else: no error, no log line, no write to
// the document.
package scene

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/san-kum/starfield/internal/cursor"
	"github.com/san-kum/starfield/internal/geom"
	"github.com/san-kum/starfield/internal/starfield"
	"github.com/san-kum/starfield/internal/tilt"
)

const (
	CanvasID            = "starfield"
	CardID              = "tilt-card"
	WrapSelector        = ".wrap"
	CursorDotID         = "cursor-dot"
	CursorOutlineID     = "cursor-outline"
	InteractiveSelector = "a, button, .glass-card"
)

type Options struct {
	Starfield starfield.Config
	Rand      *rand.Rand
	// Card, if set, supplies the tilt parameters; otherwise tilt.New defaults.
	Card *tilt.Card
}

// Scene holds the mounted effects. Nil fields are effects whose elements
// were absent.
type Scene struct {
	doc Document

	Field  *starfield.Field
	canvas Element

	Card       *tilt.Card
	card, wrap Element
	inWrap     bool

	Cursor       *cursor.Follower
	dot, outline Element
}

// Mount looks up every effect's elements and initializes the effects that
// are complete. Only an invalid starfield config is an error.
func Mount(doc Document, opts Options) (*Scene, error) {
	s := &Scene{doc: doc}

	if canvas, ok := doc.ElementByID(CanvasID); ok {
		w, h := doc.Viewport()
		field, err := starfield.New(opts.Starfield, w, h, opts.Rand)
		if err != nil {
			return nil, fmt.Errorf("mount starfield: %w", err)
		}
		s.Field = field
		s.canvas = canvas
		s.sizeCanvas(w, h)
	}

	card, cardOK := doc.ElementByID(CardID)
	wraps := doc.Query(WrapSelector)
	if cardOK && len(wraps) > 0 {
		s.card, s.wrap = card, wraps[0]
		s.Card = opts.Card
		if s.Card == nil {
			s.Card = tilt.New()
		}
	}

	dot, dotOK := doc.ElementByID(CursorDotID)
	outline, outlineOK := doc.ElementByID(CursorOutlineID)
	if dotOK && outlineOK {
		s.dot, s.outline = dot, outline
		s.Cursor = cursor.New(s.targetBounds())
	}

	return s, nil
}

func (s *Scene) targetBounds() []geom.Rect {
	els := s.doc.Query(InteractiveSelector)
	out := make([]geom.Rect, 0, len(els))
	for _, el := range els {
		out = append(out, el.Bounds())
	}
	return out
}

func (s *Scene) sizeCanvas(w, h float64) {
	s.canvas.SetAttribute("width", px(w, false))
	s.canvas.SetAttribute("height", px(h, false))
}

// Resize follows a viewport change: new wrap bounds for the starfield and
// fresh hover targets for the cursor.
func (s *Scene) Resize(width, height float64) {
	if s.Field != nil {
		s.Field.Resize(width, height)
		s.sizeCanvas(width, height)
	}
	if s.Cursor != nil {
		s.Cursor.SetTargets(s.targetBounds())
	}
}

func (s *Scene) PointerMove(p geom.Point) {
	if s.Field != nil {
		s.Field.PointerMove(p.X, p.Y)
	}

	if s.Card != nil {
		if s.wrap.Bounds().Contains(p) {
			s.Card.Move(s.card.Bounds(), p)
			s.card.SetStyle("transform", s.Card.Transform())
			s.inWrap = true
		} else {
			s.leaveWrap()
		}
	}

	if s.Cursor != nil {
		changed := s.Cursor.Move(p)
		s.dot.SetStyle("left", px(p.X, true))
		s.dot.SetStyle("top", px(p.Y, true))
		if changed {
			s.applyOutlineStyle()
		}
	}
}

func (s *Scene) PointerLeave() {
	if s.Field != nil {
		s.Field.PointerLeave()
	}
	if s.Card != nil {
		s.leaveWrap()
	}
	if s.Cursor != nil && s.Cursor.Leave() {
		s.applyOutlineStyle()
	}
}

func (s *Scene) leaveWrap() {
	if !s.inWrap {
		return
	}
	s.inWrap = false
	s.Card.Leave()
	s.card.SetStyle("transform", tilt.RestTransform)
}

func (s *Scene) applyOutlineStyle() {
	st := s.Cursor.Style()
	s.outline.SetStyle("transform", st.Transform())
	s.outline.SetStyle("background-color", st.Background)
	s.outline.SetStyle("border-color", st.Border)
}

// Frame draws the starfield and lets the cursor outline catch up.
func (s *Scene) Frame(surface starfield.Surface) starfield.FrameStats {
	var stats starfield.FrameStats
	if s.Field != nil {
		stats = s.Field.Frame(surface)
	}
	if s.Cursor != nil && s.Cursor.Frame() {
		s.outline.SetStyle("left", px(s.Cursor.Outline.X, true))
		s.outline.SetStyle("top", px(s.Cursor.Outline.Y, true))
	}
	return stats
}

func px(v float64, unit bool) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if unit {
		return s + "px"
	}
	return s
}
