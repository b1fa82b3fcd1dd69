package scene

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/starfield/internal/geom"
	"github.com/san-kum/starfield/internal/starfield"
	"github.com/san-kum/starfield/internal/tilt"
)

func fullPage() *MemDocument {
	doc := NewMemDocument(800, 600)
	doc.Add("canvas", CanvasID, geom.Rect{W: 800, H: 600})
	doc.Add("div", "", geom.Rect{X: 100, Y: 100, W: 400, H: 300}, "wrap")
	doc.Add("div", CardID, geom.Rect{X: 200, Y: 150, W: 200, H: 200}, "glass-card")
	doc.Add("div", CursorDotID, geom.Rect{})
	doc.Add("div", CursorOutlineID, geom.Rect{})
	doc.Add("a", "home", geom.Rect{X: 10, Y: 10, W: 60, H: 20})
	doc.Add("button", "go", geom.Rect{X: 600, Y: 500, W: 80, H: 30})
	return doc
}

func opts() Options {
	return Options{Starfield: starfield.DefaultConfig(), Rand: rand.New(rand.NewSource(1))}
}

func TestMountEmptyDocument(t *testing.T) {
	doc := NewMemDocument(800, 600)

	s, err := Mount(doc, opts())
	require.NoError(t, err)

	assert.Nil(t, s.Field)
	assert.Nil(t, s.Card)
	assert.Nil(t, s.Cursor)

	s.PointerMove(geom.Point{X: 10, Y: 10})
	s.Resize(400, 300)
	stats := s.Frame(&starfield.Recorder{})
	s.PointerLeave()

	assert.Zero(t, stats)
	assert.Zero(t, doc.Mutations(), "an empty page must never be written to")
}

func TestMountSkipsEffectsIndependently(t *testing.T) {
	doc := NewMemDocument(800, 600)
	doc.Add("div", CardID, geom.Rect{W: 10, H: 10})
	doc.Add("div", CursorDotID, geom.Rect{})
	doc.Add("canvas", CanvasID, geom.Rect{})

	s, err := Mount(doc, opts())
	require.NoError(t, err)

	assert.NotNil(t, s.Field)
	assert.Nil(t, s.Card, "card without .wrap must not mount")
	assert.Nil(t, s.Cursor, "dot without outline must not mount")
}

func TestMountFull(t *testing.T) {
	doc := fullPage()
	s, err := Mount(doc, opts())
	require.NoError(t, err)

	require.NotNil(t, s.Field)
	require.NotNil(t, s.Card)
	require.NotNil(t, s.Cursor)

	w, h := s.Field.Bounds()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)

	canvas, _ := doc.ElementByID(CanvasID)
	assert.Equal(t, "800", canvas.(*MemElement).Attribute("width"))
}

func TestMountInvalidConfig(t *testing.T) {
	o := opts()
	o.Starfield.Threshold = -1
	_, err := Mount(fullPage(), o)
	assert.ErrorIs(t, err, starfield.ErrInvalidConfig)
}

func TestPointerDrivesTiltAndCursor(t *testing.T) {
	doc := fullPage()
	s, err := Mount(doc, opts())
	require.NoError(t, err)

	card, _ := doc.ElementByID(CardID)
	dot, _ := doc.ElementByID(CursorDotID)
	outline, _ := doc.ElementByID(CursorOutlineID)

	// right half of the card, inside the wrap
	s.PointerMove(geom.Point{X: 350, Y: 250})
	assert.InDelta(t, 5, s.Card.RotateY, 1e-9)
	assert.Equal(t, s.Card.Transform(), card.(*MemElement).Style("transform"))
	assert.Equal(t, "350px", dot.(*MemElement).Style("left"))
	assert.Equal(t, "translate(-50%, -50%) scale(1.5)", outline.(*MemElement).Style("transform"),
		"the card carries .glass-card so hovering it highlights the outline")

	assert.Empty(t, outline.(*MemElement).Style("left"), "outline waits for the next frame")
	s.Frame(starfield.Discard)
	assert.Equal(t, "350px", outline.(*MemElement).Style("left"))

	_, _, ok := s.Field.Pointer()
	assert.True(t, ok)

	// out of the wrap
	s.PointerMove(geom.Point{X: 700, Y: 50})
	assert.Equal(t, tilt.RestTransform, card.(*MemElement).Style("transform"))
	assert.Equal(t, "translate(-50%, -50%) scale(1)", outline.(*MemElement).Style("transform"))

	s.PointerMove(geom.Point{X: 300, Y: 250})
	s.PointerLeave()
	assert.False(t, s.Card.Tilted())
	_, _, ok = s.Field.Pointer()
	assert.False(t, ok)
}

func TestResizeUpdatesField(t *testing.T) {
	s, err := Mount(fullPage(), opts())
	require.NoError(t, err)

	s.Resize(400, 300)
	w, h := s.Field.Bounds()
	assert.Equal(t, 400.0, w)
	assert.Equal(t, 300.0, h)
}

func TestQuery(t *testing.T) {
	doc := fullPage()

	assert.Len(t, doc.Query(InteractiveSelector), 3)
	assert.Len(t, doc.Query(WrapSelector), 1)
	assert.Len(t, doc.Query("#go"), 1)
	assert.Empty(t, doc.Query("section"))
	assert.Empty(t, doc.Query(""))
}
