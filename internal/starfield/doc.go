// Package starfield animates a field of drifting point particles.
//
// A [Field] owns a fixed set of [Star] records, the canvas bounds, and an
// optional pointer position. Each call to [Field.Frame] advances every star,
// pushes stars away from a nearby pointer, and draws the stars plus faint
// connection lines between close pairs onto a [Surface].
//
// # Example
//
//	f, _ := starfield.New(starfield.DefaultConfig(), 800, 600, rand.New(rand.NewSource(1)))
//	f.PointerMove(400, 300)
//	stats := f.Frame(surface)
//
// # Thread Safety
//
// A Field is NOT safe for concurrent use. Pointer, resize, and frame calls
// are expected to come from the single goroutine that owns the render loop.
package starfield
