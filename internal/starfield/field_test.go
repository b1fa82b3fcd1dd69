package starfield_test

import (
	"errors"
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/starfield/internal/starfield"
)

func still(x, y float64) starfield.Star {
	return starfield.Star{X: x, Y: y, Radius: 1, Alpha: 0.5}
}

var _ = Describe("Field", func() {
	var cfg starfield.Config

	BeforeEach(func() {
		cfg = starfield.DefaultConfig()
	})

	Describe("New", func() {
		It("creates the configured number of stars inside the canvas", func() {
			f, err := starfield.New(cfg, 800, 600, rand.New(rand.NewSource(7)))
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Len()).To(Equal(100))

			for _, s := range f.Stars() {
				Expect(s.X).To(BeNumerically(">=", 0))
				Expect(s.X).To(BeNumerically("<", 800))
				Expect(s.Y).To(BeNumerically(">=", 0))
				Expect(s.Y).To(BeNumerically("<", 600))
				Expect(math.Abs(s.VX)).To(BeNumerically("<=", cfg.MaxSpeed))
				Expect(math.Abs(s.VY)).To(BeNumerically("<=", cfg.MaxSpeed))
				Expect(s.Radius).To(BeNumerically("<", cfg.MaxRadius))
				Expect(s.Alpha).To(BeNumerically("<", 1))
			}
		})

		It("is reproducible for a fixed seed", func() {
			a, _ := starfield.New(cfg, 800, 600, rand.New(rand.NewSource(42)))
			b, _ := starfield.New(cfg, 800, 600, rand.New(rand.NewSource(42)))
			Expect(a.Stars()).To(Equal(b.Stars()))
		})

		It("rejects invalid configs", func() {
			cfg.Threshold = 0
			_, err := starfield.New(cfg, 800, 600, nil)
			Expect(errors.Is(err, starfield.ErrInvalidConfig)).To(BeTrue())

			var ce *starfield.ConfigError
			Expect(errors.As(err, &ce)).To(BeTrue())
			Expect(ce.Field).To(Equal("threshold"))
		})
	})

	Describe("Update", func() {
		It("keeps every star inside the bounds over many frames", func() {
			cfg.MaxSpeed = 40
			f, err := starfield.New(cfg, 320, 240, rand.New(rand.NewSource(3)))
			Expect(err).NotTo(HaveOccurred())
			f.PointerMove(160, 120)

			for i := 0; i < 500; i++ {
				if i == 250 {
					f.PointerLeave()
				}
				f.Update()
				for _, s := range f.Stars() {
					Expect(s.X).To(BeNumerically(">=", 0))
					Expect(s.X).To(BeNumerically("<", 320))
					Expect(s.Y).To(BeNumerically(">=", 0))
					Expect(s.Y).To(BeNumerically("<", 240))
				}
			}
		})

		It("pushes a nearby star away from the pointer by 2% of the displacement", func() {
			f, _ := starfield.NewFromStars(cfg, 800, 600, []starfield.Star{still(100, 100)})
			f.PointerMove(150, 100)

			Expect(f.Update()).To(Equal(1))

			s := f.Stars()[0]
			Expect(s.X).To(BeNumerically("~", 99.0, 1e-9))
			Expect(s.Y).To(BeNumerically("~", 100.0, 1e-9))
			Expect(math.Hypot(150-s.X, 100-s.Y)).To(BeNumerically(">", 50))
		})

		It("leaves stars at or beyond the threshold alone", func() {
			f, _ := starfield.NewFromStars(cfg, 800, 600, []starfield.Star{still(100, 100)})
			f.PointerMove(200, 100)

			Expect(f.Update()).To(Equal(0))
			Expect(f.Stars()[0].X).To(Equal(100.0))
		})

		It("stops repelling once the pointer leaves", func() {
			f, _ := starfield.NewFromStars(cfg, 800, 600, []starfield.Star{still(100, 100)})
			f.PointerMove(110, 100)
			f.PointerLeave()

			Expect(f.Update()).To(Equal(0))
			_, _, ok := f.Pointer()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Resize", func() {
		It("changes wrap bounds without relocating stars until their next update", func() {
			f, _ := starfield.NewFromStars(cfg, 800, 600, []starfield.Star{still(700, 500)})
			f.Resize(400, 300)

			w, h := f.Bounds()
			Expect(w).To(Equal(400.0))
			Expect(h).To(Equal(300.0))
			Expect(f.Stars()[0].X).To(Equal(700.0))
			Expect(f.Stars()[0].Y).To(Equal(500.0))

			f.Update()
			s := f.Stars()[0]
			Expect(s.X).To(BeNumerically(">=", 0))
			Expect(s.X).To(BeNumerically("<", 400))
			Expect(s.Y).To(BeNumerically(">=", 0))
			Expect(s.Y).To(BeNumerically("<", 300))
		})
	})

	Describe("Frame", func() {
		It("clears and draws nothing for an empty field", func() {
			cfg.Stars = 0
			f, err := starfield.New(cfg, 800, 600, nil)
			Expect(err).NotTo(HaveOccurred())

			rec := &starfield.Recorder{}
			stats := f.Frame(rec)

			Expect(rec.Clears).To(Equal(1))
			Expect(rec.DrawCalls()).To(Equal(0))
			Expect(stats.Links).To(Equal(0))
		})

		It("draws a faded line between stars closer than the threshold", func() {
			f, _ := starfield.NewFromStars(cfg, 800, 600, []starfield.Star{
				still(100, 100),
				still(160, 100),
				still(400, 400),
			})

			rec := &starfield.Recorder{}
			stats := f.Frame(rec)

			Expect(rec.Circles).To(HaveLen(3))
			Expect(rec.Lines).To(HaveLen(1))
			Expect(stats.Links).To(Equal(1))
			Expect(rec.Lines[0].Alpha).To(BeNumerically("~", 0.1-60.0/1000, 1e-12))
			Expect(rec.Lines[0].Width).To(Equal(cfg.LinkWidth))
		})

		It("draws no line at exactly the threshold", func() {
			f, _ := starfield.NewFromStars(cfg, 800, 600, []starfield.Star{
				still(100, 100),
				still(200, 100),
			})

			rec := &starfield.Recorder{}
			f.Frame(rec)
			Expect(rec.Lines).To(BeEmpty())
		})

		It("numbers frames from zero", func() {
			f, _ := starfield.New(cfg, 100, 100, rand.New(rand.NewSource(1)))
			Expect(f.Frame(starfield.Discard).Frame).To(Equal(0))
			Expect(f.Frame(starfield.Discard).Frame).To(Equal(1))
		})
	})

	Describe("Draw", func() {
		It("repaints without moving stars or counting a frame", func() {
			f, _ := starfield.NewFromStars(cfg, 800, 600, []starfield.Star{
				{X: 100, Y: 100, VX: 0.2, Radius: 1, Alpha: 0.5},
				still(150, 100),
			})
			before := f.Stars()

			rec := &starfield.Recorder{}
			Expect(f.Draw(rec)).To(Equal(1))
			Expect(rec.Clears).To(Equal(1))
			Expect(rec.Circles).To(HaveLen(2))
			Expect(rec.Lines).To(HaveLen(1))
			Expect(f.Stars()).To(Equal(before))
			Expect(f.Frame(starfield.Discard).Frame).To(Equal(0))
		})
	})
})
