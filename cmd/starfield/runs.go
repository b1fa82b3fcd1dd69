package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/starfield/internal/anim"
	"github.com/san-kum/starfield/internal/export"
	"github.com/san-kum/starfield/internal/starfield"
	"github.com/san-kum/starfield/internal/storage"
	"github.com/san-kum/starfield/internal/viz"
)

var benchStars = []int{50, 100, 200, 400, 800, 1600}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	field, err := newField(cfg)
	if err != nil {
		return err
	}

	loop := anim.New(field, starfield.Discard, anim.Immediate())
	for _, m := range anim.DefaultMetrics() {
		loop.AddMetric(m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %d frames of %d stars...\n", cfg.Run.Frames, cfg.Starfield.Stars)
	result, err := loop.Run(ctx, cfg.Run.Frames)
	if err != nil && result == nil {
		return err
	}
	if err != nil {
		log.Warn("run interrupted after %d frames", result.FramesRun)
	}

	runID, err := st.Save(storage.Run{
		Preset: preset,
		Seed:   cfg.Seed,
		Width:  cfg.Render.Width,
		Height: cfg.Render.Height,
		Config: cfg.StarfieldConfig(),
		Result: result,
		Stars:  field.Stars(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", result.FramesRun)
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.4f\n", name, result.Metrics[name])
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tSTARS\tFRAMES\tSIZE\tLINKS")

	for _, run := range runs {
		name := run.Preset
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%gx%g\t%.1f\n",
			run.ID,
			name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Config.Stars,
			run.Frames,
			run.Width,
			run.Height,
			run.Metrics["links"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	links := make([]float64, len(frames))
	repelled := make([]float64, len(frames))
	for i, f := range frames {
		links[i] = float64(f.Links)
		repelled[i] = float64(f.Repelled)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("stars: %d\n", meta.Config.Stars)
	fmt.Printf("frames: %d\n\n", len(frames))

	for _, series := range []struct {
		caption string
		data    []float64
	}{
		{"links per frame", links},
		{"repelled stars per frame", repelled},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	out, _ := cmd.Flags().GetString("svg")
	if out != "" {
		svg := export.SeriesToSVG(links, 800, 200, export.LinkColor)
		if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", out)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	data, err := st.Export(args[0])
	if err != nil {
		return err
	}
	return storage.WriteJSON(os.Stdout, data)
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	n, _ := flags.GetInt("frames")
	out, _ := flags.GetString("out")
	style, _ := flags.GetString("style")
	preview, _ := flags.GetBool("preview")

	field, err := newField(cfg)
	if err != nil {
		return err
	}

	// the braille canvas maps one field pixel to one dot
	canvas := viz.NewCanvas(int(cfg.Render.Width)/2, int(cfg.Render.Height)/4)
	braille := viz.NewSurface(canvas)
	vector := export.NewSVG()

	var surface starfield.Surface
	switch style {
	case "vector":
		surface = vector
	case "braille":
		surface = braille
	default:
		return fmt.Errorf("unknown style: %s (available: vector, braille)", style)
	}

	loop := anim.New(field, surface, anim.Immediate())
	if n > 1 {
		if _, err := anim.New(field, starfield.Discard, anim.Immediate()).Run(context.Background(), n-1); err != nil {
			return err
		}
	}
	stats := loop.Step()

	var doc string
	if style == "vector" {
		doc = vector.String()
	} else {
		doc = export.CanvasToSVG(canvas, 2, string(viz.GetTheme(cfg.Render.Theme).Stars))
	}
	if err := os.WriteFile(out, []byte(doc), 0644); err != nil {
		return err
	}

	if preview {
		if style != "braille" {
			field.Draw(braille)
		}
		fmt.Println(canvas.String())
	}

	fmt.Printf("frame %d: %d stars, %d links -> %s\n", stats.Frame, field.Len(), stats.Links, out)
	return nil
}

func bench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}
	n, _ := cmd.Flags().GetInt("frames")
	if n <= 0 {
		return fmt.Errorf("frames must be positive, got %d", n)
	}

	fmt.Printf("benchmarking %d frames per size on %gx%g\n\n", n, cfg.Render.Width, cfg.Render.Height)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STARS\tFRAMES\tTIME\tMS/FRAME\tLINKS")

	msPerFrame := make([]float64, 0, len(benchStars))
	for _, count := range benchStars {
		sc := cfg.StarfieldConfig()
		sc.Stars = count
		field, err := starfield.New(sc, cfg.Render.Width, cfg.Render.Height, rand.New(rand.NewSource(cfg.Seed)))
		if err != nil {
			return err
		}
		// keep the pointer in play so repulsion is measured too
		field.PointerMove(cfg.Render.Width/2, cfg.Render.Height/2)

		loop := anim.New(field, starfield.Discard, anim.Immediate())
		loop.AddMetric(anim.NewMeanFrameTime())
		loop.AddMetric(anim.NewMeanLinks())

		start := time.Now()
		result, err := loop.Run(context.Background(), n)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		ms := result.Metrics["frame_ms"]
		msPerFrame = append(msPerFrame, ms)
		fmt.Fprintf(w, "%d\t%d\t%v\t%.3f\t%.1f\n", count, n, elapsed.Round(time.Microsecond), ms, result.Metrics["links"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(msPerFrame,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("ms per frame for %v stars", benchStars)),
	))
	return nil
}

