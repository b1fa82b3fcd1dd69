package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/starfield/internal/config"
	"github.com/san-kum/starfield/internal/gui"
	"github.com/san-kum/starfield/internal/logging"
	"github.com/san-kum/starfield/internal/starfield"
	"github.com/san-kum/starfield/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	seed       int64
	stars      int
	width      float64
	height     float64
	frameRate  int
	theme      string
	audioOn    bool

	log = logging.New(logging.LevelInfo)
)

// main registers the commands and opens the window when no subcommand is
// given. It exits with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "starfield",
		Short:         "pointer-driven starfield, tilt card and cursor effects",
		SilenceUsage:  true,
		RunE:          runGUI,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(logging.ParseLevel(logLevel))
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".starfield", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.IntVar(&stars, "stars", starfield.DefaultStars, "number of stars")
	pf.Float64Var(&width, "width", config.DefaultWidth, "field width in pixels")
	pf.Float64Var(&height, "height", config.DefaultHeight, "field height in pixels")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme: "+strings.Join(viz.ThemeNames(), ", "))

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the starfield window",
		RunE:  runGUI,
	}
	for _, c := range []*cobra.Command{rootCmd, guiCmd} {
		c.Flags().BoolVar(&audioOn, "audio", false, "play the ambient pad")
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "starfield in the terminal",
		RunE:  runTUI,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless run, saved under the data directory",
		RunE:  runHeadless,
	}
	runCmd.Flags().Int("frames", config.DefaultFrames, "frames to render")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot links and repelled stars per frame",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().String("svg", "", "also write the links chart as SVG")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render frames headless and write the last one as SVG",
		RunE:  snapshot,
	}
	snapshotCmd.Flags().Int("frames", 120, "frames to render before the snapshot")
	snapshotCmd.Flags().StringP("out", "o", "starfield.svg", "output file")
	snapshotCmd.Flags().String("style", "vector", "vector or braille")
	snapshotCmd.Flags().Bool("preview", false, "print a braille preview")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "frame time against star count",
		RunE:  bench,
	}
	benchCmd.Flags().Int("frames", 200, "frames per star count")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, listCmd, plotCmd, exportJSONCmd, snapshotCmd, benchCmd, presetsCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file, environment and the
// flags the user actually set, in that order. fallbackPreset applies when no
// --preset is given.
func resolveConfig(cmd *cobra.Command, fallbackPreset string) (*config.Config, error) {
	name := preset
	if name == "" {
		name = fallbackPreset
	}

	cfg := config.DefaultConfig()
	if name != "" {
		cfg = config.GetPreset(name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("stars") {
		cfg.Starfield.Stars = stars
	}
	if flags.Changed("width") {
		cfg.Render.Width = width
	}
	if flags.Changed("height") {
		cfg.Render.Height = height
	}
	if flags.Changed("fps") {
		cfg.Render.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Render.Theme = theme
	}
	if flags.Changed("audio") {
		cfg.Audio.Enabled = audioOn
	}
	if flags.Changed("frames") {
		n, err := flags.GetInt("frames")
		if err != nil {
			return nil, err
		}
		cfg.Run.Frames = n
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newField(cfg *config.Config) (*starfield.Field, error) {
	return starfield.New(cfg.StarfieldConfig(), cfg.Render.Width, cfg.Render.Height, rand.New(rand.NewSource(cfg.Seed)))
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}
	return gui.Run(cfg, log.With("gui"))
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "terminal")
	if err != nil {
		return err
	}
	field, err := newField(cfg)
	if err != nil {
		return err
	}
	return viz.Run(field, cfg.Render.FPS, viz.GetTheme(cfg.Render.Theme))
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSTARS\tTHRESHOLD\tSPEED\tSIZE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%.2f\t%gx%g\n",
			name,
			p.Starfield.Stars,
			p.Starfield.Threshold,
			p.Starfield.MaxSpeed,
			p.Render.Width,
			p.Render.Height,
		)
	}
	return w.Flush()
}
