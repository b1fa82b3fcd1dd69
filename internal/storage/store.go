package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/starfield/internal/anim"
	"github.com/san-kum/starfield/internal/starfield"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
	starsFile    = "stars.csv"
)

var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Frames    int                `json:"frames"`
	Elapsed   time.Duration      `json:"elapsed_ns"`
	Config    starfield.Config   `json:"config"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Run is everything a headless run produces.
type Run struct {
	Preset        string
	Seed          int64
	Width, Height float64
	Config        starfield.Config
	Result        *anim.Result
	Stars         []starfield.Star
}

// Save writes metadata.json, frames.csv and stars.csv under a new run
// directory and returns the run id.
func (s *Store) Save(run Run) (string, error) {
	now := s.now()
	runID := fmt.Sprintf("run_%d", now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Preset:    run.Preset,
		Timestamp: now,
		Seed:      run.Seed,
		Width:     run.Width,
		Height:    run.Height,
		Config:    run.Config,
		Metrics:   map[string]float64{},
	}
	if run.Result != nil {
		meta.Frames = run.Result.FramesRun
		meta.Elapsed = run.Result.Elapsed
		meta.Metrics = run.Result.Metrics
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	var frames []starfield.FrameStats
	if run.Result != nil {
		frames = run.Result.Frames
	}
	if err := writeFrames(filepath.Join(runDir, framesFile), frames); err != nil {
		return "", err
	}
	if err := writeStars(filepath.Join(runDir, starsFile), run.Stars); err != nil {
		return "", err
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

func writeFrames(path string, frames []starfield.FrameStats) error {
	rows := make([][]string, 0, len(frames))
	for _, fs := range frames {
		rows = append(rows, []string{
			strconv.Itoa(fs.Frame),
			strconv.Itoa(fs.Links),
			strconv.Itoa(fs.Repelled),
			strconv.FormatInt(fs.Duration.Microseconds(), 10),
		})
	}
	return writeCSV(path, []string{"frame", "links", "repelled", "micros"}, rows)
}

func writeStars(path string, stars []starfield.Star) error {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	rows := make([][]string, 0, len(stars))
	for _, st := range stars {
		rows = append(rows, []string{f(st.X), f(st.Y), f(st.VX), f(st.VY), f(st.Radius), f(st.Alpha)})
	}
	return writeCSV(path, []string{"x", "y", "vx", "vy", "radius", "alpha"}, rows)
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) readCSV(runID, name string) ([][]string, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}
	return records[1:], nil
}

// LoadFrames reads the per-frame stats of a run. Malformed rows are skipped.
func (s *Store) LoadFrames(runID string) ([]starfield.FrameStats, error) {
	records, err := s.readCSV(runID, framesFile)
	if err != nil {
		return nil, err
	}

	frames := make([]starfield.FrameStats, 0, len(records))
	for _, rec := range records {
		if len(rec) < 4 {
			continue
		}
		vals := make([]int64, 4)
		ok := true
		for i := range vals {
			v, err := strconv.ParseInt(rec[i], 10, 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		frames = append(frames, starfield.FrameStats{
			Frame:    int(vals[0]),
			Links:    int(vals[1]),
			Repelled: int(vals[2]),
			Duration: time.Duration(vals[3]) * time.Microsecond,
		})
	}
	return frames, nil
}

// LoadStars reads the final star states of a run.
func (s *Store) LoadStars(runID string) ([]starfield.Star, error) {
	records, err := s.readCSV(runID, starsFile)
	if err != nil {
		return nil, err
	}

	stars := make([]starfield.Star, 0, len(records))
	for _, rec := range records {
		if len(rec) < 6 {
			continue
		}
		var v [6]float64
		ok := true
		for i := range v {
			f, err := strconv.ParseFloat(rec[i], 64)
			if err != nil {
				ok = false
				break
			}
			v[i] = f
		}
		if !ok {
			continue
		}
		stars = append(stars, starfield.Star{X: v[0], Y: v[1], VX: v[2], VY: v[3], Radius: v[4], Alpha: v[5]})
	}
	return stars, nil
}
