package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/starfield/internal/starfield"
)

type ExportFrame struct {
	Frame    int     `json:"frame"`
	Links    int     `json:"links"`
	Repelled int     `json:"repelled"`
	Millis   float64 `json:"ms"`
}

// ExportData is a whole run in one document.
type ExportData struct {
	ID      string             `json:"id"`
	Preset  string             `json:"preset,omitempty"`
	Seed    int64              `json:"seed"`
	Width   float64            `json:"width"`
	Height  float64            `json:"height"`
	Config  starfield.Config   `json:"config"`
	Steps   int                `json:"steps"`
	Frames  []ExportFrame      `json:"frames"`
	Stars   []starfield.Star   `json:"stars"`
	Metrics map[string]float64 `json:"metrics"`
}

// Export gathers metadata, frames and final star positions of a run.
func (s *Store) Export(runID string) (*ExportData, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	frames, err := s.LoadFrames(runID)
	if err != nil {
		return nil, err
	}
	stars, err := s.LoadStars(runID)
	if err != nil {
		return nil, err
	}

	data := &ExportData{
		ID:      meta.ID,
		Preset:  meta.Preset,
		Seed:    meta.Seed,
		Width:   meta.Width,
		Height:  meta.Height,
		Config:  meta.Config,
		Steps:   len(frames),
		Frames:  make([]ExportFrame, len(frames)),
		Stars:   stars,
		Metrics: meta.Metrics,
	}
	for i, f := range frames {
		data.Frames[i] = ExportFrame{
			Frame:    f.Frame,
			Links:    f.Links,
			Repelled: f.Repelled,
			Millis:   float64(f.Duration.Microseconds()) / 1000,
		}
	}
	return data, nil
}

func WriteJSON(w io.Writer, data *ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, data *ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, data)
}
