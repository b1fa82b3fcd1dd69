// Package output plays a Synth through the default portaudio device.
package output

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/starfield/internal/audio"
	"github.com/san-kum/starfield/internal/logging"
)

type Stream struct {
	stream *portaudio.Stream
	log    *logging.Logger
}

// Open starts an output-only stereo stream pulling from synth.
func Open(synth *audio.Synth, log *logging.Logger) (*Stream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize portaudio: %w", err)
	}

	// duplex streams often fail on Linux when devices differ, so no input
	stream, err := portaudio.OpenDefaultStream(0, 2, audio.SampleRate, audio.BufferSize, synth.Process)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("start stream: %w", err)
	}

	log.Info("audio started: %d Hz, %d frames per buffer", audio.SampleRate, audio.BufferSize)
	return &Stream{stream: stream, log: log}, nil
}

func (s *Stream) Close() error {
	if s == nil || s.stream == nil {
		return nil
	}
	if err := s.stream.Stop(); err != nil {
		s.log.Warn("stop stream: %v", err)
	}
	err := s.stream.Close()
	s.stream = nil
	if terr := portaudio.Terminate(); terr != nil && err == nil {
		err = terr
	}
	if err != nil {
		return fmt.Errorf("close audio: %w", err)
	}
	s.log.Debug("audio stopped")
	return nil
}
