// Package sound plays short feedback tones for grid activations
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a feedback sound
type Cue int

const (
	// CueActivate follows Enter on a leaf element
	CueActivate Cue = iota
	// CueEnter follows drilling into a nested grid
	CueEnter
	// CueBack follows returning to the parent grid
	CueBack
)

func (c Cue) String() string {
	switch c {
	case CueActivate:
		return "activate"
	case CueEnter:
		return "enter"
	case CueBack:
		return "back"
	default:
		return "unknown"
	}
}

// Player plays cues. Implementations must be safe to call from the
// goroutine driving the grid.
type Player interface {
	Play(c Cue)
	Close()
}

// Nop is a Player that does nothing
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Close()   {}

// tone is one segment of a cue
type tone struct {
	freq     float64
	duration time.Duration
}

var cues = map[Cue][]tone{
	CueActivate: {{880, 40 * time.Millisecond}},
	CueEnter:    {{660, 30 * time.Millisecond}, {990, 40 * time.Millisecond}},
	CueBack:     {{990, 30 * time.Millisecond}, {660, 40 * time.Millisecond}},
}

// Streamer builds the samples for c at rate
func Streamer(c Cue, rate beep.SampleRate) (beep.Streamer, error) {
	segments, ok := cues[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", int(c))
	}
	parts := make([]beep.Streamer, 0, len(segments))
	for _, s := range segments {
		sine, err := generators.SineTone(rate, s.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(rate.N(s.duration), sine))
	}
	return beep.Seq(parts...), nil
}

// Speaker plays cues on the default audio device
type Speaker struct {
	mu          sync.Mutex
	initialized bool
}

// NewSpeaker initialises the audio device
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to initialize audio: %w", err)
	}
	return &Speaker{initialized: true}, nil
}

// Play starts c without waiting for it to finish
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	streamer, err := Streamer(c, sampleRate)
	if err != nil {
		return
	}
	speaker.Play(streamer)
}

// Close releases the audio device
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Close()
	s.initialized = false
}
