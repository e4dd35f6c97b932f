// Package audio plays the game's sound effects through the beep speaker.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/jtestard/pongcade/pong"
)

const (
	sampleRate      = beep.SampleRate(48000)
	resampleQuality = 4
)

// Service loads sound effects into memory and plays them fire-and-forget.
// Without a working audio device it stays in silent mode and Play does
// nothing.
type Service struct {
	mu      sync.Mutex
	sounds  map[pong.Sound]*beep.Buffer
	mixer   *beep.Mixer
	volume  float64
	running bool

	muted atomic.Bool
}

// NewService creates a service playing at the given volume. Volume is a
// base 2 exponent: 0 leaves samples unchanged, -1 halves the amplitude.
func NewService(volume float64) *Service {
	return &Service{
		sounds: make(map[pong.Sound]*beep.Buffer),
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Decode reads a wav file into a buffer resampled to the speaker rate.
func Decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound: %w", err)
	}
	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer stream.Close()

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	if format.SampleRate == sampleRate {
		buf.Append(stream)
	} else {
		buf.Append(beep.Resample(resampleQuality, format.SampleRate, sampleRate, stream))
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}

// Load decodes the file at path and binds it to snd.
func (s *Service) Load(snd pong.Sound, path string) error {
	buf, err := Decode(path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sounds[snd] = buf
	s.mu.Unlock()
	return nil
}

// LoadDir loads every sound effect from dir. Sounds that fail to load stay
// silent; the returned error lists all of them.
func (s *Service) LoadDir(dir string) error {
	var errs []error
	for _, snd := range pong.Sounds {
		if err := s.Load(snd, filepath.Join(dir, pong.SoundPaths[snd])); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Loaded reports whether snd has a buffer
func (s *Service) Loaded(snd pong.Sound) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sounds[snd] != nil
}

// Start opens the speaker. On failure the service stays silent and the
// error is returned for logging only.
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.running = true
	return nil
}

// Stop silences all sounds and closes the speaker
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.running = false
}

// Play starts snd and returns immediately
func (s *Service) Play(snd pong.Sound) {
	if s.muted.Load() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := s.sounds[snd]
	if !s.running || buf == nil {
		return
	}
	v := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   s.volume,
	}
	speaker.Lock()
	s.mixer.Add(v)
	speaker.Unlock()
}

// SetMuted turns sound effects off or back on
func (s *Service) SetMuted(muted bool) {
	s.muted.Store(muted)
}

// IsMuted returns current mute state
func (s *Service) IsMuted() bool {
	return s.muted.Load()
}
