// Package sound plays short tones to accompany terminal interfaces.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// volume is the peak amplitude of a tone.
const volume = 0.2

// Chimer plays short tones.
type Chimer interface {
	Chime(freq float64, d time.Duration)
}

// Silent is a Chimer that plays nothing.
type Silent struct{}

func (Silent) Chime(float64, time.Duration) {}

// Speaker plays tones through the system's default audio device.
type Speaker struct {
	sr beep.SampleRate
}

// OpenSpeaker initializes the speaker at sr. Close must be called once the
// Speaker is no longer needed.
func OpenSpeaker(sr beep.SampleRate) (*Speaker, error) {
	if err := speaker.Init(sr, sr.N(time.Millisecond*50)); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}

	return &Speaker{sr: sr}, nil
}

// Chime plays a tone of freq Hz for d without waiting for it to finish.
func (s *Speaker) Chime(freq float64, d time.Duration) {
	speaker.Play(Tone(s.sr, freq, d))
}

func (s *Speaker) Close() {
	speaker.Close()
}

// Tone returns a sine wave of freq Hz that fades out linearly over d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	step := 2 * math.Pi * freq / float64(sr)

	i := 0
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for j := range samples {
			fade := 1 - float64(i)/float64(total)
			v := volume * fade * math.Sin(step*float64(i))
			samples[j] = [2]float64{v, v}
			i++
		}

		return len(samples), true
	}))
}
