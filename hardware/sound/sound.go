// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package sound

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hexkey/gopher8/hardware/timers"
	"github.com/hexkey/gopher8/logger"
)

// SampleRate of the generated tone in samples per second.
const SampleRate = 44100

const (
	// frequency of the beeper tone in hertz
	toneFrequency = 320

	// peak value of the generated sine wave. the samples are signed bytes
	// so this is a little under a quarter of full scale
	amplitude = 30

	// number of samples generated in one pass of the synthesis loop
	bufLen = 1024
)

// Mixer implementations consume the tone generated by the SoundGenerator.
//
// Queue is called repeatedly with freshly generated samples while the tone
// is sounding. Samples are signed 8bit mono at SampleRate. A Mixer that
// plays samples in real time should block in Queue once it has enough
// buffered, which is what paces the synthesis loop.
type Mixer interface {
	// Start is called when the beeper turns on and Stop when it turns off.
	Start()
	Stop()

	// Queue the next run of samples
	Queue(samples []uint8) error

	// EndMixing is called once the SoundGenerator has wound down. No other
	// function in the interface will be called after this.
	EndMixing() error
}

// SoundGenerator turns the sound timer into an audible tone. It watches for
// changes to the timer and keeps the attached mixers supplied with samples
// for as long as the timer is running.
type SoundGenerator struct {
	tmr    *timers.Timers
	mixers []Mixer

	// whether the tone is currently sounding. written by the scheduler,
	// read by the synthesis loop
	playing atomic.Bool

	// wakes the synthesis loop when playing becomes true
	resume chan struct{}
}

// NewSoundGenerator is the preferred method of initialisation for the
// SoundGenerator type.
func NewSoundGenerator(tmr *timers.Timers) *SoundGenerator {
	return &SoundGenerator{
		tmr:    tmr,
		resume: make(chan struct{}, 1),
	}
}

// AddMixer attaches a consumer of the generated tone. Must be called before
// Run.
func (snd *SoundGenerator) AddMixer(m Mixer) {
	snd.mixers = append(snd.mixers, m)
}

// Run the sound generator until the context is cancelled. Intended to be
// run in its own goroutine. Every attached mixer has its EndMixing function
// called before Run returns.
func (snd *SoundGenerator) Run(ctx context.Context) {
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		snd.synthesise(ctx)
	}()

	snd.schedule(ctx)
	wg.Wait()

	for _, m := range snd.mixers {
		if err := m.EndMixing(); err != nil {
			logger.Logf("sound", "%v", err)
		}
	}
}

// the scheduler sleeps until the sound timer is running, starts the mixers
// and the synthesis loop, and stops them again once the timer has expired.
// an expiry that moves while the tone is sounding shortens or extends the
// sleep accordingly.
func (snd *SoundGenerator) schedule(ctx context.Context) {
	for {
		for snd.tmr.SoundRemaining() <= 0 {
			select {
			case <-ctx.Done():
				return
			case <-snd.tmr.SoundChange():
			}
		}

		for _, m := range snd.mixers {
			m.Start()
		}
		snd.playing.Store(true)
		select {
		case snd.resume <- struct{}{}:
		default:
		}

		for {
			d := snd.tmr.SoundRemaining()
			if d <= 0 {
				break
			}
			select {
			case <-ctx.Done():
				snd.playing.Store(false)
				for _, m := range snd.mixers {
					m.Stop()
				}
				return
			case <-snd.tmr.SoundChange():
			case <-time.After(d):
			}
		}

		snd.playing.Store(false)
		for _, m := range snd.mixers {
			m.Stop()
		}
	}
}

// the synthesis loop fills buffers with the beeper tone and hands them to
// the mixers. the phase of the sine wave carries over from one buffer to
// the next so the tone is free of discontinuities no matter how the
// buffers line up.
func (snd *SoundGenerator) synthesise(ctx context.Context) {
	buf := make([]uint8, bufLen)
	step := 2 * math.Pi * toneFrequency / SampleRate

	var phase float64

	for {
		if !snd.playing.Load() {
			select {
			case <-ctx.Done():
				return
			case <-snd.resume:
			}
			continue
		}

		for i := range buf {
			buf[i] = uint8(int8(amplitude * math.Sin(phase)))
			phase += step
			if phase >= 2*math.Pi {
				phase -= 2 * math.Pi
			}
		}

		for _, m := range snd.mixers {
			if err := m.Queue(buf); err != nil {
				logger.Logf("sound", "%v", err)
			}
		}

		if len(snd.mixers) == 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(bufLen * time.Second / SampleRate):
			}
		}
	}
}
