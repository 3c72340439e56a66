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

package sound_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hexkey/gopher8/hardware/sound"
	"github.com/hexkey/gopher8/hardware/timers"
	"github.com/hexkey/gopher8/test"
)

// tapMixer records what the sound generator does to it. the Queue function
// sleeps for the playing time of the samples it receives, pacing the
// synthesis loop the way a real audio device would.
type tapMixer struct {
	crit    sync.Mutex
	starts  int
	stops   int
	samples int
	clipped bool
	ended   bool
}

func (m *tapMixer) Start() {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.starts++
}

func (m *tapMixer) Stop() {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.stops++
}

func (m *tapMixer) Queue(samples []uint8) error {
	m.crit.Lock()
	m.samples += len(samples)
	for _, s := range samples {
		v := int8(s)
		if v < -30 || v > 30 {
			m.clipped = true
		}
	}
	m.crit.Unlock()

	time.Sleep(time.Duration(len(samples)) * time.Second / sound.SampleRate)
	return nil
}

func (m *tapMixer) EndMixing() error {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.ended = true
	return nil
}

func (m *tapMixer) snapshot() tapMixer {
	m.crit.Lock()
	defer m.crit.Unlock()
	return tapMixer{
		starts:  m.starts,
		stops:   m.stops,
		samples: m.samples,
		clipped: m.clipped,
		ended:   m.ended,
	}
}

func startGenerator(tmr *timers.Timers, mix sound.Mixer) (context.CancelFunc, chan struct{}) {
	snd := sound.NewSoundGenerator(tmr)
	snd.AddMixer(mix)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		snd.Run(ctx)
		close(done)
	}()

	return cancel, done
}

func TestToneLifecycle(t *testing.T) {
	tmr := timers.NewTimers()
	mix := &tapMixer{}
	cancel, done := startGenerator(tmr, mix)

	// six ticks is a tenth of a second of tone
	tmr.SetSound(6)
	time.Sleep(250 * time.Millisecond)

	s := mix.snapshot()
	test.ExpectEquality(t, s.starts, 1)
	test.ExpectEquality(t, s.stops, 1)
	test.ExpectEquality(t, s.samples > 0, true)
	test.ExpectEquality(t, s.samples < sound.SampleRate, true)
	test.ExpectEquality(t, s.clipped, false)

	cancel()
	<-done
	test.ExpectEquality(t, mix.snapshot().ended, true)
}

func TestSilence(t *testing.T) {
	tmr := timers.NewTimers()
	mix := &tapMixer{}
	cancel, done := startGenerator(tmr, mix)

	// no tone has been asked for so nothing should reach the mixer
	time.Sleep(50 * time.Millisecond)

	s := mix.snapshot()
	test.ExpectEquality(t, s.starts, 0)
	test.ExpectEquality(t, s.samples, 0)

	cancel()
	<-done
}

func TestRetrigger(t *testing.T) {
	tmr := timers.NewTimers()
	mix := &tapMixer{}
	cancel, done := startGenerator(tmr, mix)

	tmr.SetSound(3)
	time.Sleep(150 * time.Millisecond)
	tmr.SetSound(3)
	time.Sleep(150 * time.Millisecond)

	s := mix.snapshot()
	test.ExpectEquality(t, s.starts, 2)
	test.ExpectEquality(t, s.stops, 2)

	cancel()
	<-done
}

func TestStopOnCancellation(t *testing.T) {
	tmr := timers.NewTimers()
	mix := &tapMixer{}
	cancel, done := startGenerator(tmr, mix)

	// a second of tone but the generator is wound down early. the mixer
	// must still see the stop and the end of mixing
	tmr.SetSound(60)
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	s := mix.snapshot()
	test.ExpectEquality(t, s.starts, 1)
	test.ExpectEquality(t, s.stops, 1)
	test.ExpectEquality(t, s.ended, true)
}
