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

package timers_test

import (
	"testing"
	"time"

	"github.com/hexkey/gopher8/hardware/timers"
	"github.com/hexkey/gopher8/test"
)

func TestFreshTimers(t *testing.T) {
	tmr := timers.NewTimers()
	test.ExpectEquality(t, tmr.Delay(), 0)
	test.ExpectEquality(t, tmr.Sound(), 0)
	test.ExpectEquality(t, tmr.SoundRemaining() <= 0, true)
}

func TestDelayCountdown(t *testing.T) {
	tmr := timers.NewTimers()

	tmr.SetDelay(60)
	test.ExpectAbsorbedDifference(t, int(tmr.Delay()), 60, 1)

	// a tick is a sixtieth of a second so sleeping for a tenth of a second
	// should consume about six of them
	time.Sleep(100 * time.Millisecond)
	test.ExpectAbsorbedDifference(t, int(tmr.Delay()), 54, 2)
}

func TestDelayExpiry(t *testing.T) {
	tmr := timers.NewTimers()

	tmr.SetDelay(1)
	time.Sleep(50 * time.Millisecond)

	// well past expiry. the reading stops at zero rather than going
	// negative
	test.ExpectEquality(t, tmr.Delay(), 0)
}

func TestTimerIndependence(t *testing.T) {
	tmr := timers.NewTimers()

	tmr.SetDelay(200)
	test.ExpectEquality(t, tmr.Sound(), 0)

	tmr.SetSound(100)
	test.ExpectAbsorbedDifference(t, int(tmr.Delay()), 200, 1)
	test.ExpectAbsorbedDifference(t, int(tmr.Sound()), 100, 1)
}

func TestZeroSet(t *testing.T) {
	tmr := timers.NewTimers()

	tmr.SetDelay(60)
	tmr.SetDelay(0)
	test.ExpectEquality(t, tmr.Delay(), 0)
}

func TestSoundChange(t *testing.T) {
	tmr := timers.NewTimers()

	// no wake before anything has happened
	select {
	case <-tmr.SoundChange():
		t.Fatalf("sound change signalled before any change")
	default:
	}

	tmr.SetSound(4)

	// the wake must be waiting and by the time we receive it the new expiry
	// must be visible
	select {
	case <-tmr.SoundChange():
		test.ExpectEquality(t, tmr.SoundRemaining() > 0, true)
		test.ExpectAbsorbedDifference(t, int(tmr.Sound()), 4, 1)
	default:
		t.Fatalf("sound change not signalled")
	}
}

func TestSoundChangeCoalesces(t *testing.T) {
	tmr := timers.NewTimers()

	// repeated sets without an intervening receive never block and leave a
	// single wake primed
	tmr.SetSound(10)
	tmr.SetSound(20)
	tmr.SetSound(30)

	select {
	case <-tmr.SoundChange():
	default:
		t.Fatalf("sound change not signalled")
	}
	select {
	case <-tmr.SoundChange():
		t.Fatalf("more than one wake primed")
	default:
	}

	// the expiry read after the wake is the most recent one
	test.ExpectAbsorbedDifference(t, int(tmr.Sound()), 30, 1)
}

func TestCountClamp(t *testing.T) {
	tmr := timers.NewTimers()
	tmr.SetDelay(255)
	test.ExpectAbsorbedDifference(t, int(tmr.Delay()), 255, 1)
}
