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

package timers

import (
	"sync/atomic"
	"time"
)

// the rate at which the delay and sound timers count down, in ticks per
// second.
const TickRate = 60

// Timers are the two countdown timers of the CHIP-8 machine. The delay
// timer is read back by programs for pacing; the sound timer keeps the
// beeper on for as long as it is non-zero.
//
// Neither timer is ever decremented by a background process. Setting a
// timer records the moment it will reach zero and reading it derives the
// current count from that moment. The expiry times are atomics: readings
// from the CPU, the renderer or the sound scheduler need no further
// synchronisation.
type Timers struct {
	// the reference point for the monotonic clock readings stored in the
	// expiry values
	created time.Time

	// times at which each timer reaches zero, in nanoseconds on the clock
	// defined by the created field
	delayExpiry atomic.Int64
	soundExpiry atomic.Int64

	// written to, without ever blocking, whenever the sound expiry moves.
	// the new expiry value is always stored before the channel is written
	// to, so the sound scheduler can never miss an update by reading a
	// stale expiry after a wake
	soundChange chan struct{}
}

// NewTimers is the preferred method of initialisation for the Timers type.
// Both timers begin expired.
func NewTimers() *Timers {
	return &Timers{
		created:     time.Now(),
		soundChange: make(chan struct{}, 1),
	}
}

// nanoseconds since the reference point. the monotonic clock makes this
// immune to wall clock adjustments.
func (tmr *Timers) now() int64 {
	return int64(time.Since(tmr.created))
}

// expiry time for a timer set to d ticks from now.
func (tmr *Timers) expiry(d uint8) int64 {
	return tmr.now() + int64(d)*int64(time.Second)/TickRate
}

// the current count for a timer expiring at the given time. never negative,
// never more than a byte.
func (tmr *Timers) count(expiry int64) uint8 {
	n := (expiry - tmr.now() + int64(time.Second)/(2*TickRate)) / (int64(time.Second) / TickRate)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// SetDelay starts the delay timer at d ticks.
func (tmr *Timers) SetDelay(d uint8) {
	tmr.delayExpiry.Store(tmr.expiry(d))
}

// SetSound starts the sound timer at d ticks and wakes the sound scheduler.
func (tmr *Timers) SetSound(d uint8) {
	tmr.soundExpiry.Store(tmr.expiry(d))

	// the store above must complete before this wake. if the channel is
	// already primed the scheduler is yet to notice the previous change and
	// will see this one at the same time
	select {
	case tmr.soundChange <- struct{}{}:
	default:
	}
}

// Delay returns the current count of the delay timer.
func (tmr *Timers) Delay() uint8 {
	return tmr.count(tmr.delayExpiry.Load())
}

// Sound returns the current count of the sound timer.
func (tmr *Timers) Sound() uint8 {
	return tmr.count(tmr.soundExpiry.Load())
}

// SoundRemaining returns the duration until the sound timer reaches zero.
// Zero or negative means the timer has expired.
func (tmr *Timers) SoundRemaining() time.Duration {
	return time.Duration(tmr.soundExpiry.Load() - tmr.now())
}

// SoundChange returns the channel written to whenever the sound expiry
// moves. Intended for the sound scheduler; there is no value in more than
// one goroutine receiving from it.
func (tmr *Timers) SoundChange() <-chan struct{} {
	return tmr.soundChange
}
