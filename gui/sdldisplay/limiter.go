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

package sdldisplay

import (
	"time"
)

// frameLimiter paces the Service() function to the required number of frames
// per second.
type frameLimiter struct {
	secondsPerFrame time.Duration
	tick            chan bool
}

func newFrameLimiter(framesPerSecond int) *frameLimiter {
	lmtr := &frameLimiter{
		secondsPerFrame: time.Second / time.Duration(framesPerSecond),
		tick:            make(chan bool),
	}

	// the sleep length is adjusted every frame to account for the time spent
	// outside of the sleep itself
	go func() {
		adjustedSecondsPerFrame := lmtr.secondsPerFrame
		t := time.Now()
		for {
			time.Sleep(adjustedSecondsPerFrame)
			nt := time.Now()
			lmtr.tick <- true
			adjustedSecondsPerFrame -= nt.Sub(t) - lmtr.secondsPerFrame
			t = nt
		}
	}()

	return lmtr
}

func (lmtr *frameLimiter) wait() {
	<-lmtr.tick
}
