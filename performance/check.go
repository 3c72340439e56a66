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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hexkey/gopher8/curated"
	"github.com/hexkey/gopher8/hardware"
	"github.com/hexkey/gopher8/romloader"
)

// amount of time to allow the execution rate to settle before measurement
// begins.
const leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied program.
//
// The machine runs for the specified duration, after a short leadtime, and
// the aggregate instruction rate is written to output. A frequency of zero
// removes the pacing of the CPU and so measures the raw speed of the
// emulation. When profile is true a CPU profile and a memory profile are
// written to the working directory.
func Check(output io.Writer, profile bool, loader romloader.Loader, frequency int, duration string) error {
	c8, err := hardware.NewChip8()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	c8.CPU.Frequency = frequency

	err = c8.AttachROM(loader)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// the cycle count at the end of the leadtime. the measurement is the
	// difference between this and the count when the machine stops
	var startCycles uint64

	err = cpuProfile(profile, "cpu.profile", func() error {
		// timerChan signals false at the end of the leadtime and true at the
		// end of the measurement period
		timerChan := make(chan bool)

		// the measurement timer is not started until the leadtime signal has
		// been consumed, keeping the period aligned with the cycle count
		// taken below
		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// run until measurement period elapses. the cycle count is only ever
		// read from inside the callback, which runs on the same goroutine as
		// the CPU
		return c8.Run(context.Background(), func() (bool, error) {
			select {
			case v := <-timerChan:
				if v {
					return false, nil
				}
				// leadtime has concluded. measurement begins at this cycle
				startCycles = c8.CPU.Cycles()
			default:
			}
			return true, nil
		})
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numCycles := c8.CPU.Cycles() - startCycles
	rate, accuracy := CalcRate(numCycles, frequency, dur.Seconds())
	if frequency > 0 {
		output.Write([]byte(fmt.Sprintf("%.2f ips (%d instructions in %.2f seconds) %.1f%%\n", rate, numCycles, dur.Seconds(), accuracy)))
	} else {
		output.Write([]byte(fmt.Sprintf("%.2f ips (%d instructions in %.2f seconds)\n", rate, numCycles, dur.Seconds())))
	}

	return memProfile(profile, "mem.profile")
}
