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

// Package playmode ties a prepared machine to its front end and runs it.
// There are no debugging features, the emulation runs until the user closes
// the window, presses escape or interrupts the program.
package playmode

import (
	"context"
	"os"
	"os/signal"

	"github.com/hexkey/gopher8/curated"
	"github.com/hexkey/gopher8/gui"
	"github.com/hexkey/gopher8/hardware"
	"github.com/hexkey/gopher8/logger"
)

// Play runs the emulation until the user asks to quit. The machine should
// have a program attached and any audio mixers added before the call.
//
// Keypad input is applied by the front end directly. The events arriving
// over the event channel are those that end the session.
func Play(c8 *hardware.Chip8, scr gui.GUI) error {
	events := make(chan gui.Event, 8)
	scr.SetEventChannel(events)

	// take over interrupt handling for the duration of the session
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// the emulation can be blocked inside the wait-key instruction for any
	// length of time so quit events cannot be serviced on the emulation
	// goroutine. they cancel the context instead, which every blocking point
	// in the machine honours
	go func() {
		for {
			select {
			case <-intChan:
				cancel()
				return

			case ev := <-events:
				switch ev := ev.(type) {
				case gui.EventWindowClose:
					cancel()
					return

				case gui.EventKeyboard:
					if ev.Key == "Escape" && ev.Down {
						cancel()
						return
					}
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	if c8.CPU.Frequency > 0 {
		logger.Logf("playmode", "running at %dHz", c8.CPU.Frequency)
	} else {
		logger.Log("playmode", "running at an unlimited rate")
	}

	err := c8.Run(ctx, nil)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}
