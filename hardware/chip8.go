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

package hardware

import (
	"context"
	"errors"

	"github.com/hexkey/gopher8/curated"
	"github.com/hexkey/gopher8/hardware/cpu"
	"github.com/hexkey/gopher8/hardware/cpu/instructions"
	"github.com/hexkey/gopher8/hardware/keypad"
	"github.com/hexkey/gopher8/hardware/memory"
	"github.com/hexkey/gopher8/hardware/preferences"
	"github.com/hexkey/gopher8/hardware/screen"
	"github.com/hexkey/gopher8/hardware/sound"
	"github.com/hexkey/gopher8/hardware/timers"
	"github.com/hexkey/gopher8/prefs"
	"github.com/hexkey/gopher8/romloader"
)

// Chip8 is the main container for the emulated components of the machine.
type Chip8 struct {
	Mem *memory.Memory
	Scr *screen.Screen
	Key *keypad.Keypad
	Tmr *timers.Timers
	CPU *cpu.CPU
	Snd *sound.SoundGenerator

	Prefs *preferences.Preferences

	// the program currently attached. kept so a reset can reload it
	loader romloader.Loader
}

// NewChip8 creates a new machine and everything associated with it. It is
// used for all aspects of emulation: play sessions, disassembly and
// performance measurement.
func NewChip8() (*Chip8, error) {
	c8 := &Chip8{}

	c8.Mem = memory.NewMemory()
	c8.Scr = screen.NewScreen()
	c8.Key = keypad.NewKeypad()
	c8.Tmr = timers.NewTimers()
	c8.CPU = cpu.NewCPU(c8.Mem, c8.Scr, c8.Key, c8.Tmr)
	c8.Snd = sound.NewSoundGenerator(c8.Tmr)

	var err error
	c8.Prefs, err = preferences.NewPreferences()
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	// mirror the quirk preferences into the CPU, now and on any later change
	c8.CPU.ShiftQuirk = c8.Prefs.ShiftQuirk.Get().(bool)
	c8.Prefs.ShiftQuirk.SetHookPost(func(v prefs.Value) error {
		c8.CPU.ShiftQuirk = v.(bool)
		return nil
	})

	c8.CPU.IndexQuirk = c8.Prefs.IndexQuirk.Get().(bool)
	c8.Prefs.IndexQuirk.SetHookPost(func(v prefs.Value) error {
		c8.CPU.IndexQuirk = v.(bool)
		return nil
	})

	c8.CPU.WaitForRelease = c8.Prefs.WaitForRelease.Get().(bool)
	c8.Prefs.WaitForRelease.SetHookPost(func(v prefs.Value) error {
		c8.CPU.WaitForRelease = v.(bool)
		return nil
	})

	return c8, nil
}

// AttachROM attaches a loaded program to the machine and resets it.
func (c8 *Chip8) AttachROM(loader romloader.Loader) error {
	c8.loader = loader
	return c8.Reset()
}

// Reset the machine. Memory is cleared and the attached program written
// back to the program area; the screen blanked; the timers zeroed; and the
// CPU returned to the program start address.
func (c8 *Chip8) Reset() error {
	c8.Mem.Reset()
	if len(c8.loader.Data) > 0 {
		if err := c8.Mem.WriteRange(memory.ProgramStart, c8.loader.Data); err != nil {
			return curated.Errorf("hardware: %v", err)
		}
	}
	c8.Scr.Clear()
	c8.Tmr.SetDelay(0)
	c8.Tmr.SetSound(0)
	c8.CPU.Reset()
	return nil
}

// Step the machine one instruction: pace, fetch, decode, execute.
//
// An opcode that decodes to no instruction is an error. There is no way to
// resynchronise with a program that has wandered into data, so the error is
// fatal; it carries the opcode, the program counter and the cycle count for
// the post-mortem.
func (c8 *Chip8) Step(ctx context.Context) error {
	if err := c8.CPU.SyncTime(ctx, false); err != nil {
		return err
	}

	opcode, err := c8.CPU.FetchOpcode()
	if err != nil {
		return err
	}

	ins, err := instructions.Decode(opcode)
	if err != nil {
		return curated.Errorf("hardware: %v [PC=%#04x, cycle=%d]", err, c8.CPU.PC, c8.CPU.Cycles())
	}

	return c8.CPU.ExecuteInstruction(ctx, ins)
}

// Run the machine until the continueCheck callback returns false, the
// context is cancelled, or an error occurs. Cancellation is a clean stop,
// not an error.
//
// The sound generator runs on its own goroutine for the duration of the
// call and is wound down, mixers and all, before Run returns.
func (c8 *Chip8) Run(ctx context.Context, continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		c8.Snd.Run(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	cont := true
	for cont {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := c8.Step(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		var err error
		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
