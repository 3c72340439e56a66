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

// Package preferences collates the settings that decide how the hardware
// behaves from one run to the next. Values live in the global preferences
// file; command line flags can override them through the prefs package's
// command line stack.
package preferences

import (
	"github.com/hexkey/gopher8/prefs"
	"github.com/hexkey/gopher8/resources"
)

// Preferences for the interpreter hardware.
type Preferences struct {
	dsk *prefs.Disk

	// alternate shift instructions: VX shifted in place, VY ignored. the
	// classic forms shift VY into VX
	ShiftQuirk prefs.Bool

	// alternate register dump/load: the index register is left unchanged.
	// the classic forms move it past the registers transferred
	IndexQuirk prefs.Bool

	// the wait-key instruction reacts only to key releases, as on the
	// COSMAC VIP, rather than to any key change
	WaitForRelease prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("cpu.shiftquirk", &p.ShiftQuirk)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("cpu.indexquirk", &p.IndexQuirk)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("cpu.waitforrelease", &p.WaitForRelease)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return p, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values. The defaults are the
// semantics of the earliest CHIP-8 interpreters.
func (p *Preferences) SetDefaults() {
	p.ShiftQuirk.Set(false)
	p.IndexQuirk.Set(false)
	p.WaitForRelease.Set(false)
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	return p.dsk.Reset()
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
