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
	"fmt"

	"github.com/hexkey/gopher8/prefs"
	"github.com/hexkey/gopher8/resources"
)

// preferences that survive between sessions. the window scale is a live
// property of the Display so it is represented by the generic prefs type.
type preferences struct {
	dsk *prefs.Disk
}

func newPreferences(scr *Display) (*preferences, error) {
	p := &preferences{}

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("sdldisplay.scale", prefs.NewGeneric(
		func(v prefs.Value) error {
			var scale float32
			_, err := fmt.Sscanf(v.(string), "%f", &scale)
			if err != nil {
				return err
			}
			return scr.setScaling(scale)
		},
		func() prefs.Value {
			return fmt.Sprintf("%.1f", scr.scale)
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) save() error {
	return p.dsk.Save()
}
