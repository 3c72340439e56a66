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
	"io"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexkey/gopher8/curated"
	"github.com/hexkey/gopher8/gui"
	"github.com/hexkey/gopher8/hardware/keypad"
	"github.com/hexkey/gopher8/hardware/screen"
	"github.com/hexkey/gopher8/logger"
	"github.com/hexkey/gopher8/version"
)

// number of bytes per pixel in the texture.
const pixelDepth = 4

// the scale used when no preference has been stored and no scale has been
// requested on the command line.
const defaultScale = 10.0

// window repaints per second. the emulated screen is only actually repainted
// when it has been touched since the previous frame.
const framesPerSecond = 60

// Display is an SDL2 front end for the emulated screen and keypad. It must be
// created and serviced from the main goroutine.
type Display struct {
	emuScreen *screen.Screen
	emuKeypad *keypad.Keypad

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// events not consumed by the keypad are forwarded over the event channel.
	// sends never block, a slow consumer drops events rather than stalling
	// the main goroutine
	eventChannel chan gui.Event

	lmtr *frameLimiter

	// the byte array copied to the texture on every repaint. alpha channel is
	// preset and never changes
	pixels []byte

	// the amount of scaling applied to each pixel. the window is resized to
	// suit
	scale float32

	prefs *preferences
}

// NewDisplay is the preferred method of initialisation for the Display type.
// The window is shown immediately.
//
// A scale of zero (or less) means the stored scale preference, or a sensible
// default if there is no stored preference.
//
// MUST ONLY be called from the main goroutine.
func NewDisplay(emuScreen *screen.Screen, emuKeypad *keypad.Keypad, scale float32, caption string) (*Display, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf("sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	scr := &Display{
		emuScreen: emuScreen,
		emuKeypad: emuKeypad,
		lmtr:      newFrameLimiter(framesPerSecond),
	}

	// window size is set by setScaling() below
	scr.window, err = sdl.CreateWindow(fmt.Sprintf("%s (%s)", version.ApplicationName, caption),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		0, 0, sdl.WINDOW_HIDDEN)
	if err != nil {
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	// the texture is the same size as the emulated screen. scaling to window
	// size is handled by the renderer
	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, screen.Width, screen.Height)
	if err != nil {
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	scr.pixels = make([]byte, screen.Width*screen.Height*pixelDepth)
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	err = scr.setScaling(defaultScale)
	if err != nil {
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	// disk preferences may replace the default scale
	scr.prefs, err = newPreferences(scr)
	if err != nil {
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	// an explicitly requested scale trumps the stored preference
	if scale > 0 {
		err = scr.setScaling(scale)
		if err != nil {
			return nil, curated.Errorf("sdldisplay: %v", err)
		}
	}

	// ignore mouse motion. the event queue fills up quickly with motion
	// events and there is nothing we want them for
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	// first frame is always drawn, whatever the state of the draw flag
	err = scr.render()
	if err != nil {
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	scr.window.Show()

	return scr, nil
}

// SetEventChannel sets the channel to which window events are forwarded.
// Should be called before the emulation starts running.
func (scr *Display) SetEventChannel(ch chan gui.Event) {
	scr.eventChannel = ch
}

// resize the window to suit the new scale value.
func (scr *Display) setScaling(scale float32) error {
	scr.scale = scale

	w := int32(float32(screen.Width) * scale)
	h := int32(float32(screen.Height) * scale)
	scr.window.SetSize(w, h)

	err := scr.renderer.SetScale(scale, scale)
	if err != nil {
		return err
	}

	return nil
}

// render copies the current state of the emulated screen to the window. The
// snapshot consumes the draw flag.
func (scr *Display) render() error {
	grid := scr.emuScreen.Snapshot(true)

	i := 0
	for y := 0; y < screen.Height; y++ {
		for x := 0; x < screen.Width; x++ {
			var v byte
			if grid[y][x] {
				v = 255
			}
			scr.pixels[i] = v
			scr.pixels[i+1] = v
			scr.pixels[i+2] = v
			i += pixelDepth
		}
	}

	err := scr.texture.Update(nil, scr.pixels, screen.Width*pixelDepth)
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}

// Destroy frees resources used by the display, saving window preferences
// first. Errors are printed to the io.Writer.
//
// MUST ONLY be called from the main goroutine.
func (scr *Display) Destroy(output io.Writer) {
	err := scr.prefs.save()
	if err != nil {
		fmt.Fprintf(output, "%v\n", err)
	}

	err = scr.texture.Destroy()
	if err != nil {
		fmt.Fprintf(output, "%v\n", err)
	}

	err = scr.renderer.Destroy()
	if err != nil {
		fmt.Fprintf(output, "%v\n", err)
	}

	err = scr.window.Destroy()
	if err != nil {
		fmt.Fprintf(output, "%v\n", err)
	}
}
