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

// Package sdlaudio plays the beeper tone through an SDL audio device. The
// device queue doubles as the pacing mechanism for the tone synthesis loop:
// Queue() does not return while the queue is full.
package sdlaudio

import (
	"sync/atomic"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexkey/gopher8/curated"
	"github.com/hexkey/gopher8/hardware/sound"
	"github.com/hexkey/gopher8/logger"
)

// samples requested per callback period. matches the size of the buffers
// produced by the synthesis loop.
const bufferLength = 1024

// Queue() waits while the device queue holds more than queueLimit bytes of
// unplayed audio. two buffers of slack keeps latency low without risking an
// underrun.
const queueLimit = 2 * bufferLength

// how often a waiting Queue() rechecks the device queue.
const queuePoll = 5 * time.Millisecond

// Audio outputs sound using SDL. It implements the sound.Mixer interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// the device does not drain while paused so Queue() must not wait on one
	paused atomic.Bool
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// device starts paused.
func NewAudio() (*Audio, error) {
	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud := &Audio{}
	aud.paused.Store(true)

	spec := &sdl.AudioSpec{
		Freq:     sound.SampleRate,
		Format:   sdl.AUDIO_S8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud.spec = actualSpec

	logger.Logf("sdlaudio", "device opened: %dHz, %d samples", aud.spec.Freq, aud.spec.Samples)

	return aud, nil
}

// Start implements the sound.Mixer interface. Any unplayed audio left over
// from the previous tone is discarded.
func (aud *Audio) Start() {
	sdl.ClearQueuedAudio(aud.id)
	aud.paused.Store(false)
	sdl.PauseAudioDevice(aud.id, false)
}

// Stop implements the sound.Mixer interface.
func (aud *Audio) Stop() {
	aud.paused.Store(true)
	sdl.PauseAudioDevice(aud.id, true)
}

// Queue implements the sound.Mixer interface. It does not return until the
// device queue has drained below the queue limit, pacing the caller to the
// rate the samples are actually played at.
func (aud *Audio) Queue(samples []uint8) error {
	for !aud.paused.Load() && sdl.GetQueuedAudioSize(aud.id) > queueLimit {
		time.Sleep(queuePoll)
	}

	err := sdl.QueueAudio(aud.id, samples)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// EndMixing implements the sound.Mixer interface.
func (aud *Audio) EndMixing() error {
	sdl.CloseAudioDevice(aud.id)
	return nil
}
