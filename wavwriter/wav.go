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

// Package wavwriter allows writing of the beeper tone to disk as a WAV file.
// Audio data is buffered in memory in its entirety and written to disk on
// program end. Tone bursts are stored back to back, the silence between them
// is not preserved. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/hexkey/gopher8/curated"
	"github.com/hexkey/gopher8/hardware/sound"
	"github.com/hexkey/gopher8/logger"
)

// WavWriter implements the sound.Mixer interface.
type WavWriter struct {
	filename string
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, sound.SampleRate),
	}

	return aw, nil
}

// Start implements the sound.Mixer interface.
func (aw *WavWriter) Start() {
}

// Stop implements the sound.Mixer interface.
func (aw *WavWriter) Stop() {
}

// Queue implements the sound.Mixer interface.
func (aw *WavWriter) Queue(samples []uint8) error {
	// samples arrive as signed eight bit values. eight bit WAV data is
	// unsigned, centred on 128
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(int8(s))+128)
	}

	return nil
}

// EndMixing implements the sound.Mixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	// audio format 1 is PCM
	enc := wav.NewEncoder(f, sound.SampleRate, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sound.SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "audio written to %s", aw.filename)

	return nil
}
