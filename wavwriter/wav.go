// This file is part of ChessWAV.
//
// ChessWAV is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ChessWAV is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ChessWAV.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// when EndMixing() is called. Nothing is written if the buffered audio is too
// long for a WAV file.
package wavwriter

import (
	"bufio"
	"os"

	"github.com/jetsetilly/chesswav/curated"
	"github.com/jetsetilly/chesswav/logger"
	"github.com/jetsetilly/chesswav/wavfile"
	"github.com/youpy/go-wav"
)

const logTag = "wavwriter"

// WavWriter collects samples and writes them to a file.
type WavWriter struct {
	filename string
	buffer   []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename")
	}

	aw := &WavWriter{
		filename: filename,
		buffer:   make([]wav.Sample, 0),
	}

	return aw, nil
}

// SetAudio adds samples to the end of the buffer.
func (aw *WavWriter) SetAudio(samples []int16) error {
	for _, s := range samples {
		w := wav.Sample{}
		w.Values[0] = int(s)
		aw.buffer = append(aw.buffer, w)
	}
	return nil
}

// NumSamples returns the number of samples buffered so far.
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer)
}

// EndMixing writes the buffered samples to the file.
func (aw *WavWriter) EndMixing() (rerr error) {
	// the same limits apply as for wavfile. check before creating the file
	_, err := wavfile.Header(len(aw.buffer))
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	// go-wav writes samples one byte at a time
	bw := bufio.NewWriter(f)

	enc := wav.NewWriter(bw, uint32(len(aw.buffer)), wavfile.NumChannels, wavfile.SampleRate, wavfile.BitsPerSample)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, logTag, "writing %d samples to %s", len(aw.buffer), aw.filename)

	err = enc.WriteSamples(aw.buffer)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = bw.Flush()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset discards all buffered samples.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}
