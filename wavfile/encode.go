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

package wavfile

import (
	"encoding/binary"
	"io"

	"github.com/jetsetilly/chesswav/curated"
)

// WriteError is returned by Write() if the underlying writer fails.
const WriteError = "wavfile: %v"

// Encode returns the complete file for the samples.
func Encode(samples []int16) ([]byte, error) {
	h, err := Header(len(samples))
	if err != nil {
		return nil, err
	}

	b := make([]byte, HeaderSize+len(samples)*BytesPerSample)
	copy(b, h)
	putSamples(b[HeaderSize:], samples)

	return b, nil
}

// Write the complete file for the samples to the io.Writer. The header is
// checked before anything is written.
func Write(w io.Writer, samples []int16) error {
	h, err := Header(len(samples))
	if err != nil {
		return err
	}

	_, err = w.Write(h)
	if err != nil {
		return curated.Errorf(WriteError, err)
	}

	// write samples in blocks to avoid a second copy of a long game
	const blockSamples = 8192
	buf := make([]byte, blockSamples*BytesPerSample)

	for len(samples) > 0 {
		n := min(len(samples), blockSamples)
		putSamples(buf, samples[:n])
		_, err = w.Write(buf[:n*BytesPerSample])
		if err != nil {
			return curated.Errorf(WriteError, err)
		}
		samples = samples[n:]
	}

	return nil
}

// putSamples writes little-endian samples to b, which must be large enough.
func putSamples(b []byte, samples []int16) {
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[i*BytesPerSample:], uint16(s))
	}
}
