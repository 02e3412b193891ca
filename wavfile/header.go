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
	"math"

	"github.com/jetsetilly/chesswav/curated"
	"github.com/jetsetilly/chesswav/synth"
)

// SizeOverflow is returned when the number of samples cannot be described by
// the 32 bit size fields of the header.
const SizeOverflow = "wavfile: size overflow: %d samples"

// Format of all files written by the package.
const (
	SampleRate     = synth.SampleRate
	BitsPerSample  = 16
	NumChannels    = 1
	AudioFormatPCM = 1

	BytesPerSample = BitsPerSample / 8
	BlockAlign     = NumChannels * BytesPerSample
	ByteRate       = SampleRate * BlockAlign
)

// Header layout.
const (
	HeaderSize = 44

	riffChunkSizeOffset = 4
	fmtChunkOffset      = 12
	fmtChunkSize        = 16
	dataChunkOffset     = 36
	dataSizeOffset      = 40

	// the ChunkSize field counts everything after itself
	chunkSizeOverhead = HeaderSize - 8
)

// MaxSamples is the largest number of samples that can be written to a single
// file.
const MaxSamples = (math.MaxUint32 - chunkSizeOverhead) / BlockAlign

// Header returns the 44 byte header for a file with numSamples samples.
func Header(numSamples int) ([]byte, error) {
	if numSamples < 0 || uint64(numSamples) > MaxSamples {
		return nil, curated.Errorf(SizeOverflow, numSamples)
	}

	dataSize := uint32(numSamples) * BlockAlign

	h := make([]byte, HeaderSize)

	copy(h[0:], "RIFF")
	binary.LittleEndian.PutUint32(h[riffChunkSizeOffset:], chunkSizeOverhead+dataSize)
	copy(h[8:], "WAVE")

	copy(h[fmtChunkOffset:], "fmt ")
	binary.LittleEndian.PutUint32(h[16:], fmtChunkSize)
	binary.LittleEndian.PutUint16(h[20:], AudioFormatPCM)
	binary.LittleEndian.PutUint16(h[22:], NumChannels)
	binary.LittleEndian.PutUint32(h[24:], SampleRate)
	binary.LittleEndian.PutUint32(h[28:], ByteRate)
	binary.LittleEndian.PutUint16(h[32:], BlockAlign)
	binary.LittleEndian.PutUint16(h[34:], BitsPerSample)

	copy(h[dataChunkOffset:], "data")
	binary.LittleEndian.PutUint32(h[dataSizeOffset:], dataSize)

	return h, nil
}
