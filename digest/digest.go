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


// Package digest creates fingerprints of rendered audio. Fingerprints are
// chained SHA-1 values and are useful for checking that a game renders to the
// same audio after a change to the synthesis code.
package digest

import (
	"crypto/sha1"
	"fmt"
)

// the length of the buffer that is hashed at a time
const audioBufferLength = 1024 * 16

// the first bytes of the buffer hold the previous digest value so that every
// block of audio contributes to the final value
const audioBufferStart = sha1.Size

// Audio creates a digest of a stream of samples. The digest does not depend on
// how the stream is divided between calls to SetAudio().
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []byte
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{
		buffer: make([]byte, audioBufferLength),
	}
	dig.Reset()
	return dig
}

// Hash returns the digest of all samples sent so far.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// Reset the digest to zero and forget any pending samples.
func (dig *Audio) Reset() {
	clear(dig.digest[:])
	clear(dig.buffer)
	dig.bufferCt = audioBufferStart
}

// SetAudio adds samples to the digest.
func (dig *Audio) SetAudio(samples []int16) {
	for _, s := range samples {
		dig.buffer[dig.bufferCt] = byte(s)
		dig.buffer[dig.bufferCt+1] = byte(s >> 8)
		dig.bufferCt += 2
		if dig.bufferCt >= audioBufferLength {
			dig.flush()
		}
	}
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}

// Samples returns the digest of a complete set of samples.
func Samples(samples []int16) string {
	dig := NewAudio()
	dig.SetAudio(samples)
	return dig.Hash()
}
