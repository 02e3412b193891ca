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

package playback

import (
	"github.com/jetsetilly/chesswav/wavfile"
)

// Sentinal error patterns returned by Play().
const (
	NotAvailable = "playback: audio output not available in this build"
	DeviceError  = "playback: %v"
)

// pcm returns the little-endian bytes of the samples.
func pcm(samples []int16) ([]byte, error) {
	b, err := wavfile.Encode(samples)
	if err != nil {
		return nil, err
	}
	return b[wavfile.HeaderSize:], nil
}
