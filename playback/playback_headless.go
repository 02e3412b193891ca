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

//go:build headless

package playback

import (
	"github.com/jetsetilly/chesswav/curated"
)

// Available returns true if audio output is included in the build.
func Available() bool {
	return false
}

// Play the samples and return when they have finished playing.
func Play(samples []int16) error {
	if _, err := pcm(samples); err != nil {
		return err
	}
	return curated.Errorf(NotAvailable)
}
