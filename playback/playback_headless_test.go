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

package playback_test

import (
	"testing"

	"github.com/jetsetilly/chesswav/curated"
	"github.com/jetsetilly/chesswav/playback"
	"github.com/jetsetilly/chesswav/synth"
	"github.com/jetsetilly/chesswav/test"
)

func TestHeadless(t *testing.T) {
	test.ExpectFailure(t, playback.Available())

	s, _ := synth.Synthesize(440, 10)
	err := playback.Play(s)
	test.ExpectSuccess(t, curated.Is(err, playback.NotAvailable))
}
