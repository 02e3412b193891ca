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

// Package pitch maps board squares to musical frequencies.
//
// Each file (column) of the board is given a note of the fourth octave and
// each rank moves the note up or down by octaves, with rank 4 being the
// reference octave:
//
//	   a    b    c    d    e    f    g    h
//	   C4   D4   E4   F4   G4   A4   B4   C5
//	  262  294  330  349  392  440  494  523
//
// Octaves above the reference double the frequency. Octaves below halve it
// with integer division, which truncates. This is lossy: a1 is 32Hz and not
// the 32.75Hz that halving 262 three times would give with real arithmetic.
// The truncation is kept so that the audio produced is identical to existing
// recordings.
package pitch

import (
	"fmt"

	"github.com/jetsetilly/chesswav/chess"
)

// ReferenceRank is the rank played at the base frequencies.
const ReferenceRank = 4

// frequency in Hz of each file on the reference rank
var frequencyTable = [8]int{262, 294, 330, 349, 392, 440, 494, 523}

var noteNames = [8]string{"C", "D", "E", "F", "G", "A", "B", "C"}

// BaseFrequency returns the frequency in Hz of the file (0 to 7) on the
// reference rank. Returns zero if the file is out of range.
func BaseFrequency(file int) int {
	if file < 0 || file >= len(frequencyTable) {
		return 0
	}
	return frequencyTable[file]
}

// Frequency returns the frequency in Hz for the square.
func Frequency(sq chess.Square) int {
	f := frequencyTable[sq.File()]

	octaveDiff := sq.Rank() - ReferenceRank
	for ; octaveDiff > 0; octaveDiff-- {
		f *= 2
	}
	for ; octaveDiff < 0; octaveDiff++ {
		f /= 2
	}

	return f
}

// NoteName returns the name of the note for the square in scientific pitch
// notation. For example, e4 is "G4" and h4 is "C5".
func NoteName(sq chess.Square) string {
	octave := sq.Rank()
	if sq.File() == 7 {
		octave++
	}
	return fmt.Sprintf("%s%d", noteNames[sq.File()], octave)
}
