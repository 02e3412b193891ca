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

package composer

import (
	"github.com/jetsetilly/chesswav/synth"
)

// Default timings in milliseconds.
const (
	DefaultNoteMS = 300
	DefaultGapMS  = 50
)

// Options for Compose().
type Options struct {
	// duration of each note
	NoteMS int

	// duration of the silence between consecutive notes
	GapMS int

	// the generator used to synthesise each note
	Generator synth.Generator

	// maximum number of notes synthesised at the same time. values less than
	// two synthesise notes one after the other
	Workers int

	// suppress logging of skipped tokens
	Quiet bool
}

// DefaultOptions returns the options for a sine tone of 300ms per move with
// 50ms between moves.
func DefaultOptions() Options {
	return Options{
		NoteMS: DefaultNoteMS,
		GapMS:  DefaultGapMS,
		Generator: synth.Generator{
			Wave:      synth.Sine{},
			Amplitude: synth.DefaultAmplitude,
		},
		Workers: 1,
	}
}

// AllowLogging implements the logger.Permission interface.
func (opts Options) AllowLogging() bool {
	return !opts.Quiet
}
