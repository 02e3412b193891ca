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

// Package composer drives the conversion of a game into audio. Each move
// token is parsed, mapped to a frequency and synthesised, and the notes are
// joined with a short silence between each one.
//
// A token that cannot be parsed does not stop the game. It is logged, added
// to the Skipped list of the Score and the next token is processed. Errors
// from synthesis or from a game too long for a WAV file are returned and no
// Score is produced.
//
// Notes can be synthesised in parallel by setting Options.Workers to more
// than one. The order of the notes in the Score is always the order of the
// tokens.
package composer
