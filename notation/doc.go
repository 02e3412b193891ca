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

// Package notation converts move tokens written in algebraic notation into
// Move values. Only the information needed to make a sound is extracted: the
// moving piece, the destination square and whether the move is a capture.
//
// The parser is stateless. It does not consult a board, so disambiguation
// prefixes (the a in Rad1) are ignored and the legality of a move is never
// checked. Castling and promotion are not understood and result in an
// InvalidSquare error. A leading letter that does not name a piece is read as
// a pawn move.
package notation
