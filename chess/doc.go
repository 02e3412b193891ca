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

// Package chess contains the board vocabulary used by the rest of ChessWAV:
// squares, pieces, sides and a board holding the standard starting position.
//
// Squares are numbered from a1 (index 0) to h8 (index 63), rank by rank:
//
//	8 | 56 57 58 59 60 61 62 63
//	7 | 48 49 50 51 52 53 54 55
//	  | ...
//	2 |  8  9 10 11 12 13 14 15
//	1 |  0  1  2  3  4  5  6  7
//	  +------------------------
//	     a  b  c  d  e  f  g  h
//
// The Board type does not understand the rules of chess. It exists to give
// move parsing something to anchor to and is only ever changed by explicit
// calls to Set(). Boards are values owned by the caller; there is no package
// level board.
package chess
