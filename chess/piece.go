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

package chess

// Piece is the kind of a chess piece. The list of pieces is closed and every
// switch over a Piece value should handle all of them.
type Piece int

// List of valid Piece values.
const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Pieces lists every piece in value order.
var Pieces = []Piece{Pawn, Knight, Bishop, Rook, Queen, King}

func (p Piece) String() string {
	switch p {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	panic("unknown piece")
}

// Letter returns the notation letter for the piece. Pawns are not named in
// algebraic notation but the letter P is used when the board is drawn.
func (p Piece) Letter() byte {
	switch p {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	panic("unknown piece")
}

// PieceFromLetter returns the piece named by a notation letter. Only the
// letters K, Q, R, B and N are recognised; pawns have no letter in a move.
func PieceFromLetter(l byte) (Piece, bool) {
	switch l {
	case 'K':
		return King, true
	case 'Q':
		return Queen, true
	case 'R':
		return Rook, true
	case 'B':
		return Bishop, true
	case 'N':
		return Knight, true
	}
	return Pawn, false
}

// Side is the colour of the player owning a piece.
type Side int

// List of valid Side values.
const (
	White Side = iota
	Black
)

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	}
	panic("unknown side")
}
