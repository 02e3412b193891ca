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

import (
	"fmt"

	"github.com/jetsetilly/chesswav/curated"
)

// Sentinal error patterns returned by the square functions.
const (
	InvalidSquare      = "chess: invalid square: %q"
	InvalidSquareIndex = "chess: invalid square index: %d"
)

// NumSquares is the number of squares on the board.
const NumSquares = 64

// Square is a board index in the range 0 to 63. The zero value is a1.
type Square uint8

// ParseSquare converts a two character token, a file letter (a to h)
// followed by a rank digit (1 to 8), into a Square. Out of range values are
// an error and are never clamped.
func ParseSquare(token string) (Square, error) {
	if len(token) != 2 {
		return 0, curated.Errorf(InvalidSquare, token)
	}

	file := token[0]
	rank := token[1]

	if file < 'a' || file > 'h' {
		return 0, curated.Errorf(InvalidSquare, token)
	}
	if rank < '1' || rank > '8' {
		return 0, curated.Errorf(InvalidSquare, token)
	}

	return NewSquare(int(file-'a'), int(rank-'1')+1)
}

// NewSquare returns the square for a file index (0 to 7) and a rank number
// (1 to 8).
func NewSquare(file int, rank int) (Square, error) {
	if file < 0 || file > 7 || rank < 1 || rank > 8 {
		return 0, curated.Errorf(InvalidSquare, fmt.Sprintf("%d/%d", file, rank))
	}
	return Square((rank-1)*8 + file), nil
}

// SquareFromIndex converts a board index back into a Square.
func SquareFromIndex(idx int) (Square, error) {
	if idx < 0 || idx >= NumSquares {
		return 0, curated.Errorf(InvalidSquareIndex, idx)
	}
	return Square(idx), nil
}

// Index returns the square as an int in the range 0 to 63.
func (sq Square) Index() int {
	return int(sq)
}

// File returns the column index of the square. Zero is the a-file.
func (sq Square) File() int {
	return int(sq) % 8
}

// Rank returns the rank number of the square, from 1 to 8.
func (sq Square) Rank() int {
	return int(sq)/8 + 1
}

// Up returns the square on the next rank and false if there is no such square.
func (sq Square) Up() (Square, bool) {
	if sq.Rank() == 8 {
		return sq, false
	}
	return sq + 8, true
}

// Down returns the square on the previous rank and false if there is no such
// square.
func (sq Square) Down() (Square, bool) {
	if sq.Rank() == 1 {
		return sq, false
	}
	return sq - 8, true
}

func (sq Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+sq.File(), sq.Rank())
}
