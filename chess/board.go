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
	"strings"
)

// Occupant is the content of an occupied square.
type Occupant struct {
	Piece Piece
	Side  Side
}

// Board maps every square to an optional Occupant.
type Board struct {
	squares [NumSquares]*Occupant
}

var backRank = [8]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard is the preferred method of initialisation for the Board type. The
// board is returned with the standard starting arrangement.
func NewBoard() *Board {
	b := &Board{}
	for file := range 8 {
		b.squares[file] = &Occupant{Piece: backRank[file], Side: White}
		b.squares[8+file] = &Occupant{Piece: Pawn, Side: White}
		b.squares[48+file] = &Occupant{Piece: Pawn, Side: Black}
		b.squares[56+file] = &Occupant{Piece: backRank[file], Side: Black}
	}
	return b
}

// NewEmptyBoard returns a board with no pieces on it.
func NewEmptyBoard() *Board {
	return &Board{}
}

// Get returns the occupant of the square. The second return value is false
// if the square is empty or is not on the board.
func (b *Board) Get(sq Square) (Occupant, bool) {
	if sq >= NumSquares {
		return Occupant{}, false
	}
	o := b.squares[sq]
	if o == nil {
		return Occupant{}, false
	}
	return *o, true
}

// Set places an occupant on the square, replacing anything already there.
// Squares that are not on the board are ignored.
func (b *Board) Set(sq Square, o Occupant) {
	if sq >= NumSquares {
		return
	}
	b.squares[sq] = &o
}

// Clear empties the square. Squares that are not on the board are ignored.
func (b *Board) Clear(sq Square) {
	if sq >= NumSquares {
		return
	}
	b.squares[sq] = nil
}

// Render writes the board with rank 8 at the top. White pieces are upper case,
// black pieces lower case and empty squares are shown as dots. The label
// function, if not nil, is called for the square at the end of each rank and
// its result appended to the line.
func (b *Board) Render(label func(rank int) string) string {
	s := strings.Builder{}
	for rank := 8; rank >= 1; rank-- {
		s.WriteString(fmt.Sprintf(" %d |", rank))
		for file := range 8 {
			sq := Square((rank-1)*8 + file)
			o, ok := b.Get(sq)
			if !ok {
				s.WriteString(" .")
				continue
			}
			l := o.Piece.Letter()
			if o.Side == Black {
				l += 'a' - 'A'
			}
			s.WriteString(fmt.Sprintf(" %c", l))
		}
		if label != nil {
			s.WriteString(label(rank))
		}
		s.WriteString("\n")
	}
	s.WriteString("   +----------------\n")
	s.WriteString("     a b c d e f g h\n")
	return s.String()
}

func (b *Board) String() string {
	return b.Render(nil)
}
