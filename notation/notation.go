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

package notation

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/chesswav/chess"
	"github.com/jetsetilly/chesswav/curated"
)

// Sentinal error patterns returned by Parse().
const (
	EmptyInput    = "notation: empty move"
	InvalidSquare = "notation: invalid square in %q"
)

// annotation characters that may trail a move. they have no effect on the
// move.
const annotations = "+#!?"

// Move is the result of parsing a move token.
type Move struct {
	Piece       chess.Piece
	Destination chess.Square
	Capture     bool
}

func (m Move) String() string {
	if m.Capture {
		return fmt.Sprintf("%s captures on %s", m.Piece, m.Destination)
	}
	return fmt.Sprintf("%s to %s", m.Piece, m.Destination)
}

// Parse a single move token. Returned errors will be one of the sentinal
// patterns EmptyInput or InvalidSquare.
//
// A leading letter that is not a piece letter is not an error. The move is
// taken to be a pawn move and the letter is ignored along with everything else
// before the destination square.
func Parse(token string) (Move, error) {
	s := strings.TrimRight(strings.TrimSpace(token), annotations)
	if s == "" {
		return Move{}, curated.Errorf(EmptyInput)
	}

	var mv Move

	if strings.Contains(s, "x") {
		mv.Capture = true
		s = strings.ReplaceAll(s, "x", "")
	}

	if s == "" {
		return Move{}, curated.Errorf(InvalidSquare, token)
	}

	if p, ok := chess.PieceFromLetter(s[0]); ok {
		mv.Piece = p
		s = s[1:]
	} else {
		mv.Piece = chess.Pawn
	}

	if len(s) < 2 {
		return Move{}, curated.Errorf(InvalidSquare, token)
	}

	sq, err := chess.ParseSquare(s[len(s)-2:])
	if err != nil {
		return Move{}, curated.Errorf(InvalidSquare, token)
	}
	mv.Destination = sq

	return mv, nil
}
