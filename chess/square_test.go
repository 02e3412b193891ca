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

package chess_test

import (
	"testing"

	"github.com/jetsetilly/chesswav/chess"
	"github.com/jetsetilly/chesswav/curated"
	"github.com/jetsetilly/chesswav/test"
)

func TestParseSquare(t *testing.T) {
	sq, err := chess.ParseSquare("e4")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sq.File(), 4)
	test.ExpectEquality(t, sq.Rank(), 4)
	test.ExpectEquality(t, sq.Index(), 28)

	sq, err = chess.ParseSquare("a1")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sq.Index(), 0)

	sq, err = chess.ParseSquare("h8")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sq.Index(), 63)
	test.ExpectEquality(t, sq.String(), "h8")
}

func TestParseSquareInvalid(t *testing.T) {
	for _, s := range []string{"", "e", "e44", "i4", "e9", "e0", "E4", "4e", "=Q"} {
		_, err := chess.ParseSquare(s)
		test.ExpectSuccess(t, curated.Is(err, chess.InvalidSquare), s)
	}
}

func TestSquareRoundTrip(t *testing.T) {
	for file := 'a'; file <= 'h'; file++ {
		for rank := '1'; rank <= '8'; rank++ {
			s := string([]rune{file, rank})
			sq, err := chess.ParseSquare(s)
			test.DemandSuccess(t, err, s)

			back, err := chess.SquareFromIndex(sq.Index())
			test.DemandSuccess(t, err, s)
			test.ExpectEquality(t, back.Index(), sq.Index(), s)
			test.ExpectEquality(t, back.String(), s)
		}
	}
}

func TestSquareFromIndexInvalid(t *testing.T) {
	_, err := chess.SquareFromIndex(-1)
	test.ExpectSuccess(t, curated.Is(err, chess.InvalidSquareIndex))
	_, err = chess.SquareFromIndex(64)
	test.ExpectSuccess(t, curated.Is(err, chess.InvalidSquareIndex))
}

func TestUpDown(t *testing.T) {
	sq, _ := chess.ParseSquare("c4")

	up, ok := sq.Up()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, up.String(), "c5")

	down, ok := sq.Down()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, down.String(), "c3")

	top, _ := chess.ParseSquare("c8")
	_, ok = top.Up()
	test.ExpectFailure(t, ok)

	bottom, _ := chess.ParseSquare("c1")
	_, ok = bottom.Down()
	test.ExpectFailure(t, ok)
}

func TestNewSquare(t *testing.T) {
	sq, err := chess.NewSquare(5, 4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sq.String(), "f4")

	_, err = chess.NewSquare(8, 1)
	test.ExpectFailure(t, err)
	_, err = chess.NewSquare(0, 9)
	test.ExpectFailure(t, err)
}
