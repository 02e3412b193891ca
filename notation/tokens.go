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
	"bufio"
	"io"

	"github.com/jetsetilly/chesswav/curated"
)

// ReadError is returned by Tokens() if the reader fails.
const ReadError = "notation: reading moves: %v"

// Tokens splits the input into whitespace separated move tokens. Tokens are
// not checked.
func Tokens(r io.Reader) ([]string, error) {
	var tokens []string

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return tokens, curated.Errorf(ReadError, err)
	}

	return tokens, nil
}
