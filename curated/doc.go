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

// Package curated is a helper package for the plain Go language error type.
// Errors are created with the Errorf() function, which takes a pattern and
// the values for that pattern in the same way as fmt.Errorf().
//
// The pattern is kept with the error and can be tested for with the Is()
// function. Each package that returns curated errors declares its patterns
// as exported constants. For example, the notation package:
//
//	const InvalidSquare = "notation: invalid square in %q"
//
//	_, err := notation.Parse("Nz9")
//	if curated.Is(err, notation.InvalidSquare) {
//		...
//	}
//
// The Has() function checks whether the pattern appears anywhere in the error
// chain, which is useful when an error has been wrapped by a caller:
//
//	err = curated.Errorf("composer: %v", err)
//	curated.Has(err, notation.InvalidSquare) // true
//	curated.Is(err, notation.InvalidSquare)  // false
//
// Error chains are composed of parts separated by the sub-string ": ". The
// Error() function removes a leading part if it is repeated immediately, so
// that wrapping an error with the same prefix as the error being wrapped does
// not produce messages like "wavfile: wavfile: size overflow".
package curated
