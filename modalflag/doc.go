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


// Package modalflag handles command lines that are divided into modes. Each
// mode has its own set of flags and the first non-flag argument of a mode may
// select a sub-mode. ChessWAV uses a single layer of modes:
//
//	chesswav [RENDER] [-o out.wav] [-note 300] [moves.txt]
//	chesswav PLAY [-note 300] [moves.txt]
//	chesswav BOARD
//	chesswav INFO game.wav
//
// The first sub-mode given to AddSubModes() is the default and is selected
// when no sub-mode is named on the command line. Sub-mode names are case
// insensitive.
//
// Usage follows this pattern:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RENDER", "PLAY")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RENDER":
//		md.NewMode()
//		out := md.AddString("o", "", "output file")
//		...
//	}
//
// Help is printed automatically in response to -help or -h. The help text
// lists the flags for the current mode, the available sub-modes and any text
// given to AdditionalHelp().
package modalflag
