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

// Package wavfile writes and inspects RIFF/WAVE files.
//
// Files written by the package are always 16 bit, mono, 44100Hz PCM with a
// 44 byte header and no chunks other than "fmt " and "data":
//
//	offset size  field
//	0      4     "RIFF"
//	4      4     ChunkSize (36 + Subchunk2Size)
//	8      4     "WAVE"
//	12     4     "fmt "
//	16     4     Subchunk1Size (16)
//	20     2     AudioFormat (1 = PCM)
//	22     2     NumChannels (1)
//	24     4     SampleRate (44100)
//	28     4     ByteRate (88200)
//	32     2     BlockAlign (2)
//	34     2     BitsPerSample (16)
//	36     4     "data"
//	40     4     Subchunk2Size (number of samples * 2)
//	44           samples
//
// All integers are little-endian. The output is a function of the samples
// only and is identical for identical input.
//
// The size fields are 32 bits wide. A sample count that would not fit is an
// error and nothing is written; a truncated header is never produced.
//
// Inspect() reads any WAV file, not only those written by this package.
package wavfile
