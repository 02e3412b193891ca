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

package wavfile_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/jetsetilly/chesswav/curated"
	"github.com/jetsetilly/chesswav/synth"
	"github.com/jetsetilly/chesswav/test"
	"github.com/jetsetilly/chesswav/wavfile"
)

func TestHeaderLayout(t *testing.T) {
	expected := []byte{
		0x52, 0x49, 0x46, 0x46,
		0xf4, 0x07, 0x00, 0x00,
		0x57, 0x41, 0x56, 0x45,
		0x66, 0x6d, 0x74, 0x20,
		0x10, 0x00, 0x00, 0x00,
		0x01, 0x00,
		0x01, 0x00,
		0x44, 0xac, 0x00, 0x00,
		0x88, 0x58, 0x01, 0x00,
		0x02, 0x00,
		0x10, 0x00,
		0x64, 0x61, 0x74, 0x61,
		0xd0, 0x07, 0x00, 0x00,
	}

	h, err := wavfile.Header(1000)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(h), wavfile.HeaderSize)
	test.ExpectSuccess(t, bytes.Equal(h, expected))
}

func TestHeaderMarkers(t *testing.T) {
	for _, n := range []int{0, 1, 1000, 44100, wavfile.MaxSamples} {
		h, err := wavfile.Header(n)
		test.DemandSuccess(t, err, n)
		test.ExpectEquality(t, string(h[0:4]), "RIFF", n)
		test.ExpectEquality(t, string(h[8:12]), "WAVE", n)
		test.ExpectEquality(t, string(h[12:16]), "fmt ", n)
		test.ExpectEquality(t, string(h[36:40]), "data", n)

		chunkSize := binary.LittleEndian.Uint32(h[4:8])
		dataSize := binary.LittleEndian.Uint32(h[40:44])
		test.ExpectEquality(t, dataSize, uint32(n*2), n)
		test.ExpectEquality(t, chunkSize, 36+dataSize, n)
	}
}

func TestHeaderOverflow(t *testing.T) {
	_, err := wavfile.Header(wavfile.MaxSamples + 1)
	test.ExpectSuccess(t, curated.Is(err, wavfile.SizeOverflow))

	_, err = wavfile.Header(-1)
	test.ExpectSuccess(t, curated.Is(err, wavfile.SizeOverflow))
}

func TestEncode(t *testing.T) {
	b, err := wavfile.Encode([]int16{0, 1, -1, 32767, -32768})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(b), 44+10)
	test.ExpectSuccess(t, bytes.Equal(b[44:], []byte{
		0x00, 0x00,
		0x01, 0x00,
		0xff, 0xff,
		0xff, 0x7f,
		0x00, 0x80,
	}))
}

func TestEncodeEmpty(t *testing.T) {
	b, err := wavfile.Encode(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(b), wavfile.HeaderSize)
	test.ExpectEquality(t, binary.LittleEndian.Uint32(b[4:8]), 36)
	test.ExpectEquality(t, binary.LittleEndian.Uint32(b[40:44]), 0)
}

func TestEncodeLength(t *testing.T) {
	for _, d := range []int{0, 1, 50, 300, 1000} {
		s, err := synth.Synthesize(262, d)
		test.DemandSuccess(t, err)
		b, err := wavfile.Encode(s)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, len(b), 44+synth.SampleCount(d)*2, d)
	}
}

func TestWriteMatchesEncode(t *testing.T) {
	// long enough to need more than one block
	s, err := synth.Synthesize(523, 500)
	test.DemandSuccess(t, err)

	b, err := wavfile.Encode(s)
	test.DemandSuccess(t, err)

	w := &bytes.Buffer{}
	err = wavfile.Write(w, s)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(w.Bytes(), b))

	// and again to check for repeatability
	c, err := wavfile.Encode(s)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(b, c))
}

type failingWriter struct{}

var errFailingWriter = errors.New("failing writer")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errFailingWriter
}

func TestWriteError(t *testing.T) {
	err := wavfile.Write(failingWriter{}, []int16{1, 2, 3})
	test.ExpectSuccess(t, curated.Is(err, wavfile.WriteError))
	test.ExpectSuccess(t, errors.Is(err, errFailingWriter))
}

func TestInspect(t *testing.T) {
	s, err := synth.Synthesize(440, 100)
	test.DemandSuccess(t, err)
	b, err := wavfile.Encode(s)
	test.DemandSuccess(t, err)

	inf, err := wavfile.Inspect(bytes.NewReader(b))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, inf.IsCompatible())
	test.ExpectEquality(t, inf.NumSamples, len(s))
	test.ExpectEquality(t, inf.Duration.Milliseconds(), int64(100))

	test.DemandEquality(t, len(inf.PCM.Data), len(s))
	for i := range s {
		if !test.ExpectEquality(t, inf.PCM.Data[i], int(s[i]), i) {
			break
		}
	}
}

func TestInspectSilence(t *testing.T) {
	// header for 1000 samples followed by 2000 zero bytes
	h, err := wavfile.Header(1000)
	test.DemandSuccess(t, err)
	b := append(h, make([]byte, 2000)...)

	inf, err := wavfile.Inspect(bytes.NewReader(b))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, inf.IsCompatible())
	test.ExpectEquality(t, inf.NumSamples, 1000)
}

func TestInspectInvalid(t *testing.T) {
	_, err := wavfile.Inspect(bytes.NewReader([]byte("this is not a wav file at all, not even close")))
	test.ExpectSuccess(t, curated.Is(err, wavfile.InvalidFile))
}
