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

package wavfile

import (
	"fmt"
	"io"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/chesswav/curated"
)

// InvalidFile is returned by Inspect() if the data is not a WAV file.
const InvalidFile = "wavfile: not a valid wav file: %v"

// Info describes a decoded WAV file.
type Info struct {
	AudioFormat int
	SampleRate  int
	Channels    int
	BitDepth    int

	// number of samples per channel
	NumSamples int

	Duration time.Duration

	// the decoded sample data. samples for each channel are interleaved
	PCM *audio.IntBuffer
}

func (inf Info) String() string {
	return fmt.Sprintf("format %d, %dHz, %d bit, %d channel(s), %d samples, %s",
		inf.AudioFormat, inf.SampleRate, inf.BitDepth, inf.Channels,
		inf.NumSamples, inf.Duration)
}

// IsCompatible returns true if the file has the same format as files written
// by the package.
func (inf Info) IsCompatible() bool {
	return inf.AudioFormat == AudioFormatPCM && inf.SampleRate == SampleRate &&
		inf.Channels == NumChannels && inf.BitDepth == BitsPerSample
}

// Inspect decodes a WAV file.
func Inspect(r io.ReadSeeker) (Info, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return Info{}, curated.Errorf(InvalidFile, "cannot create decoder")
	}

	if !dec.IsValidFile() {
		return Info{}, curated.Errorf(InvalidFile, "missing RIFF/WAVE header")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Info{}, curated.Errorf(InvalidFile, err)
	}

	inf := Info{
		AudioFormat: int(dec.WavAudioFormat),
		SampleRate:  int(dec.SampleRate),
		Channels:    int(dec.NumChans),
		BitDepth:    int(dec.BitDepth),
		PCM:         buf,
	}

	if inf.Channels > 0 {
		inf.NumSamples = len(buf.Data) / inf.Channels
	}
	if inf.SampleRate > 0 {
		inf.Duration = time.Duration(inf.NumSamples) * time.Second / time.Duration(inf.SampleRate)
	}

	return inf, nil
}
