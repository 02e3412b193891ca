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


package synth

import (
	"sort"

	"github.com/jetsetilly/chesswav/curated"
)

// UnknownWaveform is returned by WaveformByName() for an unrecognised name.
const UnknownWaveform = "synth: unknown waveform: %s"

// Waveform implementations return the value of one cycle of a wave at a
// whole number of degrees. The degree argument is always in the range 0 to
// 359 and the returned value must be in the range -Scale to Scale.
type Waveform interface {
	Value(degree int) int32

	// BandLimited returns the value of the wave built from a limited number
	// of harmonics, which removes the harsh edges of the raw wave. A harmonics
	// value less than one is the same as calling Value().
	BandLimited(degree int, harmonics int) int32
}

// fixed point factors (multiplied by Scale) that normalise the Fourier series
// of the band-limited waves
const (
	fourOverPi         = 12732
	eightOverPiSquared = 8106
	twoOverPi          = 6366
)

// harmonic returns the value of the nth harmonic at degree.
func harmonic(n int, degree int) int64 {
	return int64(sineTable[n*degree%360])
}

// limit v to the range of a waveform value.
func limit(v int64) int32 {
	return int32(max(-Scale, min(Scale, v)))
}

// Sine is a pure tone taken from the sine table.
type Sine struct{}

// Value implements the Waveform interface.
func (Sine) Value(degree int) int32 {
	return sineTable[degree]
}

// BandLimited implements the Waveform interface. A sine wave has no harmonics
// so the value is always the same as Value().
func (w Sine) BandLimited(degree int, _ int) int32 {
	return w.Value(degree)
}

func (Sine) String() string {
	return "sine"
}

// Square is at the positive peak for the first half of the cycle and at the
// negative peak for the second half. It has a hollow sound.
type Square struct{}

// Value implements the Waveform interface.
func (Square) Value(degree int) int32 {
	if sineTable[degree] >= 0 {
		return Scale
	}
	return -Scale
}

// BandLimited implements the Waveform interface. Only the odd harmonics up to
// the limit are used, each with an amplitude of 1/n.
func (w Square) BandLimited(degree int, harmonics int) int32 {
	if harmonics < 1 {
		return w.Value(degree)
	}
	var v int64
	for n := 1; n <= harmonics; n += 2 {
		v += harmonic(n, degree) / int64(n)
	}
	return limit(v * fourOverPi / Scale)
}

func (Square) String() string {
	return "square"
}

// Triangle ramps linearly between the peaks, reaching them at the same
// degrees as Sine. It has a mellow sound.
type Triangle struct{}

// Value implements the Waveform interface.
func (Triangle) Value(degree int) int32 {
	d := int32(degree)
	switch {
	case d < 90:
		return d * Scale / 90
	case d < 270:
		return (180 - d) * Scale / 90
	default:
		return (d - 360) * Scale / 90
	}
}

// BandLimited implements the Waveform interface. Only the odd harmonics up to
// the limit are used, with alternating sign and an amplitude of 1/n².
func (w Triangle) BandLimited(degree int, harmonics int) int32 {
	if harmonics < 1 {
		return w.Value(degree)
	}
	var v int64
	sign := int64(1)
	for n := 1; n <= harmonics; n += 2 {
		v += sign * harmonic(n, degree) / int64(n*n)
		sign = -sign
	}
	return limit(v * eightOverPiSquared / Scale)
}

func (Triangle) String() string {
	return "triangle"
}

// Sawtooth ramps from the negative peak to the positive peak over the cycle.
// It has a bright, buzzy sound.
type Sawtooth struct{}

// Value implements the Waveform interface.
func (Sawtooth) Value(degree int) int32 {
	return int32(degree)*Scale/180 - Scale
}

// BandLimited implements the Waveform interface. Every harmonic up to the
// limit is used, each with an amplitude of 1/n.
func (w Sawtooth) BandLimited(degree int, harmonics int) int32 {
	if harmonics < 1 {
		return w.Value(degree)
	}
	var v int64
	for n := 1; n <= harmonics; n++ {
		v += harmonic(n, degree) / int64(n)
	}
	return limit(-v * twoOverPi / Scale)
}

func (Sawtooth) String() string {
	return "sawtooth"
}

// weights of the first five harmonics of Composite. the weight of the nth
// harmonic is 1/n scaled by 60
var compositeWeights = [5]int64{60, 30, 20, 15, 12}

// Composite is the fundamental with the next four harmonics, each at an
// amplitude of 1/n. It has a full sound.
type Composite struct{}

// Value implements the Waveform interface.
func (w Composite) Value(degree int) int32 {
	return w.BandLimited(degree, len(compositeWeights))
}

// BandLimited implements the Waveform interface. No more than five harmonics
// are ever used. The result is normalised by the total weight of the
// harmonics used.
func (Composite) BandLimited(degree int, harmonics int) int32 {
	if harmonics < 1 {
		harmonics = len(compositeWeights)
	}
	harmonics = min(harmonics, len(compositeWeights))

	var v, total int64
	for i, wt := range compositeWeights[:harmonics] {
		v += harmonic(i+1, degree) * wt
		total += wt
	}
	return limit(v / total)
}

func (Composite) String() string {
	return "composite"
}

// weights of the harmonics of Harmonics: 1, 0.5 and 0.25 scaled by 4
var harmonicsWeights = [3]int64{4, 2, 1}

// Harmonics is a sine with two quieter overtones. It has a warm sound.
type Harmonics struct{}

// Value implements the Waveform interface.
func (Harmonics) Value(degree int) int32 {
	var v, total int64
	for i, wt := range harmonicsWeights {
		v += harmonic(i+1, degree) * wt
		total += wt
	}
	return limit(v / total)
}

// BandLimited implements the Waveform interface. The wave has only three
// harmonics and the value is always the same as Value().
func (w Harmonics) BandLimited(degree int, _ int) int32 {
	return w.Value(degree)
}

func (Harmonics) String() string {
	return "harmonics"
}

var waveforms = map[string]Waveform{
	"sine":      Sine{},
	"square":    Square{},
	"triangle":  Triangle{},
	"sawtooth":  Sawtooth{},
	"composite": Composite{},
	"harmonics": Harmonics{},
}

// WaveformByName returns the waveform with the name. Names are those returned
// by WaveformNames().
func WaveformByName(name string) (Waveform, error) {
	w, ok := waveforms[name]
	if !ok {
		return nil, curated.Errorf(UnknownWaveform, name)
	}
	return w, nil
}

// WaveformNames returns the names of all waveforms in alphabetical order.
func WaveformNames() []string {
	n := make([]string, 0, len(waveforms))
	for k := range waveforms {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
