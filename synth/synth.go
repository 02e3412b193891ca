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

//go:generate go run sinetable_gen.go

// Package synth creates 16 bit PCM samples for a tone of a given frequency
// and duration.
//
// There is no floating point arithmetic. The sine of the phase is taken from a
// lookup table, which has one entry per whole degree, and the phase itself is a
// fixed point number of degrees multiplied by Scale. The angular resolution
// is therefore one degree but the output is identical on every platform and
// every run.
//
// For every sample:
//
//	degree = (phase / Scale) mod 360
//	sample = clamp(SineValue(degree) * amplitude / Scale)
//	phase  = phase + (frequency * 360 * Scale / SampleRate)
//
// Other waveforms are available through the Generator type.
package synth

import (
	"math"

	"github.com/jetsetilly/chesswav/curated"
)

// InvalidInput is returned for a negative frequency, duration or amplitude
// and for a frequency or duration that is too large.
const InvalidInput = "synth: invalid %s: %d"

const (
	// SampleRate is the number of samples per second.
	SampleRate = 44100

	// Scale is the fixed point factor of the sine table and of the phase
	// accumulator.
	Scale = 10000

	// DefaultAmplitude is the peak sample value of a full volume tone.
	DefaultAmplitude = math.MaxInt16

	// number of phase units in a full cycle
	cycle = 360 * Scale
)

// Largest accepted arguments.
const (
	// the number of samples in MaxDurationMS fits in 31 bits and so in the
	// size fields of a WAV file
	MaxDurationMS = math.MaxInt32 / SampleRate * 1000

	// the phase increment for MaxFrequency fits in an int64
	MaxFrequency = math.MaxInt64 / cycle
)

// SineValue returns sin(degree) multiplied by Scale and rounded to the nearest
// integer. The degree is taken modulo 360 so any value is accepted.
func SineValue(degree int) int32 {
	degree %= 360
	if degree < 0 {
		degree += 360
	}
	return sineTable[degree]
}

// CheckDuration returns an InvalidInput error if durationMS is negative or
// larger than MaxDurationMS.
func CheckDuration(durationMS int) error {
	if durationMS < 0 || durationMS > MaxDurationMS {
		return curated.Errorf(InvalidInput, "duration", durationMS)
	}
	return nil
}

// SampleCount returns the number of samples in durationMS milliseconds. The
// result is truncated. The duration should be checked with CheckDuration()
// first.
func SampleCount(durationMS int) int {
	return SampleRate * durationMS / 1000
}

// Synthesize returns the samples of a sine tone at full volume. A frequency
// of zero results in durationMS of zero value samples. A duration of zero
// results in an empty slice.
func Synthesize(frequency int, durationMS int) ([]int16, error) {
	g := Generator{
		Wave:      Sine{},
		Amplitude: DefaultAmplitude,
	}
	return g.Generate(frequency, durationMS)
}

// Silence returns durationMS of zero value samples.
func Silence(durationMS int) ([]int16, error) {
	if err := CheckDuration(durationMS); err != nil {
		return nil, err
	}
	return make([]int16, SampleCount(durationMS)), nil
}

// phaseIncrement returns the amount the phase advances between samples,
// reduced to less than a full cycle. The frequency must not be more than
// MaxFrequency.
func phaseIncrement(frequency int) int64 {
	return int64(frequency) * cycle / SampleRate % cycle
}

// clamp saturates v to the range of an int16.
func clamp(v int64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
