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
	"math"

	"github.com/jetsetilly/chesswav/curated"
)

// MaxHarmonics is the largest useful value of Generator.Harmonics. Larger
// values are treated as MaxHarmonics.
const MaxHarmonics = 64

// amplitudes at or above this value clip every sample that is not zero. larger
// amplitudes are reduced to it so that the multiplication cannot overflow
const maxAmplitude = math.MaxInt16 * Scale

// Generator creates samples for a Waveform. The zero value Generator has an
// amplitude of zero and produces silence.
type Generator struct {
	// the waveform to generate. if nil then Sine is used
	Wave Waveform

	// peak value of generated samples before clamping. values greater than
	// DefaultAmplitude will clip
	Amplitude int

	// percentage of Sine to mix with Wave. zero is Wave only and 100 is Sine
	// only. values outside the range are clamped
	SineMix int

	// number of harmonics used to build a band-limited Wave. zero uses the
	// raw waveform. the sine mix is applied after band-limiting
	Harmonics int
}

// Generate returns the samples for durationMS milliseconds of the tone at
// frequency Hz.
func (g Generator) Generate(frequency int, durationMS int) ([]int16, error) {
	if frequency < 0 || int64(frequency) > MaxFrequency {
		return nil, curated.Errorf(InvalidInput, "frequency", frequency)
	}
	if err := CheckDuration(durationMS); err != nil {
		return nil, err
	}
	if g.Amplitude < 0 {
		return nil, curated.Errorf(InvalidInput, "amplitude", g.Amplitude)
	}
	if g.Harmonics < 0 {
		return nil, curated.Errorf(InvalidInput, "harmonics", g.Harmonics)
	}

	wave := g.Wave
	if wave == nil {
		wave = Sine{}
	}

	mix := int64(max(0, min(100, g.SineMix)))
	harmonics := min(g.Harmonics, MaxHarmonics)
	amplitude := min(int64(g.Amplitude), maxAmplitude)
	increment := phaseIncrement(frequency)

	samples := make([]int16, SampleCount(durationMS))

	var phase int64
	for i := range samples {
		degree := int(phase / Scale)

		var raw int64
		if harmonics > 0 {
			raw = int64(wave.BandLimited(degree, harmonics))
		} else {
			raw = int64(wave.Value(degree))
		}
		if mix > 0 {
			raw = (int64(sineTable[degree])*mix + raw*(100-mix)) / 100
		}

		samples[i] = clamp(raw * amplitude / Scale)

		// phase and increment are both less than a cycle so the sum cannot
		// overflow. keeping the phase within a single cycle does not change
		// the degree because cycle is a multiple of Scale
		phase = (phase + increment) % cycle
	}

	return samples, nil
}
