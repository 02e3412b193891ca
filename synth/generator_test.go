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

package synth_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/chesswav/curated"
	"github.com/jetsetilly/chesswav/synth"
	"github.com/jetsetilly/chesswav/test"
)

func TestGeneratorMatchesSynthesize(t *testing.T) {
	a, err := synth.Synthesize(330, 100)
	test.DemandSuccess(t, err)

	g := synth.Generator{Amplitude: synth.DefaultAmplitude}
	b, err := g.Generate(330, 100)
	test.DemandSuccess(t, err)

	test.DemandEquality(t, len(a), len(b))
	for i := range a {
		if !test.ExpectEquality(t, a[i], b[i], i) {
			break
		}
	}
}

func TestWaveformRange(t *testing.T) {
	for _, n := range synth.WaveformNames() {
		w, err := synth.WaveformByName(n)
		test.DemandSuccess(t, err)
		for d := range 360 {
			v := w.Value(d)
			if v > synth.Scale || v < -synth.Scale {
				t.Fatalf("%s: value out of range at %d degrees: %d", n, d, v)
			}
			for h := 1; h <= synth.MaxHarmonics; h++ {
				v = w.BandLimited(d, h)
				if v > synth.Scale || v < -synth.Scale {
					t.Fatalf("%s: band-limited value out of range at %d degrees with %d harmonics: %d", n, d, h, v)
				}
			}
		}
	}
}

func TestWaveformValues(t *testing.T) {
	test.ExpectEquality(t, synth.Square{}.Value(45), synth.Scale)
	test.ExpectEquality(t, synth.Square{}.Value(225), -synth.Scale)

	test.ExpectEquality(t, synth.Triangle{}.Value(0), 0)
	test.ExpectEquality(t, synth.Triangle{}.Value(45), synth.Scale/2)
	test.ExpectEquality(t, synth.Triangle{}.Value(90), synth.Scale)
	test.ExpectEquality(t, synth.Triangle{}.Value(180), 0)
	test.ExpectEquality(t, synth.Triangle{}.Value(270), -synth.Scale)

	test.ExpectEquality(t, synth.Sawtooth{}.Value(0), -synth.Scale)
	test.ExpectEquality(t, synth.Sawtooth{}.Value(180), 0)

	test.ExpectEquality(t, synth.Composite{}.Value(0), 0)
	test.ExpectEquality(t, synth.Composite{}.Value(90), 3795)
	test.ExpectEquality(t, synth.Harmonics{}.Value(0), 0)
	test.ExpectEquality(t, synth.Harmonics{}.Value(90), 4285)
}

func TestBandLimitedValues(t *testing.T) {
	// a single harmonic is a sine wave scaled by the Fourier coefficient
	test.ExpectEquality(t, synth.Square{}.BandLimited(30, 1), 6366)
	test.ExpectEquality(t, synth.Square{}.BandLimited(90, 1), synth.Scale)
	test.ExpectEquality(t, synth.Triangle{}.BandLimited(90, 1), 8106)
	test.ExpectEquality(t, synth.Sawtooth{}.BandLimited(90, 1), -6366)

	// the second harmonic is even and does not change a square or triangle
	test.ExpectEquality(t, synth.Square{}.BandLimited(30, 2), synth.Square{}.BandLimited(30, 1))
	test.ExpectEquality(t, synth.Triangle{}.BandLimited(30, 2), synth.Triangle{}.BandLimited(30, 1))

	// zero harmonics is the raw waveform
	for _, n := range synth.WaveformNames() {
		w, _ := synth.WaveformByName(n)
		for d := range 360 {
			test.ExpectEquality(t, w.BandLimited(d, 0), w.Value(d), n, d)
		}
	}

	// a sine wave has nothing to remove
	for d := range 360 {
		test.ExpectEquality(t, synth.Sine{}.BandLimited(d, 7), synth.SineValue(d), d)
	}

	// the composite with one harmonic is the fundamental only
	for d := range 360 {
		test.ExpectEquality(t, synth.Composite{}.BandLimited(d, 1), synth.SineValue(d), d)
	}
}

func TestGeneratorHarmonics(t *testing.T) {
	sine, _ := synth.Synthesize(440, 50)

	g := synth.Generator{Wave: synth.Sine{}, Amplitude: synth.DefaultAmplitude, Harmonics: 9}
	s, err := g.Generate(440, 50)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(s), len(sine))
	for i := range s {
		if !test.ExpectEquality(t, s[i], sine[i], i) {
			break
		}
	}

	// a band-limited square wave is not the raw square wave
	g = synth.Generator{Wave: synth.Square{}, Amplitude: synth.DefaultAmplitude / 2}
	raw, err := g.Generate(440, 50)
	test.DemandSuccess(t, err)
	g.Harmonics = 7
	limited, err := g.Generate(440, 50)
	test.DemandSuccess(t, err)
	var differ bool
	for i := range raw {
		if raw[i] != limited[i] {
			differ = true
			break
		}
	}
	test.ExpectSuccess(t, differ)

	// values above MaxHarmonics are the same as MaxHarmonics
	g.Harmonics = synth.MaxHarmonics
	a, _ := g.Generate(440, 20)
	g.Harmonics = synth.MaxHarmonics * 100
	b, err := g.Generate(440, 20)
	test.DemandSuccess(t, err)
	for i := range a {
		if !test.ExpectEquality(t, a[i], b[i], i) {
			break
		}
	}

	g.Harmonics = -1
	_, err = g.Generate(440, 10)
	test.ExpectSuccess(t, curated.Is(err, synth.InvalidInput))
}

func TestWaveformNames(t *testing.T) {
	names := synth.WaveformNames()
	test.DemandEquality(t, len(names), 6)
	test.ExpectEquality(t, names[0], "composite")
	test.ExpectEquality(t, names[5], "triangle")

	_, err := synth.WaveformByName("organ")
	test.ExpectSuccess(t, curated.Is(err, synth.UnknownWaveform))
}

func TestSineMix(t *testing.T) {
	sine, _ := synth.Synthesize(440, 50)

	// a complete mix with sine is sine whatever the waveform
	g := synth.Generator{Wave: synth.Square{}, Amplitude: synth.DefaultAmplitude, SineMix: 100}
	s, err := g.Generate(440, 50)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(s), len(sine))
	for i := range s {
		if !test.ExpectEquality(t, s[i], sine[i], i) {
			break
		}
	}

	// and no mix is the waveform on its own
	g.SineMix = 0
	s, err = g.Generate(440, 50)
	test.DemandSuccess(t, err)
	for _, v := range s {
		if v != synth.DefaultAmplitude && v != -synth.DefaultAmplitude {
			t.Fatalf("unexpected square wave value: %d", v)
		}
	}
}

func TestClipping(t *testing.T) {
	g := synth.Generator{Wave: synth.Square{}, Amplitude: synth.DefaultAmplitude * 4}
	s, err := g.Generate(440, 10)
	test.DemandSuccess(t, err)
	for _, v := range s {
		if v != 32767 && v != -32768 {
			t.Fatalf("unexpected clipped value: %d", v)
		}
	}

	// an amplitude too large to multiply safely clips in the same way
	g.Amplitude = math.MaxInt
	s, err = g.Generate(440, 10)
	test.DemandSuccess(t, err)
	for _, v := range s {
		if v != 32767 && v != -32768 {
			t.Fatalf("unexpected clipped value: %d", v)
		}
	}

	g = synth.Generator{Wave: synth.Sine{}, Amplitude: math.MaxInt}
	a, err := g.Generate(440, 10)
	test.DemandSuccess(t, err)
	g.Amplitude = math.MaxInt16 * synth.Scale
	b, err := g.Generate(440, 10)
	test.DemandSuccess(t, err)
	for i := range a {
		if !test.ExpectEquality(t, a[i], b[i], i) {
			break
		}
	}

	g.Amplitude = -1
	_, err = g.Generate(440, 10)
	test.ExpectSuccess(t, curated.Is(err, synth.InvalidInput))
}
