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

func TestSineValue(t *testing.T) {
	test.ExpectEquality(t, synth.SineValue(0), 0)
	test.ExpectEquality(t, synth.SineValue(30), 5000)
	test.ExpectEquality(t, synth.SineValue(90), synth.Scale)
	test.ExpectEquality(t, synth.SineValue(180), 0)
	test.ExpectEquality(t, synth.SineValue(270), -synth.Scale)

	// symmetry of the sine wave
	for d := 1; d < 180; d++ {
		test.ExpectEquality(t, synth.SineValue(d), -synth.SineValue(360-d), d)
		test.ExpectEquality(t, synth.SineValue(d), synth.SineValue(180-d), d)
	}

	// degrees outside of a single cycle
	test.ExpectEquality(t, synth.SineValue(450), synth.Scale)
	test.ExpectEquality(t, synth.SineValue(-90), -synth.Scale)
	test.ExpectEquality(t, synth.SineValue(-360), 0)
}

func TestSampleCount(t *testing.T) {
	test.ExpectEquality(t, synth.SampleCount(0), 0)
	test.ExpectEquality(t, synth.SampleCount(50), 2205)
	test.ExpectEquality(t, synth.SampleCount(100), 4410)
	test.ExpectEquality(t, synth.SampleCount(300), 13230)
	test.ExpectEquality(t, synth.SampleCount(1), 44)
}

func TestSynthesize(t *testing.T) {
	s, err := synth.Synthesize(440, 100)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(s), 4410)

	// first samples of A4 through the lookup table
	expected := []int16{0, 1713, 3994, 5688, 7926, 9581, 11743, 13847}
	for i, v := range expected {
		test.ExpectEquality(t, s[i], v, i)
	}

	var hi, lo int16
	for _, v := range s {
		hi = max(hi, v)
		lo = min(lo, v)
	}
	test.ExpectEquality(t, hi, 32767)
	test.ExpectEquality(t, lo, -32767)
}

func TestSynthesizeIsRepeatable(t *testing.T) {
	a, err := synth.Synthesize(392, 300)
	test.DemandSuccess(t, err)
	b, err := synth.Synthesize(392, 300)
	test.DemandSuccess(t, err)

	test.DemandEquality(t, len(a), len(b))
	for i := range a {
		if !test.ExpectEquality(t, a[i], b[i], i) {
			break
		}
	}
}

func TestDifferentFrequencies(t *testing.T) {
	a, _ := synth.Synthesize(440, 50)
	b, _ := synth.Synthesize(880, 50)

	var differ bool
	for i := range a {
		if a[i] != b[i] {
			differ = true
			break
		}
	}
	test.ExpectSuccess(t, differ)
}

func TestDegenerateInput(t *testing.T) {
	s, err := synth.Synthesize(440, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(s), 0)

	s, err = synth.Synthesize(0, 100)
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(s), 4410)
	for i, v := range s {
		if !test.ExpectEquality(t, v, 0, i) {
			break
		}
	}

	_, err = synth.Synthesize(-1, 100)
	test.ExpectSuccess(t, curated.Is(err, synth.InvalidInput))
	_, err = synth.Synthesize(440, -1)
	test.ExpectSuccess(t, curated.Is(err, synth.InvalidInput))
}

func TestSilence(t *testing.T) {
	s, err := synth.Silence(50)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(s), 2205)
	for _, v := range s {
		test.DemandEquality(t, v, 0)
	}

	_, err = synth.Silence(-50)
	test.ExpectFailure(t, err)
}

func TestLargeDuration(t *testing.T) {
	test.ExpectSuccess(t, synth.CheckDuration(synth.MaxDurationMS))
	test.ExpectFailure(t, synth.CheckDuration(synth.MaxDurationMS+1))
	test.ExpectFailure(t, synth.CheckDuration(-1))

	// the longest duration fits in a WAV file
	test.ExpectSuccess(t, synth.SampleCount(synth.MaxDurationMS) <= math.MaxInt32)

	_, err := synth.Synthesize(440, synth.MaxDurationMS+1)
	test.ExpectSuccess(t, curated.Is(err, synth.InvalidInput))
	_, err = synth.Silence(synth.MaxDurationMS + 1)
	test.ExpectSuccess(t, curated.Is(err, synth.InvalidInput))

	// a duration that would overflow the sample count
	_, err = synth.Synthesize(440, 300000000000000)
	test.ExpectSuccess(t, curated.Is(err, synth.InvalidInput))
	_, err = synth.Silence(math.MaxInt)
	test.ExpectSuccess(t, curated.Is(err, synth.InvalidInput))
}

func TestLargeFrequency(t *testing.T) {
	_, err := synth.Synthesize(synth.MaxFrequency+1, 10)
	test.ExpectSuccess(t, curated.Is(err, synth.InvalidInput))
	_, err = synth.Synthesize(math.MaxInt, 10)
	test.ExpectSuccess(t, curated.Is(err, synth.InvalidInput))

	s, err := synth.Synthesize(synth.MaxFrequency, 10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(s), 441)

	// a frequency that is a whole multiple of the sample rate advances the
	// phase by whole cycles and so every sample is zero
	s, err = synth.Synthesize(synth.SampleRate*3, 10)
	test.DemandSuccess(t, err)
	for i, v := range s {
		if !test.ExpectEquality(t, v, 0, i) {
			break
		}
	}
}
