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

package composer

import (
	"fmt"
	"io"
	"math"
	"math/bits"

	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/chesswav/curated"
	"github.com/jetsetilly/chesswav/logger"
	"github.com/jetsetilly/chesswav/notation"
	"github.com/jetsetilly/chesswav/pitch"
	"github.com/jetsetilly/chesswav/synth"
	"github.com/jetsetilly/chesswav/wavfile"
)

const logTag = "composer"

// Note is a successfully parsed move and its frequency.
type Note struct {
	Token     string
	Move      notation.Move
	Frequency int
}

func (n Note) String() string {
	return fmt.Sprintf("%s: %s (%dHz)", n.Token, n.Move, n.Frequency)
}

// Skipped is a token that could not be parsed.
type Skipped struct {
	// position of the token in the input
	Index int
	Token string
	Err   error
}

// Score is the result of composing a game.
type Score struct {
	Notes   []Note
	Skipped []Skipped
	Samples []int16
}

// Compose converts the tokens into audio.
func Compose(tokens []string, opts Options) (*Score, error) {
	sc := &Score{}

	for i, tok := range tokens {
		mv, err := notation.Parse(tok)
		if err != nil {
			logger.Logf(opts, logTag, "skipping move %d: %v", i+1, err)
			sc.Skipped = append(sc.Skipped, Skipped{Index: i, Token: tok, Err: err})
			continue
		}
		sc.Notes = append(sc.Notes, Note{
			Token:     tok,
			Move:      mv,
			Frequency: pitch.Frequency(mv.Destination),
		})
	}

	if err := synth.CheckDuration(opts.NoteMS); err != nil {
		return nil, curated.Errorf("composer: %v", err)
	}

	gap, err := synth.Silence(opts.GapMS)
	if err != nil {
		return nil, curated.Errorf("composer: %v", err)
	}

	// check length of the game before synthesising anything
	total := totalSamples(len(sc.Notes), synth.SampleCount(opts.NoteMS), len(gap))
	if total > wavfile.MaxSamples {
		return nil, curated.Errorf("composer: %v", curated.Errorf(wavfile.SizeOverflow, total))
	}

	notes, err := synthesise(sc.Notes, opts)
	if err != nil {
		return nil, curated.Errorf("composer: %v", err)
	}

	sc.Samples = make([]int16, 0, int(total))
	for i, n := range notes {
		if i > 0 {
			sc.Samples = append(sc.Samples, gap...)
		}
		sc.Samples = append(sc.Samples, n...)
	}

	return sc, nil
}

// totalSamples returns the number of samples in n notes of noteSamples
// separated by gapSamples of silence. the result saturates at math.MaxUint64
// rather than wrapping around to a small value
func totalSamples(n int, noteSamples int, gapSamples int) uint64 {
	if n == 0 {
		return 0
	}
	hi, notes := bits.Mul64(uint64(n), uint64(noteSamples))
	hi2, gaps := bits.Mul64(uint64(n-1), uint64(gapSamples))
	total, carry := bits.Add64(notes, gaps, 0)
	if hi|hi2|carry != 0 {
		return math.MaxUint64
	}
	return total
}

// synthesise the samples for every note. the returned slice is in the same
// order as the notes argument
func synthesise(notes []Note, opts Options) ([][]int16, error) {
	samples := make([][]int16, len(notes))

	if opts.Workers < 2 {
		for i, n := range notes {
			s, err := opts.Generator.Generate(n.Frequency, opts.NoteMS)
			if err != nil {
				return nil, err
			}
			samples[i] = s
		}
		return samples, nil
	}

	var g errgroup.Group
	g.SetLimit(opts.Workers)

	for i, n := range notes {
		g.Go(func() error {
			s, err := opts.Generator.Generate(n.Frequency, opts.NoteMS)
			if err != nil {
				return err
			}
			samples[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return samples, nil
}

// Write the score as a WAV file.
func (sc *Score) Write(w io.Writer) error {
	return wavfile.Write(w, sc.Samples)
}

// ComposeFrom reads tokens from the io.Reader and composes them.
func ComposeFrom(r io.Reader, opts Options) (*Score, error) {
	tokens, err := notation.Tokens(r)
	if err != nil {
		return nil, curated.Errorf("composer: %v", err)
	}
	return Compose(tokens, opts)
}
