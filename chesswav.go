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


package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jetsetilly/chesswav/chess"
	"github.com/jetsetilly/chesswav/composer"
	"github.com/jetsetilly/chesswav/curated"
	"github.com/jetsetilly/chesswav/digest"
	"github.com/jetsetilly/chesswav/logger"
	"github.com/jetsetilly/chesswav/modalflag"
	"github.com/jetsetilly/chesswav/pitch"
	"github.com/jetsetilly/chesswav/playback"
	"github.com/jetsetilly/chesswav/synth"
	"github.com/jetsetilly/chesswav/version"
	"github.com/jetsetilly/chesswav/wavfile"
	"github.com/jetsetilly/chesswav/wavwriter"
)

// exit values
const (
	exitOK     = 0
	exitArgs   = 10
	exitFailed = 20
)

// number of log entries printed when a mode fails
const logTail = 10

// error patterns for the command line
const (
	terminalOutput = "refusing to write audio to a terminal (use -o or redirect stdout)"
	missingFile    = "%s mode requires a file"
	tooManyFiles   = "too many files specified (%d)"
	noAudio        = "no audio output available in this build"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// launch runs the program with the arguments and returns the exit value.
func launch(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	logger.Clear()
	defer logger.SetEcho(nil)

	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.AddSubModes("RENDER", "PLAY", "BOARD", "INFO")
	md.AdditionalHelp("moves are read from the named file or from stdin if no file is given")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitArgs
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return exitOK
	}

	switch md.Mode() {
	case "RENDER":
		err = render(md, stdin, stdout, stderr)
	case "PLAY":
		err = play(md, stdin, stderr)
	case "BOARD":
		err = board(md, stdout)
	case "INFO":
		err = info(md, stdout)
	}

	if err != nil {
		if curated.Is(err, argsError) {
			fmt.Fprintf(stderr, "* error: %v\n", err)
			return exitArgs
		}
		fmt.Fprintf(stderr, "* error in %s mode: %v\n", md, err)

		// entries already echoed are not repeated
		if !logger.Echoing() {
			logger.Tail(stderr, logTail)
		}
		return exitFailed
	}

	return exitOK
}

// argsError wraps problems with the command line so they can be told apart
// from failures in the mode itself
const argsError = "arguments: %v"

// parse arguments for the current mode. the returned bool is true if the mode
// should continue
func parse(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, curated.Errorf(argsError, err)
	}
	return true, nil
}

// composerFlags are the flags shared by the RENDER and PLAY modes.
type composerFlags struct {
	note      *int
	gap       *int
	wave      *string
	sineMix   *int
	harmonics *int
	volume    *int
	workers   *int
	log       *bool
	quiet     *bool
}

func addComposerFlags(md *modalflag.Modes) composerFlags {
	def := composer.DefaultOptions()
	return composerFlags{
		note:      md.AddInt("note", def.NoteMS, "duration of each move in milliseconds"),
		gap:       md.AddInt("gap", def.GapMS, "silence between moves in milliseconds"),
		wave:      md.AddString("wave", "sine", fmt.Sprintf("waveform: %s", strings.Join(synth.WaveformNames(), ", "))),
		sineMix:   md.AddInt("sinemix", 0, "percentage of sine blended into the waveform"),
		harmonics: md.AddInt("harmonics", 0, fmt.Sprintf("band-limit the waveform to this many harmonics (0 is the raw waveform, at most %d)", synth.MaxHarmonics)),
		volume:    md.AddInt("volume", def.Generator.Amplitude, "peak amplitude (0 to 32767)"),
		workers:   md.AddInt("workers", def.Workers, "number of moves synthesised in parallel"),
		log:       md.AddBool("log", false, "echo log to stderr"),
		quiet:     md.AddBool("quiet", def.Quiet, "do not log skipped moves"),
	}
}

// options converts the flag values to composer options. must be called after
// modalflag.Parse()
func (f composerFlags) options(stderr io.Writer) (composer.Options, error) {
	if *f.log {
		logger.SetEcho(stderr)
	} else {
		logger.SetEcho(nil)
	}

	opts := composer.DefaultOptions()
	opts.NoteMS = *f.note
	opts.GapMS = *f.gap
	opts.Workers = *f.workers
	opts.Quiet = *f.quiet

	wave, err := synth.WaveformByName(*f.wave)
	if err != nil {
		return opts, curated.Errorf(argsError, err)
	}
	opts.Generator = synth.Generator{
		Wave:      wave,
		Amplitude: *f.volume,
		SineMix:   *f.sineMix,
		Harmonics: *f.harmonics,
	}

	return opts, nil
}

// input returns the reader for the moves. a missing filename or "-" means
// stdin
func input(md *modalflag.Modes, stdin io.Reader) (io.ReadCloser, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return io.NopCloser(stdin), nil
	case 1:
		if md.GetArg(0) == "-" {
			return io.NopCloser(stdin), nil
		}
		return os.Open(md.GetArg(0))
	}
	return nil, curated.Errorf(argsError, curated.Errorf(tooManyFiles, len(md.RemainingArgs())))
}

// compose the moves named by the command line.
func compose(md *modalflag.Modes, stdin io.Reader, stderr io.Writer, opts composer.Options) (*composer.Score, error) {
	in, err := input(md, stdin)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	sc, err := composer.ComposeFrom(in, opts)
	if err != nil {
		return nil, err
	}

	for _, s := range sc.Skipped {
		fmt.Fprintf(stderr, "* skipped move %d: %v\n", s.Index+1, s.Err)
	}

	return sc, nil
}

func render(md *modalflag.Modes, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()
	cf := addComposerFlags(md)
	output := md.AddString("o", "", "write audio to file instead of stdout")
	showDigest := md.AddBool("digest", false, "print a digest of the audio to stderr")

	if ok, err := parse(md); !ok {
		return err
	}

	opts, err := cf.options(stderr)
	if err != nil {
		return err
	}

	if *output == "" && isTerminal(stdout) {
		return curated.Errorf(argsError, curated.Errorf(terminalOutput))
	}

	sc, err := compose(md, stdin, stderr, opts)
	if err != nil {
		return err
	}

	if *showDigest {
		fmt.Fprintf(stderr, "* digest: %s\n", digest.Samples(sc.Samples))
	}

	if *output == "" {
		return sc.Write(stdout)
	}

	ww, err := wavwriter.New(*output)
	if err != nil {
		return err
	}
	if err := ww.SetAudio(sc.Samples); err != nil {
		return err
	}
	return ww.EndMixing()
}

// isTerminal returns true if w is a file connected to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func play(md *modalflag.Modes, stdin io.Reader, stderr io.Writer) error {
	md.NewMode()
	cf := addComposerFlags(md)

	if ok, err := parse(md); !ok {
		return err
	}

	if !playback.Available() {
		return curated.Errorf(noAudio)
	}

	opts, err := cf.options(stderr)
	if err != nil {
		return err
	}

	sc, err := compose(md, stdin, stderr, opts)
	if err != nil {
		return err
	}

	return playback.Play(sc.Samples)
}

func board(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()
	notes := md.AddBool("notes", false, "label squares with note names instead of frequencies")

	if ok, err := parse(md); !ok {
		return err
	}

	fmt.Fprint(stdout, chess.NewBoard().Render(rankLabel(*notes)))
	return nil
}

// rankLabel returns a label function for chess.Board.Render() that lists the
// pitch of every square in the rank.
func rankLabel(notes bool) func(rank int) string {
	return func(rank int) string {
		s := strings.Builder{}
		s.WriteString("   ")
		for file := range 8 {
			sq, err := chess.NewSquare(file, rank)
			if err != nil {
				return ""
			}
			if notes {
				fmt.Fprintf(&s, " %-4s", pitch.NoteName(sq))
			} else {
				fmt.Fprintf(&s, " %5d", pitch.Frequency(sq))
			}
		}
		return strings.TrimRight(s.String(), " ")
	}
}

func info(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	if ok, err := parse(md); !ok {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(argsError, curated.Errorf(missingFile, md))
	case 1:
	default:
		return curated.Errorf(argsError, curated.Errorf(tooManyFiles, len(md.RemainingArgs())))
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	inf, err := wavfile.Inspect(f)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, inf)
	if inf.IsCompatible() {
		fmt.Fprintf(stdout, "format matches %s output\n", version.ApplicationName)
	}

	return nil
}
