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

//go:build !headless

package playback

import (
	"bytes"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/jetsetilly/chesswav/curated"
	"github.com/jetsetilly/chesswav/logger"
	"github.com/jetsetilly/chesswav/wavfile"
)

const logTag = "playback"

// oto allows only one context for the lifetime of the program
var (
	ctxOnce sync.Once
	ctx     *oto.Context
	ctxErr  error
)

func audioContext() (*oto.Context, error) {
	ctxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   wavfile.SampleRate,
			ChannelCount: wavfile.NumChannels,
			Format:       oto.FormatSignedInt16LE,
		}

		var ready chan struct{}
		ctx, ready, ctxErr = oto.NewContext(op)
		if ctxErr == nil {
			<-ready
		}
	})
	return ctx, ctxErr
}

// Available returns true if audio output is included in the build.
func Available() bool {
	return true
}

// Play the samples and return when they have finished playing.
func Play(samples []int16) error {
	b, err := pcm(samples)
	if err != nil {
		return err
	}

	c, err := audioContext()
	if err != nil {
		return curated.Errorf(DeviceError, err)
	}

	logger.Logf(logger.Allow, logTag, "playing %d samples", len(samples))

	p := c.NewPlayer(bytes.NewReader(b))
	defer p.Close()

	p.Play()
	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	if err := p.Err(); err != nil {
		return curated.Errorf(DeviceError, err)
	}

	return nil
}
