package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Bank holds one decoded sound per cue, all in the same format.
type Bank struct {
	format  beep.Format
	buffers map[core.Cue]*beep.Buffer
}

// NewFormat returns the stereo 16-bit format used for playback at rate.
func NewFormat(rate int) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(rate),
		NumChannels: 2,
		Precision:   2,
	}
}

// NewSynthBank renders the generated cue sounds.
func NewSynthBank(format beep.Format) *Bank {
	b := &Bank{format: format, buffers: make(map[core.Cue]*beep.Buffer)}
	for _, c := range core.Cues() {
		buf := beep.NewBuffer(format)
		buf.Append(synthesize(c, format.SampleRate))
		b.buffers[c] = buf
	}
	return b
}

// LoadWavBank decodes <dir>/<cue>.wav for every cue, resampling to format.
// A missing or corrupt file is an error.
func LoadWavBank(dir string, format beep.Format) (*Bank, error) {
	b := &Bank{format: format, buffers: make(map[core.Cue]*beep.Buffer)}
	for _, c := range core.Cues() {
		path := filepath.Join(dir, c.String()+".wav")
		buf, err := loadWav(path, format)
		if err != nil {
			return nil, err
		}
		b.buffers[c] = buf
	}
	return b, nil
}

func loadWav(path string, format beep.Format) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}
	defer f.Close()

	streamer, src, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if src.SampleRate != format.SampleRate {
		s = beep.Resample(4, src.SampleRate, format.SampleRate, streamer)
	}

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	return buf, nil
}

// Format returns the sample format of every sound in the bank.
func (b *Bank) Format() beep.Format {
	return b.format
}

// Len returns the cue's length in samples, 0 if the bank has no sound for it.
func (b *Bank) Len(c core.Cue) int {
	buf, ok := b.buffers[c]
	if !ok {
		return 0
	}
	return buf.Len()
}

// Streamer returns a fresh stream of the cue's sound, or nil.
func (b *Bank) Streamer(c core.Cue) beep.StreamSeeker {
	buf, ok := b.buffers[c]
	if !ok {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}
