package stream

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/bwmarrin/discordgo"
	"layeh.com/gopus"

	"mordomo/internal/logger"
)

const (
	channels     = 2
	sampleRate   = 48000
	frameSize    = 960 // 20ms at 48kHz
	maxOpusBytes = 3200
)

// Options describes one streaming run. Volume and Paused are sampled per
// frame so command handlers can adjust them mid-track.
type Options struct {
	URL    string
	Live   bool
	VC     *discordgo.VoiceConnection
	Stop   <-chan struct{}
	Volume func() float64
	Paused func() bool
}

// Play pipes the source through ffmpeg as raw 48kHz stereo PCM, encodes
// 20ms opus frames and pushes them onto the voice connection until the
// source ends or Stop closes. A closed Stop channel is a normal return,
// not an error.
func Play(o Options) error {
	args := []string{
		"-reconnect", "1",
		"-reconnect_streamed", "1",
		"-reconnect_delay_max", "5",
		"-i", o.URL,
		"-f", "s16le",
		"-ar", fmt.Sprint(sampleRate),
		"-ac", fmt.Sprint(channels),
		"-loglevel", "warning",
		"pipe:1",
	}
	cmd := exec.Command("ffmpeg", args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}
	defer func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	}()

	enc, err := gopus.NewEncoder(sampleRate, channels, gopus.Audio)
	if err != nil {
		return fmt.Errorf("create opus encoder: %w", err)
	}

	if err := o.VC.Speaking(true); err != nil {
		logger.Warnf("stream: set speaking: %v", err)
	}
	defer func() {
		if err := o.VC.Speaking(false); err != nil {
			logger.Warnf("stream: clear speaking: %v", err)
		}
	}()

	reader := bufio.NewReaderSize(stdout, 16384)
	pcm := make([]int16, frameSize*channels)

	for {
		select {
		case <-o.Stop:
			return nil
		default:
		}

		for o.Paused != nil && o.Paused() {
			select {
			case <-o.Stop:
				return nil
			case <-time.After(200 * time.Millisecond):
			}
		}

		err := binary.Read(reader, binary.LittleEndian, &pcm)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read pcm: %w", err)
		}

		if o.Volume != nil {
			applyVolume(pcm, o.Volume())
		}

		frame, err := enc.Encode(pcm, frameSize, maxOpusBytes)
		if err != nil {
			return fmt.Errorf("encode opus: %w", err)
		}

		select {
		case <-o.Stop:
			return nil
		case o.VC.OpusSend <- frame:
		}
	}
}

// applyVolume scales each sample in place, clamping at the int16 range so
// overdriven input cannot wrap around.
func applyVolume(pcm []int16, vol float64) {
	if vol == 1.0 {
		return
	}
	for i, s := range pcm {
		v := float64(s) * vol
		switch {
		case v > 32767:
			pcm[i] = 32767
		case v < -32768:
			pcm[i] = -32768
		default:
			pcm[i] = int16(v)
		}
	}
}
