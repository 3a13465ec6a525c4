package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyVolumeScales(t *testing.T) {
	pcm := []int16{1000, -1000, 0}
	applyVolume(pcm, 0.5)
	assert.Equal(t, []int16{500, -500, 0}, pcm)
}

func TestApplyVolumeClamps(t *testing.T) {
	pcm := []int16{30000, -30000}
	applyVolume(pcm, 2.0)
	assert.Equal(t, []int16{32767, -32768}, pcm)
}

func TestApplyVolumeUnityIsNoop(t *testing.T) {
	pcm := []int16{123, -456}
	applyVolume(pcm, 1.0)
	assert.Equal(t, []int16{123, -456}, pcm)
}
