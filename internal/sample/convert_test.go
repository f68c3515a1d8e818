package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brummer10/sf2generate/internal/sf2err"
)

func TestConvert_ClipsToInt16Range(t *testing.T) {
	buf := []float64{1.5, -1.5, 0.5, -0.5}
	rec, err := Convert(buf, 1, 4, LoopWindow{0, 4}, Options{})
	require.NoError(t, err)
	assert.Equal(t, int16(32767), rec.PCM[0])
	assert.Equal(t, int16(-32767), rec.PCM[1])
	assert.Equal(t, int16(16384), rec.PCM[2])
	assert.Equal(t, int16(-16384), rec.PCM[3])
}

func TestConvert_SelectsChannelZero(t *testing.T) {
	// Interleaved stereo: channel 0 = 0.5 constant, channel 1 = -0.5 constant.
	buf := []float64{0.5, -0.5, 0.5, -0.5, 0.5, -0.5}
	rec, err := Convert(buf, 2, 3, LoopWindow{0, 3}, Options{})
	require.NoError(t, err)
	for _, v := range rec.PCM {
		assert.Equal(t, int16(16384), v)
	}
}

func TestConvert_LoopPCMIsIndependentCopy(t *testing.T) {
	buf := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	rec, err := Convert(buf, 1, 5, LoopWindow{1, 4}, Options{})
	require.NoError(t, err)
	require.Len(t, rec.LoopPCM, 3)

	rec.LoopPCM[0] = 999
	assert.NotEqual(t, rec.PCM[1], rec.LoopPCM[0])
}

func TestConvert_GainScalesBeforeClipping(t *testing.T) {
	buf := []float64{0.5}
	rec, err := Convert(buf, 1, 1, LoopWindow{0, 1}, Options{Gain: 2.0})
	require.NoError(t, err)
	assert.Equal(t, int16(32767), rec.PCM[0]) // 0.5*2.0 clips to 1.0
}

func TestConvert_InvalidLoopWindow(t *testing.T) {
	buf := []float64{0.1, 0.2, 0.3}
	_, err := Convert(buf, 1, 3, LoopWindow{2, 1}, Options{})
	assert.ErrorIs(t, err, sf2err.ErrInvalidLoop)

	_, err = Convert(buf, 1, 3, LoopWindow{0, 5}, Options{})
	assert.ErrorIs(t, err, sf2err.ErrInvalidLoop)
}

func TestConvert_FadeDisabledByDefault(t *testing.T) {
	buf := make([]float64, 100)
	for i := range buf {
		buf[i] = 0.5
	}
	rec, err := Convert(buf, 1, 100, LoopWindow{0, 100}, Options{})
	require.NoError(t, err)
	assert.Equal(t, int16(16384), rec.LoopPCM[0])
	assert.Equal(t, int16(16384), rec.LoopPCM[99])
}

func TestConvert_FadeRampsEnds(t *testing.T) {
	buf := make([]float64, 100)
	for i := range buf {
		buf[i] = 0.5
	}
	rec, err := Convert(buf, 1, 100, LoopWindow{0, 100}, Options{Fade: true})
	require.NoError(t, err)
	assert.Equal(t, int16(0), rec.LoopPCM[0])
	assert.Equal(t, int16(0), rec.LoopPCM[99])
	assert.Equal(t, int16(16384), rec.LoopPCM[50])
}
