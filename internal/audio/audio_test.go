package audio

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeAllCues(t *testing.T) {
	for _, cue := range Cues() {
		t.Run(cue, func(t *testing.T) {
			pcm, err := Synthesize(cue)
			require.NoError(t, err)
			require.NotEmpty(t, pcm)
			assert.Zero(t, len(pcm)%bytesPerFrame, "whole stereo frames only")

			again, err := Synthesize(cue)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(pcm, again), "synthesis is deterministic")

			silent := true
			for _, b := range pcm {
				if b != 0 {
					silent = false
					break
				}
			}
			assert.False(t, silent)
		})
	}
}

func TestSynthesizeUnknownCue(t *testing.T) {
	_, err := Synthesize("SOUND_NOPE")
	assert.Error(t, err)
}

func TestPCMStreamReadSeek(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	s := NewPCMStream(data)
	assert.Equal(t, int64(8), s.Length())

	got, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	n, err := s.Read(make([]byte, 4))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)

	pos, err := s.Seek(0, io.SeekStart)
	require.NoError(t, err)
	assert.Zero(t, pos)

	pos, err = s.Seek(-4, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(4), pos)
	buf := make([]byte, 8)
	n, err = s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 6, 7, 8}, buf[:n])

	_, err = s.Seek(-1, io.SeekStart)
	assert.Error(t, err)
	_, err = s.Seek(0, 42)
	assert.Error(t, err)
}

func TestEnvelopeBounds(t *testing.T) {
	for p := 0.0; p < 1.0; p += 0.01 {
		v := adsr(p, 0.1, 0.2, 0.5, 0.3)
		assert.GreaterOrEqual(t, v, -1e-9)
		assert.LessOrEqual(t, v, 1.0+1e-9)
	}
	assert.InDelta(t, 0.5, adsr(0.5, 0.1, 0.2, 0.5, 0.3), 1e-9)
}

func TestDurationMatchesLength(t *testing.T) {
	pcm, err := Synthesize(CueScore)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, NewPCMStream(pcm).Duration(), 1e-3)
}
