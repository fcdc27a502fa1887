package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToneStreamerLengthAndBounds(t *testing.T) {
	tone := newTone(sampleRate, 880, 60*time.Millisecond)

	var total int
	buf := make([][2]float64, 512)
	for {
		n, ok := tone.Stream(buf)
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, buf[i][0], 1.0)
			assert.GreaterOrEqual(t, buf[i][0], -1.0)
			assert.Equal(t, buf[i][0], buf[i][1], "mono signal on both channels")
		}
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, sampleRate.N(60*time.Millisecond), total)
	assert.NoError(t, tone.Err())
}

func TestToneEnvelopeStartsAndEndsSilent(t *testing.T) {
	tone := newTone(sampleRate, 440, 20*time.Millisecond)
	buf := make([][2]float64, 1)
	n, ok := tone.Stream(buf)
	assert.Equal(t, 1, n)
	assert.True(t, ok)
	assert.InDelta(t, 0, buf[0][0], 1e-9, "attack ramps from silence")
}

func TestPlayerNoopBeforeInitialize(t *testing.T) {
	p := NewPlayer()
	p.PlayAlert()
	p.PlayCapture()
	p.Cleanup()
}
