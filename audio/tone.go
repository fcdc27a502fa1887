package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// toneStreamer synthesizes a fixed-length sine tone with a short linear
// attack/release envelope to avoid clicks.
type toneStreamer struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
	edge  int
}

func newTone(sr beep.SampleRate, freq float64, d time.Duration) *toneStreamer {
	total := sr.N(d)
	edge := sr.N(5 * time.Millisecond)
	if edge*2 > total {
		edge = total / 2
	}
	return &toneStreamer{sr: sr, freq: freq, total: total, edge: edge}
}

func (t *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		v := math.Sin(2 * math.Pi * t.freq * float64(t.pos) / float64(t.sr))
		v *= t.gain()
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *toneStreamer) Err() error { return nil }

// gain is the envelope value at the current sample position.
func (t *toneStreamer) gain() float64 {
	if t.edge == 0 {
		return 1
	}
	if t.pos < t.edge {
		return float64(t.pos) / float64(t.edge)
	}
	if rem := t.total - t.pos; rem < t.edge {
		return float64(rem) / float64(t.edge)
	}
	return 1
}
