package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAmplitude(t *testing.T) {
	t.Run("100 percent is unity gain", func(t *testing.T) {
		assert.InDelta(t, 1.0, Amplitude(100), 1e-12)
	})

	t.Run("0 percent is nearly but not exactly silent", func(t *testing.T) {
		a := Amplitude(0)
		assert.Greater(t, a, 0.0)
		assert.Less(t, a, 1e-6)
	})

	t.Run("above 100 percent amplifies", func(t *testing.T) {
		assert.Greater(t, Amplitude(200), 1.0)
	})

	t.Run("monotonically increasing", func(t *testing.T) {
		prev := Amplitude(0)
		for v := uint(10); v <= 200; v += 10 {
			cur := Amplitude(v)
			assert.Greaterf(t, cur, prev, "Amplitude(%d) should exceed Amplitude(%d)", v, v-10)
			prev = cur
		}
	})
}

func TestSetVolume_AppliesToSink(t *testing.T) {
	p, sink, _ := NewTestPlayer("drums", 10*time.Second)

	p.SetVolume(100)
	assert.InDelta(t, 1.0, sink.Amplitude, 1e-12)
	assert.Equal(t, uint(100), p.Volume())

	p.SetVolume(50)
	assert.Less(t, sink.Amplitude, 1.0)
	assert.Equal(t, uint(50), p.Volume())

	// Volume changes never rebuild the pipeline.
	assert.Zero(t, sink.Enqueues)
}
