package player

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_RoundTrip(t *testing.T) {
	p, _, clock := NewTestPlayer("rain", 30*time.Second)
	p.SetGroup("ambient")
	p.SetVolume(150)
	require.NoError(t, p.SetLoop(true, 2*time.Second))
	require.NoError(t, p.SetDelay(5*time.Second))
	require.NoError(t, p.SetCutStart(3*time.Second))
	require.NoError(t, p.SetCutEnd(4*time.Second))
	require.NoError(t, p.Play())
	clock.Advance(10 * time.Second)

	rec := p.Record()
	assert.Equal(t, "rain", rec.Name)
	assert.Equal(t, "ambient", rec.Group)

	// Through the wire format and back.
	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	var rec2 Record
	require.NoError(t, json.Unmarshal(raw, &rec2))
	assert.Equal(t, rec, rec2)

	dev := &MockDevice{}
	p2, err := fromRecordSource(dev, silentSource(30*time.Second), rec2, NewFakeClock())
	require.NoError(t, err)

	// Identical configuration, but transient play state never persists.
	assert.Equal(t, p.Settings(), p2.Settings())
	assert.Equal(t, p.Name(), p2.Name())
	assert.Equal(t, p.Group(), p2.Group())
	assert.Equal(t, Stopped, p2.State())
	assert.Zero(t, p2.PlayTime())

	// The restored volume is already applied to the fresh sink.
	assert.InDelta(t, Amplitude(150), dev.Sinks[0].Amplitude, 1e-12)
}

func TestRecord_TruncatesToSeconds(t *testing.T) {
	p, _, _ := NewTestPlayer("rain", 30*time.Second)
	require.NoError(t, p.SetDelay(2500*time.Millisecond))

	rec := p.Record()
	assert.Equal(t, int64(2), rec.Delay)
}

func TestFromRecord_RejectsNegativeDurations(t *testing.T) {
	// A hand-edited file can hold values no mutator would accept.
	tests := []struct {
		name string
		rec  Record
	}{
		{"negative delay", Record{Media: "mock://rain", Name: "rain", Volume: 100, Delay: -3}},
		{"negative loop gap", Record{Media: "mock://rain", Name: "rain", Volume: 100, LoopGap: -1}},
		{"negative cut", Record{Media: "mock://rain", Name: "rain", Volume: 100, CutStart: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromRecordSource(&MockDevice{}, silentSource(10*time.Second), tt.rec, NewFakeClock())
			require.Error(t, err)
			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, KindInvalidConfig, perr.Kind)
		})
	}
}

func TestFromRecord_RejectsImpossibleCuts(t *testing.T) {
	rec := Record{
		Media:    "mock://rain",
		Name:     "rain",
		Volume:   100,
		CutStart: 8,
		CutEnd:   7,
	}
	_, err := fromRecordSource(&MockDevice{}, silentSource(10*time.Second), rec, NewFakeClock())
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindInvalidConfig, perr.Kind)
}
