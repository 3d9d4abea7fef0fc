package beep

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
)

func TestSquareWave(t *testing.T) {
	s := Square(beep.SampleRate(8), 2, 0.25)
	samples := make([][2]float64, 8)
	n, ok := s.Stream(samples)
	assert.True(t, ok)
	assert.Equal(t, 8, n)
	want := []float64{0.25, 0.25, -0.25, -0.25, 0.25, 0.25, -0.25, -0.25}
	for i, w := range want {
		assert.InDelta(t, w, samples[i][0], 1e-12, "sample %d", i)
		assert.Equal(t, samples[i][0], samples[i][1])
	}
	assert.NoError(t, s.Err())
}

func TestTakeLimitsTone(t *testing.T) {
	sr := beep.SampleRate(100)
	s := beep.Seq(beep.Silence(sr.N(50*time.Millisecond)), beep.Take(sr.N(100*time.Millisecond), Square(sr, 10, 1)))
	samples := make([][2]float64, 30)
	n, ok := s.Stream(samples)
	assert.True(t, ok)
	assert.Equal(t, 15, n)
	assert.Equal(t, 0.0, samples[4][0])
	assert.Equal(t, 1.0, samples[5][0])
	n, _ = s.Stream(samples)
	assert.Equal(t, 0, n)
}
