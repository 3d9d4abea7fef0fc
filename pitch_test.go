package tabula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vsariola/tabula"
)

func TestPitchForOpenStrings(t *testing.T) {
	want := []int{0, 5, 10, 15, 19, 24}
	for str, w := range want {
		assert.Equal(t, w, tabula.PitchFor(0, str), "open string %d", str)
	}
}

func TestPitchForIncreasesWithFret(t *testing.T) {
	for str := 0; str < tabula.NumStrings; str++ {
		for fret := 0; fret < 24; fret++ {
			assert.Less(t, tabula.PitchFor(fret, str), tabula.PitchFor(fret+1, str))
		}
	}
}

func TestPitchFor(t *testing.T) {
	assert.Equal(t, 7, tabula.PitchFor(2, 1))
	assert.Equal(t, 22, tabula.PitchFor(3, 4))
	assert.Equal(t, 36, tabula.PitchFor(12, 5))
}

func TestDetuneCents(t *testing.T) {
	assert.Equal(t, -2900.0, tabula.DetuneCents(0))
	assert.Equal(t, 0.0, tabula.DetuneCents(29))
	assert.Equal(t, 700.0, tabula.DetuneCents(36))
}

func TestFrequency(t *testing.T) {
	assert.InDelta(t, 440.0, tabula.Frequency(tabula.DetuneCents(29)), 1e-9)
	assert.InDelta(t, 880.0, tabula.Frequency(1200), 1e-9)
	assert.InDelta(t, 82.4069, tabula.Frequency(tabula.DetuneCents(tabula.PitchFor(0, 0))), 1e-3)
}
