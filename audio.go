package tabula

type (
	// AudioBuffer is a buffer of stereo audio samples of variable length,
	// each sample represented by [2]float32. [0] is left channel, [1] is right.
	AudioBuffer [][2]float32

	// AudioSource fills the given buffer with audio. It is called from the
	// audio thread, so it must never block.
	AudioSource func(buf AudioBuffer) error

	// AudioContext represents an audio output device. Ready returns a channel
	// that is closed once the device is ready to play; until then, nothing
	// sounds. Play starts pulling audio from the source; closing the returned
	// Closer stops it.
	AudioContext interface {
		Ready() <-chan struct{}
		Play(source AudioSource) Closer
		SampleRate() int
		Close() error
	}

	Closer interface {
		Close() error
	}
)

// Fill sets both channels of every sample to v.
func (b AudioBuffer) Fill(v float32) {
	for i := range b {
		b[i] = [2]float32{v, v}
	}
}
