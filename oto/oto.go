// Package oto plays audio through github.com/ebitengine/oto/v3.
package oto

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/vsariola/tabula"
)

type (
	// Context is a tabula.AudioContext playing through the default audio
	// device. Creating the device is asynchronous; Ready is closed once it
	// has finished.
	Context struct {
		context    *oto.Context
		ready      chan struct{}
		sampleRate int
	}

	player struct {
		player *oto.Player
		once   sync.Once
	}

	// reader adapts a tabula.AudioSource to the io.Reader that oto pulls
	// samples from.
	reader struct {
		source tabula.AudioSource
		buffer tabula.AudioBuffer
	}
)

const DefaultSampleRate = 44100

func NewContext(sampleRate int) (*Context, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	op := oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	}
	context, otoReady, err := oto.NewContext(&op)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	ready := make(chan struct{})
	go func() {
		<-otoReady
		close(ready)
	}()
	return &Context{context: context, ready: ready, sampleRate: sampleRate}, nil
}

func (c *Context) Ready() <-chan struct{} { return c.ready }
func (c *Context) SampleRate() int        { return c.sampleRate }

// Play starts pulling audio from source.
func (c *Context) Play(source tabula.AudioSource) tabula.Closer {
	p := c.context.NewPlayer(&reader{source: source})
	p.Play()
	return &player{player: p}
}

// Close suspends the audio device. oto allows only one context per process,
// so the device itself is never released.
func (c *Context) Close() error {
	if err := c.context.Suspend(); err != nil {
		return fmt.Errorf("cannot suspend oto context: %w", err)
	}
	return nil
}

func (p *player) Close() (err error) {
	p.once.Do(func() {
		p.player.Pause()
		if e := p.player.Close(); e != nil {
			err = fmt.Errorf("cannot close oto player: %w", e)
		}
	})
	return err
}

func (r *reader) Read(b []byte) (int, error) {
	samples := len(b) / bytesPerSample
	if cap(r.buffer) < samples {
		r.buffer = make(tabula.AudioBuffer, samples)
	}
	r.buffer = r.buffer[:samples]
	if err := r.source(r.buffer); err != nil {
		return 0, fmt.Errorf("audio source failed: %w", err)
	}
	return FloatBufferToBytes(r.buffer, b), nil
}
