package tracker

import (
	"time"
)

type (
	// Broker is the centralized message broker of the editor. The Model is
	// owned by the GUI goroutine; everything running elsewhere (audio
	// backends, device loading, timers) reaches it by sending a MsgToModel to
	// ToModel, which the GUI drains between frames.
	//
	// For closing the GUI, the broker has two channels: CloseGUI and
	// FinishedGUI. CloseGUI has a capacity of 1, so you can always send an
	// empty message (struct{}{}) to it without blocking. If the channel is
	// already full, someone else has already requested the closure and
	// dropping the message is fine. FinishedGUI is closed once the GUI has
	// shut down. You can wait for it with a timeout:
	//    select {
	//      case <-FinishedGUI:
	//      case <-time.After(3 * time.Second):
	//    }
	Broker struct {
		ToModel chan MsgToModel

		CloseGUI    chan struct{}
		FinishedGUI chan struct{}
	}

	// MsgToModel is a message sent to the model. Data can be a BackendReady,
	// an Alert or a func() which gets executed in the GUI goroutine.
	MsgToModel struct {
		Data any
	}

	// BackendReady tells the model that the audio backend has finished
	// loading and playback may start.
	BackendReady struct{}
)

func NewBroker() *Broker {
	return &Broker{
		ToModel:     make(chan MsgToModel, 1024),
		CloseGUI:    make(chan struct{}, 1),
		FinishedGUI: make(chan struct{}),
	}
}

// NotifyReady waits in a new goroutine for ready to be closed and then sends
// BackendReady to the model.
func (b *Broker) NotifyReady(ready <-chan struct{}) {
	go func() {
		<-ready
		b.ToModel <- MsgToModel{Data: BackendReady{}}
	}()
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent, false
// otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}

// TimeoutReceive is a helper function to block until a value is received from a
// channel, or timing out after t. ok will be false if the timeout occurred or
// if the channel is closed.
func TimeoutReceive[T any](c <-chan T, t time.Duration) (v T, ok bool) {
	select {
	case v, ok = <-c:
		return v, ok
	case <-time.After(t):
		return v, false
	}
}
