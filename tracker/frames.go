package tracker

import (
	"time"
)

type (
	// Ticker is called by a Frames scheduler when a requested frame arrives.
	Ticker interface {
		Tick(now time.Time)
	}

	// FrameHandle identifies a pending frame request. The zero handle is
	// never returned by Request.
	FrameHandle uint64

	// Frames schedules a Ticker to be called on the next display frame, like
	// requestAnimationFrame in a browser. A request fires only once; tickers
	// that want to keep running request a new frame from within Tick.
	Frames interface {
		Request(t Ticker) FrameHandle
		Cancel(h FrameHandle)
	}

	// FrameQueue is a Frames implementation that is advanced explicitly by
	// the owner of the display loop, once per frame.
	FrameQueue struct {
		next    FrameHandle
		order   []FrameHandle
		pending map[FrameHandle]Ticker
	}

	// Clock gives the current wall clock time.
	Clock interface {
		Now() time.Time
	}

	SystemClock struct{}
)

func (SystemClock) Now() time.Time { return time.Now() }

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameHandle]Ticker)}
}

func (q *FrameQueue) Request(t Ticker) FrameHandle {
	q.next++
	q.order = append(q.order, q.next)
	q.pending[q.next] = t
	return q.next
}

func (q *FrameQueue) Cancel(h FrameHandle) {
	delete(q.pending, h)
}

// Pending returns true if there are frame requests waiting; the display
// loop should keep producing frames while this is true.
func (q *FrameQueue) Pending() bool {
	return len(q.pending) > 0
}

// Advance fires all the requests that were pending when Advance was called,
// in the order they were made. Requests made during the ticks wait for the
// next call. Returns the number of tickers called.
func (q *FrameQueue) Advance(now time.Time) int {
	due := q.order
	q.order = nil
	fired := 0
	for _, h := range due {
		t, ok := q.pending[h]
		if !ok {
			continue // cancelled
		}
		delete(q.pending, h)
		t.Tick(now)
		fired++
	}
	return fired
}
