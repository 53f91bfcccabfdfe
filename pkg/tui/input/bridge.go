// ABOUTME: Bridge turns a blocking io.Reader into a pollable byte source.
// ABOUTME: A detached goroutine reads one byte at a time into a ByteQueue; Poll never blocks.

package input

import (
	"io"

	"github.com/mauromedda/keyecho/internal/log"
)

const readBufSize = 256

// Bridge owns the consuming end of the queue fed by its reader goroutine.
// There is no shutdown: the goroutine runs until the reader fails or the
// process exits.
type Bridge struct {
	queue *ByteQueue
	done  chan struct{}
}

// Start spawns the reader goroutine on r and returns immediately.
func Start(r io.Reader) *Bridge {
	b := &Bridge{
		queue: NewByteQueue(),
		done:  make(chan struct{}),
	}
	go b.readLoop(r)
	return b
}

// readLoop performs blocking single-byte reads until r reports an error
// or end of stream. The error is not surfaced to the consumer.
func (b *Bridge) readLoop(r io.Reader) {
	defer close(b.done)

	var one [1]byte
	for {
		n, err := r.Read(one[:])
		if n == 1 {
			b.queue.Push(one[0])
		}
		if err != nil {
			log.Debug("input reader stopped: %v", err)
			return
		}
	}
}

// Poll returns the oldest pending byte without blocking. A NUL byte is
// consumed but reported as no input.
func (b *Bridge) Poll() (byte, bool) {
	c, ok := b.queue.Pop()
	if !ok || c == 0 {
		return 0, false
	}
	return c, true
}

// Pending returns how many bytes are queued and not yet polled.
func (b *Bridge) Pending() int {
	return b.queue.Len()
}

// Done is closed once the reader goroutine has stopped.
func (b *Bridge) Done() <-chan struct{} {
	return b.done
}
