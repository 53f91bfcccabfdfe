// ABOUTME: ByteQueue is an unbounded FIFO of raw input bytes shared by one producer and one consumer.
// ABOUTME: Pop never blocks; consumed storage is reclaimed once the head passes half the buffer.

package input

import "sync"

// compactAt is the minimum head offset before Pop considers compacting.
const compactAt = 64

// ByteQueue is an unbounded, order-preserving byte queue. It never drops
// a pushed byte. All methods are safe for concurrent use.
type ByteQueue struct {
	mu   sync.Mutex
	buf  []byte
	head int
}

// NewByteQueue returns an empty queue.
func NewByteQueue() *ByteQueue {
	return &ByteQueue{buf: make([]byte, 0, readBufSize)}
}

// Push appends b at the tail.
func (q *ByteQueue) Push(b byte) {
	q.mu.Lock()
	q.buf = append(q.buf, b)
	q.mu.Unlock()
}

// Pop removes and returns the oldest byte, or false if the queue is empty.
func (q *ByteQueue) Pop() (byte, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head == len(q.buf) {
		return 0, false
	}
	b := q.buf[q.head]
	q.head++

	switch {
	case q.head == len(q.buf):
		q.buf = q.buf[:0]
		q.head = 0
	case q.head >= compactAt && q.head*2 >= len(q.buf):
		n := copy(q.buf, q.buf[q.head:])
		q.buf = q.buf[:n]
		q.head = 0
	}
	return b, true
}

// Len returns the number of bytes waiting to be popped.
func (q *ByteQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.buf) - q.head
}
