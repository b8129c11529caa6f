package log

import (
	"bytes"
	"sync"
	"sync/atomic"
)

const defaultBufferSize = 64

// Publisher is an [io.Writer] that splits log output into lines and fans
// them out to subscribers.
//
// Each line is delivered to every active [Subscription] via a buffered
// channel with ring-buffer semantics: when a subscriber's channel is full the
// oldest line is dropped so Write never blocks. Empty lines are skipped. Safe
// for concurrent use.
//
// Create instances with [NewPublisher].
type Publisher struct {
	subscribers []*Subscription
	partial     []byte // unterminated tail of the last write
	bufSize     int
	mu          sync.Mutex
	closed      bool
}

// NewPublisher creates a [Publisher] with the given options.
// The default buffer size is 64 lines.
func NewPublisher(opts ...PublisherOption) *Publisher {
	p := &Publisher{
		bufSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PublisherOption configures a [Publisher].
type PublisherOption func(*Publisher)

// WithBufferSize sets the channel buffer size, in lines, for new
// subscriptions. Values less than 1 are clamped to 1.
func WithBufferSize(n int) PublisherOption {
	return func(p *Publisher) {
		if n < 1 {
			n = 1
		}

		p.bufSize = n
	}
}

// Write splits b at newlines and publishes every complete line. A trailing
// fragment without a newline is kept until a later Write completes it or
// [Publisher.Flush] is called. Write always returns len(b), nil.
func (p *Publisher) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return len(b), nil
	}

	data := append(p.partial, b...)

	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}

		p.publish(data[:i])
		data = data[i+1:]
	}

	p.partial = append([]byte(nil), data...)

	return len(b), nil
}

// Flush publishes any buffered fragment as a line of its own.
func (p *Publisher) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || len(p.partial) == 0 {
		return
	}

	p.publish(p.partial)
	p.partial = nil
}

// publish delivers one line and compacts closed subscriptions. Callers hold
// p.mu.
func (p *Publisher) publish(line []byte) {
	line = bytes.TrimRight(line, "\r")
	if len(line) == 0 {
		return
	}

	entry := string(line)

	alive := p.subscribers[:0]
	for _, sub := range p.subscribers {
		if sub.closed.Load() {
			close(sub.ch)
			continue
		}

		select {
		case sub.ch <- entry:
		default:
			<-sub.ch

			sub.ch <- entry
		}

		alive = append(alive, sub)
	}

	for i := len(alive); i < len(p.subscribers); i++ {
		p.subscribers[i] = nil
	}

	p.subscribers = alive
}

// Subscribe creates and registers a new [Subscription]. If the Publisher is
// already closed the returned subscription's channel is immediately closed.
func (p *Publisher) Subscribe() *Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	sub := &Subscription{
		ch: make(chan string, p.bufSize),
	}

	if p.closed {
		close(sub.ch)
		return sub
	}

	p.subscribers = append(p.subscribers, sub)

	return sub
}

// Close marks the Publisher as closed, closes all subscription channels,
// and releases the subscriber list. Buffered fragments are discarded.
// Idempotent.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true
	for _, sub := range p.subscribers {
		close(sub.ch)
	}

	p.subscribers = nil
	p.partial = nil

	return nil
}

// Subscription receives log lines from a [Publisher].
type Subscription struct {
	ch     chan string
	closed atomic.Bool
}

// C returns the read-only channel that delivers log lines, without their
// line terminator.
func (s *Subscription) C() <-chan string {
	return s.ch
}

// Close marks the subscription as closed. The Publisher will close the
// underlying channel on its next published line or Close call. Idempotent.
func (s *Subscription) Close() {
	s.closed.Store(true)
}
