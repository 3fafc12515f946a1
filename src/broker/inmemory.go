package broker

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrClosed is returned when publishing to or subscribing on a closed broker.
var ErrClosed = errors.New("broker is closed")

// subscriberBuffer is the channel capacity of each in-memory subscription.
const subscriberBuffer = 256

type subscription struct {
	ch       chan Message
	gone     chan struct{}
	goneOnce sync.Once
	closed   bool
}

// InMemoryBroker is a channel-based Broker for local mode and tests.
// Every subscriber of a topic receives every message published after it subscribed;
// groupID is ignored.
type InMemoryBroker struct {
	mu      sync.RWMutex
	subs    map[string][]*subscription
	offsets map[string]int64
	done    chan struct{}
	once    sync.Once
}

var _ Broker = (*InMemoryBroker)(nil)

// NewInMemoryBroker creates a new InMemoryBroker instance.
func NewInMemoryBroker() *InMemoryBroker {
	return &InMemoryBroker{
		subs:    make(map[string][]*subscription),
		offsets: make(map[string]int64),
		done:    make(chan struct{}),
	}
}

// Publish delivers value to every current subscriber of topic.
// It blocks while a subscriber's buffer is full, until ctx is done or the broker closes.
func (b *InMemoryBroker) Publish(ctx context.Context, topic string, key string, value []byte) error {
	b.mu.Lock()
	if b.isClosed() {
		b.mu.Unlock()
		return ErrClosed
	}
	offset := b.offsets[topic]
	b.offsets[topic] = offset + 1
	b.mu.Unlock()

	msg := Message{
		Topic:     topic,
		Key:       key,
		Value:     value,
		Offset:    offset,
		Timestamp: time.Now().UnixMilli(),
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs[topic] {
		if sub.closed {
			continue
		}
		select {
		case sub.ch <- msg:
		case <-sub.gone:
		case <-ctx.Done():
			return ctx.Err()
		case <-b.done:
			return ErrClosed
		}
	}
	return nil
}

// Subscribe returns a channel receiving messages published to topic from now on.
// The channel is closed when ctx is done or the broker is closed.
func (b *InMemoryBroker) Subscribe(ctx context.Context, topic string, groupID string) (<-chan Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.isClosed() {
		return nil, ErrClosed
	}

	sub := &subscription{
		ch:   make(chan Message, subscriberBuffer),
		gone: make(chan struct{}),
	}
	b.subs[topic] = append(b.subs[topic], sub)

	go func() {
		select {
		case <-ctx.Done():
			b.unsubscribe(topic, sub)
		case <-b.done:
		}
	}()

	return sub.ch, nil
}

func (b *InMemoryBroker) unsubscribe(topic string, target *subscription) {
	// Release publishers blocked on this subscriber before taking the write lock.
	target.goneOnce.Do(func() { close(target.gone) })

	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[topic]
	for i, sub := range subs {
		if sub == target {
			b.subs[topic] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if !target.closed {
		target.closed = true
		close(target.ch)
	}
}

// Close closes every subscriber channel. Further calls are no-ops.
func (b *InMemoryBroker) Close() error {
	b.once.Do(func() {
		close(b.done)

		b.mu.Lock()
		defer b.mu.Unlock()
		for _, subs := range b.subs {
			for _, sub := range subs {
				if !sub.closed {
					sub.closed = true
					close(sub.ch)
				}
			}
		}
		b.subs = make(map[string][]*subscription)
	})
	return nil
}

func (b *InMemoryBroker) isClosed() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}
