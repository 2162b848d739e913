package stream

import (
	"sync"

	"github.com/google/uuid"
)

// subscriberBuffer is the number of messages a subscriber may lag behind before messages are
// dropped for it.
const subscriberBuffer = 16

// Message is a change notification fanned out to all subscribers.
type Message struct {
	Type string
	Data any
}

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[uuid.UUID]chan Message),
	}
}

// Broker fans out messages to every subscriber. Publishing never blocks, a subscriber whose
// buffer is full misses the message.
type Broker struct {
	subscribers map[uuid.UUID]chan Message
	lock        sync.Mutex
}

// Subscribe registers a new subscriber. The returned channel is closed on Unsubscribe.
func (b *Broker) Subscribe() (uuid.UUID, <-chan Message) {
	b.lock.Lock()
	defer b.lock.Unlock()

	id := uuid.New()
	channel := make(chan Message, subscriberBuffer)
	b.subscribers[id] = channel
	return id, channel
}

// Unsubscribe removes the subscriber. Unsubscribing twice is a no-op.
func (b *Broker) Unsubscribe(id uuid.UUID) {
	b.lock.Lock()
	defer b.lock.Unlock()

	channel, ok := b.subscribers[id]
	if !ok {
		return
	}
	close(channel)
	delete(b.subscribers, id)
}

// Publish sends message to all subscribers and returns the number of subscribers it was delivered to.
func (b *Broker) Publish(message Message) int {
	b.lock.Lock()
	defer b.lock.Unlock()

	delivered := 0
	for _, channel := range b.subscribers {
		select {
		case channel <- message:
			delivered++
		default:
		}
	}
	return delivered
}

// Subscribers returns the number of active subscribers.
func (b *Broker) Subscribers() int {
	b.lock.Lock()
	defer b.lock.Unlock()

	return len(b.subscribers)
}
