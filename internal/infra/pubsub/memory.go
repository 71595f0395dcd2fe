package pubsub

import (
	"context"
	"log/slog"
	"sync"
)

var _ PublisherFactory = (*MemoryPublisherFactory)(nil)

// MemoryPublisherFactory creates publishers backed by an in-process broker.
type MemoryPublisherFactory struct {
	broker *MemoryBroker
}

func NewMemoryPublisherFactory(broker *MemoryBroker) *MemoryPublisherFactory {
	if broker == nil {
		broker = NewMemoryBroker()
	}
	return &MemoryPublisherFactory{broker: broker}
}

func (f *MemoryPublisherFactory) Broker() *MemoryBroker {
	return f.broker
}

func (f *MemoryPublisherFactory) New(topic Topic, _ Message) (Publisher, error) {
	return &MemoryPublisher{
		broker: f.broker,
		topic:  topic,
	}, nil
}

type MemoryPublisher struct {
	broker *MemoryBroker
	topic  Topic
}

func (p *MemoryPublisher) Publish(ctx context.Context, key Key, message Message) error {
	return p.broker.Publish(ctx, p.topic, key, message)
}

type MessageEvent struct {
	Key     Key
	Message Message
	Topic   Topic
}

// MemoryBroker delivers every message synchronously to the handlers of its
// topic and keeps the published history for inspection.
type MemoryBroker struct {
	mu       sync.RWMutex
	handlers map[Topic][]MessageHandler
	history  map[Topic][]MessageEvent
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		handlers: make(map[Topic][]MessageHandler),
		history:  make(map[Topic][]MessageEvent),
	}
}

func (b *MemoryBroker) Publish(ctx context.Context, topic Topic, key Key, message Message) error {
	b.mu.Lock()
	b.history[topic] = append(b.history[topic], MessageEvent{Key: key, Message: message, Topic: topic})
	handlers := append([]MessageHandler(nil), b.handlers[topic]...)
	b.mu.Unlock()

	for _, handler := range handlers {
		if err := handler(ctx, key, message); err != nil {
			slog.Error("memory broker handler failed",
				slog.String("topic", string(topic)),
				slog.String("key", string(key)),
				slog.String("error", err.Error()))
		}
	}

	return nil
}

func (b *MemoryBroker) Subscribe(topic Topic, handler MessageHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], handler)
}

func (b *MemoryBroker) Messages(topic Topic) []MessageEvent {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]MessageEvent(nil), b.history[topic]...)
}

func (b *MemoryBroker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = make(map[Topic][]MessageHandler)
	b.history = make(map[Topic][]MessageEvent)
}
