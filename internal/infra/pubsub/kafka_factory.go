package pubsub

import (
	"fmt"
	"time"
)

var _ PublisherFactory = (*KafkaPublisherFactory)(nil)

type KafkaPublisherFactoryOptions struct {
	Brokers []string
	// Zero values fall back to 10 attempts spaced 5 seconds apart.
	ConnectAttempts int
	RetryDelay      time.Duration
}

func NewKafkaPublisherFactory(opts KafkaPublisherFactoryOptions) *KafkaPublisherFactory {
	if opts.ConnectAttempts <= 0 {
		opts.ConnectAttempts = _defaultConnectAttempts
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = _defaultRetryDelay
	}
	return &KafkaPublisherFactory{opts: opts}
}

type KafkaPublisherFactory struct {
	opts KafkaPublisherFactoryOptions
}

func (f *KafkaPublisherFactory) New(topic Topic, prototype Message) (Publisher, error) {
	publisher, err := newKafkaPublisher(f.opts, topic, prototype)
	if err != nil {
		return nil, fmt.Errorf("creating publisher for %s: %w", topic, err)
	}

	return publisher, nil
}
