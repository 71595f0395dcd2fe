package pubsub

import "context"

type FactoryOptions struct {
	Environment  string
	Enabled      bool
	KafkaBrokers []string
}

// NewPublisherFactory picks the publisher implementation for the environment:
// a no-op when events are disabled, the in-memory broker locally and Kafka
// everywhere else.
func NewPublisherFactory(opts FactoryOptions) PublisherFactory {
	switch {
	case !opts.Enabled:
		return NoopPublisherFactory{}
	case opts.Environment == "local":
		return NewMemoryPublisherFactory(nil)
	default:
		return NewKafkaPublisherFactory(KafkaPublisherFactoryOptions{
			Brokers: opts.KafkaBrokers,
		})
	}
}

type NoopPublisherFactory struct{}

func (NoopPublisherFactory) New(Topic, Message) (Publisher, error) {
	return NoopPublisher{}, nil
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Key, Message) error {
	return nil
}
