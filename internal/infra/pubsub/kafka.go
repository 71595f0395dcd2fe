package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lovoo/goka"
)

const (
	_defaultConnectAttempts = 10
	_defaultRetryDelay      = 5 * time.Second
)

type emitterKey struct {
	brokers string
	topic   Topic
}

type emitterEntry struct {
	once      sync.Once
	publisher *SimpleKafkaPublisher
	err       error
}

// Every injector asks for its own publisher; they share one emitter per
// (brokers, topic) for the lifetime of the process.
var (
	emitters   = make(map[emitterKey]*emitterEntry)
	emittersMu sync.Mutex
)

func newKafkaPublisher(opts KafkaPublisherFactoryOptions, topic Topic, prototype Message) (*SimpleKafkaPublisher, error) {
	key := emitterKey{brokers: strings.Join(opts.Brokers, ","), topic: topic}

	emittersMu.Lock()
	entry, ok := emitters[key]
	if !ok {
		entry = &emitterEntry{}
		emitters[key] = entry
	}
	emittersMu.Unlock()

	entry.once.Do(func() {
		entry.publisher, entry.err = connectEmitter(opts, topic, prototype)
	})
	return entry.publisher, entry.err
}

func connectEmitter(opts KafkaPublisherFactoryOptions, topic Topic, prototype Message) (*SimpleKafkaPublisher, error) {
	slog.Debug("creating kafka emitter",
		slog.String("topic", string(topic)),
		slog.String("brokers", strings.Join(opts.Brokers, ",")))

	var lastErr error
	for attempt := 1; attempt <= opts.ConnectAttempts; attempt++ {
		emitter, err := goka.NewEmitter(opts.Brokers, goka.Stream(topic), newJSONCodec(prototype))
		if err == nil {
			return &SimpleKafkaPublisher{topic: topic, emitter: emitter}, nil
		}
		lastErr = err
		slog.Warn("connecting to kafka brokers",
			slog.Int("attempt", attempt),
			slog.String("topic", string(topic)),
			slog.String("error", err.Error()))
		time.Sleep(opts.RetryDelay)
	}

	return nil, fmt.Errorf("kafka brokers unreachable after %d attempts: %w", opts.ConnectAttempts, lastErr)
}

var _ Publisher = (*SimpleKafkaPublisher)(nil)

type SimpleKafkaPublisher struct {
	topic   Topic
	emitter *goka.Emitter
}

func (p *SimpleKafkaPublisher) Publish(ctx context.Context, key Key, message Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.emitter.EmitSync(string(key), message); err != nil {
		return fmt.Errorf("emitting to %s: %w", p.topic, err)
	}

	return nil
}

func (p *SimpleKafkaPublisher) Close() error {
	return p.emitter.Finish()
}
