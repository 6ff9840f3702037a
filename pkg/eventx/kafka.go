package eventx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
)

// KafkaPublisher writes events to a topic, keyed by uid so that the events of
// one user stay ordered on a partition.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func ProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1
	return config
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, ProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("eventx: create producer: %w", err)
	}
	return NewKafkaPublisherWithProducer(producer, topic), nil
}

func NewKafkaPublisherWithProducer(p sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: p, topic: topic}
}

func (p *KafkaPublisher) PublishUserDeleted(ctx context.Context, ev UserDeleted) error {
	data, err := Encode(ev)
	if err != nil {
		return fmt.Errorf("eventx: encode: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.UID),
		Value: sarama.ByteEncoder(data),
	})
	if err != nil {
		return fmt.Errorf("eventx: send: %w", err)
	}

	slog.DebugContext(ctx, "event published",
		"type", TypeUserDeleted,
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (p *KafkaPublisher) Close() error { return p.producer.Close() }

// ConsumeRetryDelay is the pause after a failed consumer group session
// before the next one starts.
const ConsumeRetryDelay = 5 * time.Second

// KafkaConsumer runs a consumer group and hands every decoded event to
// Handler. Messages are marked whatever the outcome.
type KafkaConsumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler Handler
	log     *slog.Logger

	RetryDelay time.Duration
}

func NewKafkaConsumer(brokers []string, groupID, topic string, h Handler, log *slog.Logger) (*KafkaConsumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("eventx: create consumer group: %w", err)
	}
	return NewKafkaConsumerWithGroup(group, topic, h, log), nil
}

func NewKafkaConsumerWithGroup(group sarama.ConsumerGroup, topic string, h Handler, log *slog.Logger) *KafkaConsumer {
	return &KafkaConsumer{group: group, topic: topic, handler: h, log: log, RetryDelay: ConsumeRetryDelay}
}

// Run blocks until ctx is cancelled.
func (c *KafkaConsumer) Run(ctx context.Context) error {
	gh := &groupHandler{handler: c.handler, log: c.log}
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, gh); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			c.log.Error("consumer group error", slog.Any("error", err), slog.Duration("retry_in", c.RetryDelay))

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.RetryDelay):
			}
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *KafkaConsumer) Close() error { return c.group.Close() }

type groupHandler struct {
	handler Handler
	log     *slog.Logger
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			ev, err := Decode(msg.Value)
			if err != nil {
				h.log.Warn("dropping undecodable event",
					"topic", msg.Topic,
					"offset", msg.Offset,
					slog.Any("error", err),
				)
			} else {
				h.handler(sess.Context(), ev)
			}
			sess.MarkMessage(msg, "")

		case <-sess.Context().Done():
			return nil
		}
	}
}
