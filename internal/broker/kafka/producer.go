package kafkabroker

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

const defaultBatchTimeout = 200 * time.Millisecond

type ProducerConfig struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
}

// Producer publishes log batches keyed by node, so one node's batches land on
// one partition in commit order. Writes are async: SendMessage only fails on
// a cancelled context or a closed writer.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(cfg ProducerConfig) *Producer {
	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = defaultBatchTimeout
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           batchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion: func(messages []kafka.Message, err error) {
			if err == nil {
				return
			}
			for _, m := range messages {
				log.WithFields(log.Fields{
					"topic": cfg.Topic,
					"key":   string(m.Key),
				}).Errorf("Kafka delivery failed: %v", err)
			}
		},
	}

	return &Producer{
		writer: w,
		topic:  cfg.Topic,
	}
}

func (p *Producer) SendMessage(ctx context.Context, key, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		log.Errorf("Failed to send message: %v", err)
		return err
	}

	log.WithFields(log.Fields{
		"topic": p.topic,
		"key":   string(key),
		"bytes": len(value),
	}).Debug("Message queued")
	return nil
}

// Close flushes queued messages before returning.
func (p *Producer) Close() error {
	log.Info("Closing Kafka producer...")
	return p.writer.Close()
}
