package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"

	xlog "bitbucket.org/Amartha/go-x/log"

	"github.com/Shopify/sarama"
	"github.com/cenkalti/backoff/v4"
)

const logIdentifier = "[EVENT-PUBLISHER]"

type Publisher interface {
	Publish(ctx context.Context, message any, opts ...PublishOption) error
}

type publishOptions struct {
	key     string
	headers map[string]string
}

type PublishOption func(*publishOptions)

func WithKey(key string) PublishOption {
	return func(opts *publishOptions) {
		opts.key = key
	}
}

func WithHeaders(headers map[string]string) PublishOption {
	return func(opts *publishOptions) {
		opts.headers = headers
	}
}

type publisher struct {
	producer   sarama.SyncProducer
	topic      string
	maxElapsed time.Duration
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string) Publisher {
	return &publisher{
		producer:   producer,
		topic:      topic,
		maxElapsed: 10 * time.Second,
	}
}

func (d *publisher) Publish(ctx context.Context, message any, opts ...PublishOption) error {
	fOpts := &publishOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	producerMsg, err := d.prepareMessage(message, fOpts)
	if err != nil {
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = d.maxElapsed

	err = backoff.Retry(func() error {
		_, _, sendErr := d.producer.SendMessage(producerMsg)
		return sendErr
	}, backoff.WithContext(bo, ctx))
	if err != nil {
		xlog.Error(ctx, logIdentifier,
			xlog.String("status", "failed publish message"),
			xlog.String("topic", d.topic),
			xlog.Err(err),
		)
		return fmt.Errorf("failed to publish message to %s: %w", d.topic, err)
	}

	xlog.Info(ctx, logIdentifier,
		xlog.String("status", "success publish message"),
		xlog.Time("timestamp", common.Now()),
		xlog.String("topic", d.topic),
	)

	return nil
}

func (d *publisher) prepareMessage(message any, opts *publishOptions) (*sarama.ProducerMessage, error) {
	msgByte, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	producerMsg := &sarama.ProducerMessage{
		Topic: d.topic,
		Value: sarama.ByteEncoder(msgByte),
	}

	if opts.key != "" {
		producerMsg.Key = sarama.StringEncoder(opts.key)
	}

	if len(opts.headers) > 0 {
		var headers []sarama.RecordHeader
		for key, value := range opts.headers {
			headers = append(headers, sarama.RecordHeader{
				Key:   []byte(key),
				Value: []byte(value),
			})
		}

		producerMsg.Headers = headers
	}

	return producerMsg, nil
}
