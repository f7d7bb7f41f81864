package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/getnestegg/nestegg/common"
	"github.com/getnestegg/nestegg/db/models"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ziflex/lecho/v3"
)

// bufPool is a classic buffer pool pattern that allows more clever reuse of heap memory.
// Instead of allocating new memory everytime we need to encode a snapshot we
// reuse buffers from this buffer pool.
var bufPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

const (
	contentTypeJSON = "application/json"
)

type Client interface {
	// PublishSnapshot announces a reconciled net worth snapshot to
	// interested consumers (mail digests, analytics, ...).
	PublishSnapshot(ctx context.Context, snapshot *models.NetWorthSnapshot) error
	// Close will close all connections to rabbitmq
	Close() error
}

type DefaultClient struct {
	amqpClient AMQPClient

	logger *lecho.Logger

	snapshotExchange string
}

type ClientOption = func(client *DefaultClient)

func WithSnapshotExchange(exchange string) ClientOption {
	return func(client *DefaultClient) {
		client.snapshotExchange = exchange
	}
}

func WithLogger(logger *lecho.Logger) ClientOption {
	return func(client *DefaultClient) {
		client.logger = logger
	}
}

func NewClient(amqpClient AMQPClient, options ...ClientOption) (Client, error) {
	client := &DefaultClient{
		amqpClient: amqpClient,

		logger: lecho.New(
			os.Stdout,
			lecho.WithLevel(log.DEBUG),
			lecho.WithTimestamp(),
		),

		snapshotExchange: "nestegg_snapshot",
	}

	for _, opt := range options {
		opt(client)
	}

	err := client.amqpClient.ExchangeDeclare(
		client.snapshotExchange,
		// topic exchange so consumers can bind per routing key
		"topic",
		// Durable and Non-Auto-Deleted exchanges will survive server restarts and remain
		// declared when there are no remaining bindings.
		true,
		false,
		// Non-Internal exchange's accept direct publishing
		false,
		// Nowait: We set this to false as we want to wait for a server response
		// to check whether the exchange was created succesfully
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func (client *DefaultClient) Close() error { return client.amqpClient.Close() }

func (client *DefaultClient) PublishSnapshot(ctx context.Context, snapshot *models.NetWorthSnapshot) error {
	payload := bufPool.Get().(*bytes.Buffer)
	payload.Reset()
	defer bufPool.Put(payload)

	if err := json.NewEncoder(payload).Encode(snapshot); err != nil {
		return err
	}

	return client.amqpClient.PublishWithContext(ctx,
		client.snapshotExchange,
		common.SnapshotRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: contentTypeJSON,
			Body:        payload.Bytes(),
		},
	)
}
