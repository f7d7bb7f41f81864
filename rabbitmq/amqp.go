package rabbitmq

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ziflex/lecho/v3"
)

const (
	defaultHeartbeat = 10 * time.Second
	defaultLocale    = "en_US"
)

type AMQPClient interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Close() error
}

type defaultAMQPClient struct {
	conn *amqp.Connection
	uri  string

	publishChannel *amqp.Channel

	notifyCloseChan chan *amqp.Error

	reconFlag atomic.Bool

	// connectFn defaults to connect, swapped out in tests
	connectFn func() error

	logger *lecho.Logger
}

func DialAMQP(uri string) (AMQPClient, error) {
	client := &defaultAMQPClient{
		uri: uri,
		logger: lecho.New(
			os.Stdout,
			lecho.WithLevel(log.DEBUG),
			lecho.WithTimestamp(),
		),
	}
	client.connectFn = client.connect
	err := client.connect()
	if err != nil {
		return client, err
	}

	go client.reconnectionLoop()

	return client, err
}

func (c *defaultAMQPClient) connect() error {
	conn, err := amqp.DialConfig(c.uri, amqp.Config{
		Heartbeat: defaultHeartbeat,
		Locale:    defaultLocale,
		Dial:      amqp.DefaultDial(time.Second * 3),
	})
	if err != nil {
		return err
	}

	publishChannel, err := conn.Channel()
	if err != nil {
		return err
	}

	notifyCloseChan := make(chan *amqp.Error)
	conn.NotifyClose(notifyCloseChan)

	c.conn = conn
	c.publishChannel = publishChannel
	c.notifyCloseChan = notifyCloseChan

	return nil
}

// connect replaces notifyCloseChan on every reconnect, so the loop
// must re-read the field each iteration instead of ranging over it.
func (c *defaultAMQPClient) reconnectionLoop() {
	for {
		select {
		case amqpError := <-c.notifyCloseChan:
			c.logger.Error(amqpError)

			exponentialBackoff := backoff.NewExponentialBackOff()
			exponentialBackoff.MaxInterval = time.Second * 10
			exponentialBackoff.MaxElapsedTime = time.Minute

			c.reconFlag.Store(true)

			c.logger.Info("amqp: trying to reconnect...")
			err := backoff.Retry(c.connectFn, exponentialBackoff)
			if err != nil {
				c.logger.Error("amqp: could not reconnect, giving up")
				return
			}

			c.reconFlag.Store(false)
			c.logger.Info("amqp: succesfully reconnected")
		}
	}
}

func (c *defaultAMQPClient) Close() error {
	return c.conn.Close()
}

func (c *defaultAMQPClient) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	// For now we simply create a short lived channel. If this proves to be a bad approach we can either create a management channel
	// at client create time, or use the publishing channel that already exists.
	ch, err := c.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	return ch.ExchangeDeclare(name, kind, durable, autoDelete, internal, noWait, args)
}

func (c *defaultAMQPClient) PublishWithContext(ctx context.Context, exchange string, key string, mandatory bool, immediate bool, msg amqp.Publishing) error {
	if c.reconFlag.Load() {
		exponentialBackoff := backoff.NewExponentialBackOff()

		exponentialBackoff.MaxInterval = time.Second * 10
		exponentialBackoff.MaxElapsedTime = time.Minute

		err := backoff.Retry(func() error {
			if c.reconFlag.Load() {
				return errors.New("amqp: trying to publish during reconnect")
			}

			return nil
		}, exponentialBackoff)

		if err != nil {
			return err
		}
	}

	return c.publishChannel.PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
}
