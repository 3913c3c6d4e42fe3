package rabbitmq

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

const POSTS_EXCHANGE = "garage.posts.events"

type MQConn struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.Mutex
}

func New(connString string) (*MQConn, error) {
	conn, err := amqp.Dial(connString)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(POSTS_EXCHANGE, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &MQConn{
		conn:    conn,
		channel: channel,
	}, nil
}

func (mq *MQConn) Publish(ctx context.Context, routingKey string, body []byte) error {
	mq.mu.Lock()
	defer mq.mu.Unlock()

	if mq.channel == nil {
		return fmt.Errorf("publisher closed")
	}

	return mq.channel.PublishWithContext(ctx, POSTS_EXCHANGE, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
}

func (mq *MQConn) Close() error {
	mq.mu.Lock()
	defer mq.mu.Unlock()

	var err error
	if mq.channel != nil {
		err = mq.channel.Close()
		mq.channel = nil
	}
	if mq.conn != nil {
		if closeErr := mq.conn.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		mq.conn = nil
	}

	return err
}
