package notifications

import (
	"context"
	"skinbloom-service/internal/app/contracts"
	"skinbloom-service/internal/app/models"
	"skinbloom-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// queueDispatcher publishes notifications onto a durable RabbitMQ queue.
// Dispatch is fire-and-forget: the primary state change has already
// committed, so publish failures are logged and swallowed.
type queueDispatcher struct {
	ch        *amqp.Channel
	queueName string
	Log       *zap.Logger
}

func NewQueueDispatcher(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.NotificationDispatcher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	return &queueDispatcher{
		ch:        ch,
		queueName: queueName,
		Log:       logger,
	}, nil
}

func (d *queueDispatcher) Dispatch(ctx context.Context, notification *models.Notification) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(notification)
	if err != nil {
		d.Log.Error("queueDispatcher.Dispatch failed to marshal notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	err = d.ch.PublishWithContext(ctx,
		"",          // exchange
		d.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		d.Log.Error("queueDispatcher.Dispatch failed to publish notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, d.queueName),
			zap.Error(err),
		)
		return
	}

	d.Log.Info("queueDispatcher.Dispatch published notification",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, d.queueName),
		zap.String(constvars.LoggingUserIDKey, notification.RecipientID),
	)
}
