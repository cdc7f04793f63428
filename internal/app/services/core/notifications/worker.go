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

// Worker drains the notification queue and persists each event so it shows
// up in the recipient's notification list.
type Worker struct {
	conn       *amqp.Connection
	queueName  string
	repository contracts.NotificationRepository
	Log        *zap.Logger
	stop       chan struct{}
}

func NewWorker(conn *amqp.Connection, queueName string, repository contracts.NotificationRepository, logger *zap.Logger) *Worker {
	return &Worker{
		conn:       conn,
		queueName:  queueName,
		repository: repository,
		Log:        logger,
		stop:       make(chan struct{}),
	}
}

// Start begins consuming in a goroutine and returns a stop function.
func (w *Worker) Start(ctx context.Context) (func(), error) {
	ch, err := w.conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(w.queueName, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	if err := ch.Qos(1, 0, false); err != nil {
		return nil, err
	}

	deliveries, err := ch.Consume(
		w.queueName, // queue
		"",          // consumer
		false,       // autoAck
		false,       // exclusive
		false,       // noLocal
		false,       // noWait
		nil,         // args
	)
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handleDelivery(ctx, delivery)
			}
		}
	}()

	return func() {
		close(w.stop)
		ch.Close()
	}, nil
}

func (w *Worker) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	var notification models.Notification
	if err := json.Unmarshal(delivery.Body, &notification); err != nil {
		w.Log.Error("notifications.Worker discarding malformed message",
			zap.String(constvars.LoggingQueueNameKey, w.queueName),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	_, err := w.repository.CreateNotification(ctx, &notification)
	if err != nil {
		w.Log.Error("notifications.Worker failed to persist notification",
			zap.String(constvars.LoggingQueueNameKey, w.queueName),
			zap.String(constvars.LoggingUserIDKey, notification.RecipientID),
			zap.Error(err),
		)
		delivery.Nack(false, true)
		return
	}

	delivery.Ack(false)
}
