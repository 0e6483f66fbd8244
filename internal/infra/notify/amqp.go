package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"barberbook/internal/pkg/config"
)

// AMQPNotifier publishes events to a durable RabbitMQ queue on the
// default exchange. A publish failure is logged and dropped so the
// booking mutation that triggered it stands.
type AMQPNotifier struct {
	conn   *amqp.Connection
	queue  string
	logger *slog.Logger
}

func NewAMQPNotifier(cfg config.AMQPConfig, logger *slog.Logger) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, err
	}

	// Declare up front so the queue survives broker restarts even if
	// no consumer has run yet.
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}

	return &AMQPNotifier{conn: conn, queue: cfg.Queue, logger: logger}, nil
}

const publishTimeout = 5 * time.Second

// Publish hands the event to the broker off the request goroutine.
// The triggering mutation has already committed; the caller must not
// wait on a slow broker, let alone fail because of one.
func (n *AMQPNotifier) Publish(ctx context.Context, event Event) {
	body, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("notify: marshal failed", slog.String("error", err.Error()))
		return
	}
	go n.deliver(ctx, event, body)
}

// deliveryContext detaches the broker round trip from the request's
// cancellation while still bounding it.
func deliveryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
}

func (n *AMQPNotifier) deliver(ctx context.Context, event Event, body []byte) {
	ctx, cancel := deliveryContext(ctx)
	defer cancel()

	ch, err := n.conn.Channel()
	if err != nil {
		n.logger.Error("notify: channel open failed", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	err = ch.PublishWithContext(ctx,
		"",      // default exchange
		n.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		n.logger.Error("notify: publish failed",
			slog.String("kind", string(event.Kind)),
			slog.String("booking_id", event.BookingID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	n.logger.Info("notify: event published",
		slog.String("kind", string(event.Kind)),
		slog.String("booking_id", event.BookingID.String()),
	)
}

func (n *AMQPNotifier) Close() error {
	return n.conn.Close()
}
