package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	RoutingKeyBookingConfirmed = "booking.confirmed"
	RoutingKeyInvoiceRequested = "booking.invoice_requested"
)

// channel is the subset of *amqp.Channel the notifier uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPNotifier publishes booking notices to a topic exchange. Mail and chat
// delivery live in downstream consumers.
type AMQPNotifier struct {
	conn         *amqp.Connection
	ch           channel
	exchange     string
	adminContact string
}

var _ interfaces.INotifier = (*AMQPNotifier)(nil)

func NewAMQPNotifier(url, exchange, adminContact string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	log.Printf("[notify][amqp] publisher ready exchange=%s", exchange)
	return &AMQPNotifier{conn: conn, ch: ch, exchange: exchange, adminContact: adminContact}, nil
}

type noticeEnvelope struct {
	Event        string                 `json:"event"`
	AdminContact string                 `json:"admin_contact,omitempty"`
	Booking      entities.BookingNotice `json:"booking"`
}

func (n *AMQPNotifier) BookingConfirmed(ctx context.Context, notice entities.BookingNotice) error {
	return n.publish(ctx, RoutingKeyBookingConfirmed, notice)
}

func (n *AMQPNotifier) InvoiceRequested(ctx context.Context, notice entities.BookingNotice) error {
	return n.publish(ctx, RoutingKeyInvoiceRequested, notice)
}

func (n *AMQPNotifier) publish(ctx context.Context, key string, notice entities.BookingNotice) error {
	b, err := json.Marshal(noticeEnvelope{Event: key, AdminContact: n.adminContact, Booking: notice})
	if err != nil {
		return err
	}
	return n.ch.PublishWithContext(ctx, n.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    notice.ReservationReference,
		Body:         b,
	})
}

func (n *AMQPNotifier) Close() error {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
