package commands

import (
	"context"
	"encoding/json"
	"time"

	"physio-scheduler/internal/domain/booking"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/usecase/shared"
)

const (
	NotificationKindStatusChanged = "booking_status_changed"
	NotificationKindCreated       = "booking_created"

	TopicStatusChanged = "booking.status_changed"
	TopicCreated       = "booking.created"
)

type Recipient struct {
	Type    string `json:"type"`
	ID      int64  `json:"id,omitempty"`
	Address string `json:"address,omitempty"`
}

// BookingFact is the outbox payload published to the notification service.
type BookingFact struct {
	Event         string      `json:"event"`
	BookingID     string      `json:"booking_id"`
	Reference     string      `json:"reference"`
	ProviderID    int64       `json:"provider_id"`
	ClientID      int64       `json:"client_id"`
	Date          string      `json:"date"`
	Time          string      `json:"time"`
	From          string      `json:"from,omitempty"`
	To            string      `json:"to"`
	PaymentStatus string      `json:"payment_status"`
	At            time.Time   `json:"at"`
	Recipients    []Recipient `json:"recipients"`
}

type notifier struct {
	adminRecipient string
}

func (n notifier) fact(event string, b *booking.Booking, from, to booking.Status, at time.Time) BookingFact {
	recipients := []Recipient{
		{Type: "client", ID: b.ClientID()},
		{Type: "provider", ID: b.ProviderID()},
	}
	if n.adminRecipient != "" {
		recipients = append(recipients, Recipient{Type: "admin", Address: n.adminRecipient})
	}
	return BookingFact{
		Event:         event,
		BookingID:     b.ID().String(),
		Reference:     b.Reference().String(),
		ProviderID:    b.ProviderID(),
		ClientID:      b.ClientID(),
		Date:          b.Date().String(),
		Time:          b.Slot().String(),
		From:          string(from),
		To:            string(to),
		PaymentStatus: b.PaymentStatus().String(),
		At:            at,
		Recipients:    recipients,
	}
}

// statusChanged enqueues one fact for a real status change in the caller's transaction.
func (n notifier) statusChanged(ctx context.Context, tx shared.Tx, b *booking.Booking, sc booking.StatusChange) error {
	if !sc.Changed {
		return nil
	}
	return n.enqueue(ctx, tx, NotificationKindStatusChanged, TopicStatusChanged, n.fact(NotificationKindStatusChanged, b, sc.From, sc.To, sc.At))
}

func (n notifier) created(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	return n.enqueue(ctx, tx, NotificationKindCreated, TopicCreated, n.fact(NotificationKindCreated, b, "", b.Status(), b.CreatedAt()))
}

func (n notifier) enqueue(ctx context.Context, tx shared.Tx, kind, topic string, fact BookingFact) error {
	payload, err := json.Marshal(fact)
	if err != nil {
		return errs.Wrap(err, "marshal booking fact")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, topic, payload, fact.At)
}
