// Package notification sends transactional messages triggered by events in
// the marketplace, currently the booking confirmation email.
package notification

import (
	"context"
	"errors"
	"fmt"
)

// Booking confirmation content.
const (
	BookingConfirmationSubject = "Booking Successful !"
	bookingConfirmationBody    = "Booking ID : %s"
)

// ErrNoRecipient is returned by senders when a message has no recipient.
var ErrNoRecipient = errors.New("message has no recipient")

// Message is a plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers messages to an outside mail system.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// BookingConfirmation builds the message sent to a guest once their booking
// has been stored.
func BookingConfirmation(guestEmail, bookingID string) Message {
	return Message{
		To:      guestEmail,
		Subject: BookingConfirmationSubject,
		Body:    fmt.Sprintf(bookingConfirmationBody, bookingID),
	}
}
