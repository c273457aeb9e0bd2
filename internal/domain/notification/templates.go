package notification

import (
	"fmt"
	"strings"
)

// Template is the title/body pair rendered for an event. Placeholders of the
// form {key} are substituted from the dispatch payload.
type Template struct {
	Title string
	Body  string
}

var templates = map[EventType]Template{
	EventRequestCreated: {
		Title: "New charter request",
		Body:  "A new {trip_type} request for {passengers} passengers was submitted.",
	},
	EventRequestUpdated: {
		Title: "Request updated",
		Body:  "Your charter request was updated.",
	},
	EventQuoteReceived: {
		Title: "Quote received",
		Body:  "A quote of {amount} is ready for your charter request.",
	},
	EventQuoteAccepted: {
		Title: "Quote accepted",
		Body:  "Your quote was accepted by the client.",
	},
	EventQuoteDeclined: {
		Title: "Quote declined",
		Body:  "Your quote was declined by the client.",
	},
	EventQuoteExpired: {
		Title: "Quote expired",
		Body:  "A quote for your charter request has expired.",
	},
	EventBookingConfirmed: {
		Title: "Booking confirmed",
		Body:  "Your booking {booking_ref} is confirmed.",
	},
	EventBookingCancelled: {
		Title: "Booking cancelled",
		Body:  "Booking {booking_ref} was cancelled.",
	},
	EventPaymentReceived: {
		Title: "Payment received",
		Body:  "We received your payment of {amount}.",
	},
	EventPaymentFailed: {
		Title: "Payment failed",
		Body:  "A payment of {amount} could not be processed. Please update your payment method.",
	},
	EventMessageReceived: {
		Title: "New message",
		Body:  "{sender_name} sent you a message.",
	},
	EventSystemAlert: {
		Title: "System notice",
		Body:  "{message}",
	},
}

// TemplateFor returns the template for the event type; ok is false for
// unknown types, which the dispatcher rejects as a caller error.
func TemplateFor(t EventType) (Template, bool) {
	tpl, ok := templates[t]
	return tpl, ok
}

// Render substitutes {key} placeholders from the payload. Placeholders with
// no payload value are left intact rather than erased, so a missing field is
// visible instead of silently blank.
func (t Template) Render(payload map[string]any) (title, body string) {
	return substitute(t.Title, payload), substitute(t.Body, payload)
}

func substitute(s string, payload map[string]any) string {
	for k, v := range payload {
		s = strings.ReplaceAll(s, "{"+k+"}", fmt.Sprintf("%v", v))
	}
	return s
}
