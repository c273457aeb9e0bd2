package notification

// EventType is the closed enumeration of server-side domain events that fan
// out to recipients. Adding a value requires a template and a category
// mapping; the exhaustiveness tests fail otherwise.
type EventType string

const (
	EventRequestCreated   EventType = "request_created"
	EventRequestUpdated   EventType = "request_updated"
	EventQuoteReceived    EventType = "quote_received"
	EventQuoteAccepted    EventType = "quote_accepted"
	EventQuoteDeclined    EventType = "quote_declined"
	EventQuoteExpired     EventType = "quote_expired"
	EventBookingConfirmed EventType = "booking_confirmed"
	EventBookingCancelled EventType = "booking_cancelled"
	EventPaymentReceived  EventType = "payment_received"
	EventPaymentFailed    EventType = "payment_failed"
	EventMessageReceived  EventType = "message_received"
	EventSystemAlert      EventType = "system_alert"
)

func AllEventTypes() []EventType {
	return []EventType{
		EventRequestCreated,
		EventRequestUpdated,
		EventQuoteReceived,
		EventQuoteAccepted,
		EventQuoteDeclined,
		EventQuoteExpired,
		EventBookingConfirmed,
		EventBookingCancelled,
		EventPaymentReceived,
		EventPaymentFailed,
		EventMessageReceived,
		EventSystemAlert,
	}
}

// Category groups event types for per-user channel preferences.
type Category string

const (
	CategoryRequestUpdates Category = "request_updates"
	CategoryQuotes         Category = "quotes"
	CategoryBookings       Category = "bookings"
	CategoryPayments       Category = "payments"
	CategoryMessages       Category = "messages"
	CategorySystem         Category = "system"
)

func AllCategories() []Category {
	return []Category{
		CategoryRequestUpdates,
		CategoryQuotes,
		CategoryBookings,
		CategoryPayments,
		CategoryMessages,
		CategorySystem,
	}
}

// Channel is a delivery mechanism for a notification.
type Channel string

const (
	ChannelInApp Channel = "in_app"
	ChannelPush  Channel = "push"
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// CategoryFor maps an event type onto its preference category. Unmapped
// types fall back to the system category.
func CategoryFor(t EventType) Category {
	switch t {
	case EventRequestCreated, EventRequestUpdated:
		return CategoryRequestUpdates
	case EventQuoteReceived, EventQuoteAccepted, EventQuoteDeclined, EventQuoteExpired:
		return CategoryQuotes
	case EventBookingConfirmed, EventBookingCancelled:
		return CategoryBookings
	case EventPaymentReceived, EventPaymentFailed:
		return CategoryPayments
	case EventMessageReceived:
		return CategoryMessages
	case EventSystemAlert:
		return CategorySystem
	default:
		return CategorySystem
	}
}

// AllowSMS reports whether the event type is urgent enough for the SMS
// channel. SMS is opt-in and reserved for this small set.
func AllowSMS(t EventType) bool {
	switch t {
	case EventPaymentFailed, EventBookingConfirmed, EventBookingCancelled:
		return true
	default:
		return false
	}
}

// Preference holds the per-(user, category) channel flags. A missing row
// implies DefaultPreference.
type Preference struct {
	Category Category
	Push     bool
	Email    bool
	SMS      bool
}

// DefaultPreference is applied when no row exists: push and email default on,
// SMS defaults off.
func DefaultPreference(c Category) Preference {
	return Preference{Category: c, Push: true, Email: true, SMS: false}
}
