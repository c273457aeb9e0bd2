package event

// Type is the closed enumeration of client-side behavioral events. Adding a
// value here without a branch in Describe fails the exhaustiveness test.
type Type string

const (
	TypeAppOpened        Type = "app_opened"
	TypeScreenViewed     Type = "screen_viewed"
	TypeSearchPerformed  Type = "search_performed"
	TypeRequestSubmitted Type = "request_submitted"
	TypeQuoteViewed      Type = "quote_viewed"
	TypeQuoteAccepted    Type = "quote_accepted"
	TypeQuoteDeclined    Type = "quote_declined"
	TypeBookingCompleted Type = "booking_completed"
	TypePaymentInitiated Type = "payment_initiated"
	TypePaymentCompleted Type = "payment_completed"
	TypeFeatureUsed      Type = "feature_used"
	TypeSupportContacted Type = "support_contacted"
	TypeErrorOccurred    Type = "error_occurred"
)

// AllTypes lists every enumerated event type, in declaration order.
func AllTypes() []Type {
	return []Type{
		TypeAppOpened,
		TypeScreenViewed,
		TypeSearchPerformed,
		TypeRequestSubmitted,
		TypeQuoteViewed,
		TypeQuoteAccepted,
		TypeQuoteDeclined,
		TypeBookingCompleted,
		TypePaymentInitiated,
		TypePaymentCompleted,
		TypeFeatureUsed,
		TypeSupportContacted,
		TypeErrorOccurred,
	}
}
