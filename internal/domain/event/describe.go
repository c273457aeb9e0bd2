package event

import (
	"fmt"
	"sort"
	"strings"
)

// Describe renders a tracked event as the one-line activity text written to
// the external contact, plus an optional metadata block. It is total: every
// enumerated type has a branch and unknown tags degrade to a readable form.
func Describe(e TrackedEvent) string {
	var b strings.Builder
	b.WriteString(headline(e))

	if block := metadataBlock(e); block != "" {
		b.WriteString("\n")
		b.WriteString(block)
	}

	return b.String()
}

func headline(e TrackedEvent) string {
	switch e.Type {
	case TypeAppOpened:
		return "Opened the app"
	case TypeScreenViewed:
		if e.Metadata.Screen != "" {
			return fmt.Sprintf("Viewed the %s screen", e.Metadata.Screen)
		}
		return "Viewed a screen"
	case TypeSearchPerformed:
		if q, ok := e.Properties["query"].(string); ok && q != "" {
			return fmt.Sprintf("Searched for %q", q)
		}
		return "Performed a search"
	case TypeRequestSubmitted:
		return "Submitted a charter request"
	case TypeQuoteViewed:
		return "Viewed a quote"
	case TypeQuoteAccepted:
		return "Accepted a quote"
	case TypeQuoteDeclined:
		return "Declined a quote"
	case TypeBookingCompleted:
		return "Completed a booking"
	case TypePaymentInitiated:
		return "Started a payment"
	case TypePaymentCompleted:
		return "Completed a payment"
	case TypeFeatureUsed:
		if f, ok := e.Properties["feature"].(string); ok && f != "" {
			return fmt.Sprintf("Used feature: %s", f)
		}
		return "Used a feature"
	case TypeSupportContacted:
		return "Contacted support"
	case TypeErrorOccurred:
		if e.Metadata.ErrorMessage != "" {
			return fmt.Sprintf("Hit an error: %s", e.Metadata.ErrorMessage)
		}
		return "Hit an error"
	default:
		return strings.ReplaceAll(string(e.Type), "_", " ")
	}
}

func metadataBlock(e TrackedEvent) string {
	var lines []string

	if e.Metadata.Screen != "" {
		lines = append(lines, "screen: "+e.Metadata.Screen)
	}
	if e.Metadata.Component != "" {
		lines = append(lines, "component: "+e.Metadata.Component)
	}
	if e.Metadata.Action != "" {
		lines = append(lines, "action: "+e.Metadata.Action)
	}
	if e.Metadata.ErrorCode != "" {
		lines = append(lines, "error code: "+e.Metadata.ErrorCode)
	}

	// Arbitrary properties, sorted for stable output.
	keys := make([]string, 0, len(e.Properties))
	for k := range e.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, e.Properties[k]))
	}

	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n")
}
