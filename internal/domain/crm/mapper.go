package crm

import (
	"fmt"
	"strings"
)

// Base monetary estimate for a charter request with no supplied value.
const baseOpportunityValue = 25000

const placeholderEmailDomain = "placeholder.charter.local"

// UserToContact maps an app user onto the external contact shape. The full
// name splits on the first space; the remainder is the last name.
func UserToContact(u UserProfile) Contact {
	first, last := splitName(u.FullName)

	tags := []string{"charter_app_user"}
	if u.Role != "" {
		tags = append(tags, "role_"+u.Role)
	}
	if u.OrgType != "" {
		tags = append(tags, "org_"+u.OrgType)
	}

	return Contact{
		Email:     u.Email,
		FirstName: first,
		LastName:  last,
		Phone:     u.Phone,
		Company:   u.OrgName,
		Tags:      tags,
	}
}

// OrganizationToContact maps a client organization onto a contact. When the
// organization has no email a deterministic placeholder is synthesized so the
// same org always resolves to the same contact.
func OrganizationToContact(org OrganizationInfo) Contact {
	email := org.Email
	if email == "" {
		domain := org.Domain
		if domain == "" {
			domain = placeholderEmailDomain
		}
		email = fmt.Sprintf("org-%s@%s", org.ID, domain)
	}

	tags := []string{"charter_app_user"}
	if org.Type != "" {
		tags = append(tags, "org_"+org.Type)
	}

	return Contact{
		Email:   email,
		Company: org.Name,
		Phone:   org.Phone,
		Tags:    tags,
	}
}

// RequestToOpportunity maps a charter request onto an opportunity against the
// given contact, computing the monetary estimate when none is supplied.
func RequestToOpportunity(req RequestInfo, contactID string) Opportunity {
	title := fmt.Sprintf("%s - %d passengers", titleCase(req.TripType), req.Passengers)
	if req.Urgency == UrgencyEmergency {
		title = "[URGENT] " + title
	}

	value := EstimateValue(req.Urgency, req.Passengers)
	if req.EstimatedValue != nil {
		value = *req.EstimatedValue
	}

	return Opportunity{
		ContactID: contactID,
		Title:     title,
		Value:     value,
		Status:    OpportunityStatusForRequest(req.Status),
		Source:    "charter_app",
	}
}

// EstimateValue computes base_value * urgency_multiplier * max(1, passengers/10).
func EstimateValue(urgency Urgency, passengers int) float64 {
	multiplier := 1.0
	switch urgency {
	case UrgencyUrgent:
		multiplier = 1.25
	case UrgencyEmergency:
		multiplier = 1.5
	}

	scale := float64(passengers) / 10
	if scale < 1 {
		scale = 1
	}

	return baseOpportunityValue * multiplier * scale
}

// OpportunityStatusForRequest maps a request status onto the opportunity
// lifecycle; anything unrecognized stays open.
func OpportunityStatusForRequest(status string) OpportunityStatus {
	switch status {
	case "booked", "completed":
		return OpportunityWon
	case "cancelled":
		return OpportunityLost
	case "expired":
		return OpportunityAbandoned
	default:
		return OpportunityOpen
	}
}

func splitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	parts := strings.SplitN(full, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}
