package crm

import (
	"time"

	"github.com/google/uuid"
)

// Contact is the external system's representation of a person or organization.
type Contact struct {
	ID        string   `json:"id,omitempty"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Company   string   `json:"company,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

type OpportunityStatus string

const (
	OpportunityOpen      OpportunityStatus = "open"
	OpportunityWon       OpportunityStatus = "won"
	OpportunityLost      OpportunityStatus = "lost"
	OpportunityAbandoned OpportunityStatus = "abandoned"
)

// Opportunity is the external system's sales prospect with a monetary value.
type Opportunity struct {
	ID        string            `json:"id,omitempty"`
	ContactID string            `json:"contact_id"`
	Title     string            `json:"title"`
	Value     float64           `json:"value"`
	Status    OpportunityStatus `json:"status"`
	Source    string            `json:"source,omitempty"`
}

type Urgency string

const (
	UrgencyStandard  Urgency = "standard"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

// UserProfile is the slice of an app user that maps into a contact.
type UserProfile struct {
	ID       uuid.UUID
	Email    string
	FullName string
	Phone    string
	Role     string
	OrgName  string
	OrgType  string
}

// OrganizationInfo is the slice of a client organization that maps into a
// company-level contact.
type OrganizationInfo struct {
	ID     uuid.UUID
	Name   string
	Email  string
	Phone  string
	Type   string
	Domain string
}

// RequestInfo is the slice of a charter request that maps into an opportunity.
type RequestInfo struct {
	ID             uuid.UUID
	TripType       string
	Urgency        Urgency
	Passengers     int
	Status         string
	EstimatedValue *float64
	Departure      *time.Time
}
