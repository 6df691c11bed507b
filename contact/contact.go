// Package contact defines the data model shared by the reconciliation and
// matching layers: external import candidates on one side, existing CRM
// contacts and their methods on the other. Persistence of these types is owned
// by the storage collaborator; this package only describes their shape.
package contact

import (
	"github.com/google/uuid"

	"personal-crm/reconcile/identity"
)

// EmailEntry represents an email address on an external candidate.
// Type carries the origin system's free-text label (e.g. "work", "home",
// "other") and is used as a hint when inferring the target slot.
type EmailEntry struct {
	Value   string `json:"value"`
	Type    string `json:"type,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

// PhoneEntry represents a phone number on an external candidate.
// A Type of "whatsapp" marks the number as a WhatsApp identifier.
type PhoneEntry struct {
	Value   string `json:"value"`
	Type    string `json:"type,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

// ExternalCandidate represents an external-system contact being considered for
// import or linking. Email and phone lists may contain duplicate or malformed
// raw values; reconciliation tolerates both.
type ExternalCandidate struct {
	DisplayName *string      `json:"display_name,omitempty"`
	FirstName   *string      `json:"first_name,omitempty"`
	LastName    *string      `json:"last_name,omitempty"`
	Emails      []EmailEntry `json:"emails"`
	Phones      []PhoneEntry `json:"phones"`
}

// Name returns the best available display name for the candidate: the display
// name when present, otherwise first+last, otherwise first alone.
func (c *ExternalCandidate) Name() string {
	if c.DisplayName != nil {
		return *c.DisplayName
	}
	if c.FirstName != nil && c.LastName != nil {
		return *c.FirstName + " " + *c.LastName
	}
	if c.FirstName != nil {
		return *c.FirstName
	}
	return ""
}

// ExistingMethod is a contact method already stored on a CRM contact.
// The ID is owned by the storage collaborator; reconciliation treats the
// method as read-only input.
type ExistingMethod struct {
	ID    uuid.UUID                  `json:"id"`
	Slot  identity.ContactMethodSlot `json:"slot"`
	Value string                     `json:"value"`
}

// Contact is the slice of a CRM contact the matching layer needs: identity,
// display name, and stored methods.
type Contact struct {
	ID       uuid.UUID        `json:"id"`
	FullName string           `json:"full_name"`
	Methods  []ExistingMethod `json:"methods,omitempty"`
}

// ContactMatch pairs a contact with the name similarity the corpus reported
// for it.
type ContactMatch struct {
	Contact    Contact
	Similarity float64
}
