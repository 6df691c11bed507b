// Package identity models external identifier kinds and CRM contact method
// slots, and provides normalization, kind detection, and slot mapping for
// cross-system contact reconciliation.
package identity

import (
	"regexp"
	"strings"

	"personal-crm/reconcile/matching"
)

// IdentifierKind represents the kind of an external identifier.
type IdentifierKind string

const (
	IdentifierKindEmail      IdentifierKind = "email"
	IdentifierKindPhone      IdentifierKind = "phone"
	IdentifierKindChatHandle IdentifierKind = "chat_handle"
	IdentifierKindWhatsApp   IdentifierKind = "whatsapp"
	IdentifierKindUnknown    IdentifierKind = "unknown"
)

// ContactMethodSlot represents a named position on a CRM contact that holds at
// most one method value. Slot uniqueness is enforced by the storage layer and
// assumed true on input.
type ContactMethodSlot string

const (
	ContactMethodSlotEmailPersonal ContactMethodSlot = "email_personal"
	ContactMethodSlotEmailWork     ContactMethodSlot = "email_work"
	ContactMethodSlotPhone         ContactMethodSlot = "phone"
	ContactMethodSlotChatHandle    ContactMethodSlot = "chat_handle"
	ContactMethodSlotWhatsApp      ContactMethodSlot = "whatsapp"
)

// nonDigitRegex matches any non-digit character
var nonDigitRegex = regexp.MustCompile(`\D`)

// Normalize returns the normalized form of an identifier based on its kind.
// Normalization rules:
// - Email: lowercase, trim whitespace
// - Phone / WhatsApp: strip all non-digits, normalize to E.164 format
// - Chat handle: remove @ prefix, lowercase
// Normalization is idempotent and never fails; unrecognized or empty input
// yields an empty string, which callers treat as "no identifier to compare".
func Normalize(raw string, kind IdentifierKind) string {
	switch kind {
	case IdentifierKindEmail:
		return matching.NormalizeEmail(raw)
	case IdentifierKindPhone, IdentifierKindWhatsApp:
		return matching.NormalizePhoneE164(raw)
	case IdentifierKindChatHandle:
		return matching.NormalizeHandle(raw)
	default:
		return strings.TrimSpace(raw)
	}
}

// DetectIdentifierKind attempts to detect the kind of an untagged identifier
// based on its format. Ambiguous short strings are assumed to be handles or
// emails rather than phones.
func DetectIdentifierKind(identifier string) IdentifierKind {
	identifier = strings.TrimSpace(identifier)

	if strings.Contains(identifier, "@") {
		return IdentifierKindEmail
	}

	if strings.HasPrefix(identifier, "+") {
		return IdentifierKindPhone
	}

	// Mostly digits and long enough to dial
	digits := nonDigitRegex.ReplaceAllString(identifier, "")
	if len(digits) >= 7 && float64(len(digits))/float64(len(identifier)) > 0.5 {
		return IdentifierKindPhone
	}

	return IdentifierKindEmail
}

// SlotsForIdentifierKind maps an identifier kind to the contact method slots it
// is permitted to occupy, in preference order. For email identifiers both
// email_personal and email_work are candidates; choosing between them is
// InferEmailSlot's job.
func SlotsForIdentifierKind(kind IdentifierKind) []ContactMethodSlot {
	switch kind {
	case IdentifierKindEmail:
		return []ContactMethodSlot{ContactMethodSlotEmailPersonal, ContactMethodSlotEmailWork}
	case IdentifierKindPhone:
		return []ContactMethodSlot{ContactMethodSlotPhone}
	case IdentifierKindChatHandle:
		return []ContactMethodSlot{ContactMethodSlotChatHandle}
	case IdentifierKindWhatsApp:
		return []ContactMethodSlot{ContactMethodSlotWhatsApp, ContactMethodSlotPhone}
	default:
		return nil
	}
}

// KindForSlot returns the identifier kind whose normalization rules apply to
// values stored in a slot. WhatsApp methods hold phone numbers.
func KindForSlot(slot ContactMethodSlot) IdentifierKind {
	switch slot {
	case ContactMethodSlotEmailPersonal, ContactMethodSlotEmailWork:
		return IdentifierKindEmail
	case ContactMethodSlotPhone, ContactMethodSlotWhatsApp:
		return IdentifierKindPhone
	case ContactMethodSlotChatHandle:
		return IdentifierKindChatHandle
	default:
		return IdentifierKindUnknown
	}
}
