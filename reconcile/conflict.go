// Package reconcile classifies how an external candidate's identifiers relate
// to an existing CRM contact's stored methods. It produces transient
// per-identifier comparison records for a decision layer (import/link UI or
// API) to resolve; nothing here is persisted.
package reconcile

import (
	"errors"
	"strings"

	"personal-crm/reconcile/contact"
	"personal-crm/reconcile/identity"
	"personal-crm/reconcile/matching"
)

// ConflictType classifies how an external identifier's value and slot relate
// to what the CRM contact already has.
type ConflictType string

const (
	// ConflictTypeNone: nothing matched, the identifier is safe to add.
	ConflictTypeNone ConflictType = "none"
	// ConflictTypeIdentical: same value in the same slot.
	ConflictTypeIdentical ConflictType = "identical"
	// ConflictTypeSlot: same value filed under a different slot in the CRM.
	ConflictTypeSlot ConflictType = "type_conflict"
	// ConflictTypeValue: the suggested slot is occupied by a different value.
	ConflictTypeValue ConflictType = "value_conflict"
)

// DisplayState is the badge the decision layer renders for a comparison.
type DisplayState string

const (
	DisplayStateAdding    DisplayState = "adding"
	DisplayStateUnchanged DisplayState = "unchanged"
	DisplayStateConflict  DisplayState = "conflict"
	// DisplayStateNameMismatch is applied by the caller when a suggested match's
	// name similarity falls below its threshold. DetectConflicts never emits it.
	DisplayStateNameMismatch DisplayState = "name_mismatch"
)

// MethodComparison is the classified comparison of one external identifier
// against a CRM contact's methods. Constructed fresh per call, never mutated.
type MethodComparison struct {
	RawValue        string                     `json:"raw_value"`
	NormalizedValue string                     `json:"normalized_value"`
	Kind            identity.IdentifierKind    `json:"kind"`
	SuggestedSlot   identity.ContactMethodSlot `json:"suggested_slot"`
	Existing        *contact.ExistingMethod    `json:"existing,omitempty"`
	Conflict        ConflictType               `json:"conflict"`
	State           DisplayState               `json:"state"`
}

// ErrNilCandidate indicates a collaborator bug upstream: reconciliation was
// invoked without a candidate.
var ErrNilCandidate = errors.New("reconcile: candidate is nil")

// DetectConflicts compares every identifier on the candidate against the
// contact's existing methods and returns one classified comparison per usable
// identifier, emails first, preserving input order within each list.
//
// Per identifier: the value is normalized (unnormalizable values are skipped),
// a target slot is suggested (email slot inference for emails, the slot table
// for phones), then existing methods are searched first by normalized value
// across all slots, then by suggested slot. An existing method matched once is
// not reused for a later identifier; ties are resolved by existing-list order.
func DetectConflicts(candidate *contact.ExternalCandidate, existing []contact.ExistingMethod) ([]MethodComparison, error) {
	if candidate == nil {
		return nil, ErrNilCandidate
	}

	used := make([]bool, len(existing))
	comparisons := make([]MethodComparison, 0, len(candidate.Emails)+len(candidate.Phones))

	for _, email := range candidate.Emails {
		kind := identity.IdentifierKindEmail
		normalized := identity.Normalize(email.Value, kind)
		if normalized == "" {
			continue
		}
		slot := identity.InferEmailSlot(normalized, email.Type)
		comparisons = append(comparisons, compareAgainstExisting(email.Value, normalized, kind, slot, existing, used))
	}

	for _, phone := range candidate.Phones {
		kind := phoneKind(phone)
		normalized := identity.Normalize(phone.Value, kind)
		if normalized == "" {
			continue
		}
		slot := identity.SlotsForIdentifierKind(kind)[0]
		comparisons = append(comparisons, compareAgainstExisting(phone.Value, normalized, kind, slot, existing, used))
	}

	return comparisons, nil
}

// Report is the full reconciliation result for one candidate against one CRM
// contact: the per-identifier comparisons plus a single name similarity score
// between the two display names.
type Report struct {
	Comparisons    []MethodComparison `json:"comparisons"`
	NameSimilarity float64            `json:"name_similarity"`
}

// Reconcile runs conflict detection and scores the candidate's name against
// the CRM contact's name.
func Reconcile(candidate *contact.ExternalCandidate, contactName string, existing []contact.ExistingMethod) (*Report, error) {
	comparisons, err := DetectConflicts(candidate, existing)
	if err != nil {
		return nil, err
	}

	return &Report{
		Comparisons:    comparisons,
		NameSimilarity: matching.NameSimilarity(candidate.Name(), contactName),
	}, nil
}

// NameMismatch reports whether the candidate should be decorated with the
// name_mismatch state when shown against a suggested CRM contact match. It is
// a UI-level flag, separate from per-identifier classification.
func (r *Report) NameMismatch(threshold float64) bool {
	return r.NameSimilarity < threshold
}

func compareAgainstExisting(
	raw, normalized string,
	kind identity.IdentifierKind,
	slot identity.ContactMethodSlot,
	existing []contact.ExistingMethod,
	used []bool,
) MethodComparison {
	mc := MethodComparison{
		RawValue:        raw,
		NormalizedValue: normalized,
		Kind:            kind,
		SuggestedSlot:   slot,
	}

	// Value match wins over slot match, independent of where the value lives.
	for i := range existing {
		if used[i] {
			continue
		}
		method := &existing[i]
		if identity.Normalize(method.Value, identity.KindForSlot(method.Slot)) != normalized {
			continue
		}
		used[i] = true
		mc.Existing = method
		if method.Slot == slot {
			mc.Conflict = ConflictTypeIdentical
			mc.State = DisplayStateUnchanged
		} else {
			mc.Conflict = ConflictTypeSlot
			mc.State = DisplayStateConflict
		}
		return mc
	}

	for i := range existing {
		if used[i] {
			continue
		}
		method := &existing[i]
		if method.Slot != slot {
			continue
		}
		used[i] = true
		mc.Existing = method
		mc.Conflict = ConflictTypeValue
		mc.State = DisplayStateConflict
		return mc
	}

	mc.Conflict = ConflictTypeNone
	mc.State = DisplayStateAdding
	return mc
}

// phoneKind resolves a phone entry's identifier kind from its origin label.
func phoneKind(phone contact.PhoneEntry) identity.IdentifierKind {
	if strings.EqualFold(phone.Type, string(identity.IdentifierKindWhatsApp)) {
		return identity.IdentifierKindWhatsApp
	}
	return identity.IdentifierKindPhone
}
