// Package service hosts the ranking collaborator that proposes which CRM
// contact an external candidate likely corresponds to. It is deliberately
// decoupled from per-identifier conflict classification: ranking answers
// "which contact", reconcile answers "how do the identifiers line up".
package service

import (
	"context"
	"fmt"

	"personal-crm/reconcile/contact"
	"personal-crm/reconcile/logger"
	"personal-crm/reconcile/matching"
)

// SuggestedMatch represents a suggested CRM contact match for an import candidate.
type SuggestedMatch struct {
	ContactID   string
	ContactName string
	Confidence  float64
}

// contactMatchFinder is the corpus interface the storage collaborator
// implements: contacts whose names resemble the query, with similarity scores.
type contactMatchFinder interface {
	FindSimilarContacts(ctx context.Context, name string, threshold float64, limit int32) ([]contact.ContactMatch, error)
}

// ImportMatchService encapsulates matching logic for import candidates.
type ImportMatchService struct {
	contacts contactMatchFinder
	cfg      matching.FuzzyConfig
}

// NewImportMatchService creates an import match service using the default
// import weighting.
func NewImportMatchService(contacts contactMatchFinder) *ImportMatchService {
	return &ImportMatchService{contacts: contacts, cfg: matching.ImportConfig}
}

// NewImportMatchServiceWithConfig creates an import match service with custom
// weights and thresholds. Invalid configurations are rejected.
func NewImportMatchServiceWithConfig(contacts contactMatchFinder, cfg matching.FuzzyConfig) (*ImportMatchService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fuzzy config: %w", err)
	}
	return &ImportMatchService{contacts: contacts, cfg: cfg}, nil
}

// FindBestMatch finds the best matching CRM contact for an external candidate.
// Returns a suggested match when the weighted score of name similarity and
// normalized method overlap reaches the confidence threshold, otherwise nil.
func (s *ImportMatchService) FindBestMatch(ctx context.Context, candidate *contact.ExternalCandidate) (*SuggestedMatch, error) {
	candidateName := candidate.Name()
	if candidateName == "" {
		return nil, nil
	}

	matches, err := s.contacts.FindSimilarContacts(ctx, candidateName, s.cfg.MinSimilarityThreshold, 5)
	if err != nil {
		logger.Warn().Err(err).Str("name", candidateName).Msg("failed to find similar contacts")
		return nil, err
	}

	candidateEmails := make(map[string]bool)
	for _, email := range candidate.Emails {
		candidateEmails[matching.NormalizeEmail(email.Value)] = true
	}
	candidatePhones := make(map[string]bool)
	for _, phone := range candidate.Phones {
		candidatePhones[matching.NormalizePhoneLoose(phone.Value)] = true
	}

	var bestMatch *SuggestedMatch
	var bestScore float64

	for _, match := range matches {
		methodMatches, totalMethods := countMethodOverlap(match.Contact.Methods, candidateEmails, candidatePhones)
		score := s.cfg.Score(match.Similarity, methodMatches, totalMethods)

		if score >= s.cfg.ConfidenceThreshold && score > bestScore {
			bestScore = score
			bestMatch = &SuggestedMatch{
				ContactID:   match.Contact.ID.String(),
				ContactName: match.Contact.FullName,
				Confidence:  score,
			}
		}
	}

	return bestMatch, nil
}

// countMethodOverlap counts how many of the contact's stored email and phone
// methods also appear on the candidate, after loose normalization.
func countMethodOverlap(
	methods []contact.ExistingMethod,
	candidateEmails map[string]bool,
	candidatePhones map[string]bool,
) (int, int) {
	var methodMatches int
	var totalMethods int

	for _, method := range methods {
		switch method.Slot {
		case "email_personal", "email_work":
			totalMethods++
			if candidateEmails[matching.NormalizeEmail(method.Value)] {
				methodMatches++
			}
		case "phone", "whatsapp":
			totalMethods++
			if candidatePhones[matching.NormalizePhoneLoose(method.Value)] {
				methodMatches++
			}
		}
	}

	return methodMatches, totalMethods
}
