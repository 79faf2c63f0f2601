package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CauseReferenceSeparator separates the free text of a payment description from
// the id of the cause it pays for: "<text> #<causeId>".
const CauseReferenceSeparator = "#"

// Donation is an immutable record of one settled payment.
type Donation struct {
	ID        uuid.UUID
	CaptureID string
	PaymentID string
	AccountID uuid.UUID
	CauseID   uuid.UUID
	Amount    Money
	Currency  string
	DonatedAt time.Time
}

// DonationDetail is a donation together with summaries of its donor and cause.
type DonationDetail struct {
	Donation
	Account AccountSummary
	Cause   CauseSummary
}

// CaptureConfirmation is the payment provider's report of a successful capture.
type CaptureConfirmation struct {
	// CaptureID is the provider's id for the captured funds and the idempotency
	// key of settlement.
	CaptureID   string
	PaymentID   string
	Amount      Money
	Currency    string
	Description string
	// CauseID is the structured correlation, when the provider echoed it back.
	CauseID uuid.UUID
}

// CauseDescription builds the payment description that carries the cause reference.
func CauseDescription(text string, causeID uuid.UUID) string {
	return fmt.Sprintf("%s %s%s", strings.TrimSpace(text), CauseReferenceSeparator, causeID)
}

// ParseCauseReference extracts the cause id from a "<text> #<causeId>" description.
func ParseCauseReference(description string) (uuid.UUID, error) {
	i := strings.LastIndex(description, CauseReferenceSeparator)
	if i < 0 {
		return uuid.Nil, fmt.Errorf("description %q has no cause reference: %w", description, ErrMalformedCorrelation)
	}

	raw := strings.TrimSpace(description[i+len(CauseReferenceSeparator):])
	if raw == "" {
		return uuid.Nil, fmt.Errorf("description %q has an empty cause reference: %w", description, ErrMalformedCorrelation)
	}

	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("cause reference %q is not a valid id: %w", raw, ErrMalformedCorrelation)
	}

	return id, nil
}

// ResolveCauseID returns the structured cause id when present and falls back to
// parsing the description.
func (c CaptureConfirmation) ResolveCauseID() (uuid.UUID, error) {
	if c.CauseID != uuid.Nil {
		return c.CauseID, nil
	}
	return ParseCauseReference(c.Description)
}

// Validate checks the fields settlement depends on.
func (c CaptureConfirmation) Validate() error {
	if strings.TrimSpace(c.CaptureID) == "" {
		return fmt.Errorf("capture id is empty: %w", ErrMalformedCorrelation)
	}
	if !c.Amount.IsPositive() {
		return fmt.Errorf("capture amount %s is not positive: %w", c.Amount, ErrMalformedCorrelation)
	}
	return nil
}
