package domain

import (
	"time"

	"github.com/google/uuid"
)

// Cause is a fundraising campaign with a monetary goal.
type Cause struct {
	ID          uuid.UUID
	Title       string
	Description string
	Image       string
	Goal        Money
	Raised      Money
	Deadline    *time.Time
	Status      CauseStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CauseSummary is the projection of a cause embedded in donation listings.
type CauseSummary struct {
	ID    uuid.UUID
	Title string
}

// NextCauseStatus returns the status a cause must have after an administrative
// edit of its goal or raised amounts. Finished is terminal, and a soft-deleted
// cause is not revived by an edit.
func NextCauseStatus(current CauseStatus, raised, goal Money) CauseStatus {
	if current == CauseStatusFinished {
		return CauseStatusFinished
	}
	if current == CauseStatusActive && raised >= goal {
		return CauseStatusFinished
	}
	return current
}

// CauseDrift reports a cause whose raised total disagrees with its recorded donations.
type CauseDrift struct {
	CauseID       uuid.UUID
	Title         string
	Raised        Money
	DonationTotal Money
	DonationCount int
}

// Delta is the amount by which raised exceeds the donation total.
func (d CauseDrift) Delta() Money {
	return d.Raised - d.DonationTotal
}
