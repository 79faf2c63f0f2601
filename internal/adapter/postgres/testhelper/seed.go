package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/givefund-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount creates an active account with the given role.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.Account {
	t.Helper()
	return SeedAccountWithStatus(t, pool, role, domain.AccountStatusActive)
}

// SeedAccountWithStatus creates an account with the given role and status.
// The password hash is a placeholder and does not verify against any password.
func SeedAccountWithStatus(t *testing.T, pool *pgxpool.Pool, role domain.Role, status domain.AccountStatus) domain.Account {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	acc := domain.Account{
		ID:           uuid.New(),
		Email:        "donor-" + suffix + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplace",
		Fullname:     "Donor " + suffix,
		Phone:        "555-" + suffix,
		Address:      suffix + " Main St",
		Role:         role,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO accounts (id, email, password_hash, fullname, phone, address, role, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		acc.ID, acc.Email, acc.PasswordHash, acc.Fullname, acc.Phone, acc.Address,
		string(acc.Role), string(acc.Status), acc.CreatedAt, acc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert: %v", err)
	}

	return acc
}

// SeedCause creates a cause with the given goal, raised amount and status.
func SeedCause(t *testing.T, pool *pgxpool.Pool, goal, raised domain.Money, status domain.CauseStatus) domain.Cause {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	deadline := now.Add(30 * 24 * time.Hour)
	cause := domain.Cause{
		ID:          uuid.New(),
		Title:       "Cause " + suffix,
		Description: "Description of cause " + suffix,
		Image:       "https://img.example.com/" + suffix + ".png",
		Goal:        goal,
		Raised:      raised,
		Deadline:    &deadline,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO causes (id, title, description, image, goal, raised, deadline, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		cause.ID, cause.Title, cause.Description, cause.Image, int64(cause.Goal), int64(cause.Raised),
		cause.Deadline, string(cause.Status), cause.CreatedAt, cause.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCause insert: %v", err)
	}

	return cause
}

// SeedDonation records a donation without touching the cause's raised total.
func SeedDonation(t *testing.T, pool *pgxpool.Pool, accountID, causeID uuid.UUID, amount domain.Money) domain.Donation {
	t.Helper()
	ctx := context.Background()

	d := domain.Donation{
		ID:        uuid.New(),
		CaptureID: "CAP-" + uniqueSuffix() + uniqueSuffix(),
		PaymentID: "PAY-" + uniqueSuffix(),
		AccountID: accountID,
		CauseID:   causeID,
		Amount:    amount,
		Currency:  "USD",
		DonatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO donations (id, capture_id, payment_id, account_id, cause_id, amount, currency, donated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		d.ID, d.CaptureID, d.PaymentID, d.AccountID, d.CauseID, int64(d.Amount), d.Currency, d.DonatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDonation insert: %v", err)
	}

	return d
}
