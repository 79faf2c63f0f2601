// Package donation implements the Donation repository using PostgreSQL.
package donation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	postgres "github.com/heartmarshall/givefund-backend/internal/adapter/postgres"
	"github.com/heartmarshall/givefund-backend/internal/domain"
)

// Repo provides donation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new donation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Filter selects donations for listing. All set conditions must hold.
type Filter struct {
	// DonorIDs restricts results to these accounts. A non-nil empty slice matches nothing.
	DonorIDs []uuid.UUID
	// CauseIDs restricts results to these causes. A non-nil empty slice matches nothing.
	CauseIDs []uuid.UUID
	Limit    int
	Offset   int
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

// causeFKConstraint is the donations.cause_id foreign key.
const causeFKConstraint = "fk_donations_cause"

const donationColumns = `id, capture_id, payment_id, account_id, cause_id, amount, currency, donated_at`

// insertIfAbsentSQL returns no row when a donation for the capture already exists.
const insertIfAbsentSQL = `
INSERT INTO donations (id, capture_id, payment_id, account_id, cause_id, amount, currency, donated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (capture_id) DO NOTHING
RETURNING ` + donationColumns

const getByCaptureIDSQL = `
SELECT ` + donationColumns + `
FROM donations
WHERE capture_id = $1`

var detailColumns = []string{
	"d.id", "d.capture_id", "d.payment_id", "d.account_id", "d.cause_id", "d.amount", "d.currency", "d.donated_at",
	"a.email AS account_email", "a.fullname AS account_fullname", "a.phone AS account_phone",
	"c.title AS cause_title",
}

func detailSelect() squirrel.SelectBuilder {
	return postgres.Builder.
		Select(detailColumns...).
		From("donations d").
		Join("accounts a ON a.id = d.account_id").
		Join("causes c ON c.id = d.cause_id")
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateIfAbsent inserts d unless a donation with the same capture id exists.
// It returns the stored donation and whether this call created it.
// A missing cause is reported as domain.ErrCauseNotFound; a missing account
// as domain.ErrNotFound.
func (r *Repo) CreateIfAbsent(ctx context.Context, d *domain.Donation) (*domain.Donation, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	donatedAt := d.DonatedAt
	if donatedAt.IsZero() {
		donatedAt = time.Now()
	}

	created, err := scanDonation(q.QueryRow(ctx, insertIfAbsentSQL,
		d.ID, d.CaptureID, d.PaymentID, d.AccountID, d.CauseID, int64(d.Amount), d.Currency,
		donatedAt.UTC().Truncate(time.Microsecond),
	))
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" && pgErr.ConstraintName == causeFKConstraint {
			return nil, false, fmt.Errorf("donation %s: cause %s: %w", d.CaptureID, d.CauseID, domain.ErrCauseNotFound)
		}
		return nil, false, postgres.MapError(err, "donation", d.CaptureID)
	}

	existing, err := r.GetByCaptureID(ctx, d.CaptureID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByCaptureID returns the donation recorded for a payment capture.
func (r *Repo) GetByCaptureID(ctx context.Context, captureID string) (*domain.Donation, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	d, err := scanDonation(q.QueryRow(ctx, getByCaptureIDSQL, captureID))
	if err != nil {
		return nil, postgres.MapError(err, "donation", captureID)
	}
	return d, nil
}

// GetDetail returns a donation with its donor and cause summaries.
func (r *Repo) GetDetail(ctx context.Context, id uuid.UUID) (*domain.DonationDetail, error) {
	sql, args, err := detailSelect().Where(squirrel.Eq{"d.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get donation: %w", err)
	}

	var row detailRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "donation", id)
	}

	d := row.toDomain()
	return &d, nil
}

// List returns donations with donor and cause summaries, newest first.
func (r *Repo) List(ctx context.Context, f Filter) ([]domain.DonationDetail, error) {
	sql, args, err := detailSelect().
		Where(f.where()).
		OrderBy("d.donated_at DESC", "d.id").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list donations: %w", err)
	}

	var rows []detailRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "donation", "list")
	}

	out := make([]domain.DonationDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Count returns the number of donations matching f, ignoring its limit and offset.
func (r *Repo) Count(ctx context.Context, f Filter) (int, error) {
	sql, args, err := postgres.Builder.
		Select("count(*)").
		From("donations d").
		Where(f.where()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count donations: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "donation", "count")
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type detailRow struct {
	ID              uuid.UUID `db:"id"`
	CaptureID       string    `db:"capture_id"`
	PaymentID       string    `db:"payment_id"`
	AccountID       uuid.UUID `db:"account_id"`
	CauseID         uuid.UUID `db:"cause_id"`
	Amount          int64     `db:"amount"`
	Currency        string    `db:"currency"`
	DonatedAt       time.Time `db:"donated_at"`
	AccountEmail    string    `db:"account_email"`
	AccountFullname string    `db:"account_fullname"`
	AccountPhone    string    `db:"account_phone"`
	CauseTitle      string    `db:"cause_title"`
}

func (r detailRow) toDomain() domain.DonationDetail {
	return domain.DonationDetail{
		Donation: domain.Donation{
			ID:        r.ID,
			CaptureID: r.CaptureID,
			PaymentID: r.PaymentID,
			AccountID: r.AccountID,
			CauseID:   r.CauseID,
			Amount:    domain.Money(r.Amount),
			Currency:  r.Currency,
			DonatedAt: r.DonatedAt,
		},
		Account: domain.AccountSummary{
			ID:       r.AccountID,
			Email:    r.AccountEmail,
			Fullname: r.AccountFullname,
			Phone:    r.AccountPhone,
		},
		Cause: domain.CauseSummary{
			ID:    r.CauseID,
			Title: r.CauseTitle,
		},
	}
}

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var (
		d      domain.Donation
		amount int64
	)
	err := row.Scan(&d.ID, &d.CaptureID, &d.PaymentID, &d.AccountID, &d.CauseID, &amount, &d.Currency, &d.DonatedAt)
	if err != nil {
		return nil, err
	}
	d.Amount = domain.Money(amount)
	return &d, nil
}

func (f Filter) where() squirrel.And {
	where := squirrel.And{}
	if f.DonorIDs != nil {
		where = append(where, squirrel.Eq{"d.account_id": f.DonorIDs})
	}
	if f.CauseIDs != nil {
		where = append(where, squirrel.Eq{"d.cause_id": f.CauseIDs})
	}
	return where
}
