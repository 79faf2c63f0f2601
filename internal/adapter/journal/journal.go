// Package journal keeps payment captures that could not be settled locally in
// an embedded BoltDB file, so they can be replayed once the database recovers.
package journal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "github.com/boltdb/bolt"
	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/domain"
)

const (
	bucketName     = "captures"
	metaBucketName = "meta"
	cursorKey      = "drain_cursor"
)

// Entry is one captured payment awaiting settlement.
type Entry struct {
	CaptureID     string    `json:"capture_id"`
	PaymentID     string    `json:"payment_id"`
	AccountID     uuid.UUID `json:"account_id"`
	CauseID       uuid.UUID `json:"cause_id"`
	AmountMinor   int64     `json:"amount_minor"`
	Currency      string    `json:"currency"`
	Description   string    `json:"description"`
	Reason        string    `json:"reason"`
	Attempts      int       `json:"attempts"`
	RecordedAt    time.Time `json:"recorded_at"`
	LastAttemptAt time.Time `json:"last_attempt_at,omitempty"`
}

// NewEntry builds a journal entry for a capture that failed to settle.
func NewEntry(conf domain.CaptureConfirmation, accountID uuid.UUID, reason string) Entry {
	return Entry{
		CaptureID:   conf.CaptureID,
		PaymentID:   conf.PaymentID,
		AccountID:   accountID,
		CauseID:     conf.CauseID,
		AmountMinor: int64(conf.Amount),
		Currency:    conf.Currency,
		Description: conf.Description,
		Reason:      reason,
	}
}

// Confirmation rebuilds the capture confirmation recorded in the entry.
func (e Entry) Confirmation() domain.CaptureConfirmation {
	return domain.CaptureConfirmation{
		CaptureID:   e.CaptureID,
		PaymentID:   e.PaymentID,
		Amount:      domain.Money(e.AmountMinor),
		Currency:    e.Currency,
		Description: e.Description,
		CauseID:     e.CauseID,
	}
}

// Journal is a BoltDB-backed store of unsettled captures keyed by capture id.
type Journal struct {
	db  *bolt.DB
	now func() time.Time
}

// Open opens (or creates) the journal file at path and ensures its bucket exists.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("journal: create dir %s: %w", dir, err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketName)); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists([]byte(metaBucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("journal: create bucket: %w", err)
	}

	return &Journal{db: db, now: time.Now}, nil
}

// Close releases the database file lock.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record stores e unless an entry for the same capture already exists.
// Reports whether a new entry was written.
func (j *Journal) Record(e Entry) (bool, error) {
	if e.CaptureID == "" {
		return false, fmt.Errorf("journal: record: empty capture id")
	}

	created := false
	err := j.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b.Get([]byte(e.CaptureID)) != nil {
			return nil
		}

		e.RecordedAt = j.now().UTC()
		data, err := json.Marshal(e)
		if err != nil {
			return err
		}
		created = true
		return b.Put([]byte(e.CaptureID), data)
	})
	if err != nil {
		return false, fmt.Errorf("journal: record %s: %w", e.CaptureID, err)
	}
	return created, nil
}

// Get returns the entry for a capture. Returns domain.ErrNotFound if absent.
func (j *Journal) Get(captureID string) (*Entry, error) {
	var e Entry
	err := j.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(captureID))
		if v == nil {
			return domain.ErrNotFound
		}
		return json.Unmarshal(v, &e)
	})
	if err != nil {
		return nil, fmt.Errorf("journal: get %s: %w", captureID, err)
	}
	return &e, nil
}

// List returns up to limit entries in capture id order. A limit <= 0 returns all.
func (j *Journal) List(limit int) ([]Entry, error) {
	entries := []Entry{}
	err := j.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketName)).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if limit > 0 && len(entries) >= limit {
				break
			}
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("decode %s: %w", k, err)
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("journal: list: %w", err)
	}
	return entries, nil
}

// Next returns up to limit entries that follow the last one it handed out,
// wrapping around to the first key, and stores the new position. Entries that
// keep failing therefore cannot hide the ones behind them. A limit <= 0
// returns every entry and leaves the position unchanged.
func (j *Journal) Next(limit int) ([]Entry, error) {
	if limit <= 0 {
		return j.List(0)
	}

	entries := []Entry{}
	err := j.db.Update(func(tx *bolt.Tx) error {
		meta := tx.Bucket([]byte(metaBucketName))
		var after []byte
		if v := meta.Get([]byte(cursorKey)); v != nil {
			after = append([]byte(nil), v...)
		}

		add := func(k, v []byte) error {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("decode %s: %w", k, err)
			}
			entries = append(entries, e)
			return nil
		}

		c := tx.Bucket([]byte(bucketName)).Cursor()
		k, v := c.First()
		if after != nil {
			k, v = c.Seek(after)
			if k != nil && bytes.Equal(k, after) {
				k, v = c.Next()
			}
		}
		for ; k != nil && len(entries) < limit; k, v = c.Next() {
			if err := add(k, v); err != nil {
				return err
			}
		}

		// Wrap around to the keys at or before the stored position.
		if after != nil {
			for k, v = c.First(); k != nil && len(entries) < limit; k, v = c.Next() {
				if bytes.Compare(k, after) > 0 {
					break
				}
				if err := add(k, v); err != nil {
					return err
				}
			}
		}

		if len(entries) == 0 {
			return nil
		}
		return meta.Put([]byte(cursorKey), []byte(entries[len(entries)-1].CaptureID))
	})
	if err != nil {
		return nil, fmt.Errorf("journal: next: %w", err)
	}
	return entries, nil
}

// MarkAttempt records a failed replay of a capture.
func (j *Journal) MarkAttempt(captureID, reason string) error {
	err := j.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		v := b.Get([]byte(captureID))
		if v == nil {
			return domain.ErrNotFound
		}

		var e Entry
		if err := json.Unmarshal(v, &e); err != nil {
			return err
		}
		e.Attempts++
		e.Reason = reason
		e.LastAttemptAt = j.now().UTC()

		data, err := json.Marshal(e)
		if err != nil {
			return err
		}
		return b.Put([]byte(captureID), data)
	})
	if err != nil {
		return fmt.Errorf("journal: mark attempt %s: %w", captureID, err)
	}
	return nil
}

// Remove deletes the entry for a capture. Removing a missing entry is not an error.
func (j *Journal) Remove(captureID string) error {
	err := j.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(captureID))
	})
	if err != nil {
		return fmt.Errorf("journal: remove %s: %w", captureID, err)
	}
	return nil
}

// Count returns the number of pending entries.
func (j *Journal) Count() (int, error) {
	var n int
	err := j.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(bucketName)).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("journal: count: %w", err)
	}
	return n, nil
}
