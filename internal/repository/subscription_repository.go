// This file defines the Subscription model and repository methods.
// Subscriptions belong to a user and own payments; deleting one cascades to
// its payments inside a transaction, mirroring the user/rating cascade.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Subscription represents one row of the subscriptions table. Status holds
// the raw subscription_status enum value ("active", "inactive", ...).
type Subscription struct {
	ID        uint64 // ID is the unique identifier (subscription_id column)
	UserID    uint64 // UserID references users.userID
	StartDate string // StartDate is the startdate column
	EndDate   string // EndDate is the end_Date column
	Status    string // Status is the subscription_status column
}

// ErrSubscriptionNotFound is returned when a subscription cannot be found.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepo encapsulates all database queries related to subscriptions.
type SubscriptionRepo struct {
	db *sql.DB
}

// NewSubscriptionRepo constructs a SubscriptionRepo with the provided DB handle.
func NewSubscriptionRepo(db *sql.DB) *SubscriptionRepo {
	return &SubscriptionRepo{db: db}
}

// List returns every subscription ordered by id.
func (r *SubscriptionRepo) List(ctx context.Context) ([]*Subscription, error) {
	const q = `SELECT subscription_id, userID, startdate, end_Date, subscription_status
	           FROM subscriptions ORDER BY subscription_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Subscription
	for rows.Next() {
		s := new(Subscription)
		if err := rows.Scan(&s.ID, &s.UserID, &s.StartDate, &s.EndDate, &s.Status); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a subscription by id and returns ErrSubscriptionNotFound
// on a miss.
func (r *SubscriptionRepo) GetByID(ctx context.Context, id uint64) (*Subscription, error) {
	const q = `SELECT subscription_id, userID, startdate, end_Date, subscription_status
	           FROM subscriptions WHERE subscription_id = ?`
	var s Subscription
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.UserID, &s.StartDate, &s.EndDate, &s.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a new subscription and populates s.ID.
func (r *SubscriptionRepo) Create(ctx context.Context, s *Subscription) error {
	const q = `INSERT INTO subscriptions (userID, startdate, end_Date, subscription_status)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.UserID, s.StartDate, s.EndDate, s.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// Update replaces every mutable field of the identified row.
func (r *SubscriptionRepo) Update(ctx context.Context, s *Subscription) error {
	const q = `UPDATE subscriptions
	           SET userID = ?, startdate = ?, end_Date = ?, subscription_status = ?
	           WHERE subscription_id = ?`
	_, err := r.db.ExecContext(ctx, q, s.UserID, s.StartDate, s.EndDate, s.Status, s.ID)
	return err
}

// Delete removes a subscription and all payments that reference it, within
// one transaction. Returns ErrSubscriptionNotFound when the subscription
// does not exist.
func (r *SubscriptionRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	var dbID uint64
	if err = tx.QueryRowContext(ctx, `SELECT subscription_id FROM subscriptions WHERE subscription_id = ?`, id).Scan(&dbID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrSubscriptionNotFound
		}
		return err
	}
	// Cascade delete: payments reference subscriptions.subscription_id.
	if _, err = tx.ExecContext(ctx, `DELETE FROM payments WHERE subscription_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM subscriptions WHERE subscription_id = ?`, id); err != nil {
		return err
	}
	return nil
}
