// This file defines the Payment model and repository methods. The list query
// joins subscriptions so the views only show payments whose subscription
// still exists.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Payment represents one row of the payments table.
type Payment struct {
	ID             uint64  // ID is the unique identifier (payment_id column)
	Amount         float64 // Amount is the payment_amount column
	CardNo         string  // CardNo is the card number as entered
	Date           string  // Date is the payment_date column
	Method         string  // Method is the payment_method column
	SubscriptionID uint64  // SubscriptionID references subscriptions.subscription_id
}

// ErrPaymentNotFound is returned when a payment cannot be found in the DB.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepo encapsulates all database queries related to payments.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo constructs a PaymentRepo with the provided DB handle.
func NewPaymentRepo(db *sql.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// List returns every payment joined against its subscription, in insertion
// order.
func (r *PaymentRepo) List(ctx context.Context) ([]*Payment, error) {
	const q = `SELECT p.payment_id, p.payment_amount, p.card_no, p.payment_date, p.payment_method, s.subscription_id
	           FROM payments p
	           JOIN subscriptions s ON p.subscription_id = s.subscription_id
	           ORDER BY p.payment_id`
	return r.queryPayments(ctx, q)
}

// ListBySubscription returns the payments belonging to one subscription.
func (r *PaymentRepo) ListBySubscription(ctx context.Context, subscriptionID uint64) ([]*Payment, error) {
	const q = `SELECT payment_id, payment_amount, card_no, payment_date, payment_method, subscription_id
	           FROM payments WHERE subscription_id = ? ORDER BY payment_id`
	return r.queryPayments(ctx, q, subscriptionID)
}

func (r *PaymentRepo) queryPayments(ctx context.Context, q string, args ...any) ([]*Payment, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Payment
	for rows.Next() {
		p := new(Payment)
		if err := rows.Scan(&p.ID, &p.Amount, &p.CardNo, &p.Date, &p.Method, &p.SubscriptionID); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a payment by id and returns ErrPaymentNotFound on a miss.
func (r *PaymentRepo) GetByID(ctx context.Context, id uint64) (*Payment, error) {
	const q = `SELECT payment_id, payment_amount, card_no, payment_date, payment_method, subscription_id
	           FROM payments WHERE payment_id = ?`
	var p Payment
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Amount, &p.CardNo, &p.Date, &p.Method, &p.SubscriptionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new payment and populates p.ID.
func (r *PaymentRepo) Create(ctx context.Context, p *Payment) error {
	const q = `INSERT INTO payments (payment_amount, card_no, payment_date, payment_method, subscription_id)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.Amount, p.CardNo, p.Date, p.Method, p.SubscriptionID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// Update replaces every mutable field of the identified row. The write is
// issued unconditionally; the last committed transaction wins when two edits
// race.
func (r *PaymentRepo) Update(ctx context.Context, p *Payment) error {
	const q = `UPDATE payments
	           SET payment_amount = ?, card_no = ?, payment_date = ?, payment_method = ?, subscription_id = ?
	           WHERE payment_id = ?`
	_, err := r.db.ExecContext(ctx, q, p.Amount, p.CardNo, p.Date, p.Method, p.SubscriptionID, p.ID)
	return err
}

// Delete removes a payment and returns ErrPaymentNotFound when no row matched.
func (r *PaymentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE payment_id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
