// This file defines the User model and repository methods. Users own
// subscriptions and ratings; deleting a user must therefore cascade to its
// ratings inside one transaction so a failure never leaves a half-applied
// delete behind.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// User represents one row of the users table. The password column is stored
// verbatim; the console neither hashes nor inspects it.
type User struct {
	ID          uint64 // ID is the unique identifier of the user (userID column)
	Name        string // Name is the display name (userName column)
	Email       string // Email is the contact address
	Password    string // Password is stored as submitted
	DateOfBirth string // DateOfBirth is a "2006-01-02" string
}

// ErrUserNotFound is returned when a user cannot be found in the DB.
var ErrUserNotFound = errors.New("user not found")

// UserRepo encapsulates all database queries related to users.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the provided DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// List returns every user, newest first.
func (r *UserRepo) List(ctx context.Context) ([]*User, error) {
	const q = `SELECT userID, userName, email, password, date_of_birth
	           FROM users ORDER BY userID DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*User
	for rows.Next() {
		u := new(User)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.DateOfBirth); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a user by id and returns ErrUserNotFound on a miss.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*User, error) {
	const q = `SELECT userID, userName, email, password, date_of_birth
	           FROM users WHERE userID = ?`
	var u User
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.DateOfBirth); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and populates u.ID with the generated key.
func (r *UserRepo) Create(ctx context.Context, u *User) error {
	const q = `INSERT INTO users (userName, email, password, date_of_birth)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, u.Name, u.Email, u.Password, u.DateOfBirth)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// Update replaces every mutable field of the identified row.
func (r *UserRepo) Update(ctx context.Context, u *User) error {
	const q = `UPDATE users
	           SET userName = ?, email = ?, password = ?, date_of_birth = ?
	           WHERE userID = ?`
	_, err := r.db.ExecContext(ctx, q, u.Name, u.Email, u.Password, u.DateOfBirth, u.ID)
	return err
}

// Delete removes a user and all ratings that reference it. The deletion
// occurs within a transaction: either the ratings and the user row are all
// gone, or none of them are. Returns ErrUserNotFound when the user does not
// exist.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
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
	// Verify the user exists before issuing the cascade.
	var dbID uint64
	if err = tx.QueryRowContext(ctx, `SELECT userID FROM users WHERE userID = ?`, id).Scan(&dbID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrUserNotFound
		}
		return err
	}
	// Cascade delete: ratings reference users.userID.
	if _, err = tx.ExecContext(ctx, `DELETE FROM ratings WHERE userID = ?`, id); err != nil {
		return err
	}
	// Finally delete the user.
	if _, err = tx.ExecContext(ctx, `DELETE FROM users WHERE userID = ?`, id); err != nil {
		return err
	}
	return nil
}
