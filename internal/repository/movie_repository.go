// Package repository contains data access logic separated from HTTP handlers.
// This file defines the Movie model and repository methods for CRUD
// operations. A Movie is the central catalog entity; genre tags and ratings
// reference it by id.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values
)

// Movie represents one row of the movies table. The ID field is the primary
// key and is auto-incremented by the DB. ReleaseDate travels as a
// "2006-01-02" string, matching what the edit forms submit.
type Movie struct {
	ID          uint64 // ID is the unique identifier of the movie (movieid column)
	Title       string // Title is the display title
	ReleaseDate string // ReleaseDate is the theatrical release date
	Duration    int    // Duration is the runtime in minutes
	Description string // Description is a free-form synopsis
}

// ErrMovieNotFound is returned when a movie cannot be found in the DB.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepo encapsulates all database queries related to movies.  It depends
// on a sql.DB connection pool which is configured at startup.
type MovieRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewMovieRepo constructs a MovieRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.  There is no initialization logic beyond assigning the field.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// List returns every movie ordered by id, which for an auto-increment key is
// insertion order.
func (r *MovieRepo) List(ctx context.Context) ([]*Movie, error) {
	const q = `SELECT movieid, title, release_date, duration, description
	           FROM movies ORDER BY movieid`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Movie
	for rows.Next() {
		m := new(Movie)
		if err := rows.Scan(&m.ID, &m.Title, &m.ReleaseDate, &m.Duration, &m.Description); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a movie by its ID.  It returns ErrMovieNotFound if no row
// is found.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*Movie, error) {
	const q = `SELECT movieid, title, release_date, duration, description
	           FROM movies WHERE movieid = ?`
	var m Movie
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Title, &m.ReleaseDate, &m.Duration, &m.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create inserts a new movie into the database.  On success the movie's ID
// field will be populated with the auto-generated value.
func (r *MovieRepo) Create(ctx context.Context, m *Movie) error {
	const q = `INSERT INTO movies (title, release_date, duration, description)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Title, m.ReleaseDate, m.Duration, m.Description)
	if err != nil {
		return err // propagate DB errors to the caller
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// Update replaces every mutable field of the identified row.  The statement
// is issued even when nothing changed; callers that need a 404 for unknown
// ids perform a GetByID first, because MySQL reports zero affected rows for
// an update that matched a row but changed nothing.
func (r *MovieRepo) Update(ctx context.Context, m *Movie) error {
	const q = `UPDATE movies
	           SET title = ?, release_date = ?, duration = ?, description = ?
	           WHERE movieid = ?`
	_, err := r.db.ExecContext(ctx, q, m.Title, m.ReleaseDate, m.Duration, m.Description, m.ID)
	return err
}

// Delete removes a movie row.  It returns ErrMovieNotFound when no row was
// deleted.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE movieid = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMovieNotFound
	}
	return nil
}
