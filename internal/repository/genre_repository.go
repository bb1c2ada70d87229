// This file defines the GenreTag model and repository methods. A genre tag
// attaches one genre label to one movie; the (movieid, genre) pair is the
// composite key, so there is no surrogate id anywhere in this file.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// GenreTag represents one row of the movie_genre table.
type GenreTag struct {
	MovieID uint64 // MovieID references movies.movieid
	Genre   string // Genre is the label (movie_genre column)
}

// ErrGenreNotFound is returned when a (movie, genre) pair cannot be found.
var ErrGenreNotFound = errors.New("genre tag not found")

// GenreRepo encapsulates all database queries related to genre tags.
type GenreRepo struct {
	db *sql.DB
}

// NewGenreRepo constructs a GenreRepo with the provided DB handle.
func NewGenreRepo(db *sql.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

// List returns every genre tag ordered by movie then label.
func (r *GenreRepo) List(ctx context.Context) ([]*GenreTag, error) {
	const q = `SELECT movieid, movie_genre FROM movie_genre ORDER BY movieid, movie_genre`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*GenreTag
	for rows.Next() {
		t := new(GenreTag)
		if err := rows.Scan(&t.MovieID, &t.Genre); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByKey fetches a tag by its composite key and returns ErrGenreNotFound
// on a miss.
func (r *GenreRepo) GetByKey(ctx context.Context, movieID uint64, genre string) (*GenreTag, error) {
	const q = `SELECT movieid, movie_genre FROM movie_genre
	           WHERE movieid = ? AND movie_genre = ?`
	var t GenreTag
	if err := r.db.QueryRowContext(ctx, q, movieID, genre).Scan(&t.MovieID, &t.Genre); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Create inserts a new tag. The database's foreign key on movieid rejects
// tags for movies that do not exist.
func (r *GenreRepo) Create(ctx context.Context, t *GenreTag) error {
	const q = `INSERT INTO movie_genre (movieid, movie_genre) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, q, t.MovieID, t.Genre)
	return err
}

// Update rewrites the identified tag to the fields of t. Because both
// columns form the key, an edit is a key replacement.
func (r *GenreRepo) Update(ctx context.Context, movieID uint64, genre string, t *GenreTag) error {
	const q = `UPDATE movie_genre SET movieid = ?, movie_genre = ?
	           WHERE movieid = ? AND movie_genre = ?`
	_, err := r.db.ExecContext(ctx, q, t.MovieID, t.Genre, movieID, genre)
	return err
}

// Delete removes a tag and returns ErrGenreNotFound when no row matched.
func (r *GenreRepo) Delete(ctx context.Context, movieID uint64, genre string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM movie_genre WHERE movieid = ? AND movie_genre = ?`, movieID, genre)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrGenreNotFound
	}
	return nil
}
