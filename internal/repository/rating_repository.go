// This file defines the Rating model and repository methods. A rating is
// keyed by the (movieid, userID) pair: one user rates one movie at most once,
// which the table's composite primary key enforces.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Rating represents one row of the ratings table.
type Rating struct {
	MovieID uint64 // MovieID references movies.movieid
	UserID  uint64 // UserID references users.userID
	Score   int    // Score is the ratingScore column
	Review  string // Review is free-form text
	Date    string // Date is the ratingDate column
}

// ErrRatingNotFound is returned when a (movie, user) rating cannot be found.
var ErrRatingNotFound = errors.New("rating not found")

// RatingRepo encapsulates all database queries related to ratings.
type RatingRepo struct {
	db *sql.DB
}

// NewRatingRepo constructs a RatingRepo with the provided DB handle.
func NewRatingRepo(db *sql.DB) *RatingRepo {
	return &RatingRepo{db: db}
}

// List returns every rating ordered by movie then user.
func (r *RatingRepo) List(ctx context.Context) ([]*Rating, error) {
	const q = `SELECT movieid, userID, ratingScore, review, ratingDate
	           FROM ratings ORDER BY movieid, userID`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Rating
	for rows.Next() {
		rt := new(Rating)
		if err := rows.Scan(&rt.MovieID, &rt.UserID, &rt.Score, &rt.Review, &rt.Date); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByKey fetches a rating by its composite key and returns
// ErrRatingNotFound on a miss.
func (r *RatingRepo) GetByKey(ctx context.Context, movieID, userID uint64) (*Rating, error) {
	const q = `SELECT movieid, userID, ratingScore, review, ratingDate
	           FROM ratings WHERE movieid = ? AND userID = ?`
	var rt Rating
	if err := r.db.QueryRowContext(ctx, q, movieID, userID).Scan(&rt.MovieID, &rt.UserID, &rt.Score, &rt.Review, &rt.Date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rt, nil
}

// Create inserts a new rating. A duplicate (movie, user) pair is rejected by
// the composite primary key and surfaces as a driver error.
func (r *RatingRepo) Create(ctx context.Context, rt *Rating) error {
	const q = `INSERT INTO ratings (movieid, userID, ratingScore, review, ratingDate)
	           VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, rt.MovieID, rt.UserID, rt.Score, rt.Review, rt.Date)
	return err
}

// Update rewrites the rating identified by (movieID, userID) to the fields
// of rt, including a possible key change.
func (r *RatingRepo) Update(ctx context.Context, movieID, userID uint64, rt *Rating) error {
	const q = `UPDATE ratings
	           SET movieid = ?, userID = ?, ratingScore = ?, review = ?, ratingDate = ?
	           WHERE movieid = ? AND userID = ?`
	_, err := r.db.ExecContext(ctx, q, rt.MovieID, rt.UserID, rt.Score, rt.Review, rt.Date, movieID, userID)
	return err
}

// Delete removes a rating and returns ErrRatingNotFound when no row matched.
func (r *RatingRepo) Delete(ctx context.Context, movieID, userID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM ratings WHERE movieid = ? AND userID = ?`, movieID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRatingNotFound
	}
	return nil
}
