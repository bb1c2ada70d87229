// This file holds the read-only aggregate queries behind the dashboard and
// the reports page. None of these methods write; every one is a single
// SELECT plus a scan loop.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// DashboardStats carries the four headline numbers on the landing page.
type DashboardStats struct {
	TotalUsers         int64   // TotalUsers is the row count of users
	TotalSubscriptions int64   // TotalSubscriptions is the row count of subscriptions
	MonthRevenue       float64 // MonthRevenue sums payments dated in the current calendar month
	TopMovie           string  // TopMovie is the title with the most ratings; empty when no ratings exist
}

// MovieScore is one row of the top-rated report: a movie and its average
// rating over more than five submitted ratings.
type MovieScore struct {
	Title     string
	AvgRating float64
	Ratings   int64
}

// GenreMovieScore is one row of the per-genre ranking.
type GenreMovieScore struct {
	Genre     string
	Title     string
	AvgRating float64
}

// StatusCount pairs a subscription_status value with how many subscriptions
// hold it.
type StatusCount struct {
	Status string
	Count  int64
}

// ReportRepo bundles the aggregate queries. It is read-only by construction;
// nothing here calls Exec.
type ReportRepo struct {
	db *sql.DB
}

// NewReportRepo constructs a ReportRepo with the provided DB handle.
func NewReportRepo(db *sql.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// DashboardStats gathers the landing-page numbers. Ties for the most-rated
// movie are broken by whatever order the store returns the grouped rows in.
func (r *ReportRepo) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var st DashboardStats
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users`).Scan(&st.TotalUsers); err != nil {
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM subscriptions`).Scan(&st.TotalSubscriptions); err != nil {
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(payment_amount), 0) FROM payments
		 WHERE MONTH(payment_date) = MONTH(CURDATE())
		   AND YEAR(payment_date) = YEAR(CURDATE())`).Scan(&st.MonthRevenue); err != nil {
		return nil, err
	}
	err := r.db.QueryRowContext(ctx,
		`SELECT m.title
		 FROM ratings r
		 JOIN movies m ON m.movieid = r.movieid
		 GROUP BY r.movieid, m.title
		 ORDER BY COUNT(*) DESC
		 LIMIT 1`).Scan(&st.TopMovie)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return &st, nil
}

// TopRatedMovies returns at most ten movies by descending average rating,
// considering only movies with strictly more than five ratings.
func (r *ReportRepo) TopRatedMovies(ctx context.Context) ([]*MovieScore, error) {
	const q = `SELECT m.title, AVG(r.ratingScore) AS avg_rating, COUNT(*) AS num_ratings
	           FROM ratings r
	           JOIN movies m ON m.movieid = r.movieid
	           GROUP BY r.movieid, m.title
	           HAVING COUNT(*) > 5
	           ORDER BY avg_rating DESC
	           LIMIT 10`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*MovieScore
	for rows.Next() {
		s := new(MovieScore)
		if err := rows.Scan(&s.Title, &s.AvgRating, &s.Ratings); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// TotalRevenue sums every payment ever recorded, with no date restriction.
func (r *ReportRepo) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(payment_amount), 0) FROM payments`).Scan(&total)
	return total, err
}

// TopMoviesByGenre returns the per-genre ranking truncated to five movies
// per genre. The query orders by genre and then by descending average; the
// truncation happens here after the fetch and keeps rows in exactly the
// order the store returned them.
func (r *ReportRepo) TopMoviesByGenre(ctx context.Context) ([]*GenreMovieScore, error) {
	const q = `SELECT g.movie_genre, m.title, AVG(r.ratingScore) AS avg_rating
	           FROM movie_genre g
	           JOIN ratings r ON r.movieid = g.movieid
	           JOIN movies m ON m.movieid = g.movieid
	           GROUP BY g.movie_genre, g.movieid, m.title
	           ORDER BY g.movie_genre, avg_rating DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []*GenreMovieScore
	for rows.Next() {
		s := new(GenreMovieScore)
		if err := rows.Scan(&s.Genre, &s.Title, &s.AvgRating); err != nil {
			return nil, err
		}
		all = append(all, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return TruncatePerGenre(all, 5), nil
}

// TruncatePerGenre keeps at most limit rows per genre, preserving the input
// order within and across genres. Rows are assumed to arrive grouped by
// genre, as the ranking query orders them.
func TruncatePerGenre(rows []*GenreMovieScore, limit int) []*GenreMovieScore {
	var out []*GenreMovieScore
	genre, kept := "", 0
	for i, s := range rows {
		if i == 0 || s.Genre != genre {
			genre, kept = s.Genre, 0
		}
		if kept < limit {
			out = append(out, s)
			kept++
		}
	}
	return out
}

// SubscriptionStatusCounts groups subscriptions by their status value.
func (r *ReportRepo) SubscriptionStatusCounts(ctx context.Context) ([]*StatusCount, error) {
	const q = `SELECT subscription_status, COUNT(*) AS total
	           FROM subscriptions GROUP BY subscription_status ORDER BY subscription_status`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*StatusCount
	for rows.Next() {
		c := new(StatusCount)
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
