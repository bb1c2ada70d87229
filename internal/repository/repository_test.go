package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// newMock returns a sqlmock-backed DB for repository tests. The regexp
// matcher is the default, so expectations quote their SQL with
// regexp.QuoteMeta and match on the meaningful fragment of each statement.
func newMock(t testing.TB) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func q(s string) string { return regexp.QuoteMeta(s) }

func TestMovieCreatePopulatesID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMovieRepo(db)

	mock.ExpectExec(q("INSERT INTO movies (title, release_date, duration, description)")).
		WithArgs("Inception", "2010-07-16", 148, "A thief who steals corporate secrets.").
		WillReturnResult(sqlmock.NewResult(42, 1))

	m := &Movie{Title: "Inception", ReleaseDate: "2010-07-16", Duration: 148, Description: "A thief who steals corporate secrets."}
	if err := repo.Create(context.Background(), m); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.ID != 42 {
		t.Fatalf("ID = %d, want 42", m.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMovieGetByIDRoundTrip(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMovieRepo(db)

	rows := sqlmock.NewRows([]string{"movieid", "title", "release_date", "duration", "description"}).
		AddRow(42, "Inception", "2010-07-16", 148, "A thief who steals corporate secrets.")
	mock.ExpectQuery(q("SELECT movieid, title, release_date, duration, description FROM movies WHERE movieid = ?")).
		WithArgs(uint64(42)).
		WillReturnRows(rows)

	m, err := repo.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	want := Movie{ID: 42, Title: "Inception", ReleaseDate: "2010-07-16", Duration: 148, Description: "A thief who steals corporate secrets."}
	if *m != want {
		t.Fatalf("GetByID = %+v, want %+v", *m, want)
	}
}

func TestMovieGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMovieRepo(db)

	mock.ExpectQuery(q("FROM movies WHERE movieid = ?")).
		WithArgs(uint64(999)).
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), 999); !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("err = %v, want ErrMovieNotFound", err)
	}
}

func TestMovieUpdateReplacesAllFields(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMovieRepo(db)

	mock.ExpectExec(q("UPDATE movies")).
		WithArgs("Inception", "2010-07-16", 148, "Updated synopsis.", uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	m := &Movie{ID: 42, Title: "Inception", ReleaseDate: "2010-07-16", Duration: 148, Description: "Updated synopsis."}
	if err := repo.Update(context.Background(), m); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMovieDeleteNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMovieRepo(db)

	mock.ExpectExec(q("DELETE FROM movies WHERE movieid = ?")).
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 7); !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("err = %v, want ErrMovieNotFound", err)
	}
}

func TestUserListNewestFirstQuery(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepo(db)

	rows := sqlmock.NewRows([]string{"userID", "userName", "email", "password", "date_of_birth"}).
		AddRow(3, "carol", "carol@example.com", "pw3", "1993-03-03").
		AddRow(1, "alice", "alice@example.com", "pw1", "1991-01-01")
	mock.ExpectQuery(q("FROM users ORDER BY userID DESC")).WillReturnRows(rows)

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 || users[0].ID != 3 || users[1].ID != 1 {
		t.Fatalf("unexpected order: %+v", users)
	}
}

func TestUserDeleteCascadesRatings(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT userID FROM users WHERE userID = ?")).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"userID"}).AddRow(7))
	mock.ExpectExec(q("DELETE FROM ratings WHERE userID = ?")).
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(q("DELETE FROM users WHERE userID = ?")).
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserDeleteRollsBackOnCascadeFailure(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepo(db)

	boom := errors.New("constraint blew up")
	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT userID FROM users WHERE userID = ?")).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"userID"}).AddRow(7))
	mock.ExpectExec(q("DELETE FROM ratings WHERE userID = ?")).
		WithArgs(uint64(7)).
		WillReturnError(boom)
	mock.ExpectRollback()

	if err := repo.Delete(context.Background(), 7); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the cascade error", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserDeleteMissingUser(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT userID FROM users WHERE userID = ?")).
		WithArgs(uint64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	if err := repo.Delete(context.Background(), 99); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestSubscriptionDeleteCascadesPayments(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSubscriptionRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT subscription_id FROM subscriptions WHERE subscription_id = ?")).
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"subscription_id"}).AddRow(11))
	mock.ExpectExec(q("DELETE FROM payments WHERE subscription_id = ?")).
		WithArgs(uint64(11)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(q("DELETE FROM subscriptions WHERE subscription_id = ?")).
		WithArgs(uint64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), 11); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSubscriptionDeleteRollsBackOnPaymentFailure(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSubscriptionRepo(db)

	boom := errors.New("deadlock")
	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT subscription_id FROM subscriptions WHERE subscription_id = ?")).
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"subscription_id"}).AddRow(11))
	mock.ExpectExec(q("DELETE FROM payments WHERE subscription_id = ?")).
		WithArgs(uint64(11)).
		WillReturnError(boom)
	mock.ExpectRollback()

	if err := repo.Delete(context.Background(), 11); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the cascade error", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGenreDeleteNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewGenreRepo(db)

	mock.ExpectExec(q("DELETE FROM movie_genre WHERE movieid = ? AND movie_genre = ?")).
		WithArgs(uint64(1), "Noir").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 1, "Noir"); !errors.Is(err, ErrGenreNotFound) {
		t.Fatalf("err = %v, want ErrGenreNotFound", err)
	}
}

func TestRatingUpdateMovesKey(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRatingRepo(db)

	mock.ExpectExec(q("UPDATE ratings")).
		WithArgs(uint64(2), uint64(5), 4, "better on rewatch", "2024-05-01", uint64(1), uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rt := &Rating{MovieID: 2, UserID: 5, Score: 4, Review: "better on rewatch", Date: "2024-05-01"}
	if err := repo.Update(context.Background(), 1, 5, rt); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPaymentListBySubscription(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPaymentRepo(db)

	rows := sqlmock.NewRows([]string{"payment_id", "payment_amount", "card_no", "payment_date", "payment_method", "subscription_id"}).
		AddRow(1, 9.99, "4111", "2024-01-01", "card", 11).
		AddRow(2, 9.99, "4111", "2024-02-01", "card", 11)
	mock.ExpectQuery(q("FROM payments WHERE subscription_id = ?")).
		WithArgs(uint64(11)).
		WillReturnRows(rows)

	payments, err := repo.ListBySubscription(context.Background(), 11)
	if err != nil {
		t.Fatalf("ListBySubscription: %v", err)
	}
	if len(payments) != 2 || payments[0].SubscriptionID != 11 {
		t.Fatalf("unexpected payments: %+v", payments)
	}
}
