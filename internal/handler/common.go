package handler // handler defines the HTTP handlers behind the console pages

import (
    "context" // context carries the background scope for fire-and-forget event publishing
    "strconv" // strconv converts path segments to numeric keys
    "strings" // strings provides trimming for form values
    "time"    // time stamps the published change events

    "github.com/labstack/echo/v4" // echo defines request context types

    "github.com/moviestream/catalog-admin/internal/queue"                                   // queue holds the change event payloads
    "github.com/moviestream/catalog-admin/internal/repository"                              // repository holds the data access layer
    queue_publisher "github.com/moviestream/catalog-admin/internal/service/queue_publisher" // queue_publisher ships events to the broker
)

// Console bundles every repository the admin pages read and write. One
// instance is built at startup and shared by all requests; the struct itself
// is immutable after construction, all mutable state lives in the database.
type Console struct {
    Movies        *repository.MovieRepo        // Movies provides movie persistence
    Users         *repository.UserRepo         // Users provides user persistence
    Genres        *repository.GenreRepo        // Genres provides genre tag persistence
    Subscriptions *repository.SubscriptionRepo // Subscriptions provides subscription persistence
    Payments      *repository.PaymentRepo      // Payments provides payment persistence
    Ratings       *repository.RatingRepo       // Ratings provides rating persistence
    Reports       *repository.ReportRepo       // Reports provides the read-only aggregates
}

// NewConsole constructs a Console and panics if any dependency is nil.
func NewConsole(movies *repository.MovieRepo, users *repository.UserRepo, genres *repository.GenreRepo,
    subs *repository.SubscriptionRepo, payments *repository.PaymentRepo, ratings *repository.RatingRepo,
    reports *repository.ReportRepo) *Console {
    if movies == nil || users == nil || genres == nil || subs == nil || payments == nil || ratings == nil || reports == nil {
        panic("nil repository passed to NewConsole") // panic when a repository is missing
    }
    return &Console{
        Movies:        movies,
        Users:         users,
        Genres:        genres,
        Subscriptions: subs,
        Payments:      payments,
        Ratings:       ratings,
        Reports:       reports,
    }
}

// parseID parses a numeric path segment into a uint64 key.
func parseID(raw string) (uint64, error) {
    return strconv.ParseUint(raw, 10, 64)
}

// missingField returns the name of the first required form field that is
// absent or blank, or "" when all are present. Validation runs before any
// repository write so a bad request never touches the database.
func missingField(c echo.Context, names ...string) string {
    for _, n := range names {
        if strings.TrimSpace(c.FormValue(n)) == "" {
            return n
        }
    }
    return ""
}

// renderError writes the shared error page with the given status code. The
// message is what staff see; the underlying error, if any, is the caller's
// job to log before calling this.
func renderError(c echo.Context, code int, msg string) error {
    return c.Render(code, "error.html", map[string]any{
        "Title":   "Error",
        "Message": msg,
    })
}

// publishChange ships a catalog change event to the broker without blocking
// the request. Broker failures are logged inside the publisher and never
// reach the caller.
func publishChange(entity, action, key string) {
    ev := queue.CatalogChangeEvent{
        Entity:     entity,
        Action:     action,
        Key:        key,
        OccurredAt: time.Now().UTC().Format(time.RFC3339),
    }
    go func() {
        _ = queue_publisher.PublishCatalogChange(context.Background(), ev)
    }()
}
