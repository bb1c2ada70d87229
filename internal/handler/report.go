package handler // handler package contains the dashboard and reports pages

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// Dashboard handles GET / and renders the headline numbers.
func (h *Console) Dashboard(c echo.Context) error {
    stats, err := h.Reports.DashboardStats(c.Request().Context())
    if err != nil {
        c.Logger().Errorf("dashboard stats: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not load dashboard")
    }
    return c.Render(http.StatusOK, "dashboard.html", map[string]any{
        "Title": "Admin Dashboard",
        "Stats": stats,
    })
}

// ReportsPage handles GET /reports: top-rated movies, total revenue, per-genre
// rankings, and subscription status counts on one page.
func (h *Console) ReportsPage(c echo.Context) error {
    ctx := c.Request().Context()

    top, err := h.Reports.TopRatedMovies(ctx)
    if err != nil {
        c.Logger().Errorf("top rated movies: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not load reports")
    }
    revenue, err := h.Reports.TotalRevenue(ctx)
    if err != nil {
        c.Logger().Errorf("total revenue: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not load reports")
    }
    genreMovies, err := h.Reports.TopMoviesByGenre(ctx)
    if err != nil {
        c.Logger().Errorf("top movies by genre: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not load reports")
    }
    counts, err := h.Reports.SubscriptionStatusCounts(ctx)
    if err != nil {
        c.Logger().Errorf("subscription status counts: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not load reports")
    }

    return c.Render(http.StatusOK, "reports.html", map[string]any{
        "Title":        "Reports",
        "TopMovies":    top,
        "Revenue":      revenue,
        "GenreMovies":  genreMovies,
        "StatusCounts": counts,
    })
}
