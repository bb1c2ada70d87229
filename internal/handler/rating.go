package handler // handler package contains the rating console pages

import (
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/moviestream/catalog-admin/internal/queue"
    "github.com/moviestream/catalog-admin/internal/repository"
)

// ratingKey formats the composite (movie, user) key for change events.
func ratingKey(movieID, userID uint64) string {
    return strconv.FormatUint(movieID, 10) + "/" + strconv.FormatUint(userID, 10)
}

// ratingForm extracts and validates the rating fields shared by the create
// and update handlers.
func ratingForm(c echo.Context) (*repository.Rating, string) {
    if f := missingField(c, "userID", "movieID", "ratingScore", "review", "ratingDate"); f != "" {
        return nil, "missing required field: " + f
    }
    movieID, err := parseID(strings.TrimSpace(c.FormValue("movieID")))
    if err != nil {
        return nil, "movieID must be a number"
    }
    userID, err := parseID(strings.TrimSpace(c.FormValue("userID")))
    if err != nil {
        return nil, "userID must be a number"
    }
    score, err := strconv.Atoi(strings.TrimSpace(c.FormValue("ratingScore")))
    if err != nil {
        return nil, "ratingScore must be a number"
    }
    return &repository.Rating{
        MovieID: movieID,
        UserID:  userID,
        Score:   score,
        Review:  strings.TrimSpace(c.FormValue("review")),
        Date:    strings.TrimSpace(c.FormValue("ratingDate")),
    }, ""
}

// ListRatings handles GET /ratings.
func (h *Console) ListRatings(c echo.Context) error {
    ratings, err := h.Ratings.List(c.Request().Context())
    if err != nil {
        c.Logger().Errorf("list ratings: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not load ratings")
    }
    return c.Render(http.StatusOK, "ratings.html", map[string]any{
        "Title":   "Ratings",
        "Ratings": ratings,
    })
}

// NewRatingForm handles GET /ratings/add.
func (h *Console) NewRatingForm(c echo.Context) error {
    return c.Render(http.StatusOK, "rating_form.html", map[string]any{
        "Title":  "Add rating",
        "Action": "/ratings/add",
    })
}

// CreateRating handles POST /ratings/add. A duplicate (movie, user) pair is
// rejected by the table's composite primary key.
func (h *Console) CreateRating(c echo.Context) error {
    rt, msg := ratingForm(c)
    if msg != "" {
        return renderError(c, http.StatusBadRequest, msg)
    }
    if err := h.Ratings.Create(c.Request().Context(), rt); err != nil {
        c.Logger().Errorf("create rating: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not create rating")
    }
    publishChange("rating", queue.ActionCreated, ratingKey(rt.MovieID, rt.UserID))
    return c.Redirect(http.StatusSeeOther, "/ratings")
}

// EditRatingForm handles GET /ratings/edit/:movieid/:userid.
func (h *Console) EditRatingForm(c echo.Context) error {
    movieID, err := parseID(c.Param("movieid"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid movie id")
    }
    userID, err := parseID(c.Param("userid"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid user id")
    }
    rt, err := h.Ratings.GetByKey(c.Request().Context(), movieID, userID)
    if err != nil {
        if err == repository.ErrRatingNotFound {
            return renderError(c, http.StatusNotFound, "rating not found")
        }
        c.Logger().Errorf("get rating %d/%d: %v", movieID, userID, err)
        return renderError(c, http.StatusInternalServerError, "could not load rating")
    }
    return c.Render(http.StatusOK, "rating_form.html", map[string]any{
        "Title":  "Edit rating",
        "Action": "/ratings/edit/" + ratingKey(movieID, userID),
        "Rating": rt,
    })
}

// UpdateRating handles POST /ratings/edit/:movieid/:userid with a full-row
// replace, including a possible key change.
func (h *Console) UpdateRating(c echo.Context) error {
    movieID, err := parseID(c.Param("movieid"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid movie id")
    }
    userID, err := parseID(c.Param("userid"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid user id")
    }
    rt, msg := ratingForm(c)
    if msg != "" {
        return renderError(c, http.StatusBadRequest, msg)
    }
    if _, err := h.Ratings.GetByKey(c.Request().Context(), movieID, userID); err != nil {
        if err == repository.ErrRatingNotFound {
            return renderError(c, http.StatusNotFound, "rating not found")
        }
        c.Logger().Errorf("get rating %d/%d: %v", movieID, userID, err)
        return renderError(c, http.StatusInternalServerError, "could not load rating")
    }
    if err := h.Ratings.Update(c.Request().Context(), movieID, userID, rt); err != nil {
        c.Logger().Errorf("update rating %d/%d: %v", movieID, userID, err)
        return renderError(c, http.StatusInternalServerError, "could not update rating")
    }
    publishChange("rating", queue.ActionUpdated, ratingKey(rt.MovieID, rt.UserID))
    return c.Redirect(http.StatusSeeOther, "/ratings")
}

// DeleteRating handles POST /ratings/delete/:movieid/:userid.
func (h *Console) DeleteRating(c echo.Context) error {
    movieID, err := parseID(c.Param("movieid"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid movie id")
    }
    userID, err := parseID(c.Param("userid"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid user id")
    }
    if err := h.Ratings.Delete(c.Request().Context(), movieID, userID); err != nil {
        if err == repository.ErrRatingNotFound {
            return renderError(c, http.StatusNotFound, "rating not found")
        }
        c.Logger().Errorf("delete rating %d/%d: %v", movieID, userID, err)
        return renderError(c, http.StatusInternalServerError, "could not delete rating")
    }
    publishChange("rating", queue.ActionDeleted, ratingKey(movieID, userID))
    return c.Redirect(http.StatusSeeOther, "/ratings")
}
