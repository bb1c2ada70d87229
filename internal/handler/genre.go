package handler // handler package contains the genre tag console pages

import (
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/moviestream/catalog-admin/internal/queue"
    "github.com/moviestream/catalog-admin/internal/repository"
)

// genreKey formats the composite (movie, genre) key for change events.
func genreKey(movieID uint64, genre string) string {
    return strconv.FormatUint(movieID, 10) + "/" + genre
}

// ListGenres handles GET /genres.
func (h *Console) ListGenres(c echo.Context) error {
    genres, err := h.Genres.List(c.Request().Context())
    if err != nil {
        c.Logger().Errorf("list genres: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not load genres")
    }
    return c.Render(http.StatusOK, "genres.html", map[string]any{
        "Title":  "Genres",
        "Genres": genres,
    })
}

// NewGenreForm handles GET /genres/add.
func (h *Console) NewGenreForm(c echo.Context) error {
    return c.Render(http.StatusOK, "genre_form.html", map[string]any{
        "Title":  "Add genre tag",
        "Action": "/genres/add",
    })
}

// CreateGenre handles POST /genres/add. The database's foreign key rejects
// tags pointing at movies that do not exist.
func (h *Console) CreateGenre(c echo.Context) error {
    if f := missingField(c, "movieid", "movie_genre"); f != "" {
        return renderError(c, http.StatusBadRequest, "missing required field: "+f)
    }
    movieID, err := parseID(strings.TrimSpace(c.FormValue("movieid")))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "movieid must be a number")
    }
    t := &repository.GenreTag{
        MovieID: movieID,
        Genre:   strings.TrimSpace(c.FormValue("movie_genre")),
    }
    if err := h.Genres.Create(c.Request().Context(), t); err != nil {
        c.Logger().Errorf("create genre tag: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not create genre tag")
    }
    publishChange("genre", queue.ActionCreated, genreKey(t.MovieID, t.Genre))
    return c.Redirect(http.StatusSeeOther, "/genres")
}

// EditGenreForm handles GET /genres/edit/:movieid/:genre.
func (h *Console) EditGenreForm(c echo.Context) error {
    movieID, err := parseID(c.Param("movieid"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid movie id")
    }
    genre := c.Param("genre")
    t, err := h.Genres.GetByKey(c.Request().Context(), movieID, genre)
    if err != nil {
        if err == repository.ErrGenreNotFound {
            return renderError(c, http.StatusNotFound, "genre tag not found")
        }
        c.Logger().Errorf("get genre tag %d/%s: %v", movieID, genre, err)
        return renderError(c, http.StatusInternalServerError, "could not load genre tag")
    }
    return c.Render(http.StatusOK, "genre_form.html", map[string]any{
        "Title":  "Edit genre tag",
        "Action": "/genres/edit/" + genreKey(movieID, genre),
        "Genre":  t,
    })
}

// UpdateGenre handles POST /genres/edit/:movieid/:genre. Since both columns
// form the key, an edit may move the tag to a different movie or label.
func (h *Console) UpdateGenre(c echo.Context) error {
    movieID, err := parseID(c.Param("movieid"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid movie id")
    }
    genre := c.Param("genre")
    if f := missingField(c, "movieid", "movie_genre"); f != "" {
        return renderError(c, http.StatusBadRequest, "missing required field: "+f)
    }
    newMovieID, err := parseID(strings.TrimSpace(c.FormValue("movieid")))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "movieid must be a number")
    }
    if _, err := h.Genres.GetByKey(c.Request().Context(), movieID, genre); err != nil {
        if err == repository.ErrGenreNotFound {
            return renderError(c, http.StatusNotFound, "genre tag not found")
        }
        c.Logger().Errorf("get genre tag %d/%s: %v", movieID, genre, err)
        return renderError(c, http.StatusInternalServerError, "could not load genre tag")
    }
    t := &repository.GenreTag{
        MovieID: newMovieID,
        Genre:   strings.TrimSpace(c.FormValue("movie_genre")),
    }
    if err := h.Genres.Update(c.Request().Context(), movieID, genre, t); err != nil {
        c.Logger().Errorf("update genre tag %d/%s: %v", movieID, genre, err)
        return renderError(c, http.StatusInternalServerError, "could not update genre tag")
    }
    publishChange("genre", queue.ActionUpdated, genreKey(t.MovieID, t.Genre))
    return c.Redirect(http.StatusSeeOther, "/genres")
}

// DeleteGenre handles POST /genres/delete/:movieid/:genre.
func (h *Console) DeleteGenre(c echo.Context) error {
    movieID, err := parseID(c.Param("movieid"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid movie id")
    }
    genre := c.Param("genre")
    if err := h.Genres.Delete(c.Request().Context(), movieID, genre); err != nil {
        if err == repository.ErrGenreNotFound {
            return renderError(c, http.StatusNotFound, "genre tag not found")
        }
        c.Logger().Errorf("delete genre tag %d/%s: %v", movieID, genre, err)
        return renderError(c, http.StatusInternalServerError, "could not delete genre tag")
    }
    publishChange("genre", queue.ActionDeleted, genreKey(movieID, genre))
    return c.Redirect(http.StatusSeeOther, "/genres")
}
