package handler // handler package contains the movie console pages

import (
    "net/http" // http provides status code constants
    "strconv"  // strconv parses the duration form field
    "strings"  // strings offers trimming utilities

    "github.com/labstack/echo/v4" // echo is the web framework used for handlers

    "github.com/moviestream/catalog-admin/internal/queue"      // queue names the change event actions
    "github.com/moviestream/catalog-admin/internal/repository" // repository holds database models
)

// ListMovies handles GET /movies and renders the movie list view.
func (h *Console) ListMovies(c echo.Context) error {
    movies, err := h.Movies.List(c.Request().Context()) // fetch every movie
    if err != nil {                                     // handle repository errors
        c.Logger().Errorf("list movies: %v", err)                                      // log the underlying error
        return renderError(c, http.StatusInternalServerError, "could not load movies") // generic body outward
    }
    return c.Render(http.StatusOK, "movies.html", map[string]any{
        "Title":  "Movies",
        "Movies": movies,
    })
}

// NewMovieForm handles GET /movies/add and renders an empty form.
func (h *Console) NewMovieForm(c echo.Context) error {
    return c.Render(http.StatusOK, "movie_form.html", map[string]any{
        "Title":  "Add movie",
        "Action": "/movies/add",
    })
}

// CreateMovie handles POST /movies/add: it validates the required fields,
// inserts the row, and redirects to the list view.
func (h *Console) CreateMovie(c echo.Context) error {
    if f := missingField(c, "title", "release_date", "duration", "description"); f != "" { // all fields are required
        return renderError(c, http.StatusBadRequest, "missing required field: "+f) // reject before any write
    }
    duration, err := strconv.Atoi(strings.TrimSpace(c.FormValue("duration"))) // duration must be numeric
    if err != nil {
        return renderError(c, http.StatusBadRequest, "duration must be a number")
    }
    m := &repository.Movie{ // build the record from the submitted form
        Title:       strings.TrimSpace(c.FormValue("title")),
        ReleaseDate: strings.TrimSpace(c.FormValue("release_date")),
        Duration:    duration,
        Description: strings.TrimSpace(c.FormValue("description")),
    }
    if err := h.Movies.Create(c.Request().Context(), m); err != nil { // delegate the insert to the repository
        c.Logger().Errorf("create movie: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not create movie")
    }
    publishChange("movie", queue.ActionCreated, strconv.FormatUint(m.ID, 10)) // fire-and-forget change event
    return c.Redirect(http.StatusSeeOther, "/movies")                         // back to the list view on success
}

// EditMovieForm handles GET /movies/edit/:id and renders the pre-populated form.
func (h *Console) EditMovieForm(c echo.Context) error {
    id, err := parseID(c.Param("id")) // parse the movie ID from the URL
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid id")
    }
    m, err := h.Movies.GetByID(c.Request().Context(), id) // point lookup for the form values
    if err != nil {
        if err == repository.ErrMovieNotFound {
            return renderError(c, http.StatusNotFound, "movie not found")
        }
        c.Logger().Errorf("get movie %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not load movie")
    }
    return c.Render(http.StatusOK, "movie_form.html", map[string]any{
        "Title":  "Edit movie",
        "Action": "/movies/edit/" + strconv.FormatUint(id, 10),
        "Movie":  m,
    })
}

// UpdateMovie handles POST /movies/edit/:id: a full-row replace of the
// identified movie followed by a redirect to the list view.
func (h *Console) UpdateMovie(c echo.Context) error {
    id, err := parseID(c.Param("id"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid id")
    }
    if f := missingField(c, "title", "release_date", "duration", "description"); f != "" {
        return renderError(c, http.StatusBadRequest, "missing required field: "+f)
    }
    duration, err := strconv.Atoi(strings.TrimSpace(c.FormValue("duration")))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "duration must be a number")
    }
    if _, err := h.Movies.GetByID(c.Request().Context(), id); err != nil { // verify the movie exists before writing
        if err == repository.ErrMovieNotFound {
            return renderError(c, http.StatusNotFound, "movie not found")
        }
        c.Logger().Errorf("get movie %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not load movie")
    }
    m := &repository.Movie{
        ID:          id,
        Title:       strings.TrimSpace(c.FormValue("title")),
        ReleaseDate: strings.TrimSpace(c.FormValue("release_date")),
        Duration:    duration,
        Description: strings.TrimSpace(c.FormValue("description")),
    }
    if err := h.Movies.Update(c.Request().Context(), m); err != nil { // the write is issued even when nothing changed
        c.Logger().Errorf("update movie %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not update movie")
    }
    publishChange("movie", queue.ActionUpdated, strconv.FormatUint(id, 10))
    return c.Redirect(http.StatusSeeOther, "/movies")
}

// DeleteMovie handles POST /movies/delete/:id and redirects to the list view.
func (h *Console) DeleteMovie(c echo.Context) error {
    id, err := parseID(c.Param("id"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid id")
    }
    if err := h.Movies.Delete(c.Request().Context(), id); err != nil {
        if err == repository.ErrMovieNotFound {
            return renderError(c, http.StatusNotFound, "movie not found")
        }
        c.Logger().Errorf("delete movie %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not delete movie")
    }
    publishChange("movie", queue.ActionDeleted, strconv.FormatUint(id, 10))
    return c.Redirect(http.StatusSeeOther, "/movies")
}
