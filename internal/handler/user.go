package handler // handler package contains the user console pages

import (
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/moviestream/catalog-admin/internal/queue"
    "github.com/moviestream/catalog-admin/internal/repository"
)

// ListUsers handles GET /users. The repository orders the rows newest first.
func (h *Console) ListUsers(c echo.Context) error {
    users, err := h.Users.List(c.Request().Context())
    if err != nil {
        c.Logger().Errorf("list users: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not load users")
    }
    return c.Render(http.StatusOK, "users.html", map[string]any{
        "Title": "Users",
        "Users": users,
    })
}

// NewUserForm handles GET /users/add.
func (h *Console) NewUserForm(c echo.Context) error {
    return c.Render(http.StatusOK, "user_form.html", map[string]any{
        "Title":  "Add user",
        "Action": "/users/add",
    })
}

// CreateUser handles POST /users/add. The password field is persisted
// exactly as submitted.
func (h *Console) CreateUser(c echo.Context) error {
    if f := missingField(c, "userName", "email", "password", "date_of_birth"); f != "" {
        return renderError(c, http.StatusBadRequest, "missing required field: "+f)
    }
    u := &repository.User{
        Name:        strings.TrimSpace(c.FormValue("userName")),
        Email:       strings.TrimSpace(c.FormValue("email")),
        Password:    c.FormValue("password"),
        DateOfBirth: strings.TrimSpace(c.FormValue("date_of_birth")),
    }
    if err := h.Users.Create(c.Request().Context(), u); err != nil {
        c.Logger().Errorf("create user: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not create user")
    }
    publishChange("user", queue.ActionCreated, strconv.FormatUint(u.ID, 10))
    return c.Redirect(http.StatusSeeOther, "/users")
}

// EditUserForm handles GET /users/edit/:id.
func (h *Console) EditUserForm(c echo.Context) error {
    id, err := parseID(c.Param("id"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid id")
    }
    u, err := h.Users.GetByID(c.Request().Context(), id)
    if err != nil {
        if err == repository.ErrUserNotFound {
            return renderError(c, http.StatusNotFound, "user not found")
        }
        c.Logger().Errorf("get user %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not load user")
    }
    return c.Render(http.StatusOK, "user_form.html", map[string]any{
        "Title":  "Edit user",
        "Action": "/users/edit/" + strconv.FormatUint(id, 10),
        "User":   u,
    })
}

// UpdateUser handles POST /users/edit/:id with a full-row replace.
func (h *Console) UpdateUser(c echo.Context) error {
    id, err := parseID(c.Param("id"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid id")
    }
    if f := missingField(c, "userName", "email", "password", "date_of_birth"); f != "" {
        return renderError(c, http.StatusBadRequest, "missing required field: "+f)
    }
    if _, err := h.Users.GetByID(c.Request().Context(), id); err != nil {
        if err == repository.ErrUserNotFound {
            return renderError(c, http.StatusNotFound, "user not found")
        }
        c.Logger().Errorf("get user %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not load user")
    }
    u := &repository.User{
        ID:          id,
        Name:        strings.TrimSpace(c.FormValue("userName")),
        Email:       strings.TrimSpace(c.FormValue("email")),
        Password:    c.FormValue("password"),
        DateOfBirth: strings.TrimSpace(c.FormValue("date_of_birth")),
    }
    if err := h.Users.Update(c.Request().Context(), u); err != nil {
        c.Logger().Errorf("update user %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not update user")
    }
    publishChange("user", queue.ActionUpdated, strconv.FormatUint(id, 10))
    return c.Redirect(http.StatusSeeOther, "/users")
}

// DeleteUser handles POST /users/delete/:id. The repository removes the
// user's ratings and the user row in one transaction.
func (h *Console) DeleteUser(c echo.Context) error {
    id, err := parseID(c.Param("id"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid id")
    }
    if err := h.Users.Delete(c.Request().Context(), id); err != nil {
        if err == repository.ErrUserNotFound {
            return renderError(c, http.StatusNotFound, "user not found")
        }
        c.Logger().Errorf("delete user %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not delete user")
    }
    publishChange("user", queue.ActionDeleted, strconv.FormatUint(id, 10))
    return c.Redirect(http.StatusSeeOther, "/users")
}
