package handler // handler package contains the subscription console pages

import (
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/moviestream/catalog-admin/internal/queue"
    "github.com/moviestream/catalog-admin/internal/repository"
)

// ListSubscriptions handles GET /subscriptions.
func (h *Console) ListSubscriptions(c echo.Context) error {
    subs, err := h.Subscriptions.List(c.Request().Context())
    if err != nil {
        c.Logger().Errorf("list subscriptions: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not load subscriptions")
    }
    return c.Render(http.StatusOK, "subscriptions.html", map[string]any{
        "Title":         "Subscriptions",
        "Subscriptions": subs,
    })
}

// NewSubscriptionForm handles GET /subscriptions/add.
func (h *Console) NewSubscriptionForm(c echo.Context) error {
    return c.Render(http.StatusOK, "subscription_form.html", map[string]any{
        "Title":  "Add subscription",
        "Action": "/subscriptions/add",
    })
}

// CreateSubscription handles POST /subscriptions/add.
func (h *Console) CreateSubscription(c echo.Context) error {
    if f := missingField(c, "userID", "startdate", "end_Date", "subscription_status"); f != "" {
        return renderError(c, http.StatusBadRequest, "missing required field: "+f)
    }
    userID, err := parseID(strings.TrimSpace(c.FormValue("userID")))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "userID must be a number")
    }
    s := &repository.Subscription{
        UserID:    userID,
        StartDate: strings.TrimSpace(c.FormValue("startdate")),
        EndDate:   strings.TrimSpace(c.FormValue("end_Date")),
        Status:    strings.TrimSpace(c.FormValue("subscription_status")),
    }
    if err := h.Subscriptions.Create(c.Request().Context(), s); err != nil {
        c.Logger().Errorf("create subscription: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not create subscription")
    }
    publishChange("subscription", queue.ActionCreated, strconv.FormatUint(s.ID, 10))
    return c.Redirect(http.StatusSeeOther, "/subscriptions")
}

// EditSubscriptionForm handles GET /subscriptions/edit/:id.
func (h *Console) EditSubscriptionForm(c echo.Context) error {
    id, err := parseID(c.Param("id"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid id")
    }
    s, err := h.Subscriptions.GetByID(c.Request().Context(), id)
    if err != nil {
        if err == repository.ErrSubscriptionNotFound {
            return renderError(c, http.StatusNotFound, "subscription not found")
        }
        c.Logger().Errorf("get subscription %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not load subscription")
    }
    return c.Render(http.StatusOK, "subscription_form.html", map[string]any{
        "Title":        "Edit subscription",
        "Action":       "/subscriptions/edit/" + strconv.FormatUint(id, 10),
        "Subscription": s,
    })
}

// UpdateSubscription handles POST /subscriptions/edit/:id with a full-row
// replace.
func (h *Console) UpdateSubscription(c echo.Context) error {
    id, err := parseID(c.Param("id"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid id")
    }
    if f := missingField(c, "userID", "startdate", "end_Date", "subscription_status"); f != "" {
        return renderError(c, http.StatusBadRequest, "missing required field: "+f)
    }
    userID, err := parseID(strings.TrimSpace(c.FormValue("userID")))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "userID must be a number")
    }
    if _, err := h.Subscriptions.GetByID(c.Request().Context(), id); err != nil {
        if err == repository.ErrSubscriptionNotFound {
            return renderError(c, http.StatusNotFound, "subscription not found")
        }
        c.Logger().Errorf("get subscription %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not load subscription")
    }
    s := &repository.Subscription{
        ID:        id,
        UserID:    userID,
        StartDate: strings.TrimSpace(c.FormValue("startdate")),
        EndDate:   strings.TrimSpace(c.FormValue("end_Date")),
        Status:    strings.TrimSpace(c.FormValue("subscription_status")),
    }
    if err := h.Subscriptions.Update(c.Request().Context(), s); err != nil {
        c.Logger().Errorf("update subscription %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not update subscription")
    }
    publishChange("subscription", queue.ActionUpdated, strconv.FormatUint(id, 10))
    return c.Redirect(http.StatusSeeOther, "/subscriptions")
}

// DeleteSubscription handles POST /subscriptions/delete/:id. The repository
// removes the subscription's payments and the subscription in one
// transaction.
func (h *Console) DeleteSubscription(c echo.Context) error {
    id, err := parseID(c.Param("id"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid id")
    }
    if err := h.Subscriptions.Delete(c.Request().Context(), id); err != nil {
        if err == repository.ErrSubscriptionNotFound {
            return renderError(c, http.StatusNotFound, "subscription not found")
        }
        c.Logger().Errorf("delete subscription %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not delete subscription")
    }
    publishChange("subscription", queue.ActionDeleted, strconv.FormatUint(id, 10))
    return c.Redirect(http.StatusSeeOther, "/subscriptions")
}
