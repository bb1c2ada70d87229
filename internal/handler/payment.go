package handler // handler package contains the payment console pages

import (
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/moviestream/catalog-admin/internal/queue"
    "github.com/moviestream/catalog-admin/internal/repository"
)

// paymentForm extracts and validates the payment fields shared by the create
// and update handlers. It returns a bad-request message when a required
// field is missing or malformed.
func paymentForm(c echo.Context) (*repository.Payment, string) {
    if f := missingField(c, "payment_amount", "card_no", "payment_date", "payment_method", "subscription_id"); f != "" {
        return nil, "missing required field: " + f
    }
    amount, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("payment_amount")), 64)
    if err != nil {
        return nil, "payment_amount must be a number"
    }
    subID, err := parseID(strings.TrimSpace(c.FormValue("subscription_id")))
    if err != nil {
        return nil, "subscription_id must be a number"
    }
    return &repository.Payment{
        Amount:         amount,
        CardNo:         strings.TrimSpace(c.FormValue("card_no")),
        Date:           strings.TrimSpace(c.FormValue("payment_date")),
        Method:         strings.TrimSpace(c.FormValue("payment_method")),
        SubscriptionID: subID,
    }, ""
}

// ListPayments handles GET /payments. An optional ?subscription_id= filter
// narrows the list to one subscription.
func (h *Console) ListPayments(c echo.Context) error {
    var (
        payments []*repository.Payment
        err      error
    )
    if raw := c.QueryParam("subscription_id"); raw != "" {
        subID, perr := parseID(raw)
        if perr != nil {
            return renderError(c, http.StatusBadRequest, "subscription_id must be a number")
        }
        payments, err = h.Payments.ListBySubscription(c.Request().Context(), subID)
    } else {
        payments, err = h.Payments.List(c.Request().Context())
    }
    if err != nil {
        c.Logger().Errorf("list payments: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not load payments")
    }
    return c.Render(http.StatusOK, "payments.html", map[string]any{
        "Title":    "Payments",
        "Payments": payments,
    })
}

// NewPaymentForm handles GET /payments/add.
func (h *Console) NewPaymentForm(c echo.Context) error {
    return c.Render(http.StatusOK, "payment_form.html", map[string]any{
        "Title":  "Add payment",
        "Action": "/payments/add",
    })
}

// CreatePayment handles POST /payments/add.
func (h *Console) CreatePayment(c echo.Context) error {
    p, msg := paymentForm(c)
    if msg != "" {
        return renderError(c, http.StatusBadRequest, msg)
    }
    if err := h.Payments.Create(c.Request().Context(), p); err != nil {
        c.Logger().Errorf("create payment: %v", err)
        return renderError(c, http.StatusInternalServerError, "could not create payment")
    }
    publishChange("payment", queue.ActionCreated, strconv.FormatUint(p.ID, 10))
    return c.Redirect(http.StatusSeeOther, "/payments")
}

// EditPaymentForm handles GET /payments/edit/:id.
func (h *Console) EditPaymentForm(c echo.Context) error {
    id, err := parseID(c.Param("id"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid id")
    }
    p, err := h.Payments.GetByID(c.Request().Context(), id)
    if err != nil {
        if err == repository.ErrPaymentNotFound {
            return renderError(c, http.StatusNotFound, "payment not found")
        }
        c.Logger().Errorf("get payment %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not load payment")
    }
    return c.Render(http.StatusOK, "payment_form.html", map[string]any{
        "Title":   "Edit payment",
        "Action":  "/payments/edit/" + strconv.FormatUint(id, 10),
        "Payment": p,
    })
}

// UpdatePayment handles POST /payments/edit/:id with a full-row replace.
// Two racing updates resolve to whichever transaction committed last.
func (h *Console) UpdatePayment(c echo.Context) error {
    id, err := parseID(c.Param("id"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid id")
    }
    p, msg := paymentForm(c)
    if msg != "" {
        return renderError(c, http.StatusBadRequest, msg)
    }
    if _, err := h.Payments.GetByID(c.Request().Context(), id); err != nil {
        if err == repository.ErrPaymentNotFound {
            return renderError(c, http.StatusNotFound, "payment not found")
        }
        c.Logger().Errorf("get payment %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not load payment")
    }
    p.ID = id
    if err := h.Payments.Update(c.Request().Context(), p); err != nil {
        c.Logger().Errorf("update payment %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not update payment")
    }
    publishChange("payment", queue.ActionUpdated, strconv.FormatUint(id, 10))
    return c.Redirect(http.StatusSeeOther, "/payments")
}

// DeletePayment handles POST /payments/delete/:id.
func (h *Console) DeletePayment(c echo.Context) error {
    id, err := parseID(c.Param("id"))
    if err != nil {
        return renderError(c, http.StatusBadRequest, "invalid id")
    }
    if err := h.Payments.Delete(c.Request().Context(), id); err != nil {
        if err == repository.ErrPaymentNotFound {
            return renderError(c, http.StatusNotFound, "payment not found")
        }
        c.Logger().Errorf("delete payment %d: %v", id, err)
        return renderError(c, http.StatusInternalServerError, "could not delete payment")
    }
    publishChange("payment", queue.ActionDeleted, strconv.FormatUint(id, 10))
    return c.Redirect(http.StatusSeeOther, "/payments")
}
