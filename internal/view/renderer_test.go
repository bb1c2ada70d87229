package view

import (
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestNewParsesEveryTemplate(t *testing.T) {
	if _, err := New(); err != nil {
		t.Fatalf("New: %v", err)
	}
}

func TestRenderErrorPage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var sb strings.Builder
	data := map[string]any{"Title": "Error", "Message": "movie not found"}
	if err := r.Render(&sb, "error.html", data, echo.New().NewContext(nil, nil)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "movie not found") || !strings.Contains(out, "<nav>") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestFormatMoney(t *testing.T) {
	cases := map[float64]string{
		0:        "0.00",
		9.9:      "9.90",
		12345.67: "12345.67",
	}
	for in, want := range cases {
		if got := formatMoney(in); got != want {
			t.Fatalf("formatMoney(%v) = %q, want %q", in, got, want)
		}
	}
}
