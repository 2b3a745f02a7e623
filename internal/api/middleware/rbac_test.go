package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
)

func roleContext(e *echo.Echo, role string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		ctx := domain.WithPrincipal(req.Context(), domain.Principal{ID: 1, Email: "user@example.com", Role: role})
		c.SetRequest(req.WithContext(ctx))
	}
	return c, rec
}

func TestRequireRole_Allowed(t *testing.T) {
	e := echo.New()
	c, rec := roleContext(e, domain.RoleAdmin)

	handler := RequireRole(domain.RoleGuide, domain.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	e := echo.New()
	c, _ := roleContext(e, domain.RoleClient)

	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("next must not run")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestRequireRole_Anonymous(t *testing.T) {
	e := echo.New()
	c, _ := roleContext(e, "")

	handler := RequireRole(domain.RoleClient)(func(c echo.Context) error {
		t.Fatalf("next must not run")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrAnonymous) {
		t.Fatalf("expected ErrAnonymous, got %v", err)
	}
}

func TestRequireAuthenticated(t *testing.T) {
	e := echo.New()

	for _, role := range []string{domain.RoleClient, domain.RoleGuide, domain.RoleAdmin} {
		c, rec := roleContext(e, role)
		handler := RequireAuthenticated()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("role %s: handler error: %v", role, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("role %s: expected 200, got %d", role, rec.Code)
		}
	}

	c, _ := roleContext(e, "")
	handler := RequireAuthenticated()(func(c echo.Context) error {
		t.Fatalf("next must not run")
		return nil
	})
	if err := handler(c); !errors.Is(err, domain.ErrAnonymous) {
		t.Fatalf("expected ErrAnonymous, got %v", err)
	}
}
