package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/ellka-ua/tour-agency-api/internal/api/metrics"
	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
)

// RequireRole guards a route group by role. An anonymous request gets 401;
// an authenticated principal whose role is not in the allowed set gets 403.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := domain.PrincipalFromContext(c.Request().Context())
			if !ok {
				return domain.ErrAnonymous
			}
			if _, ok := allowed[p.Role]; !ok {
				metrics.AccessDeniedTotal.WithLabelValues("route").Inc()
				return domain.ErrAccessDenied
			}
			return next(c)
		}
	}
}

// RequireAuthenticated guards a route group that any signed-in role may
// use.
func RequireAuthenticated() echo.MiddlewareFunc {
	return RequireRole(domain.RoleClient, domain.RoleGuide, domain.RoleAdmin)
}
