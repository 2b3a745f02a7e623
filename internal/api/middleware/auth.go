package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ellka-ua/tour-agency-api/internal/api/metrics"
	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
	"github.com/ellka-ua/tour-agency-api/internal/core/service"
)

// Auth is the per-request identity filter. Requests without a bearer
// credential continue anonymously so public endpoints stay reachable; a
// present-but-invalid token short-circuits with 401 before any handler
// runs. On success the resolved principal is bound to the request context.
func Auth(codec *service.TokenCodec, resolver *service.PrincipalResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A rebind would be a no-op; skip the lookup entirely.
			if _, bound := domain.PrincipalFromContext(c.Request().Context()); bound {
				return next(c)
			}

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims, err := codec.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				metrics.TokenRejectionsTotal.Inc()
				return err
			}

			principal, err := resolver.Resolve(c.Request().Context(), claims)
			if err != nil {
				return err
			}

			ctx := domain.WithPrincipal(c.Request().Context(), principal)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
