package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/alumnoextra/alumnos-api/internal/api/metrics"
	"github.com/alumnoextra/alumnos-api/internal/core/ports"
)

// Auth is the request gate: it extracts the bearer token, verifies it via
// the auth service, and injects the verified subject into the context.
// Every resource route passes through it; none is exempt.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Token no proporcionado.")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Token no proporcionado.")
			}

			subject, err := auth.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Token inválido o expirado.")
			}

			// Handlers do not consume the subject today; it is carried for
			// logging and future use.
			c.Set("subject", subject)

			return next(c)
		}
	}
}
