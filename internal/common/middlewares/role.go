package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/klinik-kampus-backend/pkg/utils"
)

// RequireRole memeriksa apakah klaim JWT memiliki salah satu role yang dibutuhkan.
// Semua endpoint inventaris dibatasi untuk staf klinik.
func RequireRole(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawClaims := c.Get(string(ContextKeyClaims))
			claims, ok := rawClaims.(*utils.Claims)
			if !ok || claims == nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"status":  http.StatusUnauthorized,
					"message": "Missing or invalid JWT claims",
					"data":    nil,
				})
			}

			for _, role := range allowed {
				if claims.Role == role {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, echo.Map{
				"status":  http.StatusForbidden,
				"message": "User does not have the required role",
				"data":    nil,
			})
		}
	}
}
