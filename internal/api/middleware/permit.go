package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

// Permit checks the user's permission pairs for one module/action. It
// re-fetches the user record on every call, so a permission revoked or an
// account deactivated after token issuance takes effect immediately on
// permission-gated routes. Admins pass by role.
func Permit(repo ports.AuthRepository, module, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			user, err := repo.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
			}
			if !user.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, "account inactive")
			}
			if !user.Can(module, action) {
				return domain.ErrForbidden
			}

			return next(c)
		}
	}
}
