package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
)

// RBAC enforces role-based access control on the injected session role.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// Admins is the RBAC shorthand covering every administrative role.
func Admins() echo.MiddlewareFunc {
	return RBAC(domain.RoleAdminSuper, domain.RoleAdminBusiness, domain.RoleAdminFinancial, domain.RoleAdminCommunity)
}
