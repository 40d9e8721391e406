package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hdgomez8/portal-uci-back-sub001/lib/rbac"
)

func RbacMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		if userID == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "RBAC_FORBIDDEN",
			})
		}

		userRole := GetUserRole(ctx)
		if userRole == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "RBAC_FORBIDDEN",
			})
		}

		handler, found := rbac.Instance.GetRuleFunc(ctx.Method(), ctx.Path())
		if !found {
			return ctx.Next()
		}

		if !handler(userID, userRole, ctx.Path()) {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "RBAC_FORBIDDEN",
			})
		}

		return ctx.Next()
	}
}
