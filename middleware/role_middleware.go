package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "github.com/hdgomez8/portal-uci-back-sub001/lib/utils/auth-utils"
	"github.com/hdgomez8/portal-uci-back-sub001/models"
	apimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api"
)

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operación no disponible"))
		}
		return ctx.Next()
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if stringSub, ok := sub.(string); ok {
			return stringSub
		}
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		if stringName, ok := name.(string); ok {
			return stringName
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.RoleName {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.RoleName(stringRole)
		}
	}
	return ""
}
