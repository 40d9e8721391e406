package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hdgomez8/portal-uci-back-sub001/controllers"
	authhandler "github.com/hdgomez8/portal-uci-back-sub001/lib/auth"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/rbac"
	"github.com/hdgomez8/portal-uci-back-sub001/middleware"
	apimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api"
	authapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("refresh-token", controller.refreshToken)
		router.Use(middleware.AuthorizationRequired())
		router.Get("me", controller.me)
		router.Get("permissions", controller.permissions)
	})
}

// @Summary Autenticación del empleado
// @Tags Autenticación
// @Description Autenticación del empleado
// @Param	body				body		authapimodels.LoginData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Renovar el JWT
// @Tags Autenticación
// @Description Renovar el JWT
// @Param	body				body		authapimodels.RefreshData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh-token [post]
func (c *authApiController) refreshToken(ctx *fiber.Ctx) error {
	var payload authapimodels.RefreshData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Refresh(payload)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Información del empleado autenticado
// @Tags Autenticación
// @Description Información del empleado autenticado
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := authhandler.Instance.Me(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Permisos del rol del empleado autenticado
// @Tags Autenticación
// @Description Permisos del rol del empleado autenticado
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/permissions [get]
func (c *authApiController) permissions(ctx *fiber.Ctx) error {
	resp := rbac.Instance.GetPermissions(middleware.GetUserRole(ctx))
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
