package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/hdgomez8/portal-uci-back-sub001/controllers"
	roleshandler "github.com/hdgomez8/portal-uci-back-sub001/lib/roles"
	"github.com/hdgomez8/portal-uci-back-sub001/middleware"
	apimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api"
	dictapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/dict"
)

type rolesApiController struct {
	controllers.BaseAPIController
}

func InitRolesApiRouters(app *fiber.App) {
	controller := rolesApiController{}
	app.Route("roles", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("list", controller.list)
		router.Get("permissions/list", controller.listPermissions)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("permissions", controller.setPermissions)
			idRoute.Delete("permissions/:permissionId", controller.removePermission)
		})
	})
}

// @Summary Creación
// @Tags Roles
// @Description Creación de un rol
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.RoleData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles [post]
func (c *rolesApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.RoleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := roleshandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error creando el rol")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Obtener por ID
// @Tags Roles
// @Description Obtener un rol con sus permisos
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.RoleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/{id} [get]
func (c *rolesApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := roleshandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando el rol")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Listado
// @Tags Roles
// @Description Listado de roles con sus permisos
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.RoleView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/list [get]
func (c *rolesApiController) list(ctx *fiber.Ctx) error {
	resp, err := roleshandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando el listado de roles")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Actualización
// @Tags Roles
// @Description Actualización de un rol
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.RoleData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/{id} [put]
func (c *rolesApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload dictapimodels.RoleData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = roleshandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error actualizando el rol")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Eliminación
// @Tags Roles
// @Description Eliminación de un rol
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/{id} [delete]
func (c *rolesApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = roleshandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error eliminando el rol")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Catálogo de permisos
// @Tags Roles
// @Description Listado del catálogo de permisos asignables
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.PermissionView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/permissions/list [get]
func (c *rolesApiController) listPermissions(ctx *fiber.Ctx) error {
	resp, err := roleshandler.Instance.ListPermissions()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando el catálogo de permisos")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Asignar permisos
// @Tags Roles
// @Description Reemplaza el conjunto de permisos del rol
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.RolePermissionsData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/{id}/permissions [put]
func (c *rolesApiController) setPermissions(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload dictapimodels.RolePermissionsData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = roleshandler.Instance.SetPermissions(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error asignando los permisos del rol")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Quitar permiso
// @Tags Roles
// @Description Quita un permiso del rol
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   permissionId		path    string  				    	true         "permission ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/{id}/permissions/{permissionId} [delete]
func (c *rolesApiController) removePermission(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	permissionID := ctx.Params("permissionId")
	if permissionID == "" {
		err = errors.New("se requiere el identificador del permiso")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = roleshandler.Instance.RemovePermission(id, permissionID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error quitando el permiso del rol")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
