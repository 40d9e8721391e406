package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hdgomez8/portal-uci-back-sub001/controllers"
	employeehandler "github.com/hdgomez8/portal-uci-back-sub001/lib/employee"
	"github.com/hdgomez8/portal-uci-back-sub001/middleware"
	apimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api"
	employeeapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/employee"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("employees", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Creación
// @Tags Empleados
// @Description Creación de un empleado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.EmployeeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := employeehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error creando el empleado")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Obtener por ID
// @Tags Empleados
// @Description Obtener un empleado por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := employeehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando el empleado")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Actualización
// @Tags Empleados
// @Description Actualización de un empleado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.EmployeeData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload employeeapimodels.EmployeeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = employeehandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error actualizando el empleado")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Eliminación
// @Tags Empleados
// @Description Eliminación de un empleado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [delete]
func (c *employeeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = employeehandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error eliminando el empleado")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Listado
// @Tags Empleados
// @Description Listado de empleados con filtro y paginación
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.EmployeeFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/list [post]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := employeehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando el listado de empleados")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
