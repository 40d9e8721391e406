package dict

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hdgomez8/portal-uci-back-sub001/controllers"
	areaprovider "github.com/hdgomez8/portal-uci-back-sub001/lib/dicts/area"
	apimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api"
	dictapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/dict"
)

type areaApiController struct {
	controllers.BaseAPIController
}

func InitAreaDictApiRouters(app *fiber.App) {
	controller := areaApiController{}
	app.Route("areas", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Creación
// @Tags Áreas
// @Description Creación de un área dentro de un departamento
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.AreaData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/areas [post]
func (c *areaApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.AreaData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := areaprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error creando el área")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Obtener por ID
// @Tags Áreas
// @Description Obtener un área por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.AreaView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/areas/{id} [get]
func (c *areaApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := areaprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando el área")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Listado
// @Tags Áreas
// @Description Listado de áreas, opcionalmente filtrado por departamento
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   department_id		query   string  false	"department ID"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.AreaView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/areas/list [get]
func (c *areaApiController) list(ctx *fiber.Ctx) error {
	resp, err := areaprovider.Instance.List(ctx.Query("department_id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando el listado de áreas")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Actualización
// @Tags Áreas
// @Description Actualización de un área
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.AreaData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/areas/{id} [put]
func (c *areaApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload dictapimodels.AreaData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = areaprovider.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error actualizando el área")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Eliminación
// @Tags Áreas
// @Description Eliminación de un área
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/areas/{id} [delete]
func (c *areaApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = areaprovider.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error eliminando el área")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
