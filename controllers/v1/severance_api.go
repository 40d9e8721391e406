package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hdgomez8/portal-uci-back-sub001/controllers"
	severancehandler "github.com/hdgomez8/portal-uci-back-sub001/lib/requests/severance"
	"github.com/hdgomez8/portal-uci-back-sub001/middleware"
	apimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api"
	requestapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/request"
)

type severanceApiController struct {
	controllers.BaseAPIController
}

func InitSeveranceApiRouters(app *fiber.App) {
	controller := severanceApiController{}
	app.Route("severance", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Post("approve", controller.approve)
			idRoute.Post("reject", controller.reject)
		})
	})
}

// @Summary Creación
// @Tags Solicitudes de liquidación
// @Description Creación de una solicitud de liquidación
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.SeveranceRequestCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/severance [post]
func (c *severanceApiController) create(ctx *fiber.Ctx) error {
	var payload requestapimodels.SeveranceRequestCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.EmployeeID == "" {
		payload.EmployeeID = middleware.GetUserID(ctx)
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := severancehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error creando la solicitud de liquidación")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Obtener por ID
// @Tags Solicitudes de liquidación
// @Description Obtener una solicitud de liquidación por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.SeveranceRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/severance/{id} [get]
func (c *severanceApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := severancehandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando la solicitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Eliminación
// @Tags Solicitudes de liquidación
// @Description Eliminación de una solicitud de liquidación
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/severance/{id} [delete]
func (c *severanceApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = severancehandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error eliminando la solicitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Listado
// @Tags Solicitudes de liquidación
// @Description Listado de solicitudes de liquidación con filtro y paginación
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]requestapimodels.SeveranceRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/severance/list [post]
func (c *severanceApiController) list(ctx *fiber.Ctx) error {
	var payload requestapimodels.RequestFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := severancehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando el listado de solicitudes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Aprobar etapa
// @Tags Solicitudes de liquidación
// @Description Avanza la solicitud a la siguiente etapa de la cadena de aprobación
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/severance/{id}/approve [post]
func (c *severanceApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	warning, err := severancehandler.Instance.Approve(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error aprobando la solicitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponseWithWarning(nil, warning))
}

// @Summary Rechazar
// @Tags Solicitudes de liquidación
// @Description Rechaza la solicitud con motivo obligatorio
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.DecisionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/severance/{id}/reject [post]
func (c *severanceApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = severancehandler.Instance.Reject(id, middleware.GetUserID(ctx), payload.Reason)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error rechazando la solicitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
