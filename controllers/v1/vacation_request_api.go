package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hdgomez8/portal-uci-back-sub001/controllers"
	vacationhandler "github.com/hdgomez8/portal-uci-back-sub001/lib/requests/vacation"
	"github.com/hdgomez8/portal-uci-back-sub001/middleware"
	apimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api"
	requestapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/request"
)

type vacationRequestApiController struct {
	controllers.BaseAPIController
}

func InitVacationRequestApiRouters(app *fiber.App) {
	controller := vacationRequestApiController{}
	app.Route("vacation", func(router fiber.Router) {
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
// @Tags Solicitudes de vacaciones
// @Description Creación de una solicitud de vacaciones
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.VacationRequestCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/vacation [post]
func (c *vacationRequestApiController) create(ctx *fiber.Ctx) error {
	var payload requestapimodels.VacationRequestCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.EmployeeID == "" {
		payload.EmployeeID = middleware.GetUserID(ctx)
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := vacationhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error creando la solicitud de vacaciones")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Obtener por ID
// @Tags Solicitudes de vacaciones
// @Description Obtener una solicitud de vacaciones por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.VacationRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/vacation/{id} [get]
func (c *vacationRequestApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := vacationhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando la solicitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Eliminación
// @Tags Solicitudes de vacaciones
// @Description Eliminación de una solicitud de vacaciones
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/vacation/{id} [delete]
func (c *vacationRequestApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = vacationhandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error eliminando la solicitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Listado
// @Tags Solicitudes de vacaciones
// @Description Listado de solicitudes de vacaciones con filtro y paginación
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]requestapimodels.VacationRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/vacation/list [post]
func (c *vacationRequestApiController) list(ctx *fiber.Ctx) error {
	var payload requestapimodels.RequestFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := vacationhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando el listado de solicitudes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Aprobar etapa
// @Tags Solicitudes de vacaciones
// @Description Avanza la solicitud a la siguiente etapa de la cadena de aprobación
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/vacation/{id}/approve [post]
func (c *vacationRequestApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	warning, err := vacationhandler.Instance.Approve(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error aprobando la solicitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponseWithWarning(nil, warning))
}

// @Summary Rechazar
// @Tags Solicitudes de vacaciones
// @Description Rechaza la solicitud con motivo obligatorio
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.DecisionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/vacation/{id}/reject [post]
func (c *vacationRequestApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = vacationhandler.Instance.Reject(id, middleware.GetUserID(ctx), payload.Reason)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error rechazando la solicitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
