package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hdgomez8/portal-uci-back-sub001/controllers"
	shiftchangehandler "github.com/hdgomez8/portal-uci-back-sub001/lib/requests/shift-change"
	"github.com/hdgomez8/portal-uci-back-sub001/middleware"
	apimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api"
	requestapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/request"
)

type shiftChangeApiController struct {
	controllers.BaseAPIController
}

// VistoBuenoData - decisión de la firma del reemplazo
type VistoBuenoData struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

func InitShiftChangeApiRouters(app *fiber.App) {
	controller := shiftChangeApiController{}
	app.Route("shift_change", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Post("approve", controller.approve)
			idRoute.Post("reject", controller.reject)
			idRoute.Post("visto_bueno", controller.vistoBueno)
		})
	})
}

// @Summary Creación
// @Tags Solicitudes de cambio de turno
// @Description Creación de una solicitud de cambio de turno
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.ShiftChangeRequestCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/shift_change [post]
func (c *shiftChangeApiController) create(ctx *fiber.Ctx) error {
	var payload requestapimodels.ShiftChangeRequestCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.EmployeeID == "" {
		payload.EmployeeID = middleware.GetUserID(ctx)
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := shiftchangehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error creando la solicitud de cambio de turno")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Obtener por ID
// @Tags Solicitudes de cambio de turno
// @Description Obtener una solicitud de cambio de turno por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.ShiftChangeRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/shift_change/{id} [get]
func (c *shiftChangeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := shiftchangehandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando la solicitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Eliminación
// @Tags Solicitudes de cambio de turno
// @Description Eliminación de una solicitud de cambio de turno
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/shift_change/{id} [delete]
func (c *shiftChangeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = shiftchangehandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error eliminando la solicitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Listado
// @Tags Solicitudes de cambio de turno
// @Description Listado de solicitudes de cambio de turno con filtro y paginación
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]requestapimodels.ShiftChangeRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/shift_change/list [post]
func (c *shiftChangeApiController) list(ctx *fiber.Ctx) error {
	var payload requestapimodels.RequestFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := shiftchangehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando el listado de solicitudes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Aprobar etapa
// @Tags Solicitudes de cambio de turno
// @Description Avanza la solicitud a la siguiente etapa; requiere el visto bueno del reemplazo
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/shift_change/{id}/approve [post]
func (c *shiftChangeApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	warning, err := shiftchangehandler.Instance.Approve(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error aprobando la solicitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponseWithWarning(nil, warning))
}

// @Summary Rechazar
// @Tags Solicitudes de cambio de turno
// @Description Rechaza la solicitud con motivo obligatorio
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.DecisionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/shift_change/{id}/reject [post]
func (c *shiftChangeApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = shiftchangehandler.Instance.Reject(id, middleware.GetUserID(ctx), payload.Reason)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error rechazando la solicitud")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Visto bueno del reemplazo
// @Tags Solicitudes de cambio de turno
// @Description Registra la firma del empleado de reemplazo; el rechazo de la firma rechaza la solicitud
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 VistoBuenoData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/shift_change/{id}/visto_bueno [post]
func (c *shiftChangeApiController) vistoBueno(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload VistoBuenoData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = shiftchangehandler.Instance.VistoBueno(id, middleware.GetUserID(ctx), payload.Approve, payload.Reason)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error registrando el visto bueno")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
