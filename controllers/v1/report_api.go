package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/hdgomez8/portal-uci-back-sub001/controllers"
	xlsexport "github.com/hdgomez8/portal-uci-back-sub001/lib/export/xls"
	severancehandler "github.com/hdgomez8/portal-uci-back-sub001/lib/requests/severance"
	shiftchangehandler "github.com/hdgomez8/portal-uci-back-sub001/lib/requests/shift-change"
	vacationhandler "github.com/hdgomez8/portal-uci-back-sub001/lib/requests/vacation"
	"github.com/hdgomez8/portal-uci-back-sub001/models"
	apimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api"
	requestapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/request"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	app.Route("requests", func(router fiber.Router) {
		router.Get("stats", controller.stats)
		router.Post("export", controller.export)
	})
}

// KindStats - conteos por estado de un tipo de solicitud
type KindStats struct {
	Kind     models.RequestType             `json:"kind"`
	KindName string                         `json:"kind_name"`
	Counts   []requestapimodels.StatusCount `json:"counts"`
}

// @Summary Tablero de solicitudes
// @Tags Reportes
// @Description Conteos por estado para cada tipo de solicitud, opcionalmente por empleado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id 		query   string  false	"employee ID"
// @Success 200 {object} apimodels.Response{data=[]KindStats}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/requests/stats [get]
func (c *reportApiController) stats(ctx *fiber.Ctx) error {
	employeeID := ctx.Query("employee_id")

	vacation, err := vacationhandler.Instance.Stats(employeeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando el tablero de vacaciones")
	}
	shiftChange, err := shiftchangehandler.Instance.Stats(employeeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando el tablero de cambios de turno")
	}
	severance, err := severancehandler.Instance.Stats(employeeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando el tablero de liquidaciones")
	}

	resp := []KindStats{
		{Kind: models.RequestTypeVacation, KindName: models.RequestTypeVacation.ToHuman(), Counts: vacation},
		{Kind: models.RequestTypeShiftChange, KindName: models.RequestTypeShiftChange.ToHuman(), Counts: shiftChange},
		{Kind: models.RequestTypeSeverance, KindName: models.RequestTypeSeverance.ToHuman(), Counts: severance},
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Exportar solicitudes
// @Tags Reportes
// @Description Exporta a xlsx las solicitudes de todos los tipos que cumplen el filtro
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestFilter	true	"request body"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/requests/export [post]
func (c *reportApiController) export(ctx *fiber.Ctx) error {
	var payload requestapimodels.RequestFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	rows, err := collectReportRows(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error consultando las solicitudes del reporte")
	}

	buffer, err := xlsexport.Instance.ExportRequestList(rows)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error generando el archivo del reporte")
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="solicitudes.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buffer.Bytes())
}

func collectReportRows(filter requestapimodels.RequestFilter) ([]requestapimodels.ReportRow, error) {
	vacation, _, err := vacationhandler.Instance.List(filter)
	if err != nil {
		return nil, err
	}
	shiftChange, _, err := shiftchangehandler.Instance.List(filter)
	if err != nil {
		return nil, err
	}
	severance, _, err := severancehandler.Instance.List(filter)
	if err != nil {
		return nil, err
	}

	rows := make([]requestapimodels.ReportRow, 0, len(vacation)+len(shiftChange)+len(severance))
	for _, item := range vacation {
		row := baseReportRow(item.RequestView, models.RequestTypeVacation)
		row.Detail = fmt.Sprintf("%v - %v (%v días)",
			item.StartDate.Format("02.01.2006"), item.EndDate.Format("02.01.2006"), item.Days)
		rows = append(rows, row)
	}
	for _, item := range shiftChange {
		row := baseReportRow(item.RequestView, models.RequestTypeShiftChange)
		row.Detail = fmt.Sprintf("turno %v por %v, reemplazo: %v",
			item.ShiftDate.Format("02.01.2006"), item.ProposedDate.Format("02.01.2006"), item.ReplacementName)
		rows = append(rows, row)
	}
	for _, item := range severance {
		row := baseReportRow(item.RequestView, models.RequestTypeSeverance)
		row.Detail = fmt.Sprintf("último día laborado %v", item.LastWorkingDay.Format("02.01.2006"))
		rows = append(rows, row)
	}
	return rows, nil
}

func baseReportRow(view requestapimodels.RequestView, kind models.RequestType) requestapimodels.ReportRow {
	return requestapimodels.ReportRow{
		ID:              view.ID,
		KindName:        kind.ToHuman(),
		EmployeeName:    view.EmployeeName,
		StatusName:      view.StatusName,
		ReviewedBy:      view.ReviewedBy,
		ReviewedAt:      view.ReviewedAt,
		RejectionReason: view.RejectionReason,
		CreatedAt:       view.CreatedAt,
	}
}
