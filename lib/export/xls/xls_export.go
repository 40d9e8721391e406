package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	requestapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/request"
)

type Provider interface {
	ExportRequestList(list []requestapimodels.ReportRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var requestHeaders = []string{"Solicitud", "Tipo", "Empleado", "Estado", "Revisada por", "Fecha de revisión", "Motivo de rechazo", "Detalle", "Fecha de creación"}

func (i impl) ExportRequestList(list []requestapimodels.ReportRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error cerrando el archivo")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, requestHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "error generando el encabezado del xlsx")
	}
	if len(list) != 0 {
		row, err = writeRequestData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "error generando la tabla de datos del xlsx")
		}
	}
	f.SetSheetName(sheet, "Solicitudes")
	return f.WriteToBuffer()
}

func writeRequestData(f *excelize.File, sheet string, list []requestapimodels.ReportRow, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(requestHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Solicitud"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.ID); err != nil {
			return row, err
		}

		// "Tipo"
		col++
		if err := writeColumn(f, sheet, col, row, item.KindName); err != nil {
			return row, err
		}

		// "Empleado"
		col++
		if err := writeColumn(f, sheet, col, row, item.EmployeeName); err != nil {
			return row, err
		}

		// "Estado"
		col++
		if err := writeColumn(f, sheet, col, row, item.StatusName); err != nil {
			return row, err
		}

		// "Revisada por"
		col++
		if err := writeColumn(f, sheet, col, row, item.ReviewedBy); err != nil {
			return row, err
		}

		// "Fecha de revisión"
		col++
		if item.ReviewedAt != nil && !item.ReviewedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.ReviewedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Motivo de rechazo"
		col++
		if err := writeColumn(f, sheet, col, row, item.RejectionReason); err != nil {
			return row, err
		}

		// "Detalle"
		col++
		if err := writeColumn(f, sheet, col, row, item.Detail); err != nil {
			return row, err
		}

		// "Fecha de creación"
		col++
		if !item.CreatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
