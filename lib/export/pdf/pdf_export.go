package pdfexport

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"github.com/hdgomez8/portal-uci-back-sub001/models"
)

// GenerateApprovalDocument arma el acta PDF de una solicitud aprobada
func GenerateApprovalDocument(data models.ApprovalDocData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateApprovalDocument panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 12, "Acta de aprobación", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(4)

	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	htmlStr := fmt.Sprintf("<b>%v</b><br>", data.RequestKind) +
		fmt.Sprintf("Solicitud: %v<br>", data.RequestID) +
		fmt.Sprintf("Empleado: %v<br>", data.EmployeeName) +
		fmt.Sprintf("Aprobada por: %v<br>", data.ApprovedBy) +
		fmt.Sprintf("Fecha de aprobación: %v<br>", data.ApprovedAt)
	html.Write(lineHt, htmlStr)

	if len(data.Details) > 0 {
		pdf.Ln(6)
		keys := make([]string, 0, len(data.Details))
		for key := range data.Details {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		detailStr := ""
		for _, key := range keys {
			detailStr += fmt.Sprintf("%v: %v<br>", key, data.Details[key])
		}
		html.Write(lineHt, detailStr)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
