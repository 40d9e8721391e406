package notify

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"

	"github.com/hdgomez8/portal-uci-back-sub001/models"
)

var templateSubjects = map[models.TemplateKind]string{
	models.TemplateRequestCreated:      "Nueva solicitud registrada",
	models.TemplateStageApproved:       "Su solicitud avanzó de etapa",
	models.TemplateNextReviewer:        "Solicitud pendiente de revisión",
	models.TemplateRequestApproved:     "Solicitud aprobada",
	models.TemplateRequestRejected:     "Solicitud rechazada",
	models.TemplateVistoBuenoRequested: "Visto bueno pendiente",
	models.TemplateVistoBuenoRejected:  "Visto bueno rechazado",
}

var templateBodies = map[models.TemplateKind]string{
	models.TemplateRequestCreated: `<p>Hola,</p>
<p>Se registró una {{.RequestKind}} a nombre de <b>{{.EmployeeName}}</b>.</p>
<p>La solicitud quedó en estado <b>{{.RequestStatus}}</b> a la espera de revisión.</p>`,
	models.TemplateStageApproved: `<p>Hola {{.EmployeeName}},</p>
<p>Su {{.RequestKind}} fue aprobada en la etapa actual y pasó al estado <b>{{.RequestStatus}}</b>.</p>`,
	models.TemplateNextReviewer: `<p>Hola,</p>
<p>La {{.RequestKind}} de <b>{{.EmployeeName}}</b> está en estado <b>{{.RequestStatus}}</b> y requiere su revisión.</p>`,
	models.TemplateRequestApproved: `<p>Hola {{.EmployeeName}},</p>
<p>Su {{.RequestKind}} fue <b>aprobada</b>. El acta de aprobación queda disponible en el portal.</p>`,
	models.TemplateRequestRejected: `<p>Hola {{.EmployeeName}},</p>
<p>Su {{.RequestKind}} fue <b>rechazada</b>.</p>
<p>Motivo: {{.RejectionReason}}</p>`,
	models.TemplateVistoBuenoRequested: `<p>Hola,</p>
<p><b>{{.EmployeeName}}</b> lo designó como reemplazo en una {{.RequestKind}}.</p>
<p>La solicitud requiere su visto bueno para continuar.</p>`,
	models.TemplateVistoBuenoRejected: `<p>Hola {{.EmployeeName}},</p>
<p>El reemplazo designado rechazó el visto bueno de su {{.RequestKind}}.</p>
<p>Motivo: {{.RejectionReason}}</p>
<p>La solicitud quedó rechazada.</p>`,
}

func buildMessage(kind models.TemplateKind, data models.NotifyTemplateData) (subject, body string, err error) {
	subject, ok := templateSubjects[kind]
	if !ok {
		return "", "", errors.Errorf("plantilla de correo desconocida: %v", kind)
	}
	rawBody, ok := templateBodies[kind]
	if !ok {
		return "", "", errors.Errorf("plantilla de correo desconocida: %v", kind)
	}
	tpl, err := template.New(string(kind)).Parse(rawBody)
	if err != nil {
		return "", "", err
	}
	buf := new(bytes.Buffer)
	err = tpl.Execute(buf, data)
	if err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
