package notify

import (
	log "github.com/sirupsen/logrus"

	"github.com/hdgomez8/portal-uci-back-sub001/lib/smtp"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/workflow"
	"github.com/hdgomez8/portal-uci-back-sub001/models"
)

// Provider - despacho de correos best-effort sobre el flujo de aprobación.
// Una falla de envío se registra y no se propaga como error de la transición.
type Provider interface {
	Notify(recipient string, kind models.TemplateKind, snap workflow.Snapshot)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		mailer: smtp.Instance,
	}
}

type impl struct {
	mailer smtp.Provider
}

func (i impl) Notify(recipient string, kind models.TemplateKind, snap workflow.Snapshot) {
	if recipient == "" {
		return
	}
	logger := log.
		WithField("rec_id", snap.ID).
		WithField("recipient", recipient).
		WithField("template", kind)
	data := models.NotifyTemplateData{
		EmployeeName:    snap.EmployeeName,
		RequestKind:     snap.Type.ToHuman(),
		RequestStatus:   snap.Status.ToHuman(),
		RejectionReason: snap.RejectionReason,
		Details:         snap.Details,
	}
	subject, body, err := buildMessage(kind, data)
	if err != nil {
		logger.WithError(err).Error("error armando el correo de notificación")
		return
	}
	go func() {
		if sendErr := i.mailer.SendEMail(recipient, subject, body); sendErr != nil {
			logger.WithError(sendErr).Warn("no se pudo enviar la notificación")
		}
	}()
}
