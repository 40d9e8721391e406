package docstorage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	pdfexport "github.com/hdgomez8/portal-uci-back-sub001/lib/export/pdf"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/workflow"
	"github.com/hdgomez8/portal-uci-back-sub001/models"
	s3client "github.com/hdgomez8/portal-uci-back-sub001/s3"
)

// Provider implementa workflow.DocumentGenerator: genera el acta PDF de la
// aprobación final y la sube al bucket, devolviendo la referencia del objeto
type Provider interface {
	Generate(snap workflow.Snapshot) (ref string, err error)
	GetDocument(ref string) (body []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) Generate(snap workflow.Snapshot) (ref string, err error) {
	logger := log.WithField("rec_id", snap.ID)
	data := models.ApprovalDocData{
		RequestID:    snap.ID,
		RequestKind:  snap.Type.ToHuman(),
		EmployeeName: snap.EmployeeName,
		ApprovedBy:   models.RoleRRHH.ToHuman(),
		ApprovedAt:   time.Now().Format("2006-01-02 15:04"),
		Details:      snap.Details,
	}
	body, err := pdfexport.GenerateApprovalDocument(data)
	if err != nil {
		return "", err
	}
	ref = fmt.Sprintf("actas/%v/%v.pdf", snap.Type, uuid.New().String())
	err = s3client.PutObject(context.Background(), ref, body, "application/pdf")
	if err != nil {
		return "", err
	}
	logger.
		WithField("object", ref).
		Info("acta de aprobación generada")
	return ref, nil
}

func (i impl) GetDocument(ref string) ([]byte, error) {
	return s3client.GetObject(context.Background(), ref)
}
