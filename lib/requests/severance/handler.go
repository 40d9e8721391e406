package severancehandler

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hdgomez8/portal-uci-back-sub001/db"
	docstorage "github.com/hdgomez8/portal-uci-back-sub001/lib/doc-storage"
	employeehandler "github.com/hdgomez8/portal-uci-back-sub001/lib/employee"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/notify"
	severancestore "github.com/hdgomez8/portal-uci-back-sub001/lib/requests/severance/store"
	initchecker "github.com/hdgomez8/portal-uci-back-sub001/lib/utils/init-checker"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/workflow"
	"github.com/hdgomez8/portal-uci-back-sub001/models"
	requestapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/request"
	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type Provider interface {
	Create(data requestapimodels.SeveranceRequestCreateData) (id string, err error)
	Get(id string) (item requestapimodels.SeveranceRequestView, err error)
	List(filter requestapimodels.RequestFilter) (list []requestapimodels.SeveranceRequestView, rowCount int64, err error)
	Delete(id string) error
	Approve(id, reviewerID string) (warning string, err error)
	Reject(id, reviewerID, reason string) error
	Stats(employeeID string) (list []requestapimodels.StatusCount, err error)
}

var Instance Provider

func NewHandler() {
	store := severancestore.NewInstance(db.DB)
	instance := impl{
		store: store,
		flow: workflow.New(workflow.TwoStageChain(), storeAdapter{store: store},
			employeehandler.Instance, notify.Instance, docstorage.Instance),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employee", employeehandler.Instance,
		"notify", notify.Instance,
		"docStorage", docstorage.Instance,
	)
	Instance = instance
}

type impl struct {
	store severancestore.Provider
	flow  *workflow.Workflow
}

func (i impl) Create(data requestapimodels.SeveranceRequestCreateData) (id string, err error) {
	logger := log.WithField("employee_id", data.EmployeeID)
	rec := dbmodels.SeveranceRequest{
		EmployeeID:     data.EmployeeID,
		LastWorkingDay: data.LastWorkingDay,
		Reason:         data.Reason,
		Status:         models.StatusPendiente,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("error creando la solicitud de liquidación")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("solicitud de liquidación creada")
	i.notifyCreated(id)
	return id, nil
}

func (i impl) Get(id string) (item requestapimodels.SeveranceRequestView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return requestapimodels.SeveranceRequestView{}, err
	}
	if rec == nil {
		return requestapimodels.SeveranceRequestView{}, workflow.ErrNotFound
	}
	return requestapimodels.SeveranceRequestConvert(*rec), nil
}

func (i impl) List(filter requestapimodels.RequestFilter) (list []requestapimodels.SeveranceRequestView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]requestapimodels.SeveranceRequestView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, requestapimodels.SeveranceRequestConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return workflow.ErrNotFound
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("solicitud de liquidación eliminada")
	return nil
}

func (i impl) Approve(id, reviewerID string) (warning string, err error) {
	return i.flow.Approve(id, reviewerID)
}

func (i impl) Reject(id, reviewerID, reason string) error {
	return i.flow.Reject(id, reviewerID, reason)
}

func (i impl) Stats(employeeID string) (list []requestapimodels.StatusCount, err error) {
	return i.store.Stats(employeeID)
}

func (i impl) notifyCreated(id string) {
	snap, err := storeAdapter{store: i.store}.GetByID(id)
	if err != nil || snap == nil {
		return
	}
	notify.Instance.Notify(snap.EmployeeEmail, models.TemplateRequestCreated, *snap)
	emails, err := employeehandler.Instance.EmailsByRole(models.RoleJefeArea)
	if err != nil {
		log.WithError(err).
			WithField("rec_id", id).
			Warn("no se pudo resolver los revisores de la primera etapa")
		return
	}
	for _, email := range emails {
		notify.Instance.Notify(email, models.TemplateNextReviewer, *snap)
	}
}

type storeAdapter struct {
	store severancestore.Provider
}

func (s storeAdapter) GetByID(id string) (*workflow.Snapshot, error) {
	rec, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	snap := workflow.Snapshot{
		ID:              rec.ID,
		Type:            models.RequestTypeSeverance,
		Status:          rec.Status,
		EmployeeID:      rec.EmployeeID,
		RejectionReason: rec.RejectionReason,
		Details: map[string]string{
			"Último día laborado": rec.LastWorkingDay.Format("02.01.2006"),
		},
	}
	if rec.Reason != "" {
		snap.Details["Motivo"] = rec.Reason
	}
	if rec.Employee != nil {
		snap.EmployeeName = rec.Employee.GetFullName()
		snap.EmployeeEmail = rec.Employee.Email
	}
	return &snap, nil
}

func (s storeAdapter) CASUpdateStatus(id string, expected, next models.RequestStatus, reviewerID string, reviewedAt time.Time, rejectionReason string) error {
	return s.store.CASUpdateStatus(id, expected, next, reviewerID, reviewedAt, rejectionReason)
}

func (s storeAdapter) SetApprovalDocument(id, ref string) error {
	return s.store.Update(id, map[string]interface{}{"approval_document": ref})
}
