package vacationhandler

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hdgomez8/portal-uci-back-sub001/db"
	docstorage "github.com/hdgomez8/portal-uci-back-sub001/lib/doc-storage"
	employeehandler "github.com/hdgomez8/portal-uci-back-sub001/lib/employee"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/notify"
	vacationstore "github.com/hdgomez8/portal-uci-back-sub001/lib/requests/vacation/store"
	initchecker "github.com/hdgomez8/portal-uci-back-sub001/lib/utils/init-checker"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/workflow"
	"github.com/hdgomez8/portal-uci-back-sub001/models"
	requestapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/request"
	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type Provider interface {
	Create(data requestapimodels.VacationRequestCreateData) (id string, err error)
	Get(id string) (item requestapimodels.VacationRequestView, err error)
	List(filter requestapimodels.RequestFilter) (list []requestapimodels.VacationRequestView, rowCount int64, err error)
	Delete(id string) error
	Approve(id, reviewerID string) (warning string, err error)
	Reject(id, reviewerID, reason string) error
	Stats(employeeID string) (list []requestapimodels.StatusCount, err error)
}

var Instance Provider

func NewHandler() {
	store := vacationstore.NewInstance(db.DB)
	instance := impl{
		store: store,
		flow: workflow.New(workflow.VacationChain(), storeAdapter{store: store},
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
	store vacationstore.Provider
	flow  *workflow.Workflow
}

func (i impl) Create(data requestapimodels.VacationRequestCreateData) (id string, err error) {
	logger := log.WithField("employee_id", data.EmployeeID)
	rec := dbmodels.VacationRequest{
		EmployeeID: data.EmployeeID,
		StartDate:  data.StartDate,
		EndDate:    data.EndDate,
		Days:       countDays(data.StartDate, data.EndDate),
		Comment:    data.Comment,
		Status:     models.StatusPendiente,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("error creando la solicitud de vacaciones")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("solicitud de vacaciones creada")
	i.notifyCreated(id)
	return id, nil
}

func (i impl) Get(id string) (item requestapimodels.VacationRequestView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return requestapimodels.VacationRequestView{}, err
	}
	if rec == nil {
		return requestapimodels.VacationRequestView{}, workflow.ErrNotFound
	}
	return requestapimodels.VacationRequestConvert(*rec), nil
}

func (i impl) List(filter requestapimodels.RequestFilter) (list []requestapimodels.VacationRequestView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]requestapimodels.VacationRequestView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, requestapimodels.VacationRequestConvert(rec))
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
		Info("solicitud de vacaciones eliminada")
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

// notifyCreated avisa al solicitante y a los revisores de la primera etapa
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

func countDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// storeAdapter proyecta el registro al Snapshot que consume el flujo
type storeAdapter struct {
	store vacationstore.Provider
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
		Type:            models.RequestTypeVacation,
		Status:          rec.Status,
		EmployeeID:      rec.EmployeeID,
		RejectionReason: rec.RejectionReason,
		Details: map[string]string{
			"Fecha de inicio": rec.StartDate.Format("02.01.2006"),
			"Fecha de fin":    rec.EndDate.Format("02.01.2006"),
			"Días":            fmt.Sprintf("%d", rec.Days),
		},
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
