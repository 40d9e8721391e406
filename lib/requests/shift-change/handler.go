package shiftchangehandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/hdgomez8/portal-uci-back-sub001/db"
	docstorage "github.com/hdgomez8/portal-uci-back-sub001/lib/doc-storage"
	employeehandler "github.com/hdgomez8/portal-uci-back-sub001/lib/employee"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/notify"
	shiftchangestore "github.com/hdgomez8/portal-uci-back-sub001/lib/requests/shift-change/store"
	initchecker "github.com/hdgomez8/portal-uci-back-sub001/lib/utils/init-checker"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/workflow"
	"github.com/hdgomez8/portal-uci-back-sub001/models"
	requestapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/request"
	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type Provider interface {
	Create(data requestapimodels.ShiftChangeRequestCreateData) (id string, err error)
	Get(id string) (item requestapimodels.ShiftChangeRequestView, err error)
	List(filter requestapimodels.RequestFilter) (list []requestapimodels.ShiftChangeRequestView, rowCount int64, err error)
	Delete(id string) error
	Approve(id, reviewerID string) (warning string, err error)
	Reject(id, reviewerID, reason string) error
	VistoBueno(id, callerID string, approve bool, reason string) error
	Stats(employeeID string) (list []requestapimodels.StatusCount, err error)
}

var Instance Provider

func NewHandler() {
	store := shiftchangestore.NewInstance(db.DB)
	instance := impl{
		store: store,
		flow: workflow.New(workflow.TwoStageChain(), storeAdapter{store: store},
			employeehandler.Instance, notify.Instance, docstorage.Instance).
			WithGate(vistoBuenoGate),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employee", employeehandler.Instance,
		"notify", notify.Instance,
		"docStorage", docstorage.Instance,
	)
	Instance = instance
}

// vistoBuenoGate bloquea el avance de la cadena principal mientras el
// reemplazo no haya firmado
func vistoBuenoGate(snap workflow.Snapshot) error {
	if snap.VistoBueno != models.VistoBuenoAprobado {
		return errors.Wrap(workflow.ErrInvalidTransition, "falta el visto bueno del reemplazo")
	}
	return nil
}

type impl struct {
	store shiftchangestore.Provider
	flow  *workflow.Workflow
}

func (i impl) Create(data requestapimodels.ShiftChangeRequestCreateData) (id string, err error) {
	logger := log.WithField("employee_id", data.EmployeeID)
	rec := dbmodels.ShiftChangeRequest{
		EmployeeID:       data.EmployeeID,
		ReplacementID:    data.ReplacementID,
		ShiftDate:        data.ShiftDate,
		ProposedDate:     data.ProposedDate,
		Comment:          data.Comment,
		Status:           models.StatusPendiente,
		VistoBuenoStatus: models.VistoBuenoPendiente,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("error creando la solicitud de cambio de turno")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("solicitud de cambio de turno creada")
	i.notifyCreated(id)
	return id, nil
}

func (i impl) Get(id string) (item requestapimodels.ShiftChangeRequestView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return requestapimodels.ShiftChangeRequestView{}, err
	}
	if rec == nil {
		return requestapimodels.ShiftChangeRequestView{}, workflow.ErrNotFound
	}
	return requestapimodels.ShiftChangeRequestConvert(*rec), nil
}

func (i impl) List(filter requestapimodels.RequestFilter) (list []requestapimodels.ShiftChangeRequestView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]requestapimodels.ShiftChangeRequestView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, requestapimodels.ShiftChangeRequestConvert(rec))
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
		Info("solicitud de cambio de turno eliminada")
	return nil
}

func (i impl) Approve(id, reviewerID string) (warning string, err error) {
	return i.flow.Approve(id, reviewerID)
}

func (i impl) Reject(id, reviewerID, reason string) error {
	return i.flow.Reject(id, reviewerID, reason)
}

// VistoBueno registra la decisión del reemplazo. Solo el reemplazo puede
// firmar, una única vez; el rechazo del visto bueno rechaza también la
// solicitud principal.
func (i impl) VistoBueno(id, callerID string, approve bool, reason string) error {
	logger := log.
		WithField("rec_id", id).
		WithField("caller_id", callerID)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return workflow.ErrNotFound
	}
	if rec.ReplacementID != callerID {
		return errors.Wrap(workflow.ErrUnauthorized, "solo el reemplazo puede dar el visto bueno")
	}
	if rec.Status.IsTerminal() {
		return errors.Wrap(workflow.ErrInvalidTransition, "la solicitud ya está resuelta")
	}
	next := models.VistoBuenoAprobado
	if !approve {
		if reason == "" {
			return errors.Wrap(workflow.ErrValidation, "se requiere el motivo del rechazo del visto bueno")
		}
		next = models.VistoBuenoRechazado
	}
	err = i.store.CASUpdateVistoBueno(id, models.VistoBuenoPendiente, next, time.Now())
	if err != nil {
		if errors.Is(err, workflow.ErrConflict) {
			return errors.Wrap(workflow.ErrInvalidTransition, "el visto bueno ya fue registrado")
		}
		logger.WithError(err).Error("error registrando el visto bueno")
		return err
	}
	logger.
		WithField("visto_bueno", next).
		Info("visto bueno registrado")
	if approve {
		return nil
	}
	return i.cascadeVistoBuenoRejection(id, reason)
}

// cascadeVistoBuenoRejection rechaza la solicitud principal cuando el
// reemplazo rechazó la firma
func (i impl) cascadeVistoBuenoRejection(id, reason string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.CASUpdateStatus(id, models.StatusPendiente, models.StatusRechazado, "", time.Now(), reason)
	if err != nil && !errors.Is(err, workflow.ErrConflict) {
		logger.WithError(err).Error("error rechazando la solicitud tras el visto bueno negativo")
		return err
	}
	logger.Info("solicitud rechazada por visto bueno negativo")
	snap, snapErr := storeAdapter{store: i.store}.GetByID(id)
	if snapErr == nil && snap != nil {
		notify.Instance.Notify(snap.EmployeeEmail, models.TemplateVistoBuenoRejected, *snap)
	}
	return nil
}

func (i impl) Stats(employeeID string) (list []requestapimodels.StatusCount, err error) {
	return i.store.Stats(employeeID)
}

// notifyCreated avisa al solicitante y pide la firma al reemplazo
func (i impl) notifyCreated(id string) {
	snap, err := storeAdapter{store: i.store}.GetByID(id)
	if err != nil || snap == nil {
		return
	}
	notify.Instance.Notify(snap.EmployeeEmail, models.TemplateRequestCreated, *snap)
	notify.Instance.Notify(snap.ReplacementEmail, models.TemplateVistoBuenoRequested, *snap)
}

type storeAdapter struct {
	store shiftchangestore.Provider
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
		Type:            models.RequestTypeShiftChange,
		Status:          rec.Status,
		EmployeeID:      rec.EmployeeID,
		ReplacementID:   rec.ReplacementID,
		VistoBueno:      rec.VistoBuenoStatus,
		RejectionReason: rec.RejectionReason,
		Details: map[string]string{
			"Fecha del turno": rec.ShiftDate.Format("02.01.2006"),
			"Fecha propuesta": rec.ProposedDate.Format("02.01.2006"),
		},
	}
	if rec.Employee != nil {
		snap.EmployeeName = rec.Employee.GetFullName()
		snap.EmployeeEmail = rec.Employee.Email
	}
	if rec.Replacement != nil {
		snap.ReplacementEmail = rec.Replacement.Email
		snap.Details["Reemplazo"] = rec.Replacement.GetFullName()
	}
	return &snap, nil
}

func (s storeAdapter) CASUpdateStatus(id string, expected, next models.RequestStatus, reviewerID string, reviewedAt time.Time, rejectionReason string) error {
	return s.store.CASUpdateStatus(id, expected, next, reviewerID, reviewedAt, rejectionReason)
}

func (s storeAdapter) SetApprovalDocument(id, ref string) error {
	return s.store.Update(id, map[string]interface{}{"approval_document": ref})
}
