package workflow

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/hdgomez8/portal-uci-back-sub001/models"
)

// Snapshot - vista inmutable de una solicitud usada por el flujo y sus
// colaboradores (notificador, generador de actas)
type Snapshot struct {
	ID               string
	Type             models.RequestType
	Status           models.RequestStatus
	EmployeeID       string
	EmployeeName     string
	EmployeeEmail    string
	ReplacementID    string
	ReplacementEmail string
	VistoBueno       models.VistoBuenoStatus
	RejectionReason  string
	Details          map[string]string
}

// Store - persistencia de la solicitud. CASUpdateStatus solo aplica el cambio
// si el estado actual en la base coincide con expected; devuelve ErrConflict en
// caso contrario. Los registros con borrado lógico no son visibles.
type Store interface {
	GetByID(id string) (*Snapshot, error)
	CASUpdateStatus(id string, expected, next models.RequestStatus, reviewerID string, reviewedAt time.Time, rejectionReason string) error
	SetApprovalDocument(id, ref string) error
}

// RoleResolver - resuelve los roles del usuario que ejecuta la transición y
// los correos de los revisores de una etapa
type RoleResolver interface {
	Resolve(userID string) ([]models.RoleName, error)
	EmailsByRole(role models.RoleName) ([]string, error)
}

// Notifier - envío de correos best-effort; las fallas se registran y nunca
// revierten la transición
type Notifier interface {
	Notify(recipient string, kind models.TemplateKind, snap Snapshot)
}

// DocumentGenerator - genera el acta de aprobación al llegar al estado final
type DocumentGenerator interface {
	Generate(snap Snapshot) (ref string, err error)
}

// Gate - precondición adicional para avanzar desde un estado (visto bueno en
// cambios de turno). Devuelve un error de la taxonomía si bloquea el avance.
type Gate func(snap Snapshot) error

type Workflow struct {
	chain    Chain
	store    Store
	roles    RoleResolver
	notifier Notifier
	docGen   DocumentGenerator
	gate     Gate
}

func New(chain Chain, store Store, roles RoleResolver, notifier Notifier, docGen DocumentGenerator) *Workflow {
	return &Workflow{
		chain:    chain,
		store:    store,
		roles:    roles,
		notifier: notifier,
		docGen:   docGen,
	}
}

// WithGate agrega una precondición de avance evaluada antes de autorizar
func (w *Workflow) WithGate(gate Gate) *Workflow {
	w.gate = gate
	return w
}

// Approve avanza la solicitud a la siguiente etapa de la cadena. El valor
// warning se llena cuando un efecto secundario best-effort falló sin afectar la
// transición ya confirmada.
func (w *Workflow) Approve(id, reviewerID string) (warning string, err error) {
	logger := log.
		WithField("rec_id", id).
		WithField("reviewer_id", reviewerID)
	snap, err := w.getSnapshot(id)
	if err != nil {
		return "", err
	}
	stage, ok := w.chain.StageFrom(snap.Status)
	if !ok {
		return "", errors.Wrapf(ErrInvalidTransition, "la solicitud está en estado %v", snap.Status.ToHuman())
	}
	if w.gate != nil {
		if err = w.gate(*snap); err != nil {
			return "", err
		}
	}
	if err = w.authorize(reviewerID, stage); err != nil {
		return "", err
	}
	now := time.Now()
	err = w.store.CASUpdateStatus(id, snap.Status, stage.To, reviewerID, now, "")
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return "", errors.Wrap(ErrInvalidTransition, err.Error())
		}
		logger.WithError(err).Error("error actualizando el estado de la solicitud")
		return "", err
	}
	snap.Status = stage.To
	logger.
		WithField("new_status", stage.To).
		Info("solicitud avanzada de etapa")

	if stage.To == w.chain.Final() {
		warning = w.onFinalApproval(id, *snap)
		w.notifier.Notify(snap.EmployeeEmail, models.TemplateRequestApproved, *snap)
		return warning, nil
	}
	w.notifier.Notify(snap.EmployeeEmail, models.TemplateStageApproved, *snap)
	w.notifyNextReviewer(stage.To, *snap)
	return "", nil
}

// Reject pasa la solicitud a rechazada desde cualquier estado no terminal.
// Requiere motivo no vacío.
func (w *Workflow) Reject(id, reviewerID, reason string) error {
	logger := log.
		WithField("rec_id", id).
		WithField("reviewer_id", reviewerID)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errors.Wrap(ErrValidation, "se requiere el motivo del rechazo")
	}
	snap, err := w.getSnapshot(id)
	if err != nil {
		return err
	}
	stage, ok := w.chain.StageFrom(snap.Status)
	if !ok {
		return errors.Wrapf(ErrInvalidTransition, "la solicitud está en estado %v", snap.Status.ToHuman())
	}
	if err = w.authorize(reviewerID, stage); err != nil {
		return err
	}
	err = w.store.CASUpdateStatus(id, snap.Status, models.StatusRechazado, reviewerID, time.Now(), reason)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return errors.Wrap(ErrInvalidTransition, err.Error())
		}
		logger.WithError(err).Error("error rechazando la solicitud")
		return err
	}
	snap.Status = models.StatusRechazado
	snap.RejectionReason = reason
	logger.Info("solicitud rechazada")
	w.notifier.Notify(snap.EmployeeEmail, models.TemplateRequestRejected, *snap)
	return nil
}

func (w *Workflow) getSnapshot(id string) (*Snapshot, error) {
	snap, err := w.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("error consultando la solicitud")
		return nil, err
	}
	if snap == nil {
		return nil, ErrNotFound
	}
	return snap, nil
}

func (w *Workflow) authorize(reviewerID string, stage Stage) error {
	roles, err := w.roles.Resolve(reviewerID)
	if err != nil {
		return err
	}
	for _, role := range roles {
		if role == stage.Reviewer {
			return nil
		}
	}
	return errors.Wrapf(ErrUnauthorized, "la etapa actual requiere el rol %v", stage.Reviewer.ToHuman())
}

// onFinalApproval genera el acta y la asocia a la solicitud; una falla aquí no
// revierte la aprobación, solo se reporta como advertencia
func (w *Workflow) onFinalApproval(id string, snap Snapshot) (warning string) {
	logger := log.WithField("rec_id", id)
	ref, err := w.docGen.Generate(snap)
	if err != nil {
		logger.WithError(err).Error("error generando el acta de aprobación")
		return "la solicitud fue aprobada pero no se pudo generar el acta"
	}
	if err = w.store.SetApprovalDocument(id, ref); err != nil {
		logger.WithError(err).Error("error asociando el acta a la solicitud")
		return "la solicitud fue aprobada pero no se pudo asociar el acta"
	}
	return ""
}

func (w *Workflow) notifyNextReviewer(status models.RequestStatus, snap Snapshot) {
	nextStage, ok := w.chain.StageFrom(status)
	if !ok {
		return
	}
	emails, err := w.roles.EmailsByRole(nextStage.Reviewer)
	if err != nil {
		log.WithError(err).
			WithField("rec_id", snap.ID).
			Warn("no se pudo resolver los revisores de la siguiente etapa")
		return
	}
	for _, email := range emails {
		w.notifier.Notify(email, models.TemplateNextReviewer, snap)
	}
}
