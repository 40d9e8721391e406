package shiftchangehandler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdgomez8/portal-uci-back-sub001/lib/notify"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/workflow"
	"github.com/hdgomez8/portal-uci-back-sub001/models"
	requestapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/request"
	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type fakeStore struct {
	rec *dbmodels.ShiftChangeRequest
}

func (f *fakeStore) Create(rec dbmodels.ShiftChangeRequest) (string, error) {
	rec.ID = "sc-1"
	f.rec = &rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.ShiftChangeRequest, error) {
	if f.rec == nil || f.rec.ID != id {
		return nil, nil
	}
	recCopy := *f.rec
	return &recCopy, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	if f.rec == nil || f.rec.ID != id {
		return errors.New("registro no encontrado")
	}
	if ref, ok := updMap["approval_document"]; ok {
		f.rec.ApprovalDocument = ref.(string)
	}
	return nil
}

func (f *fakeStore) CASUpdateStatus(id string, expected, next models.RequestStatus, reviewerID string, reviewedAt time.Time, reason string) error {
	if f.rec == nil || f.rec.ID != id || f.rec.Status != expected {
		return workflow.ErrConflict
	}
	f.rec.Status = next
	if reviewerID != "" {
		f.rec.ReviewedByID = &reviewerID
	}
	f.rec.ReviewedAt = &reviewedAt
	if reason != "" {
		f.rec.RejectionReason = reason
	}
	return nil
}

func (f *fakeStore) CASUpdateVistoBueno(id string, expected, next models.VistoBuenoStatus, decidedAt time.Time) error {
	if f.rec == nil || f.rec.ID != id || f.rec.VistoBuenoStatus != expected {
		return workflow.ErrConflict
	}
	f.rec.VistoBuenoStatus = next
	f.rec.VistoBuenoAt = &decidedAt
	return nil
}

func (f *fakeStore) Delete(id string) error { return nil }

func (f *fakeStore) List(filter requestapimodels.RequestFilter) ([]dbmodels.ShiftChangeRequest, error) {
	return nil, nil
}

func (f *fakeStore) ListCount(filter requestapimodels.RequestFilter) (int64, error) {
	return 0, nil
}

func (f *fakeStore) Stats(employeeID string) ([]requestapimodels.StatusCount, error) {
	return nil, nil
}

type fakeNotifier struct {
	sent []models.TemplateKind
}

func (f *fakeNotifier) Notify(recipient string, kind models.TemplateKind, snap workflow.Snapshot) {
	f.sent = append(f.sent, kind)
}

func newTestHandler(t *testing.T) (*fakeStore, *fakeNotifier, impl) {
	t.Helper()
	store := &fakeStore{
		rec: &dbmodels.ShiftChangeRequest{
			BaseModel:        dbmodels.BaseModel{ID: "sc-1"},
			EmployeeID:       "emp-1",
			ReplacementID:    "emp-2",
			ShiftDate:        time.Now().AddDate(0, 0, 7),
			ProposedDate:     time.Now().AddDate(0, 0, 8),
			Status:           models.StatusPendiente,
			VistoBuenoStatus: models.VistoBuenoPendiente,
		},
	}
	notifier := &fakeNotifier{}
	notify.Instance = notifier
	return store, notifier, impl{store: store}
}

func TestVistoBuenoSoloReemplazo(t *testing.T) {
	_, _, handler := newTestHandler(t)

	err := handler.VistoBueno("sc-1", "emp-3", true, "")
	assert.ErrorIs(t, err, workflow.ErrUnauthorized)
}

func TestVistoBuenoAprobado(t *testing.T) {
	store, _, handler := newTestHandler(t)

	err := handler.VistoBueno("sc-1", "emp-2", true, "")
	require.NoError(t, err)
	assert.Equal(t, models.VistoBuenoAprobado, store.rec.VistoBuenoStatus)
	assert.NotNil(t, store.rec.VistoBuenoAt)
	// la cadena principal no cambia con la firma
	assert.Equal(t, models.StatusPendiente, store.rec.Status)

	// la firma es única
	err = handler.VistoBueno("sc-1", "emp-2", true, "")
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
}

func TestVistoBuenoRechazoExigeMotivo(t *testing.T) {
	store, _, handler := newTestHandler(t)

	err := handler.VistoBueno("sc-1", "emp-2", false, "")
	assert.ErrorIs(t, err, workflow.ErrValidation)
	assert.Equal(t, models.VistoBuenoPendiente, store.rec.VistoBuenoStatus)
}

func TestVistoBuenoRechazoCascada(t *testing.T) {
	store, notifier, handler := newTestHandler(t)

	err := handler.VistoBueno("sc-1", "emp-2", false, "ese día también estoy de turno")
	require.NoError(t, err)
	assert.Equal(t, models.VistoBuenoRechazado, store.rec.VistoBuenoStatus)
	assert.Equal(t, models.StatusRechazado, store.rec.Status)
	assert.Equal(t, "ese día también estoy de turno", store.rec.RejectionReason)
	assert.Nil(t, store.rec.ReviewedByID)
	assert.Contains(t, notifier.sent, models.TemplateVistoBuenoRejected)
}

func TestVistoBuenoSolicitudResuelta(t *testing.T) {
	store, _, handler := newTestHandler(t)
	store.rec.Status = models.StatusRechazado

	err := handler.VistoBueno("sc-1", "emp-2", true, "")
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
}

func TestVistoBuenoNoEncontrada(t *testing.T) {
	_, _, handler := newTestHandler(t)

	err := handler.VistoBueno("sc-404", "emp-2", true, "")
	assert.ErrorIs(t, err, workflow.ErrNotFound)
}
