package workflow

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/hdgomez8/portal-uci-back-sub001/models"
)

type fakeStore struct {
	recs      map[string]*Snapshot
	docRefs   map[string]string
	failDoc   bool
	casCalls  int
	staleOnce bool
}

func newFakeStore(snaps ...*Snapshot) *fakeStore {
	s := &fakeStore{
		recs:    map[string]*Snapshot{},
		docRefs: map[string]string{},
	}
	for _, snap := range snaps {
		s.recs[snap.ID] = snap
	}
	return s
}

func (s *fakeStore) GetByID(id string) (*Snapshot, error) {
	rec, ok := s.recs[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *fakeStore) CASUpdateStatus(id string, expected, next models.RequestStatus, reviewerID string, reviewedAt time.Time, reason string) error {
	s.casCalls++
	rec, ok := s.recs[id]
	if !ok {
		return ErrConflict
	}
	if s.staleOnce {
		// simula una transición concurrente aplicada entre la lectura y el CAS
		s.staleOnce = false
		return ErrConflict
	}
	if rec.Status != expected {
		return ErrConflict
	}
	rec.Status = next
	rec.RejectionReason = reason
	return nil
}

func (s *fakeStore) SetApprovalDocument(id, ref string) error {
	s.docRefs[id] = ref
	return nil
}

type fakeRoles struct {
	byUser map[string][]models.RoleName
}

func (r fakeRoles) Resolve(userID string) ([]models.RoleName, error) {
	return r.byUser[userID], nil
}

func (r fakeRoles) EmailsByRole(role models.RoleName) ([]string, error) {
	return []string{string(role) + "@uci.local"}, nil
}

type sentMail struct {
	recipient string
	kind      models.TemplateKind
}

type fakeNotifier struct {
	sent []sentMail
}

func (n *fakeNotifier) Notify(recipient string, kind models.TemplateKind, snap Snapshot) {
	n.sent = append(n.sent, sentMail{recipient: recipient, kind: kind})
}

type fakeDocGen struct {
	calls int
	fail  bool
}

func (d *fakeDocGen) Generate(snap Snapshot) (string, error) {
	d.calls++
	if d.fail {
		return "", errors.New("sin espacio en el bucket")
	}
	return "actas/" + snap.ID + ".pdf", nil
}

var testReviewers = fakeRoles{byUser: map[string][]models.RoleName{
	"jefe":  {models.RoleJefeArea},
	"admin": {models.RoleAdministracion},
	"rrhh":  {models.RoleRRHH},
	"empl":  {models.RoleEmpleado},
}}

func vacationSnap(status models.RequestStatus) *Snapshot {
	return &Snapshot{
		ID:            "req-1",
		Type:          models.RequestTypeVacation,
		Status:        status,
		EmployeeID:    "empl",
		EmployeeName:  "Laura Pérez",
		EmployeeEmail: "laura@uci.local",
	}
}

func TestVacationHappyPath(t *testing.T) {
	store := newFakeStore(vacationSnap(models.StatusPendiente))
	notifier := &fakeNotifier{}
	docGen := &fakeDocGen{}
	wf := New(VacationChain(), store, testReviewers, notifier, docGen)

	warn, err := wf.Approve("req-1", "jefe")
	require.NoError(t, err)
	require.Empty(t, warn)
	require.Equal(t, models.StatusEnRevision, store.recs["req-1"].Status)

	warn, err = wf.Approve("req-1", "admin")
	require.NoError(t, err)
	require.Empty(t, warn)
	require.Equal(t, models.StatusEnRevisionAdministracion, store.recs["req-1"].Status)

	warn, err = wf.Approve("req-1", "rrhh")
	require.NoError(t, err)
	require.Empty(t, warn)
	require.Equal(t, models.StatusAprobado, store.recs["req-1"].Status)

	// el acta se genera una sola vez, en la aprobación final
	require.Equal(t, 1, docGen.calls)
	require.Equal(t, "actas/req-1.pdf", store.docRefs["req-1"])

	// ningún avance más es posible
	_, err = wf.Approve("req-1", "rrhh")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApproveOutOfOrder(t *testing.T) {
	store := newFakeStore(vacationSnap(models.StatusPendiente))
	wf := New(VacationChain(), store, testReviewers, &fakeNotifier{}, &fakeDocGen{})

	// RRHH no puede aprobar directamente desde pendiente
	_, err := wf.Approve("req-1", "rrhh")
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, models.StatusPendiente, store.recs["req-1"].Status)

	// un empleado sin rol de revisión tampoco
	_, err = wf.Approve("req-1", "empl")
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, models.StatusPendiente, store.recs["req-1"].Status)
}

func TestRejectMidChain(t *testing.T) {
	store := newFakeStore(vacationSnap(models.StatusEnRevision))
	notifier := &fakeNotifier{}
	wf := New(VacationChain(), store, testReviewers, notifier, &fakeDocGen{})

	err := wf.Reject("req-1", "admin", "saldo de vacaciones insuficiente")
	require.NoError(t, err)
	require.Equal(t, models.StatusRechazado, store.recs["req-1"].Status)
	require.Equal(t, "saldo de vacaciones insuficiente", store.recs["req-1"].RejectionReason)

	// rechazada es terminal
	_, err = wf.Approve("req-1", "admin")
	require.ErrorIs(t, err, ErrInvalidTransition)
	err = wf.Reject("req-1", "admin", "otro motivo")
	require.ErrorIs(t, err, ErrInvalidTransition)

	require.Len(t, notifier.sent, 1)
	require.Equal(t, models.TemplateRequestRejected, notifier.sent[0].kind)
	require.Equal(t, "laura@uci.local", notifier.sent[0].recipient)
}

func TestRejectRequiresReason(t *testing.T) {
	store := newFakeStore(vacationSnap(models.StatusPendiente))
	wf := New(VacationChain(), store, testReviewers, &fakeNotifier{}, &fakeDocGen{})

	err := wf.Reject("req-1", "jefe", "   ")
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, models.StatusPendiente, store.recs["req-1"].Status)
}

func TestRejectReachableFromEveryNonTerminalState(t *testing.T) {
	cases := []struct {
		status   models.RequestStatus
		reviewer string
	}{
		{models.StatusPendiente, "jefe"},
		{models.StatusEnRevision, "admin"},
		{models.StatusEnRevisionAdministracion, "rrhh"},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			store := newFakeStore(vacationSnap(tc.status))
			wf := New(VacationChain(), store, testReviewers, &fakeNotifier{}, &fakeDocGen{})
			err := wf.Reject("req-1", tc.reviewer, "no procede")
			require.NoError(t, err)
			require.Equal(t, models.StatusRechazado, store.recs["req-1"].Status)
		})
	}
}

func TestStaleStatusConflict(t *testing.T) {
	store := newFakeStore(vacationSnap(models.StatusPendiente))
	store.staleOnce = true
	wf := New(VacationChain(), store, testReviewers, &fakeNotifier{}, &fakeDocGen{})

	// el CAS observa un estado distinto al leído: falla sin doble aplicación
	_, err := wf.Approve("req-1", "jefe")
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.Equal(t, models.StatusPendiente, store.recs["req-1"].Status)

	_, err = wf.Approve("req-1", "jefe")
	require.NoError(t, err)
	require.Equal(t, models.StatusEnRevision, store.recs["req-1"].Status)
	require.Equal(t, 2, store.casCalls)
}

func TestNotFound(t *testing.T) {
	store := newFakeStore()
	wf := New(VacationChain(), store, testReviewers, &fakeNotifier{}, &fakeDocGen{})

	_, err := wf.Approve("nope", "jefe")
	require.ErrorIs(t, err, ErrNotFound)
	err = wf.Reject("nope", "jefe", "motivo")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFinalApprovalDocFailureIsWarning(t *testing.T) {
	store := newFakeStore(vacationSnap(models.StatusEnRevisionAdministracion))
	docGen := &fakeDocGen{fail: true}
	wf := New(VacationChain(), store, testReviewers, &fakeNotifier{}, docGen)

	warn, err := wf.Approve("req-1", "rrhh")
	require.NoError(t, err)
	require.NotEmpty(t, warn)
	// la transición se mantiene aunque el acta haya fallado
	require.Equal(t, models.StatusAprobado, store.recs["req-1"].Status)
}

func TestNextReviewerNotified(t *testing.T) {
	store := newFakeStore(vacationSnap(models.StatusPendiente))
	notifier := &fakeNotifier{}
	wf := New(VacationChain(), store, testReviewers, notifier, &fakeDocGen{})

	_, err := wf.Approve("req-1", "jefe")
	require.NoError(t, err)

	require.Len(t, notifier.sent, 2)
	require.Equal(t, models.TemplateStageApproved, notifier.sent[0].kind)
	require.Equal(t, "laura@uci.local", notifier.sent[0].recipient)
	require.Equal(t, models.TemplateNextReviewer, notifier.sent[1].kind)
	require.Equal(t, "ADMINISTRACION@uci.local", notifier.sent[1].recipient)
}

func TestShiftChangeGate(t *testing.T) {
	snap := &Snapshot{
		ID:            "turno-1",
		Type:          models.RequestTypeShiftChange,
		Status:        models.StatusPendiente,
		EmployeeID:    "empl",
		EmployeeEmail: "laura@uci.local",
		ReplacementID: "reemplazo",
		VistoBueno:    models.VistoBuenoPendiente,
	}
	store := newFakeStore(snap)
	gate := func(s Snapshot) error {
		if s.VistoBueno != models.VistoBuenoAprobado {
			return errors.Wrap(ErrInvalidTransition, "falta el visto bueno del reemplazo")
		}
		return nil
	}
	wf := New(TwoStageChain(), store, testReviewers, &fakeNotifier{}, &fakeDocGen{}).WithGate(gate)

	// bloqueada mientras el visto bueno siga pendiente
	_, err := wf.Approve("turno-1", "jefe")
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.Equal(t, models.StatusPendiente, store.recs["turno-1"].Status)

	// habilitada en cuanto el reemplazo firma
	store.recs["turno-1"].VistoBueno = models.VistoBuenoAprobado
	_, err = wf.Approve("turno-1", "jefe")
	require.NoError(t, err)
	require.Equal(t, models.StatusEnRevision, store.recs["turno-1"].Status)

	_, err = wf.Approve("turno-1", "rrhh")
	require.NoError(t, err)
	require.Equal(t, models.StatusAprobado, store.recs["turno-1"].Status)
}
