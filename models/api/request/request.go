package requestapimodels

import (
	"time"

	"github.com/pkg/errors"

	"github.com/hdgomez8/portal-uci-back-sub001/models"
	apimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api"
	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type VacationRequestCreateData struct {
	EmployeeID string    `json:"employee_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Comment    string    `json:"comment"`
}

func (r VacationRequestCreateData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("se requiere el empleado solicitante")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return errors.New("se requieren las fechas de inicio y fin")
	}
	if r.EndDate.Before(r.StartDate) {
		return errors.New("la fecha de fin no puede ser anterior a la de inicio")
	}
	return nil
}

type ShiftChangeRequestCreateData struct {
	EmployeeID    string    `json:"employee_id"`
	ReplacementID string    `json:"replacement_id"`
	ShiftDate     time.Time `json:"shift_date"`
	ProposedDate  time.Time `json:"proposed_date"`
	Comment       string    `json:"comment"`
}

func (r ShiftChangeRequestCreateData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("se requiere el empleado solicitante")
	}
	if r.ReplacementID == "" {
		return errors.New("se requiere el empleado de reemplazo")
	}
	if r.ReplacementID == r.EmployeeID {
		return errors.New("el reemplazo no puede ser el mismo solicitante")
	}
	if r.ShiftDate.IsZero() || r.ProposedDate.IsZero() {
		return errors.New("se requieren las fechas del turno")
	}
	return nil
}

type SeveranceRequestCreateData struct {
	EmployeeID     string    `json:"employee_id"`
	LastWorkingDay time.Time `json:"last_working_day"`
	Reason         string    `json:"reason"`
}

func (r SeveranceRequestCreateData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("se requiere el empleado solicitante")
	}
	if r.LastWorkingDay.IsZero() {
		return errors.New("se requiere el último día laborado")
	}
	return nil
}

// DecisionData - cuerpo de las operaciones de rechazo y del visto bueno
type DecisionData struct {
	Reason string `json:"reason"`
}

type RequestFilter struct {
	apimodels.Pagination
	EmployeeID string                 `json:"employee_id"`
	Statuses   []models.RequestStatus `json:"statuses"`
}

func (r RequestFilter) Validate() error {
	return r.Pagination.Validate()
}

type RequestView struct {
	ID               string               `json:"id"`
	EmployeeID       string               `json:"employee_id"`
	EmployeeName     string               `json:"employee_name,omitempty"`
	Status           models.RequestStatus `json:"status"`
	StatusName       string               `json:"status_name"`
	ReviewedBy       string               `json:"reviewed_by,omitempty"`
	ReviewedAt       *time.Time           `json:"reviewed_at,omitempty"`
	RejectionReason  string               `json:"rejection_reason,omitempty"`
	ApprovalDocument string               `json:"approval_document,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
}

type VacationRequestView struct {
	RequestView
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Days      int       `json:"days"`
	Comment   string    `json:"comment,omitempty"`
}

type ShiftChangeRequestView struct {
	RequestView
	ReplacementID    string                  `json:"replacement_id"`
	ReplacementName  string                  `json:"replacement_name,omitempty"`
	ShiftDate        time.Time               `json:"shift_date"`
	ProposedDate     time.Time               `json:"proposed_date"`
	Comment          string                  `json:"comment,omitempty"`
	VistoBuenoStatus models.VistoBuenoStatus `json:"visto_bueno_status"`
	VistoBuenoAt     *time.Time              `json:"visto_bueno_at,omitempty"`
}

type SeveranceRequestView struct {
	RequestView
	LastWorkingDay time.Time `json:"last_working_day"`
	Reason         string    `json:"reason,omitempty"`
}

// ReportRow - fila plana del reporte de solicitudes exportable a xlsx
type ReportRow struct {
	ID              string
	KindName        string
	EmployeeName    string
	StatusName      string
	ReviewedBy      string
	ReviewedAt      *time.Time
	RejectionReason string
	Detail          string
	CreatedAt       time.Time
}

// StatusCount - proyección de lectura para el tablero, sin semántica de transición
type StatusCount struct {
	Status models.RequestStatus `json:"status"`
	Count  int64                `json:"count"`
}

func baseConvert(base dbmodels.BaseModel, employeeID string, employee *dbmodels.Employee,
	status models.RequestStatus, reviewedBy *dbmodels.Employee, reviewedAt *time.Time,
	rejectionReason, approvalDocument string) RequestView {
	view := RequestView{
		ID:               base.ID,
		EmployeeID:       employeeID,
		Status:           status,
		StatusName:       status.ToHuman(),
		ReviewedAt:       reviewedAt,
		RejectionReason:  rejectionReason,
		ApprovalDocument: approvalDocument,
		CreatedAt:        base.CreatedAt,
	}
	if employee != nil {
		view.EmployeeName = employee.GetFullName()
	}
	if reviewedBy != nil {
		view.ReviewedBy = reviewedBy.GetFullName()
	}
	return view
}

func VacationRequestConvert(rec dbmodels.VacationRequest) VacationRequestView {
	return VacationRequestView{
		RequestView: baseConvert(rec.BaseModel, rec.EmployeeID, rec.Employee,
			rec.Status, rec.ReviewedBy, rec.ReviewedAt, rec.RejectionReason, rec.ApprovalDocument),
		StartDate: rec.StartDate,
		EndDate:   rec.EndDate,
		Days:      rec.Days,
		Comment:   rec.Comment,
	}
}

func ShiftChangeRequestConvert(rec dbmodels.ShiftChangeRequest) ShiftChangeRequestView {
	view := ShiftChangeRequestView{
		RequestView: baseConvert(rec.BaseModel, rec.EmployeeID, rec.Employee,
			rec.Status, rec.ReviewedBy, rec.ReviewedAt, rec.RejectionReason, rec.ApprovalDocument),
		ReplacementID:    rec.ReplacementID,
		ShiftDate:        rec.ShiftDate,
		ProposedDate:     rec.ProposedDate,
		Comment:          rec.Comment,
		VistoBuenoStatus: rec.VistoBuenoStatus,
		VistoBuenoAt:     rec.VistoBuenoAt,
	}
	if rec.Replacement != nil {
		view.ReplacementName = rec.Replacement.GetFullName()
	}
	return view
}

func SeveranceRequestConvert(rec dbmodels.SeveranceRequest) SeveranceRequestView {
	return SeveranceRequestView{
		RequestView: baseConvert(rec.BaseModel, rec.EmployeeID, rec.Employee,
			rec.Status, rec.ReviewedBy, rec.ReviewedAt, rec.RejectionReason, rec.ApprovalDocument),
		LastWorkingDay: rec.LastWorkingDay,
		Reason:         rec.Reason,
	}
}
