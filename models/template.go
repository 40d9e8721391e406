package models

// TemplateKind - tipo de correo de notificación del flujo de aprobación
type TemplateKind string

const (
	TemplateRequestCreated      TemplateKind = "request_created"
	TemplateStageApproved       TemplateKind = "stage_approved"
	TemplateNextReviewer        TemplateKind = "next_reviewer"
	TemplateRequestApproved     TemplateKind = "request_approved"
	TemplateRequestRejected     TemplateKind = "request_rejected"
	TemplateVistoBuenoRequested TemplateKind = "visto_bueno_requested"
	TemplateVistoBuenoRejected  TemplateKind = "visto_bueno_rejected"
)

// NotifyTemplateData - datos disponibles para las plantillas de correo
type NotifyTemplateData struct {
	EmployeeName    string
	RequestKind     string
	RequestStatus   string
	ReviewerName    string
	RejectionReason string
	Details         map[string]string
}

// ApprovalDocData - datos para el acta PDF generada al aprobar una solicitud
type ApprovalDocData struct {
	RequestID    string
	RequestKind  string
	EmployeeName string
	ApprovedBy   string
	ApprovedAt   string
	Details      map[string]string
}
