package models

type RequestType string

const (
	RequestTypeVacation    RequestType = "vacaciones"
	RequestTypeShiftChange RequestType = "cambio_turno"
	RequestTypeSeverance   RequestType = "liquidacion"
)

var requestTypeHumanName = map[RequestType]string{
	RequestTypeVacation:    "Solicitud de vacaciones",
	RequestTypeShiftChange: "Solicitud de cambio de turno",
	RequestTypeSeverance:   "Solicitud de liquidación",
}

func (t RequestType) ToHuman() string {
	if human, exist := requestTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

type RequestStatus string

const (
	StatusPendiente                RequestStatus = "pendiente"
	StatusEnRevision               RequestStatus = "en_revision"
	StatusEnRevisionAdministracion RequestStatus = "en_revision_administracion"
	StatusAprobado                 RequestStatus = "aprobado"
	StatusRechazado                RequestStatus = "rechazado"
)

var requestStatusHumanName = map[RequestStatus]string{
	StatusPendiente:                "Pendiente",
	StatusEnRevision:               "En revisión",
	StatusEnRevisionAdministracion: "En revisión por administración",
	StatusAprobado:                 "Aprobada",
	StatusRechazado:                "Rechazada",
}

func (s RequestStatus) ToHuman() string {
	if human, exist := requestStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsTerminal: una solicitud aprobada o rechazada no admite más transiciones
func (s RequestStatus) IsTerminal() bool {
	return s == StatusAprobado || s == StatusRechazado
}

// VistoBuenoStatus - estado de la firma del reemplazo en cambios de turno,
// independiente de la cadena principal de aprobación
type VistoBuenoStatus string

const (
	VistoBuenoPendiente VistoBuenoStatus = "pendiente"
	VistoBuenoAprobado  VistoBuenoStatus = "aprobado"
	VistoBuenoRechazado VistoBuenoStatus = "rechazado"
)

func (s VistoBuenoStatus) IsTerminal() bool {
	return s == VistoBuenoAprobado || s == VistoBuenoRechazado
}
