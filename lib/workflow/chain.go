package workflow

import "github.com/hdgomez8/portal-uci-back-sub001/models"

// Stage - una etapa de la cadena de aprobación: desde qué estado, hacia qué
// estado y qué rol está autorizado a decidir mientras la solicitud está en From
type Stage struct {
	From     models.RequestStatus
	To       models.RequestStatus
	Reviewer models.RoleName
}

// Chain - camino fijo de avance de una solicitud. El rechazo no forma parte de
// la cadena: es alcanzable desde cualquier etapa no terminal.
type Chain []Stage

// StageFrom devuelve la etapa cuyo estado de origen es el actual
func (c Chain) StageFrom(status models.RequestStatus) (Stage, bool) {
	for _, stage := range c {
		if stage.From == status {
			return stage, true
		}
	}
	return Stage{}, false
}

func (c Chain) Final() models.RequestStatus {
	if len(c) == 0 {
		return ""
	}
	return c[len(c)-1].To
}

// VacationChain - jefe de área → administración → RRHH
func VacationChain() Chain {
	return Chain{
		{From: models.StatusPendiente, To: models.StatusEnRevision, Reviewer: models.RoleJefeArea},
		{From: models.StatusEnRevision, To: models.StatusEnRevisionAdministracion, Reviewer: models.RoleAdministracion},
		{From: models.StatusEnRevisionAdministracion, To: models.StatusAprobado, Reviewer: models.RoleRRHH},
	}
}

// TwoStageChain - jefe de área → RRHH (cambio de turno y liquidación)
func TwoStageChain() Chain {
	return Chain{
		{From: models.StatusPendiente, To: models.StatusEnRevision, Reviewer: models.RoleJefeArea},
		{From: models.StatusEnRevision, To: models.StatusAprobado, Reviewer: models.RoleRRHH},
	}
}
