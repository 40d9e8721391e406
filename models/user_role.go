package models

type RoleName string

const (
	RoleEmpleado       RoleName = "EMPLEADO"
	RoleJefeArea       RoleName = "JEFE_AREA"
	RoleAdministracion RoleName = "ADMINISTRACION"
	RoleRRHH           RoleName = "RRHH"
	RoleAdmin          RoleName = "ADMIN"
)

var roleHumanName = map[RoleName]string{
	RoleEmpleado:       "Empleado",
	RoleJefeArea:       "Jefe de área",
	RoleAdministracion: "Administración",
	RoleRRHH:           "Recursos Humanos",
	RoleAdmin:          "Administrador del sistema",
}

func (r RoleName) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r RoleName) IsAdmin() bool {
	return r == RoleAdmin
}

const SystemUser = "Sistema"

type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "ACTIVO"
	EmployeeOnVacation EmployeeStatus = "EN_VACACIONES"
	EmployeeDismissed  EmployeeStatus = "RETIRADO"
)

var employeeStatusHumanName = map[EmployeeStatus]string{
	EmployeeActive:     "Activo",
	EmployeeOnVacation: "En vacaciones",
	EmployeeDismissed:  "Retirado",
}

func (s EmployeeStatus) ToHuman() string {
	if human, exist := employeeStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
