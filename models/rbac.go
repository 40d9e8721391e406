package models

type RbacFunc func(userID string, role RoleName, path string) bool

type Module string

const (
	EmployeesModule Module = "EMPLEADOS"
	RequestsModule  Module = "SOLICITUDES"
	RolesModule     Module = "ROLES"
	DictModule      Module = "DICT"
	ReportsModule   Module = "REPORTES"
	ProfileModule   Module = "PERFIL"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	ManagePermission Permission = "MANAGE"
	FlowPermission   Permission = "FLOW"
)
