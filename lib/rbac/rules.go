package rbac

import (
	"github.com/hdgomez8/portal-uci-back-sub001/models"
)

var (
	AllRoles         = []models.RoleName{models.RoleAdmin, models.RoleRRHH, models.RoleAdministracion, models.RoleJefeArea, models.RoleEmpleado}
	ReviewerRoleSet  = []models.RoleName{models.RoleAdmin, models.RoleRRHH, models.RoleAdministracion, models.RoleJefeArea}
	AdminRrhhRoleSet = []models.RoleName{models.RoleAdmin, models.RoleRRHH}
	AdminOnlyRoleSet = []models.RoleName{models.RoleAdmin}
)

func (i *impl) initRules() {
	i.addEmployeesRbac()
	i.addRequestsRbac()
	i.addRolesRbac()
	i.addDictRbac()
	i.addReportsRbac()
	i.addProfileRbac()
}

func (i *impl) addEmployeesRbac() {
	//VIEW
	i.RegisterRule(models.EmployeesModule, models.ViewPermission, ReviewerRoleSet, "/api/v1/employees/list [post]", nil)
	i.RegisterRule(models.EmployeesModule, models.ViewPermission, ReviewerRoleSet, "/api/v1/employees/{id} [get]", nil)
	//CREATE/EDIT
	i.RegisterRule(models.EmployeesModule, models.CreatePermission, AdminRrhhRoleSet, "/api/v1/employees [post]", nil)
	i.RegisterRule(models.EmployeesModule, models.EditPermission, AdminRrhhRoleSet, "/api/v1/employees/{id} [put]", nil)
	i.RegisterRule(models.EmployeesModule, models.EditPermission, AdminRrhhRoleSet, "/api/v1/employees/{id} [delete]", nil)
}

func (i *impl) addRequestsRbac() {
	for _, kind := range []string{"vacation", "shift_change", "severance"} {
		//VIEW
		i.RegisterRule(models.RequestsModule, models.ViewPermission, AllRoles, "/api/v1/requests/"+kind+"/list [post]", nil)
		i.RegisterRule(models.RequestsModule, models.ViewPermission, AllRoles, "/api/v1/requests/"+kind+"/{id} [get]", nil)
		//CREATE
		i.RegisterRule(models.RequestsModule, models.CreatePermission, AllRoles, "/api/v1/requests/"+kind+" [post]", nil)
		i.RegisterRule(models.RequestsModule, models.EditPermission, AdminRrhhRoleSet, "/api/v1/requests/"+kind+"/{id} [delete]", nil)
		//FLOW - la etapa exacta la valida la cadena de aprobación
		i.RegisterRule(models.RequestsModule, models.FlowPermission, ReviewerRoleSet, "/api/v1/requests/"+kind+"/{id}/approve [post]", nil)
		i.RegisterRule(models.RequestsModule, models.FlowPermission, ReviewerRoleSet, "/api/v1/requests/"+kind+"/{id}/reject [post]", nil)
	}
	// la firma del reemplazo la valida el propio flujo contra el registro
	i.RegisterRule(models.RequestsModule, models.FlowPermission, AllRoles, "/api/v1/requests/shift_change/{id}/visto_bueno [post]", nil)
}

func (i *impl) addRolesRbac() {
	i.RegisterRule(models.RolesModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/roles/list [get]", nil)
	i.RegisterRule(models.RolesModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/roles [post]", nil)
	i.RegisterRule(models.RolesModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/roles/{id} [get]", nil)
	i.RegisterRule(models.RolesModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/roles/{id} [put]", nil)
	i.RegisterRule(models.RolesModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/roles/{id} [delete]", nil)
	i.RegisterRule(models.RolesModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/roles/permissions/list [get]", nil)
	i.RegisterRule(models.RolesModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/roles/{id}/permissions [put]", nil)
	i.RegisterRule(models.RolesModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/roles/{id}/permissions/{permissionId} [delete]", nil)
}

func (i *impl) addDictRbac() {
	//VIEW
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/departments/list [get]", nil)
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/departments/{id} [get]", nil)
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/areas/list [get]", nil)
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/areas/{id} [get]", nil)
	//MANAGE
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminRrhhRoleSet, "/api/v1/dict/departments [post]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminRrhhRoleSet, "/api/v1/dict/departments/{id} [put]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminRrhhRoleSet, "/api/v1/dict/departments/{id} [delete]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminRrhhRoleSet, "/api/v1/dict/areas [post]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminRrhhRoleSet, "/api/v1/dict/areas/{id} [put]", nil)
	i.RegisterRule(models.DictModule, models.ManagePermission, AdminRrhhRoleSet, "/api/v1/dict/areas/{id} [delete]", nil)
}

func (i *impl) addReportsRbac() {
	i.RegisterRule(models.ReportsModule, models.ViewPermission, ReviewerRoleSet, "/api/v1/reports/requests/stats [get]", nil)
	i.RegisterRule(models.ReportsModule, models.ViewPermission, AdminRrhhRoleSet, "/api/v1/reports/requests/export [post]", nil)
}

func (i *impl) addProfileRbac() {
	i.RegisterRule(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/auth/me [get]", nil)
	i.RegisterRule(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/auth/permissions [get]", nil)
}
