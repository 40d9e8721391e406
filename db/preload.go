package db

import (
	log "github.com/sirupsen/logrus"

	"github.com/hdgomez8/portal-uci-back-sub001/config"
	rolestore "github.com/hdgomez8/portal-uci-back-sub001/lib/roles/store"
	authutils "github.com/hdgomez8/portal-uci-back-sub001/lib/utils/auth-utils"
	"github.com/hdgomez8/portal-uci-back-sub001/models"
	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

func InitPreload() {
	fillRoles()
	fillPermissions()
	addAdmin()
}

var roleNames = []models.RoleName{
	models.RoleEmpleado,
	models.RoleJefeArea,
	models.RoleAdministracion,
	models.RoleRRHH,
	models.RoleAdmin,
}

func fillRoles() {
	store := rolestore.NewInstance(DB)
	for _, name := range roleNames {
		existedRec, err := store.FindByName(name)
		if err != nil {
			log.WithError(err).Error("error precargando roles")
			return
		}
		if existedRec != nil {
			continue
		}
		_, err = store.Create(dbmodels.Role{Name: name, Description: name.ToHuman()})
		if err != nil {
			log.WithError(err).Error("error precargando roles")
			return
		}
	}
}

var permissionCatalog = []dbmodels.Permission{
	{Module: models.EmployeesModule, Code: models.ViewPermission, Label: "Ver empleados"},
	{Module: models.EmployeesModule, Code: models.CreatePermission, Label: "Crear empleados"},
	{Module: models.EmployeesModule, Code: models.EditPermission, Label: "Editar empleados"},
	{Module: models.RequestsModule, Code: models.ViewPermission, Label: "Ver solicitudes"},
	{Module: models.RequestsModule, Code: models.CreatePermission, Label: "Crear solicitudes"},
	{Module: models.RequestsModule, Code: models.FlowPermission, Label: "Aprobar o rechazar solicitudes"},
	{Module: models.RolesModule, Code: models.ManagePermission, Label: "Administrar roles y permisos"},
	{Module: models.DictModule, Code: models.ManagePermission, Label: "Administrar departamentos y áreas"},
	{Module: models.ReportsModule, Code: models.ViewPermission, Label: "Ver reportes"},
	{Module: models.ProfileModule, Code: models.ViewPermission, Label: "Ver perfil propio"},
}

func fillPermissions() {
	store := rolestore.NewInstance(DB)
	for _, rec := range permissionCatalog {
		existedRec, err := store.FindPermission(rec.Module, rec.Code)
		if err != nil {
			log.WithError(err).Error("error precargando permisos")
			return
		}
		if existedRec != nil {
			continue
		}
		_, err = store.CreatePermission(rec)
		if err != nil {
			log.WithError(err).Error("error precargando permisos")
			return
		}
	}
}

func addAdmin() {
	if config.Conf.Admin.Email == "" || config.Conf.Admin.Password == "" {
		log.Warn("admin no agregado, faltan ADMIN_EMAIL o ADMIN_PASSWORD")
		return
	}
	roleStore := rolestore.NewInstance(DB)
	adminRole, err := roleStore.FindByName(models.RoleAdmin)
	if err != nil || adminRole == nil {
		log.WithError(err).Error("error agregando admin, rol ADMIN no disponible")
		return
	}
	var existedRec dbmodels.Employee
	result := DB.Where("email = ?", config.Conf.Admin.Email).Limit(1).Find(&existedRec)
	if result.Error != nil {
		log.WithError(result.Error).Error("error agregando admin")
		return
	}
	if result.RowsAffected > 0 {
		return
	}
	rec := dbmodels.Employee{
		Name:     config.Conf.Admin.Name,
		Email:    config.Conf.Admin.Email,
		Password: authutils.GetMD5Hash(config.Conf.Admin.Password),
		Status:   models.EmployeeActive,
		RoleID:   &adminRole.ID,
	}
	if err = DB.Create(&rec).Error; err != nil {
		log.WithError(err).Error("error agregando admin")
	}
}
