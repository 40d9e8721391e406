package employeehandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/hdgomez8/portal-uci-back-sub001/db"
	employeestore "github.com/hdgomez8/portal-uci-back-sub001/lib/employee/store"
	authutils "github.com/hdgomez8/portal-uci-back-sub001/lib/utils/auth-utils"
	"github.com/hdgomez8/portal-uci-back-sub001/models"
	employeeapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/employee"
	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type Provider interface {
	Create(data employeeapimodels.EmployeeData) (id string, err error)
	GetByID(id string) (item employeeapimodels.EmployeeView, err error)
	Update(id string, data employeeapimodels.EmployeeData) error
	Delete(id string) error
	List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error)

	// workflow.RoleResolver
	Resolve(userID string) ([]models.RoleName, error)
	EmailsByRole(role models.RoleName) ([]string, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) Create(data employeeapimodels.EmployeeData) (id string, err error) {
	existed, err := i.store.FindByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", errors.New("ya existe un empleado con ese correo")
	}
	rec := dbmodels.Employee{
		Name:       data.Name,
		LastName:   data.LastName,
		Email:      data.Email,
		DocumentID: data.DocumentID,
		Position:   data.Position,
		Status:     models.EmployeeActive,
	}
	if data.Password != "" {
		rec.Password = authutils.GetMD5Hash(data.Password)
	}
	if data.RoleID != "" {
		rec.RoleID = &data.RoleID
	}
	if data.AreaID != "" {
		rec.AreaID = &data.AreaID
	}
	if data.DepartmentID != "" {
		rec.DepartmentID = &data.DepartmentID
	}
	if data.BossID != "" {
		rec.BossID = &data.BossID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("error creando el empleado")
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("email", data.Email).
		Info("empleado creado")
	return id, nil
}

func (i impl) GetByID(id string) (item employeeapimodels.EmployeeView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) Update(id string, data employeeapimodels.EmployeeData) error {
	logger := log.WithField("rec_id", id)
	updMap := map[string]interface{}{
		"name":        data.Name,
		"last_name":   data.LastName,
		"email":       data.Email,
		"document_id": data.DocumentID,
		"position":    data.Position,
	}
	if data.Password != "" {
		updMap["password"] = authutils.GetMD5Hash(data.Password)
	}
	if data.RoleID != "" {
		updMap["role_id"] = data.RoleID
	}
	if data.AreaID != "" {
		updMap["area_id"] = data.AreaID
	}
	if data.DepartmentID != "" {
		updMap["department_id"] = data.DepartmentID
	}
	if data.BossID != "" {
		updMap["boss_id"] = data.BossID
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("error actualizando el empleado")
		return err
	}
	logger.Info("empleado actualizado")
	return nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("error eliminando el empleado")
		return err
	}
	logger.Info("empleado eliminado")
	return nil
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("error consultando el listado de empleados")
		return nil, 0, err
	}
	result := make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, employeeapimodels.EmployeeConvert(rec))
	}
	return result, rowCount, nil
}

// Resolve - roles del usuario, consultados una sola vez por transición
func (i impl) Resolve(userID string) ([]models.RoleName, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return []models.RoleName{}, nil
	}
	return []models.RoleName{rec.GetRoleName()}, nil
}

func (i impl) EmailsByRole(role models.RoleName) ([]string, error) {
	return i.store.ListEmailsByRole(role)
}

func (i impl) getRec(id string) (*dbmodels.Employee, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("error consultando el empleado")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("empleado no encontrado")
	}
	return rec, nil
}
