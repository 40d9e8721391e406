package employeestore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/hdgomez8/portal-uci-back-sub001/models"
	employeeapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/employee"
	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(id string) (rec *dbmodels.Employee, err error)
	FindByEmail(email string) (rec *dbmodels.Employee, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error)
	ListCount(filter employeeapimodels.EmployeeFilter) (count int64, err error)
	ListEmailsByRole(role models.RoleName) (emails []string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	err = i.db.
		Omit("Role", "Area", "Department", "Boss").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("id = ?", id).
		Preload("Role").
		Preload("Area").
		Preload("Department").
		Preload("Boss").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) FindByEmail(email string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("lower(email) = ?", strings.ToLower(email)).
		Preload("Role").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("registro no encontrado")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Employee{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	page, limit := filter.GetPage()
	tx := i.applyFilter(filter).
		Preload("Role").
		Preload("Area").
		Preload("Department").
		Preload("Boss").
		Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter employeeapimodels.EmployeeFilter) (count int64, err error) {
	err = i.applyFilter(filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ListEmailsByRole(role models.RoleName) (emails []string, err error) {
	emails = []string{}
	err = i.db.
		Model(&dbmodels.Employee{}).
		Joins("JOIN roles ON roles.id = employees.role_id").
		Where("roles.name = ?", role).
		Where("employees.status = ?", models.EmployeeActive).
		Pluck("employees.email", &emails).
		Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}

func (i impl) applyFilter(filter employeeapimodels.EmployeeFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.Employee{})
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("lower(name) LIKE ? OR lower(last_name) LIKE ? OR lower(email) LIKE ? OR document_id LIKE ?",
			search, search, search, "%"+filter.Search+"%")
	}
	if filter.AreaID != "" {
		tx = tx.Where("area_id = ?", filter.AreaID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	return tx
}
