package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type Provider interface {
	Create(rec dbmodels.Area) (id string, err error)
	GetByID(id string) (rec *dbmodels.Area, err error)
	ListByDepartment(departmentID string) (list []dbmodels.Area, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Area) (id string, err error) {
	err = i.isUnique(rec.DepartmentID, "", rec.Name)
	if err != nil {
		return "", err
	}
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Area, error) {
	rec := dbmodels.Area{}
	err := i.db.
		Preload("Department").
		Preload("Boss").
		Where("id = ?", id).
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

func (i impl) ListByDepartment(departmentID string) (list []dbmodels.Area, err error) {
	list = []dbmodels.Area{}
	tx := i.db.
		Preload("Department").
		Preload("Boss")
	if departmentID != "" {
		tx = tx.Where("department_id = ?", departmentID)
	}
	err = tx.
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Area{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Area{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) isUnique(departmentID, selfID, name string) error {
	var rowCount int64
	tx := i.db.Model(dbmodels.Area{})
	tx.Where("department_id = ?", departmentID)
	tx.Where("name = ?", name)
	if selfID != "" {
		tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return errors.Wrap(err, "error verificando la unicidad del área")
	}
	if rowCount != 0 {
		return errors.New("el área ya existe en el departamento")
	}
	return nil
}
