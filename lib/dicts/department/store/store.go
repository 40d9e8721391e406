package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type Provider interface {
	Create(rec dbmodels.Department) (id string, err error)
	GetByID(id string) (rec *dbmodels.Department, err error)
	List() (list []dbmodels.Department, err error)
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

func (i impl) Create(rec dbmodels.Department) (id string, err error) {
	err = i.isUnique("", rec.Name)
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

func (i impl) GetByID(id string) (*dbmodels.Department, error) {
	rec := dbmodels.Department{}
	err := i.db.
		Preload("Areas").
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

func (i impl) List() (list []dbmodels.Department, err error) {
	list = []dbmodels.Department{}
	err = i.db.
		Preload("Areas").
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
	name, ok := updMap["name"]
	if ok {
		err := i.isUnique(id, name.(string))
		if err != nil {
			return err
		}
	}
	return i.db.
		Model(&dbmodels.Department{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Department{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) isUnique(selfID, name string) error {
	var rowCount int64
	tx := i.db.Model(dbmodels.Department{})
	tx.Where("name = ?", name)
	if selfID != "" {
		tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return errors.Wrap(err, "error verificando la unicidad del departamento")
	}
	if rowCount != 0 {
		return errors.New("el departamento ya existe")
	}
	return nil
}
