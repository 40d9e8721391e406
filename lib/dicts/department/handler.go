package departmentprovider

import (
	log "github.com/sirupsen/logrus"

	"github.com/hdgomez8/portal-uci-back-sub001/db"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/dicts/department/store"
	initchecker "github.com/hdgomez8/portal-uci-back-sub001/lib/utils/init-checker"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/workflow"
	dictapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/dict"
	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type Provider interface {
	Create(request dictapimodels.DepartmentData) (id string, err error)
	Get(id string) (item dictapimodels.DepartmentView, err error)
	List() (list []dictapimodels.DepartmentView, err error)
	Update(id string, request dictapimodels.DepartmentData) error
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(request dictapimodels.DepartmentData) (id string, err error) {
	rec := dbmodels.Department{
		Name: request.Name,
		Code: request.Code,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("department_name", rec.Name).
		WithField("rec_id", id).
		Info("departamento creado")
	return id, nil
}

func (i impl) Get(id string) (item dictapimodels.DepartmentView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.DepartmentView{}, err
	}
	if rec == nil {
		return dictapimodels.DepartmentView{}, workflow.ErrNotFound
	}
	return dictapimodels.DepartmentConvert(*rec), nil
}

func (i impl) List() (list []dictapimodels.DepartmentView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.DepartmentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.DepartmentConvert(rec))
	}
	return list, nil
}

func (i impl) Update(id string, request dictapimodels.DepartmentData) error {
	updMap := map[string]interface{}{
		"name": request.Name,
		"code": request.Code,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("departamento actualizado")
	return nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("departamento eliminado")
	return nil
}
