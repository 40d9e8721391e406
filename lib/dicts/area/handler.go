package areaprovider

import (
	log "github.com/sirupsen/logrus"

	"github.com/hdgomez8/portal-uci-back-sub001/db"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/dicts/area/store"
	departmentprovider "github.com/hdgomez8/portal-uci-back-sub001/lib/dicts/department"
	initchecker "github.com/hdgomez8/portal-uci-back-sub001/lib/utils/init-checker"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/workflow"
	dictapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/dict"
	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type Provider interface {
	Create(request dictapimodels.AreaData) (id string, err error)
	Get(id string) (item dictapimodels.AreaView, err error)
	List(departmentID string) (list []dictapimodels.AreaView, err error)
	Update(id string, request dictapimodels.AreaData) error
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:      store.NewInstance(db.DB),
		department: departmentprovider.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"department", instance.department,
	)
	Instance = instance
}

type impl struct {
	store      store.Provider
	department departmentprovider.Provider
}

func (i impl) Create(request dictapimodels.AreaData) (id string, err error) {
	_, err = i.department.Get(request.DepartmentID)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Area{
		Name:         request.Name,
		DepartmentID: request.DepartmentID,
	}
	if request.BossID != "" {
		rec.BossID = &request.BossID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("area_name", rec.Name).
		WithField("rec_id", id).
		Info("área creada")
	return id, nil
}

func (i impl) Get(id string) (item dictapimodels.AreaView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.AreaView{}, err
	}
	if rec == nil {
		return dictapimodels.AreaView{}, workflow.ErrNotFound
	}
	return dictapimodels.AreaConvert(*rec), nil
}

func (i impl) List(departmentID string) (list []dictapimodels.AreaView, err error) {
	recList, err := i.store.ListByDepartment(departmentID)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.AreaView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.AreaConvert(rec))
	}
	return list, nil
}

func (i impl) Update(id string, request dictapimodels.AreaData) error {
	updMap := map[string]interface{}{
		"name":          request.Name,
		"department_id": request.DepartmentID,
	}
	if request.BossID != "" {
		updMap["boss_id"] = request.BossID
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("área actualizada")
	return nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("área eliminada")
	return nil
}
