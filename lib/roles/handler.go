package roleshandler

import (
	log "github.com/sirupsen/logrus"

	"github.com/hdgomez8/portal-uci-back-sub001/db"
	rolestore "github.com/hdgomez8/portal-uci-back-sub001/lib/roles/store"
	initchecker "github.com/hdgomez8/portal-uci-back-sub001/lib/utils/init-checker"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/workflow"
	dictapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/dict"
	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type Provider interface {
	Create(request dictapimodels.RoleData) (id string, err error)
	Get(id string) (item dictapimodels.RoleView, err error)
	List() (list []dictapimodels.RoleView, err error)
	Update(id string, request dictapimodels.RoleData) error
	Delete(id string) error
	ListPermissions() (list []dictapimodels.PermissionView, err error)
	SetPermissions(roleID string, request dictapimodels.RolePermissionsData) error
	RemovePermission(roleID, permissionID string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: rolestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store rolestore.Provider
}

func (i impl) Create(request dictapimodels.RoleData) (id string, err error) {
	rec := dbmodels.Role{
		Name:        request.Name,
		Description: request.Description,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("role_name", rec.Name).
		WithField("rec_id", id).
		Info("rol creado")
	return id, nil
}

func (i impl) Get(id string) (item dictapimodels.RoleView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.RoleView{}, err
	}
	if rec == nil {
		return dictapimodels.RoleView{}, workflow.ErrNotFound
	}
	return dictapimodels.RoleConvert(*rec), nil
}

func (i impl) List() (list []dictapimodels.RoleView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.RoleView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.RoleConvert(rec))
	}
	return list, nil
}

func (i impl) Update(id string, request dictapimodels.RoleData) error {
	updMap := map[string]interface{}{
		"name":        request.Name,
		"description": request.Description,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("rol actualizado")
	return nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Info("rol eliminado")
	return nil
}

func (i impl) ListPermissions() (list []dictapimodels.PermissionView, err error) {
	recList, err := i.store.ListPermissions()
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.PermissionView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.PermissionConvert(rec))
	}
	return list, nil
}

func (i impl) SetPermissions(roleID string, request dictapimodels.RolePermissionsData) error {
	rec, err := i.store.GetByID(roleID)
	if err != nil {
		return err
	}
	if rec == nil {
		return workflow.ErrNotFound
	}
	err = i.store.SetPermissions(roleID, request.PermissionIDs)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", roleID).
		WithField("permissions", len(request.PermissionIDs)).
		Info("permisos del rol actualizados")
	return nil
}

func (i impl) RemovePermission(roleID, permissionID string) error {
	err := i.store.RemovePermission(roleID, permissionID)
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", roleID).
		WithField("permission_id", permissionID).
		Info("permiso removido del rol")
	return nil
}
