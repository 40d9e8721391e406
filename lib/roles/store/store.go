package rolestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hdgomez8/portal-uci-back-sub001/lib/workflow"
	"github.com/hdgomez8/portal-uci-back-sub001/models"
	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type Provider interface {
	Create(rec dbmodels.Role) (id string, err error)
	GetByID(id string) (rec *dbmodels.Role, err error)
	FindByName(name models.RoleName) (rec *dbmodels.Role, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List() (list []dbmodels.Role, err error)
	CreatePermission(rec dbmodels.Permission) (id string, err error)
	FindPermission(module models.Module, code models.Permission) (rec *dbmodels.Permission, err error)
	ListPermissions() (list []dbmodels.Permission, err error)
	SetPermissions(roleID string, permissionIDs []string) error
	RemovePermission(roleID, permissionID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Role) (id string, err error) {
	existedRec, err := i.FindByName(rec.Name)
	if err != nil {
		return "", err
	}
	if existedRec != nil {
		return "", errors.New("el rol ya existe")
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

func (i impl) GetByID(id string) (*dbmodels.Role, error) {
	rec := dbmodels.Role{}
	err := i.db.
		Preload("Permissions").
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

func (i impl) FindByName(name models.RoleName) (*dbmodels.Role, error) {
	rec := dbmodels.Role{}
	err := i.db.
		Preload("Permissions").
		Where("name = ?", name).
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
	result := i.db.
		Model(&dbmodels.Role{}).
		Where("id = ?", id).
		Updates(updMap)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return workflow.ErrNotFound
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("role_id = ?", id).
		Delete(&dbmodels.RolePermission{}).
		Error
	if err != nil {
		return err
	}
	rec := dbmodels.Role{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) List() (list []dbmodels.Role, err error) {
	list = []dbmodels.Role{}
	err = i.db.
		Preload("Permissions").
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreatePermission(rec dbmodels.Permission) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) FindPermission(module models.Module, code models.Permission) (*dbmodels.Permission, error) {
	rec := dbmodels.Permission{}
	err := i.db.
		Where("module = ?", module).
		Where("code = ?", code).
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

func (i impl) ListPermissions() (list []dbmodels.Permission, err error) {
	list = []dbmodels.Permission{}
	err = i.db.
		Order("module, code").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetPermissions(roleID string, permissionIDs []string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("role_id = ?", roleID).
			Delete(&dbmodels.RolePermission{}).
			Error
		if err != nil {
			return err
		}
		for _, permissionID := range permissionIDs {
			rec := dbmodels.RolePermission{
				RoleID:       roleID,
				PermissionID: permissionID,
			}
			err = tx.
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&rec).
				Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (i impl) RemovePermission(roleID, permissionID string) error {
	return i.db.
		Where("role_id = ?", roleID).
		Where("permission_id = ?", permissionID).
		Delete(&dbmodels.RolePermission{}).
		Error
}
