package dbmodels

import "github.com/hdgomez8/portal-uci-back-sub001/models"

type Role struct {
	BaseModel
	Name        models.RoleName `gorm:"type:varchar(100);uniqueIndex"`
	Description string          `gorm:"type:varchar(255)"`
	Permissions []Permission    `gorm:"many2many:role_permissions;"`
}

type Permission struct {
	BaseModel
	Module models.Module     `gorm:"type:varchar(100)"`
	Code   models.Permission `gorm:"type:varchar(100)"`
	Label  string            `gorm:"type:varchar(255)"`
}

// RolePermission - tabla de asociación, se escribe con upsert/delete explícitos
type RolePermission struct {
	RoleID       string `gorm:"type:varchar(36);primaryKey"`
	PermissionID string `gorm:"type:varchar(36);primaryKey"`
}
