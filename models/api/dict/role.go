package dictapimodels

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/hdgomez8/portal-uci-back-sub001/models"
	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type RoleData struct {
	Name        models.RoleName `json:"name"`
	Description string          `json:"description"`
}

func (r RoleData) Validate() error {
	if strings.TrimSpace(string(r.Name)) == "" {
		return errors.New("se requiere el nombre del rol")
	}
	return nil
}

type RolePermissionsData struct {
	PermissionIDs []string `json:"permission_ids"`
}

func (r RolePermissionsData) Validate() error {
	if len(r.PermissionIDs) == 0 {
		return errors.New("se requiere al menos un permiso")
	}
	return nil
}

type RoleView struct {
	ID          string           `json:"id"`
	Name        models.RoleName  `json:"name"`
	HumanName   string           `json:"human_name"`
	Description string           `json:"description,omitempty"`
	Permissions []PermissionView `json:"permissions,omitempty"`
}

type PermissionView struct {
	ID     string            `json:"id"`
	Module models.Module     `json:"module"`
	Code   models.Permission `json:"code"`
	Label  string            `json:"label,omitempty"`
}

func RoleConvert(rec dbmodels.Role) RoleView {
	view := RoleView{
		ID:          rec.ID,
		Name:        rec.Name,
		HumanName:   rec.Name.ToHuman(),
		Description: rec.Description,
	}
	for _, perm := range rec.Permissions {
		view.Permissions = append(view.Permissions, PermissionConvert(perm))
	}
	return view
}

func PermissionConvert(rec dbmodels.Permission) PermissionView {
	return PermissionView{
		ID:     rec.ID,
		Module: rec.Module,
		Code:   rec.Code,
		Label:  rec.Label,
	}
}
