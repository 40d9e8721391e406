package employeeapimodels

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/hdgomez8/portal-uci-back-sub001/models"
	apimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api"
	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type EmployeeData struct {
	Name         string `json:"name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	DocumentID   string `json:"document_id"`
	Position     string `json:"position"`
	Password     string `json:"password,omitempty"`
	RoleID       string `json:"role_id"`
	AreaID       string `json:"area_id"`
	DepartmentID string `json:"department_id"`
	BossID       string `json:"boss_id"`
}

func (r EmployeeData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("se requiere el nombre del empleado")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("se requiere el correo del empleado")
	}
	if strings.TrimSpace(r.DocumentID) == "" {
		return errors.New("se requiere el documento de identidad")
	}
	return nil
}

type EmployeeFilter struct {
	apimodels.Pagination
	Search string                `json:"search"`
	AreaID string                `json:"area_id"`
	Status models.EmployeeStatus `json:"status"`
}

func (r EmployeeFilter) Validate() error {
	return r.Pagination.Validate()
}

type EmployeeView struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	LastName   string                `json:"last_name"`
	FullName   string                `json:"full_name"`
	Email      string                `json:"email"`
	DocumentID string                `json:"document_id"`
	Position   string                `json:"position"`
	Status     models.EmployeeStatus `json:"status"`
	Role       models.RoleName       `json:"role,omitempty"`
	RoleName   string                `json:"role_name,omitempty"`
	Area       string                `json:"area,omitempty"`
	Department string                `json:"department,omitempty"`
	BossName   string                `json:"boss_name,omitempty"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	view := EmployeeView{
		ID:         rec.ID,
		Name:       rec.Name,
		LastName:   rec.LastName,
		FullName:   rec.GetFullName(),
		Email:      rec.Email,
		DocumentID: rec.DocumentID,
		Position:   rec.Position,
		Status:     rec.Status,
	}
	if rec.Role != nil {
		view.Role = rec.Role.Name
		view.RoleName = rec.Role.Name.ToHuman()
	}
	if rec.Area != nil {
		view.Area = rec.Area.Name
	}
	if rec.Department != nil {
		view.Department = rec.Department.Name
	}
	if rec.Boss != nil {
		view.BossName = rec.Boss.GetFullName()
	}
	return view
}
