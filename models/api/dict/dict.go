package dictapimodels

import (
	"strings"

	"github.com/pkg/errors"

	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type DepartmentData struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (r DepartmentData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("se requiere el nombre del departamento")
	}
	return nil
}

type DepartmentView struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Code  string     `json:"code,omitempty"`
	Areas []AreaView `json:"areas,omitempty"`
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	view := DepartmentView{
		ID:   rec.ID,
		Name: rec.Name,
		Code: rec.Code,
	}
	for _, area := range rec.Areas {
		view.Areas = append(view.Areas, AreaConvert(area))
	}
	return view
}

type AreaData struct {
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
	BossID       string `json:"boss_id"`
}

func (r AreaData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("se requiere el nombre del área")
	}
	if r.DepartmentID == "" {
		return errors.New("se requiere el departamento del área")
	}
	return nil
}

type AreaView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
	Department   string `json:"department,omitempty"`
	BossName     string `json:"boss_name,omitempty"`
}

func AreaConvert(rec dbmodels.Area) AreaView {
	view := AreaView{
		ID:           rec.ID,
		Name:         rec.Name,
		DepartmentID: rec.DepartmentID,
	}
	if rec.Department != nil {
		view.Department = rec.Department.Name
	}
	if rec.Boss != nil {
		view.BossName = rec.Boss.GetFullName()
	}
	return view
}
