package dbmodels

import (
	"fmt"
	"strings"

	"github.com/hdgomez8/portal-uci-back-sub001/models"
)

type Employee struct {
	BaseModel
	Name         string `gorm:"type:varchar(255)"`
	LastName     string `gorm:"type:varchar(255)"`
	Email        string `gorm:"type:varchar(255);uniqueIndex"`
	DocumentID   string `gorm:"type:varchar(50);index"`
	Position     string `gorm:"type:varchar(255)"`
	Password     string `gorm:"type:varchar(100)"`
	Status       models.EmployeeStatus `gorm:"type:varchar(50)"`
	RoleID       *string `gorm:"type:varchar(36)"`
	Role         *Role
	AreaID       *string `gorm:"type:varchar(36)"`
	Area         *Area
	DepartmentID *string `gorm:"type:varchar(36)"`
	Department   *Department
	BossID       *string   `gorm:"type:varchar(36)"`
	Boss         *Employee `gorm:"foreignKey:BossID"`
}

func (e Employee) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%v %v", e.Name, e.LastName))
}

func (e Employee) GetRoleName() models.RoleName {
	if e.Role == nil {
		return models.RoleEmpleado
	}
	return e.Role.Name
}
