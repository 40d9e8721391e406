package dbmodels

import (
	"time"

	"github.com/hdgomez8/portal-uci-back-sub001/models"
)

type VacationRequest struct {
	BaseModel
	EmployeeID       string `gorm:"type:varchar(36);index"`
	Employee         *Employee
	StartDate        time.Time
	EndDate          time.Time
	Days             int
	Comment          string
	Status           models.RequestStatus `gorm:"type:varchar(50);index"`
	ReviewedByID     *string              `gorm:"type:varchar(36)"`
	ReviewedBy       *Employee            `gorm:"foreignKey:ReviewedByID"`
	ReviewedAt       *time.Time
	RejectionReason  string `gorm:"type:varchar(1000)"`
	ApprovalDocument string `gorm:"type:varchar(255)"`
}
