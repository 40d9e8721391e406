package dbmodels

import (
	"time"

	"github.com/hdgomez8/portal-uci-back-sub001/models"
)

type SeveranceRequest struct {
	BaseModel
	EmployeeID       string `gorm:"type:varchar(36);index"`
	Employee         *Employee
	LastWorkingDay   time.Time
	Reason           string               `gorm:"type:varchar(1000)"`
	Status           models.RequestStatus `gorm:"type:varchar(50);index"`
	ReviewedByID     *string              `gorm:"type:varchar(36)"`
	ReviewedBy       *Employee            `gorm:"foreignKey:ReviewedByID"`
	ReviewedAt       *time.Time
	RejectionReason  string `gorm:"type:varchar(1000)"`
	ApprovalDocument string `gorm:"type:varchar(255)"`
}
