package dbmodels

import (
	"time"

	"github.com/hdgomez8/portal-uci-back-sub001/models"
)

type ShiftChangeRequest struct {
	BaseModel
	EmployeeID    string `gorm:"type:varchar(36);index"`
	Employee      *Employee
	ReplacementID string    `gorm:"type:varchar(36);index"`
	Replacement   *Employee `gorm:"foreignKey:ReplacementID"`
	ShiftDate     time.Time
	ProposedDate  time.Time
	Comment       string
	Status        models.RequestStatus `gorm:"type:varchar(50);index"`
	// firma del reemplazo, corre aparte de la cadena principal
	VistoBuenoStatus models.VistoBuenoStatus `gorm:"type:varchar(50)"`
	VistoBuenoAt     *time.Time
	ReviewedByID     *string   `gorm:"type:varchar(36)"`
	ReviewedBy       *Employee `gorm:"foreignKey:ReviewedByID"`
	ReviewedAt       *time.Time
	RejectionReason  string `gorm:"type:varchar(1000)"`
	ApprovalDocument string `gorm:"type:varchar(255)"`
}
