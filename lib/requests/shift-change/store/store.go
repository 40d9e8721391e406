package shiftchangestore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/hdgomez8/portal-uci-back-sub001/lib/workflow"
	"github.com/hdgomez8/portal-uci-back-sub001/models"
	requestapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/request"
	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

type Provider interface {
	Create(rec dbmodels.ShiftChangeRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.ShiftChangeRequest, err error)
	Update(id string, updMap map[string]interface{}) error
	CASUpdateStatus(id string, expected, next models.RequestStatus, reviewerID string, reviewedAt time.Time, reason string) error
	CASUpdateVistoBueno(id string, expected, next models.VistoBuenoStatus, decidedAt time.Time) error
	Delete(id string) error
	List(filter requestapimodels.RequestFilter) (list []dbmodels.ShiftChangeRequest, err error)
	ListCount(filter requestapimodels.RequestFilter) (count int64, err error)
	Stats(employeeID string) (list []requestapimodels.StatusCount, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ShiftChangeRequest) (id string, err error) {
	err = i.db.
		Omit("Employee", "Replacement", "ReviewedBy").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ShiftChangeRequest, error) {
	rec := dbmodels.ShiftChangeRequest{}
	err := i.db.
		Where("id = ?", id).
		Preload("Employee").
		Preload("Replacement").
		Preload("ReviewedBy").
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
	tx := i.db.
		Model(&dbmodels.ShiftChangeRequest{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("registro no encontrado")
	}
	return nil
}

func (i impl) CASUpdateStatus(id string, expected, next models.RequestStatus, reviewerID string, reviewedAt time.Time, reason string) error {
	updMap := map[string]interface{}{
		"status":      next,
		"reviewed_at": reviewedAt,
	}
	if reviewerID != "" {
		updMap["reviewed_by_id"] = reviewerID
	}
	if reason != "" {
		updMap["rejection_reason"] = reason
	}
	tx := i.db.
		Model(&dbmodels.ShiftChangeRequest{}).
		Where("id = ?", id).
		Where("status = ?", expected).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return workflow.ErrConflict
	}
	return nil
}

// CASUpdateVistoBueno serializa la decisión del reemplazo igual que la cadena
// principal: una sola firma posible
func (i impl) CASUpdateVistoBueno(id string, expected, next models.VistoBuenoStatus, decidedAt time.Time) error {
	tx := i.db.
		Model(&dbmodels.ShiftChangeRequest{}).
		Where("id = ?", id).
		Where("visto_bueno_status = ?", expected).
		Updates(map[string]interface{}{
			"visto_bueno_status": next,
			"visto_bueno_at":     decidedAt,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return workflow.ErrConflict
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.ShiftChangeRequest{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) List(filter requestapimodels.RequestFilter) (list []dbmodels.ShiftChangeRequest, err error) {
	list = []dbmodels.ShiftChangeRequest{}
	page, limit := filter.GetPage()
	tx := i.applyFilter(filter).
		Preload("Employee").
		Preload("Replacement").
		Preload("ReviewedBy").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter requestapimodels.RequestFilter) (count int64, err error) {
	err = i.applyFilter(filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) Stats(employeeID string) (list []requestapimodels.StatusCount, err error) {
	list = []requestapimodels.StatusCount{}
	tx := i.db.
		Model(&dbmodels.ShiftChangeRequest{}).
		Select("status, count(*) as count").
		Group("status")
	if employeeID != "" {
		tx = tx.Where("employee_id = ?", employeeID)
	}
	err = tx.Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) applyFilter(filter requestapimodels.RequestFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.ShiftChangeRequest{})
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if len(filter.Statuses) > 0 {
		tx = tx.Where("status IN ?", filter.Statuses)
	}
	return tx
}
