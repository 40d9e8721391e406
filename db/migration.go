package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "github.com/hdgomez8/portal-uci-back-sub001/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("ejecutando migraciones")
	if err := DB.AutoMigrate(&dbmodels.Role{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Role")
	}
	if err := DB.AutoMigrate(&dbmodels.Permission{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Permission")
	}
	if err := DB.AutoMigrate(&dbmodels.RolePermission{}); err != nil {
		return errors.Wrap(err, "error creando la estructura RolePermission")
	}
	if err := DB.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Department")
	}
	if err := DB.AutoMigrate(&dbmodels.Area{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Area")
	}
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "error creando la estructura Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.VacationRequest{}); err != nil {
		return errors.Wrap(err, "error creando la estructura VacationRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.ShiftChangeRequest{}); err != nil {
		return errors.Wrap(err, "error creando la estructura ShiftChangeRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.SeveranceRequest{}); err != nil {
		return errors.Wrap(err, "error creando la estructura SeveranceRequest")
	}
	log.Info("migraciones completadas")
	return nil
}
