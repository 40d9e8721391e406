package initializers

import (
	"context"

	"github.com/hdgomez8/portal-uci-back-sub001/config"
	"github.com/hdgomez8/portal-uci-back-sub001/fiberlog"
	authhandler "github.com/hdgomez8/portal-uci-back-sub001/lib/auth"
	areaprovider "github.com/hdgomez8/portal-uci-back-sub001/lib/dicts/area"
	departmentprovider "github.com/hdgomez8/portal-uci-back-sub001/lib/dicts/department"
	docstorage "github.com/hdgomez8/portal-uci-back-sub001/lib/doc-storage"
	employeehandler "github.com/hdgomez8/portal-uci-back-sub001/lib/employee"
	xlsexport "github.com/hdgomez8/portal-uci-back-sub001/lib/export/xls"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/notify"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/rbac"
	severancehandler "github.com/hdgomez8/portal-uci-back-sub001/lib/requests/severance"
	shiftchangehandler "github.com/hdgomez8/portal-uci-back-sub001/lib/requests/shift-change"
	vacationhandler "github.com/hdgomez8/portal-uci-back-sub001/lib/requests/vacation"
	roleshandler "github.com/hdgomez8/portal-uci-back-sub001/lib/roles"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	employeehandler.NewHandler()
	departmentprovider.NewHandler()
	areaprovider.NewHandler()
	roleshandler.NewHandler()
	notify.NewHandler()
	docstorage.NewHandler()
	vacationhandler.NewHandler()
	shiftchangehandler.NewHandler()
	severancehandler.NewHandler()
	authhandler.NewHandler()
	xlsexport.NewHandler()
	rbac.NewHandler()
}
