package authhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/hdgomez8/portal-uci-back-sub001/db"
	employeestore "github.com/hdgomez8/portal-uci-back-sub001/lib/employee/store"
	authutils "github.com/hdgomez8/portal-uci-back-sub001/lib/utils/auth-utils"
	initchecker "github.com/hdgomez8/portal-uci-back-sub001/lib/utils/init-checker"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/workflow"
	"github.com/hdgomez8/portal-uci-back-sub001/models"
	authapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/auth"
	employeeapimodels "github.com/hdgomez8/portal-uci-back-sub001/models/api/employee"
)

type Provider interface {
	Login(data authapimodels.LoginData) (tokens authapimodels.TokenView, err error)
	Refresh(data authapimodels.RefreshData) (tokens authapimodels.TokenView, err error)
	Me(userID string) (item employeeapimodels.EmployeeView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: employeestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store employeestore.Provider
}

func (i impl) Login(data authapimodels.LoginData) (tokens authapimodels.TokenView, err error) {
	logger := log.WithField("email", data.Email)
	rec, err := i.store.FindByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("error consultando el empleado en el login")
		return authapimodels.TokenView{}, err
	}
	if rec == nil || rec.Password != authutils.GetMD5Hash(data.Password) {
		return authapimodels.TokenView{}, errors.Wrap(workflow.ErrUnauthorized, "credenciales inválidas")
	}
	if rec.Status == models.EmployeeDismissed {
		return authapimodels.TokenView{}, errors.Wrap(workflow.ErrUnauthorized, "el empleado está retirado")
	}
	return i.buildTokens(rec.ID, rec.GetFullName(), rec.GetRoleName())
}

func (i impl) Refresh(data authapimodels.RefreshData) (tokens authapimodels.TokenView, err error) {
	claims, err := authutils.ParseToken(data.RefreshToken)
	if err != nil {
		return authapimodels.TokenView{}, errors.Wrap(workflow.ErrUnauthorized, "refresh token inválido")
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return authapimodels.TokenView{}, errors.Wrap(workflow.ErrUnauthorized, "refresh token inválido")
	}
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.TokenView{}, err
	}
	if rec == nil || rec.Status == models.EmployeeDismissed {
		return authapimodels.TokenView{}, errors.Wrap(workflow.ErrUnauthorized, "el empleado ya no tiene acceso")
	}
	return i.buildTokens(rec.ID, rec.GetFullName(), rec.GetRoleName())
}

func (i impl) Me(userID string) (item employeeapimodels.EmployeeView, err error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, workflow.ErrNotFound
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) buildTokens(userID, name string, role models.RoleName) (authapimodels.TokenView, error) {
	accessToken, err := authutils.GetToken(userID, name, role)
	if err != nil {
		return authapimodels.TokenView{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		return authapimodels.TokenView{}, err
	}
	log.
		WithField("user_id", userID).
		Info("sesión iniciada")
	return authapimodels.TokenView{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
