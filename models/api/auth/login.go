package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginData) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("se requiere el correo")
	}
	if r.Password == "" {
		return errors.New("se requiere la contraseña")
	}
	return nil
}

type RefreshData struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshData) Validate() error {
	if r.RefreshToken == "" {
		return errors.New("se requiere el refresh token")
	}
	return nil
}

type TokenView struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
