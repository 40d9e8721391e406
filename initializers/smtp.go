package initializers

import (
	"github.com/hdgomez8/portal-uci-back-sub001/config"
	"github.com/hdgomez8/portal-uci-back-sub001/lib/smtp"
)

func InitSmtp() {
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, *config.Conf.Smtp.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
}
