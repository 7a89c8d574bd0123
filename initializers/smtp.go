package initializers

import (
	"project-request-backend/config"
	"project-request-backend/lib/smtp"

	log "github.com/sirupsen/logrus"
)

const mailProviderPostmark = "postmark"

func InitSmtp() smtp.Provider {
	var mailer smtp.Provider
	if config.Conf.Smtp.Provider == mailProviderPostmark {
		mailer = smtp.ConnectPostmark(config.Conf.Postmark.ServerToken, config.Conf.Postmark.AccountToken)
	} else {
		mailer = smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
			config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.SmtpSecure())
	}
	if !mailer.IsConfigured() {
		log.WithField("provider", config.Conf.Smtp.Provider).Warn("почтовый сервис не настроен, письма отправляться не будут")
	}
	return mailer
}
