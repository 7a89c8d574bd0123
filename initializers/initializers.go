package initializers

import (
	"context"
	"project-request-backend/config"
	"project-request-backend/fiberlog"
	messagetemplate "project-request-backend/lib/message-template"
	projectrequest "project-request-backend/lib/project-request"
	"project-request-backend/models"
)

var LoggerConfig *fiberlog.Config

// Services собранные при старте обработчики, передаются в роутеры явно
type Services struct {
	ProjectRequest projectrequest.Provider
}

func InitAllServices(ctx context.Context) *Services {
	LoggerConfig = InitLogger()
	config.InitConfig()
	mailer := InitSmtp()
	fileStorage := InitS3(ctx)
	templates := messagetemplate.NewHandler(config.Conf.Invoice.Theme)
	return &Services{
		ProjectRequest: projectrequest.NewHandler(projectrequest.Config{
			Agency: models.AgencyBranding{
				Name:    config.Conf.Agency.Name,
				Website: config.Conf.Agency.Website,
				Phone:   config.Conf.Agency.Phone,
				Email:   config.Conf.Agency.Email,
			},
			SenderEmail: config.Conf.SenderAddress(),
			AdminEmail:  config.Conf.Admin.Email,
			AttachPdf:   *config.Conf.Invoice.AttachPdf,
		}, mailer, fileStorage, templates),
	}
}
