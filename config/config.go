package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr  string `default:"" env:"APP_HOST"`
		Port        int    `default:"3000" env:"PORT"`
		BodyLimitMb int    `default:"50" env:"APP_BODY_LIMIT_MB"`
		StaticDir   string `default:"" env:"APP_STATIC_DIR"`     // каталог фронтенда, пусто - не раздаем
		CorsOrigins string `default:"*" env:"APP_CORS_ORIGINS"` // через запятую
		SwaggerFile string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
	}
	Smtp struct {
		Provider string `default:"smtp" env:"MAIL_PROVIDER"` // smtp | postmark
		User     string `default:"" env:"SMTP_USER"`
		Password string `default:"" env:"SMTP_PASS"`
		Host     string `default:"" env:"SMTP_HOST"`
		Port     string `default:"587" env:"SMTP_PORT"`
		Secure   *bool  `default:"false" env:"SMTP_SECURE"`
		Sender   string `default:"" env:"SMTP_SENDER"` // адрес отправителя, если отличается от SMTP_USER
	}
	Postmark struct {
		ServerToken  string `default:"" env:"POSTMARK_SERVER_TOKEN"`
		AccountToken string `default:"" env:"POSTMARK_ACCOUNT_TOKEN"`
	}
	Admin struct {
		Email string `default:"admin@example.com" env:"ADMIN_EMAIL"`
	}
	Agency struct {
		Name    string `default:"My Agency" env:"AGENCY_NAME"`
		Website string `default:"https://example.com" env:"AGENCY_WEBSITE"`
		Phone   string `default:"" env:"AGENCY_PHONE"`
		Email   string `default:"support@example.com" env:"AGENCY_EMAIL"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"project-requests" env:"S3_BUCKET_NAME"`
		Region          string `default:"us-east-1" env:"S3_REGION"`
		Folder          string `default:"portfolio_uploads" env:"S3_FOLDER"`
		PublicURL       string `default:"" env:"S3_PUBLIC_URL"` // базовый адрес для ссылок на файлы
	}
	Invoice struct {
		Theme     string `default:"premium" env:"INVOICE_THEME"`
		AttachPdf *bool  `default:"false" env:"INVOICE_ATTACH_PDF"`
	}
	NotifyBot struct {
		Addr string `default:"" env:"NOTIFY_BOT_ADDR"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Debug("файл .env не найден, используем переменные окружения")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

// SmtpSecure implicit TLS включается флагом или портом 465
func (c *Configuration) SmtpSecure() bool {
	if c.Smtp.Secure != nil && *c.Smtp.Secure {
		return true
	}
	return c.Smtp.Port == "465"
}

func (c *Configuration) SenderAddress() string {
	if c.Smtp.Sender != "" {
		return c.Smtp.Sender
	}
	return c.Smtp.User
}
