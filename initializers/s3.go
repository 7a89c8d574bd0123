package initializers

import (
	"context"
	"project-request-backend/config"
	filestorage "project-request-backend/lib/file-storage"
	s3client "project-request-backend/s3"
	"strings"

	log "github.com/sirupsen/logrus"
)

// InitS3 без ключей доступа загрузка файлов отключена
func InitS3(ctx context.Context) filestorage.Provider {
	if config.Conf.S3.AccessKeyID == "" {
		log.Warn("S3 не настроен, заявки с файлами будут отклонены")
		return nil
	}
	minioClient, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, config.Conf.S3.Region, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return nil
	}

	folder := strings.Trim(config.Conf.S3.Folder, "/")
	err = s3client.MakeBucket(ctx, minioClient, config.Conf.S3.BucketName, config.Conf.S3.Region, folder)
	if err != nil {
		log.WithError(err).Error("S3 не удалось подготовить бакет для загрузок")
	}

	log.Info("S3 клиент успешно инициализирован")
	return filestorage.NewInstance(minioClient, config.Conf.S3.BucketName, folder, config.Conf.S3.PublicURL)
}
