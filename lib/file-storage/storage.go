package filestorage

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// UploadReferenceFile сохраняет файл и возвращает ссылку для скачивания
	UploadReferenceFile(ctx context.Context, fileName, contentType string, fileReader io.Reader, fileSize int64) (fileURL string, err error)
}

type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type impl struct {
	s3client   objectPutter
	bucketName string
	folder     string
	baseURL    string
}

// NewInstance publicURL - внешний адрес хранилища, по умолчанию адрес S3 endpoint
func NewInstance(s3client *minio.Client, bucketName, folder, publicURL string) Provider {
	if publicURL == "" {
		publicURL = s3client.EndpointURL().String()
	}
	return newInstance(s3client, bucketName, folder, publicURL)
}

func newInstance(s3client objectPutter, bucketName, folder, publicURL string) *impl {
	return &impl{
		s3client:   s3client,
		bucketName: bucketName,
		folder:     strings.Trim(folder, "/"),
		baseURL:    strings.TrimRight(publicURL, "/"),
	}
}

func (i impl) UploadReferenceFile(ctx context.Context, fileName, contentType string, fileReader io.Reader, fileSize int64) (string, error) {
	objectName := i.getObjectName(fileName)
	logger := log.WithFields(log.Fields{
		"file_name":    fileName,
		"object_name":  objectName,
		"content_type": contentType,
		"size":         fileSize,
	})
	_, err := i.s3client.PutObject(ctx, i.bucketName, objectName, fileReader, fileSize, getPutOptions(fileName, contentType))
	if err != nil {
		logger.WithError(err).Error("Ошибка загрузки файла в S3")
		return "", errors.Wrapf(err, "ошибка загрузки файла %v", fileName)
	}
	logger.Info("файл загружен в S3")
	return i.getFileURL(objectName), nil
}

func (i impl) getObjectName(fileName string) string {
	name := getObjectFileName(fileName)
	if i.folder == "" {
		return name
	}
	return i.folder + "/" + name
}

func (i impl) getFileURL(objectName string) string {
	parts := strings.Split(objectName, "/")
	for idx, part := range parts {
		parts[idx] = url.PathEscape(part)
	}
	return i.baseURL + "/" + url.PathEscape(i.bucketName) + "/" + strings.Join(parts, "/")
}
