package s3client

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

func NewClient(endpoint, accessKeyID, secretAccessKey, region string, useSSL bool) (*minio.Client, error) {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка инициализации клиента S3")
	}
	return minioClient, nil
}

// MakeBucket создает бакет, если его нет, и открывает на чтение каталог загрузок:
// ссылки на файлы уходят в письме без подписи.
func MakeBucket(ctx context.Context, client *minio.Client, bucketName, location, folder string) error {
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return err
		}
	}
	return client.SetBucketPolicy(ctx, bucketName, publicReadPolicy(bucketName, folder))
}

func publicReadPolicy(bucketName, folder string) string {
	folder = strings.Trim(folder, "/")
	resource := fmt.Sprintf("arn:aws:s3:::%s/*", bucketName)
	if folder != "" {
		resource = fmt.Sprintf("arn:aws:s3:::%s/%s/*", bucketName, folder)
	}
	return fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":[%q]}]}`, resource)
}
