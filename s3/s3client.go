package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// NewClient создаёт клиента S3 и проверяет соединение
func NewClient(ctx context.Context, endpoint, accessKeyID, secretAccessKey string, useSSL bool) (*minio.Client, error) {
	if endpoint == "" {
		return nil, errors.New("не задан адрес S3 (S3_ENDPOINT)")
	}
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка инициализации клиента S3")
	}
	if _, err = minioClient.ListBuckets(ctx); err != nil {
		return nil, errors.Wrap(err, "S3 соединение не удалось, ListBuckets вернул ошибку")
	}
	return minioClient, nil
}
