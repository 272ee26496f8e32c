package reportstorage

import (
	"bytes"
	"context"
	"io"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type s3Impl struct {
	s3client   *minio.Client
	bucketName string
}

// NewS3 хранит файлы в бакете с ключом <reportID>/<fileName>
func NewS3(ctx context.Context, s3client *minio.Client, bucketName string) (Provider, error) {
	i := &s3Impl{
		s3client:   s3client,
		bucketName: bucketName,
	}
	if err := i.makeBucket(ctx); err != nil {
		return nil, errors.Wrap(err, "ошибка создания бакета для отчётов")
	}
	return i, nil
}

func (i s3Impl) makeBucket(ctx context.Context) error {
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: location})
}

func (i s3Impl) Save(ctx context.Context, reportID, fileName, contentType string, data []byte) error {
	if err := checkReportID(reportID); err != nil {
		return err
	}
	_, err := i.s3client.PutObject(ctx, i.bucketName, objectKey(reportID, fileName), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки файла отчёта в S3")
	}
	return nil
}

func (i s3Impl) Get(ctx context.Context, reportID, fileName string) ([]byte, error) {
	if err := checkReportID(reportID); err != nil {
		return nil, err
	}
	obj, err := i.s3client.GetObject(ctx, i.bucketName, objectKey(reportID, fileName), minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла отчёта из S3")
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "ошибка чтения файла отчёта из S3")
	}
	return data, nil
}

func (i s3Impl) DeleteExpired(ctx context.Context, olderThan time.Time) (deleted int, err error) {
	objects := i.s3client.ListObjects(ctx, i.bucketName, minio.ListObjectsOptions{Recursive: true})
	for obj := range objects {
		if obj.Err != nil {
			return deleted, errors.Wrap(obj.Err, "ошибка получения списка файлов отчётов")
		}
		if !obj.LastModified.Before(olderThan) {
			continue
		}
		if err = i.s3client.RemoveObject(ctx, i.bucketName, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			log.WithError(err).WithField("key", obj.Key).Warn("ошибка удаления файла отчёта из S3")
			continue
		}
		deleted++
	}
	return deleted, nil
}

func objectKey(reportID, fileName string) string {
	return path.Join(reportID, path.Base(fileName))
}
