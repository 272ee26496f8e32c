package initializers

import (
	"context"

	"career-tools-backend/config"
	reportstorage "career-tools-backend/lib/report-storage"
	s3client "career-tools-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitReportStorage(ctx context.Context) reportstorage.Provider {
	if config.Conf.Report.Storage == config.ReportStorageS3 {
		minioClient, err := s3client.NewClient(ctx, config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
			config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
		if err != nil {
			panic(err.Error())
		}
		storage, err := reportstorage.NewS3(ctx, minioClient, config.Conf.S3.BucketName)
		if err != nil {
			panic(err.Error())
		}
		log.WithField("bucket", config.Conf.S3.BucketName).Info("Отчёты хранятся в S3")
		return storage
	}
	storage, err := reportstorage.NewLocal(config.Conf.Report.TmpDir)
	if err != nil {
		panic(err.Error())
	}
	log.WithField("dir", config.Conf.Report.TmpDir).Info("Отчёты хранятся локально")
	return storage
}
