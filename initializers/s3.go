package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"github.com/hdgomez8/portal-uci-back-sub001/config"
	s3client "github.com/hdgomez8/portal-uci-back-sub001/s3"
)

func InitS3() {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("error inicializando el cliente S3")
		return
	}

	s3client.Client = minioClient
	if err = s3client.EnsureBucket(context.Background()); err != nil {
		log.WithError(err).Error("la conexión S3 falló, no se pudo verificar el bucket de actas")
		return
	}
	log.Info("cliente S3 inicializado")
}
