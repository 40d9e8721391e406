package s3client

import (
	"bytes"
	"context"

	"github.com/minio/minio-go/v7"

	"github.com/hdgomez8/portal-uci-back-sub001/config"
)

var Client *minio.Client

// EnsureBucket crea el bucket de actas si no existe
func EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := Client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return Client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}

func PutObject(ctx context.Context, objectName string, body []byte, contentType string) error {
	_, err := Client.PutObject(ctx, config.Conf.S3.BucketName, objectName,
		bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

func GetObject(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := Client.GetObject(ctx, config.Conf.S3.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	buf := new(bytes.Buffer)
	if _, err = buf.ReadFrom(obj); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
