package services

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Service descarga artefactos desde un bucket de S3; hoy su único uso es
// traer el artefacto del modelo al arrancar cuando no se distribuye con el
// binario
type S3Service struct {
	BucketName string
	Client     *s3.Client
}

// NewS3Service inicializa el cliente de S3 para el bucket dado
func NewS3Service(ctx context.Context, region, bucketName string) (*S3Service, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("el nombre del bucket es requerido")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("error al cargar la configuración de AWS: %w", err)
	}

	return &S3Service{
		BucketName: bucketName,
		Client:     s3.NewFromConfig(cfg),
	}, nil
}

// DescargarArtefacto trae el objeto completo a memoria. Los artefactos del
// modelo pesan pocos MB, no hace falta streaming.
func (s *S3Service) DescargarArtefacto(ctx context.Context, key string) ([]byte, error) {
	salida, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("error al descargar s3://%s/%s: %w", s.BucketName, key, err)
	}
	defer salida.Body.Close()

	datos, err := io.ReadAll(salida.Body)
	if err != nil {
		return nil, fmt.Errorf("error al leer s3://%s/%s: %w", s.BucketName, key, err)
	}

	return datos, nil
}
