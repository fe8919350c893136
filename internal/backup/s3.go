package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rastreadormanager/rastreador-api/internal/config"
	"github.com/rastreadormanager/rastreador-api/internal/models"
)

// ======================================================
// BACKUP DO SNAPSHOT PARA S3
// ======================================================

// Uploader manda uma cópia datada do snapshot completo (clientes +
// templates) para um bucket. É um extra operacional sob demanda; a
// persistência de verdade continua sendo o storage local.
type Uploader struct {
	client *s3.Client
	bucket string
}

// NewUploader devolve nil quando o bucket não está configurado.
func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	return &Uploader{client: client, bucket: cfg.S3Bucket}
}

type snapshotPayload struct {
	ExportedAt time.Time         `json:"exported_at"`
	Clients    []models.Client   `json:"clients"`
	Templates  []models.Template `json:"templates"`
}

func (u *Uploader) Upload(
	ctx context.Context,
	clients []models.Client,
	templates []models.Template,
	now time.Time,
) (string, error) {

	payload := snapshotPayload{
		ExportedAt: now,
		Clients:    clients,
		Templates:  templates,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	key := fmt.Sprintf("backups/rastreador_%s.json", now.Format("2006-01-02_15-04-05"))

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("upload snapshot: %w", err)
	}

	return key, nil
}
