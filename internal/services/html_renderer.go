package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"path"
	"strings"

	"report-service/internal/database/minio"
)

// StorageTemplateRenderer fetches HTML templates from object storage and
// executes them with a view model. The template URI is the bucket name
// followed by the object path, e.g.
// "report-templates/statements/pending.html".
type StorageTemplateRenderer struct {
	storage *minio.MinioClient
}

func NewStorageTemplateRenderer(storage *minio.MinioClient) *StorageTemplateRenderer {
	return &StorageTemplateRenderer{storage: storage}
}

func (r *StorageTemplateRenderer) Render(ctx context.Context, templateURI string, model any) (string, error) {
	bucketName, objectName, err := splitStorageURI(templateURI)
	if err != nil {
		return "", err
	}

	slog.Info("Fetching HTML template from storage",
		"bucket", bucketName,
		"object", objectName)

	obj, err := r.storage.GetFile(ctx, bucketName, objectName)
	if err != nil {
		return "", fmt.Errorf("failed to get template from storage: %w", err)
	}
	defer obj.Close()

	templateData, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("failed to read template data: %w", err)
	}

	tmpl, err := template.New(path.Base(objectName)).Parse(string(templateData))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", objectName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, model); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", objectName, err)
	}

	return buf.String(), nil
}

// splitStorageURI splits "bucket/path/to/object" into bucket and object name.
func splitStorageURI(uri string) (string, string, error) {
	trimmed := strings.TrimPrefix(uri, "/")
	bucketName, objectName, found := strings.Cut(trimmed, "/")
	if !found || bucketName == "" || objectName == "" {
		return "", "", fmt.Errorf("invalid template URI %q: expected bucket/object", uri)
	}
	return bucketName, objectName, nil
}
