package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"report-service/internal/database/minio"
)

// ReportStorageService archives rendered status documents in object storage.
type ReportStorageService struct {
	storage *minio.MinioClient
}

func NewReportStorageService(storage *minio.MinioClient) *ReportStorageService {
	return &ReportStorageService{storage: storage}
}

// UploadRenderedReport stores the PDF under the generated-reports bucket and
// returns the object name. Object names carry the reference number and a
// timestamp so repeated generations never overwrite each other.
func (s *ReportStorageService) UploadRenderedReport(ctx context.Context, referenceNumber string, pdf []byte) (string, error) {
	objectName := fmt.Sprintf("status-reports/%s_%s.pdf", referenceNumber, time.Now().Format("20060102T150405"))

	slog.Info("Uploading rendered report to storage",
		"bucket", minio.Storage.GeneratedReports,
		"object_name", objectName,
		"size_bytes", len(pdf))

	err := s.storage.UploadBytes(ctx, minio.Storage.GeneratedReports, objectName, pdf, "application/pdf")
	if err != nil {
		return "", fmt.Errorf("failed to upload rendered report: %w", err)
	}

	return objectName, nil
}
