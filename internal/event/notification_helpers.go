package event

import (
	"context"
	"fmt"

	"report-service/internal/models"
)

// ReportNotifier adapts the notification publisher to the report service's
// notifier contract.
type ReportNotifier struct {
	publisher *NotificationPublisher
}

func NewReportNotifier(publisher *NotificationPublisher) *ReportNotifier {
	return &ReportNotifier{publisher: publisher}
}

// NotifyReportGenerated announces that a status document was generated and
// archived for the given application.
func (n *ReportNotifier) NotifyReportGenerated(ctx context.Context, app *models.Application, objectName string) error {
	event := NotificationEventPushModel{
		LstUserIds: []string{app.Email},
		Title:      "Your application status report is ready",
		Body: fmt.Sprintf("A status report for application %s has been generated.",
			app.ReferenceNumber),
		Data: map[string]interface{}{
			"application_id":   app.ID.String(),
			"reference_number": app.ReferenceNumber,
			"state":            string(app.State),
			"object_name":      objectName,
		},
	}

	return n.publisher.PublishNotification(ctx, event)
}
