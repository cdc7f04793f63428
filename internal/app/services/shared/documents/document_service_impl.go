package documents

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"skinbloom-service/internal/app/contracts"
	"skinbloom-service/internal/app/models"
	"skinbloom-service/internal/pkg/constvars"
	"skinbloom-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// documentTemplate renders every artifact as a title plus a label/value
// table. html/template escapes the values, which include free text entered
// by patients and dermatologists.
var documentTemplate = template.Must(template.New("document").Parse(
	`<html><head><title>{{.Title}}</title></head><body><h1>{{.Title}}</h1><table>` +
		`{{range .Fields}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>{{end}}` +
		`</table></body></html>`))

type documentField struct {
	Label string
	Value string
}

type documentData struct {
	Title  string
	Fields []documentField
}

func appendField(fields []documentField, label, value string) []documentField {
	if value == "" {
		return fields
	}
	return append(fields, documentField{Label: label, Value: value})
}

// documentService renders consultation reports and payment receipts as HTML
// artifacts and stores them in object storage. Rendering is a best-effort
// side effect; callers log failures and keep going.
type documentService struct {
	Storage contracts.Storage
	Log     *zap.Logger
}

func NewDocumentService(storage contracts.Storage, logger *zap.Logger) contracts.DocumentService {
	return &documentService{
		Storage: storage,
		Log:     logger,
	}
}

func (s *documentService) RenderConsultationReport(ctx context.Context, ticket *models.Ticket, consultation *models.Consultation) (string, error) {
	var fields []documentField
	fields = appendField(fields, "Ticket", ticket.ID)
	fields = appendField(fields, "Patient", ticket.PatientID)
	fields = appendField(fields, "Dermatologist", consultation.DermatologistID)
	fields = appendField(fields, "Concern", ticket.Concern)
	fields = appendField(fields, "Diagnosis", consultation.Diagnosis)
	fields = appendField(fields, "Recommendations", consultation.Recommendations)
	for _, product := range consultation.RecommendedProducts {
		fields = appendField(fields, "Product "+product.ProductID, product.Instructions)
	}
	if consultation.FollowUpRequired && consultation.FollowUpDate != nil {
		fields = appendField(fields, "Follow-up", consultation.FollowUpDate.Format(constvars.DateFormat))
	}

	objectName := utils.GenerateFileName("consultation_report", ticket.ID, ".html")
	return s.renderAndUpload(ctx, objectName, documentData{Title: "Consultation Report", Fields: fields})
}

func (s *documentService) RenderTicketReceipt(ctx context.Context, ticket *models.Ticket) (string, error) {
	var fields []documentField
	fields = appendField(fields, "Ticket", ticket.ID)
	fields = appendField(fields, "Patient", ticket.PatientID)
	fields = appendField(fields, "Consultation type", ticket.ConsultationType)
	fields = appendField(fields, "Amount", fmt.Sprintf("%d", ticket.ConsultationFee))
	fields = appendField(fields, "Payment reference", ticket.PaymentID)
	if ticket.PaymentDate != nil {
		fields = appendField(fields, "Paid at", ticket.PaymentDate.Format(time.RFC3339))
	}

	objectName := utils.GenerateFileName("ticket_receipt", ticket.ID, ".html")
	return s.renderAndUpload(ctx, objectName, documentData{Title: "Payment Receipt", Fields: fields})
}

func (s *documentService) RenderBookingReceipt(ctx context.Context, booking *models.Booking) (string, error) {
	var fields []documentField
	fields = appendField(fields, "Booking", booking.ID)
	fields = appendField(fields, "Patient", booking.PatientID)
	fields = appendField(fields, "Session type", booking.SessionType)
	fields = appendField(fields, "Scheduled at", booking.ScheduledAt.Format(time.RFC3339))
	fields = appendField(fields, "Amount", fmt.Sprintf("%d", booking.ConsultationFee))
	fields = appendField(fields, "Payment reference", booking.PaymentID)
	if booking.PaymentDate != nil {
		fields = appendField(fields, "Paid at", booking.PaymentDate.Format(time.RFC3339))
	}

	objectName := utils.GenerateFileName("booking_receipt", booking.ID, ".html")
	return s.renderAndUpload(ctx, objectName, documentData{Title: "Payment Receipt", Fields: fields})
}

func (s *documentService) renderAndUpload(ctx context.Context, objectName string, data documentData) (string, error) {
	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		s.Log.Error("documentService.renderAndUpload failed to render artifact",
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", err
	}

	path, err := s.Storage.UploadObject(ctx, objectName, bytes.NewReader(buf.Bytes()), int64(buf.Len()), constvars.MIMETextHTML)
	if err != nil {
		s.Log.Error("documentService.renderAndUpload failed to store artifact",
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", err
	}
	return path, nil
}
