package documents

import (
	"context"
	"errors"
	"io"
	"skinbloom-service/internal/app/models"
	"skinbloom-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockStorage struct {
	mock.Mock

	lastObjectName string
	lastContent    string
}

func (m *MockStorage) UploadObject(ctx context.Context, objectName string, reader io.Reader, objectSize int64, contentType string) (string, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	m.lastObjectName = objectName
	m.lastContent = string(content)
	args := m.Called(ctx, objectName, objectSize, contentType)
	return args.String(0), args.Error(1)
}

func TestDocumentService(t *testing.T) {
	t.Run("patient supplied markup is escaped in the report", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("UploadObject", mock.Anything, mock.Anything, mock.Anything, constvars.MIMETextHTML).
			Return("documents/report.html", nil)
		service := NewDocumentService(storage, zap.NewNop())

		ticket := &models.Ticket{
			ID:        "ticket-1",
			PatientID: "patient-1",
			Concern:   `<script>alert("acne")</script>`,
		}
		consultation := &models.Consultation{
			TicketID:        "ticket-1",
			DermatologistID: "derm-1",
			Diagnosis:       `mild eczema <img src=x onerror=alert(1)>`,
		}

		path, err := service.RenderConsultationReport(context.Background(), ticket, consultation)

		assert.NoError(t, err)
		assert.Equal(t, "documents/report.html", path)
		assert.NotContains(t, storage.lastContent, "<script>")
		assert.NotContains(t, storage.lastContent, "<img")
		assert.Contains(t, storage.lastContent, "&lt;script&gt;")
		assert.Contains(t, storage.lastContent, "mild eczema")
		assert.Contains(t, storage.lastContent, "Consultation Report")
	})

	t.Run("ticket receipt carries payment details and skips empty fields", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("UploadObject", mock.Anything, mock.Anything, mock.Anything, constvars.MIMETextHTML).
			Return("documents/receipt.html", nil)
		service := NewDocumentService(storage, zap.NewNop())

		paidAt := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
		ticket := &models.Ticket{
			ID:               "ticket-1",
			PatientID:        "patient-1",
			ConsultationType: models.SessionTypeVideoCall,
			ConsultationFee:  100,
			PaymentID:        "cs_123",
			PaymentDate:      &paidAt,
		}

		path, err := service.RenderTicketReceipt(context.Background(), ticket)

		assert.NoError(t, err)
		assert.Equal(t, "documents/receipt.html", path)
		assert.Contains(t, storage.lastObjectName, "ticket_receipt_ticket-1")
		assert.Contains(t, storage.lastContent, "Payment Receipt")
		assert.Contains(t, storage.lastContent, "cs_123")
		assert.Contains(t, storage.lastContent, "<td>100</td>")
		assert.NotContains(t, storage.lastContent, "Diagnosis")
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("UploadObject", mock.Anything, mock.Anything, mock.Anything, constvars.MIMETextHTML).
			Return("", errors.New("bucket unavailable"))
		service := NewDocumentService(storage, zap.NewNop())

		booking := &models.Booking{
			ID:          "booking-1",
			PatientID:   "patient-1",
			SessionType: models.SessionTypeVideoCall,
			ScheduledAt: time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC),
		}

		path, err := service.RenderBookingReceipt(context.Background(), booking)

		assert.Error(t, err)
		assert.Empty(t, path)
	})
}
