package tickets

import (
	"context"
	"errors"
	"fmt"
	"skinbloom-service/internal/app/config"
	"skinbloom-service/internal/app/contracts"
	"skinbloom-service/internal/app/models"
	"skinbloom-service/internal/pkg/constvars"
	"skinbloom-service/internal/pkg/dto/requests"
	"skinbloom-service/internal/pkg/dto/responses"
	"skinbloom-service/internal/pkg/exceptions"
	"skinbloom-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const verifyPaymentLockExpiration = 15 * time.Second

type ticketUsecase struct {
	TicketRepository       contracts.TicketRepository
	ConsultationRepository contracts.ConsultationRepository
	UserRepository         contracts.UserRepository
	ProductRepository      contracts.ProductRepository
	PaymentGateway         contracts.PaymentGatewayService
	DocumentService        contracts.DocumentService
	LockerService          contracts.LockerService
	Dispatcher             contracts.NotificationDispatcher
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewTicketUsecase(
	ticketRepository contracts.TicketRepository,
	consultationRepository contracts.ConsultationRepository,
	userRepository contracts.UserRepository,
	productRepository contracts.ProductRepository,
	paymentGateway contracts.PaymentGatewayService,
	documentService contracts.DocumentService,
	lockerService contracts.LockerService,
	dispatcher contracts.NotificationDispatcher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.TicketUsecase {
	return &ticketUsecase{
		TicketRepository:       ticketRepository,
		ConsultationRepository: consultationRepository,
		UserRepository:         userRepository,
		ProductRepository:      productRepository,
		PaymentGateway:         paymentGateway,
		DocumentService:        documentService,
		LockerService:          lockerService,
		Dispatcher:             dispatcher,
		InternalConfig:         internalConfig,
		Log:                    logger,
	}
}

func (uc *ticketUsecase) SubmitTicket(ctx context.Context, sessionData string, request *requests.SubmitTicket) (*responses.Ticket, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RoleTypePatient {
		return nil, exceptions.ErrNotAllowedForRole(nil)
	}

	if request.ConsultationType == models.SessionTypePhotoReview && len(request.Photos) == 0 {
		return nil, exceptions.ErrTicketPhotoRequired(nil)
	}

	var preferredDermatologist *models.User
	if request.PreferredDermatologist != "" {
		preferredDermatologist, err = uc.UserRepository.FindByID(ctx, request.PreferredDermatologist)
		if err != nil {
			return nil, err
		}
		// A missing or inactive preference falls back to the broadcast path
		// instead of blocking the submission.
		if !preferredDermatologist.IsActiveDermatologist() {
			uc.Log.Warn("ticketUsecase.SubmitTicket preferred dermatologist unavailable, broadcasting instead",
				zap.String(constvars.LoggingUserIDKey, request.PreferredDermatologist),
			)
			preferredDermatologist = nil
		}
	}

	photos := make([]models.TicketPhoto, 0, len(request.Photos))
	for _, photo := range request.Photos {
		photos = append(photos, models.TicketPhoto{URL: photo.URL, Description: photo.Description})
	}

	ticket := &models.Ticket{
		PatientID:              session.UserID,
		PreferredDermatologist: request.PreferredDermatologist,
		Concern:                request.Concern,
		SkinType:               request.SkinType,
		Symptoms:               request.Symptoms,
		Duration:               request.Duration,
		PriorTreatments:        request.PriorTreatments,
		Allergies:              request.Allergies,
		Photos:                 photos,
		ConsultationType:       request.ConsultationType,
		Priority:               request.Priority,
		ConsultationFee:        uc.InternalConfig.Fees.FeeFor(request.ConsultationType),
		PaymentStatus:          models.PaymentStatusPending,
		Status:                 models.TicketStatusSubmitted,
	}

	ticketID, err := uc.TicketRepository.CreateTicket(ctx, ticket)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, session.UserID, models.NotificationTypeTicket,
		"Ticket submitted",
		"Your consultation ticket has been submitted and is waiting for a dermatologist.",
		ticketID,
	)
	if preferredDermatologist != nil {
		uc.notify(ctx, preferredDermatologist.ID, models.NotificationTypeTicket,
			"New consultation request",
			fmt.Sprintf("A patient requested you for a %s consultation.", ticket.ConsultationType),
			ticketID,
		)
	} else {
		uc.broadcastToDermatologists(ctx, ticket)
	}

	return buildTicketResponse(ticket), nil
}

func (uc *ticketUsecase) GetTicket(ctx context.Context, sessionData, ticketID string) (*responses.Ticket, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}

	ticket, err := uc.TicketRepository.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, exceptions.ErrTicketNotExist(nil)
	}
	if err := authorizeTicketAccess(session, ticket); err != nil {
		return nil, err
	}
	return buildTicketResponse(ticket), nil
}

func (uc *ticketUsecase) ListTickets(ctx context.Context, sessionData string) ([]responses.Ticket, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}

	var tickets []models.Ticket
	switch session.Role {
	case constvars.RoleTypePatient:
		tickets, err = uc.TicketRepository.FindByPatientID(ctx, session.UserID)
	case constvars.RoleTypeDermatologist:
		tickets, err = uc.TicketRepository.FindByDermatologistID(ctx, session.UserID)
	case constvars.RoleTypeAdmin:
		tickets, err = uc.TicketRepository.FindAll(ctx)
	default:
		return nil, exceptions.ErrNotAllowedForRole(nil)
	}
	if err != nil {
		return nil, err
	}

	result := make([]responses.Ticket, 0, len(tickets))
	for i := range tickets {
		result = append(result, *buildTicketResponse(&tickets[i]))
	}
	return result, nil
}

func (uc *ticketUsecase) AssignTicket(ctx context.Context, sessionData, ticketID string) (*responses.Ticket, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RoleTypeDermatologist {
		return nil, exceptions.ErrNotAllowedForRole(nil)
	}

	dermatologist, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if !dermatologist.IsActiveDermatologist() {
		return nil, exceptions.ErrDermatologistNotExist(nil)
	}

	ticket, err := uc.TicketRepository.ClaimTicket(ctx, ticketID, session.UserID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		existing, err := uc.TicketRepository.FindByID(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, exceptions.ErrTicketNotExist(nil)
		}
		return nil, exceptions.ErrTicketAlreadyAssigned(nil)
	}

	uc.notify(ctx, ticket.PatientID, models.NotificationTypeTicket,
		"Dermatologist assigned",
		fmt.Sprintf("%s is now handling your consultation ticket.", dermatologist.Name),
		ticket.ID,
	)

	return buildTicketResponse(ticket), nil
}

func (uc *ticketUsecase) ProvideConsultation(ctx context.Context, sessionData, ticketID string, request *requests.ProvideConsultation) (*responses.Ticket, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RoleTypeDermatologist {
		return nil, exceptions.ErrNotAllowedForRole(nil)
	}

	ticket, err := uc.TicketRepository.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, exceptions.ErrTicketNotExist(nil)
	}

	switch ticket.Status {
	case models.TicketStatusSubmitted:
		// Answering an unclaimed ticket claims it implicitly.
		claimed, err := uc.TicketRepository.ClaimTicket(ctx, ticketID, session.UserID)
		if err != nil {
			return nil, err
		}
		if claimed == nil {
			return nil, exceptions.ErrTicketAlreadyAssigned(nil)
		}
		ticket = claimed
	case models.TicketStatusAssigned, models.TicketStatusAnswered:
		if !ticket.IsAssignedTo(session.UserID) {
			return nil, exceptions.ErrTicketNotAssignedToActor(nil)
		}
	default:
		return nil, exceptions.ErrTicketStatusInvalid(nil)
	}

	recommendedProducts, err := uc.resolveRecommendedProducts(ctx, request.RecommendedProducts)
	if err != nil {
		return nil, err
	}

	var followUpDate *time.Time
	if request.FollowUpDate != "" {
		parsed, err := time.Parse(constvars.DateFormat, request.FollowUpDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		followUpDate = &parsed
	}

	now := time.Now()
	ticket.Diagnosis = request.Diagnosis
	ticket.Recommendations = request.Recommendations
	ticket.RecommendedProducts = recommendedProducts
	ticket.FollowUpRequired = request.FollowUpRequired
	ticket.FollowUpDate = followUpDate
	ticket.Status = models.TicketStatusAnswered
	ticket.AnsweredBy = session.UserID
	ticket.AnsweredAt = &now

	// Report rendering is best effort: a storage hiccup must not block the
	// consultation itself.
	consultation := uc.buildConsultation(ticket)
	if reportPath, err := uc.DocumentService.RenderConsultationReport(ctx, ticket, consultation); err != nil {
		uc.Log.Warn("ticketUsecase.ProvideConsultation failed to render report",
			zap.String(constvars.LoggingTicketIDKey, ticket.ID),
			zap.Error(err),
		)
	} else {
		ticket.ReportPath = reportPath
		consultation.ReportPath = reportPath
	}

	if err := uc.TicketRepository.UpdateTicket(ctx, ticket); err != nil {
		return nil, err
	}
	if err := uc.upsertConsultation(ctx, consultation); err != nil {
		return nil, err
	}

	uc.notify(ctx, ticket.PatientID, models.NotificationTypeTicket,
		"Consultation ready",
		"Your dermatologist has provided a consultation for your ticket.",
		ticket.ID,
	)

	return buildTicketResponse(ticket), nil
}

func (uc *ticketUsecase) MarkSolved(ctx context.Context, sessionData, ticketID string) (*responses.Ticket, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RoleTypeDermatologist {
		return nil, exceptions.ErrNotAllowedForRole(nil)
	}

	ticket, err := uc.TicketRepository.MarkSolved(ctx, ticketID, session.UserID, time.Now())
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		existing, err := uc.TicketRepository.FindByID(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, exceptions.ErrTicketNotExist(nil)
		}
		if !existing.IsAssignedTo(session.UserID) {
			return nil, exceptions.ErrTicketNotAssignedToActor(nil)
		}
		return nil, exceptions.ErrTicketNotAnswered(nil)
	}

	uc.notify(ctx, ticket.PatientID, models.NotificationTypeTicket,
		"Ticket solved",
		"Your consultation ticket has been marked as solved. You can now proceed to payment.",
		ticket.ID,
	)

	return buildTicketResponse(ticket), nil
}

func (uc *ticketUsecase) AddMessage(ctx context.Context, sessionData, ticketID string, request *requests.TicketMessage) (*responses.Ticket, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}

	ticket, err := uc.TicketRepository.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, exceptions.ErrTicketNotExist(nil)
	}
	if err := authorizeTicketAccess(session, ticket); err != nil {
		return nil, err
	}
	if ticket.Status == models.TicketStatusClosed {
		return nil, exceptions.ErrTicketStatusInvalid(nil)
	}

	message := models.TicketMessage{
		SenderID: session.UserID,
		Text:     request.Text,
		SentAt:   time.Now(),
	}
	if err := uc.TicketRepository.PushMessage(ctx, ticketID, message); err != nil {
		return nil, err
	}
	ticket.Messages = append(ticket.Messages, message)

	if recipientID := messageRecipient(session, ticket); recipientID != "" {
		uc.notify(ctx, recipientID, models.NotificationTypeTicket,
			"New message",
			"You have a new message on your consultation ticket.",
			ticket.ID,
		)
	}

	return buildTicketResponse(ticket), nil
}

func (uc *ticketUsecase) CloseTicket(ctx context.Context, sessionData, ticketID string) (*responses.Ticket, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RoleTypeAdmin {
		return nil, exceptions.ErrNotAllowedForRole(nil)
	}

	ticket, err := uc.TicketRepository.CloseTicket(ctx, ticketID, time.Now())
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		existing, err := uc.TicketRepository.FindByID(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, exceptions.ErrTicketNotExist(nil)
		}
		return nil, exceptions.ErrTicketNotPaid(nil)
	}

	uc.notify(ctx, ticket.PatientID, models.NotificationTypeTicket,
		"Ticket closed",
		"Your consultation ticket has been archived.",
		ticket.ID,
	)

	return buildTicketResponse(ticket), nil
}

func (uc *ticketUsecase) CreatePaymentSession(ctx context.Context, sessionData, ticketID string) (*responses.PaymentSession, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}

	ticket, err := uc.TicketRepository.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, exceptions.ErrTicketNotExist(nil)
	}
	if ticket.PatientID != session.UserID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}
	if ticket.PaymentStatus == models.PaymentStatusPaid {
		return nil, exceptions.ErrTicketAlreadyPaid(nil)
	}
	if ticket.Status != models.TicketStatusSolved {
		return nil, exceptions.ErrTicketNotSolved(nil)
	}

	gatewayConfig := uc.InternalConfig.PaymentGateway
	checkoutSession, err := uc.PaymentGateway.CreateCheckoutSession(ctx, &requests.CheckoutSessionRequest{
		Amount:      ticket.ConsultationFee,
		Currency:    gatewayConfig.Currency,
		Description: fmt.Sprintf("Dermatology consultation (%s)", ticket.ConsultationType),
		SuccessUrl:  gatewayConfig.SuccessUrl,
		CancelUrl:   gatewayConfig.CancelUrl,
		Metadata:    map[string]string{"ticket_id": ticket.ID},
	})
	if err != nil {
		return nil, err
	}

	return &responses.PaymentSession{
		SessionID:   checkoutSession.ID,
		CheckoutURL: checkoutSession.URL,
		Amount:      ticket.ConsultationFee,
		Currency:    gatewayConfig.Currency,
	}, nil
}

func (uc *ticketUsecase) VerifyPayment(ctx context.Context, sessionData string, request *requests.VerifyPayment) (*responses.Ticket, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}

	checkoutSession, err := uc.PaymentGateway.RetrieveSession(ctx, request.SessionID)
	if err != nil {
		return nil, err
	}
	if checkoutSession.PaymentStatus != models.PaymentStatusPaid {
		return nil, exceptions.ErrPaymentNotCompleted(nil)
	}
	ticketID := checkoutSession.Metadata["ticket_id"]
	if ticketID == "" {
		return nil, exceptions.ErrPaymentGatewayResponse(errors.New("checkout session has no ticket_id metadata"))
	}

	existing, err := uc.TicketRepository.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrTicketNotExist(nil)
	}
	if session.Role != constvars.RoleTypeAdmin && existing.PatientID != session.UserID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyTicketLockFormat, ticketID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, verifyPaymentLockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrResourceLocked(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("ticketUsecase.VerifyPayment failed to release lock",
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	ticket, err := uc.TicketRepository.MarkPaid(ctx, ticketID, checkoutSession.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		if existing.PaymentStatus == models.PaymentStatusPaid {
			return nil, exceptions.ErrTicketAlreadyPaid(nil)
		}
		return nil, exceptions.ErrTicketNotSolved(nil)
	}

	// The conditional update succeeds exactly once per ticket, so the receipt
	// is rendered at most once.
	if receiptPath, err := uc.DocumentService.RenderTicketReceipt(ctx, ticket); err != nil {
		uc.Log.Warn("ticketUsecase.VerifyPayment failed to render receipt",
			zap.String(constvars.LoggingTicketIDKey, ticket.ID),
			zap.Error(err),
		)
	} else {
		ticket.ReceiptPath = receiptPath
		if err := uc.TicketRepository.UpdateTicket(ctx, ticket); err != nil {
			return nil, err
		}
	}

	uc.notify(ctx, ticket.PatientID, models.NotificationTypePayment,
		"Payment received",
		"Your consultation payment has been verified. Thank you!",
		ticket.ID,
	)
	if ticket.DermatologistID != "" {
		uc.notify(ctx, ticket.DermatologistID, models.NotificationTypePayment,
			"Consultation paid",
			"The patient has paid for a consultation you provided.",
			ticket.ID,
		)
	}

	return buildTicketResponse(ticket), nil
}

func (uc *ticketUsecase) resolveRecommendedProducts(ctx context.Context, requested []requests.RecommendedProduct) ([]models.RecommendedProduct, error) {
	if len(requested) == 0 {
		return nil, nil
	}

	productIDs := make([]string, 0, len(requested))
	for _, product := range requested {
		productIDs = append(productIDs, product.ProductID)
	}
	activeProducts, err := uc.ProductRepository.FindActiveByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	activeByID := make(map[string]bool, len(activeProducts))
	for _, product := range activeProducts {
		activeByID[product.ID] = true
	}

	result := make([]models.RecommendedProduct, 0, len(requested))
	for _, product := range requested {
		if !activeByID[product.ProductID] {
			return nil, exceptions.ErrProductNotExist(nil)
		}
		result = append(result, models.RecommendedProduct{
			ProductID:    product.ProductID,
			Instructions: product.Instructions,
			Priority:     product.Priority,
		})
	}
	return result, nil
}

func (uc *ticketUsecase) buildConsultation(ticket *models.Ticket) *models.Consultation {
	return &models.Consultation{
		TicketID:            ticket.ID,
		PatientID:           ticket.PatientID,
		DermatologistID:     ticket.DermatologistID,
		Diagnosis:           ticket.Diagnosis,
		Recommendations:     ticket.Recommendations,
		RecommendedProducts: ticket.RecommendedProducts,
		FollowUpRequired:    ticket.FollowUpRequired,
		FollowUpDate:        ticket.FollowUpDate,
		ReportPath:          ticket.ReportPath,
	}
}

func (uc *ticketUsecase) upsertConsultation(ctx context.Context, consultation *models.Consultation) error {
	existing, err := uc.ConsultationRepository.FindByTicketID(ctx, consultation.TicketID)
	if err != nil {
		return err
	}
	if existing == nil {
		_, err := uc.ConsultationRepository.CreateConsultation(ctx, consultation)
		return err
	}
	consultation.ID = existing.ID
	consultation.CreatedAt = existing.CreatedAt
	return uc.ConsultationRepository.UpdateConsultation(ctx, consultation)
}

func (uc *ticketUsecase) notify(ctx context.Context, recipientID, notificationType, title, message, resourceID string) {
	uc.Dispatcher.Dispatch(ctx, &models.Notification{
		RecipientID: recipientID,
		Type:        notificationType,
		Title:       title,
		Message:     message,
		ResourceID:  resourceID,
	})
}

func (uc *ticketUsecase) broadcastToDermatologists(ctx context.Context, ticket *models.Ticket) {
	dermatologists, err := uc.UserRepository.FindActiveDermatologists(ctx)
	if err != nil {
		uc.Log.Warn("ticketUsecase failed to load dermatologists for broadcast",
			zap.String(constvars.LoggingTicketIDKey, ticket.ID),
			zap.Error(err),
		)
		return
	}
	for _, dermatologist := range dermatologists {
		uc.notify(ctx, dermatologist.ID, models.NotificationTypeTicket,
			"New consultation request",
			fmt.Sprintf("A new %s consultation ticket is waiting to be claimed.", ticket.ConsultationType),
			ticket.ID,
		)
	}
}

func authorizeTicketAccess(session *models.Session, ticket *models.Ticket) error {
	switch session.Role {
	case constvars.RoleTypeAdmin:
		return nil
	case constvars.RoleTypePatient:
		if ticket.PatientID == session.UserID {
			return nil
		}
	case constvars.RoleTypeDermatologist:
		if ticket.IsAssignedTo(session.UserID) || ticket.Status == models.TicketStatusSubmitted {
			return nil
		}
	}
	return exceptions.ErrNotResourceOwner(nil)
}

// messageRecipient resolves who to notify about a new message: the other
// party of the conversation, when one exists.
func messageRecipient(session *models.Session, ticket *models.Ticket) string {
	if session.UserID == ticket.PatientID {
		return ticket.DermatologistID
	}
	return ticket.PatientID
}

func buildTicketResponse(ticket *models.Ticket) *responses.Ticket {
	photos := make([]responses.TicketPhoto, 0, len(ticket.Photos))
	for _, photo := range ticket.Photos {
		photos = append(photos, responses.TicketPhoto{URL: photo.URL, Description: photo.Description})
	}
	messages := make([]responses.TicketMessage, 0, len(ticket.Messages))
	for _, message := range ticket.Messages {
		messages = append(messages, responses.TicketMessage{
			SenderID: message.SenderID,
			Text:     message.Text,
			SentAt:   message.SentAt,
		})
	}
	recommendedProducts := make([]responses.RecommendedProduct, 0, len(ticket.RecommendedProducts))
	for _, product := range ticket.RecommendedProducts {
		recommendedProducts = append(recommendedProducts, responses.RecommendedProduct{
			ProductID:    product.ProductID,
			Instructions: product.Instructions,
			Priority:     product.Priority,
		})
	}

	return &responses.Ticket{
		ID:                  ticket.ID,
		PatientID:           ticket.PatientID,
		DermatologistID:     ticket.DermatologistID,
		Concern:             ticket.Concern,
		SkinType:            ticket.SkinType,
		Symptoms:            ticket.Symptoms,
		Duration:            ticket.Duration,
		PriorTreatments:     ticket.PriorTreatments,
		Allergies:           ticket.Allergies,
		Photos:              photos,
		ConsultationType:    ticket.ConsultationType,
		Priority:            ticket.Priority,
		Diagnosis:           ticket.Diagnosis,
		Recommendations:     ticket.Recommendations,
		RecommendedProducts: recommendedProducts,
		FollowUpRequired:    ticket.FollowUpRequired,
		FollowUpDate:        ticket.FollowUpDate,
		ReportPath:          ticket.ReportPath,
		ConsultationFee:     ticket.ConsultationFee,
		PaymentStatus:       ticket.PaymentStatus,
		PaymentDate:         ticket.PaymentDate,
		ReceiptPath:         ticket.ReceiptPath,
		Status:              ticket.Status,
		AnsweredAt:          ticket.AnsweredAt,
		SolvedAt:            ticket.SolvedAt,
		Messages:            messages,
		CreatedAt:           ticket.CreatedAt,
		UpdatedAt:           ticket.UpdatedAt,
	}
}
